package dashu

import "github.com/cmpute/dashu-go/config"

// defaultPrecisionBase10/defaultPrecisionBase2 are the precisions NewContext
// uses when a caller doesn't name one; overridden by UseConfig.
var (
	defaultPrecisionBase10 uint = 34
	defaultPrecisionBase2  uint = 113
)

// UseConfig applies a loaded config.Defaults to this package's tunables:
// the multiplication crossover points and the two default float
// precisions. Most callers never need this — the built-in defaults are
// already sane — but a host tuning for its own word-multiply cost can
// call config.Load() once at startup and hand the result here.
func UseConfig(d *config.Defaults) {
	ApplyMultiplicationThresholds(d.Multiplication.KaratsubaThreshold, d.Multiplication.Toom3Threshold)
	defaultPrecisionBase10 = d.Float.DefaultPrecisionBase10
	defaultPrecisionBase2 = d.Float.DefaultPrecisionBase2
}

// NewContext returns a FloatContext at this base's configured default
// precision (see UseConfig), using mode for rounding.
func NewContext(base FloatBase, mode RoundingMode) FloatContext {
	prec := defaultPrecisionBase10
	if base == Base2 {
		prec = defaultPrecisionBase2
	}
	return FloatContext{Precision: prec, Mode: mode}
}
