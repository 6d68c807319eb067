package dashu

import (
	"testing"

	"github.com/cmpute/dashu-go/config"
	"github.com/stretchr/testify/assert"
)

func TestUseConfigAppliesThresholdsAndPrecisions(t *testing.T) {
	oldK, oldT := karatsubaThreshold, toom3Threshold
	oldP10, oldP2 := defaultPrecisionBase10, defaultPrecisionBase2
	defer func() {
		ApplyMultiplicationThresholds(oldK, oldT)
		defaultPrecisionBase10, defaultPrecisionBase2 = oldP10, oldP2
	}()

	d := config.DefaultDefaults()
	d.Multiplication.KaratsubaThreshold = 50
	d.Multiplication.Toom3Threshold = 400
	d.Float.DefaultPrecisionBase10 = 20
	d.Float.DefaultPrecisionBase2 = 64
	UseConfig(d)

	assert.Equal(t, 50, karatsubaThreshold)
	assert.Equal(t, 400, toom3Threshold)
	assert.Equal(t, FloatContext{Precision: 20, Mode: RoundHalfEven}, NewContext(Base10, RoundHalfEven))
	assert.Equal(t, FloatContext{Precision: 64, Mode: RoundHalfEven}, NewContext(Base2, RoundHalfEven))
}
