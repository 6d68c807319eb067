// Package dashu implements a multi-precision numeric core: arbitrary-size
// signed/unsigned integer arithmetic (word.go, repr.go, slice.go,
// mul.go, square.go, div.go, int.go, intconv.go), GCD and integer roots
// (gcd.go, root.go), modular reduction via precomputed divisors
// (constdiv.go, modular.go), arbitrary-radix (base 2 or 10)
// multi-precision floating point (float.go, floatarith.go,
// floatconv.go), binary/text serialization (marshal.go), a typed parse/
// conversion error taxonomy (errors.go), and config-driven tuning of the
// multiplication thresholds and default float precisions
// (config_wire.go, paired with the config subpackage).
//
// The package is a single-threaded library. Its only package-level
// mutable state is the multiplication crossover points and default float
// precisions that UseConfig sets. A copied Repr shares its heap words
// with the original, and Repr.CloneInto writes into the receiver's
// existing buffer when it is large enough, so a value is not safe to
// share across goroutines while any copy of it is being overwritten.
package dashu
