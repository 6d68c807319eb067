package dashu

// Component L: float representation. A FloatRepr is
// significand * base^exponent where the significand is a signed Int and
// base is a runtime-validated field restricted to {2, 10}, rather than a
// compile-time generic parameter — Go has no const-generic mechanism as
// lightweight as would be needed here, and a runtime field keeps the two
// bases interchangeable at the call site; see DESIGN.md's Open Question
// resolution.
//
// Structurally this plays the role math/big's Float (mantissa nat + exp
// int32, base-2 only) plays, generalized to carry an explicit base and
// to keep the significand as a *signed* Int instead of an implicit-sign
// mantissa + separate neg bit, since the rest of this package already
// expresses "signed magnitude" as Int.

// FloatBase is the digit base a FloatRepr's exponent scales by.
type FloatBase uint8

const (
	Base2  FloatBase = 2
	Base10 FloatBase = 10
)

func (b FloatBase) valid() bool { return b == Base2 || b == Base10 }

// specialKind distinguishes the two special values a FloatRepr can hold
// beyond ordinary finite values: zero (significand 0, exponent 0) and
// infinity. There is no NaN; the type is strictly finite-or-infinite.
type specialKind uint8

const (
	finiteOrZero specialKind = iota
	infKind
)

// FloatRepr is a signed, arbitrary-precision float in a fixed base.
type FloatRepr struct {
	base specialBaseHolder
	sig  Int // signed significand; sig.Sign()==0 means zero or -0 is not representable (zero is always +0, see NewFloatZero)
	exp  int64
	kind specialKind
	neg  bool // sign of infinity; ignored for finite values (carried on sig)
}

// specialBaseHolder exists only so FloatBase's zero value (0) cannot be
// mistaken for a valid, unset base; every constructor below sets it
// explicitly and validates.
type specialBaseHolder struct{ b FloatBase }

func (h specialBaseHolder) get() FloatBase { return h.b }

// NewFloatZero returns +0 in the given base.
func NewFloatZero(base FloatBase) *FloatRepr {
	if !base.valid() {
		panic("dashu: float base must be 2 or 10")
	}
	return &FloatRepr{base: specialBaseHolder{base}, sig: *NewInt(0), exp: 0}
}

// NewFloatInf returns signed infinity in the given base.
func NewFloatInf(base FloatBase, sign int) *FloatRepr {
	if !base.valid() {
		panic("dashu: float base must be 2 or 10")
	}
	return &FloatRepr{base: specialBaseHolder{base}, kind: infKind, neg: sign < 0, exp: 1}
}

// NewFloatFromInt builds an exact float from an integer significand and
// a base-scaled exponent (value = sig * base^exp), normalizing away
// trailing base-digit zeros as normalization invariant
// requires.
func NewFloatFromInt(base FloatBase, sig *Int, exp int64) *FloatRepr {
	if !base.valid() {
		panic("dashu: float base must be 2 or 10")
	}
	f := &FloatRepr{base: specialBaseHolder{base}, sig: *sig, exp: exp}
	f.normalize()
	return f
}

// IsZero reports whether f is +0 (the only zero this type represents;
// zero always carries a positive sign).
func (f *FloatRepr) IsZero() bool { return f.kind == finiteOrZero && f.sig.IsZero() }

// IsInf reports whether f is infinite with the matching sign (sign == 0
// matches either sign).
func (f *FloatRepr) IsInf(sign int) bool {
	if f.kind != infKind {
		return false
	}
	if sign == 0 {
		return true
	}
	return (sign < 0) == f.neg
}

// Sign returns -1, 0, +1.
func (f *FloatRepr) Sign() int {
	if f.kind == infKind {
		if f.neg {
			return -1
		}
		return 1
	}
	return f.sig.Sign()
}

// Base returns f's digit base.
func (f *FloatRepr) Base() FloatBase { return f.base.get() }

// normalize strips trailing base-digit zeros from the significand,
// incrementing the exponent correspondingly, to maintain the
// normalization invariant: the significand is not divisible by BASE.
func (f *FloatRepr) normalize() {
	if f.kind == infKind || f.sig.IsZero() {
		f.exp = 0
		return
	}
	base := NewInt(int64(f.base.get()))
	abs := new(Int).Abs(&f.sig)
	for {
		q, r := new(Int), new(Int)
		q.QuoRem(abs, base, r)
		if !r.IsZero() {
			break
		}
		abs = q
		f.exp++
	}
	if f.sig.neg {
		abs = negInt(abs)
	}
	f.sig = *abs
}

// RoundingMode is a stateless strategy that adjudicates an inexact
// result: rounding is data, not control.
type RoundingMode uint8

const (
	RoundZero RoundingMode = iota
	RoundAway
	RoundUp   // toward +inf
	RoundDown // toward -inf
	RoundHalfEven
	RoundHalfAway
)

// FloatContext carries a precision (digit count in the float's base) and
// a rounding mode. It is passed by value to each operation; a FloatRepr
// stores no precision or mode of its own. Precision 0 means unlimited:
// Add, Sub and Mul then return the exact result, while Div and Sqrt
// round to an operand's digit count (see contextualPrecision) and report
// an inexact result rather than failing.
type FloatContext struct {
	Precision uint
	Mode      RoundingMode
}

// RoundingTag reports how an inexact result's integer significand was
// adjusted relative to the floor-truncated raw division. Every rounding
// decision in this package is computed from a floor-truncated magnitude,
// so the adjustment is always zero or a single increment; TagSubOne is
// retained for completeness with the three-state taxonomy but this
// package's composition never produces it.
type RoundingTag uint8

const (
	TagNoOp RoundingTag = iota
	TagAddOne
	TagSubOne
)

// Approximation is the result of any operation that may round: either
// exact, or inexact with a tag recording the rounding direction taken.
type Approximation[T any] struct {
	Value T
	Exact bool
	Tag   RoundingTag
}

func exactApprox[T any](v T) Approximation[T] {
	return Approximation[T]{Value: v, Exact: true}
}

func inexactApprox[T any](v T, tag RoundingTag) Approximation[T] {
	return Approximation[T]{Value: v, Exact: false, Tag: tag}
}

// Map transforms the wrapped value while preserving the exact/inexact
// state and tag.
func (a Approximation[T]) Map(f func(T) T) Approximation[T] {
	return Approximation[T]{Value: f(a.Value), Exact: a.Exact, Tag: a.Tag}
}

// weakerTag returns the tag representing more adjustment / less
// certainty between two tags, used by AndThen to combine two rounding
// decisions (NoOp is weakest, then AddOne/SubOne are considered equally
// "strong" since either represents an adjustment).
func weakerTag(a, b RoundingTag) RoundingTag {
	if a == TagNoOp {
		return b
	}
	return a
}

// AndThen chains a into a second approximation-producing step,
// combining exactness (both must be exact for the result to be exact)
// and the rounding tag via weakerTag: any adjustment dominates NoOp, and
// when both steps adjusted, a's tag is kept.
func AndThen[T, U any](a Approximation[T], f func(T) Approximation[U]) Approximation[U] {
	b := f(a.Value)
	return Approximation[U]{
		Value: b.Value,
		Exact: a.Exact && b.Exact,
		Tag:   weakerTag(a.Tag, b.Tag),
	}
}

// roundMagnitude applies mode to a floor-truncated division result
// (quotient q, remainder r, divisor d, all non-negative, with sign the
// sign of the value being rounded), returning the adjustment to apply to
// q's magnitude (0 or 1; see RoundingTag's doc comment for why no -1
// case arises here) and whether the result is exact.
func roundMagnitude(mode RoundingMode, neg bool, r, d *Int) (delta int, exact bool) {
	if r.IsZero() {
		return 0, true
	}
	switch mode {
	case RoundZero:
		return 0, false
	case RoundAway:
		return 1, false
	case RoundUp:
		if !neg {
			return 1, false
		}
		return 0, false
	case RoundDown:
		if neg {
			return 1, false
		}
		return 0, false
	case RoundHalfEven, RoundHalfAway:
		twice := shlInt(r, 1)
		c := twice.Cmp(d)
		switch {
		case c < 0:
			return 0, false
		case c > 0:
			return 1, false
		default:
			if mode == RoundHalfAway {
				return 1, false
			}
			return 0, false // caller's quotient parity decides true half-even; see roundQuotient
		}
	default:
		panic("dashu: unknown rounding mode")
	}
}

// roundQuotient is roundMagnitude's HalfEven-aware wrapper: it inspects
// the quotient's own parity to break an exact tie
// toward even "HalfEven (banker's)" mode.
func roundQuotient(mode RoundingMode, neg bool, q, r, d *Int) (result *Int, tag RoundingTag, exact bool) {
	delta, isExact := roundMagnitude(mode, neg, r, d)
	if isExact {
		return q, TagNoOp, true
	}
	if mode == RoundHalfEven {
		twice := shlInt(r, 1)
		if twice.Cmp(d) == 0 {
			if quotientIsEven(q) {
				delta = 0
			} else {
				delta = 1
			}
		}
	}
	if delta == 0 {
		return q, TagNoOp, false
	}
	return addInt(q, NewInt(1)), TagAddOne, false
}

// quotientIsEven reports whether q is even, the tie-break test for
// HalfEven rounding (evenness of the kept integer significand, not
// base-dependent).
func quotientIsEven(q *Int) bool {
	r := new(Int)
	new(Int).QuoRem(q, NewInt(2), r)
	return r.abs.IsZero()
}
