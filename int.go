package dashu

import "fmt"

// Component J: the signed integer facade. Int wraps an unsigned Repr
// magnitude with a separate sign bit, in the familiar `neg bool; abs
// magnitude` shape, restructured onto Repr instead of a bare word slice
// so the inline fast path from component B is shared by every integer in
// the system. Zero's sign is always positive (neg == false), and
// negation flips the bit without touching the magnitude.
type Int struct {
	neg bool
	abs Repr
}

// NewInt returns a new Int set to x.
func NewInt(x int64) *Int {
	z := new(Int)
	return z.SetInt64(x)
}

// SetInt64 sets z to x and returns z.
func (z *Int) SetInt64(x int64) *Int {
	neg := x < 0
	var ux uint64
	if neg {
		ux = uint64(-(x + 1)) + 1
	} else {
		ux = uint64(x)
	}
	z.neg = neg
	z.abs = reprFromWord(ux)
	if z.abs.IsZero() {
		z.neg = false
	}
	return z
}

// SetUint64 sets z to x and returns z.
func (z *Int) SetUint64(x uint64) *Int {
	z.neg = false
	z.abs = reprFromWord(x)
	return z
}

// newIntFromWords builds an *Int directly from a magnitude and sign,
// normalizing the sign of zero. Used internally by the arithmetic
// kernels (mul.go's Toom-3, gcd.go) that operate in terms of word slices.
func newIntFromWords(neg bool, ws []Word) *Int {
	abs := reprFromOwned(append([]Word(nil), ws...))
	if abs.IsZero() {
		neg = false
	}
	return &Int{neg: neg, abs: abs}
}

// Sign returns -1, 0, or +1 depending on the sign of z.
func (z *Int) Sign() int {
	if z.abs.IsZero() {
		return 0
	}
	if z.neg {
		return -1
	}
	return 1
}

// IsZero reports whether z == 0.
func (z *Int) IsZero() bool { return z.abs.IsZero() }

// Neg sets z to -x and returns z.
func (z *Int) Neg(x *Int) *Int {
	z.abs = x.abs
	if x.abs.IsZero() {
		z.neg = false
	} else {
		z.neg = !x.neg
	}
	return z
}

// Abs sets z to |x| and returns z.
func (z *Int) Abs(x *Int) *Int {
	z.abs = x.abs
	z.neg = false
	return z
}

func negInt(x *Int) *Int {
	if x.abs.IsZero() {
		return x
	}
	return &Int{neg: !x.neg, abs: x.abs}
}

// Cmp compares z and y, returning -1, 0, or +1.
func (z *Int) Cmp(y *Int) int {
	switch {
	case z.neg == y.neg:
		c := z.abs.Cmp(y.abs)
		if z.neg {
			return -c
		}
		return c
	case z.neg:
		return -1
	default:
		return 1
	}
}

// addInt returns x+y as a new *Int.
func addInt(x, y *Int) *Int {
	switch {
	case x.neg == y.neg:
		return newIntFromWords(x.neg, addWords(x.abs.words(), y.abs.words()))
	case x.abs.Cmp(y.abs) >= 0:
		return newIntFromWords(x.neg, subWords(x.abs.words(), y.abs.words()))
	default:
		return newIntFromWords(y.neg, subWords(y.abs.words(), x.abs.words()))
	}
}

// subInt returns x-y as a new *Int.
func subInt(x, y *Int) *Int {
	return addInt(x, negInt(y))
}

// mulInt returns x*y as a new *Int.
func mulInt(x, y *Int) *Int {
	neg := x.neg != y.neg
	return newIntFromWords(neg, mulWords(x.abs.words(), y.abs.words()))
}

// mulIntWord returns x*w for a native multiplier (|w| must fit in a
// Word), used by the interpolation steps in mul.go's Toom-3 and by
// gcd.go's Lehmer convergents.
func mulIntWord(x *Int, w int64) *Int {
	neg := x.neg
	uw := uint64(w)
	if w < 0 {
		neg = !neg
		uw = uint64(-w)
	}
	if uw == 0 || x.abs.IsZero() {
		return NewInt(0)
	}
	return newIntFromWords(neg, mulWords(x.abs.words(), []Word{uw}))
}

// shlInt returns x << bits as a new *Int.
func shlInt(x *Int, bits uint) *Int {
	if x.abs.IsZero() || bits == 0 {
		return newIntFromWords(x.neg, append([]Word(nil), x.abs.words()...))
	}
	return newIntFromWords(x.neg, shlWords(x.abs.words(), bits))
}

// quoInt returns floor(|x|/|y|) truncated toward zero, for non-negative
// x, y (the helper gcd.go's extended Euclidean loop uses).
func quoInt(x, y *Int) *Int {
	q, _ := divRemWords(x.abs.words(), y.abs.words())
	return newIntFromWords(false, q)
}

// divIntWordExact divides x by a small positive divisor that is known to
// divide it exactly (the divisions by 2, 3, 6 in Toom-3's interpolation);
// panics if the division is not exact, which would indicate a logic
// error in the caller.
func divIntWordExact(x *Int, d Word) *Int {
	if x.abs.IsZero() {
		return NewInt(0)
	}
	q, r := divWordWords(x.abs.words(), d)
	if r != 0 {
		panic("dashu: inexact division in exact-division context")
	}
	return newIntFromWords(x.neg, q)
}

// QuoRem sets z to the quotient x/y (truncated toward zero) and r to the
// remainder, returning (z, r). Panics if y is zero. Matches Go's native
// truncated-division semantics.
func (z *Int) QuoRem(x, y, r *Int) (*Int, *Int) {
	if y.abs.IsZero() {
		panic("dashu: division by zero")
	}
	qw, rw := divRemWords(x.abs.words(), y.abs.words())
	*z = *newIntFromWords(x.neg != y.neg, qw)
	*r = *newIntFromWords(x.neg, rw)
	return z, r
}

// DivMod sets z to the Euclidean quotient and m to the Euclidean
// remainder (always >= 0, Boute's definition of Euclidean division),
// returning (z, m).
func (z *Int) DivMod(x, y, m *Int) (*Int, *Int) {
	q, r := new(Int), new(Int)
	q.QuoRem(x, y, r)
	if r.neg {
		if y.neg {
			*q = *addInt(q, NewInt(1))
			*r = *subInt(r, y)
		} else {
			*q = *subInt(q, NewInt(1))
			*r = *addInt(r, y)
		}
	}
	*z = *q
	*m = *r
	return z, m
}

// BitLen returns the length of |z| in bits; BitLen(0) == 0.
func (z *Int) BitLen() int { return bitLenWords(z.abs.words()) }

// Add, Sub, Mul, GCD set z to the result of the named operation on x, y
// and return z, mirroring method surface.
func (z *Int) Add(x, y *Int) *Int { *z = *addInt(x, y); return z }
func (z *Int) Sub(x, y *Int) *Int { *z = *subInt(x, y); return z }
func (z *Int) Mul(x, y *Int) *Int { *z = *mulInt(x, y); return z }

// GCD sets z to gcd(x, y) (always >= 0) and, if u and v are non-nil, sets
// them to Bézout coefficients such that u*x + v*y = z. Mirrors
// GCD, generalized to route through Lehmer's method
// (gcd.go) for the magnitude and a plain extended Euclidean loop for the
// coefficients.
func (z *Int) GCD(u, v, x, y *Int) *Int {
	g := gcdWords(x.abs.words(), y.abs.words())
	*z = *newIntFromWords(false, g)
	if u != nil || v != nil {
		_, uu, vv := ExtGCD(x, y)
		if u != nil {
			*u = *uu
		}
		if v != nil {
			*v = *vv
		}
	}
	return z
}

// String returns the base-10 representation of z.
func (z *Int) String() string {
	return formatInt(z, 10, false)
}

// Format implements fmt.Formatter, accepting 'b', 'o', 'd', 'x', 'X',
// 's', 'v' with the usual sign/width/precision flags; see intconv.go.
func (z *Int) Format(f fmt.State, verb rune) {
	formatVerb(z, f, verb)
}
