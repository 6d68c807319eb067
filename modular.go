package dashu

// Component K: modular arithmetic. Reduced pairs a reduced magnitude
// with the *ConstDivisor it is bound to, so every operation on it reuses
// the precomputed reciprocal from component G instead of normalizing the
// modulus again. Grounded on windowed exponentiation over *Int and
// extended-GCD-based modular inverse, generalized from a single ad hoc
// modulus argument to a reusable *ConstDivisor per ring.

// Reduced is a value known to be the canonical representative of its
// residue class modulo an associated ConstDivisor. Two Reduced values
// must share the same *ConstDivisor (by identity, not just equal
// modulus) to be combined; mismatched rings panic, since the modulus
// for a ring of operations is fixed for the lifetime of the ring.
type Reduced struct {
	val Repr
	ctx *ConstDivisor
}

// NewReduced reduces x modulo ctx's modulus and returns the result.
func NewReduced(x Repr, ctx *ConstDivisor) Reduced {
	return Reduced{val: ctx.Rem(x), ctx: ctx}
}

func (r Reduced) checkRing(s Reduced) {
	if r.ctx != s.ctx {
		panic("dashu: operands from different moduli")
	}
}

// Value returns the canonical representative, 0 <= value < modulus.
func (r Reduced) Value() Repr { return r.val }

// Add returns r+s mod the shared modulus.
func (r Reduced) Add(s Reduced) Reduced {
	r.checkRing(s)
	sum := addWords(r.val.words(), s.val.words())
	return Reduced{val: r.ctx.Rem(reprFromOwned(sum)), ctx: r.ctx}
}

// Sub returns r-s mod the shared modulus.
func (r Reduced) Sub(s Reduced) Reduced {
	r.checkRing(s)
	modWords := r.ctx.Modulus().words()
	var diff []Word
	if cmpWords(r.val.words(), s.val.words()) >= 0 {
		diff = subWords(r.val.words(), s.val.words())
	} else {
		tmp := addWords(r.val.words(), modWords)
		diff = subWords(tmp, s.val.words())
	}
	return Reduced{val: r.ctx.Rem(reprFromOwned(diff)), ctx: r.ctx}
}

// Neg returns -r mod the shared modulus.
func (r Reduced) Neg() Reduced {
	if r.val.IsZero() {
		return r
	}
	modWords := r.ctx.Modulus().words()
	diff := subWords(modWords, r.val.words())
	return Reduced{val: reprFromOwned(diff), ctx: r.ctx}
}

// Mul returns r*s mod the shared modulus.
func (r Reduced) Mul(s Reduced) Reduced {
	r.checkRing(s)
	prod := mulWords(r.val.words(), s.val.words())
	return Reduced{val: r.ctx.Rem(reprFromOwned(prod)), ctx: r.ctx}
}

// Square returns r*r mod the shared modulus.
func (r Reduced) Square() Reduced {
	sq := sqrWords(r.val.words())
	return Reduced{val: r.ctx.Rem(reprFromOwned(sq)), ctx: r.ctx}
}

// Inv returns the modular multiplicative inverse of r, panicking if r is
// not invertible (gcd(r, modulus) != 1)
func (r Reduced) Inv() Reduced {
	m := r.ctx.Modulus()
	rInt := newIntFromWords(false, r.val.words())
	mInt := newIntFromWords(false, m.words())
	g, u, _ := ExtGCD(rInt, mInt)
	if !g.IsOne() {
		panic("dashu: value has no modular inverse (not coprime with modulus)")
	}
	uMod := r.ctx.Rem(reprFromOwned(append([]Word(nil), u.abs.words()...)))
	if u.neg && !uMod.IsZero() {
		diff := subWords(m.words(), uMod.words())
		uMod = reprFromOwned(diff)
	}
	return Reduced{val: uMod, ctx: r.ctx}
}

// IsOne reports whether z is the integer 1. Int does not expose a Repr's
// IsOne directly, so this routes through the underlying magnitude.
func (z *Int) IsOne() bool { return !z.neg && z.abs.IsOne() }

// Pow returns r^e mod the shared modulus via 4-bit windowed
// exponentiation (precomputed odd powers, scan the exponent's bits),
// specialized to a Reduced base instead of a raw *Int with an explicit
// modulus parameter on every call.
func (r Reduced) Pow(e *Int) Reduced {
	if e.neg {
		return r.Inv().Pow(new(Int).Abs(e))
	}
	if e.IsZero() {
		return NewReduced(oneRepr, r.ctx)
	}

	const winBits = 4
	const winSize = 1 << winBits

	// Precompute the odd powers r^1, r^3, r^5, ..., r^15.
	var powers [winSize / 2]Reduced
	powers[0] = r
	sq := r.Square()
	for i := 1; i < winSize/2; i++ {
		powers[i] = powers[i-1].Mul(sq)
	}

	bits := bitsOfInt(e)
	result := NewReduced(oneRepr, r.ctx)
	i := len(bits) - 1
	for i >= 0 {
		if bits[i] == 0 {
			result = result.Square()
			i--
			continue
		}
		// Find the window: up to winBits bits starting at i, ending on
		// a set bit.
		j := i - winBits + 1
		if j < 0 {
			j = 0
		}
		for bits[j] == 0 {
			j++
		}
		for k := i; k >= j; k-- {
			result = result.Square()
		}
		windowVal := 0
		for k := i; k >= j; k-- {
			windowVal = windowVal<<1 | int(bits[k])
		}
		result = result.Mul(powers[windowVal/2])
		i = j - 1
	}
	return result
}

// bitsOfInt returns e's bits, least significant first (bits[i] is bit i
// of e).
func bitsOfInt(e *Int) []byte {
	n := e.BitLen()
	bits := make([]byte, n)
	ws := e.abs.words()
	for i := 0; i < n; i++ {
		w := ws[i/_W]
		if (w>>(uint(i)%_W))&1 != 0 {
			bits[i] = 1
		}
	}
	return bits
}
