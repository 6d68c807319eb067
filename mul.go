package dashu

// Component D: the multiplication stack. Entry point mulWords dispatches
// on the smaller operand's length to schoolbook, Karatsuba, or Toom-3
// against the crossover thresholds below. Schoolbook and Karatsuba
// (including the scratch-memory layout) are adapted from a recovered
// nat.go's basicMul and karatsuba; Toom-3 has no Go counterpart anywhere
// in the pack and is authored fresh against a five-point
// evaluation/interpolation scheme at {0, 1, -1, 2, infinity}.

// karatsubaThreshold/toom3Threshold are the multiplication stack's
// crossover word-lengths, overridable via config.Defaults for hosts that
// want to tune them.
var (
	karatsubaThreshold = 24
	toom3Threshold     = 192
)

// ApplyMultiplicationThresholds overrides the package-level Karatsuba/
// Toom-3 crossover points, normally called once at startup from values
// loaded via config.Defaults.
func ApplyMultiplicationThresholds(karatsuba, toom3 int) {
	karatsubaThreshold = karatsuba
	toom3Threshold = toom3
}

// mulAddVWW sets z = x*y + r (r a single word), returning the carry word.
func mulAddVWW(z, x []Word, y, r Word) (carry Word) {
	carry = r
	for i, xi := range x {
		lo, hi := mulAdd2Carry(xi, y, carry, 0)
		z[i] = lo
		carry = hi
	}
	return carry
}

// addMulVVW computes z += x*y (y a single word) in place, returning the
// carry word.
func addMulVVW(z, x []Word, y Word) (carry Word) {
	for i, xi := range x {
		lo, hi := mulAdd2Carry(xi, y, z[i], carry)
		z[i] = lo
		carry = hi
	}
	return carry
}

// basicMul computes z = x*y by schoolbook multiplication. z must have
// length len(x)+len(y) and be zeroed by the caller.
func basicMul(z, x, y []Word) {
	z[len(x)] = mulAddVWW(z[0:len(x)], x, y[0], 0)
	for i := 1; i < len(y); i++ {
		if yi := y[i]; yi != 0 {
			z[len(x)+i] = addMulVVW(z[i:i+len(x)], x, yi)
		}
	}
}

// alias reports whether x and y share backing storage (pointer identity
// of the first element), mirroring recovered nat.go's aliasing guard used
// to decide whether a Karatsuba sub-call may write into its own operand.
func alias(x, y []Word) bool {
	return len(x) > 0 && len(y) > 0 && &x[0] == &y[0]
}

// karatsubaLen halves n (integer division by two) until it no longer
// exceeds threshold and returns the result; the result is not rounded to
// a power of two, and karatsubaDispatch makes an odd result even.
func karatsubaLen(n, threshold int) int {
	for n > threshold {
		n >>= 1
	}
	return n
}

// karatsuba computes z = x*y for len(x) == len(y) == n. When scratch has
// at least 2*n words, its first 2*n words hold xd = |x1-x0| (n/2 words),
// yd = |y1-y0| (n/2 words) and their product (n words); otherwise those
// are freshly allocated. z must have length 2*n.
func karatsuba(z, x, y, scratch []Word) {
	n := len(x)
	if n&1 != 0 || n < 2 || alias(z, x) || alias(z, y) {
		basicMul(z, x, y)
		return
	}
	k := n / 2

	x0, x1 := x[:k], x[k:]
	y0, y1 := y[:k], y[k:]

	// z0 = x0*y0, z2 = x1*y1, placed directly into z's low/high halves.
	mulWordsInto(z[:2*k], x0, y0, scratch)
	mulWordsInto(z[2*k:4*k], x1, y1, scratch)

	// xd = |x1-x0|, yd = |y1-y0|; xdNeg ^ ydNeg tells us whether
	// xd*yd must be added or subtracted from the middle term. These and
	// the mid product are carved out of the caller's scratch region when
	// it is large enough, avoiding a fresh allocation per recursion level.
	var xd, yd, mid []Word
	if len(scratch) >= 4*k {
		xd, yd, mid = scratch[:k], scratch[k:2*k], scratch[2*k:4*k]
	} else {
		xd, yd, mid = make([]Word, k), make([]Word, k), make([]Word, 2*k)
	}
	xdNeg := absDiffWords(xd, x1, x0)
	ydNeg := absDiffWords(yd, y1, y0)

	mulWordsInto(mid, xd, yd, nil)

	// z1 = z0 + z2 - sign(xdNeg^ydNeg)*mid
	sum := addWords(z[:2*k], z[2*k:])
	var z1 []Word
	if xdNeg != ydNeg {
		z1 = addWords(sum, mid)
	} else {
		z1 = subAbs(sum, mid)
	}

	// z += z1 << (k words)
	addAtWords(z, z1, k)
}

// absDiffWords sets z = |x-y|, returning true if x < y (i.e. the true
// difference is negative).
func absDiffWords(z, x, y []Word) bool {
	if cmpWords(x, y) < 0 {
		subVV(z, y, x)
		return true
	}
	subVV(z, x, y)
	return false
}

// subAbs returns x-y assuming x >= y, as a freshly normalized slice, for
// use where both operands may have trailing zero words (not yet trimmed).
func subAbs(x, y []Word) []Word {
	nx, ny := normLen(x), normLen(y)
	return subWords(x[:nx], y[:ny])
}

// addAtWords adds x into z starting at word offset i, propagating carry
// through the remainder of z.
func addAtWords(z, x []Word, i int) {
	if c := addVV(z[i:i+len(x)], z[i:i+len(x)], x); c != 0 {
		addVW(z[i+len(x):], z[i+len(x):], c)
	}
}

// mulWordsInto computes z = x*y into a caller-supplied, correctly sized z,
// recursing through the multiplication stack.
func mulWordsInto(z, x, y, scratch []Word) {
	for i := range z {
		z[i] = 0
	}
	n := min(len(x), len(y))
	switch {
	case n < karatsubaThreshold:
		if len(x) < len(y) {
			basicMul(z, y, x)
		} else {
			basicMul(z, x, y)
		}
	case n <= toom3Threshold:
		karatsubaDispatch(z, x, y)
	default:
		toom3(z, x, y)
	}
}

// karatsubaDispatch pads x and y to a common, even length before invoking
// karatsuba, and folds in any remaining high words with schoolbook passes
// (mirroring recovered nat.go's cmul, which handles unequal-length
// operands the same way).
func karatsubaDispatch(z, x, y []Word) {
	if len(x) < len(y) {
		x, y = y, x
	}
	if len(y) < karatsubaThreshold {
		basicMul(z, x, y)
		return
	}
	n := karatsubaLen(len(y), karatsubaThreshold)
	if n&1 != 0 {
		n--
	}
	if n < 2 {
		basicMul(z, x, y)
		return
	}
	scratch := make([]Word, 4*n)
	// Multiply the aligned n-word heads via Karatsuba, then fold in the
	// remaining high words of x (and of y, if any) schoolbook-style.
	head := make([]Word, 2*n)
	karatsuba(head, x[:n], y[:n], scratch)
	copy(z[:2*n], head)

	if len(y) > n {
		rem := make([]Word, len(x)-n+len(y)-n)
		mulWordsInto(rem, x[n:], y[n:], nil)
		addAtWords(z, rem, 2*n)
	}
	if len(x) > n {
		cross := make([]Word, (len(x)-n)+n)
		mulWordsInto(cross, x[n:], y[:n], nil)
		addAtWords(z, cross, n)
	}
	if len(y) > n {
		cross := make([]Word, n+(len(y)-n))
		mulWordsInto(cross, x[:n], y[n:], nil)
		addAtWords(z, cross, n)
	}
}

// toom3 computes z = x*y by splitting each operand into three limbs and
// evaluating the product polynomial at 0, 1, -1, 2, infinity. It
// allocates its temporaries per call and uses Int-level helpers for the
// five-point interpolation's exact divisions by 2, 3 and 6. The
// multiplication stack has no single preallocated arena: mulWordsInto
// does not use its scratch argument, and karatsubaDispatch allocates its
// own scratch and partial products on every call.
func toom3(z, x, y []Word) {
	k := (max(len(x), len(y)) + 2) / 3
	split3 := func(v []Word) (v0, v1, v2 []Word) {
		v0 = padTrim(v, 0, k)
		v1 = padTrim(v, k, k)
		v2 = padTrim(v, 2*k, len(v)-2*k)
		return
	}
	x0, x1, x2 := split3(x)
	y0, y1, y2 := split3(y)

	toInt := func(v []Word) *Int { return newIntFromWords(false, v) }
	X0, X1, X2 := toInt(x0), toInt(x1), toInt(x2)
	Y0, Y1, Y2 := toInt(y0), toInt(y1), toInt(y2)

	// Evaluate both operand polynomials at 0, 1, -1, 2, infinity and
	// multiply pointwise (five half-size multiplications replace one
	// full-size schoolbook pass).
	xSum := addInt(X0, X2)
	ySum := addInt(Y0, Y2)
	p0 := mulInt(X0, Y0)                                // p(0)
	pInf := mulInt(X2, Y2)                              // p(inf), i.e. c4
	p1 := mulInt(addInt(xSum, X1), addInt(ySum, Y1))     // p(1)
	pm1 := mulInt(subInt(xSum, X1), subInt(ySum, Y1))    // p(-1)
	xAt2 := addInt(mulIntWord(X2, 4), addInt(mulIntWord(X1, 2), X0))
	yAt2 := addInt(mulIntWord(Y2, 4), addInt(mulIntWord(Y1, 2), Y0))
	p2 := mulInt(xAt2, yAt2) // p(2)

	// Interpolate the degree-4 product polynomial's coefficients c0..c4
	// from the five samples, using only exact divisions by 2, 3 and 6.
	c0 := p0
	c4 := pInf
	a := divIntWordExact(subInt(p1, pm1), 2) // a = c1 + c3
	c2 := subInt(divIntWordExact(addInt(p1, pm1), 2), addInt(c4, c0))
	// p(2) = 16c4 + 8c3 + 4c2 + 2c1 + c0, and c3 = a - c1, so
	// 8c3 + 2c1 = 8a - 6c1, giving c1 = (8a - (p2 - 16c4 - c0 - 4c2)) / 6.
	rhs := subInt(mulIntWord(a, 8), subInt(p2, addInt(mulIntWord(c4, 16), addInt(c0, mulIntWord(c2, 4)))))
	c1 := divIntWordExact(rhs, 6)
	c3 := subInt(a, c1)

	result := shlInt(c4, uint(4*k)*_W)
	result = addInt(result, shlInt(c3, uint(3*k)*_W))
	result = addInt(result, shlInt(c2, uint(2*k)*_W))
	result = addInt(result, shlInt(c1, uint(k)*_W))
	result = addInt(result, c0)

	rw := result.abs.words()
	copy(z, rw)
	for i := len(rw); i < len(z); i++ {
		z[i] = 0
	}
}

// padTrim extracts a k-word limb of v starting at word offset off,
// zero-padding if v is shorter than off+k.
func padTrim(v []Word, off, k int) []Word {
	if k <= 0 {
		return nil
	}
	out := make([]Word, k)
	if off < len(v) {
		n := min(k, len(v)-off)
		copy(out, v[off:off+n])
	}
	return out[:normLen(out)]
}

// mulWords returns x*y as a freshly allocated, normalized word slice; the
// public-facing entry point for the multiplication stack.
func mulWords(x, y []Word) []Word {
	if len(x) == 0 || len(y) == 0 {
		return nil
	}
	z := make([]Word, len(x)+len(y))
	mulWordsInto(z, x, y, nil)
	return z[:normLen(z)]
}
