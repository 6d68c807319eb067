package dashu

// Component H: GCD. Lehmer's method reduces multi-word operands using
// word-pair estimates (a small, fast extended Euclidean run on the
// leading words), falling through to one exact Euclidean step whenever
// the estimate can't be trusted against the unseen low-order bits. Once
// operands are down to one or two words, binary GCD (Knuth 4.5.2
// Algorithm B, adapted from a binaryGCD reference implementation)
// finishes the job. Lehmer's word-pair matrix is authored fresh.

// gcdWords returns gcd(x, y) for non-negative magnitudes.
func gcdWords(x, y []Word) []Word {
	x = append([]Word(nil), x...)
	y = append([]Word(nil), y...)
	if len(x) == 0 {
		return y
	}
	if len(y) == 0 {
		return x
	}
	for len(x) > 2 && len(y) > 2 {
		nx, ny := x, y
		if cmpWords(nx, ny) < 0 {
			nx, ny = ny, nx
		}
		A, B, C, D, steps := lehmerConvergents(nx, ny)
		if steps == 0 {
			_, r := divRemWords(nx, ny)
			x, y = ny, r
			continue
		}
		newX := subInt(mulIntWord(newIntFromWords(false, nx), int64(A)), mulIntWord(newIntFromWords(false, ny), int64(B)))
		newY := subInt(mulIntWord(newIntFromWords(false, ny), int64(D)), mulIntWord(newIntFromWords(false, nx), int64(C)))
		if newX.neg || newY.neg {
			_, r := divRemWords(nx, ny)
			x, y = ny, r
			continue
		}
		x, y = newX.abs.words(), newY.abs.words()
		if len(y) == 0 {
			return x
		}
	}
	return binaryGCDWords(x, y)
}

// lehmerConvergents runs the small-word extended Euclidean algorithm on
// the leading words of x and y (which must be equal length and satisfy
// x >= y), producing a 2x2 transformation matrix [[A,B],[C,D]] such that
// the true pair updates as (A*x - B*y, D*y - C*x). The
// guess is accepted only while it is provably correct regardless of the
// unseen low-order bits of x and y; steps counts how many convergent
// updates were safely taken (0 means the matrix is the identity and the
// caller should fall back to one exact Euclidean step).
func lehmerConvergents(x, y []Word) (A, B, C, D Word, steps int) {
	if len(x) != len(y) || len(x) == 0 {
		return 0, 0, 0, 0, 0
	}
	n := len(x)
	x1 := x[n-1]
	y1 := y[n-1]
	if y1 == 0 {
		return 0, 0, 0, 0, 0
	}
	A, B, C, D = 1, 0, 0, 1
	for y1 != 0 {
		qa := safeQuotient(x1, A, y1, C)
		qb := safeQuotient(x1, B, y1, D)
		if qa != qb {
			break
		}
		q := qa
		A, B = B, A-q*B
		C, D = D, C-q*D
		x1, y1 = y1, x1-q*y1
		steps++
		if steps > _W {
			break
		}
	}
	return A, B, C, D, steps
}

// safeQuotient computes floor((x1+a)/(y1+c)), returning a sentinel
// maximal value when the denominator would be zero (so the caller's
// qa != qb comparison rejects the step rather than dividing by zero).
func safeQuotient(x1, a, y1, c Word) Word {
	denom := y1 + c
	if denom == 0 {
		return ^Word(0)
	}
	return (x1 + a) / denom
}

// binaryGCDWords computes gcd(x, y) by Knuth 4.5.2 Algorithm B: strip the
// common power of two, then repeatedly subtract the smaller (shifted
// down to odd) from the larger.
func binaryGCDWords(x, y []Word) []Word {
	if len(x) == 0 {
		return y
	}
	if len(y) == 0 {
		return x
	}
	xz := trailingZeroBitsWords(x)
	yz := trailingZeroBitsWords(y)
	shift := xz
	if yz < shift {
		shift = yz
	}
	x = shrWords(x, xz)
	y = shrWords(y, yz)
	for len(y) > 0 {
		if cmpWords(x, y) > 0 {
			x, y = y, x
		}
		y = subWords(y, x)
		if len(y) == 0 {
			break
		}
		y = shrWords(y, trailingZeroBitsWords(y))
	}
	return shlWords(x, shift)
}

// ExtGCD returns g = gcd(x, y) and Bézout coefficients u, v such that
// u*x + v*y = g, via the standard iterative extended Euclidean algorithm
// over signed Int arithmetic (shared with GCD when called with
// non-nil X, Y). Lehmer's method above accelerates the
// magnitude computation for GCD alone; the coefficient recurrence here
// is the textbook one, since it is already O(log(min(x,y))) divisions
// regardless of word-pair acceleration.
func ExtGCD(x, y *Int) (g, u, v *Int) {
	oldR, r := new(Int).Abs(x), new(Int).Abs(y)
	oldU, curU := NewInt(1), NewInt(0)
	oldV, curV := NewInt(0), NewInt(1)
	for !r.IsZero() {
		q := quoInt(oldR, r)
		oldR, r = r, subInt(oldR, mulInt(q, r))
		oldU, curU = curU, subInt(oldU, mulInt(q, curU))
		oldV, curV = curV, subInt(oldV, mulInt(q, curV))
	}
	if x.neg {
		oldU = negInt(oldU)
	}
	if y.neg {
		oldV = negInt(oldV)
	}
	return oldR, oldU, oldV
}

// LCM returns the least common multiple of |x| and |y|:
// gcd(a,b)*lcm(a,b) = |a*b| when neither is zero.
func LCM(x, y *Int) *Int {
	if x.IsZero() || y.IsZero() {
		return NewInt(0)
	}
	g := new(Int).GCD(nil, nil, x, y)
	q := quoInt(new(Int).Abs(x), g)
	return mulInt(q, new(Int).Abs(y))
}
