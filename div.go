package dashu

// Component F: the division kernel. A single-word fast path plus Knuth
// Algorithm D for the general case: normalize, estimate a quotient digit
// by a hardware 2-by-1 word division (divWW) refined against the next
// divisor word, correct at most twice per digit. No precomputed
// reciprocal is used here.

// divWordWords divides x by a single word d, returning the quotient and
// remainder.
func divWordWords(x []Word, d Word) (q []Word, r Word) {
	n := len(x)
	if n == 0 {
		return nil, 0
	}
	qs := make([]Word, n)
	r = 0
	for i := n - 1; i >= 0; i-- {
		qs[i], r = divWW(r, x[i], d)
	}
	return qs[:normLen(qs)], r
}

// normalizeDivisor left-shifts v so its top bit is set, returning the
// shift count and the normalized divisor — the normalization step every
// caller lacking a pre-normalized denominator must run before long
// division.
func normalizeDivisor(v []Word) (shift uint, vNorm []Word) {
	n := normLen(v)
	shift = nlz(v[n-1])
	if shift == 0 {
		return 0, append([]Word(nil), v[:n]...)
	}
	vNorm = make([]Word, n)
	shlVU(vNorm, v[:n], shift)
	return shift, vNorm
}

// divRemWords computes q, r such that x = q*v + r, 0 <= r < v, by
// normalized long division (Knuth Algorithm D). v must be non-zero.
func divRemWords(x, v []Word) (q, r []Word) {
	nv := normLen(v)
	nx := normLen(x)
	if nv == 0 {
		panic("dashu: division by zero")
	}
	if nv == 1 {
		qs, rw := divWordWords(x[:nx], v[0])
		if rw == 0 {
			return qs, nil
		}
		return qs, []Word{rw}
	}
	if cmpWords(x[:nx], v[:nv]) < 0 {
		return nil, append([]Word(nil), x[:nx]...)
	}

	shift := nlz(v[nv-1])
	vn := make([]Word, nv)
	shlVU(vn, v[:nv], shift)

	un := make([]Word, nx+1)
	if shift == 0 {
		copy(un, x[:nx])
	} else {
		c := shlVU(un[:nx], x[:nx], shift)
		un[nx] = c
	}

	n := nv
	m := len(un) - 1 - n
	if m < 0 {
		m = 0
	}
	qs := make([]Word, m+1)

	vTop, vNext := vn[n-1], vn[n-2]

	for j := m; j >= 0; j-- {
		// Estimate the quotient digit from the top three words of the
		// remaining dividend against the divisor's top two words.
		num2, num1, num0 := un[j+n], un[j+n-1], un[j+n-2]
		var qhat, rhat Word
		var rhatOverflowed bool
		if num2 == vTop {
			qhat = _M
			var carry Word
			rhat, carry = addWithCarry(num1, vTop, 0)
			rhatOverflowed = carry != 0
		} else {
			qhat, rhat = divWW(num2, num1, vTop)
		}
		// The refinement test below is only valid while rhat is a true
		// (non-overflowed) single-word value; once it overflows B, qhat
		// is already known to be within 1 of the true digit and the
		// add-back step after the multiply-subtract handles the rest.
		for !rhatOverflowed {
			lo, hi := mulDWord(qhat, vNext)
			if hi < rhat || (hi == rhat && lo <= num0) {
				break
			}
			qhat--
			var carry Word
			rhat, carry = addWithCarry(rhat, vTop, 0)
			rhatOverflowed = carry != 0
		}

		// Multiply and subtract qhat*v from the working window, then
		// correct if the estimate overshot (the "add back" step, which
		// happens at most twice per digit).
		borrow := mulSubWindow(un[j:j+n+1], vn, qhat)
		if borrow != 0 {
			qhat--
			c := addVV(un[j:j+n], un[j:j+n], vn)
			un[j+n] += c
		}
		qs[j] = qhat
	}

	rem := make([]Word, n)
	shrVU(rem, un[:n], shift)
	return qs[:normLen(qs)], rem[:normLen(rem)]
}

// mulSubWindow computes window -= qhat*v in place over an n+1-word
// window, returning the borrow (0 or 1) that indicates qhat overshot.
func mulSubWindow(window, v []Word, qhat Word) Word {
	var borrow, carry Word
	n := len(v)
	for i := 0; i < n; i++ {
		lo, hi := mulAdd2Carry(qhat, v[i], carry, 0)
		carry = hi
		d, b := subWithBorrow(window[i], lo, borrow)
		window[i] = d
		borrow = b
	}
	d, b := subWithBorrow(window[n], carry, borrow)
	window[n] = d
	return b
}
