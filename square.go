package dashu

// Component E: squaring. A dedicated schoolbook variant that computes
// only the upper triangle of the a_i*a_j cross products, doubles it, and
// adds the diagonal a_i^2 terms. For operands above the schoolbook
// threshold it falls through to the multiplication stack with both
// operands equal, matching the Karatsuba/Toom-3 cost model (no distinct
// "squaring" variant exists for either, since the saving from skipping
// duplicate cross terms is schoolbook-specific).
//
// Authored fresh from the general schoolbook multiply in mul.go,
// specialized to halve the cross-term work.

// basicSqr computes z = x*x by the diagonal+triangular method. z must
// have length 2*len(x) and be zeroed by the caller.
func basicSqr(z, x []Word) {
	n := len(x)
	if n == 0 {
		return
	}
	// Upper triangle: for each i < j, accumulate x[i]*x[j] once; it
	// contributes twice to the final result (at positions i+j), so the
	// running sum is doubled at the end via a left shift.
	for i := 0; i < n; i++ {
		if x[i] == 0 {
			continue
		}
		carry := Word(0)
		for j := i + 1; j < n; j++ {
			lo, hi := mulAdd2Carry(x[i], x[j], z[i+j], carry)
			z[i+j] = lo
			carry = hi
		}
		k := i + n
		for carry != 0 {
			s, c := addWithCarry(z[k], carry, 0)
			z[k] = s
			carry = c
			k++
		}
	}

	// Double the triangular sum (it's each cross term twice), then add
	// the diagonal a_i^2 terms.
	shlVU(z, z, 1)
	var carry Word
	for i := 0; i < n; i++ {
		lo, hi := mulAdd2Carry(x[i], x[i], z[2*i], carry)
		z[2*i] = lo
		s, c := addWithCarry(z[2*i+1], hi, 0)
		z[2*i+1] = s
		carry = c
	}
	for k := 2 * n; carry != 0 && k < len(z); k++ {
		s, c := addWithCarry(z[k], carry, 0)
		z[k] = s
		carry = c
	}
}

// sqrWords returns x*x as a freshly allocated, normalized word slice.
func sqrWords(x []Word) []Word {
	if len(x) == 0 {
		return nil
	}
	if len(x) < karatsubaThreshold {
		z := make([]Word, 2*len(x))
		basicSqr(z, x)
		return z[:normLen(z)]
	}
	return mulWords(x, x)
}
