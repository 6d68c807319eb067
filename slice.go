package dashu

// Component C: in-place add, sub, shift and compare on word slices, the
// multi-word layer every higher algorithm is built from. Grounded on
// recovered nat.go's cadd/csub/shl/shr (other_examples' bford-go copy of
// math/big's nat.go), rebuilt atop word.go's math/bits-based primitives
// instead of the historical addVV/subVV assembly routines, which are not
// present anywhere in the retrieved pack.

// addVV sets z = x + y for equal-length x, y, z, returning the carry out
// of the top word.
func addVV(z, x, y []Word) (carry Word) {
	for i := range z {
		z[i], carry = addWithCarry(x[i], y[i], carry)
	}
	return carry
}

// subVV sets z = x - y for equal-length x, y, z, returning the borrow out
// of the top word.
func subVV(z, x, y []Word) (borrow Word) {
	for i := range z {
		z[i], borrow = subWithBorrow(x[i], y[i], borrow)
	}
	return borrow
}

// addVW sets z = x + w for a single word w, propagating the carry through
// trailing words.
func addVW(z, x []Word, w Word) (carry Word) {
	carry = w
	i := 0
	for ; carry != 0 && i < len(x); i++ {
		z[i], carry = addWithCarry(x[i], 0, carry)
	}
	if i < len(z) {
		copy(z[i:], x[i:])
	}
	return carry
}

// subVW sets z = x - w for a single word w, propagating the borrow.
func subVW(z, x []Word, w Word) (borrow Word) {
	borrow = w
	i := 0
	for ; borrow != 0 && i < len(x); i++ {
		z[i], borrow = subWithBorrow(x[i], 0, borrow)
	}
	if i < len(z) {
		copy(z[i:], x[i:])
	}
	return borrow
}

// shlVU shifts x left by shift (0 <= shift < _W) bits into z, returning
// the bits shifted off the top, packed into the low bits of the returned
// Word.
func shlVU(z, x []Word, shift uint) (carryOut Word) {
	if shift == 0 {
		copy(z, x)
		return 0
	}
	n := len(x)
	for i := n - 1; i >= 0; i-- {
		hi := x[i] << shift
		lo := Word(0)
		if i > 0 {
			lo = x[i-1] >> (_W - shift)
		}
		z[i] = hi | lo
	}
	if n > 0 {
		carryOut = x[n-1] >> (_W - shift)
	}
	return carryOut
}

// shrVU shifts x right by shift (0 <= shift < _W) bits into z, returning
// the bits shifted off the bottom, packed into the high bits of the
// returned Word.
func shrVU(z, x []Word, shift uint) (carryOut Word) {
	if shift == 0 {
		copy(z, x)
		return 0
	}
	n := len(x)
	for i := 0; i < n; i++ {
		lo := x[i] >> shift
		hi := Word(0)
		if i+1 < n {
			hi = x[i+1] << (_W - shift)
		}
		z[i] = lo | hi
	}
	if n > 0 {
		carryOut = x[0] << (_W - shift)
	}
	return carryOut
}

// shlWords shifts x left by an arbitrary non-negative bit count into a
// freshly sized result, the convenience wrapper used above the primitive
// shlVU when the caller doesn't already have an appropriately sized
// destination.
func shlWords(x []Word, bits uint) []Word {
	if len(x) == 0 {
		return nil
	}
	wordShift := int(bits / _W)
	bitShift := bits % _W
	n := len(x) + wordShift
	if bitShift != 0 {
		n++
	}
	z := make([]Word, n)
	if bitShift == 0 {
		copy(z[wordShift:], x)
	} else {
		carry := shlVU(z[wordShift:wordShift+len(x)], x, bitShift)
		z[wordShift+len(x)] = carry
	}
	return z[:normLen(z)]
}

// shrWords shifts x right by an arbitrary non-negative bit count.
func shrWords(x []Word, bits uint) []Word {
	wordShift := int(bits / _W)
	bitShift := bits % _W
	if wordShift >= len(x) {
		return nil
	}
	src := x[wordShift:]
	z := make([]Word, len(src))
	shrVU(z, src, bitShift)
	return z[:normLen(z)]
}

// bitLenWords returns the number of bits required to represent x (0 for an
// empty/zero slice).
func bitLenWords(x []Word) int {
	n := normLen(x)
	if n == 0 {
		return 0
	}
	return (n-1)*_W + (_W - int(nlz(x[n-1])))
}

// trailingZeroBitsWords returns the number of trailing zero bits in x.
func trailingZeroBitsWords(x []Word) uint {
	n := normLen(x)
	if n == 0 {
		return 0
	}
	for i := 0; i < n; i++ {
		if x[i] != 0 {
			return uint(i)*_W + ntz(x[i])
		}
	}
	return 0
}

// addWords returns x+y as a freshly allocated, normalized word slice.
func addWords(x, y []Word) []Word {
	if len(x) < len(y) {
		x, y = y, x
	}
	z := make([]Word, len(x)+1)
	c := addVV(z[:len(y)], x[:len(y)], y)
	c = addVW(z[len(y):len(x)], x[len(y):], c)
	z[len(x)] = c
	return z[:normLen(z)]
}

// subWords returns x-y (x must be >= y) as a freshly allocated, normalized
// word slice.
func subWords(x, y []Word) []Word {
	z := make([]Word, len(x))
	b := subVV(z[:len(y)], x[:len(y)], y)
	subVW(z[len(y):], x[len(y):], b)
	return z[:normLen(z)]
}
