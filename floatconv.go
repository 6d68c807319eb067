package dashu

import "strings"

// Component M continued: float text form A value is
// `sign * significand_digits * radix^(scale - fraction_digit_count)`.
// Grounded on scan/Format shape (sign handling,
// charset-by-verb dispatch) generalized to floats via
// marker-by-radix table.

// exponentMarkers returns the accepted exponent-marker characters for a
// given parse radix table (radix 10 gets e/E; any
// radix accepts the radix-generic @; and each of binary/octal/hex gets
// its own single-letter marker when parsing in that radix).
func exponentMarkers(radix int) []byte {
	markers := []byte{'@'}
	switch radix {
	case 10:
		markers = append(markers, 'e', 'E')
	case 2:
		markers = append(markers, 'b', 'B', 'p', 'P')
	case 8:
		markers = append(markers, 'o', 'O')
	case 16:
		markers = append(markers, 'h', 'H', 'p', 'P')
	}
	return markers
}

func isMarker(ch byte, markers []byte) bool {
	for _, m := range markers {
		if ch == m {
			return true
		}
	}
	return false
}

// ParseFloat parses s as a signed float in the given integer radix
// (which must match the FloatRepr's base after scale interpretation:
// base 10 text for a Base10 float, base 2/8/16 text for a Base2 float —
// §6 says the marker determines the *scale* base, not the significand's
// digit radix, which is always `radix`).
func ParseFloat(s string, radix int, base FloatBase) (*FloatRepr, error) {
	orig := s
	neg := false
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}
	if s == "" {
		return nil, &ParseError{Kind: ErrNoDigits, Input: orig}
	}

	markers := exponentMarkers(radix)
	markerIdx := -1
	for i := 0; i < len(s); i++ {
		if isMarker(s[i], markers) {
			markerIdx = i
			break
		}
	}
	mantissa := s
	var scale int64
	if markerIdx >= 0 {
		mantissa = s[:markerIdx]
		expPart := s[markerIdx+1:]
		expInt, err := ParseInt(expPart, 10)
		if err != nil {
			return nil, err
		}
		if expInt.abs.Len() > 1 || (expInt.abs.Len() == 1 && expInt.abs.words()[0] > 1<<63-1) {
			return nil, &ParseError{Kind: ErrInvalidDigit, Input: orig}
		}
		scale = intToInt64(expInt)
	}

	dotIdx := strings.IndexByte(mantissa, '.')
	digitsPart := mantissa
	fracDigits := 0
	if dotIdx >= 0 {
		digitsPart = mantissa[:dotIdx] + mantissa[dotIdx+1:]
		fracDigits = len(strings.ReplaceAll(mantissa[dotIdx+1:], "_", ""))
	}
	digitsPart = strings.ReplaceAll(digitsPart, "_", "")
	if digitsPart == "" {
		return nil, &ParseError{Kind: ErrNoDigits, Input: orig}
	}

	sig, err := ParseInt(digitsPart, radix)
	if err != nil {
		return nil, err
	}
	if neg {
		sig = negInt(sig)
	}
	// Octal and hex digits of a Base2 float are 3 and 4 binary digits
	// each; a 'p' marker scales by 2 rather than by radix.
	digitScale := int64(1)
	if base == Base2 {
		switch radix {
		case 8:
			digitScale = 3
		case 16:
			digitScale = 4
		}
	}
	expScale := digitScale
	if markerIdx >= 0 && (s[markerIdx] == 'p' || s[markerIdx] == 'P') {
		expScale = 1
	}
	exp := scale*expScale - int64(fracDigits)*digitScale
	return NewFloatFromInt(base, sig, exp), nil
}

// intToInt64 extracts a small Int's value as int64, panicking on
// overflow (exponents this large are unrepresentable in practice and
// indicate malformed input).
func intToInt64(x *Int) int64 {
	if x.abs.Len() == 0 {
		return 0
	}
	w := x.abs.words()[0]
	if x.abs.Len() > 1 || w > 1<<63 || (w == 1<<63 && !x.neg) {
		panic("dashu: value does not fit in int64")
	}
	v := int64(w)
	if x.neg {
		v = -v
	}
	return v
}

// String renders f in its own base's natural text form: decimal with an
// 'e' exponent marker for Base10, and for Base2 the significand's hex
// digits (no '0x' prefix), a 'p' marker and the decimal base-2 exponent
// (the 'p' marker scales by base 2).
func (f *FloatRepr) String() string {
	if f.kind == infKind {
		if f.neg {
			return "-inf"
		}
		return "inf"
	}
	if f.IsZero() {
		return "0"
	}
	radix := 10
	marker := "e"
	if f.base.get() == Base2 {
		radix = 16
		marker = "p"
	}
	digits := formatInt(new(Int).Abs(&f.sig), radix, false)
	sign := ""
	if f.sig.neg {
		sign = "-"
	}
	return sign + digits + marker + formatInt(NewInt(f.exp), 10, false)
}
