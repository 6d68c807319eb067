package dashu

// Component M: float arithmetic. Add, Sub, Mul, Div, Sqrt, and the
// floor/ceil/trunc/fract family, each returning an Approximation. The
// general shape (align exponents, operate on the integer significands,
// round, renormalize) is the familiar one for arbitrary-precision floats,
// generalized from a base-2-only, shift-based alignment to an arbitrary
// base via powOfBase's integer exponentiation instead of a bit shift.

// powOfBase returns base^k as an *Int, k >= 0.
func powOfBase(base FloatBase, k uint) *Int {
	if k == 0 {
		return NewInt(1)
	}
	if base == Base2 {
		return newIntFromWords(false, shlWords([]Word{1}, uint(k)))
	}
	return powIntWord(NewInt(int64(base)), k)
}

func sameBase(a, b *FloatRepr) FloatBase {
	if a.base.get() != b.base.get() {
		panic("dashu: float operands have different bases")
	}
	return a.base.get()
}

func maxUint(a, b uint) uint {
	if a > b {
		return a
	}
	return b
}

// roundToPrecision truncates sig (the raw, possibly-too-long integer
// significand, exponent exp) down to at most `precision` base-digits,
// applying mode to the discarded tail, and renormalizes. precision == 0
// means unlimited: the normalized value is returned unrounded and tagged
// exact.
func roundToPrecision(base FloatBase, sig *Int, exp int64, ctx FloatContext) Approximation[*FloatRepr] {
	f := &FloatRepr{base: specialBaseHolder{base}, sig: *sig, exp: exp}
	f.normalize()
	if ctx.Precision == 0 {
		return exactApprox(f)
	}
	digits := digitCount(base, new(Int).Abs(&f.sig))
	if digits <= int(ctx.Precision) {
		return exactApprox(f)
	}
	extra := uint(digits - int(ctx.Precision))
	divisor := powOfBase(base, extra)
	abs := new(Int).Abs(&f.sig)
	q, r := new(Int), new(Int)
	q.QuoRem(abs, divisor, r)
	rounded, tag, exact := roundQuotient(ctx.Mode, f.sig.neg, q, r, divisor)
	result := rounded
	if f.sig.neg {
		result = negInt(result)
	}
	out := NewFloatFromInt(base, result, exp+int64(extra))
	if exact {
		return exactApprox(out)
	}
	return inexactApprox(out, tag)
}

// digitCount returns the number of base-digits in the non-negative
// integer x (0 has 0 digits: exact small integers stay short).
func digitCount(base FloatBase, x *Int) int {
	if x.IsZero() {
		return 0
	}
	if base == Base2 {
		return x.BitLen()
	}
	return len(formatInt(x, 10, false))
}

func checkFinite(fs ...*FloatRepr) {
	for _, f := range fs {
		if f.kind == infKind {
			panic("dashu: operation on infinity is not supported")
		}
	}
}

// Add returns x+y. Alignment rule: multiply the larger-exponent
// operand's significand by base^(exponent difference) so both share the
// smaller exponent, then add as integers and round to the context's
// precision.
func Add(x, y *FloatRepr, ctx FloatContext) Approximation[*FloatRepr] {
	checkFinite(x, y)
	base := sameBase(x, y)
	return addAligned(x, y, ctx, base, false)
}

// Sub returns x-y.
func Sub(x, y *FloatRepr, ctx FloatContext) Approximation[*FloatRepr] {
	checkFinite(x, y)
	base := sameBase(x, y)
	return addAligned(x, y, ctx, base, true)
}

func addAligned(x, y *FloatRepr, ctx FloatContext, base FloatBase, subtract bool) Approximation[*FloatRepr] {
	ySig := &y.sig
	if subtract {
		ySig = negInt(&y.sig)
	}
	if x.IsZero() {
		return roundToPrecision(base, ySig, y.exp, ctx)
	}
	if y.IsZero() || ySig.IsZero() {
		return roundToPrecision(base, &x.sig, x.exp, ctx)
	}

	xSig, xExp := &x.sig, x.exp
	yExp := y.exp
	useCtx := ctx

	if xExp < yExp {
		xSig, ySig = ySig, xSig
		xExp, yExp = yExp, xExp
	}
	diff := uint(xExp - yExp)

	// Once the shift reaches the target precision, y's highest digit
	// falls below x's least significant kept digit entirely: there is no
	// digit overlap left to add, so y collapses to a rounding nudge on
	// x's own precision-truncated value instead of a real digit-by-digit
	// sum.
	if useCtx.Precision != 0 && diff >= useCtx.Precision {
		return addNudge(base, xSig, xExp, ySig, yExp, useCtx)
	}

	scaled := mulInt(xSig, powOfBase(base, diff))
	sum := addInt(scaled, ySig)
	return roundToPrecision(base, sum, yExp, useCtx)
}

// addNudge handles the case where y's magnitude lies entirely below the
// last digit x's result will keep at useCtx.Precision: x is scaled to
// that final digit position exactly (no rounding of x needed, since its
// own digit count never exceeds the target here) and y's dropped
// magnitude is fed to roundQuotient as the remainder against one unit in
// that position, nudging the result by 0 or 1.
func addNudge(base FloatBase, xSig *Int, xExp int64, ySig *Int, yExp int64, useCtx FloatContext) Approximation[*FloatRepr] {
	absX := new(Int).Abs(xSig)
	digitsX := digitCount(base, absX)
	xMSDExp := xExp + int64(digitsX) - 1
	targetExp := xMSDExp - int64(useCtx.Precision) + 1

	shift := uint(xExp - targetExp)
	q0 := mulInt(absX, powOfBase(base, shift))
	absY := new(Int).Abs(ySig)
	d := powOfBase(base, uint(targetExp-yExp))

	rounded, tag, exact := roundQuotient(useCtx.Mode, xSig.neg, q0, absY, d)
	result := rounded
	if xSig.neg {
		result = negInt(result)
	}
	out := NewFloatFromInt(base, result, targetExp)
	if exact {
		return exactApprox(out)
	}
	return inexactApprox(out, tag)
}

const guardDigits = 2

// contextualPrecision returns ctx.Precision when it is non-zero, and
// otherwise the number of base-digits in f's significand. Div and Sqrt
// use it, so under a precision-0 context they round to an operand's
// digit count (the larger of the two for Div) and report an inexact
// result rather than failing; Add, Sub and Mul under precision 0 are
// exact.
func (f *FloatRepr) contextualPrecision(ctx FloatContext) uint {
	if ctx.Precision != 0 {
		return ctx.Precision
	}
	return uint(digitCount(f.base.get(), new(Int).Abs(&f.sig)))
}

// Mul returns x*y: multiply significands, add exponents, round.
func Mul(x, y *FloatRepr, ctx FloatContext) Approximation[*FloatRepr] {
	checkFinite(x, y)
	base := sameBase(x, y)
	if x.IsZero() || y.IsZero() {
		return exactApprox(NewFloatZero(base))
	}
	prod := mulInt(&x.sig, &y.sig)
	return roundToPrecision(base, prod, x.exp+y.exp, ctx)
}

// Div returns x/y: scale the numerator by base^(precision+guard),
// divide, round
func Div(x, y *FloatRepr, ctx FloatContext) Approximation[*FloatRepr] {
	checkFinite(x, y)
	base := sameBase(x, y)
	if y.IsZero() {
		if x.IsZero() {
			panic("dashu: 0/0 is not defined")
		}
		panic("dashu: division by zero")
	}
	if x.IsZero() {
		return exactApprox(NewFloatZero(base))
	}
	prec := maxUint(x.contextualPrecision(ctx), y.contextualPrecision(ctx))
	if ctx.Precision != 0 {
		prec = ctx.Precision
	}
	shiftDigits := prec + guardDigits
	num := mulInt(&x.sig, powOfBase(base, shiftDigits))
	q, r := new(Int), new(Int)
	q.QuoRem(num, &y.sig, r)
	exp := x.exp - y.exp - int64(shiftDigits)
	return roundToPrecision(base, q, exp, FloatContext{Precision: prec, Mode: ctx.Mode})
}

// Sqrt returns floor(sqrt(x)) scaled back: normalize so
// the significand has 2*precision digits and an even exponent, take the
// integer square root, and report exactness from the integer remainder.
func Sqrt(x *FloatRepr, ctx FloatContext) Approximation[*FloatRepr] {
	checkFinite(x)
	base := x.base.get()
	if x.sig.neg {
		panic("dashu: square root of negative number")
	}
	if x.IsZero() {
		return exactApprox(NewFloatZero(base))
	}
	prec := x.contextualPrecision(ctx)
	if ctx.Precision != 0 {
		prec = ctx.Precision
	}
	exp := x.exp
	sig := &x.sig
	if exp%2 != 0 {
		sig = mulInt(sig, NewInt(int64(base)))
		exp--
	}
	targetDigits := int64(2 * prec)
	curDigits := int64(digitCount(base, sig))
	if curDigits < targetDigits {
		extra := targetDigits - curDigits
		if extra%2 != 0 {
			extra++
		}
		sig = mulInt(sig, powOfBase(base, uint(extra)))
		exp -= extra
	}
	s, r := new(Int), new(Int)
	s.SqrtRem(sig, r)
	newExp := exp / 2
	if r.IsZero() {
		return exactApprox(NewFloatFromInt(base, s, newExp))
	}
	return inexactApprox(NewFloatFromInt(base, s, newExp), TagNoOp)
}

// splitAtExponent returns the integer part and the fractional remainder
// (as significand, exponent) of a finite, non-zero float whose exponent
// is negative floor/ceil/trunc/fract rule.
func (f *FloatRepr) splitAtExponent() (intPart *Int, fracSig *Int) {
	if f.exp >= 0 {
		return mulInt(&f.sig, powOfBase(f.base.get(), uint(f.exp))), NewInt(0)
	}
	digits := uint(-f.exp)
	divisor := powOfBase(f.base.get(), digits)
	q, r := new(Int), new(Int)
	q.QuoRem(&f.sig, divisor, r)
	return q, r
}

// Trunc returns the integer part of x toward zero.
func (x *FloatRepr) Trunc() *Int {
	if x.kind == infKind {
		panic("dashu: operation on infinity is not supported")
	}
	ip, _ := x.splitAtExponent()
	return ip
}

// Fract returns the fractional part of x as a float in the same base.
func (x *FloatRepr) Fract() *FloatRepr {
	if x.kind == infKind {
		panic("dashu: operation on infinity is not supported")
	}
	if x.exp >= 0 {
		return NewFloatZero(x.base.get())
	}
	_, frac := x.splitAtExponent()
	return NewFloatFromInt(x.base.get(), frac, x.exp)
}

// Floor returns the greatest integer <= x.
func (x *FloatRepr) Floor() *Int {
	ip, frac := x.splitAtExponent()
	if frac.Sign() < 0 {
		return subInt(ip, NewInt(1))
	}
	return ip
}

// Ceil returns the least integer >= x.
func (x *FloatRepr) Ceil() *Int {
	ip, frac := x.splitAtExponent()
	if frac.Sign() > 0 {
		return addInt(ip, NewInt(1))
	}
	return ip
}
