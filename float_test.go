package dashu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFloatNormalizesTrailingZeros(t *testing.T) {
	f := NewFloatFromInt(Base10, NewInt(100), 0)
	assert.Equal(t, "1e2", f.String())
}

func TestDecimalAddHalfEvenPrecisionThree(t *testing.T) {
	// 100 + 12e-1 = 101.2; rounded to 3 digits under HalfEven the dropped
	// digit (2) is under half the base, so the nudge path still adds one
	// to the truncated significand, landing on 101 tagged AddOne.
	hundred := NewFloatFromInt(Base10, NewInt(100), 0)
	onePointTwo := NewFloatFromInt(Base10, NewInt(12), -1)
	ctx := FloatContext{Precision: 3, Mode: RoundHalfEven}

	got := Add(hundred, onePointTwo, ctx)
	assert.False(t, got.Exact)
	assert.Equal(t, TagAddOne, got.Tag)
	assert.Equal(t, "101e0", got.Value.String())
}

func TestDecimalAddHalfEvenPrecisionFour(t *testing.T) {
	hundred := NewFloatFromInt(Base10, NewInt(100), 0)
	onePointTwo := NewFloatFromInt(Base10, NewInt(12), -1)
	ctx := FloatContext{Precision: 4, Mode: RoundHalfEven}

	got := Add(hundred, onePointTwo, ctx)
	assert.True(t, got.Exact)
	assert.Equal(t, "1012e-1", got.Value.String())
}

func TestFloatMulAndDiv(t *testing.T) {
	a := NewFloatFromInt(Base10, NewInt(25), 0)
	b := NewFloatFromInt(Base10, NewInt(4), 0)
	ctx := FloatContext{Precision: 0}

	prod := Mul(a, b, ctx)
	require.True(t, prod.Exact)
	assert.Equal(t, "1e2", prod.Value.String())

	quot := Div(prod.Value, b, FloatContext{Precision: 10, Mode: RoundHalfEven})
	assert.Equal(t, "25", quot.Value.Trunc().String())
}

func TestFloatSqrtOfThreeIsBracketed(t *testing.T) {
	// sqrt(3) in base 2 at 200 bits of precision: 1 < sqrt(3) < 2, so the
	// integer part is always 1 regardless of how many bits are kept.
	three := NewFloatFromInt(Base2, NewInt(3), 0)
	ctx := FloatContext{Precision: 200, Mode: RoundHalfEven}

	got := Sqrt(three, ctx)
	assert.False(t, got.Exact) // sqrt(3) is irrational: never exact
	s := got.Value

	assert.Equal(t, "1", s.Trunc().String())
	assert.False(t, s.Fract().IsZero())

	squared := Mul(s, s, FloatContext{Precision: 0})
	assert.True(t, squared.Value.Trunc().Cmp(NewInt(3)) <= 0)
}

func TestFloatSqrtPerfectSquare(t *testing.T) {
	nine := NewFloatFromInt(Base10, NewInt(9), 0)
	got := Sqrt(nine, FloatContext{Precision: 5, Mode: RoundHalfEven})
	assert.True(t, got.Exact)
	assert.Equal(t, "3", got.Value.Trunc().String())
}

func TestFloatTruncFloorCeilFract(t *testing.T) {
	// 3.25 in base 10: sig=325, exp=-2.
	f := NewFloatFromInt(Base10, NewInt(325), -2)
	assert.Equal(t, "3", f.Trunc().String())
	assert.Equal(t, "3", f.Floor().String())
	assert.Equal(t, "4", f.Ceil().String())
	assert.False(t, f.Fract().IsZero())

	neg := NewFloatFromInt(Base10, NewInt(-325), -2)
	assert.Equal(t, "-3", neg.Trunc().String())
	assert.Equal(t, "-4", neg.Floor().String())
	assert.Equal(t, "-3", neg.Ceil().String())
}

func TestParseFloatRoundTrip(t *testing.T) {
	f, err := ParseFloat("3.25", 10, Base10)
	require.NoError(t, err)
	assert.Equal(t, "325e-2", f.String())

	f2, err := ParseFloat("-1.5e3", 10, Base10)
	require.NoError(t, err)
	assert.True(t, f2.Sign() < 0)
	assert.Equal(t, "-15e2", f2.String())
}

func TestParseFloatRejectsEmptyInput(t *testing.T) {
	_, err := ParseFloat("", 10, Base10)
	require.Error(t, err)
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, ErrNoDigits, perr.Kind)
}
