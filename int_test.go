package dashu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntBasicArithmetic(t *testing.T) {
	a := NewInt(7)
	b := NewInt(-3)
	assert.Equal(t, "4", addInt(a, b).String())
	assert.Equal(t, "10", subInt(a, b).String())
	assert.Equal(t, "-21", mulInt(a, b).String())
}

func TestIntSignOfZero(t *testing.T) {
	z := NewInt(0)
	assert.Equal(t, 0, z.Sign())
	assert.False(t, z.neg)

	neg := new(Int).Neg(z)
	assert.False(t, neg.neg, "negating zero must stay positive")
}

func TestHexMultiplicationNoCarryLost(t *testing.T) {
	// 0xffff * 0x1 = 0x10000
	x, err := ParseInt("0xffff", 0)
	require.NoError(t, err)
	y := NewInt(1)
	got := mulInt(x, y)
	assert.Equal(t, "10000", formatInt(got, 16, false))
}

func TestQuoRemTruncatedSemantics(t *testing.T) {
	a := NewInt(-7)
	b := NewInt(2)
	q, r := new(Int), new(Int)
	q.QuoRem(a, b, r)
	assert.Equal(t, "-3", q.String())
	assert.Equal(t, "-1", r.String())

	// (a/b)*b + a%b == a
	check := addInt(mulInt(q, b), r)
	assert.Equal(t, 0, check.Cmp(a))
}

func TestDivModEuclidean(t *testing.T) {
	a := NewInt(-7)
	b := NewInt(2)
	q, m := new(Int), new(Int)
	q.DivMod(a, b, m)
	assert.True(t, m.Sign() >= 0, "Euclidean remainder must be non-negative")
	check := addInt(mulInt(q, b), m)
	assert.Equal(t, 0, check.Cmp(a))
}

func TestCmpAndBitLen(t *testing.T) {
	a := NewInt(255)
	assert.Equal(t, 8, a.BitLen())
	assert.Equal(t, 1, a.Cmp(NewInt(254)))
	assert.Equal(t, -1, NewInt(254).Cmp(a))
}
