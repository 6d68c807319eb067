package dashu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSqrtRemPerfectSquare(t *testing.T) {
	x := NewInt(144)
	s, r := new(Int), new(Int)
	s.SqrtRem(x, r)
	assert.Equal(t, "12", s.String())
	assert.True(t, r.IsZero())
}

func TestSqrtRemLargePower(t *testing.T) {
	// sqrt(3^2000): square the result and add the remainder to recover 3^2000.
	three := NewInt(3)
	x := powIntWord(three, 2000)
	s, r := new(Int), new(Int)
	s.SqrtRem(x, r)

	assert.True(t, r.Sign() >= 0)
	recovered := addInt(mulInt(s, s), r)
	assert.Equal(t, 0, recovered.Cmp(x))

	// sqrt(a)^2 <= a < (sqrt(a)+1)^2
	sPlus1 := addInt(s, NewInt(1))
	assert.True(t, mulInt(s, s).Cmp(x) <= 0)
	assert.True(t, x.Cmp(mulInt(sPlus1, sPlus1)) < 0)
}

func TestNthRootCube(t *testing.T) {
	x := NewInt(1000)
	z := new(Int).NthRoot(x, 3)
	assert.Equal(t, "10", z.String())
}

func TestIsPerfectSquare(t *testing.T) {
	require.True(t, NewInt(81).IsPerfectSquare())
	require.False(t, NewInt(80).IsPerfectSquare())
}
