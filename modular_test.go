package dashu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReducedInverse(t *testing.T) {
	cd := NewConstDivisor(reprFromWord(97))
	a := NewReduced(reprFromWord(13), cd)
	inv := a.Inv()
	product := a.Mul(inv)
	assert.Equal(t, []Word{1}, product.Value().words())
}

func TestReducedAddSub(t *testing.T) {
	cd := NewConstDivisor(reprFromWord(97))
	a := NewReduced(reprFromWord(90), cd)
	b := NewReduced(reprFromWord(20), cd)
	sum := a.Add(b)
	assert.Equal(t, []Word{13}, sum.Value().words()) // (90+20) mod 97 = 13

	diff := a.Sub(b)
	assert.Equal(t, []Word{70}, diff.Value().words())
}

func TestReducedMismatchedRingsPanics(t *testing.T) {
	cd1 := NewConstDivisor(reprFromWord(97))
	cd2 := NewConstDivisor(reprFromWord(101))
	a := NewReduced(reprFromWord(5), cd1)
	b := NewReduced(reprFromWord(5), cd2)
	assert.Panics(t, func() {
		a.Add(b)
	})
}
