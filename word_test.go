package dashu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddWithCarry(t *testing.T) {
	sum, carry := addWithCarry(_M, 1, 0)
	assert.Equal(t, Word(0), sum)
	assert.Equal(t, Word(1), carry)

	sum, carry = addWithCarry(1, 2, 1)
	assert.Equal(t, Word(4), sum)
	assert.Equal(t, Word(0), carry)
}

func TestSubWithBorrow(t *testing.T) {
	diff, borrow := subWithBorrow(0, 1, 0)
	assert.Equal(t, Word(_M), diff)
	assert.Equal(t, Word(1), borrow)
}

func TestMulDWord(t *testing.T) {
	lo, hi := mulDWord(_M, _M)
	// (2^64-1)^2 = 2^128 - 2^65 + 1
	assert.Equal(t, Word(1), lo)
	assert.Equal(t, Word(_M-1), hi)
}

func TestDivWW(t *testing.T) {
	q, r := divWW(0, 100, 7)
	assert.Equal(t, Word(14), q)
	assert.Equal(t, Word(2), r)
}

func TestDivWWOverflowPanics(t *testing.T) {
	assert.Panics(t, func() {
		divWW(5, 0, 3)
	})
}

func TestNlzNtz(t *testing.T) {
	assert.Equal(t, uint(63), nlz(1))
	assert.Equal(t, uint(0), nlz(1<<63))
	assert.Equal(t, uint(0), ntz(1))
	assert.Equal(t, uint(63), ntz(1<<63))
}
