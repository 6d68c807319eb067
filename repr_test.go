package dashu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReprZeroAndOne(t *testing.T) {
	assert.True(t, zeroRepr.IsZero())
	assert.True(t, oneRepr.IsOne())
	assert.Equal(t, 0, zeroRepr.Len())
	assert.Equal(t, 1, oneRepr.Len())
}

func TestReprInlineVsHeap(t *testing.T) {
	small := reprFromOwned([]Word{1, 2})
	assert.True(t, small.isInline())

	big := reprFromOwned([]Word{1, 2, 3})
	assert.False(t, big.isInline())
	assert.Equal(t, 3, big.Len())
}

func TestReprTrimsLeadingZeros(t *testing.T) {
	r := reprFromOwned([]Word{5, 0, 0})
	assert.Equal(t, 1, r.Len())
	assert.Equal(t, []Word{5}, r.words())
}

func TestCmpWordsPanicsOnUnnormalized(t *testing.T) {
	assert.Panics(t, func() {
		cmpWords([]Word{1, 0}, []Word{1})
	})
}

func TestCloneIntoReusesCapacityInRange(t *testing.T) {
	var r Repr
	src := reprFromOwned([]Word{1, 2, 3, 4})
	r.CloneInto(src)
	assert.Equal(t, 4, r.Len())
	assert.Equal(t, src.words(), r.words())

	// Reassign from a shorter (but still heap-sized) source; capacity
	// within [m, 4m] should be reused rather than reallocated.
	oldCap := cap(r.heap)
	shorter := reprFromOwned([]Word{9, 8, 7})
	r.CloneInto(shorter)
	assert.Equal(t, oldCap, cap(r.heap))
	assert.Equal(t, []Word{9, 8, 7}, r.words())
}

func TestBufferPushAndIntoRepr(t *testing.T) {
	b := allocateBuffer(4)
	b.push(1)
	b.push(2)
	b.pushZeros(2)
	assert.Equal(t, 4, b.len())
	r := b.intoRepr()
	assert.Equal(t, 2, r.Len()) // trailing zeros trimmed
}
