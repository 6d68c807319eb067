package dashu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMulWordsSchoolbook(t *testing.T) {
	x := []Word{100}
	y := []Word{7}
	assert.Equal(t, []Word{700}, mulWords(x, y))
}

func TestMulWordsKaratsubaMatchesSchoolbook(t *testing.T) {
	x := make([]Word, 40)
	y := make([]Word, 40)
	for i := range x {
		x[i] = Word(i + 1)
		y[i] = Word(2*i + 1)
	}
	got := mulWords(x, y)

	// Force schoolbook by bumping the threshold, for comparison.
	oldK, oldT := karatsubaThreshold, toom3Threshold
	ApplyMultiplicationThresholds(1000, 2000)
	want := mulWords(x, y)
	ApplyMultiplicationThresholds(oldK, oldT)

	assert.Equal(t, want, got)
}

func TestDivRemWordsBasic(t *testing.T) {
	x := []Word{0, 1} // 2^64
	y := []Word{3}
	q, r := divRemWords(x, y)
	want := mulWords(q, y)
	if len(r) > 0 {
		want = addWords(want, r)
	}
	assert.Equal(t, normLen(x), len(want[:normLen(want)]))
	assert.Equal(t, x[:normLen(x)], want[:normLen(want)])
}

func TestSqrWordsMatchesMul(t *testing.T) {
	x := []Word{123456789, 987654321}
	assert.Equal(t, mulWords(x, x), sqrWords(x))
}
