package dashu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstDivisorSingleWord(t *testing.T) {
	m := reprFromWord(97)
	cd := NewConstDivisor(m)
	x := reprFromWord(12345)
	q, r := cd.DivRem(x)
	wantQ, wantR := divWordWords([]Word{12345}, 97)
	assert.Equal(t, wantQ, q.words())
	if wantR == 0 {
		assert.True(t, r.IsZero())
	} else {
		assert.Equal(t, []Word{wantR}, r.words())
	}
}

func TestConstDivisorFermatLittleTheorem(t *testing.T) {
	// 2^(10^18+7) mod (10^18+9) == 2, since 10^18+9 is prime.
	modulusInt, err := ParseInt("1000000000000000009", 10)
	require.NoError(t, err)
	cd := NewConstDivisor(modulusInt.abs)

	expInt, err := ParseInt("1000000000000000007", 10)
	require.NoError(t, err)

	base := NewReduced(reprFromWord(2), cd)
	result := base.Pow(expInt)
	assert.Equal(t, []Word{2}, result.Value().words())

	// Reused across many exponentiations, the divisor yields identical
	// results every time.
	for i := 0; i < 5; i++ {
		again := base.Pow(expInt)
		assert.Equal(t, result.Value().words(), again.Value().words())
	}
}

func TestConstDivisorLargeModulus(t *testing.T) {
	modulusInt, err := ParseInt("123456789012345678901234567891", 10)
	require.NoError(t, err)
	cd := NewConstDivisor(modulusInt.abs)

	xInt, err := ParseInt("999999999999999999999999999999999999", 10)
	require.NoError(t, err)
	q, r := cd.DivRem(xInt.abs)

	prod := mulWords(q.words(), modulusInt.abs.words())
	sum := addWords(prod, r.words())
	assert.Equal(t, xInt.abs.words(), sum[:normLen(sum)])
}

// TestConstDivisorMultiWordChunked exercises the kindLarge path (a modulus
// spanning three or more words) against dividends whose normalized word
// count, relative to the modulus, is both even and odd, so both the
// leading one-word chunk and the steady-state two-word chunks in
// divRemReciprocal run at least once.
func TestConstDivisorMultiWordChunked(t *testing.T) {
	modulusInt, err := ParseInt("98765432109876543210987654321098765432109", 10)
	require.NoError(t, err)
	cd := NewConstDivisor(modulusInt.abs)
	require.Equal(t, kindLarge, cd.kind)

	dividends := []string{
		"1",
		"98765432109876543210987654321098765432108",
		"123456789012345678901234567890123456789012345678901234567890",
		"123456789012345678901234567890123456789012345678901234567890123456789012345678901234567890",
		"11111111111111111111111111111111111111111111111111111111111111111111111111111111111111111111111111111",
	}
	for _, ds := range dividends {
		xInt, err := ParseInt(ds, 10)
		require.NoError(t, err)
		q, r := cd.DivRem(xInt.abs)

		prod := mulWords(q.words(), modulusInt.abs.words())
		sum := addWords(prod, r.words())
		assert.Equal(t, xInt.abs.words(), sum[:normLen(sum)], "round-trip for dividend %s", ds)
		assert.True(t, cmpWords(r.words(), modulusInt.abs.words()) < 0, "remainder must be < modulus for dividend %s", ds)
	}
}
