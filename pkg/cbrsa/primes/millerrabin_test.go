package primes_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coinbase/cb-rsa-go/pkg/cbrsa"
	"github.com/coinbase/cb-rsa-go/pkg/cbrsa/primes"
)

func TestIsProbablePrimeKnownValues(t *testing.T) {
	tests := []struct {
		n    int64
		want bool
		desc string
	}{
		{n: -7, want: false, desc: "negative"},
		{n: 0, want: false, desc: "zero"},
		{n: 1, want: false, desc: "one"},
		{n: 2, want: true, desc: "small prime"},
		{n: 3, want: true, desc: "small prime"},
		{n: 4, want: false, desc: "small composite"},
		{n: 5, want: true, desc: "smallest prime with a random witness"},
		{n: 9, want: false, desc: "odd square"},
		{n: 17, want: true, desc: "prime"},
		{n: 561, want: false, desc: "Carmichael number"},
		{n: 1105, want: false, desc: "Carmichael number"},
		{n: 1729, want: false, desc: "Carmichael number"},
		{n: 2047, want: false, desc: "strong pseudoprime to base 2"},
		{n: 65521, want: true, desc: "largest 16-bit prime"},
		{n: 104729, want: true, desc: "17-bit prime"},
		{n: 1000003, want: true, desc: "prime"},
	}

	src := primes.NewSeededSource(42)
	for _, tt := range tests {
		got := primes.IsProbablePrime(big.NewInt(tt.n), cbrsa.DefaultRounds, src)
		assert.Equal(t, tt.want, got, "%d (%s)", tt.n, tt.desc)
	}
}

func TestIsProbablePrimeLargeValues(t *testing.T) {
	m127 := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1))
	assert.True(t, primes.IsProbablePrimeDefault(m127), "M127 is prime")

	// 2^128 - 1 factors as a product of Fermat numbers.
	notPrime := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))
	assert.False(t, primes.IsProbablePrimeDefault(notPrime))

	p, ok := new(big.Int).SetString("231812997753178156187858325029616499841", 10)
	require.True(t, ok)
	q, ok := new(big.Int).SetString("282806483917220614599887799811179276779", 10)
	require.True(t, ok)
	assert.True(t, primes.IsProbablePrimeDefault(p))
	assert.True(t, primes.IsProbablePrimeDefault(q))
	assert.False(t, primes.IsProbablePrimeDefault(new(big.Int).Mul(p, q)))
}

func TestIsProbablePrimeSingleWitnessCanBeFooled(t *testing.T) {
	// With the witness pinned to 2, 2047 = 23 * 89 passes: this is why
	// witnesses are drawn at random and many rounds are used.
	fixed := &scriptedSource{witness: 0}
	assert.True(t, primes.IsProbablePrime(big.NewInt(2047), 1, fixed))

	// Base 2 is enough to expose 561.
	assert.False(t, primes.IsProbablePrime(big.NewInt(561), 1, fixed))
}

func TestIsProbablePrimeDefaults(t *testing.T) {
	// Zero rounds and a nil source fall back to the defaults.
	assert.True(t, primes.IsProbablePrime(big.NewInt(104729), 0, nil))
	assert.False(t, primes.IsProbablePrime(big.NewInt(561), -1, nil))
	assert.False(t, primes.IsProbablePrime(nil, 10, nil))
}

func TestIsProbablePrimeAgreesWithStdlib(t *testing.T) {
	src := primes.NewSeededSource(7)
	for n := int64(0); n < 5000; n++ {
		x := big.NewInt(n)
		if got, want := primes.IsProbablePrime(x, 20, src), x.ProbablyPrime(20); got != want {
			t.Fatalf("IsProbablePrime(%d) = %v, want %v", n, got, want)
		}
	}
}

func BenchmarkIsProbablePrimeM127(b *testing.B) {
	m127 := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1))
	src := primes.NewSeededSource(1)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		primes.IsProbablePrime(m127, cbrsa.DefaultRounds, src)
	}
}

// Every witness for small odd n exercises the exponentiation at the edge of
// its argument range; none of them may fail.
func TestIsProbablePrimeSmallOddNumbers(t *testing.T) {
	src := primes.NewSeededSource(5)
	for n := int64(5); n < 300; n += 2 {
		x := big.NewInt(n)
		require.NotPanics(t, func() {
			assert.Equal(t, x.ProbablyPrime(20), primes.IsProbablePrime(x, 64, src), "n=%d", n)
		})
	}
}
