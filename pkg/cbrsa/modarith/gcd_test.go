package modarith_test

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coinbase/cb-rsa-go/pkg/cbrsa"
	"github.com/coinbase/cb-rsa-go/pkg/cbrsa/modarith"
)

func checkBezout(t *testing.T, a, b, g, x, y *big.Int) {
	t.Helper()
	lhs := new(big.Int).Mul(a, x)
	lhs.Add(lhs, new(big.Int).Mul(b, y))
	assert.Equal(t, 0, lhs.Cmp(g), "a*x + b*y = %s, want %s", lhs, g)
}

func TestExtendedGCD(t *testing.T) {
	tests := []struct {
		a, b  int64
		wantG int64
	}{
		{a: 240, b: 46, wantG: 2},
		{a: 46, b: 240, wantG: 2},
		{a: 17, b: 3120, wantG: 1},
		{a: 65537, b: 3120, wantG: 1},
		{a: 12, b: 0, wantG: 12},
		{a: 0, b: 9, wantG: 9},
		{a: 0, b: 0, wantG: 0},
		{a: 1, b: 1, wantG: 1},
		{a: -4, b: 6, wantG: 2},
	}

	for _, tt := range tests {
		a, b := big.NewInt(tt.a), big.NewInt(tt.b)
		g, x, y := modarith.ExtendedGCD(a, b)
		assert.Equal(t, tt.wantG, g.Int64(), "gcd(%d, %d)", tt.a, tt.b)
		checkBezout(t, a, b, g, x, y)
	}
}

func TestExtendedGCDLargeOperands(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	limit := new(big.Int).Lsh(big.NewInt(1), 1024)

	for i := 0; i < 20; i++ {
		a := new(big.Int).Rand(rng, limit)
		b := new(big.Int).Rand(rng, limit)
		g, x, y := modarith.ExtendedGCD(a, b)
		assert.Equal(t, 0, g.Cmp(new(big.Int).GCD(nil, nil, a, b)))
		checkBezout(t, a, b, g, x, y)
	}
}

func TestModularInverse(t *testing.T) {
	tests := []struct {
		a, m, want int64
	}{
		{a: 3, m: 11, want: 4},
		{a: 17, m: 3120, want: 2753},
		{a: 65537, m: 3120, want: 2753},
		{a: 10, m: 17, want: 12},
		{a: -3, m: 11, want: 7},
		{a: 5, m: 1, want: 0},
	}

	for _, tt := range tests {
		got, err := modarith.ModularInverse(big.NewInt(tt.a), big.NewInt(tt.m))
		require.NoError(t, err, "inverse of %d mod %d", tt.a, tt.m)
		assert.Equal(t, tt.want, got.Int64(), "inverse of %d mod %d", tt.a, tt.m)
	}
}

func TestModularInverseProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	limit := new(big.Int).Lsh(big.NewInt(1), 256)
	checked := 0

	for checked < 50 {
		a := new(big.Int).Rand(rng, limit)
		m := new(big.Int).Rand(rng, limit)
		if m.Sign() == 0 || new(big.Int).GCD(nil, nil, a, m).Cmp(big.NewInt(1)) != 0 {
			continue
		}
		checked++

		inv, err := modarith.ModularInverse(a, m)
		require.NoError(t, err)
		assert.True(t, inv.Sign() >= 0 && inv.Cmp(m) < 0, "inverse out of range")

		prod := new(big.Int).Mul(a, inv)
		prod.Mod(prod, m)
		assert.Equal(t, int64(1), prod.Int64())
		assert.Equal(t, 0, inv.Cmp(new(big.Int).ModInverse(a, m)))
	}
}

func TestModularInverseNotInvertible(t *testing.T) {
	for _, tc := range [][2]int64{{6, 9}, {0, 7}, {65537, 65537 * 4}, {14, 21}} {
		got, err := modarith.ModularInverse(big.NewInt(tc[0]), big.NewInt(tc[1]))
		require.ErrorIs(t, err, cbrsa.ErrNotInvertible, "a=%d m=%d", tc[0], tc[1])
		assert.True(t, cbrsa.Retryable(err))
		assert.Nil(t, got)
	}
}

func TestModularInverseInvalidModulus(t *testing.T) {
	for _, m := range []*big.Int{big.NewInt(0), big.NewInt(-5), nil} {
		_, err := modarith.ModularInverse(big.NewInt(3), m)
		require.ErrorIs(t, err, cbrsa.ErrInvalidArgument)
	}
	_, err := modarith.ModularInverse(nil, big.NewInt(5))
	require.ErrorIs(t, err, cbrsa.ErrInvalidArgument)
}
