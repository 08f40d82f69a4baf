package cbrsa

import (
	"errors"
	"fmt"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionFallback(t *testing.T) {
	if got := WrapperVersion(); got != "v0.0.0-in-progress" {
		t.Fatalf("expected fallback version, got %q", got)
	}
}

func TestConfigWithDefaults(t *testing.T) {
	cfg := Config{}.WithDefaults()
	assert.Equal(t, DefaultPrimeBits, cfg.PrimeBits)
	assert.Equal(t, DefaultRounds, cfg.Rounds)
	assert.Zero(t, cfg.MaxAttempts)
	assert.NotNil(t, cfg.Logger)

	custom := Config{PrimeBits: 64, Rounds: 8, MaxAttempts: 3}.WithDefaults()
	assert.Equal(t, 64, custom.PrimeBits)
	assert.Equal(t, 8, custom.Rounds)
	assert.Equal(t, 3, custom.MaxAttempts)
}

func TestConfigValidate(t *testing.T) {
	require.NoError(t, Config{}.Validate())
	require.NoError(t, Config{PrimeBits: 2, Rounds: 1}.Validate())

	for _, cfg := range []Config{
		{PrimeBits: 1},
		{PrimeBits: -8},
		{Rounds: -1},
		{MaxAttempts: -1},
	} {
		err := cfg.Validate()
		assert.ErrorIs(t, err, ErrInvalidArgument, "config %+v", cfg)
	}
}

func TestRetryable(t *testing.T) {
	assert.True(t, Retryable(ErrNotInvertible))
	assert.True(t, Retryable(fmt.Errorf("keygen: %w", ErrNotInvertible)))
	assert.False(t, Retryable(ErrInvalidKey))
	assert.False(t, Retryable(ErrInvalidArgument))
	assert.False(t, Retryable(ErrGenerationTimeout))
	assert.False(t, Retryable(nil))
}

func TestErrorKindsAreDistinct(t *testing.T) {
	kinds := []error{ErrInvalidArgument, ErrNotInvertible, ErrInvalidKey, ErrGenerationTimeout}
	for i, a := range kinds {
		for j, b := range kinds {
			if i != j && errors.Is(a, b) {
				t.Fatalf("%v must not match %v", a, b)
			}
		}
	}
}

func TestZeroizeInt(t *testing.T) {
	x, ok := new(big.Int).SetString("231812997753178156187858325029616499841", 10)
	require.True(t, ok)
	words := x.Bits()

	ZeroizeInt(x)

	assert.Zero(t, x.Sign())
	for i, w := range words {
		if w != 0 {
			t.Fatalf("word %d not wiped", i)
		}
	}
	ZeroizeInt(nil)
}

func TestZeroizeBytes(t *testing.T) {
	buf := []byte{1, 2, 3}
	ZeroizeBytes(buf)
	assert.Equal(t, []byte{0, 0, 0}, buf)
}
