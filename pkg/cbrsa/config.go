package cbrsa

import (
	"fmt"

	"github.com/coinbase/cb-rsa-go/pkg/cbrsa/logging"
)

const (
	// DefaultPrimeBits is the per-prime size used by demos and tests. Real
	// deployments need at least 1024 bits per prime.
	DefaultPrimeBits = 128

	// DefaultRounds is the Miller-Rabin round count. A composite survives all
	// rounds with probability at most 4^-DefaultRounds.
	DefaultRounds = 40

	// PublicExponent is the fixed RSA public exponent e.
	PublicExponent = 65537
)

// Config expresses the knobs shared by prime and key generation.
// The zero value is usable once passed through WithDefaults.
type Config struct {
	// PrimeBits is the bit length of each generated prime.
	PrimeBits int `json:"prime_bits"`

	// Rounds is the number of Miller-Rabin witnesses tried per candidate.
	Rounds int `json:"rounds"`

	// MaxAttempts caps the number of candidates drawn per prime and the
	// number of key generation attempts. Zero means unbounded.
	MaxAttempts int `json:"max_attempts"`

	// Logger receives debug and info events. Nil binds to slog.Default().
	Logger logging.Logger `json:"-"`
}

// WithDefaults returns a copy of c with unset fields filled in.
func (c Config) WithDefaults() Config {
	if c.PrimeBits == 0 {
		c.PrimeBits = DefaultPrimeBits
	}
	if c.Rounds <= 0 {
		c.Rounds = DefaultRounds
	}
	if c.Logger == nil {
		c.Logger = logging.New(nil)
	}
	return c
}

// Validate checks the values a caller supplied explicitly.
func (c Config) Validate() error {
	if c.PrimeBits != 0 && c.PrimeBits < 2 {
		return fmt.Errorf("%w: prime bits must be at least 2, got %d", ErrInvalidArgument, c.PrimeBits)
	}
	if c.Rounds < 0 {
		return fmt.Errorf("%w: rounds must be non-negative, got %d", ErrInvalidArgument, c.Rounds)
	}
	if c.MaxAttempts < 0 {
		return fmt.Errorf("%w: max attempts must be non-negative, got %d", ErrInvalidArgument, c.MaxAttempts)
	}
	return nil
}
