package primes

import (
	"context"
	"fmt"
	"io"
	"math/big"

	"github.com/coinbase/cb-rsa-go/pkg/cbrsa"
	"github.com/coinbase/cb-rsa-go/pkg/cbrsa/logging"
)

// Generator draws random primes of an exact bit length. It keeps no state
// between calls apart from its Source.
type Generator struct {
	src         Source
	rounds      int
	maxAttempts int
	logger      logging.Logger
}

// NewGenerator returns a Generator reading randomness from src. A nil src
// selects NewSystemSource(). cfg.Rounds, cfg.MaxAttempts and cfg.Logger are
// honoured; cfg.PrimeBits is left to the caller.
func NewGenerator(src Source, cfg cbrsa.Config) *Generator {
	cfg = cfg.WithDefaults()
	if src == nil {
		src = NewSystemSource()
	}
	return &Generator{
		src:         src,
		rounds:      cfg.Rounds,
		maxAttempts: cfg.MaxAttempts,
		logger:      cfg.Logger,
	}
}

// Prime returns a probable prime with exactly bits bits.
//
// Candidates are drawn until one passes Miller-Rabin. When the generator was
// configured with MaxAttempts the loop stops after that many candidates with
// cbrsa.ErrGenerationTimeout; a cancelled ctx stops it the same way.
func (g *Generator) Prime(ctx context.Context, bits int) (*big.Int, error) {
	if bits < 2 {
		return nil, fmt.Errorf("%w: prime bits must be at least 2, got %d", cbrsa.ErrInvalidArgument, bits)
	}

	buf := make([]byte, (bits+7)/8)
	defer cbrsa.ZeroizeBytes(buf)

	for attempt := 1; g.maxAttempts == 0 || attempt <= g.maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("%w: %w", cbrsa.ErrGenerationTimeout, err)
		}

		candidate, err := g.candidate(buf, bits)
		if err != nil {
			return nil, err
		}
		if IsProbablePrime(candidate, g.rounds, g.src) {
			g.logger.Debug(ctx, "prime found", "bits", bits, "candidates", attempt)
			return candidate, nil
		}
	}
	return nil, fmt.Errorf("%w: no %d-bit prime within %d candidates", cbrsa.ErrGenerationTimeout, bits, g.maxAttempts)
}

// candidate reads bits secure random bits into buf and forces the top bit
// (exact length) and the bottom bit (odd).
func (g *Generator) candidate(buf []byte, bits int) (*big.Int, error) {
	if _, err := io.ReadFull(g.src, buf); err != nil {
		return nil, fmt.Errorf("read random: %w", err)
	}
	// Clear the excess high bits of the first byte.
	if excess := len(buf)*8 - bits; excess > 0 {
		buf[0] &= byte(0xff >> excess)
	}

	c := new(big.Int).SetBytes(buf)
	c.SetBit(c, bits-1, 1)
	c.SetBit(c, 0, 1)
	return c, nil
}

// RSAPrimes returns two distinct probable primes of exactly bits bits. q is
// redrawn for as long as it equals p.
func (g *Generator) RSAPrimes(ctx context.Context, bits int) (p, q *big.Int, err error) {
	if err := checkPairBits(bits); err != nil {
		return nil, nil, err
	}

	p, err = g.Prime(ctx, bits)
	if err != nil {
		return nil, nil, err
	}
	q, err = g.Prime(ctx, bits)
	if err != nil {
		return nil, nil, err
	}
	q, err = g.redrawUntilDistinct(ctx, bits, p, q)
	if err != nil {
		return nil, nil, err
	}
	return p, q, nil
}

func (g *Generator) redrawUntilDistinct(ctx context.Context, bits int, p, q *big.Int) (*big.Int, error) {
	for attempt := 1; q.Cmp(p) == 0; attempt++ {
		if g.maxAttempts > 0 && attempt > g.maxAttempts {
			return nil, fmt.Errorf("%w: q still equal to p after %d redraws", cbrsa.ErrGenerationTimeout, g.maxAttempts)
		}
		g.logger.Debug(ctx, "q equals p, redrawing", "bits", bits, "redraw", attempt)

		var err error
		if q, err = g.Prime(ctx, bits); err != nil {
			return nil, err
		}
	}
	return q, nil
}

// checkPairBits rejects sizes with fewer than two primes of that exact length.
func checkPairBits(bits int) error {
	if bits < 3 {
		return fmt.Errorf("%w: need at least 3 bits for two distinct primes, got %d", cbrsa.ErrInvalidArgument, bits)
	}
	return nil
}

// GeneratePrime returns a bits-bit probable prime using a fresh system source
// and default settings.
func GeneratePrime(ctx context.Context, bits int) (*big.Int, error) {
	return NewGenerator(NewSystemSource(), cbrsa.Config{}).Prime(ctx, bits)
}

// GenerateRSAPrimes returns two distinct bits-bit probable primes using a
// fresh system source and default settings.
func GenerateRSAPrimes(ctx context.Context, bits int) (p, q *big.Int, err error) {
	return NewGenerator(NewSystemSource(), cbrsa.Config{}).RSAPrimes(ctx, bits)
}
