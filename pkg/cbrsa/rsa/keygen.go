package rsa

import (
	"context"
	"fmt"
	"math/big"

	"github.com/google/uuid"

	"github.com/coinbase/cb-rsa-go/pkg/cbrsa"
	"github.com/coinbase/cb-rsa-go/pkg/cbrsa/logging"
	"github.com/coinbase/cb-rsa-go/pkg/cbrsa/modarith"
	"github.com/coinbase/cb-rsa-go/pkg/cbrsa/primes"
)

// PrimePairSource yields two distinct primes of a given bit length.
// *primes.Generator implements it.
//
// KeyGenerator takes ownership of the returned values: a rejected pair is
// zeroized in place and an accepted pair becomes part of the PrivateKey.
// Implementations must return fresh integers, never ones they keep.
type PrimePairSource interface {
	RSAPrimes(ctx context.Context, bits int) (p, q *big.Int, err error)
}

// KeyGenerator turns prime pairs into RSA key pairs.
type KeyGenerator struct {
	primes      PrimePairSource
	maxAttempts int
	logger      logging.Logger
}

// NewKeyGenerator returns a KeyGenerator drawing primes from src. A nil src
// selects a primes.Generator over a fresh system source configured with cfg.
// cfg.MaxAttempts also caps the number of prime pairs tried.
func NewKeyGenerator(src PrimePairSource, cfg cbrsa.Config) *KeyGenerator {
	cfg = cfg.WithDefaults()
	if src == nil {
		src = primes.NewGenerator(primes.NewSystemSource(), cfg)
	}
	return &KeyGenerator{
		primes:      src,
		maxAttempts: cfg.MaxAttempts,
		logger:      cfg.Logger,
	}
}

// Generate builds a key pair whose primes have exactly bits bits each, with
// e = cbrsa.PublicExponent.
//
// If e shares a factor with phi(n) the pair is discarded and fresh primes are
// drawn; that case never reaches the caller. Errors from the prime source are
// returned unchanged.
func (k *KeyGenerator) Generate(ctx context.Context, bits int) (*PublicKey, *PrivateKey, error) {
	logger := k.logger.With("keygen_id", uuid.NewString())
	e := big.NewInt(cbrsa.PublicExponent)

	for attempt := 1; ; attempt++ {
		if k.maxAttempts > 0 && attempt > k.maxAttempts {
			return nil, nil, fmt.Errorf("%w: no usable prime pair after %d attempts", cbrsa.ErrGenerationTimeout, k.maxAttempts)
		}

		p, q, err := k.primes.RSAPrimes(ctx, bits)
		if err != nil {
			return nil, nil, err
		}

		pMinus1 := new(big.Int).Sub(p, one)
		qMinus1 := new(big.Int).Sub(q, one)
		phi := new(big.Int).Mul(pMinus1, qMinus1)

		d, err := modarith.ModularInverse(e, phi)
		if cbrsa.Retryable(err) {
			logger.Debug(ctx, "public exponent not coprime with phi, drawing new primes", "attempt", attempt)
			cbrsa.ZeroizeInt(p)
			cbrsa.ZeroizeInt(q)
			cbrsa.ZeroizeInt(phi)
			continue
		}
		if err != nil {
			return nil, nil, err
		}
		cbrsa.ZeroizeInt(phi)

		n := new(big.Int).Mul(p, q)
		logger.Info(ctx, "key generated",
			"prime_bits", bits,
			logging.BitLen("n_bits", n),
			"attempts", attempt,
			logging.Redacted("d"),
		)
		return &PublicKey{n: n, e: e}, &PrivateKey{p: p, q: q, d: d}, nil
	}
}

// GenerateKey builds a key pair with bits-bit primes using a fresh system
// source and default settings.
func GenerateKey(ctx context.Context, bits int) (*PublicKey, *PrivateKey, error) {
	return NewKeyGenerator(nil, cbrsa.Config{}).Generate(ctx, bits)
}
