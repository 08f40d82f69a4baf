package primes

import (
	"context"
	"math/big"

	"golang.org/x/sync/errgroup"

	"github.com/coinbase/cb-rsa-go/pkg/cbrsa"
)

// GenerateRSAPrimesParallel draws p and q on two goroutines, each with its own
// Source from newSource, and then redraws q on the calling goroutine while
// q == p. A nil newSource selects NewSystemSource.
//
// The first failure cancels the other search.
func GenerateRSAPrimesParallel(ctx context.Context, bits int, cfg cbrsa.Config, newSource func() Source) (p, q *big.Int, err error) {
	if err := checkPairBits(bits); err != nil {
		return nil, nil, err
	}
	if newSource == nil {
		newSource = NewSystemSource
	}

	genP := NewGenerator(newSource(), cfg)
	genQ := NewGenerator(newSource(), cfg)

	group, gctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		p, err = genP.Prime(gctx, bits)
		return err
	})
	group.Go(func() error {
		var err error
		q, err = genQ.Prime(gctx, bits)
		return err
	})
	if err := group.Wait(); err != nil {
		return nil, nil, err
	}

	q, err = genQ.redrawUntilDistinct(ctx, bits, p, q)
	if err != nil {
		return nil, nil, err
	}
	return p, q, nil
}
