package rsa

import (
	"fmt"
	"math/big"

	"github.com/coinbase/cb-rsa-go/pkg/cbrsa"
	"github.com/coinbase/cb-rsa-go/pkg/cbrsa/modarith"
)

// Decrypt recovers m = c^d mod p*q using the Chinese Remainder Theorem:
// two exponentiations on half-width moduli recombined with Garner's formula.
// The result equals DecryptNaive(c, priv).
//
// The key must have p != q and both factors greater than 1; otherwise the
// error wraps cbrsa.ErrInvalidKey.
func Decrypt(c *big.Int, priv *PrivateKey) (*big.Int, error) {
	if err := priv.validate(); err != nil {
		return nil, err
	}
	p, q := priv.p, priv.q

	qInv, err := modarith.ModularInverse(q, p)
	if err != nil {
		return nil, fmt.Errorf("%w: q is not invertible mod p: %w", cbrsa.ErrInvalidKey, err)
	}

	dP := reducedExponent(priv.d, p)
	dQ := reducedExponent(priv.d, q)

	m1, err := modarith.ModExp(c, dP, p)
	if err != nil {
		return nil, err
	}
	m2, err := modarith.ModExp(c, dQ, q)
	if err != nil {
		return nil, err
	}

	// h = qInv * ((m1 - m2) mod p) mod p. Mod is Euclidean, so the
	// difference lands in [0, p) before the multiplication.
	h := new(big.Int).Sub(m1, m2)
	h.Mod(h, p)
	h.Mul(h, qInv)
	h.Mod(h, p)

	m := h.Mul(h, q)
	return m.Add(m, m2), nil
}

// reducedExponent returns d mod (p-1), or p-1 when that is zero and d is
// positive. c^0 is 1 even for c = 0 mod p, whereas c^(p-1) keeps the zero,
// so the result agrees with c^d mod p for every c.
func reducedExponent(d, p *big.Int) *big.Int {
	pMinus1 := new(big.Int).Sub(p, one)
	r := new(big.Int).Mod(d, pMinus1)
	if r.Sign() == 0 && d.Sign() > 0 {
		return pMinus1
	}
	return r
}

// DecryptNaive computes c^d mod p*q directly. It exists as the reference
// Decrypt is checked and benchmarked against.
func DecryptNaive(c *big.Int, priv *PrivateKey) (*big.Int, error) {
	if err := priv.validate(); err != nil {
		return nil, err
	}
	return modarith.ModExp(c, priv.d, priv.N())
}
