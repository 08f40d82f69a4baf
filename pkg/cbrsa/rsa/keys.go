package rsa

import (
	"fmt"
	"math/big"

	"github.com/coinbase/cb-rsa-go/pkg/cbrsa"
)

var one = big.NewInt(1)

// PublicKey is the public half of an RSA key pair.
type PublicKey struct {
	n *big.Int
	e *big.Int
}

// NewPublicKey builds a PublicKey from a modulus and exponent. n must be
// greater than 1 and e positive. The inputs are copied.
func NewPublicKey(n, e *big.Int) (*PublicKey, error) {
	if n == nil || e == nil {
		return nil, fmt.Errorf("%w: nil public key component", cbrsa.ErrInvalidArgument)
	}
	if n.Cmp(one) <= 0 {
		return nil, fmt.Errorf("%w: modulus must be > 1", cbrsa.ErrInvalidArgument)
	}
	if e.Sign() <= 0 {
		return nil, fmt.Errorf("%w: public exponent must be positive", cbrsa.ErrInvalidArgument)
	}
	return &PublicKey{n: new(big.Int).Set(n), e: new(big.Int).Set(e)}, nil
}

// N returns a copy of the modulus.
func (k *PublicKey) N() *big.Int {
	return new(big.Int).Set(k.n)
}

// E returns a copy of the public exponent.
func (k *PublicKey) E() *big.Int {
	return new(big.Int).Set(k.e)
}

// Size returns the modulus length in bits.
func (k *PublicKey) Size() int {
	return k.n.BitLen()
}

// Equal reports whether k and other hold the same modulus and exponent.
func (k *PublicKey) Equal(other *PublicKey) bool {
	if k == nil || other == nil {
		return k == other
	}
	return k.n.Cmp(other.n) == 0 && k.e.Cmp(other.e) == 0
}

// PrivateKey is the secret half of an RSA key pair. It stores the two prime
// factors and the private exponent; the modulus is derived on demand.
type PrivateKey struct {
	p, q *big.Int
	d    *big.Int
}

// NewPrivateKey builds a PrivateKey from its components. The inputs are
// copied but not validated; Decrypt reports unusable keys with
// cbrsa.ErrInvalidKey.
func NewPrivateKey(p, q, d *big.Int) *PrivateKey {
	return &PrivateKey{p: copyInt(p), q: copyInt(q), d: copyInt(d)}
}

// P returns a copy of the first prime factor.
func (k *PrivateKey) P() *big.Int { return copyInt(k.p) }

// Q returns a copy of the second prime factor.
func (k *PrivateKey) Q() *big.Int { return copyInt(k.q) }

// D returns a copy of the private exponent.
func (k *PrivateKey) D() *big.Int { return copyInt(k.d) }

// N returns p*q. It returns nil if a factor is missing.
func (k *PrivateKey) N() *big.Int {
	if k.p == nil || k.q == nil {
		return nil
	}
	return new(big.Int).Mul(k.p, k.q)
}

// Zeroize wipes p, q and d. The key is unusable afterwards and Decrypt
// reports cbrsa.ErrInvalidKey.
func (k *PrivateKey) Zeroize() {
	cbrsa.ZeroizeInt(k.p)
	cbrsa.ZeroizeInt(k.q)
	cbrsa.ZeroizeInt(k.d)
}

// validate enforces the preconditions of CRT decryption.
func (k *PrivateKey) validate() error {
	if k == nil || k.p == nil || k.q == nil || k.d == nil {
		return fmt.Errorf("%w: missing component", cbrsa.ErrInvalidKey)
	}
	if k.p.Cmp(one) <= 0 || k.q.Cmp(one) <= 0 {
		return fmt.Errorf("%w: prime factors must be > 1", cbrsa.ErrInvalidKey)
	}
	if k.p.Cmp(k.q) == 0 {
		return fmt.Errorf("%w: p and q must differ", cbrsa.ErrInvalidKey)
	}
	return nil
}

func copyInt(x *big.Int) *big.Int {
	if x == nil {
		return nil
	}
	return new(big.Int).Set(x)
}
