package modarith

import (
	"fmt"
	"math/big"

	"github.com/coinbase/cb-rsa-go/pkg/cbrsa"
)

// ExtendedGCD returns g = gcd(a, b) together with Bezout coefficients x and y
// such that a*x + b*y = g. It iterates rather than recurses, so adversarially
// large inputs cannot exhaust the stack.
//
// For non-negative inputs g is non-negative. ExtendedGCD(0, 0) is (0, 1, 0).
func ExtendedGCD(a, b *big.Int) (g, x, y *big.Int) {
	oldR, r := new(big.Int).Set(a), new(big.Int).Set(b)
	oldX, curX := big.NewInt(1), big.NewInt(0)
	oldY, curY := big.NewInt(0), big.NewInt(1)

	q, rem := new(big.Int), new(big.Int)
	for r.Sign() != 0 {
		// Euclidean division keeps 0 <= rem < |r|, so the loop terminates
		// for operands of either sign.
		q.DivMod(oldR, r, rem)
		oldR, r = r, new(big.Int).Set(rem)
		oldX, curX = curX, new(big.Int).Sub(oldX, new(big.Int).Mul(q, curX))
		oldY, curY = curY, new(big.Int).Sub(oldY, new(big.Int).Mul(q, curY))
	}
	return oldR, oldX, oldY
}

// ModularInverse returns x in [0, m) such that a*x = 1 (mod m).
//
// m must be positive; otherwise the error wraps cbrsa.ErrInvalidArgument. If
// a and m share a factor the error wraps cbrsa.ErrNotInvertible.
func ModularInverse(a, m *big.Int) (*big.Int, error) {
	if a == nil || m == nil {
		return nil, fmt.Errorf("%w: nil operand", cbrsa.ErrInvalidArgument)
	}
	if m.Sign() <= 0 {
		return nil, fmt.Errorf("%w: modulus must be positive", cbrsa.ErrInvalidArgument)
	}

	reduced := new(big.Int).Mod(a, m)
	g, x, _ := ExtendedGCD(reduced, m)
	if g.Cmp(one) != 0 {
		return nil, cbrsa.ErrNotInvertible
	}
	return x.Mod(x, m), nil
}
