package modarith

import (
	"fmt"
	"math/big"

	"github.com/coinbase/cb-rsa-go/pkg/cbrsa"
)

var one = big.NewInt(1)

// ModExp returns base^exponent mod modulus using right-to-left
// square-and-multiply. The result lies in [0, modulus).
//
// modulus must be greater than 1 and exponent non-negative; otherwise the
// error wraps cbrsa.ErrInvalidArgument. A negative base is reduced into
// [0, modulus) first.
func ModExp(base, exponent, modulus *big.Int) (*big.Int, error) {
	if base == nil || exponent == nil || modulus == nil {
		return nil, fmt.Errorf("%w: nil operand", cbrsa.ErrInvalidArgument)
	}
	if modulus.Cmp(one) <= 0 {
		return nil, fmt.Errorf("%w: modulus must be > 1", cbrsa.ErrInvalidArgument)
	}
	if exponent.Sign() < 0 {
		return nil, fmt.Errorf("%w: exponent must be non-negative", cbrsa.ErrInvalidArgument)
	}

	result := big.NewInt(1)
	// Mod is Euclidean, so b is non-negative even for a negative base.
	b := new(big.Int).Mod(base, modulus)
	tmp := new(big.Int)

	// Walk the exponent bits from least significant instead of shifting a
	// copy; the effect is identical and the exponent stays untouched.
	for i, n := 0, exponent.BitLen(); i < n; i++ {
		if exponent.Bit(i) == 1 {
			tmp.Mul(result, b)
			result.Mod(tmp, modulus)
		}
		tmp.Mul(b, b)
		b.Mod(tmp, modulus)
	}
	return result, nil
}
