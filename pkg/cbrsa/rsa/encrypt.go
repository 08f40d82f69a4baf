package rsa

import (
	"fmt"
	"math/big"

	"github.com/coinbase/cb-rsa-go/pkg/cbrsa"
	"github.com/coinbase/cb-rsa-go/pkg/cbrsa/modarith"
)

// Encrypt returns m^e mod n.
//
// No padding is applied and m is not range-checked: a plaintext outside
// [0, n) is reduced mod n and will not decrypt back to itself.
func Encrypt(m *big.Int, pub *PublicKey) (*big.Int, error) {
	if pub == nil {
		return nil, fmt.Errorf("%w: nil public key", cbrsa.ErrInvalidArgument)
	}
	return modarith.ModExp(m, pub.e, pub.n)
}
