package primes

import (
	"fmt"
	"math/big"

	"github.com/coinbase/cb-rsa-go/pkg/cbrsa"
	"github.com/coinbase/cb-rsa-go/pkg/cbrsa/modarith"
)

var (
	one   = big.NewInt(1)
	two   = big.NewInt(2)
	three = big.NewInt(3)
)

// IsProbablePrime runs the Miller-Rabin test on n with the given number of
// random witnesses drawn from src. A false result is definitive; a true
// result is wrong with probability at most 4^-rounds.
//
// rounds <= 0 selects cbrsa.DefaultRounds and a nil src selects a fresh
// system source.
func IsProbablePrime(n *big.Int, rounds int, src Source) bool {
	if n == nil || n.Cmp(one) <= 0 {
		return false
	}
	if n.Cmp(three) <= 0 {
		return true
	}
	if n.Bit(0) == 0 {
		return false
	}
	if rounds <= 0 {
		rounds = cbrsa.DefaultRounds
	}
	if src == nil {
		src = NewSystemSource()
	}

	// n-1 = 2^r * d with d odd.
	nMinus1 := new(big.Int).Sub(n, one)
	r := nMinus1.TrailingZeroBits()
	d := new(big.Int).Rsh(nMinus1, r)

	// Witnesses are uniform in [2, n-2].
	span := new(big.Int).Sub(n, three)

	for i := 0; i < rounds; i++ {
		a := src.Int(span)
		a.Add(a, two)

		x, err := modarith.ModExp(a, d, n)
		if err != nil {
			// n > 3 and d > 0 here, so ModExp cannot reject its arguments.
			panic(fmt.Sprintf("primes: miller-rabin exponentiation failed: %v", err))
		}
		if x.Cmp(one) == 0 || x.Cmp(nMinus1) == 0 {
			continue
		}
		if !squaresToMinusOne(x, r, n, nMinus1) {
			return false
		}
	}
	return true
}

// IsProbablePrimeDefault tests n with cbrsa.DefaultRounds witnesses from a
// fresh system source.
func IsProbablePrimeDefault(n *big.Int) bool {
	return IsProbablePrime(n, cbrsa.DefaultRounds, NewSystemSource())
}

// squaresToMinusOne squares x up to r-1 times and reports whether n-1 shows
// up. x is overwritten.
func squaresToMinusOne(x *big.Int, r uint, n, nMinus1 *big.Int) bool {
	tmp := new(big.Int)
	for j := uint(1); j < r; j++ {
		tmp.Mul(x, x)
		x.Mod(tmp, n)
		if x.Cmp(nMinus1) == 0 {
			return true
		}
	}
	return false
}
