// Package testkeys provides fixed RSA key material and deterministic
// randomness for tests.
// WARNING: everything here is for testing only. Do not use in production.
package testkeys

import (
	stdrsa "crypto/rsa"
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"math/big"

	"github.com/coinbase/cb-rsa-go/pkg/cbrsa"
	"github.com/coinbase/cb-rsa-go/pkg/cbrsa/rsa"
)

// Fixture is a key pair with one known plaintext/ciphertext pair.
type Fixture struct {
	P, Q, D, N *big.Int
	Message    *big.Int
	Ciphertext *big.Int
}

// Public returns the fixture's public key.
func (f Fixture) Public() *rsa.PublicKey {
	pub, err := rsa.NewPublicKey(f.N, big.NewInt(cbrsa.PublicExponent))
	if err != nil {
		panic(err)
	}
	return pub
}

// Private returns the fixture's private key.
func (f Fixture) Private() *rsa.PrivateKey {
	return rsa.NewPrivateKey(f.P, f.Q, f.D)
}

// Textbook is the classic p=61, q=53 key. 65537 = 17 (mod 3120), so d
// matches the familiar e=17 example.
func Textbook() Fixture {
	return Fixture{
		P:          big.NewInt(61),
		Q:          big.NewInt(53),
		D:          big.NewInt(2753),
		N:          big.NewInt(3233),
		Message:    big.NewInt(65),
		Ciphertext: big.NewInt(2790),
	}
}

// Key256 is a key built from two 128-bit primes.
func Key256() Fixture {
	return Fixture{
		P:          mustInt("231812997753178156187858325029616499841"),
		Q:          mustInt("282806483917220614599887799811179276779"),
		D:          mustInt("39920920956161458033737357458347745437929875730387980198203707722395511985153"),
		N:          mustInt("65558218820886876695325378263699914623287253182743794036139966055747748492139"),
		Message:    big.NewInt(123456789),
		Ciphertext: mustInt("14052776842197146971105184172069013379626527500483451443497790619696394799212"),
	}
}

// NonInvertiblePair returns distinct primes p, q where 65537 divides p-1, so
// the public exponent has no inverse mod phi.
func NonInvertiblePair() (p, q *big.Int) {
	return big.NewInt(917519), big.NewInt(1000003)
}

// FromStdlib converts a crypto/rsa two-prime key into this module's key
// types.
func FromStdlib(key *stdrsa.PrivateKey) (*rsa.PublicKey, *rsa.PrivateKey, error) {
	if key == nil {
		return nil, nil, errors.New("nil private key")
	}
	if len(key.Primes) != 2 {
		return nil, nil, errors.New("only two-prime keys are supported")
	}
	pub, err := rsa.NewPublicKey(key.N, big.NewInt(int64(key.E)))
	if err != nil {
		return nil, nil, err
	}
	return pub, rsa.NewPrivateKey(key.Primes[0], key.Primes[1], key.D), nil
}

func mustInt(s string) *big.Int {
	x, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("testkeys: bad literal " + s)
	}
	return x
}

// HashSource is a deterministic primes.Source that extends a seed by hashing
// it with a counter. Unlike a seeded math/rand stream, its output does not
// depend on the Go release.
type HashSource struct {
	seed    []byte
	counter uint64
	buf     []byte
}

// NewHashSource returns a HashSource for seed.
func NewHashSource(seed []byte) *HashSource {
	s := make([]byte, len(seed))
	copy(s, seed)
	return &HashSource{seed: s}
}

func (h *HashSource) Read(p []byte) (int, error) {
	n := 0
	for n < len(p) {
		if len(h.buf) == 0 {
			h.refill()
		}
		c := copy(p[n:], h.buf)
		h.buf = h.buf[c:]
		n += c
	}
	return n, nil
}

// Int draws from the same stream by rejection sampling.
func (h *HashSource) Int(max *big.Int) *big.Int {
	bits := max.BitLen()
	buf := make([]byte, (bits+7)/8)
	for {
		_, _ = h.Read(buf)
		if excess := len(buf)*8 - bits; excess > 0 {
			buf[0] &= byte(0xff >> excess)
		}
		v := new(big.Int).SetBytes(buf)
		if v.Cmp(max) < 0 {
			return v
		}
	}
}

func (h *HashSource) refill() {
	var ctr [8]byte
	binary.BigEndian.PutUint64(ctr[:], h.counter)
	h.counter++

	d := sha256.New()
	d.Write(h.seed)
	d.Write(ctr[:])
	h.buf = d.Sum(nil)
}
