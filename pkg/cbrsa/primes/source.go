package primes

import (
	crand "crypto/rand"
	"encoding/binary"
	"io"
	"math/big"
	mrand "math/rand"
)

// Source supplies randomness to the prime generator and the primality test.
type Source interface {
	// Read fills p with cryptographically secure random bytes.
	io.Reader

	// Int returns a uniformly random integer in [0, max). max must be
	// positive. The result need not be unpredictable; it only picks
	// Miller-Rabin witnesses.
	Int(max *big.Int) *big.Int
}

type systemSource struct {
	rng *mrand.Rand
}

// NewSystemSource returns a Source reading candidate bytes from crypto/rand
// and drawing witnesses from a math/rand generator seeded from crypto/rand.
func NewSystemSource() Source {
	var seed [8]byte
	// crypto/rand.Read does not return an error on supported platforms.
	_, _ = crand.Read(seed[:])
	return &systemSource{
		rng: mrand.New(mrand.NewSource(int64(binary.LittleEndian.Uint64(seed[:])))),
	}
}

func (s *systemSource) Read(p []byte) (int, error) {
	return crand.Read(p)
}

func (s *systemSource) Int(max *big.Int) *big.Int {
	return new(big.Int).Rand(s.rng, max)
}

type seededSource struct {
	rng *mrand.Rand
}

// NewSeededSource returns a deterministic Source. Both the candidate bytes and
// the witnesses come from a math/rand generator, so it must only be used in
// tests and reproducible demos.
func NewSeededSource(seed int64) Source {
	return &seededSource{rng: mrand.New(mrand.NewSource(seed))}
}

func (s *seededSource) Read(p []byte) (int, error) {
	return s.rng.Read(p)
}

func (s *seededSource) Int(max *big.Int) *big.Int {
	return new(big.Int).Rand(s.rng, max)
}
