package primes_test

import (
	"errors"
	"io"
	"math/big"
)

// scriptedSource replays fixed candidate bytes and always picks the witness
// offset set in witness (so witness 0 means base 2).
type scriptedSource struct {
	reads   [][]byte
	repeat  []byte
	witness int64
}

func (s *scriptedSource) Read(p []byte) (int, error) {
	if len(s.reads) > 0 {
		n := copy(p, s.reads[0])
		s.reads = s.reads[1:]
		return n, nil
	}
	if s.repeat != nil {
		return copy(p, s.repeat), nil
	}
	return 0, errEntropyExhausted
}

func (s *scriptedSource) Int(max *big.Int) *big.Int {
	w := big.NewInt(s.witness)
	if w.Cmp(max) >= 0 {
		return w.Mod(w, max)
	}
	return w
}

var errEntropyExhausted = errors.New("entropy exhausted")

var _ io.Reader = (*scriptedSource)(nil)
