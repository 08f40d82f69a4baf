package cbrsa

import (
	"errors"
)

// ErrInvalidArgument reports a malformed input such as a modulus <= 1, a
// negative exponent or a nil operand. It indicates a caller bug and must not
// be retried.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrNotInvertible reports that an inverse does not exist because the operands
// share a factor. Key generation treats it as a signal to draw fresh primes.
var ErrNotInvertible = errors.New("inverse does not exist (not coprime)")

// ErrInvalidKey reports a private key that cannot be used for decryption,
// for example one where p == q or a factor is not greater than one.
var ErrInvalidKey = errors.New("invalid private key")

// ErrGenerationTimeout reports that a capped retry loop ran out of attempts
// or that its context was cancelled before a result was found.
var ErrGenerationTimeout = errors.New("generation attempts exhausted")

// Retryable reports whether err is recoverable by regenerating inputs.
// Only ErrNotInvertible qualifies; the other kinds are programming errors or
// terminal outcomes.
func Retryable(err error) bool {
	return errors.Is(err, ErrNotInvertible)
}
