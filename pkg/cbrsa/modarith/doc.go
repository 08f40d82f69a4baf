// Package modarith implements the modular arithmetic shared by the rest of
// the toolkit: square-and-multiply exponentiation, the iterative extended
// Euclidean algorithm and the modular inverse derived from it.
//
// Every function is pure. Inputs are never mutated and every result is a
// freshly allocated *big.Int.
//
// # Errors
//
// Malformed operands yield cbrsa.ErrInvalidArgument. ModularInverse yields
// cbrsa.ErrNotInvertible when gcd(a, m) != 1; that outcome is expected during
// key generation and callers are meant to retry with new inputs.
package modarith
