// Package cbrsa is the root of a small RSA toolkit built on arbitrary-precision
// integers. It holds the pieces shared by every subpackage: sentinel errors,
// the Config knobs, version information and zeroization helpers.
//
// The algorithms live in subpackages:
//
//   - modarith: modular exponentiation, extended GCD and modular inverse
//   - primes: Miller-Rabin testing and random prime generation
//   - rsa: key generation, encryption and CRT decryption
//   - logging: the slog-backed Logger used across the toolkit
//
// The toolkit is pedagogical. It does not pad messages, does not serialize
// keys and does not attempt constant-time arithmetic. Do not use it to protect
// real data.
package cbrsa
