// Package internalcheck holds static policy tests over the cb-rsa-go source
// tree. It has no exported API.
//
// # Policies
//
//   - Only modarith computes modular exponentiations and inverses; other
//     packages go through it instead of calling math/big directly.
//   - Only primes may import math/rand, the non-cryptographic generator used
//     for Miller-Rabin witnesses.
//   - Private key components are never handed to fmt or log formatting, and
//     no format string uses hex verbs.
package internalcheck
