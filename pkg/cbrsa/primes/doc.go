// Package primes provides Miller-Rabin primality testing and random prime
// generation on top of an injectable random Source.
//
// A Source bundles the two kinds of randomness the package needs:
// cryptographically secure bytes for prime candidates and a fast
// general-purpose generator for Miller-Rabin witnesses. NewSystemSource is the
// production choice; NewSeededSource gives reproducible runs for tests.
//
//	gen := primes.NewGenerator(primes.NewSystemSource(), cbrsa.Config{})
//	p, q, err := gen.RSAPrimes(ctx, 512)
//
// Sources are not safe for concurrent use. Give every goroutine its own, as
// GenerateRSAPrimesParallel does.
package primes
