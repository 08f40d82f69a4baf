// Package rsa implements textbook RSA over arbitrary-precision integers: key
// generation from two random primes, encryption with the fixed public
// exponent 65537, and decryption through the Chinese Remainder Theorem.
//
// # Key Types
//
//   - PublicKey: the modulus n and the public exponent e
//   - PrivateKey: the primes p and q and the private exponent d; n is
//     recomputed as p*q when needed
//
// Keys are immutable. Constructors copy their inputs and accessors return
// copies, so callers cannot alter a key after the fact.
//
// # Usage
//
//	pub, priv, err := rsa.GenerateKey(ctx, 1024)
//	if err != nil {
//	    return err
//	}
//	defer priv.Zeroize()
//
//	c, err := rsa.Encrypt(m, pub)
//	...
//	m2, err := rsa.Decrypt(c, priv)
//
// # Limitations
//
// There is no padding. Messages must satisfy 0 <= m < n; larger values are
// reduced mod n and do not round-trip. Arithmetic is not constant-time.
package rsa
