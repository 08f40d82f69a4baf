// Package logging provides the logging facade used by cb-rsa-go.
//
// Logger wraps the subset of log/slog the toolkit needs. Prime and key
// generation log retries at debug level and completed key pairs at info
// level. Only sizes and counters are ever logged:
//
//	logger := logging.New(nil) // slog.Default()
//	logger.Info(ctx, "key generated",
//	    logging.BitLen("n_bits", n),
//	    logging.Redacted("d"),
//	)
//
// Use Discard in tests or benchmarks that should stay quiet.
//
// # Security Considerations
//
//   - Never log primes, private exponents or plaintexts
//   - Use logging.Redacted() to record that a secret was intentionally omitted
//   - Prefer logging.BitLen() over the value itself for public numbers too
package logging
