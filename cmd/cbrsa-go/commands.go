package main

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/urfave/cli/v2"

	"github.com/coinbase/cb-rsa-go/examples/common"
	"github.com/coinbase/cb-rsa-go/pkg/cbrsa"
	"github.com/coinbase/cb-rsa-go/pkg/cbrsa/logging"
	"github.com/coinbase/cb-rsa-go/pkg/cbrsa/primes"
	"github.com/coinbase/cb-rsa-go/pkg/cbrsa/rsa"
)

// loadConfig merges the parameter file, if any, with command line overrides.
func loadConfig(cCtx *cli.Context) (cbrsa.Config, error) {
	var cfg cbrsa.Config
	if path := cCtx.String("params"); path != "" {
		loaded, err := common.LoadParams(path)
		if err != nil {
			return cbrsa.Config{}, fmt.Errorf("load params: %w", err)
		}
		cfg = loaded
	}
	if cCtx.IsSet("bits") {
		cfg.PrimeBits = cCtx.Int("bits")
	}
	if cCtx.IsSet("rounds") {
		cfg.Rounds = cCtx.Int("rounds")
	}
	if cCtx.IsSet("max-attempts") {
		cfg.MaxAttempts = cCtx.Int("max-attempts")
	}
	if err := cfg.Validate(); err != nil {
		return cbrsa.Config{}, err
	}

	level := slog.LevelInfo
	if cCtx.Bool("verbose") {
		level = slog.LevelDebug
	}
	cfg.Logger = logging.New(slog.New(slog.NewTextHandler(cCtx.App.ErrWriter, &slog.HandlerOptions{Level: level})))
	return cfg.WithDefaults(), nil
}

type field struct {
	Name  string
	Value fmt.Stringer
}

// report prints name/value pairs, or spews them when --dump is set.
func report(cCtx *cli.Context, fields ...field) {
	w := cCtx.App.Writer
	if cCtx.Bool("dump") {
		spew.Fdump(w, fields)
		return
	}
	for _, f := range fields {
		fmt.Fprintf(w, "%s: %s\n", f.Name, f.Value)
	}
}

// parallelPrimes adapts GenerateRSAPrimesParallel to rsa.PrimePairSource.
type parallelPrimes struct {
	cfg cbrsa.Config
}

func (pp parallelPrimes) RSAPrimes(ctx context.Context, bits int) (p, q *big.Int, err error) {
	return primes.GenerateRSAPrimesParallel(ctx, bits, pp.cfg, nil)
}

func KeyGen(cCtx *cli.Context) error {
	cfg, err := loadConfig(cCtx)
	if err != nil {
		return err
	}

	var src rsa.PrimePairSource
	if cCtx.Bool("parallel") {
		src = parallelPrimes{cfg: cfg}
	}
	pub, priv, err := rsa.NewKeyGenerator(src, cfg).Generate(cCtx.Context, cfg.PrimeBits)
	if err != nil {
		return fmt.Errorf("failed to generate key: %w", err)
	}
	defer priv.Zeroize()

	kf := common.NewKeyFile(pub, priv)
	if out := cCtx.String("output"); out != "" {
		if err := common.SaveKeyFile(out, kf); err != nil {
			return fmt.Errorf("failed to write key file: %w", err)
		}
		fmt.Fprintf(cCtx.App.Writer, "Successfully wrote key pair to %s\n", out)
		return nil
	}

	report(cCtx,
		field{"n", pub.N()},
		field{"e", pub.E()},
		field{"p", priv.P()},
		field{"q", priv.Q()},
		field{"d", priv.D()},
	)
	return nil
}

func Encrypt(cCtx *cli.Context) error {
	pub, err := publicKey(cCtx)
	if err != nil {
		return err
	}
	m, err := common.ParseInt("message", cCtx.String("message"))
	if err != nil {
		return err
	}
	c, err := rsa.Encrypt(m, pub)
	if err != nil {
		return fmt.Errorf("failed to encrypt: %w", err)
	}
	report(cCtx, field{"ciphertext", c})
	return nil
}

func publicKey(cCtx *cli.Context) (*rsa.PublicKey, error) {
	if path := cCtx.String("key"); path != "" {
		kf, err := common.LoadKeyFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read key file: %w", err)
		}
		return kf.PublicKey()
	}
	if !cCtx.IsSet("n") {
		return nil, fmt.Errorf("%w: either --key or --n is required", cbrsa.ErrInvalidArgument)
	}
	n, err := common.ParseInt("n", cCtx.String("n"))
	if err != nil {
		return nil, err
	}
	e, err := common.ParseInt("e", cCtx.String("e"))
	if err != nil {
		return nil, err
	}
	return rsa.NewPublicKey(n, e)
}

func Decrypt(cCtx *cli.Context) error {
	kf, err := common.LoadKeyFile(cCtx.String("key"))
	if err != nil {
		return fmt.Errorf("failed to read key file: %w", err)
	}
	priv, err := kf.PrivateKey()
	if err != nil {
		return err
	}
	defer priv.Zeroize()

	c, err := common.ParseInt("ciphertext", cCtx.String("ciphertext"))
	if err != nil {
		return err
	}

	decrypt := rsa.Decrypt
	if cCtx.Bool("naive") {
		decrypt = rsa.DecryptNaive
	}
	m, err := decrypt(c, priv)
	if err != nil {
		return fmt.Errorf("failed to decrypt: %w", err)
	}
	report(cCtx, field{"message", m})
	return nil
}

func Prime(cCtx *cli.Context) error {
	cfg, err := loadConfig(cCtx)
	if err != nil {
		return err
	}
	p, err := primes.NewGenerator(nil, cfg).Prime(cCtx.Context, cfg.PrimeBits)
	if err != nil {
		return fmt.Errorf("failed to generate prime: %w", err)
	}
	report(cCtx, field{"prime", p})
	return nil
}

func IsPrime(cCtx *cli.Context) error {
	cfg, err := loadConfig(cCtx)
	if err != nil {
		return err
	}
	n, err := common.ParseInt("n", cCtx.String("n"))
	if err != nil {
		return err
	}
	verdict := "composite"
	if primes.IsProbablePrime(n, cfg.Rounds, nil) {
		verdict = "probably prime"
	}
	fmt.Fprintf(cCtx.App.Writer, "%s is %s\n", n, verdict)
	return nil
}

func Bench(cCtx *cli.Context) error {
	cfg, err := loadConfig(cCtx)
	if err != nil {
		return err
	}
	iterations := cCtx.Int("iterations")
	if iterations <= 0 {
		return fmt.Errorf("%w: iterations must be positive", cbrsa.ErrInvalidArgument)
	}
	// Keep per-key info logs out of the timing output.
	cfg.Logger = logging.Discard()

	w := cCtx.App.Writer
	start := time.Now()
	pub, priv, err := rsa.NewKeyGenerator(nil, cfg).Generate(cCtx.Context, cfg.PrimeBits)
	if err != nil {
		return fmt.Errorf("failed to generate key: %w", err)
	}
	defer priv.Zeroize()
	fmt.Fprintf(w, "keygen (%d-bit primes): %v\n", cfg.PrimeBits, time.Since(start))

	m := new(big.Int).Rsh(pub.N(), 1)
	var c *big.Int
	elapsed, err := timeOp(iterations, func() error {
		c, err = rsa.Encrypt(m, pub)
		return err
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "encrypt: %v/op\n", elapsed)

	for _, op := range []struct {
		name string
		fn   func(*big.Int, *rsa.PrivateKey) (*big.Int, error)
	}{
		{"decrypt crt", rsa.Decrypt},
		{"decrypt naive", rsa.DecryptNaive},
	} {
		elapsed, err := timeOp(iterations, func() error {
			_, err := op.fn(c, priv)
			return err
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s: %v/op\n", op.name, elapsed)
	}
	return nil
}

func timeOp(iterations int, fn func() error) (time.Duration, error) {
	start := time.Now()
	for i := 0; i < iterations; i++ {
		if err := fn(); err != nil {
			return 0, err
		}
	}
	return time.Since(start) / time.Duration(iterations), nil
}
