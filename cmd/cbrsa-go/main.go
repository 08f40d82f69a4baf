package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/coinbase/cb-rsa-go/pkg/cbrsa"
)

func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "params",
			Aliases: []string{"c"},
			Usage:   "Path to a JSON parameter file (prime_bits, rounds, max_attempts)",
		},
		&cli.BoolFlag{
			Name:  "verbose",
			Usage: "Log retries and rejected candidates",
		},
		&cli.BoolFlag{
			Name:  "dump",
			Usage: "Dump results with go-spew instead of plain decimal output",
		},
	}
}

func bitsFlag() cli.Flag {
	return &cli.IntFlag{
		Name:    "bits",
		Aliases: []string{"b"},
		Usage:   "Bit length of each prime (overrides the parameter file)",
	}
}

func roundsFlag() cli.Flag {
	return &cli.IntFlag{
		Name:    "rounds",
		Aliases: []string{"r"},
		Usage:   "Miller-Rabin rounds (overrides the parameter file)",
	}
}

func newCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "keygen",
			Usage: "Generate an RSA key pair",
			Flags: []cli.Flag{
				bitsFlag(),
				roundsFlag(),
				&cli.IntFlag{
					Name:  "max-attempts",
					Usage: "Give up after this many candidates or key attempts (0 means unbounded)",
				},
				&cli.BoolFlag{
					Name:  "parallel",
					Usage: "Search for p and q on separate goroutines",
				},
				&cli.StringFlag{
					Name:    "output",
					Aliases: []string{"o"},
					Usage:   "Write the key pair to this JSON file instead of stdout",
				},
			},
			Action: KeyGen,
		},
		{
			Name:  "encrypt",
			Usage: "Encrypt an integer message",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "key",
					Aliases: []string{"k"},
					Usage:   "Path to a key file",
				},
				&cli.StringFlag{
					Name:  "n",
					Usage: "Modulus in decimal, used when no key file is given",
				},
				&cli.StringFlag{
					Name:  "e",
					Usage: "Public exponent in decimal",
					Value: fmt.Sprint(cbrsa.PublicExponent),
				},
				&cli.StringFlag{
					Name:     "message",
					Aliases:  []string{"m"},
					Usage:    "Plaintext integer in decimal",
					Required: true,
				},
			},
			Action: Encrypt,
		},
		{
			Name:  "decrypt",
			Usage: "Decrypt an integer ciphertext with CRT",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "key",
					Aliases:  []string{"k"},
					Usage:    "Path to a key file with a private part",
					Required: true,
				},
				&cli.StringFlag{
					Name:     "ciphertext",
					Aliases:  []string{"ct"},
					Usage:    "Ciphertext integer in decimal",
					Required: true,
				},
				&cli.BoolFlag{
					Name:  "naive",
					Usage: "Use c^d mod n instead of CRT",
				},
			},
			Action: Decrypt,
		},
		{
			Name:   "prime",
			Usage:  "Generate a probable prime",
			Flags:  []cli.Flag{bitsFlag(), roundsFlag()},
			Action: Prime,
		},
		{
			Name:  "isprime",
			Usage: "Run Miller-Rabin on an integer",
			Flags: []cli.Flag{
				roundsFlag(),
				&cli.StringFlag{
					Name:     "n",
					Usage:    "Integer to test, in decimal",
					Required: true,
				},
			},
			Action: IsPrime,
		},
		{
			Name:  "bench",
			Usage: "Time key generation, encryption and decryption",
			Flags: []cli.Flag{
				bitsFlag(),
				roundsFlag(),
				&cli.IntFlag{
					Name:    "iterations",
					Aliases: []string{"n"},
					Usage:   "Encrypt/decrypt iterations",
					Value:   100,
				},
			},
			Action: Bench,
		},
		{
			Name:  "version",
			Usage: "Print the library version",
			Action: func(cCtx *cli.Context) error {
				fmt.Fprintf(cCtx.App.Writer, "cb-rsa-go version: %s\n", cbrsa.WrapperVersion())
				return nil
			},
		},
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:     "cbrsa-go",
		Usage:    "Textbook RSA demo tools",
		Version:  cbrsa.WrapperVersion(),
		Flags:    globalFlags(),
		Commands: newCommands(),
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}
