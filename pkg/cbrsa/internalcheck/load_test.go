package internalcheck

import (
	"testing"

	"golang.org/x/tools/go/packages"
)

const (
	modulePath   = "github.com/coinbase/cb-rsa-go"
	libraryRoot  = modulePath + "/pkg/cbrsa/..."
	modarithPath = modulePath + "/pkg/cbrsa/modarith"
	primesPath   = modulePath + "/pkg/cbrsa/primes"
	rsaPath      = modulePath + "/pkg/cbrsa/rsa"
)

// loadLibrary type-checks every non-test package under pkg/cbrsa.
func loadLibrary(t *testing.T) []*packages.Package {
	t.Helper()
	cfg := &packages.Config{
		Mode: packages.NeedSyntax | packages.NeedTypes | packages.NeedTypesInfo |
			packages.NeedFiles | packages.NeedName | packages.NeedImports,
	}

	pkgs, err := packages.Load(cfg, libraryRoot)
	if err != nil {
		t.Fatalf("load packages: %v", err)
	}
	if packages.PrintErrors(pkgs) > 0 {
		t.Fatalf("packages under %s failed to load", libraryRoot)
	}
	return pkgs
}
