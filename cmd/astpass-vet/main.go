// Command astpass-vet reports unused variables, variables used before
// definition and constant conditions in Go packages.
//
// Usage:
//
//	astpass-vet ./...
//
// Or as a vet tool:
//
//	go vet -vettool=$(which astpass-vet) ./...
package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"github.com/sirkon/astpass"
)

func main() {
	singlechecker.Main(astpass.Analyzer)
}
