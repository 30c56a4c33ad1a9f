// Package main provides the CLI entry point for the KASD interpreter.
package main

import (
	"os"

	"github.com/kasd-lang/kasd/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
