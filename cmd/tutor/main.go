// Package main provides the tutor CLI.
package main

import (
	"os"

	"github.com/projeto-tutor/tutor/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
