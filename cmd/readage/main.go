// Package main is the entry point for the readage CLI.
package main

import (
	"os"

	"github.com/f3rmion/readage/cmd/readage/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
