// Package main is the entry point for the unitcalc CLI.
package main

import (
	"os"

	"unitcalc/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
