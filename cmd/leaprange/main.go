// Package main provides the leaprange CLI.
package main

import (
	"os"

	"github.com/leapstack-labs/leaprange/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(cli.ExitCode(err))
	}
}
