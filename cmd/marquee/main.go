// Package main is the entry point for the marquee CLI.
package main

import (
	"os"

	"github.com/f3rmion/marquee/cmd/marquee/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(cmd.ExitCode(err))
	}
}
