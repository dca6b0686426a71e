// Package main is the entry point for the skillmatch CLI.
package main

import (
	"fmt"
	"os"

	"github.com/skillmatch/skillmatch/internal/cli"
)

// version is set via ldflags at build time.
var version = "dev"

func main() {
	if err := cli.Execute(version); err != nil {
		fmt.Fprintf(os.Stderr, "skillmatch: %v\n", err)
		os.Exit(1)
	}
}
