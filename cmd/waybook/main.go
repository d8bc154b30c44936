package main

import (
	"fmt"
	"os"

	"github.com/djmckee/waybook/internal/cli"
)

// version is overridden at build time via -ldflags.
var version = "dev"

func main() {
	if err := cli.Run(version); err != nil {
		fmt.Fprintf(os.Stderr, "waybook: %v\n", err)
		os.Exit(1)
	}
}
