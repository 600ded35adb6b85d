// ABOUTME: CLI entry point for avi: builds the cobra command tree and maps errors to exit codes
// ABOUTME: A no-match result from `avi match` exits 1 without printing an error

package main

import (
	"errors"
	"fmt"
	"os"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errNoMatch) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}
