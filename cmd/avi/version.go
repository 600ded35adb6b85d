// ABOUTME: Prints build version information set via -ldflags
// ABOUTME: Example: go build -ldflags "-X main.version=v0.1.0"

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "avi %s (%s) built %s\n", version, commit, date)
		},
	}
}
