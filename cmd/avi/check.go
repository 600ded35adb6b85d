// ABOUTME: Validates intent directories in strict mode and lists what loaded
// ABOUTME: Any unmatchable pattern, undeclared slot, or missing directory is an error

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCheckCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Load intent directories in strict mode and report errors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := opts.loadSettings()
			if err != nil {
				return err
			}
			s.Strict = true

			_, engine, err := buildRecognizer(s, true)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, in := range engine.Intents() {
				fmt.Fprintf(out, "%s: %d patterns, %d regex patterns, %d slots\n",
					in.Name, len(in.Patterns), len(in.RegexPatterns), len(in.Slots))
			}
			fmt.Fprintf(out, "ok: %d intents\n", engine.Len())
			return nil
		},
	}
}
