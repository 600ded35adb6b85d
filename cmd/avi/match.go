// ABOUTME: One-shot recognition: prints every match for the given text as a JSON line
// ABOUTME: Returns errNoMatch when nothing matched so the process exits 1

package main

import (
	"errors"
	"strings"

	"github.com/mailru/easyjson/jwriter"
	"github.com/spf13/cobra"
)

var errNoMatch = errors.New("no intent matched")

func newMatchCmd(opts *options) *cobra.Command {
	var first bool

	cmd := &cobra.Command{
		Use:   "match <text...>",
		Short: "Recognize one input and print the matches as JSON lines",
		Example: `  avi match what is the weather in Tokyo
  avi match --first -i ./intents "turn on the lights"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.loadSettings()
			if err != nil {
				return err
			}
			rec, _, err := buildRecognizer(s, false)
			if err != nil {
				return err
			}

			matches, err := rec.RecognizeContext(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			if len(matches) == 0 {
				return errNoMatch
			}
			if first {
				matches = matches[:1]
			}

			w := &jwriter.Writer{}
			for _, m := range matches {
				m.MarshalEasyJSON(w)
				w.RawByte('\n')
			}
			if w.Error != nil {
				return w.Error
			}
			_, err = w.DumpTo(cmd.OutOrStdout())
			return err
		},
	}

	cmd.Flags().BoolVar(&first, "first", false, "print only the first match")
	return cmd
}
