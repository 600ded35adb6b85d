// ABOUTME: Interactive prompt loop: recognizes each input line and dispatches the matches
// ABOUTME: With --watch, intent file changes rebuild the engine and swap it atomically

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync/atomic"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mauromedda/avi-go/internal/config"
	"github.com/mauromedda/avi-go/internal/dispatch"
	"github.com/mauromedda/avi-go/internal/intent"
	avilog "github.com/mauromedda/avi-go/internal/log"
	"github.com/mauromedda/avi-go/internal/watch"
)

const prompt = "Your prompt: "

func newReplCmd(opts *options) *cobra.Command {
	var watchDirs bool

	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Read prompts from stdin and print recognized intents",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := opts.loadSettings()
			if err != nil {
				return err
			}
			if watchDirs {
				s.Watch = true
			}

			rec, _, err := buildRecognizer(s, false, helpDeclaration)
			if err != nil {
				return err
			}
			var current atomic.Pointer[intent.Recognizer]
			current.Store(rec)

			ctx := cmd.Context()
			if s.Watch {
				w := watch.New(existingDirs(s.IntentDirs), func() { reload(s, &current) })
				if err := w.Start(ctx); err != nil {
					return fmt.Errorf("watching intents: %w", err)
				}
				defer w.Close()
			}

			out := cmd.OutOrStdout()
			d := dispatch.New()
			d.SetFallback(printHandler(out))
			if err := d.Register(helpIntent, helpHandler(out, &current)); err != nil {
				return err
			}

			var in lineReader
			if isTerminal(cmd.InOrStdin()) {
				writeHeader(out, terminalWidth())
				in = newHistoryReader(config.HistoryFile())
			} else {
				in = newScanReader(cmd.InOrStdin())
			}
			defer func() {
				if err := in.Close(); err != nil {
					avilog.Debug("closing input: %v", err)
				}
			}()

			return runREPL(ctx, in, out, &current, d)
		},
	}

	cmd.Flags().BoolVarP(&watchDirs, "watch", "w", false, "reload intents when declaration files change")
	return cmd
}

// reload rebuilds the engine from s. A failed rebuild keeps the current engine.
func reload(s *config.Settings, current *atomic.Pointer[intent.Recognizer]) {
	rec, engine, err := buildRecognizer(s, false, helpDeclaration)
	if err != nil {
		avilog.Error("reload failed, keeping current intents: %v", err)
		return
	}
	current.Store(rec)
	avilog.Info("reloaded %d intents", engine.Len())
}

// runREPL reads lines until EOF, "exit", "quit", or ctx cancellation.
func runREPL(ctx context.Context, in lineReader, out io.Writer, current *atomic.Pointer[intent.Recognizer], d *dispatch.Dispatcher) error {
	for {
		raw, err := in.ReadLine(prompt)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return nil
		}

		line := strings.TrimSpace(raw)
		switch strings.ToLower(line) {
		case "":
			continue
		case "exit", "quit":
			return nil
		}

		matches, err := current.Load().RecognizeContext(ctx, line)
		if err != nil {
			return nil
		}
		if len(matches) == 0 {
			fmt.Fprintln(out, notUnderstood)
			continue
		}
		if err := d.DispatchAll(ctx, matches); err != nil {
			avilog.Warn("dispatch: %v", err)
		}
	}
}

// existingDirs drops entries that are not directories.
func existingDirs(dirs []string) []string {
	var out []string
	for _, dir := range dirs {
		if fi, err := os.Stat(dir); err == nil && fi.IsDir() {
			out = append(out, dir)
		}
	}
	return out
}

// isTerminal reports whether r is an interactive terminal.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
