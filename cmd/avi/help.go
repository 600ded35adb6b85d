// ABOUTME: Built-in REPL help intent listing what the loaded intents understand
// ABOUTME: Registered on the dispatcher by name; reads the engine currently being served

package main

import (
	"context"
	"fmt"
	"io"
	"sync/atomic"

	"github.com/mauromedda/avi-go/internal/dispatch"
	"github.com/mauromedda/avi-go/internal/intent"
)

// helpIntent uses a dot so it cannot collide with file-declared snake_case names.
const helpIntent = "avi.help"

var helpDeclaration = intent.Declaration{
	Intent:   helpIntent,
	Patterns: []string{"help", "what can you do"},
}

// helpHandler prints every loaded intent with its patterns.
func helpHandler(w io.Writer, current *atomic.Pointer[intent.Recognizer]) dispatch.Handler {
	return func(_ context.Context, _ intent.ExtractedSlots) error {
		var intents []*intent.Intent
		for _, in := range current.Load().Engine().Intents() {
			if in.Name != helpIntent {
				intents = append(intents, in)
			}
		}
		if len(intents) == 0 {
			_, err := fmt.Fprintln(w, "No intents loaded.")
			return err
		}

		fmt.Fprintln(w, headerStyle.Render("I understand:"))
		for _, in := range intents {
			fmt.Fprintf(w, "  %s\n", intentStyle.Render(in.Name))
			for _, p := range in.Patterns {
				fmt.Fprintf(w, "    %s\n", p)
			}
			for _, rx := range in.RegexPatterns {
				fmt.Fprintf(w, "    %s\n", dimStyle.Render("regex: "+rx))
			}
		}
		return nil
	}
}
