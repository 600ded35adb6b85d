// ABOUTME: Human-readable rendering of matches for the REPL
// ABOUTME: lipgloss styles degrade to plain text when output is not a terminal

package main

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mauromedda/avi-go/internal/dispatch"
	"github.com/mauromedda/avi-go/internal/intent"
)

const notUnderstood = "Sorry, I didn't understand."

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	intentStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	slotStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	dimStyle    = lipgloss.NewStyle().Faint(true)
)

// formatMatch renders "intent  name=value ..." with slots in name order.
func formatMatch(m intent.ExtractedSlots) string {
	var b strings.Builder
	b.WriteString(intentStyle.Render(m.Intent))

	names := make([]string, 0, len(m.Slots))
	for name := range m.Slots {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		b.WriteString("  ")
		b.WriteString(slotStyle.Render(name))
		b.WriteString(dimStyle.Render("="))
		fmt.Fprintf(&b, "%q", m.Slots[name])
	}
	return b.String()
}

// printHandler returns a dispatch handler that writes each match to w.
func printHandler(w io.Writer) dispatch.Handler {
	return func(_ context.Context, m intent.ExtractedSlots) error {
		_, err := fmt.Fprintln(w, formatMatch(m))
		return err
	}
}
