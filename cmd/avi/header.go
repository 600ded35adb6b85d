// ABOUTME: Startup banner for the REPL: "=" rules centered to the terminal width
// ABOUTME: Width comes from x/term; text width is measured with go-runewidth

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

// fallbackWidth is used when stdout is not a terminal.
const fallbackWidth = 40

// terminalWidth returns the width of stdout, or fallbackWidth.
func terminalWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return fallbackWidth
	}
	return w
}

// centered pads " text " with "=" on both sides to fill width columns.
// Empty text renders a plain rule.
func centered(text string, width int) string {
	middle := "=="
	if text != "" {
		middle = " " + text + " "
	}
	rem := max(width-runewidth.StringWidth(middle), 0)
	left := rem / 2
	return strings.Repeat("=", left) + middle + strings.Repeat("=", rem-left)
}

// writeHeader prints the banner shown when the REPL starts.
func writeHeader(w io.Writer, width int) {
	fmt.Fprintln(w, headerStyle.Render(centered("Avi Core", width)))
	fmt.Fprintf(w, "Version: %s (%s)\n", version, commit)
	fmt.Fprintf(w, "Build Date: %s\n", date)
	fmt.Fprintln(w, headerStyle.Render(centered("", width)))
}
