// ABOUTME: Line sources for the REPL: liner with history on a terminal, a scanner otherwise
// ABOUTME: Both return io.EOF when the session input ends

package main

import (
	"bufio"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	avilog "github.com/mauromedda/avi-go/internal/log"
)

// lineReader yields one input line per call.
type lineReader interface {
	ReadLine(prompt string) (string, error)
	Close() error
}

// scanReader reads newline-separated input without prompting.
type scanReader struct {
	scanner *bufio.Scanner
}

func newScanReader(r io.Reader) *scanReader {
	return &scanReader{scanner: bufio.NewScanner(r)}
}

func (s *scanReader) ReadLine(string) (string, error) {
	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return s.scanner.Text(), nil
}

func (s *scanReader) Close() error { return nil }

// historyReader is an interactive line editor with persistent history.
type historyReader struct {
	state       *liner.State
	historyFile string
}

func newHistoryReader(historyFile string) *historyReader {
	state := liner.NewLiner()
	state.SetCtrlCAborts(true)

	h := &historyReader{state: state, historyFile: historyFile}
	if f, err := os.Open(historyFile); err == nil {
		if _, err := state.ReadHistory(f); err != nil {
			avilog.Debug("reading history: %v", err)
		}
		f.Close()
	}
	return h
}

// ReadLine prompts for one line. Ctrl+C and Ctrl+D both end the session.
func (h *historyReader) ReadLine(prompt string) (string, error) {
	line, err := h.state.Prompt(prompt)
	if errors.Is(err, liner.ErrPromptAborted) {
		return "", io.EOF
	}
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(line) != "" {
		h.state.AppendHistory(line)
	}
	return line, nil
}

// Close saves history (owner read/write only) and restores the terminal.
func (h *historyReader) Close() error {
	defer h.state.Close()

	if err := os.MkdirAll(filepath.Dir(h.historyFile), 0o700); err != nil {
		return err
	}
	f, err := os.OpenFile(h.historyFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = h.state.WriteHistory(f)
	return err
}
