// ABOUTME: Tests for the logging package
// ABOUTME: Validates level filtering, output redirection, and level parsing

package log

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

// capture redirects output for the duration of the test and restores state.
func capture(t *testing.T) *bytes.Buffer {
	t.Helper()

	saved := GetLevel()
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() {
		SetLevel(saved)
		SetOutput(os.Stderr)
	})
	return &buf
}

func TestSetLevel(t *testing.T) {
	capture(t)

	SetLevel(LevelDebug)
	if GetLevel() != LevelDebug {
		t.Errorf("expected LevelDebug, got %v", GetLevel())
	}

	SetLevel(LevelError)
	if GetLevel() != LevelError {
		t.Errorf("expected LevelError, got %v", GetLevel())
	}
}

func TestDebugSuppressedAtInfoLevel(t *testing.T) {
	buf := capture(t)
	SetLevel(LevelInfo)

	Debug("this should be suppressed: %s", "test")
	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}

func TestDebugEmittedAtDebugLevel(t *testing.T) {
	buf := capture(t)
	SetLevel(LevelDebug)

	Debug("loaded %d intents", 3)
	out := buf.String()
	if !strings.Contains(out, "level=DEBUG") || !strings.Contains(out, "loaded 3 intents") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestAllLevels(t *testing.T) {
	buf := capture(t)
	SetLevel(LevelDebug)

	Debug("debug: %d", 1)
	Info("info: %d", 2)
	Warn("warn: %d", 3)
	Error("error: %d", 4)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4:\n%s", len(lines), buf.String())
	}
	for i, want := range []string{"DEBUG", "INFO", "WARN", "ERROR"} {
		if !strings.Contains(lines[i], "level="+want) {
			t.Errorf("line %d = %q; want level %s", i, lines[i], want)
		}
	}
}

func TestErrorOnlyAtErrorLevel(t *testing.T) {
	buf := capture(t)
	SetLevel(LevelError)

	Warn("dropped")
	Error("kept")
	out := buf.String()
	if strings.Contains(out, "dropped") || !strings.Contains(out, "kept") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"debug", "DEBUG", false},
		{"INFO", "INFO", false},
		{" warn ", "WARN", false},
		{"error", "ERROR", false},
		{"loud", "INFO", true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q) err = %v; wantErr %v", tt.in, err, tt.wantErr)
		}
		if got.String() != tt.want {
			t.Errorf("ParseLevel(%q) = %v; want %s", tt.in, got, tt.want)
		}
	}
}
