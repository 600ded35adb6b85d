// ABOUTME: Tests for loading intent declarations from files and directories
// ABOUTME: Uses temp directories with JSON and YAML declarations

package intent

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/mauromedda/avi-go/internal/slot"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

const hotelJSON = `{
  "intent": "find_hotel",
  "patterns": ["find me a hotel in {default/locations}"],
  "slots": {}
}`

const flightYAML = `intent: book_flight
regex_patterns:
  - 'flight from (?P<origin>\w+) to (?P<destination>\w+)'
slots:
  origin: ["london", "paris"]
  destination: "*"
`

func TestLoadFile_JSON(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, "hotel.intent", hotelJSON)

	e := NewEngine(Config{})
	name, err := e.LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if name != "find_hotel" {
		t.Errorf("name = %q; want find_hotel", name)
	}
}

func TestLoadFile_YAML(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, "flight.yaml", flightYAML)

	e := NewEngine(Config{})
	if _, err := e.LoadFile(path); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	in := e.Intents()[0]
	if in.Slots["origin"].Kind() != slot.KindEnumeration {
		t.Errorf("origin kind = %v; want enumeration", in.Slots["origin"].Kind())
	}
	if in.Slots["destination"].Kind() != slot.KindCatchAll {
		t.Errorf("destination kind = %v; want catch_all", in.Slots["destination"].Kind())
	}
}

const alarmTOML = `intent = "set_alarm"
patterns = ["wake me up {default/dates}"]

[slots]
label = "*"
`

func TestLoadFile_TOML(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, "alarm.toml", alarmTOML)

	e := NewEngine(Config{})
	if _, err := e.LoadFile(path); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	in := e.Intents()[0]
	if in.Slots["label"].Kind() != slot.KindCatchAll {
		t.Errorf("label kind = %v; want catch_all", in.Slots["label"].Kind())
	}

	got := NewRecognizer(e).Recognize("wake me up tomorrow at 7")
	want := []ExtractedSlots{{Intent: "set_alarm", Slots: map[string]string{"default_dates": "tomorrow at 7"}}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Recognize mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFile_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	e := NewEngine(Config{})

	if _, err := e.LoadFile(filepath.Join(dir, "missing.intent")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file err = %v; want ErrNotExist", err)
	}
	if _, err := e.LoadFile(writeFile(t, dir, "notes.txt", "hi")); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("txt err = %v; want ErrUnsupportedFormat", err)
	}
	if _, err := e.LoadFile(writeFile(t, dir, "bad.json", "{")); err == nil {
		t.Error("expected parse error for bad JSON")
	}
	if _, err := e.LoadFile(writeFile(t, dir, "empty.json", `{"intent": "x"}`)); !errors.Is(err, ErrNoPatterns) {
		t.Errorf("no patterns err = %v; want ErrNoPatterns", err)
	}
}

func TestLoadDir(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "b_flight.yml", flightYAML)
	writeFile(t, dir, "a_hotel.json", hotelJSON)
	writeFile(t, dir, "README.md", "# not an intent")
	if err := os.Mkdir(filepath.Join(dir, "nested.intent"), 0o755); err != nil {
		t.Fatal(err)
	}

	e := NewEngine(Config{})
	names, err := e.LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir: %v", err)
	}
	if diff := cmp.Diff([]string{"find_hotel", "book_flight"}, names); diff != "" {
		t.Errorf("names mismatch (-want +got):\n%s", diff)
	}

	got := NewRecognizer(e).Recognize("flight from london to rome")
	want := []ExtractedSlots{{Intent: "book_flight", Slots: map[string]string{"origin": "london", "destination": "rome"}}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Recognize mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadDir_ParseErrorLoadsNothing(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "a_hotel.json", hotelJSON)
	writeFile(t, dir, "b_broken.json", `{"intent": `)

	e := NewEngine(Config{})
	if _, err := e.LoadDir(dir); err == nil {
		t.Fatal("expected error")
	}
	if e.Len() != 0 {
		t.Errorf("Len = %d; want 0 after parse failure", e.Len())
	}
}

func TestLoadDir_LoadErrorKeepsEarlier(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "a_hotel.json", hotelJSON)
	writeFile(t, dir, "b_invalid.json", `{"intent": "", "patterns": ["x"]}`)

	e := NewEngine(Config{})
	names, err := e.LoadDir(dir)
	if !errors.Is(err, ErrEmptyName) {
		t.Fatalf("err = %v; want ErrEmptyName", err)
	}
	if diff := cmp.Diff([]string{"find_hotel"}, names); diff != "" {
		t.Errorf("names mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadDir_Missing(t *testing.T) {
	t.Parallel()

	if _, err := NewEngine(Config{}).LoadDir(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("expected error for missing directory")
	}
}

func TestIsIntentFile(t *testing.T) {
	t.Parallel()

	tests := map[string]bool{
		"a.intent": true,
		"a.JSON":   true,
		"a.yaml":   true,
		"a.yml":    true,
		"a.toml":   true,
		"a.txt":    false,
		"intent":   false,
	}
	for name, want := range tests {
		if got := IsIntentFile(name); got != want {
			t.Errorf("IsIntentFile(%q) = %v; want %v", name, got, want)
		}
	}
}
