// ABOUTME: Tests for ExtractedSlots query helpers and JSON encoding
// ABOUTME: Covers lookup, require, membership, pattern and type checks

package intent

import (
	"errors"
	"testing"

	"github.com/mailru/easyjson"
)

func sampleMatch() ExtractedSlots {
	return ExtractedSlots{
		Intent: "thermostat",
		Slots: map[string]string{
			"degrees": "21",
			"unit":    "celsius",
			"ratio":   "0.5",
			"eco":     "true",
		},
	}
}

func TestExtractedSlots_Lookup(t *testing.T) {
	t.Parallel()

	m := sampleMatch()
	if m.Get("unit") != "celsius" || m.Get("missing") != "" {
		t.Error("Get returned unexpected values")
	}
	if _, ok := m.Lookup("missing"); ok {
		t.Error("Lookup(missing) ok = true")
	}
	if v, err := m.Require("degrees"); err != nil || v != "21" {
		t.Errorf("Require(degrees) = (%q, %v)", v, err)
	}
	if _, err := m.Require("room"); !errors.Is(err, ErrSlotMissing) {
		t.Errorf("Require(room) err = %v; want ErrSlotMissing", err)
	}
}

func TestExtractedSlots_Predicates(t *testing.T) {
	t.Parallel()

	m := sampleMatch()

	tests := []struct {
		name string
		got  bool
		want bool
	}{
		{"has both", m.Has("degrees", "unit"), true},
		{"has one missing", m.Has("degrees", "room"), false},
		{"equal", m.Equal("unit", "celsius"), true},
		{"equal case sensitive", m.Equal("unit", "Celsius"), false},
		{"in list", m.InList("unit", []string{"kelvin", "celsius"}), true},
		{"not in list", m.InList("unit", []string{"kelvin"}), false},
		{"in list missing slot", m.InList("room", []string{""}), false},
		{"in set", m.InSet("unit", map[string]struct{}{"celsius": {}}), true},
		{"not in set", m.InSet("unit", map[string]struct{}{}), false},
		{"match pattern", m.MatchPattern("degrees", `^\d+$`), true},
		{"match pattern invalid", m.MatchPattern("degrees", `(`), false},
		{"is int", m.IsType("degrees", "int"), true},
		{"is not int", m.IsType("ratio", "int"), false},
		{"is float", m.IsType("ratio", "float"), true},
		{"is bool", m.IsType("eco", "bool"), true},
		{"is string", m.IsType("unit", "string"), true},
		{"unknown type", m.IsType("unit", "date"), false},
		{"type of missing", m.IsType("room", "string"), false},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %v; want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestExtractedSlots_AllIsCopy(t *testing.T) {
	t.Parallel()

	m := sampleMatch()
	all := m.All()
	all["unit"] = "kelvin"
	if m.Get("unit") != "celsius" {
		t.Error("All must return a copy")
	}
	if m.Count() != 4 {
		t.Errorf("Count = %d; want 4", m.Count())
	}
}

func TestExtractedSlots_MarshalJSON(t *testing.T) {
	t.Parallel()

	m := ExtractedSlots{Intent: "find_hotel", Slots: map[string]string{"z": "1", "a": `"q"`}}
	data, err := easyjson.Marshal(m)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := `{"intent":"find_hotel","slots":{"a":"\"q\"","z":"1"}}`
	if string(data) != want {
		t.Errorf("Marshal = %s; want %s", data, want)
	}

	var back ExtractedSlots
	if err := easyjson.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if back.Intent != m.Intent || back.Get("a") != `"q"` || back.Count() != 2 {
		t.Errorf("decoded = %+v; want %+v", back, m)
	}
}
