// ABOUTME: Intent declarations as authored in .intent/.json/.yaml/.toml files
// ABOUTME: Validates shape and converts slot declarations into slot definitions

package intent

import (
	"fmt"
	"slices"
	"strings"

	"github.com/mauromedda/avi-go/internal/pattern"
	"github.com/mauromedda/avi-go/internal/slot"
)

// WildcardSlot declares a catch-all slot.
const WildcardSlot = "*"

// Declaration is the boundary format of one intent.
// Each Slots value is either WildcardSlot or a list of strings.
type Declaration struct {
	Intent        string         `json:"intent" yaml:"intent" toml:"intent"`
	Patterns      []string       `json:"patterns,omitempty" yaml:"patterns" toml:"patterns"`
	RegexPatterns []string       `json:"regex_patterns,omitempty" yaml:"regex_patterns" toml:"regex_patterns"`
	Slots         map[string]any `json:"slots,omitempty" yaml:"slots" toml:"slots"`
}

// Validate checks the name and pattern requirements.
func (d Declaration) Validate() error {
	if strings.TrimSpace(d.Intent) == "" {
		return ErrEmptyName
	}
	if len(d.Patterns) == 0 && len(d.RegexPatterns) == 0 {
		return fmt.Errorf("%w: %q", ErrNoPatterns, d.Intent)
	}
	return nil
}

// ParseSlots converts declared slots into definitions. Slots are visited in
// name order so the reported error is deterministic.
func (d Declaration) ParseSlots() (map[string]slot.Definition, error) {
	defs := make(map[string]slot.Definition, len(d.Slots))
	names := make([]string, 0, len(d.Slots))
	for name := range d.Slots {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		if strings.HasPrefix(name, pattern.DefaultPrefix) {
			return nil, fmt.Errorf("%w: slot %q uses the %q prefix", pattern.ErrReservedSlotName, name, pattern.DefaultPrefix)
		}
		def, err := parseSlot(d.Slots[name])
		if err != nil {
			return nil, fmt.Errorf("%w for %q: %v", ErrInvalidSlot, name, err)
		}
		defs[name] = def
	}
	return defs, nil
}

func parseSlot(raw any) (slot.Definition, error) {
	switch v := raw.(type) {
	case string:
		if v == WildcardSlot {
			return slot.CatchAll(), nil
		}
		return slot.Definition{}, fmt.Errorf("string value must be %q, got %q", WildcardSlot, v)
	case []string:
		return slot.Enumeration(v...), nil
	case []any:
		values := make([]string, len(v))
		for i, item := range v {
			s, ok := item.(string)
			if !ok {
				return slot.Definition{}, fmt.Errorf("list item %d is %T, want string", i, item)
			}
			values[i] = s
		}
		return slot.Enumeration(values...), nil
	default:
		return slot.Definition{}, fmt.Errorf("want %q or a list of strings, got %T", WildcardSlot, raw)
	}
}
