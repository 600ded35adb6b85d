// ABOUTME: Query helpers over ExtractedSlots for handlers consuming match results
// ABOUTME: Presence, equality, membership, regex and type checks on slot values

package intent

import (
	"errors"
	"fmt"
	"maps"
	"regexp"
	"strconv"
)

// ErrSlotMissing is returned by Require when a slot was not captured.
var ErrSlotMissing = errors.New("required slot not found")

// Get returns the slot value, or "" when absent.
func (m ExtractedSlots) Get(name string) string {
	return m.Slots[name]
}

// Lookup returns the slot value and whether it was captured.
func (m ExtractedSlots) Lookup(name string) (string, bool) {
	v, ok := m.Slots[name]
	return v, ok
}

// Require returns the slot value or ErrSlotMissing.
func (m ExtractedSlots) Require(name string) (string, error) {
	v, ok := m.Slots[name]
	if !ok {
		return "", fmt.Errorf("%w: %q in intent %q", ErrSlotMissing, name, m.Intent)
	}
	return v, nil
}

// Has reports whether every named slot was captured.
func (m ExtractedSlots) Has(names ...string) bool {
	for _, n := range names {
		if _, ok := m.Slots[n]; !ok {
			return false
		}
	}
	return true
}

// Equal reports whether the slot was captured with exactly value.
func (m ExtractedSlots) Equal(name, value string) bool {
	v, ok := m.Slots[name]
	return ok && v == value
}

// InList reports whether the slot value is one of list.
func (m ExtractedSlots) InList(name string, list []string) bool {
	v, ok := m.Slots[name]
	if !ok {
		return false
	}
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

// InSet reports whether the slot value is a key of set.
func (m ExtractedSlots) InSet(name string, set map[string]struct{}) bool {
	v, ok := m.Slots[name]
	if !ok {
		return false
	}
	_, found := set[v]
	return found
}

// Count returns the number of captured slots.
func (m ExtractedSlots) Count() int {
	return len(m.Slots)
}

// All returns a copy of the captured slots.
func (m ExtractedSlots) All() map[string]string {
	out := make(map[string]string, len(m.Slots))
	maps.Copy(out, m.Slots)
	return out
}

// MatchPattern reports whether the slot value matches expr. An invalid expr never matches.
func (m ExtractedSlots) MatchPattern(name, expr string) bool {
	v, ok := m.Slots[name]
	if !ok {
		return false
	}
	re, err := regexp.Compile(expr)
	return err == nil && re.MatchString(v)
}

// IsType reports whether the slot value parses as typeName:
// "int", "float", "bool" or "string".
func (m ExtractedSlots) IsType(name, typeName string) bool {
	v, ok := m.Slots[name]
	if !ok {
		return false
	}
	var err error
	switch typeName {
	case "int":
		_, err = strconv.ParseInt(v, 10, 64)
	case "float":
		_, err = strconv.ParseFloat(v, 64)
	case "bool":
		_, err = strconv.ParseBool(v)
	case "string":
	default:
		return false
	}
	return err == nil
}
