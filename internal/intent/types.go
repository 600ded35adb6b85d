// ABOUTME: Intent and match-result types for the pattern-based recognizer
// ABOUTME: ExtractedSlots carries an intent name plus validated slot values

package intent

import (
	"errors"
	"maps"

	"github.com/mauromedda/avi-go/internal/slot"
)

// Load-time validation errors.
var (
	ErrEmptyName       = errors.New("intent name is required")
	ErrNoPatterns      = errors.New("intent must have at least one pattern or regex pattern")
	ErrInvalidSlot     = errors.New("invalid slot definition")
	ErrDuplicateIntent = errors.New("intent already loaded")
)

// Intent is a named command recognized by its literal and raw regex patterns.
// Intents owned by an Engine must not be modified.
type Intent struct {
	Name          string
	Patterns      []string                   // placeholder syntax, tried first
	RegexPatterns []string                   // raw regexes, tried after Patterns
	Slots         map[string]slot.Definition // intent-local slot policies
}

// clone returns a deep copy so the caller's declaration can't alias engine state.
func (i Intent) clone() *Intent {
	return &Intent{
		Name:          i.Name,
		Patterns:      append([]string(nil), i.Patterns...),
		RegexPatterns: append([]string(nil), i.RegexPatterns...),
		Slots:         maps.Clone(i.Slots),
	}
}

// ExtractedSlots is the result of one successful match attempt.
type ExtractedSlots struct {
	Intent string
	Slots  map[string]string // capture name -> validated value
}
