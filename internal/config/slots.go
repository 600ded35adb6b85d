// ABOUTME: Builds the default slot table from the builtin seed plus configured slots
// ABOUTME: Configured values use the intent declaration shape: "*" or a list of strings

package config

import (
	"fmt"

	"github.com/mauromedda/avi-go/internal/intent"
	"github.com/mauromedda/avi-go/internal/slot"
)

// DefaultSlots returns the builtin default slots overlaid with s.Slots.
func DefaultSlots(s *Settings) (*slot.Table, error) {
	base := slot.NewTable(slot.Builtin())
	if s == nil || len(s.Slots) == 0 {
		return base, nil
	}

	// Reuse declaration parsing so config and intent files accept the same shapes.
	decl := intent.Declaration{Slots: s.Slots}
	extra, err := decl.ParseSlots()
	if err != nil {
		return nil, fmt.Errorf("config slots: %w", err)
	}
	return base.With(extra), nil
}

// EngineConfig converts settings into an intent engine configuration.
func EngineConfig(s *Settings) (intent.Config, error) {
	defaults, err := DefaultSlots(s)
	if err != nil {
		return intent.Config{}, err
	}
	return intent.Config{
		Defaults:  defaults,
		Strict:    s.Strict,
		CacheSize: s.CacheSize,
	}, nil
}
