// ABOUTME: Default slot table shared by every intent through the default/ namespace
// ABOUTME: Built once from a seed; read-only afterwards, safe for concurrent lookups

package slot

import (
	"maps"
	"slices"
	"strings"
)

// Table maps shared slot names to their definitions.
type Table struct {
	defs map[string]Definition
}

// NewTable builds a table from seed. The seed map is copied.
func NewTable(seed map[string]Definition) *Table {
	defs := make(map[string]Definition, len(seed))
	maps.Copy(defs, seed)
	return &Table{defs: defs}
}

// Builtin returns the starter set of default slots.
func Builtin() map[string]Definition {
	return map[string]Definition{
		"locations": Enumeration("new york", "london", "paris", "tokyo"),
		"dates":     CatchProcess(trimDate),
	}
}

// trimDate accepts any date phrase with surrounding whitespace removed.
func trimDate(value string) (string, bool) {
	v := strings.TrimSpace(value)
	return v, v != ""
}

// Get looks up a default slot by name.
func (t *Table) Get(name string) (Definition, bool) {
	if t == nil {
		return Definition{}, false
	}
	d, ok := t.defs[name]
	return d, ok
}

// Names returns the sorted slot names.
func (t *Table) Names() []string {
	if t == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(t.defs))
}

// Len returns the number of slots in the table.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.defs)
}

// With returns a new table holding t's slots overlaid with extra.
// t itself is left untouched.
func (t *Table) With(extra map[string]Definition) *Table {
	defs := make(map[string]Definition, t.Len()+len(extra))
	if t != nil {
		maps.Copy(defs, t.defs)
	}
	maps.Copy(defs, extra)
	return &Table{defs: defs}
}
