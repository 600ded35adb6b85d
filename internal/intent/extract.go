// ABOUTME: Slot extraction: runs a compiled pattern and validates every captured group
// ABOUTME: All-or-nothing: one rejected slot voids the whole attempt

package intent

import (
	"strings"

	"github.com/mauromedda/avi-go/internal/pattern"
	"github.com/mauromedda/avi-go/internal/slot"
)

// Extractor matches text against patterns and applies slot policies.
type Extractor struct {
	compiler *pattern.Compiler
}

// NewExtractor creates an extractor backed by compiler and its default table.
func NewExtractor(compiler *pattern.Compiler) *Extractor {
	return &Extractor{compiler: compiler}
}

// FromPattern matches a literal placeholder pattern. Groups carrying the
// default prefix resolve against the default table, the rest against
// intentSlots; an unresolvable group is a non-match.
func (x *Extractor) FromPattern(literal, text, intentName string, intentSlots map[string]slot.Definition) (ExtractedSlots, bool) {
	compiled, err := x.compiler.Compile(literal)
	if err != nil {
		return ExtractedSlots{}, false
	}
	return x.extract(compiled, text, intentName, func(group string) (slot.Definition, bool, bool) {
		if name, ok := strings.CutPrefix(group, pattern.DefaultPrefix); ok {
			def, found := x.compiler.Defaults().Get(name)
			return def, found, true
		}
		def, found := intentSlots[group]
		return def, found, true
	})
}

// FromRegex matches a raw regex. Groups named in intentSlots are validated;
// other groups pass through unchanged.
func (x *Extractor) FromRegex(raw, text, intentName string, intentSlots map[string]slot.Definition) (ExtractedSlots, bool) {
	compiled, err := x.compiler.CompileRegex(raw)
	if err != nil {
		return ExtractedSlots{}, false
	}
	return x.extract(compiled, text, intentName, func(group string) (slot.Definition, bool, bool) {
		def, found := intentSlots[group]
		return def, found, found
	})
}

// resolver returns the definition for group, whether it was found, and
// whether the group must be validated at all.
type resolver func(group string) (def slot.Definition, found, required bool)

func (x *Extractor) extract(compiled *pattern.Compiled, text, intentName string, resolve resolver) (ExtractedSlots, bool) {
	idx := compiled.Regexp.FindStringSubmatchIndex(text)
	if idx == nil {
		return ExtractedSlots{}, false
	}

	slots := make(map[string]string, len(compiled.Groups))
	for i, group := range compiled.Regexp.SubexpNames() {
		if group == "" || idx[2*i] < 0 {
			continue
		}
		value := text[idx[2*i]:idx[2*i+1]]

		def, found, required := resolve(group)
		if !required {
			slots[group] = value
			continue
		}
		if !found {
			return ExtractedSlots{}, false
		}
		v, ok := def.Apply(value)
		if !ok {
			return ExtractedSlots{}, false
		}
		slots[group] = v
	}

	return ExtractedSlots{Intent: intentName, Slots: slots}, true
}
