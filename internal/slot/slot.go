// ABOUTME: Slot definitions: validation/transform policy applied to a captured value
// ABOUTME: Closed variant of Enumeration, CatchAll and CatchProcess; immutable once built

package slot

import (
	"fmt"
	"regexp"
	"strings"
)

// Kind identifies which policy a Definition carries.
type Kind int

const (
	KindCatchAll     Kind = iota // any non-empty value
	KindEnumeration              // value must be one of a fixed list
	KindCatchProcess             // value passed through a transform
)

// String returns the human-readable name of the kind.
func (k Kind) String() string {
	switch k {
	case KindCatchAll:
		return "catch_all"
	case KindEnumeration:
		return "enumeration"
	case KindCatchProcess:
		return "catch_process"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// Transform normalizes a captured value. Returning ok=false rejects it.
type Transform func(value string) (string, bool)

// Definition is the policy for validating and transforming a captured slot value.
// Exactly one policy is active; the zero value is a CatchAll.
type Definition struct {
	kind      Kind
	values    []string
	transform Transform
}

// Enumeration returns a definition accepting only the listed values (ASCII case-insensitive).
func Enumeration(values ...string) Definition {
	return Definition{kind: KindEnumeration, values: append([]string(nil), values...)}
}

// CatchAll returns a definition accepting any non-empty value unchanged.
func CatchAll() Definition {
	return Definition{kind: KindCatchAll}
}

// CatchProcess returns a definition that runs fn on every captured value.
// A nil fn degrades to CatchAll.
func CatchProcess(fn Transform) Definition {
	if fn == nil {
		return CatchAll()
	}
	return Definition{kind: KindCatchProcess, transform: fn}
}

// Kind reports the active policy.
func (d Definition) Kind() Kind {
	return d.kind
}

// Values returns a copy of the enumeration members; nil for other kinds.
func (d Definition) Values() []string {
	if d.kind != KindEnumeration {
		return nil
	}
	return append([]string(nil), d.values...)
}

// Apply validates value against the policy and returns the value to store.
// Enumerations return the declared member, not the captured spelling.
func (d Definition) Apply(value string) (string, bool) {
	switch d.kind {
	case KindEnumeration:
		for _, v := range d.values {
			if equalFoldASCII(v, value) {
				return v, true
			}
		}
		return "", false
	case KindCatchProcess:
		out, ok := d.transform(value)
		if !ok || out == "" {
			return "", false
		}
		return out, true
	default:
		if value == "" {
			return "", false
		}
		return value, true
	}
}

// equalFoldASCII compares a and b folding only A-Z; other bytes must be equal.
func equalFoldASCII(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		if lowerASCII(a[i]) != lowerASCII(b[i]) {
			return false
		}
	}
	return true
}

func lowerASCII(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

// RegexBody returns the regular expression a placeholder bound to d compiles to.
// Enumerations become an alternation of their quoted members so only listed
// values can match; the other kinds defer validation to Apply.
func (d Definition) RegexBody() string {
	if d.kind != KindEnumeration || len(d.values) == 0 {
		return ".+?"
	}
	quoted := make([]string, len(d.values))
	for i, v := range d.values {
		quoted[i] = regexp.QuoteMeta(v)
	}
	return strings.Join(quoted, "|")
}

// String renders the definition for diagnostics.
func (d Definition) String() string {
	if d.kind == KindEnumeration {
		return fmt.Sprintf("enumeration%q", d.values)
	}
	return d.kind.String()
}
