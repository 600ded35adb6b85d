// ABOUTME: Tokenizer for the literal pattern placeholder syntax
// ABOUTME: Splits "{name}" and "{default/name}" references out of literal text

package pattern

import "strings"

// DefaultPrefix is the reserved capture-group prefix marking default-table slots.
const DefaultPrefix = "default_"

// defaultNamespace introduces a default-table reference inside a placeholder.
const defaultNamespace = "default/"

type tokenKind int

const (
	tokenText         tokenKind = iota // literal text, matched verbatim
	tokenPlaceholder                   // {...} reference
	tokenUnterminated                  // "{" with no closing brace; rest of the pattern
)

type token struct {
	kind   tokenKind
	text   string // literal text, or the placeholder body without braces
	offset int    // byte offset in the source pattern
}

// Placeholder is one slot reference found in a literal pattern.
type Placeholder struct {
	Body    string // text between the braces, e.g. "default/locations"
	Name    string // slot name without the namespace, e.g. "locations"
	Group   string // capture group name, e.g. "default_locations"
	Default bool   // resolved against the default table
	Offset  int    // byte offset of the opening brace
}

// scan splits a literal pattern into text and placeholder tokens.
// A "{" is closed by the next "}" regardless of nesting.
func scan(literal string) []token {
	var tokens []token
	pos := 0
	for pos < len(literal) {
		open := strings.IndexByte(literal[pos:], '{')
		if open < 0 {
			tokens = append(tokens, token{kind: tokenText, text: literal[pos:], offset: pos})
			break
		}
		if open > 0 {
			tokens = append(tokens, token{kind: tokenText, text: literal[pos : pos+open], offset: pos})
		}
		start := pos + open
		end := strings.IndexByte(literal[start+1:], '}')
		if end < 0 {
			tokens = append(tokens, token{kind: tokenUnterminated, text: literal[start:], offset: start})
			break
		}
		body := literal[start+1 : start+1+end]
		tokens = append(tokens, token{kind: tokenPlaceholder, text: body, offset: start})
		pos = start + end + 2
	}
	return tokens
}

// Placeholders lists the slot references in a literal pattern, in order.
// Unterminated braces are not reported.
func Placeholders(literal string) []Placeholder {
	var out []Placeholder
	for _, tok := range scan(literal) {
		if tok.kind == tokenPlaceholder {
			out = append(out, newPlaceholder(tok))
		}
	}
	return out
}

func newPlaceholder(tok token) Placeholder {
	p := Placeholder{Body: tok.text, Name: tok.text, Group: tok.text, Offset: tok.offset}
	if name, ok := strings.CutPrefix(tok.text, defaultNamespace); ok {
		p.Name = name
		p.Group = DefaultPrefix + name
		p.Default = true
	}
	return p
}

// Render substitutes values (keyed by capture group name) into a literal
// pattern. Placeholders without a value are left as written.
func Render(literal string, values map[string]string) string {
	var b strings.Builder
	b.Grow(len(literal))
	for _, tok := range scan(literal) {
		if tok.kind != tokenPlaceholder {
			b.WriteString(tok.text)
			continue
		}
		p := newPlaceholder(tok)
		if v, ok := values[p.Group]; ok {
			b.WriteString(v)
		} else {
			b.WriteString("{" + tok.text + "}")
		}
	}
	return b.String()
}
