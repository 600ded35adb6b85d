// ABOUTME: easyjson codecs for Declaration and ExtractedSlots
// ABOUTME: Zero-reflection decoding of intent files and encoding of match results

package intent

import (
	"slices"

	"github.com/mailru/easyjson/jlexer"
	"github.com/mailru/easyjson/jwriter"
)

// UnmarshalEasyJSON decodes a declaration. Unknown fields are skipped.
func (d *Declaration) UnmarshalEasyJSON(in *jlexer.Lexer) {
	isTopLevel := in.IsStart()
	if in.IsNull() {
		if isTopLevel {
			in.Consumed()
		}
		in.Skip()
		return
	}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		if in.IsNull() {
			in.Skip()
			in.WantComma()
			continue
		}
		switch key {
		case "intent":
			d.Intent = in.String()
		case "patterns":
			d.Patterns = decodeStrings(in)
		case "regex_patterns":
			d.RegexPatterns = decodeStrings(in)
		case "slots":
			d.Slots = make(map[string]any)
			in.Delim('{')
			for !in.IsDelim('}') {
				name := in.String()
				in.WantColon()
				d.Slots[name] = in.Interface()
				in.WantComma()
			}
			in.Delim('}')
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
	if isTopLevel {
		in.Consumed()
	}
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Declaration) UnmarshalJSON(data []byte) error {
	r := jlexer.Lexer{Data: data}
	d.UnmarshalEasyJSON(&r)
	return r.Error()
}

func decodeStrings(in *jlexer.Lexer) []string {
	out := []string{}
	in.Delim('[')
	for !in.IsDelim(']') {
		out = append(out, in.String())
		in.WantComma()
	}
	in.Delim(']')
	return out
}

// MarshalEasyJSON encodes a match as {"intent":...,"slots":{...}} with sorted slot keys.
func (m ExtractedSlots) MarshalEasyJSON(out *jwriter.Writer) {
	out.RawString(`{"intent":`)
	out.String(m.Intent)
	out.RawString(`,"slots":{`)
	keys := make([]string, 0, len(m.Slots))
	for k := range m.Slots {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for i, k := range keys {
		if i > 0 {
			out.RawByte(',')
		}
		out.String(k)
		out.RawByte(':')
		out.String(m.Slots[k])
	}
	out.RawString("}}")
}

// MarshalJSON implements json.Marshaler.
func (m ExtractedSlots) MarshalJSON() ([]byte, error) {
	w := jwriter.Writer{}
	m.MarshalEasyJSON(&w)
	return w.Buffer.BuildBytes(), w.Error
}

// UnmarshalEasyJSON decodes a match produced by MarshalEasyJSON.
func (m *ExtractedSlots) UnmarshalEasyJSON(in *jlexer.Lexer) {
	isTopLevel := in.IsStart()
	if in.IsNull() {
		if isTopLevel {
			in.Consumed()
		}
		in.Skip()
		return
	}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		if in.IsNull() {
			in.Skip()
			in.WantComma()
			continue
		}
		switch key {
		case "intent":
			m.Intent = in.String()
		case "slots":
			m.Slots = make(map[string]string)
			in.Delim('{')
			for !in.IsDelim('}') {
				name := in.String()
				in.WantColon()
				m.Slots[name] = in.String()
				in.WantComma()
			}
			in.Delim('}')
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
	if isTopLevel {
		in.Consumed()
	}
}

// UnmarshalJSON implements json.Unmarshaler.
func (m *ExtractedSlots) UnmarshalJSON(data []byte) error {
	r := jlexer.Lexer{Data: data}
	m.UnmarshalEasyJSON(&r)
	return r.Error()
}
