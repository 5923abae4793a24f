package ir

import (
	"strings"

	"github.com/valyala/fastjson"
)

// String nodes hold the text between the quotes of a JSON string as
// written, escapes included.  FromGoString and Unquote convert between this
// form and Go strings.

// FromGoString returns a string node for s, escaping it as needed.
func FromGoString(s string) *Node {
	return FromString(Escape(s))
}

// Unquote returns the Go string denoted by a string node.
func (y *Node) Unquote() (string, error) {
	raw, err := y.Str()
	if err != nil {
		return "", err
	}
	return Unescape(raw)
}

// Escape returns s with quotes, backslashes and control characters
// escaped.
func Escape(s string) string {
	if !strings.ContainsFunc(s, needsEscape) {
		return s
	}
	const hex = "0123456789abcdef"
	buf := &strings.Builder{}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '"', '\\':
			buf.WriteByte('\\')
			buf.WriteByte(c)
		case '\n':
			buf.WriteString(`\n`)
		case '\r':
			buf.WriteString(`\r`)
		case '\t':
			buf.WriteString(`\t`)
		case '\b':
			buf.WriteString(`\b`)
		case '\f':
			buf.WriteString(`\f`)
		default:
			if c < 0x20 {
				buf.WriteString(`\u00`)
				buf.WriteByte(hex[c>>4])
				buf.WriteByte(hex[c&0xf])
				continue
			}
			buf.WriteByte(c)
		}
	}
	return buf.String()
}

func needsEscape(r rune) bool {
	return r < 0x20 || r == '"' || r == '\\'
}

// Unescape decodes the escapes of raw string text.
func Unescape(raw string) (string, error) {
	if !strings.ContainsRune(raw, '\\') {
		return raw, nil
	}
	v, err := fastjson.Parse(`"` + raw + `"`)
	if err != nil {
		return "", err
	}
	b, err := v.StringBytes()
	if err != nil {
		return "", err
	}
	return string(b), nil
}
