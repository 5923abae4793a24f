// Package format names the output formats rjson can produce.
package format

import (
	"errors"
	"fmt"
	"strings"
)

// Format selects the text form of an encoded document.
type Format int

const (
	JSONFormat Format = iota
	YAMLFormat
)

var ErrBadFormat = errors.New("bad format")

var names = [...]string{
	JSONFormat: "json",
	YAMLFormat: "yaml",
}

// ParseFormat accepts a format name or its first letter, in any case.
func ParseFormat(v string) (Format, error) {
	v = strings.ToLower(v)
	for f, name := range names {
		if v != "" && (v == name || v == name[:1]) {
			return Format(f), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) valid() bool { return f >= 0 && int(f) < len(names) }

func (f Format) String() string {
	if !f.valid() {
		return fmt.Sprintf("Format(%d)", int(f))
	}
	return names[f]
}

func (f Format) MarshalText() ([]byte, error) {
	if !f.valid() {
		return nil, fmt.Errorf("%w: %d", ErrBadFormat, int(f))
	}
	return []byte(names[f]), nil
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

func (f Format) IsYAML() bool { return f == YAMLFormat }

// Suffix is the file extension for f, dot included, or "" for an
// unknown format.
func (f Format) Suffix() string {
	if !f.valid() {
		return ""
	}
	return "." + names[f]
}
