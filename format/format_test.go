package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{
		"j":    JSONFormat,
		"json": JSONFormat,
		"y":    YAMLFormat,
		"yaml": YAMLFormat,
		"JSON": JSONFormat,
		"Y":    YAMLFormat,
	} {
		got, err := ParseFormat(in)
		if err != nil {
			t.Fatalf("%q: %v", in, err)
		}
		if got != want {
			t.Errorf("%q: got %s want %s", in, got, want)
		}
	}
	for _, in := range []string{"toml", "", "js"} {
		if _, err := ParseFormat(in); !errors.Is(err, ErrBadFormat) {
			t.Errorf("%q: expected ErrBadFormat, got %v", in, err)
		}
	}
}

func TestFormatText(t *testing.T) {
	var f Format
	if err := f.UnmarshalText([]byte("yaml")); err != nil {
		t.Fatal(err)
	}
	if f.String() != "yaml" || f.Suffix() != ".yaml" {
		t.Errorf("got %s %s", f, f.Suffix())
	}
}

func TestUnknownFormat(t *testing.T) {
	f := Format(7)
	if _, err := f.MarshalText(); !errors.Is(err, ErrBadFormat) {
		t.Errorf("got %v", err)
	}
	if f.Suffix() != "" || f.String() != "Format(7)" {
		t.Errorf("got %q %q", f.Suffix(), f)
	}
}
