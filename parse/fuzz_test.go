package parse

import (
	"testing"

	"github.com/signadot/rjson/encode"
)

func FuzzParse(f *testing.F) {
	for _, seed := range []string{
		"123",
		"-1.5e-3",
		`"a\"b"`,
		`{"a":[1,2,{"b":null}],"c":true}`,
		"[[[]]]",
		"{",
		"-",
		`{"a" 1}`,
	} {
		f.Add([]byte(seed))
	}
	f.Fuzz(func(t *testing.T, d []byte) {
		node, err := Parse(d, MaxDepth(64))
		if err != nil {
			if node != nil {
				t.Fatalf("partial tree returned with %v", err)
			}
			return
		}
		text := encode.Text(node)
		again, err := Parse([]byte(text), MaxDepth(64))
		if err != nil {
			t.Fatalf("reparse of %q: %v", text, err)
		}
		if got := encode.Text(again); got != text {
			t.Fatalf("not idempotent:\n%s\n%s", text, got)
		}
	})
}
