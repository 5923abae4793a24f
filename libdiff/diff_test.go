package libdiff

import (
	"strings"
	"testing"

	"github.com/signadot/rjson/encode"
	"github.com/signadot/rjson/ir"
	"github.com/signadot/rjson/parse"

	"github.com/google/go-cmp/cmp"
)

func mustParse(t *testing.T, s string) *ir.Node {
	t.Helper()
	node, err := parse.Parse([]byte(s))
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return node
}

type changeSummary struct {
	Op      string
	Path    string
	Pointer string
	From    string
	To      string
}

func summarize(changes []Change) []changeSummary {
	var res []changeSummary
	for _, c := range changes {
		s := changeSummary{Op: c.Op.String(), Path: c.Path, Pointer: c.Pointer}
		if c.From != nil {
			s.From = encode.MustString(c.From, encode.EncodeWire(true))
		}
		if c.To != nil {
			s.To = encode.MustString(c.To, encode.EncodeWire(true))
		}
		res = append(res, s)
	}
	return res
}

func TestDiff(t *testing.T) {
	tests := []struct {
		name     string
		from, to string
		want     []changeSummary
	}{
		{
			name: "equal",
			from: `{"a":[1,{"b":null}]}`,
			to:   `{"a":[1,{"b":null}]}`,
		},
		{
			name: "scalar",
			from: "1",
			to:   "2",
			want: []changeSummary{{"replace", "$", "", "1", "2"}},
		},
		{
			name: "kind",
			from: "1",
			to:   "1.0",
			want: []changeSummary{{"replace", "$", "", "1", "1.0"}},
		},
		{
			name: "members",
			from: `{"a":1,"b":2,"x/y":3}`,
			to:   `{"b":3,"c":true,"x/y":3}`,
			want: []changeSummary{
				{"delete", "$.a", "/a", "1", ""},
				{"replace", "$.b", "/b", "2", "3"},
				{"insert", "$.c", "/c", "", "true"},
			},
		},
		{
			name: "escaped key",
			from: `{"x/y":1}`,
			to:   `{"x/y":2}`,
			want: []changeSummary{{"replace", "$.x/y", "/x~1y", "1", "2"}},
		},
		{
			name: "array shrink",
			from: "[1,2,3,4]",
			to:   "[1,5]",
			want: []changeSummary{
				{"replace", "$[1]", "/1", "2", "5"},
				{"delete", "$[3]", "/3", "4", ""},
				{"delete", "$[2]", "/2", "3", ""},
			},
		},
		{
			name: "array grow",
			from: `{"a":[]}`,
			to:   `{"a":["x","y"]}`,
			want: []changeSummary{
				{"insert", "$.a[0]", "/a/0", "", `"x"`},
				{"insert", "$.a[1]", "/a/1", "", `"y"`},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := summarize(Diff(mustParse(t, tt.from), mustParse(t, tt.to)))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestDiffStringEdits(t *testing.T) {
	changes := Diff(mustParse(t, `"kirito"`), mustParse(t, `"kirigaya"`))
	if len(changes) != 1 {
		t.Fatalf("got %d changes", len(changes))
	}
	if changes[0].Edits == nil {
		t.Fatal("no edits")
	}
	got := EditString(changes[0].Edits)
	if !strings.HasPrefix(got, "kiri") {
		t.Errorf("common prefix lost: %s", got)
	}
	rev := Reverse(changes)
	if s, _ := rev[0].To.Str(); s != "kirito" {
		t.Errorf("reverse to: %q", s)
	}
	if !strings.Contains(EditString(rev[0].Edits), "{+") {
		t.Errorf("reverse edits: %s", EditString(rev[0].Edits))
	}
}

func TestReverse(t *testing.T) {
	changes := Diff(mustParse(t, `{"a":1,"b":[1]}`), mustParse(t, `{"b":[],"c":2}`))
	rev := Reverse(changes)
	want := []changeSummary{
		{"delete", "$.c", "/c", "2", ""},
		{"insert", "$.b[0]", "/b/0", "", "1"},
		{"insert", "$.a", "/a", "", "1"},
	}
	if diff := cmp.Diff(want, summarize(rev)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestChangeSerialize(t *testing.T) {
	c := &Change{Op: ReplaceOp, Path: "$.a", From: ir.FromInt(1), To: ir.FromInt(2)}
	got := encode.MustString(c.Serialize(), encode.EncodeWire(true))
	want := `{"from":1,"op":"replace","path":"$.a","to":2}`
	if got != want {
		t.Errorf("got %s want %s", got, want)
	}
}

func TestToPatch(t *testing.T) {
	changes := Diff(mustParse(t, `{"a":[1,2],"b":1}`), mustParse(t, `{"a":[1],"c":"x"}`))
	got := encode.MustString(ToPatch(changes), encode.EncodeWire(true))
	want := `[{"op":"remove","path":"/a/1"},{"op":"remove","path":"/b"},{"op":"add","path":"/c","value":"x"}]`
	if got != want {
		t.Errorf("got %s\nwant %s", got, want)
	}
}

func TestTextDiff(t *testing.T) {
	a := mustParse(t, `{"a":1,"b":2}`)
	b := mustParse(t, `{"a":1,"b":3}`)
	if got := TextDiff(a, a.Clone(), false); got != "" {
		t.Errorf("equal trees: %q", got)
	}
	want := " {\n   \"a\": 1,\n-  \"b\": 2\n+  \"b\": 3\n }\n"
	if got := TextDiff(a, b, false); got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
}
