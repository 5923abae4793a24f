package eval

import (
	"errors"
	"testing"

	"github.com/signadot/rjson/encode"
	"github.com/signadot/rjson/ir"
	"github.com/signadot/rjson/parse"
)

const guild = `{
  "admin": "Kayaba Akihiko",
  "player": [{"id": 0, "name": "Kirito"}, {"id": 1, "name": "Asuna"}, {"id": 2, "name": "Klein"}]
}`

func mustParse(t *testing.T, s string) *ir.Node {
	t.Helper()
	node, err := parse.Parse([]byte(s))
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return node
}

func TestEval(t *testing.T) {
	doc := mustParse(t, guild)
	tests := []struct {
		src  string
		want string
	}{
		{`doc.admin`, `"Kayaba Akihiko"`},
		{`len(doc.player)`, `3`},
		{`doc.player[1].name`, `"Asuna"`},
		{`map(filter(doc.player, .id > 0), .name)`, `["Asuna","Klein"]`},
		{`getpath("$.player[2].id") * 10`, `20`},
		{`len(listpath("$..name"))`, `3`},
		{`has("$.admin") && !has("$.owner")`, `true`},
		{`text(doc.player[0])`, `"{\"id\":0,\"name\":\"Kirito\"}"`},
		{`1 / 2`, `0.5`},
		{`nil`, `null`},
		{`{"n": prefix + doc.admin}`, "{\n  \"n\": \"Sir Kayaba Akihiko\"\n}"},
	}
	env := Env{"prefix": "Sir "}
	for _, tt := range tests {
		got, err := Eval(doc, tt.src, env)
		if err != nil {
			t.Fatalf("%s: %v", tt.src, err)
		}
		if s := encode.Text(got); s != tt.want {
			t.Errorf("%s: got %s want %s", tt.src, s, tt.want)
		}
	}
}

func TestEvalErrors(t *testing.T) {
	doc := mustParse(t, guild)
	for _, src := range []string{
		`doc.player[`,
		`getpath("$.nope")`,
		`getpath("no dollar")`,
		`4294967296 * 2`,
	} {
		if _, err := Eval(doc, src, nil); !errors.Is(err, ErrEval) {
			t.Errorf("%s: got %v", src, err)
		}
	}
}

func TestSelect(t *testing.T) {
	doc := mustParse(t, guild)
	nodes, err := Select(doc, "$.player[*]", `it.id >= lo && it.name != doc.admin`, Env{"lo": 1})
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, n := range nodes {
		s, _ := n.MustGet("name").Str()
		names = append(names, s)
	}
	if len(names) != 2 || names[0] != "Asuna" || names[1] != "Klein" {
		t.Errorf("got %v", names)
	}
	if nodes[0] != doc.MustGet("player").MustIndex(1) {
		t.Error("selected nodes should be owned by doc")
	}
	if _, err := Select(doc, "$.player[*]", `it.`, nil); !errors.Is(err, ErrEval) {
		t.Errorf("got %v", err)
	}
}
