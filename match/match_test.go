package match

import (
	"testing"

	"github.com/signadot/rjson/encode"
	"github.com/signadot/rjson/parse"
)

type matchTest struct {
	in    string
	match string
	res   bool
}

var matchTests = []matchTest{
	{in: `1`, match: `1`, res: true},
	{in: `0`, match: `1`, res: false},
	{in: `1`, match: `1.0`, res: false},
	{in: `[1]`, match: `[1]`, res: true},
	{in: `[]`, match: `[]`, res: true},
	{in: `[1]`, match: `[2]`, res: false},
	{in: `[1]`, match: `[1,2]`, res: false},
	{in: `[1]`, match: `"hello"`, res: false},
	{in: `{"a":"b","c":"d"}`, match: `{"a":"b"}`, res: true},
	{in: `{"a":"b"}`, match: `{"a":"b","c":"d"}`, res: false},
	{in: `{"a":"b"}`, match: `null`, res: true},
	{in: `{"a":"b"}`, match: `{"a":null}`, res: true},
	{in: `{"a":"b"}`, match: `{}`, res: true},
	{in: `{"a":[{"x":1,"y":2}]}`, match: `{"a":[{"x":1}]}`, res: true},
	{in: `{"a":[{"x":1,"y":2}]}`, match: `{"a":[{"x":2}]}`, res: false},
	{in: `{"a":"b\"c"}`, match: `{"a":"b\"c"}`, res: true},
}

func TestMatch(t *testing.T) {
	for i := range matchTests {
		mt := &matchTests[i]
		doc, err := parse.Parse([]byte(mt.in))
		if err != nil {
			t.Fatalf("could not decode %q: %v", mt.in, err)
		}
		m, err := parse.Parse([]byte(mt.match))
		if err != nil {
			t.Fatalf("could not decode %q: %v", mt.match, err)
		}
		if res := Match(doc, m); res != mt.res {
			t.Errorf("match %q on %q: got %t want %t", mt.match, mt.in, res, mt.res)
		}
	}
}

type trimTest struct {
	doc    string
	match  string
	result string
}

var trimTests = []trimTest{
	{
		doc:    `{"a":"b","c":"d","e":"f"}`,
		match:  `{"a":"b","c":"d"}`,
		result: `{"a":"b","c":"d"}`,
	},
	{
		doc:    `{"a":"b","c":"d"}`,
		match:  `{"c":null}`,
		result: `{"c":"d"}`,
	},
	{
		doc:    `{"a":{"x":1,"y":2},"b":3}`,
		match:  `{"a":{"y":null},"z":1}`,
		result: `{"a":{"y":2}}`,
	},
	{
		doc:    `[{"id":1,"n":"a"},{"id":2,"n":"b"},{"id":3,"n":"c"}]`,
		match:  `[{"id":3},{"id":1}]`,
		result: `[{"id":3},{"id":1}]`,
	},
	{
		doc:    `[1,2]`,
		match:  `[5]`,
		result: `[]`,
	},
	{
		doc:    `"x"`,
		match:  `{"a":1}`,
		result: `"x"`,
	},
}

func TestTrim(t *testing.T) {
	for _, tt := range trimTests {
		doc, err := parse.Parse([]byte(tt.doc))
		if err != nil {
			t.Fatal(err)
		}
		m, err := parse.Parse([]byte(tt.match))
		if err != nil {
			t.Fatal(err)
		}
		before := encode.Text(doc)
		got := encode.MustString(Trim(m, doc), encode.EncodeWire(true))
		if got != tt.result {
			t.Errorf("trim %s by %s: got %s want %s", tt.doc, tt.match, got, tt.result)
		}
		if encode.Text(doc) != before {
			t.Errorf("trim modified its input")
		}
	}
}
