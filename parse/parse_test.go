package parse

import (
	"errors"
	"strings"
	"testing"

	"github.com/signadot/rjson/encode"
	"github.com/signadot/rjson/ir"
	"github.com/signadot/rjson/token"
)

func TestParseInt(t *testing.T) {
	node, err := Parse([]byte("123"))
	if err != nil {
		t.Fatal(err)
	}
	if node.Kind() != ir.IntType {
		t.Fatalf("expected Int, got %s", node.Kind())
	}
	i, err := node.Int()
	if err != nil {
		t.Fatal(err)
	}
	if i != 123 {
		t.Errorf("got %d", i)
	}
}

func TestParseFloat(t *testing.T) {
	for in, want := range map[string]float64{
		"123.234":   123.234,
		"1.001e+06": 1001000,
		"1001000.":  1001000,
		"1.5e-7":    1.5e-7,
		"-0.1":      -0.1,
	} {
		node, err := Parse([]byte(in))
		if err != nil {
			t.Fatalf("%q: %v", in, err)
		}
		f, err := node.Float()
		if err != nil {
			t.Fatalf("%q: %v", in, err)
		}
		if f != want {
			t.Errorf("%q: got %g want %g", in, f, want)
		}
	}
}

func TestParseFloatIdempotent(t *testing.T) {
	node, err := Parse([]byte("1001000."))
	if err != nil {
		t.Fatal(err)
	}
	text := encode.Text(node)
	if text != "1.001e+06" {
		t.Fatalf("got %q", text)
	}
	again, err := Parse([]byte(text))
	if err != nil {
		t.Fatal(err)
	}
	if got := encode.Text(again); got != text {
		t.Errorf("not idempotent: %s / %s", text, got)
	}
}

func TestParseString(t *testing.T) {
	node, err := Parse([]byte(`"bruhmoment"`))
	if err != nil {
		t.Fatal(err)
	}
	s, err := node.Str()
	if err != nil {
		t.Fatal(err)
	}
	if s != "bruhmoment" {
		t.Errorf("got %q", s)
	}
}

func TestParseObject(t *testing.T) {
	node, err := Parse([]byte(`{
		"starburst":true,
		"stream":12345
	}`))
	if err != nil {
		t.Fatal(err)
	}
	if !node.IsObject() {
		t.Fatalf("expected object, got %s", node.Kind())
	}
	obj, err := node.AsObject()
	if err != nil {
		t.Fatal(err)
	}
	b, err := obj.MustGet("starburst").Bool()
	if err != nil || !b {
		t.Errorf("starburst: %t %v", b, err)
	}
	i, err := obj.MustGet("stream").Int()
	if err != nil || i != 12345 {
		t.Errorf("stream: %d %v", i, err)
	}
	_, err = obj.Get("missing_key")
	if !errors.Is(err, ir.ErrKeyNotFound) {
		t.Fatalf("expected ErrKeyNotFound, got %v", err)
	}
	if !strings.Contains(err.Error(), `"missing_key"`) {
		t.Errorf("error should name the key: %v", err)
	}
}

func TestParseArray(t *testing.T) {
	node, err := Parse([]byte(`[123,"bruh",true,null]`))
	if err != nil {
		t.Fatal(err)
	}
	arr, err := node.AsArray()
	if err != nil {
		t.Fatal(err)
	}
	if arr.Len() != 4 {
		t.Fatalf("expected 4 elements, got %d", arr.Len())
	}
	if i, _ := arr.MustIndex(0).Int(); i != 123 {
		t.Errorf("elt 0: %d", i)
	}
	if s, _ := arr.MustIndex(1).Str(); s != "bruh" {
		t.Errorf("elt 1: %q", s)
	}
	if b, _ := arr.MustIndex(2).Bool(); !b {
		t.Errorf("elt 2: %t", b)
	}
	if !arr.MustIndex(3).IsNull() {
		t.Errorf("elt 3 should be null, got %s", arr.MustIndex(3).Kind())
	}
	if _, err := arr.Index(4); !errors.Is(err, ir.ErrIndexOutOfRange) {
		t.Errorf("expected ErrIndexOutOfRange, got %v", err)
	}
}

func TestParseArrayCompound(t *testing.T) {
	node, err := Parse([]byte(`[{"hi":123},{"hi":456},{"hi":789,"kirito":false}]`))
	if err != nil {
		t.Fatal(err)
	}
	for i, want := range []int32{123, 456, 789} {
		got, err := node.MustIndex(i).MustGet("hi").Int()
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Errorf("%d: got %d want %d", i, got, want)
		}
	}
	b, err := node.MustIndex(2).MustGet("kirito").Bool()
	if err != nil || b {
		t.Errorf("kirito: %t %v", b, err)
	}
}

func TestParseNestedArray(t *testing.T) {
	node, err := Parse([]byte("[[0,1,2],[3,4,5],[6,7,8]]"))
	if err != nil {
		t.Fatal(err)
	}
	c := int32(0)
	for i := range node.Len() {
		row, err := node.MustIndex(i).AsArray()
		if err != nil {
			t.Fatal(err)
		}
		for j := range row.Len() {
			v, err := row.MustIndex(j).Int()
			if err != nil {
				t.Fatal(err)
			}
			if v != c {
				t.Errorf("[%d][%d]: got %d want %d", i, j, v, c)
			}
			c++
		}
	}
}

func TestParseLastKeyWins(t *testing.T) {
	node, err := Parse([]byte(`{"a":1,"a":2}`))
	if err != nil {
		t.Fatal(err)
	}
	if node.Len() != 1 {
		t.Fatalf("expected one key, got %d", node.Len())
	}
	if i, _ := node.MustGet("a").Int(); i != 2 {
		t.Errorf("got %d", i)
	}
}

func TestParseNumbers(t *testing.T) {
	tests := []struct {
		in   string
		typ  ir.Type
		text string
	}{
		{"-7", ir.IntType, "-7"},
		{"2e3", ir.IntType, "2000"},
		{"2E+3", ir.IntType, "2000"},
		{"2e-3", ir.FloatType, "0.002"},
		{"1.0", ir.FloatType, "1.0"},
		{"2147483647", ir.IntType, "2147483647"},
	}
	for _, tt := range tests {
		node, err := Parse([]byte(tt.in))
		if err != nil {
			t.Fatalf("%q: %v", tt.in, err)
		}
		if node.Kind() != tt.typ {
			t.Errorf("%q: got %s want %s", tt.in, node.Kind(), tt.typ)
		}
		if got := encode.Text(node); got != tt.text {
			t.Errorf("%q: got %s want %s", tt.in, got, tt.text)
		}
	}
}

type parseErrTest struct {
	in  string
	err error
	msg string
}

func TestParseErrors(t *testing.T) {
	tests := []parseErrTest{
		{in: "-", err: token.ErrMissingNumber, msg: "missing number after minus sign at position 1"},
		{in: "", err: ErrUnexpectedEnd, msg: "unexpected end of JSON at position 0"},
		{in: "[1,2", err: ErrUnexpectedEnd},
		{in: `{"a":1`, err: ErrUnexpectedEnd},
		{in: "1 2", err: ErrUnexpectedToken, msg: "unexpected token 2 at position 3"},
		{in: "[1 2]", err: ErrUnexpectedToken, msg: "unexpected token 2 at position 4"},
		{in: "{1:2}", err: ErrUnexpectedToken, msg: "unexpected token 1 at position 2"},
		{in: `{"a" 1}`, err: ErrUnexpectedToken},
		{in: "]", err: ErrUnexpectedToken},
		{in: "[1,}", err: ErrUnexpectedToken},
		{in: "2147483648", err: ErrInvalidNumber},
		{in: "1e100", err: ErrInvalidNumber},
		{in: "nope", err: token.ErrUnexpectedWord},
	}
	for _, tt := range tests {
		node, err := Parse([]byte(tt.in))
		if err == nil {
			t.Fatalf("%q: expected error, got %s", tt.in, encode.Text(node))
		}
		if node != nil {
			t.Errorf("%q: partial tree returned", tt.in)
		}
		if !errors.Is(err, ErrParse) {
			t.Errorf("%q: %v does not match ErrParse", tt.in, err)
		}
		if !errors.Is(err, tt.err) {
			t.Errorf("%q: got %v want %v", tt.in, err, tt.err)
		}
		if tt.msg != "" && err.Error() != tt.msg {
			t.Errorf("%q: got message %q want %q", tt.in, err.Error(), tt.msg)
		}
		var pErr *ParseErr
		if !errors.As(err, &pErr) {
			t.Fatalf("%q: expected *ParseErr, got %T", tt.in, err)
		}
		if pErr.Position() == nil {
			t.Errorf("%q: no position", tt.in)
		}
	}
}

func TestParseFirstErrorWins(t *testing.T) {
	_, err := Parse([]byte("[1 2 3"))
	if err == nil {
		t.Fatal("expected error")
	}
	if err.Error() != "unexpected token 2 at position 4" {
		t.Errorf("got %q", err.Error())
	}
}

func TestParseMaxDepth(t *testing.T) {
	deep := strings.Repeat("[", 10) + strings.Repeat("]", 10)
	if _, err := Parse([]byte(deep), MaxDepth(10)); err != nil {
		t.Fatalf("depth 10 should parse: %v", err)
	}
	_, err := Parse([]byte(deep), MaxDepth(9))
	if !errors.Is(err, ErrTooDeeplyNested) {
		t.Fatalf("expected ErrTooDeeplyNested, got %v", err)
	}
	huge := strings.Repeat(`{"a":`, DefaultMaxDepth+1) + "1" + strings.Repeat("}", DefaultMaxDepth+1)
	if _, err := Parse([]byte(huge)); !errors.Is(err, ErrTooDeeplyNested) {
		t.Fatalf("expected ErrTooDeeplyNested, got %v", err)
	}
}

func TestParsePositions(t *testing.T) {
	positions := map[*ir.Node]*token.Pos{}
	node, err := Parse([]byte("{\n  \"a\": [1, true]\n}"), ParsePositions(positions))
	if err != nil {
		t.Fatal(err)
	}
	if got := positions[node].I; got != 1 {
		t.Errorf("root at %d", got)
	}
	arr := node.MustGet("a")
	if line, col := positions[arr].LineCol(); line != 1 || col != 8 {
		t.Errorf("array at line %d col %d", line, col)
	}
	if got := positions[arr.MustIndex(1)].I; got != 17 {
		t.Errorf("bool at %d", got)
	}
	if len(GetPositions(ParsePositions(positions))) != len(positions) {
		t.Error("GetPositions should return the positions map")
	}
}
