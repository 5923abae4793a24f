package gomap

import (
	"errors"
	"math"
	"net/netip"
	"strings"
	"testing"

	"github.com/signadot/rjson/ir"

	"github.com/google/go-cmp/cmp"
)

type base struct {
	Kind string `rjson:"kind"`
}

type record struct {
	base
	Name    string            `rjson:"name"`
	ID      uint              `rjson:"id"`
	Secret  string            `rjson:"-"`
	Note    string            `rjson:"note,omitempty"`
	Tags    []string          `rjson:"tags"`
	Attrs   map[string]int    `rjson:"attrs"`
	Addr    netip.Addr        `rjson:"addr"`
	Next    *record           `rjson:"next"`
	Score   float32
	Active  bool
	private int
	Raw     ir.Serializable `rjson:"raw"`
}

func TestToIRStruct(t *testing.T) {
	r := &record{
		base:  base{Kind: "player"},
		Name:  "Kirito",
		ID:    7,
		Tags:  []string{"a", "b"},
		Attrs: map[string]int{"hp": 100},
		Addr:  netip.MustParseAddr("10.0.0.1"),
		Score: 0.5,
		Raw:   ir.List[ir.Int32]{1},
	}
	node, err := ToIR(r)
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]any{
		"kind":   "player",
		"name":   "Kirito",
		"id":     7,
		"tags":   []any{"a", "b"},
		"attrs":  map[string]any{"hp": 100},
		"addr":   "10.0.0.1",
		"next":   nil,
		"Score":  0.5,
		"Active": false,
		"raw":    []any{1},
	}
	if diff := cmp.Diff(want, ir.ToAny(node)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if node.Has("Secret") || node.Has("note") || node.Has("private") {
		t.Errorf("excluded fields present: %v", node.Keys())
	}
}

func TestToIROmitEmpty(t *testing.T) {
	node, err := ToIR(record{Note: "n"})
	if err != nil {
		t.Fatal(err)
	}
	if s, _ := node.MustGet("note").Str(); s != "n" {
		t.Errorf("got %q", s)
	}
}

func TestToIRNarrowing(t *testing.T) {
	tests := []struct {
		v  any
		ok bool
	}{
		{int64(math.MaxInt32), true},
		{int64(math.MaxInt32) + 1, false},
		{int64(math.MinInt32), true},
		{uint64(math.MaxUint32), false},
		{uint8(255), true},
		{struct{ N uint }{N: 1 << 40}, false},
	}
	for i, tt := range tests {
		_, err := ToIR(tt.v)
		if tt.ok && err != nil {
			t.Errorf("%d: %v", i, err)
		}
		if !tt.ok {
			var mErr *MarshalError
			if !errors.As(err, &mErr) {
				t.Errorf("%d: expected *MarshalError, got %v", i, err)
			}
		}
	}
}

func TestToIRErrorPath(t *testing.T) {
	v := map[string]any{"a": []any{1, make(chan int)}}
	_, err := ToIR(v)
	if !errors.Is(err, ErrUnsupported) {
		t.Fatalf("got %v", err)
	}
	if !strings.Contains(err.Error(), "$.a[1]") {
		t.Errorf("error should name the path: %v", err)
	}
	if _, err := ToIR(map[int]string{1: "x"}); !errors.Is(err, ErrUnsupported) {
		t.Errorf("got %v", err)
	}
}

func TestToIRCycle(t *testing.T) {
	r := &record{Name: "loop"}
	r.Next = r
	_, err := ToIR(r)
	if err == nil || !strings.Contains(err.Error(), "circular") {
		t.Fatalf("expected cycle error, got %v", err)
	}
	shared := &record{Name: "s"}
	ok := []*record{shared, shared}
	if _, err := ToIR(ok); err != nil {
		t.Errorf("shared pointers are not cycles: %v", err)
	}
}

func TestToIRNil(t *testing.T) {
	for _, v := range []any{nil, (*record)(nil), []int(nil), map[string]int(nil)} {
		node, err := ToIR(v)
		if err != nil {
			t.Fatal(err)
		}
		if !node.IsNull() {
			t.Errorf("%T: got %s", v, node.Kind())
		}
	}
}

func TestSerializable(t *testing.T) {
	obj := ir.NewObject()
	obj.Put("p", Serializable(struct {
		A int `rjson:"a"`
	}{A: 3}))
	if i, _ := obj.MustGet("p").MustGet("a").Int(); i != 3 {
		t.Errorf("got %d", i)
	}
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	obj.Put("bad", Serializable(func() {}))
}

func TestToIREscapes(t *testing.T) {
	node, err := ToIR(map[string]string{"q": "say \"hi\"\n"})
	if err != nil {
		t.Fatal(err)
	}
	raw, _ := node.MustGet("q").Str()
	if raw != `say \"hi\"\n` {
		t.Errorf("got %q", raw)
	}
}
