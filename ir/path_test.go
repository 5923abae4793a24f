package ir

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParsePathString(t *testing.T) {
	for _, p := range []string{
		"$",
		"$.a",
		"$.a[0].b",
		"$.a[*]",
		"$..b",
		"$..[1]",
		"$..[1].c",
		"$..a..b",
		"$..[*].x",
		"$.'a.b'",
		"$.'it\\'s'",
	} {
		yp, err := ParsePath(p)
		if err != nil {
			t.Errorf("%q: %v", p, err)
			continue
		}
		if got := yp.String(); got != p {
			t.Errorf("got %q want %q", got, p)
		}
	}
}

func TestParsePathErrors(t *testing.T) {
	for _, p := range []string{"", "a", "$a", "$[x]", "$[1", "$.", "$.'a", "$.."} {
		if _, err := ParsePath(p); err == nil {
			t.Errorf("%q: expected error", p)
		}
	}
}

func TestFieldIndexPath(t *testing.T) {
	p := IndexPath(FieldPath(FieldPath("$", "a"), "b.c"), 2)
	if p != "$.a.'b.c'[2]" {
		t.Fatalf("got %s", p)
	}
	if _, err := ParsePath(p); err != nil {
		t.Error(err)
	}
}

func pathDoc() *Node {
	inner := NewObject()
	inner.Put("b", Int32(2))
	arr := NewArray()
	arr.PushNode(inner)
	arr.Push(Int32(5))
	root := NewObject()
	root.PutNode("a", arr)
	root.Put("b", String("top"))
	return root
}

func TestGetPath(t *testing.T) {
	doc := pathDoc()
	n, err := doc.GetPath("$.a[0].b")
	if err != nil {
		t.Fatal(err)
	}
	if i, _ := n.Int(); i != 2 {
		t.Errorf("got %d", i)
	}
	if n, _ := doc.GetPath("$"); n != doc {
		t.Error("$ should select the root")
	}
	if _, err := doc.GetPath("$.a[7]"); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("got %v", err)
	}
	if _, err := doc.GetPath("$.nope"); !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("got %v", err)
	}
	if _, err := doc.GetPath("$.b.c"); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("got %v", err)
	}
	if _, err := doc.GetPath("$.a[*]"); err == nil {
		t.Error("wildcard in get should fail")
	}
}

func TestListPath(t *testing.T) {
	doc := pathDoc()
	tests := []struct {
		path string
		want []any
	}{
		{"$.a[*]", []any{map[string]any{"b": 2}, 5}},
		{"$..b", []any{"top", 2}},
		{"$.a[1]", []any{5}},
		{"$.zz", nil},
	}
	for _, tt := range tests {
		nodes, err := doc.ListPath(nil, tt.path)
		if err != nil {
			t.Fatalf("%s: %v", tt.path, err)
		}
		var got []any
		for _, n := range nodes {
			got = append(got, ToAny(n))
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("%s (-want +got):\n%s", tt.path, diff)
		}
	}
}
