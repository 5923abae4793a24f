package ir

import (
	"cmp"
	"strings"
)

// Compare returns an integer comparing two nodes.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
//
// Nodes of different kinds are ordered by kind: Null < Bool < Int < Float
// < String < Array < Object.  Objects compare their members in key order.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	if a.Kind() != b.Kind() {
		return cmp.Compare(a.Kind(), b.Kind())
	}
	switch a.Kind() {
	case IntType:
		return cmp.Compare(a.value.Int, b.value.Int)
	case FloatType:
		return cmp.Compare(a.value.Float, b.value.Float)
	case StringType:
		return strings.Compare(a.value.String, b.value.String)
	case BoolType:
		if a.value.Bool == b.value.Bool {
			return 0
		}
		if !a.value.Bool {
			return -1
		}
		return 1
	case ArrayType:
		return compareArrays(a, b)
	case ObjectType:
		return compareObjects(a, b)
	}
	return 0
}

// Equal reports whether a and b are structurally equal.
func Equal(a, b *Node) bool {
	return Compare(a, b) == 0
}

func compareArrays(a, b *Node) int {
	lenA := len(a.values)
	lenB := len(b.values)
	for i := range min(lenA, lenB) {
		if c := Compare(a.values[i], b.values[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(lenA, lenB)
}

func compareObjects(a, b *Node) int {
	keysA := a.Keys()
	keysB := b.Keys()
	for i := range min(len(keysA), len(keysB)) {
		if c := strings.Compare(keysA[i], keysB[i]); c != 0 {
			return c
		}
		if c := Compare(a.fields[keysA[i]], b.fields[keysB[i]]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(keysA), len(keysB))
}
