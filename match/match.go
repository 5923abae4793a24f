// Package match tests documents against patterns.
//
// A pattern matches a document of the same shape: every member of a pattern
// object must match the member of the document with the same key, other
// document members are ignored; pattern arrays match arrays of the same
// length element by element; primitives must be equal, including their
// kind, so 1 does not match 1.0.  A null pattern matches anything.
package match

import (
	"github.com/signadot/rjson/debug"
	"github.com/signadot/rjson/ir"
)

// Match reports whether doc matches pattern.
func Match(doc, pattern *ir.Node) bool {
	return match(doc, pattern, "$")
}

func match(doc, pattern *ir.Node, path string) bool {
	if debug.Match() {
		debug.Logf("match %s at %s\n", pattern.Kind(), path)
	}
	if pattern.IsNull() {
		return true
	}
	if doc.Kind() != pattern.Kind() {
		return false
	}
	switch pattern.Kind() {
	case ir.ObjectType:
		return matchObject(doc, pattern, path)
	case ir.ArrayType:
		return matchArray(doc, pattern, path)
	default:
		return ir.Equal(doc, pattern)
	}
}

func matchObject(doc, pattern *ir.Node, path string) bool {
	for k, p := range pattern.Fields() {
		child, err := doc.Get(k)
		if err != nil {
			return false
		}
		if !match(child, p, ir.FieldPath(path, k)) {
			return false
		}
	}
	return true
}

func matchArray(doc, pattern *ir.Node, path string) bool {
	if doc.Len() != pattern.Len() {
		return false
	}
	for i, p := range pattern.Elements() {
		if !match(doc.MustIndex(i), p, ir.IndexPath(path, i)) {
			return false
		}
	}
	return true
}

// Trim returns a copy of doc restricted to what pattern mentions: object
// members absent from the pattern are dropped, and array elements are
// kept, in pattern order, when they are the first unused element matching
// an element of the pattern.  doc is not modified.
func Trim(pattern, doc *ir.Node) *ir.Node {
	switch {
	case pattern.IsObject() && doc.IsObject():
		res := ir.NewObject()
		for k, p := range pattern.Fields() {
			child, err := doc.Get(k)
			if err != nil {
				continue
			}
			res.PutNode(k, Trim(p, child))
		}
		return res
	case pattern.IsArray() && doc.IsArray():
		res := ir.NewArray()
		used := make([]bool, doc.Len())
		for _, p := range pattern.Elements() {
			for i, elt := range doc.Elements() {
				if used[i] || !Match(elt, p) {
					continue
				}
				res.PushNode(Trim(p, elt))
				used[i] = true
				break
			}
		}
		return res
	default:
		return doc.Clone()
	}
}
