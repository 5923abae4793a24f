// Package ir provides the in-memory document tree for rjson.
//
// # Overview
//
// A document is a tree of [Node]s.  Every node is one of three shapes:
//
//   - an object, mapping unique string keys to child nodes
//   - an array, a dense zero indexed sequence of child nodes
//   - a primitive, wrapping a single [Value] (string, int, float, bool or null)
//
// The shape of a node is given by [Node.Kind], which returns a [Type].  The
// kind of a node is fixed when the node is constructed.
//
// Children are exclusively owned by their parent: nodes have no parent
// pointers and are never shared between trees.  Trees are built and read
// from a single goroutine.
//
// # Creating Nodes
//
// Primitive nodes are created with constructor functions:
//
//	s := ir.FromString("hello")
//	i := ir.FromInt(42)
//	n := ir.Null()
//
// Containers are created empty and filled with values implementing
// [Serializable]:
//
//	obj := ir.NewObject()
//	obj.Put("name", ir.String("alice"))
//	obj.Put("scores", ir.List[ir.Int32]{1, 2, 3})
//
// Putting an existing key replaces its value.
//
// # Accessing Nodes
//
// The checked accessors return errors wrapping [ErrTypeMismatch],
// [ErrKeyNotFound] or [ErrIndexOutOfRange]:
//
//	v, err := obj.Get("name")
//	s, err := v.Str()
//
// [Node.MustGet] and [Node.MustIndex] are unchecked variants which panic
// instead.  They are meant for callers which have already validated the
// shape of the document.
//
// # Paths
//
// [Node.GetPath] and [Node.ListPath] select nodes with paths such as
// "$.players[0].name" or "$.players[*].id".
package ir
