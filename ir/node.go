package ir

import (
	"fmt"
	"iter"
	"maps"
	"slices"
)

// Node is a document tree node: an object, an array or a primitive.
//
// The zero Node is a null primitive.
type Node struct {
	value  Value
	fields map[string]*Node
	values []*Node
}

func NewObject() *Node {
	return &Node{
		value:  Value{Type: ObjectType},
		fields: map[string]*Node{},
	}
}

func NewArray() *Node {
	return &Node{value: Value{Type: ArrayType}}
}

// FromValue returns a primitive node holding v.  If v names a container
// type, an empty container is returned.
func FromValue(v Value) *Node {
	switch v.Type {
	case ObjectType:
		return NewObject()
	case ArrayType:
		return NewArray()
	}
	return &Node{value: v}
}

func FromString(v string) *Node {
	return FromValue(StringValue(v))
}

func FromInt(v int32) *Node {
	return FromValue(IntValue(v))
}

func FromFloat(f float64) *Node {
	return FromValue(FloatValue(f))
}

func FromBool(v bool) *Node {
	return FromValue(BoolValue(v))
}

func Null() *Node {
	return &Node{}
}

// FromMap returns an object node owning the nodes of m.
func FromMap(m map[string]*Node) *Node {
	res := NewObject()
	for k, v := range m {
		res.PutNode(k, v)
	}
	return res
}

// FromSlice returns an array node owning the nodes of s.
func FromSlice(s []*Node) *Node {
	res := NewArray()
	for _, v := range s {
		res.PushNode(v)
	}
	return res
}

// Kind returns the discriminator of y.
func (y *Node) Kind() Type {
	return y.value.Type
}

func (y *Node) IsObject() bool {
	return y.value.Type == ObjectType
}

func (y *Node) IsArray() bool {
	return y.value.Type == ArrayType
}

func (y *Node) IsPrimitive() bool {
	return y.value.Type.IsLeaf()
}

func (y *Node) IsNull() bool {
	return y.value.Type == NullType
}

// Put serializes v and stores it under key, replacing any previous value.
// Put panics if y is not an object.
func (y *Node) Put(key string, v Serializable) {
	y.PutNode(key, serialize(v))
}

// PutNode stores child under key, replacing any previous value.  y takes
// ownership of child.  PutNode panics if y is not an object.
func (y *Node) PutNode(key string, child *Node) {
	if y.value.Type != ObjectType {
		panic(fmt.Sprintf("put %q on %s node", key, y.value.Type))
	}
	if child == nil {
		child = Null()
	}
	if y.fields == nil {
		y.fields = map[string]*Node{}
	}
	y.fields[key] = child
}

// Push serializes v and appends it.  Push panics if y is not an array.
func (y *Node) Push(v Serializable) {
	y.PushNode(serialize(v))
}

// PushNode appends child, taking ownership of it.  PushNode panics if y
// is not an array.
func (y *Node) PushNode(child *Node) {
	if y.value.Type != ArrayType {
		panic(fmt.Sprintf("push on %s node", y.value.Type))
	}
	if child == nil {
		child = Null()
	}
	y.values = append(y.values, child)
}

// Len returns the number of children of an object or array, and 0 for
// primitives.
func (y *Node) Len() int {
	switch y.value.Type {
	case ObjectType:
		return len(y.fields)
	case ArrayType:
		return len(y.values)
	default:
		return 0
	}
}

// Keys returns the keys of an object in lexicographic order.
func (y *Node) Keys() []string {
	return slices.Sorted(maps.Keys(y.fields))
}

// Fields iterates over the members of an object in key order.
func (y *Node) Fields() iter.Seq2[string, *Node] {
	return func(yield func(string, *Node) bool) {
		for _, k := range y.Keys() {
			if !yield(k, y.fields[k]) {
				return
			}
		}
	}
}

// Elements returns the elements of an array.  The slice is owned by y.
func (y *Node) Elements() []*Node {
	return y.values
}

func (y *Node) Clone() *Node {
	res := &Node{value: y.value}
	if y.fields != nil {
		res.fields = make(map[string]*Node, len(y.fields))
		for k, v := range y.fields {
			res.fields[k] = v.Clone()
		}
	}
	if y.values != nil {
		res.values = make([]*Node, len(y.values))
		for i, v := range y.values {
			res.values[i] = v.Clone()
		}
	}
	return res
}

// Visit calls f on y and its descendants in document order, objects'
// members in key order.  f is called before (isPost false) and after
// (isPost true) the children of a node; children are visited only when
// the pre call returns true.
func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		switch y.value.Type {
		case ObjectType:
			for _, yy := range y.Fields() {
				if err := yy.Visit(f); err != nil {
					return err
				}
			}
		case ArrayType:
			for _, yy := range y.values {
				if err := yy.Visit(f); err != nil {
					return err
				}
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}
