package ir

import (
	"fmt"
)

// AsObject returns y if it is an object.
func (y *Node) AsObject() (*Node, error) {
	if y.value.Type != ObjectType {
		return nil, mismatch("an object", y.value.Type)
	}
	return y, nil
}

// AsArray returns y if it is an array.
func (y *Node) AsArray() (*Node, error) {
	if y.value.Type != ArrayType {
		return nil, mismatch("an array", y.value.Type)
	}
	return y, nil
}

// Primitive returns the value of a primitive node.
func (y *Node) Primitive() (Value, error) {
	if !y.value.Type.IsLeaf() {
		return Value{}, mismatch("a primitive", y.value.Type)
	}
	return y.value, nil
}

func (y *Node) Int() (int32, error) {
	if y.value.Type != IntType {
		return 0, mismatch("an int", y.value.Type)
	}
	return y.value.Int, nil
}

func (y *Node) Float() (float64, error) {
	if y.value.Type != FloatType {
		return 0, mismatch("a float", y.value.Type)
	}
	return y.value.Float, nil
}

func (y *Node) Str() (string, error) {
	if y.value.Type != StringType {
		return "", mismatch("a string", y.value.Type)
	}
	return y.value.String, nil
}

func (y *Node) Bool() (bool, error) {
	if y.value.Type != BoolType {
		return false, mismatch("a bool", y.value.Type)
	}
	return y.value.Bool, nil
}

// Get returns the member of object y under key.
func (y *Node) Get(key string) (*Node, error) {
	if y.value.Type != ObjectType {
		return nil, mismatch("an object", y.value.Type)
	}
	v, ok := y.fields[key]
	if !ok {
		return nil, fmt.Errorf("%w: key %q is undefined", ErrKeyNotFound, key)
	}
	return v, nil
}

// Index returns element i of array y.
func (y *Node) Index(i int) (*Node, error) {
	if y.value.Type != ArrayType {
		return nil, mismatch("an array", y.value.Type)
	}
	if i < 0 || i >= len(y.values) {
		return nil, fmt.Errorf("%w: value at index %d is undefined", ErrIndexOutOfRange, i)
	}
	return y.values[i], nil
}

// MustGet is like Get but panics on error.
func (y *Node) MustGet(key string) *Node {
	v, err := y.Get(key)
	if err != nil {
		panic(err)
	}
	return v
}

// MustIndex is like Index but panics on error.
func (y *Node) MustIndex(i int) *Node {
	v, err := y.Index(i)
	if err != nil {
		panic(err)
	}
	return v
}

// Has reports whether object y has a member under key.
func (y *Node) Has(key string) bool {
	_, ok := y.fields[key]
	return ok
}
