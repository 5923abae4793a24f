package ir

import (
	"fmt"
	"math"
)

// ToAny converts a tree into plain Go values: map[string]any, []any,
// string, int, float64, bool and nil.  Escapes in strings are decoded.
func ToAny(node *Node) any {
	switch node.Kind() {
	case ObjectType:
		res := make(map[string]any, len(node.fields))
		for k, v := range node.fields {
			res[k] = ToAny(v)
		}
		return res
	case ArrayType:
		res := make([]any, len(node.values))
		for i, elt := range node.values {
			res[i] = ToAny(elt)
		}
		return res
	case StringType:
		s, err := Unescape(node.value.String)
		if err != nil {
			return node.value.String
		}
		return s
	case IntType:
		return int(node.value.Int)
	case FloatType:
		return node.value.Float
	case BoolType:
		return node.value.Bool
	case NullType:
		return nil
	default:
		panic("impossible production")
	}
}

// FromAny converts plain Go values, as produced by ToAny or
// encoding/json, into a tree.  Numbers which are whole and fit in 32 bits
// become Int nodes, other numbers Float nodes.
func FromAny(v any) (*Node, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case *Node:
		return x, nil
	case map[string]any:
		res := NewObject()
		for k, vv := range x {
			child, err := FromAny(vv)
			if err != nil {
				return nil, err
			}
			res.PutNode(k, child)
		}
		return res, nil
	case []any:
		res := NewArray()
		for _, vv := range x {
			child, err := FromAny(vv)
			if err != nil {
				return nil, err
			}
			res.PushNode(child)
		}
		return res, nil
	case string:
		return FromGoString(x), nil
	case bool:
		return FromBool(x), nil
	case int:
		return fromInt64(int64(x))
	case int32:
		return FromInt(x), nil
	case int64:
		return fromInt64(x)
	case float64:
		if x == math.Trunc(x) && x >= math.MinInt32 && x <= math.MaxInt32 {
			return FromInt(int32(x)), nil
		}
		return FromFloat(x), nil
	default:
		return nil, fmt.Errorf("%w: cannot convert %T", ErrTypeMismatch, v)
	}
}

func fromInt64(i int64) (*Node, error) {
	if i < math.MinInt32 || i > math.MaxInt32 {
		return nil, fmt.Errorf("%w: %d does not fit in 32 bits", ErrTypeMismatch, i)
	}
	return FromInt(int32(i)), nil
}
