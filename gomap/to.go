package gomap

import (
	"encoding"
	"fmt"
	"reflect"

	"github.com/signadot/rjson/ir"

	"fortio.org/safecast"
)

var (
	serializableType  = reflect.TypeFor[ir.Serializable]()
	textMarshalerType = reflect.TypeFor[encoding.TextMarshaler]()
)

// ToIR converts a Go value to a tree.
//
// Values implementing ir.Serializable are converted with Serialize.  Other
// values are converted by reflection: structs and string keyed maps become
// objects, slices and arrays become arrays, encoding.TextMarshaler values
// become strings.  Integers must fit in 32 bits.
func ToIR(v any) (*ir.Node, error) {
	if v == nil {
		return ir.Null(), nil
	}
	visited := make(map[uintptr]string)
	return toIRValue(reflect.ValueOf(v), "", visited)
}

// Serializable adapts v so that it can be passed to ir.Node.Put and
// ir.Node.Push.  Conversion errors panic, as Put does on misuse.
func Serializable(v any) ir.Serializable {
	return serializable{v: v}
}

type serializable struct {
	v any
}

func (s serializable) Serialize() *ir.Node {
	node, err := ToIR(s.v)
	if err != nil {
		panic(err)
	}
	return node
}

// toIRValue converts val.  fieldPath is used in errors, visited holds the
// addresses of the pointers, maps and slices being converted.
func toIRValue(val reflect.Value, fieldPath string, visited map[uintptr]string) (*ir.Node, error) {
	if !val.IsValid() {
		return ir.Null(), nil
	}
	typ := val.Type()
	kind := typ.Kind()

	if kind == reflect.Pointer || kind == reflect.Interface {
		if val.IsNil() {
			return ir.Null(), nil
		}
	}
	if typ.Implements(serializableType) && val.CanInterface() {
		node := val.Interface().(ir.Serializable).Serialize()
		if node == nil {
			return ir.Null(), nil
		}
		return node, nil
	}
	if typ.Implements(textMarshalerType) && val.CanInterface() {
		text, err := val.Interface().(encoding.TextMarshaler).MarshalText()
		if err != nil {
			return nil, &MarshalError{FieldPath: fieldPath, Message: err.Error(), Err: err}
		}
		return ir.FromGoString(string(text)), nil
	}

	switch kind {
	case reflect.Pointer:
		ptr := val.Pointer()
		if prev, seen := visited[ptr]; seen {
			return nil, cycle(fieldPath, prev)
		}
		visited[ptr] = fieldPath
		defer delete(visited, ptr)
		return toIRValue(val.Elem(), fieldPath, visited)

	case reflect.Interface:
		return toIRValue(val.Elem(), fieldPath, visited)

	case reflect.String:
		return ir.FromGoString(val.String()), nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := safecast.Conv[int32](val.Int())
		if err != nil {
			return nil, &MarshalError{FieldPath: fieldPath, Message: err.Error(), Err: err}
		}
		return ir.FromInt(i), nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		i, err := safecast.Conv[int32](val.Uint())
		if err != nil {
			return nil, &MarshalError{FieldPath: fieldPath, Message: err.Error(), Err: err}
		}
		return ir.FromInt(i), nil

	case reflect.Float32, reflect.Float64:
		return ir.FromFloat(val.Float()), nil

	case reflect.Bool:
		return ir.FromBool(val.Bool()), nil

	case reflect.Slice, reflect.Array:
		return toIRSlice(val, fieldPath, visited)

	case reflect.Map:
		return toIRMap(val, fieldPath, visited)

	case reflect.Struct:
		return toIRStruct(val, fieldPath, visited)

	default:
		return nil, &MarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("%s: %s", ErrUnsupported, typ),
			Err:       ErrUnsupported,
		}
	}
}

func cycle(fieldPath, prev string) error {
	return &MarshalError{
		FieldPath: fieldPath,
		Message:   fmt.Sprintf("circular reference (previously seen at %s)", pathOrRoot(prev)),
	}
}

func pathOrRoot(p string) string {
	if p == "" {
		return "$"
	}
	return p
}

func toIRSlice(val reflect.Value, fieldPath string, visited map[uintptr]string) (*ir.Node, error) {
	if val.Kind() == reflect.Slice {
		if val.IsNil() {
			return ir.Null(), nil
		}
		if val.Len() != 0 {
			ptr := val.Pointer()
			if prev, seen := visited[ptr]; seen {
				return nil, cycle(fieldPath, prev)
			}
			visited[ptr] = fieldPath
			defer delete(visited, ptr)
		}
	}
	res := ir.NewArray()
	for i := range val.Len() {
		elt, err := toIRValue(val.Index(i), ir.IndexPath(pathOrRoot(fieldPath), i), visited)
		if err != nil {
			return nil, err
		}
		res.PushNode(elt)
	}
	return res, nil
}

func toIRMap(val reflect.Value, fieldPath string, visited map[uintptr]string) (*ir.Node, error) {
	if val.IsNil() {
		return ir.Null(), nil
	}
	if val.Type().Key().Kind() != reflect.String {
		return nil, &MarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("map keys must be strings, got %s", val.Type().Key()),
			Err:       ErrUnsupported,
		}
	}
	ptr := val.Pointer()
	if prev, seen := visited[ptr]; seen {
		return nil, cycle(fieldPath, prev)
	}
	visited[ptr] = fieldPath
	defer delete(visited, ptr)

	res := ir.NewObject()
	iter := val.MapRange()
	for iter.Next() {
		key := iter.Key().String()
		child, err := toIRValue(iter.Value(), ir.FieldPath(pathOrRoot(fieldPath), key), visited)
		if err != nil {
			return nil, err
		}
		res.PutNode(key, child)
	}
	return res, nil
}

// toIRStruct converts exported fields.  Fields of embedded structs are
// promoted into the parent object.
func toIRStruct(val reflect.Value, fieldPath string, visited map[uintptr]string) (*ir.Node, error) {
	typ := val.Type()
	res := ir.NewObject()
	for i := range typ.NumField() {
		field := typ.Field(i)
		embedded := field.Anonymous && field.Type.Kind() == reflect.Struct
		if !field.IsExported() && !embedded {
			continue
		}
		info := ParseFieldTag(field)
		if info.Omit {
			continue
		}
		fieldVal := val.Field(i)
		if info.OmitEmpty && fieldVal.IsZero() {
			continue
		}
		if embedded && field.Tag.Get("rjson") == "" {
			sub, err := toIRValue(fieldVal, fieldPath, visited)
			if err != nil {
				return nil, err
			}
			if !sub.IsObject() {
				res.PutNode(info.Name, sub)
				continue
			}
			for k, v := range sub.Fields() {
				if res.Has(k) {
					return nil, &MarshalError{
						FieldPath: fieldPath,
						Message:   fmt.Sprintf("embedded field %q conflicts with existing field", k),
					}
				}
				res.PutNode(k, v)
			}
			continue
		}
		child, err := toIRValue(fieldVal, ir.FieldPath(pathOrRoot(fieldPath), info.Name), visited)
		if err != nil {
			return nil, err
		}
		res.PutNode(info.Name, child)
	}
	return res, nil
}
