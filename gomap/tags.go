package gomap

import (
	"reflect"
	"strings"
)

// FieldInfo holds the projection of a struct field.
type FieldInfo struct {
	// Name is the member name in the object.
	Name string
	// Omit excludes the field.
	Omit bool
	// OmitEmpty excludes the field when it holds its zero value.
	OmitEmpty bool
}

// ParseFieldTag returns the projection of f as given by its rjson tag.
func ParseFieldTag(f reflect.StructField) FieldInfo {
	info := FieldInfo{Name: f.Name}
	tag, ok := f.Tag.Lookup("rjson")
	if !ok {
		return info
	}
	if tag == "-" {
		info.Omit = true
		return info
	}
	name, opts, _ := strings.Cut(tag, ",")
	if name != "" {
		info.Name = name
	}
	for opt := range strings.SplitSeq(opts, ",") {
		if strings.TrimSpace(opt) == "omitempty" {
			info.OmitEmpty = true
		}
	}
	return info
}
