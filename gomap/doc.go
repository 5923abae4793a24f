// Package gomap projects Go values into document trees by reflection.
//
// Struct fields are mapped to object members named after the field.  The
// rjson struct tag changes this:
//
//	type Player struct {
//		Name   string `rjson:"name"`
//		ID     uint   `rjson:"id"`
//		Secret string `rjson:"-"`
//		Note   string `rjson:"note,omitempty"`
//	}
//
// Types implementing ir.Serializable are projected with their Serialize
// method.
package gomap
