// Package encode renders document trees as canonical text.
//
// # Canonical JSON
//
// Objects are written one member per line, indented two spaces per level,
// with members in lexicographic key order.  Arrays are written on a single
// line with elements separated by commas.  Strings are written between
// double quotes exactly as they are held in the tree, without escaping.
// The output has no trailing newline.
//
//	obj := ir.NewObject()
//	obj.Put("b", ir.List[ir.Int32]{1, 2})
//	obj.Put("a", ir.String("x"))
//	fmt.Println(encode.Text(obj))
//	// {
//	//   "a": "x",
//	//   "b": [1,2]
//	// }
//
// Since keys are sorted, structurally equal trees produce identical text
// regardless of how they were built.
//
// # Options
//
//   - [EncodeColors] colorizes the output for terminals
//   - [EncodeWire] writes compact single line JSON
//   - [EncodeFormat] selects YAML output instead of JSON
//
// # Related Packages
//
//   - github.com/signadot/rjson/ir - document trees
//   - github.com/signadot/rjson/parse - parse text to trees
package encode
