// Package eval evaluates expr-lang expressions against document trees.
//
// The document is bound to the variable doc as plain Go values (maps,
// slices, strings, ints, floats, bools and nil), and the functions
// getpath, listpath, has, text and getenv are available:
//
//	doc.players[0].name
//	len(listpath("$.players[*]"))
//	filter(doc.players, .id > 0)
//	getpath("$.admin") + "!"
package eval
