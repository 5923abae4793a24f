// Package parse provides rjson parsing support.
//
// [Parse] lexes its input with [token.Lex] and builds an [ir.Node] tree by
// recursive descent with one token of lookahead.
//
// # Errors
//
// A lexical diagnostic fails the parse immediately.  Syntax errors do not
// stop the parser: the offending token is reported and left in place, an
// empty token of the expected kind stands in for it, and parsing goes on.
// When the pass completes, the first recorded diagnostic is returned as a
// [*ParseErr] and the partially built tree is discarded.
//
// All errors returned by Parse match [ErrParse] with errors.Is.
package parse
