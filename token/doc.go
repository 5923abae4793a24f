// Package token provides tokenization support for rjson documents.
//
// [Lex] turns a byte slice into a sequence of [Token]s terminated by a
// [TEOF] token, together with any lexical diagnostics.  Lexing stops at
// the first diagnostic.
//
// [Lexer] provides the same scan one token at a time.
package token
