package token

import (
	"fmt"
)

type TokenType int

const (
	TLCurl TokenType = iota
	TRCurl
	TLSquare
	TRSquare
	TColon
	TComma
	TString
	TInteger
	TFloat
	TBool
	TNull
	TError
	TEOF
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TLCurl:   "TLCurl",
		TRCurl:   "TRCurl",
		TLSquare: "TLSquare",
		TRSquare: "TRSquare",
		TColon:   "TColon",
		TComma:   "TComma",
		TString:  "TString",
		TInteger: "TInteger",
		TFloat:   "TFloat",
		TBool:    "TBool",
		TNull:    "TNull",
		TError:   "TError",
		TEOF:     "TEOF",
	}[t]
}

// Token is a lexical unit.  Text holds the raw bytes of the token; for
// strings it excludes the surrounding quotes and keeps escape sequences
// as written.
type Token struct {
	Type TokenType
	Text string
	Pos  *Pos
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %s", t.Type, t.Pos.String())
}

func (t *Token) String() string {
	switch t.Type {
	case TString:
		return `"` + t.Text + `"`
	case TEOF:
		return "end of JSON"
	default:
		return t.Text
	}
}

// LexErr is a lexical diagnostic.
type LexErr struct {
	Err    error
	Detail string
	Pos    Pos
}

func NewLexErr(e error, detail string, p *Pos) *LexErr {
	return &LexErr{Err: e, Detail: detail, Pos: *p}
}

func (e *LexErr) Unwrap() error {
	return e.Err
}

func (e *LexErr) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s at position %d", e.Err.Error(), e.Pos.I)
	}
	return fmt.Sprintf("%s %s at position %d", e.Err.Error(), e.Detail, e.Pos.I)
}
