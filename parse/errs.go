package parse

import (
	"errors"
	"fmt"

	"github.com/signadot/rjson/token"
)

var (
	ErrParse           = errors.New("parse error")
	ErrUnexpectedToken = errors.New("unexpected token")
	ErrUnexpectedEnd   = errors.New("unexpected end of JSON")
	ErrInvalidNumber   = errors.New("invalid number")
	ErrTooDeeplyNested = errors.New("too deeply nested")
)

// ParseErr is the error returned by Parse.  Err is either one of the
// sentinel errors of this package or a *token.LexErr.
type ParseErr struct {
	Err    error
	Detail string
	Pos    *token.Pos
}

func (e *ParseErr) Unwrap() []error {
	return []error{ErrParse, e.Err}
}

func (e *ParseErr) Error() string {
	msg := e.Err.Error()
	if e.Detail != "" {
		msg += " " + e.Detail
	}
	if e.Pos != nil {
		msg += fmt.Sprintf(" at position %d", e.Pos.I)
	}
	return msg
}

// Position returns the position the error refers to.
func (e *ParseErr) Position() *token.Pos {
	if e.Pos != nil {
		return e.Pos
	}
	var lexErr *token.LexErr
	if errors.As(e.Err, &lexErr) {
		return &lexErr.Pos
	}
	return nil
}
