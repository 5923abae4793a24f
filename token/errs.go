package token

import (
	"errors"
)

var (
	ErrMissingNumber    = errors.New("missing number after minus sign")
	ErrControlChar      = errors.New("unexpected control character")
	ErrMissingQuote     = errors.New("missing quote")
	ErrUnexpectedWord   = errors.New("unexpected word")
	ErrUnexpectedSymbol = errors.New("unexpected symbol")
)
