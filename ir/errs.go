package ir

import (
	"errors"
	"fmt"
)

var (
	ErrTypeMismatch    = errors.New("type mismatch")
	ErrKeyNotFound     = errors.New("key not found")
	ErrIndexOutOfRange = errors.New("index out of range")
)

func mismatch(want string, got Type) error {
	return fmt.Errorf("%w: JSON element is not %s (got %s)", ErrTypeMismatch, want, got)
}
