package patch

import "errors"

var (
	ErrPatch        = errors.New("patch error")
	ErrBadOperation = errors.New("bad patch operation")
	ErrNotContainer = errors.New("document is not an object or array")
)
