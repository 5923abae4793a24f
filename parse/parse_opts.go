package parse

import (
	"github.com/signadot/rjson/ir"
	"github.com/signadot/rjson/token"
)

const DefaultMaxDepth = 512

type parseOpts struct {
	maxDepth  int
	positions map[*ir.Node]*token.Pos
}

type ParseOption func(*parseOpts)

// MaxDepth bounds the nesting of objects and arrays.  Deeper documents
// fail with ErrTooDeeplyNested.  n <= 0 means DefaultMaxDepth.
func MaxDepth(n int) ParseOption {
	return func(o *parseOpts) { o.maxDepth = n }
}

// ParsePositions records in m the position of the token each node was
// built from.  For objects and arrays this is the opening bracket.
func ParsePositions(m map[*ir.Node]*token.Pos) ParseOption {
	return func(o *parseOpts) {
		o.positions = m
	}
}

// GetPositions extracts the positions map from the provided options.
func GetPositions(opts ...ParseOption) map[*ir.Node]*token.Pos {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	return pOpts.positions
}
