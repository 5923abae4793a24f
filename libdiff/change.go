package libdiff

import (
	"github.com/signadot/rjson/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type Op int

const (
	InsertOp Op = iota
	DeleteOp
	ReplaceOp
)

func (o Op) String() string {
	switch o {
	case InsertOp:
		return "insert"
	case DeleteOp:
		return "delete"
	case ReplaceOp:
		return "replace"
	default:
		return "<unknown op>"
	}
}

// Change is one difference between two trees.  From is nil for inserts and
// To is nil for deletes.
type Change struct {
	Op      Op
	Path    string
	Pointer string
	From    *ir.Node
	To      *ir.Node

	// Edits holds the character edits of a replacement of one string by
	// another.
	Edits []diffpatch.Diff
}

// Serialize renders c as an object with members op, path, and from and/or to.
func (c *Change) Serialize() *ir.Node {
	obj := ir.NewObject()
	obj.Put("op", ir.String(c.Op.String()))
	obj.PutNode("path", ir.FromGoString(c.Path))
	if c.From != nil {
		obj.PutNode("from", c.From.Clone())
	}
	if c.To != nil {
		obj.PutNode("to", c.To.Clone())
	}
	return obj
}

// Reverse returns the changes which undo changes, in the order they must be
// applied.
func Reverse(changes []Change) []Change {
	res := make([]Change, len(changes))
	for i := range changes {
		c := changes[len(changes)-1-i]
		switch c.Op {
		case InsertOp:
			c.Op = DeleteOp
		case DeleteOp:
			c.Op = InsertOp
		}
		c.From, c.To = c.To, c.From
		if c.Edits != nil {
			edits := make([]diffpatch.Diff, len(c.Edits))
			for j, e := range c.Edits {
				switch e.Type {
				case diffpatch.DiffInsert:
					e.Type = diffpatch.DiffDelete
				case diffpatch.DiffDelete:
					e.Type = diffpatch.DiffInsert
				}
				edits[j] = e
			}
			c.Edits = edits
		}
		res[i] = c
	}
	return res
}
