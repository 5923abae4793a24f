package libdiff

import "github.com/signadot/rjson/ir"

// ToPatch returns changes as an RFC 6902 patch document.
func ToPatch(changes []Change) *ir.Node {
	res := ir.NewArray()
	for i := range changes {
		c := &changes[i]
		op := ir.NewObject()
		switch c.Op {
		case InsertOp:
			op.Put("op", ir.String("add"))
			op.PutNode("value", c.To.Clone())
		case DeleteOp:
			op.Put("op", ir.String("remove"))
		case ReplaceOp:
			op.Put("op", ir.String("replace"))
			op.PutNode("value", c.To.Clone())
		}
		op.Put("path", ir.String(c.Pointer))
		res.PushNode(op)
	}
	return res
}
