package libdiff

import (
	"slices"
	"strconv"
	"strings"

	"github.com/signadot/rjson/debug"
	"github.com/signadot/rjson/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Diff returns the changes turning from into to.  Objects are compared
// member by member in key order and arrays element by element.  Trailing
// array deletions are listed from the last index down so that the changes
// can be applied in order.
func Diff(from, to *ir.Node) []Change {
	d := &differ{}
	d.diff(from, to, "$", "")
	if debug.Diff() {
		debug.Logf("diff: %d changes\n", len(d.changes))
	}
	return d.changes
}

type differ struct {
	changes []Change
}

func (d *differ) diff(from, to *ir.Node, path, ptr string) {
	if from.Kind() != to.Kind() {
		d.replace(from, to, path, ptr)
		return
	}
	switch from.Kind() {
	case ir.ObjectType:
		d.diffObject(from, to, path, ptr)
	case ir.ArrayType:
		d.diffArray(from, to, path, ptr)
	case ir.StringType:
		if ir.Equal(from, to) {
			return
		}
		d.replace(from, to, path, ptr)
		fromStr, _ := from.Str()
		toStr, _ := to.Str()
		d.changes[len(d.changes)-1].Edits = DiffString(fromStr, toStr)
	default:
		if !ir.Equal(from, to) {
			d.replace(from, to, path, ptr)
		}
	}
}

func (d *differ) diffObject(from, to *ir.Node, path, ptr string) {
	keys := append(from.Keys(), to.Keys()...)
	slices.Sort(keys)
	keys = slices.Compact(keys)
	for _, k := range keys {
		kPath := ir.FieldPath(path, k)
		kPtr := ptr + "/" + escapePointer(k)
		fv, fErr := from.Get(k)
		tv, tErr := to.Get(k)
		switch {
		case fErr != nil:
			d.add(Change{Op: InsertOp, Path: kPath, Pointer: kPtr, To: tv})
		case tErr != nil:
			d.add(Change{Op: DeleteOp, Path: kPath, Pointer: kPtr, From: fv})
		default:
			d.diff(fv, tv, kPath, kPtr)
		}
	}
}

func (d *differ) diffArray(from, to *ir.Node, path, ptr string) {
	fromElts, toElts := from.Elements(), to.Elements()
	n := min(len(fromElts), len(toElts))
	for i := range n {
		d.diff(fromElts[i], toElts[i], ir.IndexPath(path, i), ptr+"/"+strconv.Itoa(i))
	}
	for i := len(fromElts) - 1; i >= n; i-- {
		d.add(Change{Op: DeleteOp, Path: ir.IndexPath(path, i), Pointer: ptr + "/" + strconv.Itoa(i), From: fromElts[i]})
	}
	for i := n; i < len(toElts); i++ {
		d.add(Change{Op: InsertOp, Path: ir.IndexPath(path, i), Pointer: ptr + "/" + strconv.Itoa(i), To: toElts[i]})
	}
}

func (d *differ) replace(from, to *ir.Node, path, ptr string) {
	d.add(Change{Op: ReplaceOp, Path: path, Pointer: ptr, From: from, To: to})
}

func (d *differ) add(c Change) {
	d.changes = append(d.changes, c)
}

// DiffString returns the character edits turning from into to.  Multi-line
// strings are diffed line by line.
func DiffString(from, to string) []diffpatch.Diff {
	dmp := diffpatch.New()
	multiLine := strings.Contains(from, "\n") && strings.Contains(to, "\n")
	return dmp.DiffCleanupSemantic(dmp.DiffMain(from, to, multiLine))
}

// escapePointer escapes a key as a JSON pointer reference token.
func escapePointer(k string) string {
	k = strings.ReplaceAll(k, "~", "~0")
	return strings.ReplaceAll(k, "/", "~1")
}
