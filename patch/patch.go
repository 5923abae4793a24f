package patch

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/signadot/rjson/debug"
	"github.com/signadot/rjson/encode"
	"github.com/signadot/rjson/ir"
	"github.com/signadot/rjson/parse"

	jsonpatch "github.com/evanphx/json-patch"
)

// Apply applies the RFC 6902 patch p to doc and returns the result.  doc is
// not modified.
//
// Operations on the whole document (path "") are applied directly; other
// operations require doc to be an object or an array at the time they
// apply.
func Apply(doc, p *ir.Node) (*ir.Node, error) {
	ops, err := p.AsArray()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadOperation, err)
	}
	res := doc
	var run []*ir.Node
	for i, op := range ops.Elements() {
		kind, path, err := opKindPath(op)
		if err != nil {
			return nil, fmt.Errorf("%w at %s", err, ir.IndexPath("$", i))
		}
		if path != "" && kind == "replace" {
			if res, err = applyRun(res, run); err != nil {
				return nil, err
			}
			run = nil
			if err := checkPointer(res, path); err != nil {
				return nil, fmt.Errorf("%w: %w", ErrPatch, err)
			}
		}
		if path != "" {
			run = append(run, op)
			continue
		}
		if res, err = applyRun(res, run); err != nil {
			return nil, err
		}
		run = nil
		switch kind {
		case "add", "replace":
			v, err := op.Get("value")
			if err != nil {
				return nil, fmt.Errorf("%w: %s without value at %s", ErrBadOperation, kind, ir.IndexPath("$", i))
			}
			res = v.Clone()
		case "test":
			v, err := op.Get("value")
			if err != nil || !ir.Equal(v, res) {
				return nil, fmt.Errorf("%w: %w", ErrPatch, jsonpatch.ErrTestFailed)
			}
		default:
			return nil, fmt.Errorf("%w: cannot %s the whole document", ErrBadOperation, kind)
		}
	}
	res, err = applyRun(res, run)
	if err != nil {
		return nil, err
	}
	if res == doc {
		res = doc.Clone()
	}
	return res, nil
}

func opKindPath(op *ir.Node) (string, string, error) {
	kn, err := op.Get("op")
	if err != nil {
		return "", "", fmt.Errorf("%w: %w", ErrBadOperation, err)
	}
	kind, err := kn.Str()
	if err != nil {
		return "", "", fmt.Errorf("%w: %w", ErrBadOperation, err)
	}
	pn, err := op.Get("path")
	if err != nil {
		return "", "", fmt.Errorf("%w: %w", ErrBadOperation, err)
	}
	path, err := pn.Str()
	if err != nil {
		return "", "", fmt.Errorf("%w: %w", ErrBadOperation, err)
	}
	return kind, path, nil
}

// checkPointer reports jsonpatch.ErrMissing unless the RFC 6901 pointer
// raw, as written in a patch string, names a value in doc.
func checkPointer(doc *ir.Node, raw string) error {
	ptr, err := ir.Unescape(raw)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBadOperation, err)
	}
	if !strings.HasPrefix(ptr, "/") {
		return fmt.Errorf("%w: pointer %q does not start with '/'", ErrBadOperation, ptr)
	}
	cur := doc
	for _, tok := range strings.Split(ptr[1:], "/") {
		tok = strings.ReplaceAll(strings.ReplaceAll(tok, "~1", "/"), "~0", "~")
		var next *ir.Node
		switch {
		case cur.IsObject():
			next = member(cur, tok)
		case cur.IsArray():
			if i, err := strconv.Atoi(tok); err == nil && i >= 0 && i < cur.Len() {
				next = cur.MustIndex(i)
			}
		}
		if next == nil {
			return fmt.Errorf("%w: %s", jsonpatch.ErrMissing, ptr)
		}
		cur = next
	}
	return nil
}

// member looks up the decoded key in obj, whose keys are held escaped.
func member(obj *ir.Node, key string) *ir.Node {
	if v, err := obj.Get(ir.Escape(key)); err == nil {
		return v
	}
	for k, v := range obj.Fields() {
		if u, err := ir.Unescape(k); err == nil && u == key {
			return v
		}
	}
	return nil
}

func applyRun(doc *ir.Node, run []*ir.Node) (*ir.Node, error) {
	if len(run) == 0 {
		return doc, nil
	}
	if doc.IsPrimitive() {
		return nil, fmt.Errorf("%w: %w", ErrPatch, ErrNotContainer)
	}
	pd := []byte(encode.MustString(ir.FromSlice(run), encode.EncodeWire(true)))
	ops, err := jsonpatch.DecodePatch(pd)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadOperation, err)
	}
	d := []byte(encode.MustString(doc, encode.EncodeWire(true)))
	if debug.Patch() {
		debug.Logf("patch: applying %d ops to %s\n", len(ops), d)
	}
	out, err := ops.Apply(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return parse.Parse(out)
}

// MergePatch applies the RFC 7386 merge patch mp to doc.
func MergePatch(doc, mp *ir.Node) (*ir.Node, error) {
	d := []byte(encode.MustString(doc, encode.EncodeWire(true)))
	m := []byte(encode.MustString(mp, encode.EncodeWire(true)))
	out, err := jsonpatch.MergePatch(d, m)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	if debug.Patch() {
		debug.Logf("patch: merged %s\n", out)
	}
	return parse.Parse(out)
}

// CreateMergePatch returns the RFC 7386 merge patch turning from into to.
// Both must be objects.  Changed numbers in the patch are written in their
// shortest form, so 1.0 becomes 1.
func CreateMergePatch(from, to *ir.Node) (*ir.Node, error) {
	if !from.IsObject() || !to.IsObject() {
		return nil, fmt.Errorf("%w: merge patches relate objects", ErrNotContainer)
	}
	f := []byte(encode.MustString(from, encode.EncodeWire(true)))
	t := []byte(encode.MustString(to, encode.EncodeWire(true)))
	out, err := jsonpatch.CreateMergePatch(f, t)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return parse.Parse(out)
}
