package eval

import (
	"errors"
	"fmt"

	"github.com/signadot/rjson/debug"
	"github.com/signadot/rjson/gomap"
	"github.com/signadot/rjson/ir"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

var ErrEval = errors.New("eval error")

// Eval evaluates src with doc bound and returns the result as a tree.
func Eval(doc *ir.Node, src string, env Env) (*ir.Node, error) {
	prg, err := expr.Compile(src, exprOpts(doc)...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEval, err)
	}
	res, err := vm.Run(prg, env.with("doc", ir.ToAny(doc)))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEval, err)
	}
	if debug.Eval() {
		debug.Logf("eval %q: %T %v\n", src, res, res)
	}
	node, err := gomap.ToIR(res)
	if err != nil {
		return nil, fmt.Errorf("%w: result of %q: %w", ErrEval, src, err)
	}
	return node, nil
}

// Select returns the nodes selected by path for which pred holds.  pred
// is evaluated with doc bound to the whole document and it bound to the
// candidate node; its result is tested with ir.Truth.  The returned nodes
// are owned by doc.
func Select(doc *ir.Node, path, pred string, env Env) ([]*ir.Node, error) {
	nodes, err := doc.ListPath(nil, path)
	if err != nil {
		return nil, err
	}
	prg, err := expr.Compile(pred, exprOpts(doc)...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEval, err)
	}
	base := env.with("doc", ir.ToAny(doc))
	var res []*ir.Node
	for _, node := range nodes {
		v, err := vm.Run(prg, base.with("it", ir.ToAny(node)))
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrEval, err)
		}
		t, err := gomap.ToIR(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrEval, err)
		}
		if ir.Truth(t) {
			res = append(res, node)
		}
	}
	if debug.Eval() {
		debug.Logf("select %s %q: %d of %d\n", path, pred, len(res), len(nodes))
	}
	return res, nil
}
