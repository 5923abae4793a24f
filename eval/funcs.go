package eval

import (
	"os"

	"github.com/signadot/rjson/encode"
	"github.com/signadot/rjson/gomap"
	"github.com/signadot/rjson/ir"

	"github.com/expr-lang/expr"
)

func exprOpts(doc *ir.Node) []expr.Option {
	return []expr.Option{
		expr.Function("getpath", func(params ...any) (any, error) {
			res, err := doc.GetPath(params[0].(string))
			if err != nil {
				return nil, err
			}
			return ir.ToAny(res), nil
		},
			new(func(string) any)),
		expr.Function("listpath", func(params ...any) (any, error) {
			nodes, err := doc.ListPath(nil, params[0].(string))
			if err != nil {
				return nil, err
			}
			res := make([]any, len(nodes))
			for i, node := range nodes {
				res[i] = ir.ToAny(node)
			}
			return res, nil
		},
			new(func(string) []any)),
		expr.Function("has", func(params ...any) (any, error) {
			_, err := doc.GetPath(params[0].(string))
			return err == nil, nil
		},
			new(func(string) bool)),
		expr.Function("text", func(params ...any) (any, error) {
			node, err := gomap.ToIR(params[0])
			if err != nil {
				return nil, err
			}
			return encode.MustString(node, encode.EncodeWire(true)), nil
		},
			new(func(any) string)),
		expr.Function("getenv", func(params ...any) (any, error) {
			return os.Getenv(params[0].(string)), nil
		},
			new(func(string) string)),
	}
}
