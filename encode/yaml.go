package encode

import (
	"io"

	"github.com/signadot/rjson/ir"

	"github.com/goccy/go-yaml"
)

func encodeYAML(node *ir.Node, w io.Writer) error {
	d, err := yaml.Marshal(toYAML(node))
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}

// toYAML converts node to values goccy/go-yaml marshals, keeping object
// members in key order.
func toYAML(node *ir.Node) any {
	switch node.Kind() {
	case ir.ObjectType:
		res := make(yaml.MapSlice, 0, node.Len())
		for k, v := range node.Fields() {
			res = append(res, yaml.MapItem{Key: k, Value: toYAML(v)})
		}
		return res
	case ir.ArrayType:
		res := make([]any, node.Len())
		for i, elt := range node.Elements() {
			res[i] = toYAML(elt)
		}
		return res
	default:
		return ir.ToAny(node)
	}
}
