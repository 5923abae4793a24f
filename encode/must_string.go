package encode

import (
	"strings"

	"github.com/signadot/rjson/ir"
)

func MustString(node *ir.Node, opts ...EncodeOption) string {
	buf := &strings.Builder{}
	if err := Encode(node, buf, opts...); err != nil {
		panic(err)
	}
	return buf.String()
}
