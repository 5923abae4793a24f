package debug

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/signadot/rjson/encode"
	"github.com/signadot/rjson/ir"
)

// Logf writes to stderr.  Trees are rendered canonically and plain Go
// maps and slices as indented JSON.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case *ir.Node:
			if x == nil {
				args[i] = "<nil>"
				continue
			}
			args[i] = encode.Text(x)
		case bool, string, float64, int:

		default:
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
