package encode

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/signadot/rjson/format"
	"github.com/signadot/rjson/ir"
)

var ErrEncoding = errors.New("encoding error")

type EncState struct {
	indent int
	wire   bool
	format format.Format

	Color func(ir.Type, ColorAttr, string) string
}

// Encode writes node to w in canonical form.  The empty object is
// written as {}, without the inner newline used for non-empty objects.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	switch es.format {
	case format.JSONFormat:
		return encode(node, w, 0, es)
	case format.YAMLFormat:
		return encodeYAML(node, w)
	default:
		return fmt.Errorf("%w: unsupported format %s", ErrEncoding, es.format)
	}
}

// Text returns the canonical JSON text of node.
func Text(node *ir.Node) string {
	return MustString(node)
}

// TextOf serializes v and returns its canonical JSON text.
func TextOf(v ir.Serializable) string {
	if v == nil {
		return Text(ir.Null())
	}
	node := v.Serialize()
	if node == nil {
		node = ir.Null()
	}
	return Text(node)
}

func encode(node *ir.Node, w io.Writer, level int, es *EncState) error {
	switch node.Kind() {
	case ir.ObjectType:
		return encodeObject(node, w, level, es)
	case ir.ArrayType:
		return encodeArray(node, w, level, es)
	default:
		v, err := node.Primitive()
		if err != nil {
			return err
		}
		return writeColored(w, es, v.Type, ValueColor, Primitive(v))
	}
}

func encodeObject(node *ir.Node, w io.Writer, level int, es *EncState) error {
	if node.Len() == 0 {
		return writeColored(w, es, ir.ObjectType, SepColor, "{}")
	}
	if err := writeColored(w, es, ir.ObjectType, SepColor, "{"); err != nil {
		return err
	}
	i := 0
	for key, child := range node.Fields() {
		if i != 0 {
			if err := writeColored(w, es, ir.ObjectType, SepColor, ","); err != nil {
				return err
			}
		}
		i++
		if err := writeNL(w, level+1, es); err != nil {
			return err
		}
		if err := writeColored(w, es, ir.ObjectType, FieldColor, `"`+key+`"`); err != nil {
			return err
		}
		sep := ": "
		if es.wire {
			sep = ":"
		}
		if err := writeColored(w, es, ir.ObjectType, SepColor, sep); err != nil {
			return err
		}
		if err := encode(child, w, level+1, es); err != nil {
			return err
		}
	}
	if err := writeNL(w, level, es); err != nil {
		return err
	}
	return writeColored(w, es, ir.ObjectType, SepColor, "}")
}

// array elements stay on one line, at the level of the array.
func encodeArray(node *ir.Node, w io.Writer, level int, es *EncState) error {
	if err := writeColored(w, es, ir.ArrayType, SepColor, "["); err != nil {
		return err
	}
	for i, elt := range node.Elements() {
		if i != 0 {
			if err := writeColored(w, es, ir.ArrayType, SepColor, ","); err != nil {
				return err
			}
		}
		if err := encode(elt, w, level, es); err != nil {
			return err
		}
	}
	return writeColored(w, es, ir.ArrayType, SepColor, "]")
}

// Primitive returns the canonical text of a primitive value.
func Primitive(v ir.Value) string {
	switch v.Type {
	case ir.StringType:
		return `"` + v.String + `"`
	case ir.IntType:
		return strconv.FormatInt(int64(v.Int), 10)
	case ir.FloatType:
		return formatFloat(v.Float)
	case ir.BoolType:
		return strconv.FormatBool(v.Bool)
	default:
		return "null"
	}
}

// formatFloat writes the shortest representation of f which still reads
// back as a float: 1 is written 1.0 and 1e+21 as 1.0e+21.  JSON has no
// representation of NaN or infinities, they are written as null.
func formatFloat(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "null"
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if strings.ContainsAny(s, ".") {
		return s
	}
	if i := strings.IndexByte(s, 'e'); i != -1 {
		return s[:i] + ".0" + s[i:]
	}
	return s + ".0"
}

func writeNL(w io.Writer, level int, es *EncState) error {
	if es.wire {
		return nil
	}
	return writeString(w, "\n"+strings.Repeat(" ", es.indent*level))
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}

func writeColored(w io.Writer, es *EncState, t ir.Type, a ColorAttr, s string) error {
	if es.Color == nil {
		return writeString(w, s)
	}
	return writeString(w, es.Color(t, a, s))
}
