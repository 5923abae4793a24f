package ir

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// Path is a parsed path such as $.a[0].b, $.a[*] or $..b.
type Path struct {
	IndexAll bool
	Index    *int
	Field    *string
	Subtree  bool
	Next     *Path
}

func (p *Path) String() string {
	buf := bytes.NewBuffer([]byte{'$'})
	x := p
	sub := false
	for x != nil {
		if x.Subtree {
			buf.WriteString("..")
			sub = true
			x = x.Next
			continue
		}
		if x.IndexAll {
			buf.WriteString("[*]")
			sub = false
			x = x.Next
			continue
		}
		if x.Field != nil {
			if !sub {
				buf.WriteByte('.')
			}
			buf.WriteString(pathString(*x.Field))
			sub = false
			x = x.Next
			continue
		}
		if x.Index != nil {
			fmt.Fprintf(buf, "[%d]", *x.Index)
			sub = false
			x = x.Next
			continue
		}
		x = x.Next
	}
	return buf.String()
}

func ParsePath(p string) (*Path, error) {
	if len(p) == 0 || p[0] != '$' {
		return nil, fmt.Errorf("path %q should start with '$'", p)
	}
	root := &Path{}
	if len(p) == 1 {
		return root, nil
	}
	err := parseFrag(p[1:], root)
	if err != nil {
		return nil, err
	}
	return root, nil
}

func parseFrag(frag string, parent *Path) error {
	if len(frag) == 0 {
		return nil
	}
	switch frag[0] {
	case '.':
		if len(frag) > 1 && frag[1] == '.' {
			parent.Subtree = true
			rest := frag[2:]
			if len(rest) == 0 {
				return fmt.Errorf("expected field or index after '..'")
			}
			if rest[0] != '[' {
				rest = "." + rest
			}
			next := &Path{}
			err := parseFrag(rest, next)
			if err != nil {
				return err
			}
			parent.Next = next
			return nil
		}
		field, rest, err := parseField(frag[1:])
		if err != nil {
			return err
		}
		parent.Field = &field
		if len(rest) == 0 {
			return nil
		}
		next := &Path{}
		err = parseFrag(rest, next)
		if err != nil {
			return err
		}
		parent.Next = next
		return nil
	case '[':
		i := strings.IndexByte(frag[1:], ']')
		if i == -1 {
			return fmt.Errorf("expected '[' <index> ']'")
		}
		index, all, err := parseIndex(frag[1 : i+1])
		if err != nil {
			return err
		}
		parent.IndexAll = all
		if !all {
			parent.Index = &index
		}
		if len(frag) == i+2 {
			return nil
		}
		next := &Path{}
		err = parseFrag(frag[i+2:], next)
		if err != nil {
			return err
		}
		parent.Next = next
		return nil
	default:
		return fmt.Errorf("expected '.' or '['")
	}
}

func parseIndex(is string) (index int, all bool, err error) {
	if len(is) == 1 && is[0] == '*' {
		return 0, true, nil
	}
	u64, err := strconv.ParseUint(is, 10, 31)
	if err != nil {
		return 0, false, err
	}
	return int(u64), false, nil
}

func parseField(frag string) (field, rest string, err error) {
	if len(frag) == 0 {
		return "", "", fmt.Errorf("expected field at end of string")
	}
	if frag[0] != '\'' {
		i := strings.IndexAny(frag, ".[")
		if i == -1 {
			return frag, "", nil
		}
		return frag[:i], frag[i:], nil
	}
	escaped := false
	res := make([]byte, 0, len(frag))
	for i := 1; i < len(frag); i++ {
		c := frag[i]
		switch c {
		case '\\':
			if escaped {
				res = append(res, c)
			}
			escaped = !escaped
		case '\'':
			if !escaped {
				return string(res), frag[i+1:], nil
			}
			fallthrough
		default:
			escaped = false
			res = append(res, c)
		}
	}
	return "", "", fmt.Errorf("end of string scanning for \"'\"")
}

func pathString(f string) string {
	if f != "" && strings.IndexAny(f, "'.*$[]\\") == -1 {
		return f
	}
	f = strings.ReplaceAll(f, "\\", "\\\\")
	return "'" + strings.ReplaceAll(f, "'", "\\'") + "'"
}

// FieldPath extends the path string p with field f.
func FieldPath(p, f string) string {
	return p + "." + pathString(f)
}

// IndexPath extends the path string p with index i.
func IndexPath(p string, i int) string {
	return p + "[" + strconv.Itoa(i) + "]"
}

// GetPath returns the node selected by yPath.  The result is owned by y.
// Missing fields and indices are reported with the same errors as Get and
// Index.
func (y *Node) GetPath(yPath string) (*Node, error) {
	yp, err := ParsePath(yPath)
	if err != nil {
		return nil, err
	}
	res := y
	for yp != nil {
		if yp.IndexAll {
			return nil, fmt.Errorf("any index in get")
		}
		if yp.Subtree {
			return nil, fmt.Errorf("recurse .. in get")
		}
		switch {
		case yp.Index != nil:
			res, err = res.Index(*yp.Index)
		case yp.Field != nil:
			res, err = res.Get(*yp.Field)
		case yp.Next != nil:
			return nil, fmt.Errorf("unexpected next w/out index or field")
		}
		if err != nil {
			return nil, err
		}
		yp = yp.Next
	}
	return res, nil
}

// ListPath appends to dst all nodes selected by yPath.
func (y *Node) ListPath(dst []*Node, yPath string) ([]*Node, error) {
	yp, err := ParsePath(yPath)
	if err != nil {
		return nil, err
	}
	return y.listPath(dst, yp), nil
}

func (y *Node) listPath(dst []*Node, yp *Path) []*Node {
	if yp == nil {
		return append(dst, y)
	}
	if yp.Subtree {
		_ = y.Visit(func(node *Node, isPost bool) (bool, error) {
			if isPost {
				return false, nil
			}
			dst = node.listPath(dst, yp.Next)
			return !node.Kind().IsLeaf(), nil
		})
		return dst
	}
	switch y.Kind() {
	case ObjectType:
		if yp.IndexAll || yp.Index != nil {
			return dst
		}
		if yp.Field == nil {
			if yp.Next == nil {
				return append(dst, y)
			}
			return dst
		}
		if v, ok := y.fields[*yp.Field]; ok {
			dst = v.listPath(dst, yp.Next)
		}
		return dst

	case ArrayType:
		if yp.Field != nil {
			return dst
		}
		if yp.Index != nil {
			idx := *yp.Index
			if 0 <= idx && idx < len(y.values) {
				dst = y.values[idx].listPath(dst, yp.Next)
			}
			return dst
		}
		if !yp.IndexAll {
			if yp.Next == nil {
				return append(dst, y)
			}
			return dst
		}
		for _, yv := range y.values {
			dst = yv.listPath(dst, yp.Next)
		}
		return dst

	default:
		if yp.Field != nil || yp.Index != nil || yp.IndexAll {
			return dst
		}
		if yp.Next == nil {
			dst = append(dst, y)
		}
		return dst
	}
}
