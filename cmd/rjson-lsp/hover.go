package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/signadot/rjson/encode"
	"github.com/signadot/rjson/ir"
	"github.com/signadot/rjson/token"

	"go.lsp.dev/protocol"
)

func (s *Server) Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.node == nil {
		return nil, nil
	}
	off := lineColToOffset(doc.content, int(params.Position.Line), int(params.Position.Character))
	node, path := findNodeAt(doc.node, doc.positions, off)
	if node == nil {
		return nil, nil
	}
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: buildHoverText(node, path),
		},
	}, nil
}

// findNodeAt returns the node whose token covers off, along with its path.
// Positions mark the end of a node's first token, so this is the node with
// the nearest position after off.
func findNodeAt(root *ir.Node, positions map[*ir.Node]*token.Pos, off int) (*ir.Node, string) {
	var (
		best     *ir.Node
		bestPath string
		bestOff  int
	)
	var visit func(node *ir.Node, path string)
	visit = func(node *ir.Node, path string) {
		if pos := positions[node]; pos != nil && pos.I > off {
			if best == nil || pos.I < bestOff {
				best, bestPath, bestOff = node, path, pos.I
			}
		}
		switch node.Kind() {
		case ir.ObjectType:
			for k, v := range node.Fields() {
				visit(v, ir.FieldPath(path, k))
			}
		case ir.ArrayType:
			for i, elt := range node.Elements() {
				visit(elt, ir.IndexPath(path, i))
			}
		}
	}
	visit(root, "$")
	return best, bestPath
}

func buildHoverText(node *ir.Node, path string) string {
	parts := []string{
		fmt.Sprintf("**Type:** %s", node.Kind()),
		fmt.Sprintf("**Path:** `%s`", path),
	}
	if v := valueInfo(node); v != "" {
		parts = append(parts, fmt.Sprintf("**Value:** %s", v))
	}
	return strings.Join(parts, "\n\n")
}

func valueInfo(node *ir.Node) string {
	switch node.Kind() {
	case ir.ArrayType:
		return fmt.Sprintf("array with %d elements", node.Len())
	case ir.ObjectType:
		return fmt.Sprintf("object with %d keys", node.Len())
	}
	v, err := node.Primitive()
	if err != nil {
		return ""
	}
	val := encode.Primitive(v)
	if len(val) > 50 {
		val = val[:50] + "..."
	}
	return fmt.Sprintf("`%s`", val)
}
