package main

import (
	"context"
	"slices"

	"github.com/signadot/rjson/ir"
	"github.com/signadot/rjson/token"

	"go.lsp.dev/protocol"
)

var valueCompletions = []protocol.CompletionItem{
	{Label: "true", Kind: protocol.CompletionItemKindKeyword},
	{Label: "false", Kind: protocol.CompletionItemKindKeyword},
	{Label: "null", Kind: protocol.CompletionItemKindKeyword},
	{Label: "{}", Kind: protocol.CompletionItemKindValue},
	{Label: "[]", Kind: protocol.CompletionItemKindValue},
}

func (s *Server) Completion(ctx context.Context, params *protocol.CompletionParams) (*protocol.CompletionList, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil, nil
	}
	off := lineColToOffset(doc.content, int(params.Position.Line), int(params.Position.Character))
	items := []protocol.CompletionItem{}
	switch completionContext(doc.content[:off]) {
	case wantValue:
		items = append(items, valueCompletions...)
	case wantKey:
		for _, k := range doc.keys {
			items = append(items, protocol.CompletionItem{
				Label:      k,
				Kind:       protocol.CompletionItemKindProperty,
				InsertText: `"` + k + `": `,
			})
		}
	}
	return &protocol.CompletionList{Items: items}, nil
}

type completionKind int

const (
	wantNothing completionKind = iota
	wantValue
	wantKey
)

// completionContext decides from the text before the cursor whether an
// object key or a value comes next.
func completionContext(prefix string) completionKind {
	toks, _ := token.Lex([]byte(prefix))
	var (
		stack []token.TokenType
		last  = token.TEOF
	)
	for i := range toks {
		t := toks[i].Type
		switch t {
		case token.TEOF, token.TError:
			continue
		case token.TLCurl, token.TLSquare:
			stack = append(stack, t)
		case token.TRCurl, token.TRSquare:
			if len(stack) != 0 {
				stack = stack[:len(stack)-1]
			}
		}
		last = t
	}
	if last == token.TEOF || last == token.TColon {
		return wantValue
	}
	if len(stack) == 0 {
		return wantNothing
	}
	top := stack[len(stack)-1]
	if last != token.TComma && last != top {
		return wantNothing
	}
	if top == token.TLCurl {
		return wantKey
	}
	return wantValue
}

// objectKeys returns the sorted distinct keys of all objects in node.
func objectKeys(node *ir.Node) []string {
	seen := map[string]bool{}
	node.Visit(func(y *ir.Node, isPost bool) (bool, error) {
		if !isPost && y.IsObject() {
			for _, k := range y.Keys() {
				seen[k] = true
			}
		}
		return true, nil
	})
	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
