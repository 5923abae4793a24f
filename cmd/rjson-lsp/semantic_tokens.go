package main

import (
	"context"
	"unicode/utf8"

	"github.com/signadot/rjson/encode"
	"github.com/signadot/rjson/ir"
	"github.com/signadot/rjson/token"

	"go.lsp.dev/protocol"
)

var semanticLegend = protocol.SemanticTokensLegend{
	TokenTypes: []protocol.SemanticTokenTypes{
		protocol.SemanticTokenProperty,
		protocol.SemanticTokenString,
		protocol.SemanticTokenNumber,
		protocol.SemanticTokenKeyword,
		protocol.SemanticTokenOperator,
	},
	TokenModifiers: []protocol.SemanticTokenModifiers{},
}

func semanticIndex(t protocol.SemanticTokenTypes) uint32 {
	for i, lt := range semanticLegend.TokenTypes {
		if lt == t {
			return uint32(i)
		}
	}
	return 0
}

// mapColorToSemanticTokenType maps the encoder's color attributes to
// semantic token types, so that editors and the terminal agree.
func mapColorToSemanticTokenType(nodeType ir.Type, attr encode.ColorAttr) protocol.SemanticTokenTypes {
	switch attr {
	case encode.FieldColor:
		return protocol.SemanticTokenProperty
	case encode.SepColor:
		return protocol.SemanticTokenOperator
	}
	switch nodeType {
	case ir.IntType, ir.FloatType:
		return protocol.SemanticTokenNumber
	case ir.BoolType, ir.NullType:
		return protocol.SemanticTokenKeyword
	default:
		return protocol.SemanticTokenString
	}
}

type semanticToken struct {
	line      uint32
	character uint32
	length    uint32
	tokenType protocol.SemanticTokenTypes
}

// collectSemanticTokens classifies the tokens of content.  Lexing stops at
// the first lexical error, so the tokens before it are still highlighted.
func collectSemanticTokens(content string) []semanticToken {
	toks, _ := token.Lex([]byte(content))
	var res []semanticToken
	for i := range toks {
		tok := &toks[i]
		var (
			typ  ir.Type
			attr = encode.ValueColor
			text = tok.Text
		)
		switch tok.Type {
		case token.TEOF, token.TError:
			continue
		case token.TLCurl, token.TRCurl:
			typ, attr = ir.ObjectType, encode.SepColor
		case token.TLSquare, token.TRSquare, token.TComma:
			typ, attr = ir.ArrayType, encode.SepColor
		case token.TColon:
			typ, attr = ir.ObjectType, encode.SepColor
		case token.TString:
			typ = ir.StringType
			text = `"` + text + `"`
			if i+1 < len(toks) && toks[i+1].Type == token.TColon {
				attr = encode.FieldColor
			}
		case token.TInteger:
			typ = ir.IntType
		case token.TFloat:
			typ = ir.FloatType
		case token.TBool:
			typ = ir.BoolType
		case token.TNull:
			typ = ir.NullType
		}
		// token positions mark the end of the token
		start := lspPosition(content, tok.Pos.D.Pos(tok.Pos.I-len(text)))
		res = append(res, semanticToken{
			line:      start.Line,
			character: start.Character,
			length:    uint32(utf8.RuneCountInString(text)),
			tokenType: mapColorToSemanticTokenType(typ, attr),
		})
	}
	return res
}

// encodeSemanticTokens produces the LSP relative encoding of the tokens on
// lines [from, to].
func encodeSemanticTokens(toks []semanticToken, from, to uint32) []uint32 {
	data := []uint32{}
	var prevLine, prevChar uint32
	for _, t := range toks {
		if t.line < from || t.line > to {
			continue
		}
		deltaLine := t.line - prevLine
		deltaChar := t.character
		if deltaLine == 0 {
			deltaChar = t.character - prevChar
		}
		data = append(data, deltaLine, deltaChar, t.length, semanticIndex(t.tokenType), 0)
		prevLine, prevChar = t.line, t.character
	}
	return data
}

func (s *Server) SemanticTokensFull(ctx context.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return &protocol.SemanticTokens{Data: []uint32{}}, nil
	}
	toks := collectSemanticTokens(doc.content)
	return &protocol.SemanticTokens{
		Data: encodeSemanticTokens(toks, 0, ^uint32(0)),
	}, nil
}

func (s *Server) SemanticTokensRange(ctx context.Context, params *protocol.SemanticTokensRangeParams) (*protocol.SemanticTokens, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return &protocol.SemanticTokens{Data: []uint32{}}, nil
	}
	toks := collectSemanticTokens(doc.content)
	return &protocol.SemanticTokens{
		Data: encodeSemanticTokens(toks, params.Range.Start.Line, params.Range.End.Line),
	}, nil
}
