package main

import (
	"context"
	"errors"
	"sync"
	"unicode/utf8"

	"github.com/signadot/rjson/debug"
	"github.com/signadot/rjson/ir"
	"github.com/signadot/rjson/parse"
	"github.com/signadot/rjson/token"

	"go.lsp.dev/protocol"
)

type documentStore struct {
	mu   sync.RWMutex
	docs map[string]*document
}

type document struct {
	uri       string
	content   string
	version   int32
	node      *ir.Node
	err       error
	positions map[*ir.Node]*token.Pos

	// keys holds the object keys of the last version which parsed.
	keys []string
}

func (ds *documentStore) get(uri string) *document {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.docs[uri]
}

func (ds *documentStore) put(uri string, content string, version int32) *document {
	positions := make(map[*ir.Node]*token.Pos)
	node, err := parse.Parse([]byte(content), parse.ParsePositions(positions))
	doc := &document{
		uri:       uri,
		content:   content,
		version:   version,
		node:      node,
		err:       err,
		positions: positions,
	}
	ds.mu.Lock()
	defer ds.mu.Unlock()
	switch prev := ds.docs[uri]; {
	case node != nil:
		doc.keys = objectKeys(node)
	case prev != nil:
		doc.keys = prev.keys
	}
	ds.docs[uri] = doc
	return doc
}

func (ds *documentStore) remove(uri string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	delete(ds.docs, uri)
}

func (s *Server) publishDiagnostics(ctx context.Context, doc *document) {
	diagnostics := validateDocument(doc)
	if debug.LSP() {
		debug.Logf("lsp: %s v%d: %d diagnostics\n", doc.uri, doc.version, len(diagnostics))
	}
	if s.conn == nil {
		return
	}
	err := s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         protocol.DocumentURI(doc.uri),
		Diagnostics: diagnostics,
	})
	if err != nil && debug.LSP() {
		debug.Logf("lsp: publish diagnostics: %v\n", err)
	}
}

func validateDocument(doc *document) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}
	if doc.err == nil {
		return diagnostics
	}
	diagnostic := protocol.Diagnostic{
		Severity: protocol.DiagnosticSeverityError,
		Message:  doc.err.Error(),
		Source:   "rjson",
	}
	var pErr *parse.ParseErr
	if errors.As(doc.err, &pErr) {
		if pos := pErr.Position(); pos != nil {
			start := lspPosition(doc.content, pos)
			end := start
			end.Character++
			diagnostic.Range = protocol.Range{Start: start, End: end}
		}
	}
	return append(diagnostics, diagnostic)
}

// lspPosition converts a byte offset position into an LSP position, whose
// character counts runes from the start of the line.
func lspPosition(content string, pos *token.Pos) protocol.Position {
	line, col := pos.LineCol()
	lineStart := pos.I - col
	if lineStart < 0 || pos.I > len(content) {
		return protocol.Position{Line: uint32(line), Character: uint32(col)}
	}
	return protocol.Position{
		Line:      uint32(line),
		Character: uint32(utf8.RuneCountInString(content[lineStart:pos.I])),
	}
}

func (s *Server) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	doc := s.docs.put(string(params.TextDocument.URI), params.TextDocument.Text, params.TextDocument.Version)
	s.publishDiagnostics(ctx, doc)
	return nil
}

func (s *Server) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	uri := string(params.TextDocument.URI)
	prev := s.docs.get(uri)
	if prev == nil {
		return nil
	}
	content := prev.content
	for _, change := range params.ContentChanges {
		content = applyChange(content, change)
	}
	doc := s.docs.put(uri, content, params.TextDocument.Version)
	s.publishDiagnostics(ctx, doc)
	return nil
}

func (s *Server) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.docs.remove(string(params.TextDocument.URI))
	return nil
}

// applyChange applies an incremental change.  A zero range with no range
// length replaces the whole document.
func applyChange(content string, change protocol.TextDocumentContentChangeEvent) string {
	r := change.Range
	if r == (protocol.Range{}) && change.RangeLength == 0 {
		return change.Text
	}
	start := lineColToOffset(content, int(r.Start.Line), int(r.Start.Character))
	end := lineColToOffset(content, int(r.End.Line), int(r.End.Character))
	if start > end {
		return content
	}
	return content[:start] + change.Text + content[end:]
}

// lineColToOffset returns the byte offset of a line and rune column.
func lineColToOffset(content string, line, col int) int {
	currentLine := 0
	currentCol := 0
	for i, r := range content {
		if currentLine == line && currentCol == col {
			return i
		}
		if r == '\n' {
			if currentLine == line {
				return i
			}
			currentLine++
			currentCol = 0
		} else {
			currentCol++
		}
	}
	return len(content)
}
