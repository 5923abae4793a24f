package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/signadot/rjson/debug"

	"github.com/google/gops/agent"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
)

const lsName = "rjson-lsp"

var (
	version = "0.0.1"
)

func main() {
	if os.Getenv("RJSON_LSP_GOPS") == "1" {
		if err := agent.Listen(agent.Options{}); err != nil {
			fmt.Fprintf(os.Stderr, "gops agent failed: %v\n", err)
		}
	}
	ctx := context.Background()
	stream := jsonrpc2.NewStream(stdio{os.Stdin, os.Stdout})
	server := newServer()
	conn := jsonrpc2.NewConn(stream)
	server.conn = conn
	conn.Go(ctx, protocol.CancelHandler(server.handler()))
	<-conn.Done()
}

type stdio struct {
	io.Reader
	io.Writer
}

func (stdio) Close() error { return nil }

type Server struct {
	conn jsonrpc2.Conn
	docs *documentStore
}

func newServer() *Server {
	return &Server{
		docs: &documentStore{
			docs: make(map[string]*document),
		},
	}
}

// route decodes the raw params of one method and runs it.  Notifications
// return a nil result.
type route func(ctx context.Context, params json.RawMessage) (any, error)

func call[P, R any](f func(context.Context, *P) (R, error)) route {
	return func(ctx context.Context, raw json.RawMessage) (any, error) {
		p := new(P)
		if err := json.Unmarshal(raw, p); err != nil {
			return nil, fmt.Errorf("%w: %w", jsonrpc2.ErrParse, err)
		}
		return f(ctx, p)
	}
}

func notify[P any](f func(context.Context, *P) error) route {
	return call(func(ctx context.Context, p *P) (any, error) {
		return nil, f(ctx, p)
	})
}

func ignore(context.Context, json.RawMessage) (any, error) { return nil, nil }

func (s *Server) routes() map[string]route {
	return map[string]route{
		protocol.MethodInitialize:             call(s.Initialize),
		protocol.MethodInitialized:            ignore,
		protocol.MethodSetTrace:               ignore,
		protocol.MethodShutdown:               ignore,
		protocol.MethodExit:                   s.exit,
		protocol.MethodTextDocumentDidOpen:    notify(s.DidOpen),
		protocol.MethodTextDocumentDidChange:  notify(s.DidChange),
		protocol.MethodTextDocumentDidClose:   notify(s.DidClose),
		protocol.MethodTextDocumentDidSave:    ignore,
		protocol.MethodTextDocumentHover:      call(s.Hover),
		protocol.MethodTextDocumentCompletion: call(s.Completion),
		protocol.MethodTextDocumentFormatting: call(s.Formatting),
		protocol.MethodSemanticTokensFull:     call(s.SemanticTokensFull),
		protocol.MethodSemanticTokensRange:    call(s.SemanticTokensRange),
	}
}

// handler dispatches requests and notifications to s.  Methods without a
// route are answered with jsonrpc2.ErrMethodNotFound.
func (s *Server) handler() jsonrpc2.Handler {
	routes := s.routes()
	return func(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
		r, ok := routes[req.Method()]
		if !ok {
			if debug.LSP() {
				debug.Logf("lsp: no route for %s\n", req.Method())
			}
			return jsonrpc2.MethodNotFoundHandler(ctx, reply, req)
		}
		res, err := r(ctx, req.Params())
		return reply(ctx, res, err)
	}
}

func (s *Server) exit(context.Context, json.RawMessage) (any, error) {
	if s.conn == nil {
		return nil, nil
	}
	return nil, s.conn.Close()
}

func (s *Server) Initialize(ctx context.Context, params *protocol.InitializeParams) (*protocol.InitializeResult, error) {
	if debug.LSP() {
		debug.Logf("lsp: initialize\n")
	}
	capabilities := protocol.ServerCapabilities{
		TextDocumentSync: &protocol.TextDocumentSyncOptions{
			Change:    protocol.TextDocumentSyncKindIncremental,
			OpenClose: true,
		},
		HoverProvider:              true,
		DocumentFormattingProvider: true,
		CompletionProvider: &protocol.CompletionOptions{
			TriggerCharacters: []string{":", "[", ","},
		},
		SemanticTokensProvider: map[string]interface{}{
			"full":   true,
			"range":  true,
			"legend": semanticLegend,
		},
	}

	return &protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.ServerInfo{
			Name:    lsName,
			Version: version,
		},
	}, nil
}
