package lsp

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/dev-orus/wyst/internal/parser"
	"github.com/dev-orus/wyst/internal/symbols"
	"github.com/dev-orus/wyst/internal/version"
)

const serverName = "wyst-lsp"

// errExit signals a clean stop of the dispatch loop.
var errExit = fmt.Errorf("exit")

// Server is the Wyst language server. It keeps one parsed state per open
// document: each document owns an independent symbol table, so parses
// never share mutable state.
type Server struct {
	transport *Transport
	documents map[string]*document
	logger    *log.Logger
	shutdown  bool
}

// document is the per-URI parse state, rebuilt on every sync event.
type document struct {
	text  string
	nodes []parser.Ast
	table *symbols.Table
}

// NewServer creates a language server speaking over the given transport.
func NewServer(transport *Transport) *Server {
	return &Server{
		transport: transport,
		documents: make(map[string]*document),
		logger:    log.New(os.Stderr, "["+serverName+"] ", log.LstdFlags),
	}
}

// SetLogOutput redirects server logging, e.g. to a file so it does not
// interleave with an editor's stderr capture.
func (s *Server) SetLogOutput(w io.Writer) {
	s.logger.SetOutput(w)
}

// Run starts the main dispatch loop. It reads JSON-RPC messages from the
// transport and dispatches them until the client disconnects or sends
// exit.
func (s *Server) Run() error {
	for {
		req, err := s.transport.ReadMessage()
		if err != nil {
			if err == io.EOF {
				return nil
			}
			s.logger.Printf("read error: %v", err)
			return err
		}

		resp, err := s.dispatchSafe(req)
		if err == errExit {
			return nil
		}
		if resp != nil {
			if err := s.transport.WriteResponse(resp); err != nil {
				s.logger.Printf("write error: %v", err)
				return err
			}
		}
	}
}

// dispatchSafe dispatches with panic recovery so a handler defect takes
// down one request, not the server.
func (s *Server) dispatchSafe(req *Request) (resp *Response, err error) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Printf("panic in %s: %v", req.Method, r)
			if !req.IsNotification() {
				resp = s.errorResponse(req, ErrCodeInternal, fmt.Sprintf("internal error in %s", req.Method))
			}
		}
	}()
	return s.dispatch(req)
}

// dispatch routes a message to the appropriate handler. Notifications
// return a nil response.
func (s *Server) dispatch(req *Request) (*Response, error) {
	switch req.Method {
	case "initialize":
		return s.handleInitialize(req), nil
	case "initialized":
		s.logger.Printf("Wyst LSP initialized")
		return nil, nil
	case "shutdown":
		s.shutdown = true
		return s.result(req, nil), nil
	case "exit":
		return nil, errExit
	case "textDocument/didOpen":
		return s.handleDidOpen(req), nil
	case "textDocument/didChange":
		return s.handleDidChange(req), nil
	case "textDocument/didClose":
		return s.handleDidClose(req), nil
	case "textDocument/completion":
		return s.handleCompletion(req), nil
	case "textDocument/documentSymbol":
		return s.handleDocumentSymbol(req), nil
	case "$/cancelRequest":
		return nil, nil
	default:
		if req.IsNotification() {
			return nil, nil
		}
		return s.errorResponse(req, ErrCodeMethodNot, fmt.Sprintf("unknown method: %s", req.Method)), nil
	}
}

// handleInitialize answers the handshake: full-document sync, completion
// triggered on "::", and document symbols.
func (s *Server) handleInitialize(req *Request) *Response {
	return s.result(req, InitializeResult{
		Capabilities: ServerCapabilities{
			TextDocumentSync: syncFull,
			CompletionProvider: &CompletionOptions{
				TriggerCharacters: []string{"::"},
			},
			DocumentSymbolProvider: true,
		},
		ServerInfo: ServerInfo{
			Name:    serverName,
			Version: version.Version,
		},
	})
}

func (s *Server) result(req *Request, result any) *Response {
	return &Response{JSONRPC: "2.0", ID: req.ID, Result: result}
}

func (s *Server) errorResponse(req *Request, code int, message string) *Response {
	return &Response{
		JSONRPC: "2.0",
		ID:      req.ID,
		Error:   &RPCError{Code: code, Message: message},
	}
}
