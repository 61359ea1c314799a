package lsp

import (
	"bytes"
	"encoding/json"
	"io"
	"strconv"
	"strings"
	"testing"
)

// newTestServer builds a server with a dead transport and silent logs;
// tests drive dispatch directly.
func newTestServer() *Server {
	s := NewServer(NewTransport(strings.NewReader(""), io.Discard))
	s.SetLogOutput(io.Discard)
	return s
}

// request builds a JSON-RPC request with the given numeric id.
func request(t *testing.T, id int, method string, params any) *Request {
	t.Helper()
	req := &Request{
		JSONRPC: "2.0",
		ID:      json.RawMessage(strconv.Itoa(id)),
		Method:  method,
	}
	if params != nil {
		data, err := json.Marshal(params)
		if err != nil {
			t.Fatalf("marshaling params: %v", err)
		}
		req.Params = data
	}
	return req
}

// notify builds a JSON-RPC notification (no id).
func notify(t *testing.T, method string, params any) *Request {
	t.Helper()
	req := request(t, 0, method, params)
	req.ID = nil
	return req
}

// mustDispatch dispatches and fails on transport-level errors.
func mustDispatch(t *testing.T, s *Server, req *Request) *Response {
	t.Helper()
	resp, err := s.dispatch(req)
	if err != nil {
		t.Fatalf("dispatch %s: %v", req.Method, err)
	}
	return resp
}

// ── Lifecycle ──

func TestInitialize(t *testing.T) {
	s := newTestServer()
	resp := mustDispatch(t, s, request(t, 1, "initialize", nil))

	if resp == nil || resp.Error != nil {
		t.Fatalf("expected a result response, got %+v", resp)
	}
	result, ok := resp.Result.(InitializeResult)
	if !ok {
		t.Fatalf("expected InitializeResult, got %T", resp.Result)
	}

	caps := result.Capabilities
	if caps.TextDocumentSync != syncFull {
		t.Errorf("expected full document sync, got %d", caps.TextDocumentSync)
	}
	if caps.CompletionProvider == nil ||
		len(caps.CompletionProvider.TriggerCharacters) != 1 ||
		caps.CompletionProvider.TriggerCharacters[0] != "::" {
		t.Errorf("expected :: completion trigger, got %+v", caps.CompletionProvider)
	}
	if !caps.DocumentSymbolProvider {
		t.Error("expected document symbol support")
	}
	if result.ServerInfo.Name != serverName {
		t.Errorf("expected server name %q, got %q", serverName, result.ServerInfo.Name)
	}
}

func TestShutdownThenExit(t *testing.T) {
	s := newTestServer()

	resp := mustDispatch(t, s, request(t, 1, "shutdown", nil))
	if resp == nil || resp.Error != nil {
		t.Fatalf("expected empty result for shutdown, got %+v", resp)
	}
	if !s.shutdown {
		t.Error("expected shutdown flag set")
	}

	_, err := s.dispatch(notify(t, "exit", nil))
	if err != errExit {
		t.Errorf("expected errExit, got %v", err)
	}
}

func TestUnknownMethod(t *testing.T) {
	s := newTestServer()

	resp := mustDispatch(t, s, request(t, 1, "workspace/nope", nil))
	if resp == nil || resp.Error == nil || resp.Error.Code != ErrCodeMethodNot {
		t.Errorf("expected method-not-found error, got %+v", resp)
	}

	// Unknown notifications are dropped silently.
	if resp := mustDispatch(t, s, notify(t, "workspace/nope", nil)); resp != nil {
		t.Errorf("expected no response to unknown notification, got %+v", resp)
	}
}

func TestCancelRequestIgnored(t *testing.T) {
	s := newTestServer()
	if resp := mustDispatch(t, s, notify(t, "$/cancelRequest", map[string]int{"id": 1})); resp != nil {
		t.Errorf("expected cancel to be ignored, got %+v", resp)
	}
}

// ── Full loop over a framed stream ──

func TestRunHandshakeSession(t *testing.T) {
	var in bytes.Buffer
	in.WriteString(frame(`{"jsonrpc":"2.0","id":1,"method":"initialize"}`))
	in.WriteString(frame(`{"jsonrpc":"2.0","method":"initialized"}`))
	in.WriteString(frame(`{"jsonrpc":"2.0","id":2,"method":"shutdown"}`))
	in.WriteString(frame(`{"jsonrpc":"2.0","method":"exit"}`))

	var out bytes.Buffer
	s := NewServer(NewTransport(&in, &out))
	s.SetLogOutput(io.Discard)

	if err := s.Run(); err != nil {
		t.Fatalf("unexpected run error: %v", err)
	}

	// Two responses: initialize and shutdown.
	reader := NewTransport(&out, io.Discard)
	for _, wantID := range []string{"1", "2"} {
		resp, err := reader.ReadMessage()
		if err != nil {
			t.Fatalf("reading response %s: %v", wantID, err)
		}
		if string(resp.ID) != wantID {
			t.Errorf("expected response id %s, got %s", wantID, resp.ID)
		}
	}
	if _, err := reader.ReadMessage(); err != io.EOF {
		t.Errorf("expected exactly two responses, got extra data (%v)", err)
	}
}

func TestRunStopsOnClientDisconnect(t *testing.T) {
	s := NewServer(NewTransport(strings.NewReader(""), io.Discard))
	s.SetLogOutput(io.Discard)
	if err := s.Run(); err != nil {
		t.Errorf("expected clean stop on EOF, got %v", err)
	}
}
