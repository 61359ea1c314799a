package lsp

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"testing"
)

// frame wraps a JSON body in base-protocol framing.
func frame(body string) string {
	return fmt.Sprintf("Content-Length: %d\r\n\r\n%s", len(body), body)
}

func TestReadMessage(t *testing.T) {
	in := strings.NewReader(frame(`{"jsonrpc":"2.0","id":1,"method":"initialize"}`))
	tr := NewTransport(in, io.Discard)

	req, err := tr.ReadMessage()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Method != "initialize" {
		t.Errorf("expected method initialize, got %q", req.Method)
	}
	if string(req.ID) != "1" {
		t.Errorf("expected id 1, got %s", req.ID)
	}
	if req.IsNotification() {
		t.Error("request with an id must not be a notification")
	}
}

func TestReadMessageHeaderCaseInsensitive(t *testing.T) {
	body := `{"jsonrpc":"2.0","method":"initialized"}`
	in := strings.NewReader(fmt.Sprintf("content-length: %d\r\n\r\n%s", len(body), body))
	tr := NewTransport(in, io.Discard)

	req, err := tr.ReadMessage()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !req.IsNotification() {
		t.Error("message without an id must be a notification")
	}
}

func TestReadMessageIgnoresExtraHeaders(t *testing.T) {
	body := `{"jsonrpc":"2.0","method":"exit"}`
	in := strings.NewReader(fmt.Sprintf(
		"Content-Type: application/vscode-jsonrpc; charset=utf-8\r\nContent-Length: %d\r\n\r\n%s",
		len(body), body))
	tr := NewTransport(in, io.Discard)

	req, err := tr.ReadMessage()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Method != "exit" {
		t.Errorf("expected method exit, got %q", req.Method)
	}
}

func TestReadMessageEOF(t *testing.T) {
	tr := NewTransport(strings.NewReader(""), io.Discard)
	if _, err := tr.ReadMessage(); err != io.EOF {
		t.Errorf("expected io.EOF on closed stream, got %v", err)
	}
}

func TestReadMessageMissingContentLength(t *testing.T) {
	tr := NewTransport(strings.NewReader("\r\n{}"), io.Discard)
	if _, err := tr.ReadMessage(); err == nil {
		t.Error("expected error when Content-Length is missing")
	}
}

func TestWriteResponseFraming(t *testing.T) {
	var out bytes.Buffer
	tr := NewTransport(strings.NewReader(""), &out)

	resp := &Response{JSONRPC: "2.0", ID: json.RawMessage("7"), Result: "ok"}
	if err := tr.WriteResponse(resp); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	header, body, ok := strings.Cut(out.String(), "\r\n\r\n")
	if !ok {
		t.Fatalf("missing header separator in %q", out.String())
	}
	if want := fmt.Sprintf("Content-Length: %d", len(body)); header != want {
		t.Errorf("expected header %q, got %q", want, header)
	}

	var decoded Response
	if err := json.Unmarshal([]byte(body), &decoded); err != nil {
		t.Fatalf("body is not valid JSON: %v", err)
	}
	if string(decoded.ID) != "7" {
		t.Errorf("expected id 7, got %s", decoded.ID)
	}
}

func TestTransportRoundTrip(t *testing.T) {
	var wire bytes.Buffer
	writeSide := NewTransport(strings.NewReader(""), &wire)
	if err := writeSide.WriteResponse(&Response{JSONRPC: "2.0", ID: json.RawMessage("3")}); err != nil {
		t.Fatalf("write: %v", err)
	}

	// A response frame parses back as a generic message.
	readSide := NewTransport(&wire, io.Discard)
	msg, err := readSide.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(msg.ID) != "3" {
		t.Errorf("expected id 3 back, got %s", msg.ID)
	}
}
