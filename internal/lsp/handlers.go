package lsp

import (
	"encoding/json"
	"strings"

	"github.com/dev-orus/wyst/internal/lexer"
	"github.com/dev-orus/wyst/internal/parser"
	"github.com/dev-orus/wyst/internal/symbols"
)

// ── Document sync ──

func (s *Server) handleDidOpen(req *Request) *Response {
	var params DidOpenParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		s.logger.Printf("bad didOpen params: %v", err)
		return nil
	}
	s.updateDocument(params.TextDocument.URI, params.TextDocument.Text)
	return nil
}

func (s *Server) handleDidChange(req *Request) *Response {
	var params DidChangeParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		s.logger.Printf("bad didChange params: %v", err)
		return nil
	}
	if len(params.ContentChanges) == 0 {
		return nil
	}
	// Full sync: the last change carries the whole document.
	text := params.ContentChanges[len(params.ContentChanges)-1].Text
	s.updateDocument(params.TextDocument.URI, text)
	return nil
}

func (s *Server) handleDidClose(req *Request) *Response {
	var params DidCloseParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		s.logger.Printf("bad didClose params: %v", err)
		return nil
	}
	delete(s.documents, params.TextDocument.URI)
	return nil
}

// updateDocument reparses a document into a fresh symbol table. A lex
// failure keeps the document registered with empty results so later
// requests still answer.
func (s *Server) updateDocument(uri, text string) {
	doc := &document{text: text, table: symbols.NewTable()}

	tokens, err := lexer.New(text).Tokenize()
	if err != nil {
		s.logger.Printf("lex %s: %v", uri, err)
		s.documents[uri] = doc
		return
	}

	doc.nodes = parser.New(tokens, doc.table).Parse()
	s.documents[uri] = doc
}

// ── Completion ──

// fallbackCompletion is served when no document state exists yet.
var fallbackCompletion = CompletionItem{Label: "mylabel", Detail: "mydetail"}

func (s *Server) handleCompletion(req *Request) *Response {
	var params CompletionParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req, ErrCodeInvalidReq, "invalid completion params: "+err.Error())
	}

	doc, ok := s.documents[params.TextDocument.URI]
	if !ok || doc.table.Len() == 0 {
		return s.result(req, []CompletionItem{fallbackCompletion})
	}

	prefix := prefixAt(doc.text, params.Position)
	ranked := symbols.Rank(prefix, doc.table.All())

	items := make([]CompletionItem, 0, len(ranked))
	for _, sym := range ranked {
		items = append(items, CompletionItem{
			Label:         sym.Name,
			Kind:          completionKind(sym.Kind),
			Detail:        sym.Kind.String(),
			Documentation: sym.Doc,
		})
	}
	return s.result(req, items)
}

// prefixAt extracts the identifier fragment ending at the given LSP
// position, stopping at the :: trigger or any non-word rune.
func prefixAt(text string, pos Position) string {
	lines := strings.Split(text, "\n")
	if pos.Line < 0 || pos.Line >= len(lines) {
		return ""
	}
	line := lines[pos.Line]
	end := pos.Character
	if end > len(line) {
		end = len(line)
	}

	start := end
	for start > 0 {
		c := line[start-1]
		if c == '_' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' {
			start--
			continue
		}
		break
	}
	return line[start:end]
}

func completionKind(kind symbols.SymbolKind) int {
	switch kind {
	case symbols.KindStruct:
		return CompletionKindStruct
	case symbols.KindNamespace:
		return CompletionKindModule
	case symbols.KindFunc:
		return CompletionKindFunction
	default:
		return CompletionKindVariable
	}
}

// ── Document symbols ──

func (s *Server) handleDocumentSymbol(req *Request) *Response {
	var params DocumentSymbolParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req, ErrCodeInvalidReq, "invalid documentSymbol params: "+err.Error())
	}

	doc, ok := s.documents[params.TextDocument.URI]
	if !ok {
		return s.result(req, []SymbolInformation{})
	}

	infos := make([]SymbolInformation, 0, doc.table.Len())
	for _, sym := range doc.table.All() {
		// Table positions are 1-based; LSP positions are 0-based.
		start := Position{Line: sym.Pos.Line - 1, Character: sym.Pos.Column - 1}
		if start.Line < 0 {
			start.Line = 0
		}
		if start.Character < 0 {
			start.Character = 0
		}
		infos = append(infos, SymbolInformation{
			Name: sym.Name,
			Kind: symbolKind(sym.Kind),
			Location: Location{
				URI:   params.TextDocument.URI,
				Range: Range{Start: start, End: Position{Line: start.Line, Character: start.Character + len(sym.Name)}},
			},
		})
	}
	return s.result(req, infos)
}

func symbolKind(kind symbols.SymbolKind) int {
	switch kind {
	case symbols.KindStruct:
		return SymbolKindStruct
	case symbols.KindNamespace:
		return SymbolKindNamespace
	case symbols.KindFunc:
		return SymbolKindFunction
	default:
		return SymbolKindVariable
	}
}
