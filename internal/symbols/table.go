package symbols

import (
	"fmt"

	"github.com/google/uuid"
)

// Position is a source location carried through from the token stream.
// The table forwards positions opaquely; it never interprets them.
type Position struct {
	Line   int
	Column int
}

// String returns the position as "line:column".
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// SymbolKind identifies what a registered symbol declares.
type SymbolKind int

const (
	KindStruct SymbolKind = iota
	KindNamespace
	KindFunc
	KindVar
)

// kindNames maps symbol kinds to display names.
var kindNames = map[SymbolKind]string{
	KindStruct:    "struct",
	KindNamespace: "namespace",
	KindFunc:      "func",
	KindVar:       "var",
}

// String returns the display name of a symbol kind.
func (k SymbolKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Symbol is one registered declaration.
type Symbol struct {
	ID   uuid.UUID
	Kind SymbolKind
	Name string
	Pos  Position
	Doc  string // preceding comment text, empty if none
}

// Registry is the narrow capability the parser needs: one registration
// operation per declaration kind. It is append-style — duplicates are
// recorded as separate entries, and nothing is ever looked up or removed
// during a parse.
type Registry interface {
	AddStruct(name string, pos Position, doc string)
	AddNamespace(name string, pos Position, doc string)
	AddFunc(name string, pos Position, doc string)
	AddVar(name string, pos Position, doc string)
}

// Table is the in-memory Registry used by the CLI and the language
// server. It is not safe for concurrent use: the parser is the sole
// writer during a parse, and each parsed document owns its own Table.
type Table struct {
	symbols []Symbol
}

// NewTable creates an empty symbol table.
func NewTable() *Table {
	return &Table{}
}

func (t *Table) add(kind SymbolKind, name string, pos Position, doc string) {
	t.symbols = append(t.symbols, Symbol{
		ID:   uuid.New(),
		Kind: kind,
		Name: name,
		Pos:  pos,
		Doc:  doc,
	})
}

// AddStruct registers a struct declaration.
func (t *Table) AddStruct(name string, pos Position, doc string) {
	t.add(KindStruct, name, pos, doc)
}

// AddNamespace registers a namespace declaration.
func (t *Table) AddNamespace(name string, pos Position, doc string) {
	t.add(KindNamespace, name, pos, doc)
}

// AddFunc registers a function declaration.
func (t *Table) AddFunc(name string, pos Position, doc string) {
	t.add(KindFunc, name, pos, doc)
}

// AddVar registers a variable declaration.
func (t *Table) AddVar(name string, pos Position, doc string) {
	t.add(KindVar, name, pos, doc)
}

// All returns every registered symbol in registration order.
func (t *Table) All() []Symbol {
	return t.symbols
}

// Len returns the number of registered symbols.
func (t *Table) Len() int {
	return len(t.symbols)
}

// OfKind returns the registered symbols of the given kind, in order.
func (t *Table) OfKind(kind SymbolKind) []Symbol {
	var out []Symbol
	for _, s := range t.symbols {
		if s.Kind == kind {
			out = append(out, s)
		}
	}
	return out
}
