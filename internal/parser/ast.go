package parser

import (
	"fmt"
	"strings"

	"github.com/dev-orus/wyst/internal/lexer"
)

// AstType classifies a parsed construct. The set is closed: the dispatch
// loop in Parse produces exactly one of these per node, with Other as the
// fallback for anything the grammar does not specifically recognize.
type AstType int

const (
	Ref AstType = iota
	FunctionDeceleration
	StructDeceleration
	StructCall
	StructVar
	VoidFunctionDeceleration
	Namespace
	VariableDeceleration
	PointerDeceleration
	// MutVariableDeceleration is reserved: it is part of the declaration
	// predicate but no grammar rule currently produces it.
	MutVariableDeceleration
	State3
	State2
	Include
	IncludeLocal
	CodeBlock
	Json
	Impl
	StaticExecution
	Other
)

var astTypeNames = map[AstType]string{
	Ref:                      "Ref",
	FunctionDeceleration:     "FunctionDeceleration",
	StructDeceleration:       "StructDeceleration",
	StructCall:               "StructCall",
	StructVar:                "StructVar",
	VoidFunctionDeceleration: "VoidFunctionDeceleration",
	Namespace:                "Namespace",
	VariableDeceleration:     "VariableDeceleration",
	PointerDeceleration:      "PointerDeceleration",
	MutVariableDeceleration:  "MutVariableDeceleration",
	State3:                   "State3",
	State2:                   "State2",
	Include:                  "Include",
	IncludeLocal:             "IncludeLocal",
	CodeBlock:                "CodeBlock",
	Json:                     "Json",
	Impl:                     "Impl",
	StaticExecution:          "StaticExecution",
	Other:                    "Other",
}

// String returns the display name of an AST node type.
func (t AstType) String() string {
	if name, ok := astTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("AstType(%d)", int(t))
}

// IsDeclaration reports whether nodes of this type declare a name that
// gets registered into the symbol table. Downstream consumers use this
// to filter declaration-like nodes from the full output stream.
func IsDeclaration(t AstType) bool {
	switch t {
	case FunctionDeceleration,
		VoidFunctionDeceleration,
		Namespace,
		VariableDeceleration,
		PointerDeceleration,
		MutVariableDeceleration,
		StructDeceleration:
		return true
	}
	return false
}

// Ast is one parsed construct: a shallow, non-recursive capture of the
// tokens relevant to it, plus a classification. It never nests child
// nodes — a function declaration stores the name token and the raw
// parameter and body groups, not a parsed parameter list.
type Ast struct {
	Tokens []lexer.Token
	Type   AstType
}

// String returns a plain multiline rendering of the node.
func (a Ast) String() string {
	return a.render(a.Type.String() + ":")
}

// Colorized returns the same rendering with the type tag in cyan.
func (a Ast) Colorized() string {
	return a.render("\x1b[36m" + a.Type.String() + ":\x1b[0m")
}

func (a Ast) render(head string) string {
	var b strings.Builder
	b.WriteString(head)
	b.WriteString(" [\n")
	for i, tok := range a.Tokens {
		if i < len(a.Tokens)-1 {
			fmt.Fprintf(&b, "    %s,\n", tok)
		} else {
			fmt.Fprintf(&b, "    %s\n", tok)
		}
	}
	b.WriteString("]")
	return b.String()
}
