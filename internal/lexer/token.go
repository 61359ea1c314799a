package lexer

import "fmt"

// TokenType represents the type of a lexical token.
type TokenType int

const (
	TOKEN_IDENTIFIER TokenType = iota // names, type names, and unreserved words
	TOKEN_KEYWORD                     // reserved words: cb, return, break, continue
	TOKEN_KEYWORD1                    // block keywords taking (head) {body}: if, while, for
	TOKEN_KEYWORD2                    // block keywords taking only {body}: else, loop
	TOKEN_CURLY                       // a whole {...} group, inner text as value
	TOKEN_ROUND                       // a whole (...) group
	TOKEN_SQUARE                      // a whole [...] group
	TOKEN_ANGLE                       // a whole <...> group (generic parameter)
	TOKEN_INCLUDE                     // a full #include directive line
	TOKEN_STATIC_EXECUTION            // the ! of a ![...] static-execution block
	TOKEN_COMMENT                     // // comment text
	TOKEN_STRING                      // "string literal"
	TOKEN_NUMBER                      // 42, 3.14
	TOKEN_SYMBOL                      // single-rune operator or punctuation
)

// tokenNames maps token types to their display names.
var tokenNames = map[TokenType]string{
	TOKEN_IDENTIFIER:       "Identifier",
	TOKEN_KEYWORD:          "Keyword",
	TOKEN_KEYWORD1:         "Keyword1",
	TOKEN_KEYWORD2:         "Keyword2",
	TOKEN_CURLY:            "Curly",
	TOKEN_ROUND:            "Round",
	TOKEN_SQUARE:           "Square",
	TOKEN_ANGLE:            "Angle",
	TOKEN_INCLUDE:          "Include",
	TOKEN_STATIC_EXECUTION: "StaticExecution",
	TOKEN_COMMENT:          "Comment",
	TOKEN_STRING:           "String",
	TOKEN_NUMBER:           "Number",
	TOKEN_SYMBOL:           "Symbol",
}

// String returns the display name of a token type.
func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TOKEN(%d)", int(t))
}

// Token represents a single lexical token with its position in the source.
// Bracket groups arrive pre-matched: a Curly/Round/Square/Angle token covers
// the whole delimited span and carries the raw inner text as its value.
type Token struct {
	Type   TokenType
	Value  string // the source text of the token (inner text for groups)
	Line   int    // 1-based line number
	Column int    // 1-based column number
}

// String returns a human-readable representation of a token.
func (t Token) String() string {
	if t.Value == "" {
		return fmt.Sprintf("%s %d:%d", t.Type, t.Line, t.Column)
	}
	return fmt.Sprintf("%s(%q) %d:%d", t.Type, t.Value, t.Line, t.Column)
}

// keywords maps reserved words to their token types. Words absent from this
// map (including type names like "void" and the declaration heads "struct",
// "namespace", "impl") lex as identifiers; the parser matches them by value.
var keywords = map[string]TokenType{
	"cb":       TOKEN_KEYWORD,
	"return":   TOKEN_KEYWORD,
	"break":    TOKEN_KEYWORD,
	"continue": TOKEN_KEYWORD,

	"if":    TOKEN_KEYWORD1,
	"while": TOKEN_KEYWORD1,
	"for":   TOKEN_KEYWORD1,

	"else": TOKEN_KEYWORD2,
	"loop": TOKEN_KEYWORD2,
}

// LookupKeyword returns the keyword token type for the given word,
// or TOKEN_IDENTIFIER if the word is not a keyword.
func LookupKeyword(word string) TokenType {
	if tok, ok := keywords[word]; ok {
		return tok
	}
	return TOKEN_IDENTIFIER
}
