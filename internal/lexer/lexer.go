package lexer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	cerr "github.com/dev-orus/wyst/internal/errors"
)

// Lexer tokenizes Wyst source code into a flat stream of tokens.
// Delimiter pairs are matched here, not in the parser: a balanced
// {...}, (...), [...] or <...> span becomes a single group token.
type Lexer struct {
	source  string  // the full source text
	tokens  []Token // accumulated tokens
	current int     // byte offset of current position
	line    int     // current line number (1-based)
	column  int     // current column number (1-based)

	lastEnd  int       // byte offset just past the previous token
	lastType TokenType // type of the previous token
}

// New creates a new Lexer for the given source code.
func New(source string) *Lexer {
	return &Lexer{
		source:   source,
		tokens:   make([]Token, 0, 256),
		line:     1,
		column:   1,
		lastEnd:  -1,
		lastType: TOKEN_SYMBOL,
	}
}

// Tokenize processes the entire source and returns all tokens.
func (l *Lexer) Tokenize() ([]Token, error) {
	for !l.isAtEnd() {
		r := l.peekRune()

		switch {
		case r == '\n':
			l.advance()
			l.line++
			l.column = 1

		case r == ' ' || r == '\t' || r == '\r':
			l.advance()

		case r == '/' && l.peekRuneAt(l.current+1) == '/':
			l.scanComment()

		case r == '#':
			l.scanInclude()

		case r == '"':
			if err := l.scanString(); err != nil {
				return nil, err
			}

		case r == '{':
			if err := l.scanGroup('{', '}', TOKEN_CURLY); err != nil {
				return nil, err
			}

		case r == '(':
			if err := l.scanGroup('(', ')', TOKEN_ROUND); err != nil {
				return nil, err
			}

		case r == '[':
			if err := l.scanGroup('[', ']', TOKEN_SQUARE); err != nil {
				return nil, err
			}

		case r == '<' && l.angleGroupAhead():
			if err := l.scanGroup('<', '>', TOKEN_ANGLE); err != nil {
				return nil, err
			}

		case r == '!' && l.peekRuneAt(l.current+1) == '[':
			line, col := l.line, l.column
			l.advance()
			l.emit(TOKEN_STATIC_EXECUTION, "!", line, col)

		case isIdentStart(r):
			l.scanWord()

		case unicode.IsDigit(r):
			l.scanNumber()

		default:
			line, col := l.line, l.column
			l.advance()
			l.emit(TOKEN_SYMBOL, string(r), line, col)
		}
	}

	return l.tokens, nil
}

// scanWord scans an identifier or keyword.
func (l *Lexer) scanWord() {
	line, col := l.line, l.column
	start := l.current
	for !l.isAtEnd() && isIdentPart(l.peekRune()) {
		l.advance()
	}
	word := l.source[start:l.current]
	l.emit(LookupKeyword(word), word, line, col)
}

// scanNumber scans an integer or decimal literal.
func (l *Lexer) scanNumber() {
	line, col := l.line, l.column
	start := l.current
	for !l.isAtEnd() && unicode.IsDigit(l.peekRune()) {
		l.advance()
	}
	if !l.isAtEnd() && l.peekRune() == '.' && unicode.IsDigit(l.peekRuneAt(l.current+1)) {
		l.advance()
		for !l.isAtEnd() && unicode.IsDigit(l.peekRune()) {
			l.advance()
		}
	}
	l.emit(TOKEN_NUMBER, l.source[start:l.current], line, col)
}

// scanComment scans a // line comment. The token value is the comment
// text without the slashes, trimmed — declaration doc strings come from
// these tokens verbatim.
func (l *Lexer) scanComment() {
	line, col := l.line, l.column
	l.advance() // /
	l.advance() // /
	start := l.current
	for !l.isAtEnd() && l.peekRune() != '\n' {
		l.advance()
	}
	l.emit(TOKEN_COMMENT, strings.TrimSpace(l.source[start:l.current]), line, col)
}

// scanInclude scans a # directive, capturing the whole rest of the line.
// The parser picks the directive apart; the lexer only marks the span.
func (l *Lexer) scanInclude() {
	line, col := l.line, l.column
	start := l.current
	for !l.isAtEnd() && l.peekRune() != '\n' {
		l.advance()
	}
	l.emit(TOKEN_INCLUDE, strings.TrimRight(l.source[start:l.current], " \t\r"), line, col)
}

// scanString scans a double-quoted string literal. Backslash escapes are
// carried through uninterpreted.
func (l *Lexer) scanString() error {
	line, col := l.line, l.column
	l.advance() // opening quote
	start := l.current
	for !l.isAtEnd() {
		r := l.peekRune()
		if r == '\\' {
			l.advance()
			if !l.isAtEnd() {
				l.advance()
			}
			continue
		}
		if r == '"' {
			value := l.source[start:l.current]
			l.advance() // closing quote
			l.emit(TOKEN_STRING, value, line, col)
			return nil
		}
		if r == '\n' {
			break
		}
		l.advance()
	}
	return &cerr.Diagnostic{
		Severity: cerr.SeverityError,
		Code:     "L001",
		Message:  "unterminated string literal",
		Line:     line,
		Column:   col,
	}
}

// scanGroup scans a balanced delimiter group into a single token whose
// value is the raw inner text. Nesting of the same delimiter pair is
// tracked; other delimiters inside are not interpreted.
func (l *Lexer) scanGroup(open, close rune, typ TokenType) error {
	line, col := l.line, l.column
	l.advance() // opening delimiter
	start := l.current
	depth := 1
	for !l.isAtEnd() {
		r := l.peekRune()
		if r == '\n' {
			l.line++
			l.column = 0 // advance() brings it to 1
		}
		if r == open && open != close {
			depth++
		} else if r == close {
			depth--
			if depth == 0 {
				value := l.source[start:l.current]
				l.advance() // closing delimiter
				l.emit(typ, value, line, col)
				return nil
			}
		}
		l.advance()
	}
	return &cerr.Diagnostic{
		Severity: cerr.SeverityError,
		Code:     "L002",
		Message:  "unterminated " + string(open) + string(close) + " group",
		Line:     line,
		Column:   col,
	}
}

// angleGroupAhead reports whether the < at the current position opens a
// generic-parameter group: it must sit flush against a preceding
// identifier and close with > on the same line. Any other < is an
// ordinary symbol token.
func (l *Lexer) angleGroupAhead() bool {
	if l.lastType != TOKEN_IDENTIFIER || l.lastEnd != l.current {
		return false
	}
	for i := l.current + 1; i < len(l.source); i++ {
		switch l.source[i] {
		case '>':
			return true
		case '\n':
			return false
		}
	}
	return false
}

// ── Low-level cursor helpers ──

func (l *Lexer) isAtEnd() bool {
	return l.current >= len(l.source)
}

func (l *Lexer) peekRune() rune {
	r, _ := utf8.DecodeRuneInString(l.source[l.current:])
	return r
}

func (l *Lexer) peekRuneAt(offset int) rune {
	if offset >= len(l.source) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.source[offset:])
	return r
}

func (l *Lexer) advance() rune {
	r, size := utf8.DecodeRuneInString(l.source[l.current:])
	l.current += size
	l.column++
	return r
}

func (l *Lexer) emit(typ TokenType, value string, line, column int) {
	l.tokens = append(l.tokens, Token{Type: typ, Value: value, Line: line, Column: column})
	l.lastEnd = l.current
	l.lastType = typ
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentPart(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
