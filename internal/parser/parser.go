package parser

import (
	"fmt"
	"regexp"

	"github.com/dev-orus/wyst/internal/lexer"
	"github.com/dev-orus/wyst/internal/symbols"
)

// Parser turns a flat token buffer into a flat sequence of classified
// Ast nodes, registering every declaration it recognizes into a symbol
// registry as it goes.
//
// The grammar is a priority-ranked set of lookahead rules over the
// buffer: the first rule whose window matches at the cursor wins, so the
// order of the branches in Parse is load-bearing — several rule windows
// overlap, and reordering them changes which construct a token sequence
// parses as.
type Parser struct {
	tokens       []lexer.Token
	pos          int
	includeAngle *regexp.Regexp // #include <path>
	includeQuote *regexp.Regexp // #include "path"
	registry     symbols.Registry
	json         bool
}

// New creates a Parser owning the given token buffer. The include
// patterns are compiled once here and reused for the whole parse.
func New(tokens []lexer.Token, reg symbols.Registry) *Parser {
	return &Parser{
		tokens:       tokens,
		includeAngle: regexp.MustCompile(`^(#include *)<(.*?)>`),
		includeQuote: regexp.MustCompile(`^(#include *)"(.*?)"`),
		registry:     reg,
	}
}

// SetJSONMode toggles JSON mode, which gives key/value-pair recognition
// priority over every other rule.
func (p *Parser) SetJSONMode(on bool) {
	p.json = on
}

// ParseSource lexes and parses Wyst source in one step, registering
// declarations into reg.
func ParseSource(source string, reg symbols.Registry) ([]Ast, error) {
	tokens, err := lexer.New(source).Tokenize()
	if err != nil {
		return nil, fmt.Errorf("lexer error: %w", err)
	}
	return New(tokens, reg).Parse(), nil
}

// Parse consumes the whole token buffer and returns one Ast node per
// recognized construct. Every iteration advances the cursor by at least
// one token and appends exactly one node, so the output is never longer
// than the input. Malformed or truncated lookahead windows degrade to
// the Other fallback; the parse never fails on any input.
func (p *Parser) Parse() []Ast {
	var full []Ast

	for len(p.tokens) > p.pos {
		node := Ast{Type: Other}
		idx := p.pos
		if idx == len(p.tokens) {
			// Unreachable under the loop guard; a trip here means the
			// cursor bookkeeping below is broken.
			panic("parser: cursor reached the end of tokens")
		}
		tok := p.tokens[idx]
		remaining := len(p.tokens) - idx

		switch {
		case p.json && remaining > 2 && p.tokens[idx+1].Value == ":":
			node.Tokens = append(node.Tokens, p.tokens[idx], p.tokens[idx+2])
			node.Type = Json
			p.pos += 2

		case remaining > 1 && tok.Value == "&" && p.tokens[idx+1].Type == lexer.TOKEN_IDENTIFIER:
			node.Tokens = append(node.Tokens, p.tokens[idx+1])
			node.Type = Ref
			p.pos++

		case remaining > 2 && tok.Value == "struct" &&
			p.tokens[idx+1].Type == lexer.TOKEN_IDENTIFIER &&
			p.tokens[idx+2].Type == lexer.TOKEN_CURLY:
			node.Tokens = append(node.Tokens, p.tokens[idx+1], p.tokens[idx+2])
			node.Type = StructDeceleration
			p.pos += 2
			name := p.tokens[idx+1]
			p.registry.AddStruct(name.Value, tokenPos(name), p.docBefore(idx))

		case remaining > 2 && tok.Value == "namespace" &&
			p.tokens[idx+1].Type == lexer.TOKEN_IDENTIFIER &&
			p.tokens[idx+2].Type == lexer.TOKEN_CURLY:
			node.Tokens = append(node.Tokens, p.tokens[idx+1], p.tokens[idx+2])
			node.Type = Namespace
			p.pos += 2
			name := p.tokens[idx+1]
			p.registry.AddNamespace(name.Value, tokenPos(name), p.docBefore(idx))

		case remaining > 2 && tok.Value == "impl" &&
			p.tokens[idx+1].Type == lexer.TOKEN_IDENTIFIER &&
			p.tokens[idx+2].Type == lexer.TOKEN_CURLY:
			node.Tokens = append(node.Tokens, p.tokens[idx+1], p.tokens[idx+2])
			node.Type = Impl
			p.pos += 2

		case remaining > 2 && tok.Type == lexer.TOKEN_KEYWORD1 &&
			p.tokens[idx+1].Type == lexer.TOKEN_ROUND &&
			p.tokens[idx+2].Type == lexer.TOKEN_CURLY:
			node.Tokens = append(node.Tokens, p.tokens[idx], p.tokens[idx+1], p.tokens[idx+2])
			node.Type = State3
			p.pos += 2

		case remaining > 1 && tok.Type == lexer.TOKEN_KEYWORD2 &&
			p.tokens[idx+1].Type == lexer.TOKEN_CURLY:
			node.Tokens = append(node.Tokens, p.tokens[idx], p.tokens[idx+1])
			node.Type = State2
			p.pos++

		default:
			switch tok.Type {
			case lexer.TOKEN_IDENTIFIER:
				p.parseIdentifier(&node, idx, remaining)

			case lexer.TOKEN_INCLUDE:
				if m := p.includeAngle.FindStringSubmatch(tok.Value); m != nil {
					node.Tokens = append(node.Tokens, lexer.Token{Type: lexer.TOKEN_STRING, Value: m[2]})
					node.Type = Include
				} else if m := p.includeQuote.FindStringSubmatch(tok.Value); m != nil {
					node.Tokens = append(node.Tokens, lexer.Token{Type: lexer.TOKEN_STRING, Value: m[2]})
					node.Type = IncludeLocal
				} else {
					node.Tokens = append(node.Tokens, tok)
					node.Type = Include
				}

			case lexer.TOKEN_KEYWORD:
				if tok.Value == "cb" && remaining > 1 && p.tokens[idx+1].Type == lexer.TOKEN_CURLY {
					node.Tokens = append(node.Tokens, p.tokens[idx+1])
					node.Type = CodeBlock
					p.pos++
				} else {
					node.Tokens = append(node.Tokens, tok)
				}

			case lexer.TOKEN_STATIC_EXECUTION:
				// Captures the bracket group without consuming it: the
				// cursor lands on the Square token next iteration and it
				// passes through as an Other node. With no group
				// following, this stays an empty-capture Other node.
				if remaining > 1 && p.tokens[idx+1].Type == lexer.TOKEN_SQUARE {
					node.Tokens = append(node.Tokens, p.tokens[idx+1])
					node.Type = StaticExecution
				}

			default:
				node.Tokens = append(node.Tokens, tok)
			}
		}

		p.pos++
		full = append(full, node)
	}

	return full
}

// parseIdentifier handles every rule anchored on an identifier token, in
// priority order: function declaration, struct call, struct variable,
// plain variable, generic-type variable, pointer variable. The windows
// are tested most-specific first; an identifier matching none of them
// passes through as Other.
func (p *Parser) parseIdentifier(node *Ast, idx, remaining int) {
	tok := p.tokens[idx]

	switch {
	case remaining > 3 &&
		p.tokens[idx+1].Type == lexer.TOKEN_IDENTIFIER &&
		p.tokens[idx+2].Type == lexer.TOKEN_ROUND &&
		p.tokens[idx+3].Type == lexer.TOKEN_CURLY:
		node.Tokens = append(node.Tokens, p.tokens[idx+1], p.tokens[idx+2], p.tokens[idx+3])
		if tok.Value == "void" {
			node.Type = VoidFunctionDeceleration
		} else {
			node.Type = FunctionDeceleration
		}
		p.pos += 3
		name := p.tokens[idx+1]
		p.registry.AddFunc(name.Value, tokenPos(name), p.docBefore(idx))

	case remaining > 1 && p.tokens[idx+1].Type == lexer.TOKEN_CURLY:
		node.Tokens = append(node.Tokens, p.tokens[idx+1])
		node.Type = StructCall
		p.pos++

	case remaining > 2 &&
		p.tokens[idx+1].Type == lexer.TOKEN_IDENTIFIER &&
		p.tokens[idx+2].Type == lexer.TOKEN_CURLY:
		node.Tokens = append(node.Tokens, p.tokens[idx+1], p.tokens[idx+2])
		node.Type = StructVar
		p.pos += 2
		name := p.tokens[idx+1]
		p.registry.AddVar(name.Value, tokenPos(name), p.docBefore(idx))

	case remaining > 1 && p.tokens[idx+1].Type == lexer.TOKEN_IDENTIFIER:
		node.Tokens = append(node.Tokens, p.tokens[idx+1])
		node.Type = VariableDeceleration
		p.pos++
		name := p.tokens[idx+1]
		p.registry.AddVar(name.Value, tokenPos(name), p.docBefore(idx))

	case remaining > 2 &&
		p.tokens[idx+1].Type == lexer.TOKEN_ANGLE &&
		p.tokens[idx+2].Type == lexer.TOKEN_IDENTIFIER:
		// The captured token's display value gets the generic parameter
		// appended, but the registration is keyed by the Angle token's
		// own value and position.
		captured := p.tokens[idx+2]
		captured.Value += "<" + p.tokens[idx+1].Value + ">"
		node.Tokens = append(node.Tokens, captured)
		node.Type = VariableDeceleration
		p.pos += 2
		angle := p.tokens[idx+1]
		p.registry.AddVar(angle.Value, tokenPos(angle), p.docBefore(idx))

	case remaining > 2 &&
		p.tokens[idx+1].Value == "*" &&
		p.tokens[idx+2].Type == lexer.TOKEN_IDENTIFIER:
		node.Tokens = append(node.Tokens, p.tokens[idx+2])
		node.Type = PointerDeceleration
		p.pos += 2
		name := p.tokens[idx+2]
		p.registry.AddVar(name.Value, tokenPos(name), p.docBefore(idx))

	default:
		node.Tokens = append(node.Tokens, tok)
	}
}

// docBefore returns the documentation string for a declaration anchored
// at idx: the text of the comment token immediately preceding the rule's
// anchor, or "" when the previous token is not a comment.
func (p *Parser) docBefore(idx int) string {
	if idx > 0 && p.tokens[idx-1].Type == lexer.TOKEN_COMMENT {
		return p.tokens[idx-1].Value
	}
	return ""
}

func tokenPos(t lexer.Token) symbols.Position {
	return symbols.Position{Line: t.Line, Column: t.Column}
}
