// Package parser provides lexing and parsing for the KASD declaration
// language.
//
// # Grammar
//
//	program     := declaration EOF
//	declaration := varDecl
//	varDecl     := 'let' IDENT ':' type '=' literal ';'
//	type        := 'int' | 'float' | 'bool' | 'string' | 'null'
//	literal     := INT | FLOAT | STRING | 'true' | 'false' | 'null'
//
// The grammar supports exactly one top-level statement per compilation unit
// by construction. Parsing is strictly sequential and non-recovering: the
// first failure records a diagnostic in the shared slot and aborts with no
// AST.
package parser

import (
	"github.com/kasd-lang/kasd/pkg/diag"
	"github.com/kasd-lang/kasd/pkg/token"
	"github.com/kasd-lang/kasd/pkg/value"
)

// Parser is a recursive-descent parser with one token of lookahead and one
// token of trailing context.
type Parser struct {
	lexer    *Lexer
	source   string
	current  token.Token
	previous token.Token
	slot     *diag.Slot
	hadError bool
}

// New creates a parser for the given source, reporting errors into slot.
func New(source string, slot *diag.Slot) *Parser {
	p := &Parser{
		lexer:  NewLexer(source, slot),
		source: source,
		slot:   slot,
	}
	p.advance() // prime current
	return p
}

// Parse parses source into an AST, or returns nil with a diagnostic in slot.
func Parse(source string, slot *diag.Slot) Node {
	return New(source, slot).Parse()
}

// Parse parses the single permitted declaration and requires EOF after it.
func (p *Parser) Parse() Node {
	node := p.parseDeclaration()

	if !p.check(token.EOF) && !p.hadError {
		p.errorAtCurrent("Expected end of file.")
	}
	if p.hadError {
		return nil
	}
	return node
}

// advance pulls the next token from the lexer.
func (p *Parser) advance() {
	p.previous = p.current
	p.current = p.lexer.NextToken()
}

// check returns true if the current token is of the given type.
func (p *Parser) check(t token.Type) bool {
	return p.current.Type == t
}

// consume advances past the current token if it matches, otherwise records a
// syntax diagnostic at its span and fails without advancing.
func (p *Parser) consume(t token.Type, message string) bool {
	if p.check(t) {
		p.advance()
		return true
	}
	p.errorAtCurrent(message)
	return false
}

// errorAtCurrent records a syntax diagnostic covering the current token's
// lexeme span. The slot's first-error-wins rule keeps an earlier lexical
// error authoritative.
func (p *Parser) errorAtCurrent(message string) {
	p.slot.SetWithSource(diag.Syntax, p.current.Pos, message, p.source, len(p.current.Literal))
	p.hadError = true
}

func (p *Parser) parseDeclaration() Node {
	// Only variable declarations for now.
	return p.parseVarDecl()
}

func (p *Parser) parseVarDecl() Node {
	if !p.consume(token.LET, "Expected 'let' keyword.") {
		return nil
	}
	if !p.consume(token.IDENT, "Expected variable name.") {
		return nil
	}
	name := p.previous

	if !p.consume(token.COLON, "Expected ':' after variable name.") {
		return nil
	}

	kind, ok := p.parseType()
	if !ok {
		return nil
	}

	if !p.consume(token.ASSIGN, "Expected '=' after type.") {
		return nil
	}

	init := p.parseLiteral()
	if init == nil {
		return nil
	}

	if !p.consume(token.SEMICOLON, "Expected ';' after variable declaration.") {
		return nil
	}

	return &VarDecl{
		Name:     name.Literal,
		Kind:     kind,
		Init:     init,
		Position: name.Pos,
	}
}

// parseType consumes a type name. The null keyword serves both the type and
// literal positions.
func (p *Parser) parseType() (value.Kind, bool) {
	var kind value.Kind
	switch p.current.Type {
	case token.INT_TYPE:
		kind = value.Int
	case token.FLOAT_TYPE:
		kind = value.Float
	case token.BOOL_TYPE:
		kind = value.Bool
	case token.STRING_TYPE:
		kind = value.String
	case token.NULL:
		kind = value.Null
	default:
		p.errorAtCurrent("Expected type (int, float, bool, string, or null).")
		return value.Null, false
	}
	p.advance()
	return kind, true
}

func (p *Parser) parseLiteral() Node {
	var v value.Value
	switch tok := p.current; tok.Type {
	case token.INT:
		v = value.NewInt(tok.Int)
	case token.FLOAT:
		v = value.NewFloat(tok.Float)
	case token.STRING:
		v = value.NewString(tok.Str)
	case token.TRUE:
		v = value.NewBool(true)
	case token.FALSE:
		v = value.NewBool(false)
	case token.NULL:
		v = value.NewNull()
	default:
		p.errorAtCurrent("Expected literal value.")
		return nil
	}

	node := &Literal{Value: v, Position: p.current.Pos}
	p.advance()
	return node
}
