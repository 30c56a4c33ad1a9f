package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kasd-lang/kasd/pkg/diag"
	"github.com/kasd-lang/kasd/pkg/token"
)

// charClass drives O(1) per-byte dispatch in the lexer.
type charClass uint8

const (
	classOther charClass = iota
	classSpace
	classAlpha
	classDigit
	classQuote
	classNewline
)

// charClasses is computed once at package initialization; there is no hidden
// first-use guard.
var charClasses = buildClassTable()

func buildClassTable() [256]charClass {
	var t [256]charClass
	for i := range t {
		switch c := byte(i); {
		case c == '\n':
			t[i] = classNewline
		case c == ' ' || c == '\t' || c == '\r' || c == '\v' || c == '\f':
			t[i] = classSpace
		case c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z'):
			t[i] = classAlpha
		case c >= '0' && c <= '9':
			t[i] = classDigit
		case c == '"':
			t[i] = classQuote
		}
	}
	return t
}

// Lexer tokenizes KASD input on demand. Tokens are pulled one at a time via
// NextToken; no token slice is ever materialized. Lexical errors are recorded
// in the shared diagnostic slot and surface as EOF tokens so the parser stops
// cleanly instead of looping.
type Lexer struct {
	input   string
	pos     int  // current position in input
	readPos int  // reading position (after current char)
	ch      byte // current char under examination
	line    int  // current line number (1-based)
	col     int  // current column number (1-based)

	slot *diag.Slot
}

// NewLexer creates a new Lexer for the given input, reporting lexical errors
// into slot.
func NewLexer(input string, slot *diag.Slot) *Lexer {
	l := &Lexer{
		input: input,
		line:  1,
		col:   0,
		slot:  slot,
	}
	l.readChar()
	return l
}

// readChar advances to the next character.
func (l *Lexer) readChar() {
	if l.readPos >= len(l.input) {
		l.ch = 0 // ASCII NUL = EOF
	} else {
		l.ch = l.input[l.readPos]
	}
	l.pos = l.readPos
	l.readPos++

	if l.ch == '\n' {
		l.line++
		l.col = 0
	} else {
		l.col++
	}
}

// peekChar returns the next character without advancing.
func (l *Lexer) peekChar() byte {
	if l.readPos >= len(l.input) {
		return 0
	}
	return l.input[l.readPos]
}

// currentPos returns the current position.
func (l *Lexer) currentPos() token.Position {
	return token.Position{
		Line:   l.line,
		Column: l.col,
		Offset: l.pos,
	}
}

// NextToken returns the next token. After the end of input it returns an EOF
// token for every subsequent call.
func (l *Lexer) NextToken() token.Token {
	l.skipWhitespace()

	pos := l.currentPos()

	if l.ch == 0 {
		return token.Token{Type: token.EOF, Pos: pos}
	}

	switch charClasses[l.ch] {
	case classAlpha:
		return l.lexIdentifier(pos)
	case classDigit:
		return l.lexNumber(pos)
	case classQuote:
		return l.lexString(pos)
	}

	ch := l.ch
	l.readChar()

	switch ch {
	case ':':
		return token.Token{Type: token.COLON, Literal: ":", Pos: pos}
	case '=':
		return token.Token{Type: token.ASSIGN, Literal: "=", Pos: pos}
	case ';':
		return token.Token{Type: token.SEMICOLON, Literal: ";", Pos: pos}
	}

	return l.errorToken(pos, 1, fmt.Sprintf("Unexpected character: '%c'", ch))
}

// skipWhitespace skips spaces and newlines before a token. Line accounting
// happens in readChar.
func (l *Lexer) skipWhitespace() {
	for charClasses[l.ch] == classSpace || charClasses[l.ch] == classNewline {
		l.readChar()
	}
}

// lexIdentifier reads an identifier or keyword.
func (l *Lexer) lexIdentifier(pos token.Position) token.Token {
	start := l.pos
	for charClasses[l.ch] == classAlpha || charClasses[l.ch] == classDigit {
		l.readChar()
	}
	lit := l.input[start:l.pos]
	return token.Token{Type: token.LookupIdent(lit), Literal: lit, Pos: pos}
}

// lexNumber reads an integer or float literal and parses its payload from
// the same lexeme span, base 10. Signs are not part of the grammar.
func (l *Lexer) lexNumber(pos token.Position) token.Token {
	start := l.pos
	typ := token.INT

	for charClasses[l.ch] == classDigit {
		l.readChar()
	}

	if l.ch == '.' && charClasses[l.peekChar()] == classDigit {
		typ = token.FLOAT
		l.readChar() // consume '.'
		for charClasses[l.ch] == classDigit {
			l.readChar()
		}
	}

	tok := token.Token{Type: typ, Literal: l.input[start:l.pos], Pos: pos}
	if typ == token.INT {
		tok.Int, _ = strconv.ParseInt(tok.Literal, 10, 64)
	} else {
		tok.Float, _ = strconv.ParseFloat(tok.Literal, 64)
	}
	return tok
}

// lexString reads a double-quoted string literal. Contents are copied
// verbatim; there is no escape processing. Newlines inside the literal are
// legal and advance the line counter.
func (l *Lexer) lexString(pos token.Position) token.Token {
	l.readChar() // skip opening quote

	start := l.pos
	for l.ch != '"' && l.ch != 0 {
		l.readChar()
	}

	if l.ch == 0 {
		return l.errorToken(pos, l.pos-pos.Offset, "Unterminated string.")
	}

	content := l.input[start:l.pos]
	l.readChar() // skip closing quote

	return token.Token{
		Type:    token.STRING,
		Literal: l.input[pos.Offset:l.pos],
		Pos:     pos,
		Str:     strings.Clone(content),
	}
}

// errorToken records a syntax diagnostic spanning length bytes from pos and
// returns an EOF-equivalent token.
func (l *Lexer) errorToken(pos token.Position, length int, message string) token.Token {
	l.slot.SetWithSource(diag.Syntax, pos, message, l.input, length)
	return token.Token{Type: token.EOF, Literal: message, Pos: pos}
}
