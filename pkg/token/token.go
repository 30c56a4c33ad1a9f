// Package token defines the lexical tokens of the KASD declaration language.
package token

import "fmt"

// Type represents the type of a lexical token.
type Type int

const (
	// Special tokens
	EOF Type = iota

	// Literals
	IDENT  // x, my_var
	INT    // 42
	FLOAT  // 1.5
	STRING // "hello"

	// Keywords
	LET
	TRUE
	FALSE
	NULL // doubles as the null type name in type position

	// Type names
	INT_TYPE
	FLOAT_TYPE
	BOOL_TYPE
	STRING_TYPE

	// Punctuation
	COLON     // :
	ASSIGN    // =
	SEMICOLON // ;
)

// String returns a human-readable representation of the token type.
func (t Type) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TOKEN(%d)", t)
}

var tokenNames = map[Type]string{
	EOF: "EOF",

	IDENT:  "IDENTIFIER",
	INT:    "INT",
	FLOAT:  "FLOAT",
	STRING: "STRING",

	LET:   "let",
	TRUE:  "true",
	FALSE: "false",
	NULL:  "null",

	INT_TYPE:    "int",
	FLOAT_TYPE:  "float",
	BOOL_TYPE:   "bool",
	STRING_TYPE: "string",

	COLON:     ":",
	ASSIGN:    "=",
	SEMICOLON: ";",
}

// keywords maps keyword lexemes to their token types. Lookup is exact and
// case sensitive: "Let" is an identifier, not a keyword.
var keywords = map[string]Type{
	"let":    LET,
	"true":   TRUE,
	"false":  FALSE,
	"null":   NULL,
	"int":    INT_TYPE,
	"float":  FLOAT_TYPE,
	"bool":   BOOL_TYPE,
	"string": STRING_TYPE,
}

// LookupIdent returns the token type for the given identifier.
// If the identifier is a keyword, the keyword token type is returned.
// Otherwise, IDENT is returned.
func LookupIdent(ident string) Type {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return IDENT
}

// IsKeyword returns true if the token type is a keyword or type name.
func IsKeyword(t Type) bool {
	return t >= LET && t <= STRING_TYPE
}

// Keywords returns every keyword lexeme, for completion and diagnostics.
func Keywords() []string {
	out := make([]string, 0, len(keywords))
	for kw := range keywords {
		out = append(out, kw)
	}
	return out
}

// Token represents a lexical token with position information.
// INT, FLOAT and STRING tokens additionally carry their parsed payload;
// the Str payload is an owned copy of the string contents without quotes.
type Token struct {
	Type    Type
	Literal string // lexeme span in the source
	Pos     Position

	Int   int64
	Float float64
	Str   string
}
