// Package value defines the runtime value model shared by the parser,
// analyzer and interpreter: a tagged union over null, int, float, bool and
// string with canonical text rendering.
package value

import (
	"strconv"
	"strings"
)

// Kind identifies which variant a Value holds.
type Kind int

const (
	Null Kind = iota
	Int
	Float
	Bool
	String
)

// String returns the kind name as it appears in source and diagnostics.
func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
	case Int:
		return "int"
	case Float:
		return "float"
	case Bool:
		return "bool"
	case String:
		return "string"
	}
	return "unknown"
}

// Value is a tagged union. Only the field matching Kind is meaningful.
// The string payload is always an owned copy; Clone duplicates it so
// copies never alias.
type Value struct {
	Kind Kind

	Int   int64
	Float float64
	Bool  bool
	Str   string
}

// NewNull returns the null value.
func NewNull() Value {
	return Value{Kind: Null}
}

// NewInt returns an int value.
func NewInt(v int64) Value {
	return Value{Kind: Int, Int: v}
}

// NewFloat returns a float value.
func NewFloat(v float64) Value {
	return Value{Kind: Float, Float: v}
}

// NewBool returns a bool value.
func NewBool(v bool) Value {
	return Value{Kind: Bool, Bool: v}
}

// NewString returns a string value owning a copy of v.
func NewString(v string) Value {
	return Value{Kind: String, Str: strings.Clone(v)}
}

// Clone returns a copy of the value with its own string payload.
func (v Value) Clone() Value {
	out := v
	if v.Kind == String {
		out.Str = strings.Clone(v.Str)
	}
	return out
}

// IsNull returns true for the null value.
func (v Value) IsNull() bool {
	return v.Kind == Null
}

// Text returns the canonical textual form of the value:
// null, decimal int, shortest round-tripping float, true/false, or the
// string contents wrapped in double quotes with no escaping.
func (v Value) Text() string {
	switch v.Kind {
	case Null:
		return "null"
	case Int:
		return strconv.FormatInt(v.Int, 10)
	case Float:
		return strconv.FormatFloat(v.Float, 'g', -1, 64)
	case Bool:
		return strconv.FormatBool(v.Bool)
	case String:
		return `"` + v.Str + `"`
	}
	return "unknown"
}
