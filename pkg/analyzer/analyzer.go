// Package analyzer implements the semantic pass: a single visit over the AST
// checking declarations against a pass-local symbol table.
package analyzer

import (
	"fmt"

	"github.com/kasd-lang/kasd/pkg/diag"
	"github.com/kasd-lang/kasd/pkg/parser"
	"github.com/kasd-lang/kasd/pkg/value"
)

// Analyzer checks one compilation unit. The symbol table is built fresh for
// each pass and discarded with the analyzer; it is never persisted.
type Analyzer struct {
	symbols map[string]value.Kind
	slot    *diag.Slot
}

// New creates an analyzer reporting errors into slot.
func New(slot *diag.Slot) *Analyzer {
	return &Analyzer{
		symbols: make(map[string]value.Kind),
		slot:    slot,
	}
}

// Analyze visits the AST and returns true if the unit is semantically valid.
// A nil AST is trivially valid.
func (a *Analyzer) Analyze(node parser.Node) bool {
	switch n := node.(type) {
	case nil:
		return true
	case *parser.VarDecl:
		return a.analyzeVarDecl(n)
	case *parser.Literal:
		// Literals are always valid on their own.
		return true
	default:
		a.slot.Set(diag.Internal, node.Pos(), "Unknown node type in semantic analysis")
		return false
	}
}

func (a *Analyzer) analyzeVarDecl(decl *parser.VarDecl) bool {
	// The one-statement grammar cannot currently reach this branch; it is the
	// hook for a multi-statement extension.
	if _, exists := a.symbols[decl.Name]; exists {
		a.slot.Set(diag.Name, decl.Pos(), "Variable already declared")
		return false
	}
	a.symbols[decl.Name] = decl.Kind

	if decl.Init == nil {
		return true
	}

	initKind := nodeKind(decl.Init)
	if !compatible(decl.Kind, initKind) {
		a.slot.Set(diag.Type, decl.Init.Pos(), fmt.Sprintf(
			"Type mismatch: cannot assign %s to variable of type %s",
			initKind, decl.Kind))
		return false
	}
	return true
}

// compatible reports whether an initializer of kind actual may be bound to a
// variable declared as expected: identical kinds always; a null literal with
// any declared kind; an int literal widens to a float declaration.
func compatible(expected, actual value.Kind) bool {
	if expected == actual {
		return true
	}
	if actual == value.Null {
		return true
	}
	return expected == value.Float && actual == value.Int
}

// nodeKind returns the value kind a node produces.
func nodeKind(node parser.Node) value.Kind {
	switch n := node.(type) {
	case *parser.Literal:
		return n.Value.Kind
	case *parser.VarDecl:
		return n.Kind
	default:
		return value.Null
	}
}
