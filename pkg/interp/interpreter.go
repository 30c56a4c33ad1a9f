// Package interp implements the tree-walking evaluator and its environment.
package interp

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/kasd-lang/kasd/pkg/diag"
	"github.com/kasd-lang/kasd/pkg/parser"
	"github.com/kasd-lang/kasd/pkg/value"
)

// Interpreter evaluates an AST against its environment. In echo mode each
// declaration additionally renders `<name>: <type> = <value>` to the primary
// output. The environment lives as long as the interpreter.
type Interpreter struct {
	env    *Environment
	echo   bool
	out    io.Writer
	slot   *diag.Slot
	logger *slog.Logger
}

// New creates an interpreter with a fresh environment. If logger is nil, a
// discard logger is used.
func New(out io.Writer, echo bool, slot *diag.Slot, logger *slog.Logger) *Interpreter {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Interpreter{
		env:    NewEnvironment(),
		echo:   echo,
		out:    out,
		slot:   slot,
		logger: logger,
	}
}

// Env returns the interpreter's environment.
func (i *Interpreter) Env() *Environment {
	return i.env
}

// Eval evaluates the AST and returns the statement's result. A nil AST
// yields null without touching the environment.
func (i *Interpreter) Eval(node parser.Node) value.Value {
	switch n := node.(type) {
	case nil:
		return value.NewNull()
	case *parser.VarDecl:
		return i.evalVarDecl(n)
	case *parser.Literal:
		return n.Value.Clone()
	default:
		i.slot.Set(diag.Internal, node.Pos(), "Unknown node type in interpreter")
		return value.NewNull()
	}
}

// evalVarDecl binds the initializer's value into the environment and returns
// it. The value keeps the tag the initializer produced; a null initializer
// of a non-null declared type stays null, it is not coerced to the declared
// type's zero value.
func (i *Interpreter) evalVarDecl(decl *parser.VarDecl) value.Value {
	i.logger.Debug("evaluating variable declaration", "name", decl.Name)

	v := i.Eval(decl.Init)
	i.env.Define(decl.Name, v)

	if i.echo {
		fmt.Fprintf(i.out, "%s: %s = %s\n", decl.Name, decl.Kind, v.Text())
	}
	return v
}
