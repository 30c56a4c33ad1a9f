package parser

import (
	"fmt"
	"strings"

	"github.com/kasd-lang/kasd/pkg/token"
	"github.com/kasd-lang/kasd/pkg/value"
)

// Node is an AST node. The grammar admits exactly two variants: a variable
// declaration and a literal. Nodes own their children; there is no sharing.
type Node interface {
	Pos() token.Position
	node()
}

// VarDecl is a `let <name> : <type> = <literal> ;` declaration.
type VarDecl struct {
	Name     string
	Kind     value.Kind // declared type
	Init     Node
	Position token.Position
}

func (d *VarDecl) Pos() token.Position { return d.Position }
func (d *VarDecl) node()               {}

// Literal is a literal initializer carrying its parsed value.
type Literal struct {
	Value    value.Value
	Position token.Position
}

func (l *Literal) Pos() token.Position { return l.Position }
func (l *Literal) node()               {}

// Dump returns an indented debug rendering of the tree.
func Dump(n Node) string {
	var b strings.Builder
	dump(&b, n, 0)
	return b.String()
}

func dump(b *strings.Builder, n Node, depth int) {
	if n == nil {
		return
	}
	b.WriteString(strings.Repeat("  ", depth))
	switch n := n.(type) {
	case *VarDecl:
		fmt.Fprintf(b, "VariableDeclaration: %s (type: %s)\n", n.Name, n.Kind)
		dump(b, n.Init, depth+1)
	case *Literal:
		fmt.Fprintf(b, "Literal: %s (type: %s)\n", n.Value.Text(), n.Value.Kind)
	}
}
