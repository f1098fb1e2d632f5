package transform

import (
	"fmt"

	"github.com/brdgme/markup/pkg/ast"
)

// Transform resolves every directive in nodes, returning a tree that holds
// only Text, Fg, Bg, Bold and Action nodes at any depth. players supplies
// the display names for Player nodes.
//
// Nodes are processed left to right from a work stack. A Group is replaced
// in place by its children. A Table's expansion is pushed back onto the
// stack so the Align cells it produces are resolved by the same loop. The
// other directives expand to already transformed output.
func Transform(nodes []ast.Node, players []string) []ast.Node {
	stack := make([]ast.Node, 0, len(nodes))
	stack = pushReversed(stack, nodes)

	var out []ast.Node
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch n := n.(type) {
		case ast.Text:
			out = append(out, n)
		case ast.Fg:
			out = append(out, ast.Fg{Color: n.Color, Children: Transform(n.Children, players)})
		case ast.Bg:
			out = append(out, ast.Bg{Color: n.Color, Children: Transform(n.Children, players)})
		case ast.Bold:
			out = append(out, ast.Bold{Children: Transform(n.Children, players)})
		case ast.Action:
			out = append(out, ast.Action{Label: n.Label, Children: Transform(n.Children, players)})
		case ast.Group:
			stack = pushReversed(stack, n.Children)
		case ast.Table:
			stack = pushReversed(stack, Table(n.Rows, players))
		case ast.Player:
			out = append(out, Player(n.Index, players)...)
		case ast.Align:
			out = append(out, Align(n.Alignment, n.Width, n.Children, players)...)
		case ast.Indent:
			out = append(out, Indent(n.Width, n.Children, players)...)
		case ast.Canvas:
			out = append(out, Canvas(n.Layers, players)...)
		default:
			panic(fmt.Sprintf("transform: unknown node type %T", n))
		}
	}
	return out
}

// pushReversed pushes nodes so that nodes[0] is popped first.
func pushReversed(stack, nodes []ast.Node) []ast.Node {
	for i := len(nodes) - 1; i >= 0; i-- {
		stack = append(stack, nodes[i])
	}
	return stack
}
