package ast

import "fmt"

// Children returns the immediate child nodes of n.
//
// Wrapper nodes return their children directly. Table returns the
// concatenation of every cell's children in row-major order and Canvas the
// concatenation of every layer's children. Leaves return nil.
//
// The result aliases n's storage and must not be modified.
func Children(n Node) []Node {
	switch n := n.(type) {
	case Text, Player:
		return nil
	case Fg:
		return n.Children
	case Bg:
		return n.Children
	case Bold:
		return n.Children
	case Action:
		return n.Children
	case Align:
		return n.Children
	case Indent:
		return n.Children
	case Group:
		return n.Children
	case Table:
		var out []Node
		for _, row := range n.Rows {
			for _, cell := range row {
				out = append(out, cell.Children...)
			}
		}
		return out
	case Canvas:
		var out []Node
		for _, l := range n.Layers {
			out = append(out, l.Children...)
		}
		return out
	default:
		panic(fmt.Sprintf("ast: unknown node type %T", n))
	}
}

// IsDirective reports whether n is a layout directive that must be
// transformed before rendering.
func IsDirective(n Node) bool {
	switch n.(type) {
	case Player, Table, Align, Indent, Canvas, Group:
		return true
	case Text, Fg, Bg, Bold, Action:
		return false
	default:
		panic(fmt.Sprintf("ast: unknown node type %T", n))
	}
}

// IsPrimitive reports whether n is a styling node a renderer can consume.
func IsPrimitive(n Node) bool {
	return !IsDirective(n)
}

// Walk calls fn for every node in nodes, depth-first in document order,
// passing the nesting depth (0 for the top level). If fn returns false the
// node's children are skipped.
func Walk(nodes []Node, fn func(n Node, depth int) bool) {
	walk(nodes, 0, fn)
}

func walk(nodes []Node, depth int, fn func(Node, int) bool) {
	for _, n := range nodes {
		if fn(n, depth) {
			walk(Children(n), depth+1, fn)
		}
	}
}

// Count returns the total number of nodes in the tree.
func Count(nodes []Node) int {
	total := 0
	Walk(nodes, func(Node, int) bool {
		total++
		return true
	})
	return total
}

// Kind returns the lower-case markup name of n's type, e.g. "fg" or "table".
func Kind(n Node) string {
	switch n.(type) {
	case Text:
		return "text"
	case Fg:
		return "fg"
	case Bg:
		return "bg"
	case Bold:
		return "b"
	case Action:
		return "action"
	case Player:
		return "player"
	case Table:
		return "table"
	case Align:
		return "align"
	case Indent:
		return "indent"
	case Canvas:
		return "canvas"
	case Group:
		return "group"
	default:
		panic(fmt.Sprintf("ast: unknown node type %T", n))
	}
}
