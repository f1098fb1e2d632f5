package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Sprint returns a compact single-line description of nodes, e.g.
//
//	"a" b[fg(#f44336)["la"]] player(2)
//
// Every node boundary is preserved, which makes it suitable for comparing
// trees in tests and for debug output.
func Sprint(nodes []Node) string {
	var b strings.Builder
	sprint(&b, nodes)
	return b.String()
}

func sprint(b *strings.Builder, nodes []Node) {
	for i, n := range nodes {
		if i > 0 {
			b.WriteByte(' ')
		}
		sprintNode(b, n)
	}
}

func sprintChildren(b *strings.Builder, children []Node) {
	b.WriteByte('[')
	sprint(b, children)
	b.WriteByte(']')
}

func sprintNode(b *strings.Builder, n Node) {
	switch n := n.(type) {
	case Text:
		b.WriteString(strconv.Quote(n.Text))
	case Fg:
		fmt.Fprintf(b, "fg(%s)", n.Color)
		sprintChildren(b, n.Children)
	case Bg:
		fmt.Fprintf(b, "bg(%s)", n.Color)
		sprintChildren(b, n.Children)
	case Bold:
		b.WriteString("b")
		sprintChildren(b, n.Children)
	case Action:
		fmt.Fprintf(b, "action(%q)", n.Label)
		sprintChildren(b, n.Children)
	case Player:
		fmt.Fprintf(b, "player(%d)", n.Index)
	case Table:
		b.WriteString("table[")
		for i, row := range n.Rows {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString("row[")
			for j, cell := range row {
				if j > 0 {
					b.WriteByte(' ')
				}
				fmt.Fprintf(b, "cell(%s)", cell.Alignment)
				sprintChildren(b, cell.Children)
			}
			b.WriteByte(']')
		}
		b.WriteByte(']')
	case Align:
		fmt.Fprintf(b, "align(%s,%d)", n.Alignment, n.Width)
		sprintChildren(b, n.Children)
	case Indent:
		fmt.Fprintf(b, "indent(%d)", n.Width)
		sprintChildren(b, n.Children)
	case Canvas:
		b.WriteString("canvas[")
		for i, l := range n.Layers {
			if i > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(b, "layer(%d,%d)", l.X, l.Y)
			sprintChildren(b, l.Children)
		}
		b.WriteByte(']')
	case Group:
		b.WriteString("group")
		sprintChildren(b, n.Children)
	default:
		panic(fmt.Sprintf("ast: unknown node type %T", n))
	}
}
