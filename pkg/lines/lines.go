// Package lines converts styled node lists between single-list and
// per-line form, measures rendered width and extracts character ranges.
//
// A line is a node list in which no Text leaf contains a newline. Style
// wrappers that span several lines are split into one wrapper per line, so
// each line can be padded, indented or sliced independently.
//
// All widths and offsets count Unicode scalar values (runes), never bytes.
// One rune is assumed to occupy one display column; wide and zero-width
// characters are not accounted for.
package lines

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/brdgme/markup/pkg/ast"
)

// Newline is the separator node placed between lines by FromLines.
var Newline = ast.Text{Text: "\n"}

// Len returns the rendered width of nodes: the rune count of every Text
// leaf, descending through wrappers and untransformed directives alike.
func Len(nodes []ast.Node) int {
	total := 0
	for _, n := range nodes {
		total += nodeLen(n)
	}
	return total
}

func nodeLen(n ast.Node) int {
	if t, ok := n.(ast.Text); ok {
		return utf8.RuneCountInString(t.Text)
	}
	return Len(ast.Children(n))
}

// Spaces returns a Text node of n spaces.
func Spaces(n int) ast.Text {
	if n < 0 {
		n = 0
	}
	return ast.Text{Text: strings.Repeat(" ", n)}
}

// ToLines splits a transformed node list into lines. The result always
// holds at least one (possibly empty) line.
func ToLines(nodes []ast.Node) [][]ast.Node {
	var out [][]ast.Node
	var line []ast.Node

	for _, n := range nodes {
		switch n := n.(type) {
		case ast.Text:
			parts := strings.Split(n.Text, "\n")
			for i, part := range parts {
				if i > 0 {
					out = append(out, line)
					line = nil
				}
				if part != "" {
					line = append(line, ast.Text{Text: part})
				}
			}
		case ast.Fg, ast.Bg, ast.Bold, ast.Action:
			childLines := ToLines(ast.Children(n))
			for i, cl := range childLines {
				if i > 0 {
					out = append(out, line)
					line = nil
				}
				line = append(line, rewrap(n, cl))
			}
		default:
			panic(fmt.Sprintf("lines: cannot split untransformed node %T", n))
		}
	}
	return append(out, line)
}

// FromLines joins lines into a single node list with a Newline between
// consecutive lines.
func FromLines(lines [][]ast.Node) []ast.Node {
	var out []ast.Node
	for i, l := range lines {
		if i > 0 {
			out = append(out, Newline)
		}
		out = append(out, l...)
	}
	return out
}

// rewrap returns a copy of wrapper w holding children instead of its own.
func rewrap(w ast.Node, children []ast.Node) ast.Node {
	switch w := w.(type) {
	case ast.Fg:
		return ast.Fg{Color: w.Color, Children: children}
	case ast.Bg:
		return ast.Bg{Color: w.Color, Children: children}
	case ast.Bold:
		return ast.Bold{Children: children}
	case ast.Action:
		return ast.Action{Label: w.Label, Children: children}
	default:
		panic(fmt.Sprintf("lines: %T is not a style wrapper", w))
	}
}
