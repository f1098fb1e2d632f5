package transform

import (
	"fmt"

	"github.com/brdgme/markup/pkg/ast"
	"github.com/brdgme/markup/pkg/lines"
)

// Align pads every line of children with spaces to width columns. Lines
// already wider than width are left as they are. Zero-length padding is
// omitted rather than emitted as an empty Text node.
func Align(alignment ast.Alignment, width int, children []ast.Node, players []string) []ast.Node {
	ls := lines.ToLines(Transform(children, players))
	for i, l := range ls {
		ls[i] = alignLine(alignment, width, l)
	}
	return lines.FromLines(ls)
}

func alignLine(alignment ast.Alignment, width int, line []ast.Node) []ast.Node {
	l := lines.Len(line)
	diff := max(width, l) - l
	if diff == 0 {
		return line
	}

	out := make([]ast.Node, 0, len(line)+2)
	switch alignment {
	case ast.Left:
		out = append(out, line...)
		out = append(out, lines.Spaces(diff))
	case ast.Center:
		before := diff / 2
		if before > 0 {
			out = append(out, lines.Spaces(before))
		}
		out = append(out, line...)
		out = append(out, lines.Spaces(diff-before))
	case ast.Right:
		out = append(out, lines.Spaces(diff))
		out = append(out, line...)
	default:
		panic(fmt.Sprintf("transform: unknown alignment %d", alignment))
	}
	return out
}

// Indent prefixes every line of children, including the first, with width
// spaces.
func Indent(width int, children []ast.Node, players []string) []ast.Node {
	ls := lines.ToLines(Transform(children, players))
	if width <= 0 {
		return lines.FromLines(ls)
	}
	for i, l := range ls {
		ls[i] = append([]ast.Node{lines.Spaces(width)}, l...)
	}
	return lines.FromLines(ls)
}
