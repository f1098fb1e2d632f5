package lines

import (
	"fmt"

	"github.com/brdgme/markup/pkg/ast"
)

// Slice extracts the part of nodes covering rendered character offsets
// [start, end), keeping the wrapper structure around the selected text.
//
// Offsets are rune offsets, so multi-byte characters are never split.
// Nodes wholly before start are skipped, traversal stops once end is
// reached, and wrappers that end up with no selected text are dropped.
// An empty or inverted range yields nil. nodes must be transformed.
func Slice(nodes []ast.Node, start, end int) []ast.Node {
	if start < 0 {
		start = 0
	}
	var out []ast.Node
	for _, n := range nodes {
		if start >= end {
			break
		}
		l := nodeLen(n)
		if start >= l {
			start -= l
			end -= l
			continue
		}

		switch n := n.(type) {
		case ast.Text:
			runes := []rune(n.Text)
			out = append(out, ast.Text{Text: string(runes[start:min(end, l)])})
		case ast.Fg, ast.Bg, ast.Bold, ast.Action:
			out = append(out, rewrap(n, Slice(ast.Children(n), start, end)))
		default:
			panic(fmt.Sprintf("lines: cannot slice untransformed node %T", n))
		}

		start = 0
		end -= l
	}
	return out
}
