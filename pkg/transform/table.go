package transform

import (
	"github.com/brdgme/markup/pkg/ast"
	"github.com/brdgme/markup/pkg/lines"
)

// Table lays rows out as fixed-width columns. The result is a list of Align
// nodes separated by newlines, one per cell per line; it still needs a pass
// through Transform, which is how the Table directive uses it.
func Table(rows []ast.Row, players []string) []ast.Node {
	// Measure: cells[r][c] holds the transformed lines of each cell.
	var widths []int
	heights := make([]int, len(rows))
	cells := make([][][][]ast.Node, len(rows))

	for r, row := range rows {
		heights[r] = 1
		cells[r] = make([][][]ast.Node, len(row))
		for c, cell := range row {
			ls := lines.ToLines(Transform(cell.Children, players))
			cells[r][c] = ls
			heights[r] = max(heights[r], len(ls))

			if c >= len(widths) {
				widths = append(widths, 0)
			}
			for _, l := range ls {
				widths[c] = max(widths[c], lines.Len(l))
			}
		}
	}

	// Emit.
	var out []ast.Node
	first := true
	for r, row := range rows {
		for li := 0; li < heights[r]; li++ {
			if !first {
				out = append(out, lines.Newline)
			}
			first = false

			for c, w := range widths {
				if c < len(row) && li < len(cells[r][c]) {
					out = append(out, ast.Align{
						Alignment: row[c].Alignment,
						Width:     w,
						Children:  cells[r][c][li],
					})
					continue
				}
				out = append(out, ast.Align{Alignment: ast.Left, Width: w})
			}
		}
	}
	return out
}
