package transform

import (
	"sort"

	"github.com/brdgme/markup/pkg/ast"
	"github.com/brdgme/markup/pkg/lines"
)

// fragment is a run of styled text placed at column x of a canvas row.
type fragment struct {
	x     int
	width int
	nodes []ast.Node
}

func (f fragment) end() int { return f.x + f.width }

// Canvas composites layers onto a character grid and returns the rows
// joined by newlines. Each layer is transformed on its own and drawn with
// its first line at row Y, column X. Later layers overwrite earlier ones
// character by character; whatever is left of an overwritten fragment
// keeps its styling.
func Canvas(layers []ast.Layer, players []string) []ast.Node {
	var rows [][]fragment

	for _, layer := range layers {
		x, y := max(layer.X, 0), max(layer.Y, 0)
		ls := lines.ToLines(Transform(layer.Children, players))
		for len(rows) < y+len(ls) {
			rows = append(rows, nil)
		}

		for i, l := range ls {
			f := fragment{x: x, width: lines.Len(l), nodes: l}
			rows[y+i] = overlay(rows[y+i], f)
		}
	}

	out := make([][]ast.Node, len(rows))
	for i, row := range rows {
		out[i] = flatten(row)
	}
	if len(out) == 0 {
		return nil
	}
	return lines.FromLines(out)
}

// overlay draws f over row. Fragments f fully covers are dropped and
// partially covered ones are cut down to the parts outside f.
func overlay(row []fragment, f fragment) []fragment {
	next := make([]fragment, 0, len(row)+2)
	for _, e := range row {
		switch {
		case e.end() <= f.x || e.x >= f.end():
			next = append(next, e)
		case e.x >= f.x && e.end() <= f.end():
			// Hidden.
		default:
			if e.x < f.x {
				w := f.x - e.x
				next = append(next, fragment{x: e.x, width: w, nodes: lines.Slice(e.nodes, 0, w)})
			}
			if e.end() > f.end() {
				from := f.end() - e.x
				next = append(next, fragment{
					x:     f.end(),
					width: e.width - from,
					nodes: lines.Slice(e.nodes, from, e.width),
				})
			}
		}
	}
	return append(next, f)
}

// flatten lays a row's fragments out left to right, filling gaps with
// spaces. An empty fragment still reaches its column, so an empty layer
// line at x renders as x spaces.
func flatten(row []fragment) []ast.Node {
	sort.SliceStable(row, func(i, j int) bool { return row[i].x < row[j].x })

	var out []ast.Node
	lastX := 0
	for _, f := range row {
		if f.x > lastX {
			out = append(out, lines.Spaces(f.x-lastX))
		}
		out = append(out, f.nodes...)
		lastX = max(lastX, f.end())
	}
	return out
}
