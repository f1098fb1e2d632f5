// Package transform resolves layout directives into a flat tree of styled
// text that any renderer can consume.
//
// # Overview
//
// A document produced by the markup parser mixes two kinds of node.
// Primitives ([ast.Text], [ast.Fg], [ast.Bg], [ast.Bold], [ast.Action]) say
// what text looks like. Directives ([ast.Player], [ast.Table], [ast.Align],
// [ast.Indent], [ast.Canvas], [ast.Group]) say where it goes. [Transform]
// rewrites every directive, at any depth, until only primitives remain:
//
//	Before: table[row[cell(left)["a"] cell(right)[player(0)]]]
//	After:  "a" b[fg(#4caf50)["• mick"]]
//
// # Player Resolution
//
// [Player] replaces a player reference with the player's name in bold and
// in their palette colour. Indices outside the roster fall back to
// "Player N" instead of failing.
//
// # Tables
//
// [Table] lays rows out in two passes. The first measures every cell after
// transforming it, giving each column the width of its widest line and
// each row the height of its tallest cell. The second emits every line of
// every row, padding each cell with an [ast.Align] node. Rows with fewer
// cells than the widest row are filled with empty left-aligned cells, so
// columns always line up.
//
// # Alignment and Indentation
//
// [Align] pads each line of its content to a fixed width. Content wider
// than the width is never truncated. Centered content puts the odd space
// after the text. [Indent] prefixes each line with spaces.
//
// # Canvas
//
// [Canvas] composites layers onto a 2D character plane. Each layer is
// rendered independently and drawn at its (x, y) offset, later layers over
// earlier ones. Where a new line overlaps text already on the row, the
// covered characters are cut out of the older fragment with [lines.Slice],
// which keeps the older fragment's styling on whatever survives. Gaps
// between fragments become spaces.
//
// # Widths
//
// All widths are counted in runes and every rune is assumed to fill one
// terminal column. East Asian wide characters and combining marks will
// misalign tables and canvases.
//
// # Concurrency
//
// Every function here is pure: inputs are never modified and no state is
// shared between calls, so documents may be transformed in parallel.
package transform
