// Package render turns transformed markup documents into output text.
//
// # Overview
//
// Renderers consume the flat trees produced by [transform.Transform]: only
// Text, Fg, Bg, Bold and Action nodes. Each is a single recursive walk:
//
//   - [ANSI]: true-colour terminal escape sequences
//   - [HTML]: spans inside one monospace container div
//   - [Plain]: text only, all styling discarded
//   - [JSON]: the node structure itself, for clients that want action
//     regions or their own styling
//
// A directive reaching a renderer means the tree was never transformed.
// That is a programming error, so renderers panic rather than return an
// error.
//
// [Render] is the usual entry point: it transforms a parsed document for a
// roster of players and dispatches on [Format].
//
//	out, err := render.Render(render.FormatANSI, nodes, []string{"mick", "steve"})
//
// # Terminal Output
//
// [ANSI] threads the current [color.Style] down the recursion. Entering a
// wrapper emits the merged style; leaving it re-emits the parent's style.
// Every style sequence starts with a reset, so nothing leaks between
// siblings.
//
// # Debug Output
//
// [DOT] draws any tree, transformed or not, as a Graphviz digraph and
// [TreeSVG] lays that graph out as SVG.
//
//	dot := render.DOT(nodes)
//	svg, err := render.TreeSVG(ctx, nodes)
//
// [transform.Transform]: github.com/brdgme/markup/pkg/transform.Transform
package render
