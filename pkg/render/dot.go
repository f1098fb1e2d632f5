package render

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/brdgme/markup/pkg/ast"
)

// DOT converts a document tree, transformed or not, to a Graphviz digraph
// with one box per node. Directives are drawn dashed so unresolved layout
// stands out. [TreeSVG] lays the graph out.
func DOT(nodes []ast.Node) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontname=monospace];\n")
	buf.WriteString("  root [label=\"document\", shape=ellipse];\n")
	buf.WriteString("\n")

	d := dotWriter{buf: &buf}
	d.nodes("root", nodes)

	buf.WriteString("}\n")
	return buf.String()
}

type dotWriter struct {
	buf  *bytes.Buffer
	next int
}

func (d *dotWriter) nodes(parent string, nodes []ast.Node) {
	for _, n := range nodes {
		id := d.node(n)
		fmt.Fprintf(d.buf, "  %s -> %s;\n", parent, id)
	}
}

func (d *dotWriter) node(n ast.Node) string {
	id := d.id()
	attrs := []string{fmt.Sprintf("label=%q", dotLabel(n))}
	if ast.IsDirective(n) {
		attrs = append(attrs, "style=\"rounded,filled,dashed\"", "fillcolor=lightgrey")
	}
	switch n := n.(type) {
	case ast.Fg:
		attrs = append(attrs, fmt.Sprintf("color=%q", n.Color.Hex()))
	case ast.Bg:
		attrs = append(attrs, fmt.Sprintf("fillcolor=%q", n.Color.Hex()))
	}
	fmt.Fprintf(d.buf, "  %s [%s];\n", id, strings.Join(attrs, ", "))

	switch n := n.(type) {
	case ast.Table:
		for _, row := range n.Rows {
			rowID := d.id()
			fmt.Fprintf(d.buf, "  %s [label=\"row\", shape=plain];\n  %s -> %s;\n", rowID, id, rowID)
			for _, cell := range row {
				cellID := d.id()
				fmt.Fprintf(d.buf, "  %s [label=%q, shape=plain];\n  %s -> %s;\n", cellID, "cell "+cell.Alignment.String(), rowID, cellID)
				d.nodes(cellID, cell.Children)
			}
		}
	case ast.Canvas:
		for _, l := range n.Layers {
			layerID := d.id()
			fmt.Fprintf(d.buf, "  %s [label=%q, shape=plain];\n  %s -> %s;\n", layerID, fmt.Sprintf("layer %d,%d", l.X, l.Y), id, layerID)
			d.nodes(layerID, l.Children)
		}
	default:
		d.nodes(id, ast.Children(n))
	}
	return id
}

func (d *dotWriter) id() string {
	d.next++
	return "n" + strconv.Itoa(d.next)
}

func dotLabel(n ast.Node) string {
	switch n := n.(type) {
	case ast.Text:
		return strconv.Quote(n.Text)
	case ast.Fg:
		return "fg " + n.Color.Hex()
	case ast.Bg:
		return "bg " + n.Color.Hex()
	case ast.Action:
		return "action " + n.Label
	case ast.Player:
		return fmt.Sprintf("player %d", n.Index)
	case ast.Align:
		return fmt.Sprintf("align %s %d", n.Alignment, n.Width)
	case ast.Indent:
		return fmt.Sprintf("indent %d", n.Width)
	default:
		return ast.Kind(n)
	}
}

// TreeSVG lays out the [DOT] graph of nodes with Graphviz and returns it as
// an SVG sized to fill its container. ctx bounds the layout, which can be
// slow for large documents.
func TreeSVG(ctx context.Context, nodes []ast.Node) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("start graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(DOT(nodes)))
	if err != nil {
		return nil, fmt.Errorf("parse tree graph: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("lay out tree graph: %w", err)
	}
	return fluidSVG(buf.Bytes()), nil
}

var (
	svgRootRe = regexp.MustCompile(`<svg\b[^>]*>`)
	svgSizeRe = regexp.MustCompile(`\s(?:width|height)="[^"]*"`)
)

// fluidSVG drops the fixed point size Graphviz puts on the root element.
// The viewBox stays, so the drawing keeps its aspect ratio and scales to
// whatever box it is shown in.
func fluidSVG(svg []byte) []byte {
	loc := svgRootRe.FindIndex(svg)
	if loc == nil {
		return svg
	}
	root := svgSizeRe.ReplaceAll(svg[loc[0]:loc[1]], nil)

	out := make([]byte, 0, len(svg))
	out = append(out, svg[:loc[0]]...)
	out = append(out, root...)
	return append(out, svg[loc[1]:]...)
}
