package render

import (
	"fmt"
	"strings"

	"github.com/brdgme/markup/pkg/ast"
)

// HTMLContainerStyle is the inline style of the div wrapping HTML output.
const HTMLContainerStyle = "background-color:#ffffff;color:#000000;white-space:pre-wrap;font-family:monospace;"

var htmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// HTML renders a transformed tree as an HTML fragment: one container div
// holding spans for colours and b elements for bold text.
func HTML(nodes []ast.Node) string {
	var b strings.Builder
	b.WriteString(`<div style="` + HTMLContainerStyle + `">`)
	writeHTML(&b, nodes)
	b.WriteString("</div>")
	return b.String()
}

func writeHTML(b *strings.Builder, nodes []ast.Node) {
	for _, n := range nodes {
		switch n := n.(type) {
		case ast.Text:
			htmlEscaper.WriteString(b, n.Text)
		case ast.Fg:
			fmt.Fprintf(b, `<span style="color:%s;">`, n.Color.Hex())
			writeHTML(b, n.Children)
			b.WriteString("</span>")
		case ast.Bg:
			fmt.Fprintf(b, `<span style="background-color:%s;">`, n.Color.Hex())
			writeHTML(b, n.Children)
			b.WriteString("</span>")
		case ast.Bold:
			b.WriteString("<b>")
			writeHTML(b, n.Children)
			b.WriteString("</b>")
		case ast.Action:
			writeHTML(b, n.Children)
		default:
			panic(fmt.Sprintf("render: untransformed node %T", n))
		}
	}
}
