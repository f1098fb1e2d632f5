package render

import (
	"fmt"
	"strings"

	"github.com/brdgme/markup/pkg/ast"
	"github.com/brdgme/markup/pkg/color"
)

// ANSI renders a transformed tree with terminal escape sequences. The
// output starts by resetting the terminal to its default style.
func ANSI(nodes []ast.Node) string {
	var b strings.Builder
	style := color.DefaultStyle()
	b.WriteString(style.ANSI())
	writeANSI(&b, nodes, style)
	return b.String()
}

func writeANSI(b *strings.Builder, nodes []ast.Node, parent color.Style) {
	for _, n := range nodes {
		switch n := n.(type) {
		case ast.Text:
			b.WriteString(n.Text)
		case ast.Fg:
			writeStyled(b, n.Children, parent, parent.WithFg(n.Color))
		case ast.Bg:
			writeStyled(b, n.Children, parent, parent.WithBg(n.Color))
		case ast.Bold:
			writeStyled(b, n.Children, parent, parent.WithBold())
		case ast.Action:
			writeANSI(b, n.Children, parent)
		default:
			panic(fmt.Sprintf("render: untransformed node %T", n))
		}
	}
}

func writeStyled(b *strings.Builder, children []ast.Node, parent, style color.Style) {
	b.WriteString(style.ANSI())
	writeANSI(b, children, style)
	b.WriteString(parent.ANSI())
}
