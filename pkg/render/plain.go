package render

import (
	"fmt"
	"strings"

	"github.com/brdgme/markup/pkg/ast"
)

// Plain renders only the text of a transformed tree.
func Plain(nodes []ast.Node) string {
	var b strings.Builder
	writePlain(&b, nodes)
	return b.String()
}

func writePlain(b *strings.Builder, nodes []ast.Node) {
	for _, n := range nodes {
		switch n := n.(type) {
		case ast.Text:
			b.WriteString(n.Text)
		case ast.Fg, ast.Bg, ast.Bold, ast.Action:
			writePlain(b, ast.Children(n))
		default:
			panic(fmt.Sprintf("render: untransformed node %T", n))
		}
	}
}
