// Package ast defines the markup document tree.
//
// # Overview
//
// A document is a slice of [Node] values. Node is a closed sum type: the only
// implementations are the node types declared in this package, and every
// traversal in the module switches over them exhaustively, panicking on an
// unknown type.
//
// Nodes fall into two groups:
//
//   - Primitive nodes ([Text], [Fg], [Bg], [Bold], [Action]) carry text and
//     styling. Renderers understand only these.
//   - Directives ([Player], [Table], [Align], [Indent], [Canvas], [Group])
//     describe layout. The transform package rewrites them into primitives.
//
// # Ownership
//
// Trees are values. Nothing in the module mutates a node after construction;
// every stage builds new slices, so a subtree may safely be measured in one
// pass and consumed in another.
//
// # Example
//
//	doc := []ast.Node{
//	    ast.Text{Text: "Turn of "},
//	    ast.Player{Index: 0},
//	    ast.Table{Rows: []ast.Row{{
//	        {Alignment: ast.Right, Children: []ast.Node{ast.Text{Text: "score"}}},
//	    }}},
//	}
package ast
