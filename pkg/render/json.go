package render

import (
	"encoding/json"
	"fmt"

	"github.com/brdgme/markup/pkg/ast"
)

// JSONNode is the JSON form of a document node. Type is the markup tag name
// from [ast.Kind]; Table rows and Canvas layers appear as children of type
// "row", "cell" and "layer".
type JSONNode struct {
	Type      string     `json:"type"`
	Text      string     `json:"text,omitempty"`
	Color     string     `json:"color,omitempty"`
	Label     string     `json:"label,omitempty"`
	Player    *int       `json:"player,omitempty"`
	Alignment string     `json:"alignment,omitempty"`
	Width     *int       `json:"width,omitempty"`
	X         *int       `json:"x,omitempty"`
	Y         *int       `json:"y,omitempty"`
	Children  []JSONNode `json:"children,omitempty"`
}

// JSON encodes nodes as a JSON array of [JSONNode]. Unlike the other
// renderers it accepts untransformed trees, so it doubles as a parse dump.
func JSON(nodes []ast.Node) ([]byte, error) {
	return json.MarshalIndent(ToJSON(nodes), "", "  ")
}

// ToJSON converts nodes to their JSON form.
func ToJSON(nodes []ast.Node) []JSONNode {
	out := make([]JSONNode, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, toJSON(n))
	}
	return out
}

func toJSON(n ast.Node) JSONNode {
	j := JSONNode{Type: ast.Kind(n)}
	switch n := n.(type) {
	case ast.Text:
		j.Text = n.Text
	case ast.Fg:
		j.Color = n.Color.Hex()
		j.Children = ToJSON(n.Children)
	case ast.Bg:
		j.Color = n.Color.Hex()
		j.Children = ToJSON(n.Children)
	case ast.Bold:
		j.Children = ToJSON(n.Children)
	case ast.Action:
		j.Label = n.Label
		j.Children = ToJSON(n.Children)
	case ast.Player:
		j.Player = intPtr(n.Index)
	case ast.Table:
		for _, row := range n.Rows {
			r := JSONNode{Type: "row", Children: []JSONNode{}}
			for _, cell := range row {
				r.Children = append(r.Children, JSONNode{
					Type:      "cell",
					Alignment: cell.Alignment.String(),
					Children:  ToJSON(cell.Children),
				})
			}
			j.Children = append(j.Children, r)
		}
	case ast.Align:
		j.Alignment = n.Alignment.String()
		j.Width = intPtr(n.Width)
		j.Children = ToJSON(n.Children)
	case ast.Indent:
		j.Width = intPtr(n.Width)
		j.Children = ToJSON(n.Children)
	case ast.Canvas:
		for _, l := range n.Layers {
			j.Children = append(j.Children, JSONNode{
				Type:     "layer",
				X:        intPtr(l.X),
				Y:        intPtr(l.Y),
				Children: ToJSON(l.Children),
			})
		}
	case ast.Group:
		j.Children = ToJSON(n.Children)
	default:
		panic(fmt.Sprintf("render: unknown node type %T", n))
	}
	return j
}

func intPtr(i int) *int { return &i }
