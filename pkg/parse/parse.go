package parse

import (
	"strconv"
	"strings"

	"github.com/brdgme/markup/pkg/ast"
	"github.com/brdgme/markup/pkg/color"
	"github.com/brdgme/markup/pkg/errors"
)

// blockTags are the tags that enclose content and need a closing tag.
var blockTags = map[string]bool{
	"b": true, "fg": true, "bg": true, "action": true,
	"table": true, "row": true, "cell": true,
	"align": true, "indent": true,
	"canvas": true, "layer": true,
	"group": true,
}

// containerChild maps structural tags to the only tag they may contain.
var containerChild = map[string]string{
	"table":  "row",
	"row":    "cell",
	"canvas": "layer",
}

// childParent maps structural tags to the only tag that may contain them.
var childParent = map[string]string{
	"row":   "table",
	"cell":  "row",
	"layer": "canvas",
}

// frame is an open block and what has been parsed inside it so far.
type frame struct {
	tok token

	color     color.Color
	label     string
	alignment ast.Alignment
	width     int
	x, y      int

	nodes  []ast.Node
	rows   []ast.Row
	cells  ast.Row
	layers []ast.Layer
}

type parser struct {
	stack []*frame
}

// Parse reads a markup template into a document tree.
func Parse(src string) ([]ast.Node, error) {
	toks, err := lex(src)
	if err != nil {
		return nil, err
	}

	p := &parser{stack: []*frame{{}}}
	for _, t := range toks {
		switch t.kind {
		case tokenText:
			err = p.text(t)
		case tokenSingle, tokenOpen:
			err = p.open(t)
		case tokenClose:
			err = p.close(t)
		}
		if err != nil {
			return nil, err
		}
	}

	if len(p.stack) > 1 {
		f := p.top()
		return nil, syntaxError(errors.ErrCodeUnclosedTag, f.tok, "unclosed tag %q", f.tok.name)
	}
	return p.stack[0].nodes, nil
}

// MustParse is like Parse but panics on error. It is intended for
// templates embedded in code.
func MustParse(src string) []ast.Node {
	nodes, err := Parse(src)
	if err != nil {
		panic(err)
	}
	return nodes
}

func syntaxError(code errors.Code, t token, format string, args ...any) error {
	return errors.Wrap(code, &errors.SyntaxError{Offset: t.offset, Tag: t.raw}, format, args...)
}

func (p *parser) top() *frame {
	return p.stack[len(p.stack)-1]
}

func (p *parser) text(t token) error {
	parent := p.top()
	if child, ok := containerChild[parent.tok.name]; ok {
		if strings.TrimSpace(t.raw) == "" {
			return nil
		}
		return syntaxError(errors.ErrCodeInvalidMarkup, t,
			"text is not allowed directly inside %s, only %s", parent.tok.name, child)
	}
	parent.nodes = append(parent.nodes, ast.Text{Text: t.raw})
	return nil
}

func (p *parser) open(t token) error {
	if t.name == "player" {
		if t.kind == tokenOpen {
			return syntaxError(errors.ErrCodeInvalidMarkup, t, "player cannot open a block")
		}
		if err := wantArgs(t, 1); err != nil {
			return err
		}
		idx, err := parseUint(t, t.args[0])
		if err != nil {
			return err
		}
		return p.append(t, ast.Player{Index: idx})
	}

	if !blockTags[t.name] {
		return syntaxError(errors.ErrCodeUnknownTag, t, "unknown tag %q", t.name)
	}

	parentName := p.top().tok.name
	if child, ok := containerChild[parentName]; ok && t.name != child {
		return syntaxError(errors.ErrCodeInvalidMarkup, t,
			"%s is not allowed directly inside %s, only %s", t.name, parentName, child)
	}
	if parent, ok := childParent[t.name]; ok && parentName != parent {
		return syntaxError(errors.ErrCodeInvalidMarkup, t, "%s must be directly inside %s", t.name, parent)
	}

	f := &frame{tok: t}
	if err := f.parseArgs(); err != nil {
		return err
	}
	p.stack = append(p.stack, f)
	return nil
}

func (p *parser) close(t token) error {
	if len(p.stack) == 1 {
		return syntaxError(errors.ErrCodeUnexpectedClose, t, "closing tag %q has no matching open tag", t.name)
	}
	f := p.top()
	if f.tok.name != t.name {
		return syntaxError(errors.ErrCodeUnexpectedClose, t,
			"closing tag %q does not match open tag %q at offset %d", t.name, f.tok.name, f.tok.offset)
	}
	p.stack = p.stack[:len(p.stack)-1]
	parent := p.top()

	switch f.tok.name {
	case "row":
		parent.rows = append(parent.rows, f.cells)
		return nil
	case "cell":
		parent.cells = append(parent.cells, ast.Cell{Alignment: f.alignment, Children: f.nodes})
		return nil
	case "layer":
		parent.layers = append(parent.layers, ast.Layer{X: f.x, Y: f.y, Children: f.nodes})
		return nil
	}
	return p.append(f.tok, f.node())
}

// append adds n to the innermost open block.
func (p *parser) append(t token, n ast.Node) error {
	parent := p.top()
	if child, ok := containerChild[parent.tok.name]; ok {
		return syntaxError(errors.ErrCodeInvalidMarkup, t,
			"%s is not allowed directly inside %s, only %s", t.name, parent.tok.name, child)
	}
	parent.nodes = append(parent.nodes, n)
	return nil
}

// node builds the finished node for a closed non-structural block.
func (f *frame) node() ast.Node {
	switch f.tok.name {
	case "b":
		return ast.Bold{Children: f.nodes}
	case "fg":
		return ast.Fg{Color: f.color, Children: f.nodes}
	case "bg":
		return ast.Bg{Color: f.color, Children: f.nodes}
	case "action":
		return ast.Action{Label: f.label, Children: f.nodes}
	case "align":
		return ast.Align{Alignment: f.alignment, Width: f.width, Children: f.nodes}
	case "indent":
		return ast.Indent{Width: f.width, Children: f.nodes}
	case "table":
		return ast.Table{Rows: f.rows}
	case "canvas":
		return ast.Canvas{Layers: f.layers}
	default:
		return ast.Group{Children: f.nodes}
	}
}

func (f *frame) parseArgs() error {
	t := f.tok
	var err error
	switch t.name {
	case "fg", "bg":
		f.color, err = parseColor(t)
	case "action":
		if err = wantArgs(t, 1); err == nil {
			f.label = t.args[0]
		}
	case "cell":
		if len(t.args) > 1 {
			return syntaxError(errors.ErrCodeInvalidArgument, t, "cell takes at most 1 argument, got %d", len(t.args))
		}
		if len(t.args) == 1 {
			f.alignment, err = parseAlignment(t, t.args[0])
		}
	case "align":
		if err = wantArgs(t, 2); err != nil {
			return err
		}
		if f.alignment, err = parseAlignment(t, t.args[0]); err != nil {
			return err
		}
		f.width, err = parseUint(t, t.args[1])
	case "indent":
		if err = wantArgs(t, 1); err == nil {
			f.width, err = parseUint(t, t.args[0])
		}
	case "layer":
		if err = wantArgs(t, 2); err != nil {
			return err
		}
		if f.x, err = parseUint(t, t.args[0]); err != nil {
			return err
		}
		f.y, err = parseUint(t, t.args[1])
	default:
		err = wantArgs(t, 0)
	}
	return err
}

func wantArgs(t token, n int) error {
	if len(t.args) != n {
		return syntaxError(errors.ErrCodeInvalidArgument, t, "%s takes %d argument(s), got %d", t.name, n, len(t.args))
	}
	return nil
}

func parseUint(t token, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, syntaxError(errors.ErrCodeInvalidArgument, t, "%s: %q is not a non-negative integer", t.name, s)
	}
	return n, nil
}

func parseAlignment(t token, s string) (ast.Alignment, error) {
	a, err := ast.ParseAlignment(s)
	if err != nil {
		return a, syntaxError(errors.ErrCodeInvalidArgument, t, "%s: %v", t.name, err)
	}
	return a, nil
}

// parseColor reads "r g b", "#hex" or a palette name.
func parseColor(t token) (color.Color, error) {
	switch len(t.args) {
	case 1:
		s := t.args[0]
		if strings.HasPrefix(s, "#") {
			c, err := color.ParseHex(s)
			if err != nil {
				return color.Color{}, syntaxError(errors.ErrCodeInvalidArgument, t, "%s: %v", t.name, err)
			}
			return c, nil
		}
		if c, ok := color.Named(strings.ToLower(s)); ok {
			return c, nil
		}
		return color.Color{}, syntaxError(errors.ErrCodeInvalidArgument, t, "%s: unknown colour %q", t.name, s)
	case 3:
		var rgb [3]uint8
		for i, s := range t.args {
			v, err := strconv.ParseUint(s, 10, 8)
			if err != nil {
				return color.Color{}, syntaxError(errors.ErrCodeInvalidArgument, t,
					"%s: %q is not a colour component (0-255)", t.name, s)
			}
			rgb[i] = uint8(v)
		}
		return color.Color{R: rgb[0], G: rgb[1], B: rgb[2]}, nil
	default:
		return color.Color{}, syntaxError(errors.ErrCodeInvalidArgument, t,
			"%s takes 1 or 3 arguments, got %d", t.name, len(t.args))
	}
}
