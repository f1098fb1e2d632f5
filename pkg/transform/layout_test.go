package transform

import (
	"strings"
	"testing"

	"github.com/brdgme/markup/pkg/ast"
	"github.com/brdgme/markup/pkg/color"
)

func TestAlign(t *testing.T) {
	abc := []ast.Node{text("abc")}

	tests := []struct {
		name      string
		alignment ast.Alignment
		width     int
		children  []ast.Node
		want      string
	}{
		{"left", ast.Left, 10, abc, `"abc" "       "`},
		{"center", ast.Center, 10, abc, `"   " "abc" "    "`},
		{"right", ast.Right, 10, abc, `"       " "abc"`},
		{"center odd space after", ast.Center, 4, abc, `"abc" " "`},
		{"exact width", ast.Right, 3, abc, `"abc"`},
		{"never truncates", ast.Left, 2, abc, `"abc"`},
		{"empty", ast.Left, 3, nil, `"   "`},
		{"multi-line", ast.Right, 3, []ast.Node{text("a\nbb")}, `"  " "a" "\n" " " "bb"`},
		{
			name:      "styled",
			alignment: ast.Center,
			width:     5,
			children:  []ast.Node{ast.Bold{Children: []ast.Node{text("ab")}}},
			want:      `" " b["ab"] "  "`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ast.Sprint(Align(tt.alignment, tt.width, tt.children, nil))
			if got != tt.want {
				t.Errorf("Align(%s, %d) = %s, want %s", tt.alignment, tt.width, got, tt.want)
			}
		})
	}
}

func TestAlign_Player(t *testing.T) {
	got := plain(Align(ast.Left, 10, []ast.Node{ast.Player{Index: 0}}, players))
	if want := "• mick    "; got != want {
		t.Errorf("Align(player) = %q, want %q", got, want)
	}
}

func TestIndent(t *testing.T) {
	tests := []struct {
		name     string
		width    int
		children []ast.Node
		want     string
	}{
		{"single line", 2, []ast.Node{text("a")}, `"  " "a"`},
		{"every line", 2, []ast.Node{text("a\nb")}, `"  " "a" "\n" "  " "b"`},
		{"zero width", 0, []ast.Node{text("a")}, `"a"`},
		{
			name:     "styled across lines",
			width:    1,
			children: []ast.Node{ast.Fg{Color: color.Red, Children: []ast.Node{text("a\nb")}}},
			want:     `" " fg(#f44336)["a"] "\n" " " fg(#f44336)["b"]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ast.Sprint(Indent(tt.width, tt.children, nil)); got != tt.want {
				t.Errorf("Indent(%d) = %s, want %s", tt.width, got, tt.want)
			}
		})
	}
}

func TestTable(t *testing.T) {
	tests := []struct {
		name string
		rows []ast.Row
		want string
	}{
		{
			name: "ragged rows are filled",
			rows: []ast.Row{
				{{Children: []ast.Node{text("a")}}, {Alignment: ast.Right, Children: []ast.Node{text("bbb")}}},
				{{Alignment: ast.Center, Children: []ast.Node{text("cc")}}},
			},
			want: "a bbb\ncc   ",
		},
		{
			name: "tallest cell sets row height",
			rows: []ast.Row{
				{{Children: []ast.Node{text("x\ny")}}, {Children: []ast.Node{text("z")}}},
			},
			want: "xz\ny ",
		},
		{
			name: "empty row keeps a line",
			rows: []ast.Row{
				{{Children: []ast.Node{text("ab")}}},
				{},
				{{Children: []ast.Node{text("c")}}},
			},
			want: "ab\n  \nc ",
		},
		{
			name: "multibyte widths",
			rows: []ast.Row{
				{{Children: []ast.Node{text("né")}}, {Children: []ast.Node{text("|")}}},
				{{Children: []ast.Node{text("a")}}, {Children: []ast.Node{text("|")}}},
			},
			want: "né|\na |",
		},
		{
			name: "no rows",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Transform([]ast.Node{ast.Table{Rows: tt.rows}}, players)
			assertFlat(t, out)
			if got := plain(out); got != tt.want {
				t.Errorf("Table() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTable_EmitsAlignCells(t *testing.T) {
	out := Table([]ast.Row{
		{{Children: []ast.Node{text("a")}}, {Alignment: ast.Right, Children: []ast.Node{text("bb")}}},
		{{Children: []ast.Node{text("c")}}},
	}, nil)

	want := `align(left,1)["a"] align(right,2)["bb"] "\n" align(left,1)["c"] align(left,2)[]`
	if got := ast.Sprint(out); got != want {
		t.Errorf("Table() = %s, want %s", got, want)
	}
}

func TestTable_Nested(t *testing.T) {
	inner := ast.Table{Rows: []ast.Row{
		{{Children: []ast.Node{text("a")}}, {Alignment: ast.Right, Children: []ast.Node{ast.Player{Index: 1}}}},
		{{Children: []ast.Node{text("bbbb")}}, {Children: []ast.Node{text("c")}}},
	}}

	nested := ast.Table{Rows: []ast.Row{
		{{Children: []ast.Node{inner}}},
	}}
	flattened := ast.Table{Rows: []ast.Row{
		{{Children: Transform([]ast.Node{inner}, players)}},
	}}

	got := ast.Sprint(Transform([]ast.Node{nested}, players))
	want := ast.Sprint(Transform([]ast.Node{flattened}, players))
	if got != want {
		t.Errorf("nested table = %s, want %s", got, want)
	}

	// Inner rows already share a width, so the outer table adds nothing.
	if got, want := plain(Transform([]ast.Node{nested}, players)), plain(Transform([]ast.Node{inner}, players)); got != want {
		t.Errorf("nested table text = %q, want %q", got, want)
	}
}

func TestCanvas(t *testing.T) {
	red := func(s string) ast.Node { return ast.Fg{Color: color.Red, Children: []ast.Node{text(s)}} }

	tests := []struct {
		name   string
		layers []ast.Layer
		want   string
	}{
		{
			name: "overlap inside wider layer",
			layers: []ast.Layer{
				{Children: []ast.Node{red("abcdefgh")}},
				{X: 2, Children: []ast.Node{text("XY")}},
			},
			want: `fg(#f44336)["ab"] "XY" fg(#f44336)["efgh"]`,
		},
		{
			name: "fully covered fragment is dropped",
			layers: []ast.Layer{
				{X: 1, Children: []ast.Node{text("bc")}},
				{Children: []ast.Node{text("wxyz")}},
			},
			want: `"wxyz"`,
		},
		{
			name: "overlap at left edge",
			layers: []ast.Layer{
				{X: 2, Children: []ast.Node{text("abcd")}},
				{Children: []ast.Node{text("XYZ")}},
			},
			want: `"XYZ" "bcd"`,
		},
		{
			name: "gaps become spaces",
			layers: []ast.Layer{
				{X: 3, Y: 1, Children: []ast.Node{text("hi")}},
				{Children: []ast.Node{text("a")}},
				{X: 5, Children: []ast.Node{text("b")}},
			},
			want: `"a" "    " "b" "\n" "   " "hi"`,
		},
		{
			name: "styled lines overlap per row",
			layers: []ast.Layer{
				{Children: []ast.Node{ast.Bold{Children: []ast.Node{text("ab\ncd")}}}},
				{X: 1, Y: 1, Children: []ast.Node{text("Z")}},
			},
			want: `b["ab"] "\n" b["c"] "Z"`,
		},
		{
			name: "rows above the first layer are empty",
			layers: []ast.Layer{
				{Y: 2, Children: []ast.Node{text("x")}},
			},
			want: `"\n" "\n" "x"`,
		},
		{
			name: "empty layer line is indented to its column",
			layers: []ast.Layer{
				{X: 3, Children: []ast.Node{text("a\n\nb")}},
			},
			want: `"   " "a" "\n" "   " "\n" "   " "b"`,
		},
		{
			name: "empty layer",
			layers: []ast.Layer{
				{X: 4},
			},
			want: `"    "`,
		},
		{
			name: "empty line inside a wider fragment hides nothing",
			layers: []ast.Layer{
				{Children: []ast.Node{text("abcdef")}},
				{X: 2, Children: []ast.Node{text("\nz")}},
			},
			want: `"ab" "cdef" "\n" "  " "z"`,
		},
		{
			name: "empty line past the end of a row",
			layers: []ast.Layer{
				{Children: []ast.Node{text("ab")}},
				{X: 5},
			},
			want: `"ab" "   "`,
		},
		{
			name: "no layers",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ast.Sprint(Canvas(tt.layers, nil)); got != tt.want {
				t.Errorf("Canvas() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestCanvas_Box(t *testing.T) {
	box := strings.Join([]string{"+----+", "|    |", "+----+"}, "\n")
	out := Canvas([]ast.Layer{
		{Children: []ast.Node{text(box)}},
		{X: 2, Y: 1, Children: []ast.Node{ast.Player{Index: 7}}},
	}, players)

	want := strings.Join([]string{"+----+", "| • Player 7", "+----+"}, "\n")
	if got := plain(out); got != want {
		t.Errorf("Canvas() = %q, want %q", got, want)
	}
	assertFlat(t, out)
}
