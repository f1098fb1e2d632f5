package lines

import (
	"testing"

	"github.com/brdgme/markup/pkg/ast"
	"github.com/brdgme/markup/pkg/color"
)

func text(s string) ast.Text { return ast.Text{Text: s} }

func sprintLines(ls [][]ast.Node) []string {
	out := make([]string, len(ls))
	for i, l := range ls {
		out[i] = ast.Sprint(l)
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestToLines(t *testing.T) {
	tests := []struct {
		name  string
		nodes []ast.Node
		want  []string
	}{
		{
			name: "empty input has one empty line",
			want: []string{""},
		},
		{
			name:  "split text",
			nodes: []ast.Node{text("one\ntwo")},
			want:  []string{`"one"`, `"two"`},
		},
		{
			name:  "trailing newline",
			nodes: []ast.Node{text("one\n")},
			want:  []string{`"one"`, ""},
		},
		{
			name:  "lone newline",
			nodes: []ast.Node{text("\n")},
			want:  []string{"", ""},
		},
		{
			name:  "siblings share a line",
			nodes: []ast.Node{text("a"), ast.Bold{Children: []ast.Node{text("b")}}, text("c\nd")},
			want:  []string{`"a" b["b"] "c"`, `"d"`},
		},
		{
			name: "wrapper spanning lines is split",
			nodes: []ast.Node{ast.Fg{Color: color.Red, Children: []ast.Node{
				text("x\ny\nz"),
			}}},
			want: []string{`fg(#f44336)["x"]`, `fg(#f44336)["y"]`, `fg(#f44336)["z"]`},
		},
		{
			name: "nested wrappers keep structure",
			nodes: []ast.Node{ast.Action{Label: "go", Children: []ast.Node{
				ast.Bg{Color: color.Blue, Children: []ast.Node{text("a\nb")}},
				text("c"),
			}}},
			want: []string{`action("go")[bg(#2196f3)["a"]]`, `action("go")[bg(#2196f3)["b"] "c"]`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sprintLines(ToLines(tt.nodes))
			if !equalStrings(got, tt.want) {
				t.Errorf("ToLines() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestToLinesPanicsOnDirective(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("ToLines() with a directive did not panic")
		}
	}()
	ToLines([]ast.Node{ast.Player{Index: 0}})
}

func TestFromLinesRoundTrip(t *testing.T) {
	ls := ToLines([]ast.Node{text("one\ntwo")})
	if got, want := len(ls), 2; got != want {
		t.Fatalf("len(ToLines()) = %d, want %d", got, want)
	}

	got := ast.Sprint(FromLines(ls))
	want := `"one" "\n" "two"`
	if got != want {
		t.Errorf("FromLines() = %s, want %s", got, want)
	}

	if got := FromLines(nil); len(got) != 0 {
		t.Errorf("FromLines(nil) = %v, want empty", got)
	}
}

func TestLen(t *testing.T) {
	tests := []struct {
		name  string
		nodes []ast.Node
		want  int
	}{
		{"empty", nil, 0},
		{"ascii", []ast.Node{text("abc")}, 3},
		{"multibyte", []ast.Node{text("• héllo")}, 7},
		{
			name: "nested",
			nodes: []ast.Node{
				text("ab"),
				ast.Fg{Color: color.Red, Children: []ast.Node{ast.Bold{Children: []ast.Node{text("cde")}}}},
			},
			want: 5,
		},
		{
			name:  "untransformed directive children",
			nodes: []ast.Node{ast.Align{Alignment: ast.Right, Width: 10, Children: []ast.Node{text("xy")}}},
			want:  2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Len(tt.nodes); got != tt.want {
				t.Errorf("Len() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSpaces(t *testing.T) {
	if got := Spaces(3).Text; got != "   " {
		t.Errorf("Spaces(3) = %q, want %q", got, "   ")
	}
	if got := Spaces(-1).Text; got != "" {
		t.Errorf("Spaces(-1) = %q, want empty", got)
	}
}
