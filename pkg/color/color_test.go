package color

import (
	"strings"
	"testing"
)

func TestHex(t *testing.T) {
	tests := []struct {
		name  string
		color Color
		want  string
	}{
		{"red", Red, "#f44336"},
		{"green", Green, "#4caf50"},
		{"black", Black, "#000000"},
		{"white", White, "#ffffff"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.color.Hex(); got != tt.want {
				t.Errorf("Hex() = %v, want %v", got, tt.want)
			}
			if got := tt.color.String(); got != tt.want {
				t.Errorf("String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{in: "#f44336", want: Red},
		{in: "#000", want: Black},
		{in: "#fff", want: White},
		{in: "nope", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHex(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseHex(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseHex(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestPlayerColor(t *testing.T) {
	if got := PlayerColor(0); got != Green {
		t.Errorf("PlayerColor(0) = %v, want %v", got, Green)
	}
	if got := PlayerColor(1); got != Red {
		t.Errorf("PlayerColor(1) = %v, want %v", got, Red)
	}

	n := len(playerColors)
	for p := -2 * n; p < 3*n; p++ {
		if PlayerColor(p) != PlayerColor(p+n) {
			t.Errorf("PlayerColor(%d) != PlayerColor(%d)", p, p+n)
		}
	}
}

func TestStyleANSI(t *testing.T) {
	if got := DefaultStyle().ANSI(); got != "\x1b[0m" {
		t.Errorf("DefaultStyle().ANSI() = %q, want %q", got, "\x1b[0m")
	}
	if got := DefaultStyle().WithBold().ANSI(); got != "\x1b[0;1m" {
		t.Errorf("bold ANSI() = %q, want %q", got, "\x1b[0;1m")
	}

	fg := DefaultStyle().WithFg(Red).ANSI()
	if !strings.HasPrefix(fg, "\x1b[0;38;2;") || !strings.HasSuffix(fg, "m") {
		t.Errorf("fg ANSI() = %q, want true-colour foreground", fg)
	}

	both := DefaultStyle().WithBold().WithFg(Red).WithBg(Blue).ANSI()
	if !strings.HasPrefix(both, "\x1b[0;1;38;2;") || !strings.Contains(both, ";48;2;") {
		t.Errorf("combined ANSI() = %q, want bold, fg and bg", both)
	}
}

func TestStyleWithIsCopy(t *testing.T) {
	base := DefaultStyle().WithFg(Red)
	child := base.WithFg(Blue).WithBold()

	if *base.Fg != Red || base.Bold {
		t.Errorf("parent style modified: %+v", base)
	}
	if *child.Fg != Blue || !child.Bold {
		t.Errorf("child style = %+v, want blue bold", child)
	}
}

func TestNamed(t *testing.T) {
	if c, ok := Named("blue_grey"); !ok || c != BlueGrey {
		t.Errorf("Named(blue_grey) = %v, %v, want %v, true", c, ok, BlueGrey)
	}
	if _, ok := Named("chartreuse"); ok {
		t.Error("Named(chartreuse) ok = true, want false")
	}
}
