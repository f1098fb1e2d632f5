package color

import (
	"strings"

	"github.com/muesli/termenv"
)

// Style is the accumulated presentation state at a point in a document:
// optional foreground and background colours plus a bold flag.
//
// Styles are values; the With* methods return modified copies so renderers
// can thread the current style down a recursion without shared state.
type Style struct {
	Fg   *Color
	Bg   *Color
	Bold bool
}

// DefaultStyle is the terminal's own default presentation.
func DefaultStyle() Style {
	return Style{}
}

// WithFg returns a copy of s with the foreground set to c.
func (s Style) WithFg(c Color) Style {
	s.Fg = &c
	return s
}

// WithBg returns a copy of s with the background set to c.
func (s Style) WithBg(c Color) Style {
	s.Bg = &c
	return s
}

// WithBold returns a copy of s with bold enabled.
func (s Style) WithBold() Style {
	s.Bold = true
	return s
}

// ANSI returns the SGR escape sequence that switches a terminal to s.
// The sequence always begins with a reset, so emitting a parent style after
// a child restores the parent exactly.
func (s Style) ANSI() string {
	seqs := []string{termenv.ResetSeq}
	if s.Bold {
		seqs = append(seqs, termenv.BoldSeq)
	}
	if s.Fg != nil {
		seqs = append(seqs, termenv.RGBColor(s.Fg.Hex()).Sequence(false))
	}
	if s.Bg != nil {
		seqs = append(seqs, termenv.RGBColor(s.Bg.Hex()).Sequence(true))
	}
	return termenv.CSI + strings.Join(seqs, ";") + "m"
}
