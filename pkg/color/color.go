// Package color provides the RGB colours, styles and player palette used by
// markup documents.
//
// Colours are plain RGB triples. They render as CSS hex strings for HTML
// output and as true-colour SGR parameters for terminal output (see [Style]).
//
// # Player Colours
//
// [PlayerColor] maps a player index onto a fixed palette. The mapping is
// deterministic and total, so the same index always renders in the same
// colour and out-of-range indices never fail:
//
//	c := color.PlayerColor(0) // color.Green
//	c.Hex()                   // "#4caf50"
package color

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a 24-bit RGB colour.
type Color struct {
	R, G, B uint8
}

// Material design palette.
var (
	Red        = Color{244, 67, 54}
	Pink       = Color{233, 30, 99}
	Purple     = Color{156, 39, 176}
	DeepPurple = Color{103, 58, 183}
	Indigo     = Color{63, 81, 181}
	Blue       = Color{33, 150, 243}
	LightBlue  = Color{3, 169, 244}
	Cyan       = Color{0, 188, 212}
	Teal       = Color{0, 150, 136}
	Green      = Color{76, 175, 80}
	LightGreen = Color{139, 195, 74}
	Lime       = Color{205, 220, 57}
	Yellow     = Color{255, 235, 59}
	Amber      = Color{255, 193, 7}
	Orange     = Color{255, 152, 0}
	DeepOrange = Color{255, 87, 34}
	Brown      = Color{121, 85, 72}
	Grey       = Color{158, 158, 158}
	BlueGrey   = Color{96, 125, 139}
	Black      = Color{0, 0, 0}
	White      = Color{255, 255, 255}
)

// playerColors is the palette cycled through by PlayerColor.
var playerColors = []Color{Green, Red, Blue, Amber, Purple, Brown, BlueGrey}

// PlayerColor returns the display colour for player index p.
// Indices beyond the palette wrap around; negative indices are folded back
// into range so the function never fails.
func PlayerColor(p int) Color {
	n := len(playerColors)
	return playerColors[((p%n)+n)%n]
}

// Colorful converts c to a go-colorful colour for blending and conversion.
func (c Color) Colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

// Hex returns the CSS hex form of c, e.g. "#f44336".
func (c Color) Hex() string {
	return c.Colorful().Hex()
}

// String implements fmt.Stringer using the CSS hex form.
func (c Color) String() string {
	return c.Hex()
}

// ParseHex parses "#rgb" or "#rrggbb" into a Color.
func ParseHex(s string) (Color, error) {
	cf, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("parse colour %q: %w", s, err)
	}
	r, g, b := cf.RGB255()
	return Color{R: r, G: g, B: b}, nil
}

var named = map[string]Color{
	"red":         Red,
	"pink":        Pink,
	"purple":      Purple,
	"deep_purple": DeepPurple,
	"indigo":      Indigo,
	"blue":        Blue,
	"light_blue":  LightBlue,
	"cyan":        Cyan,
	"teal":        Teal,
	"green":       Green,
	"light_green": LightGreen,
	"lime":        Lime,
	"yellow":      Yellow,
	"amber":       Amber,
	"orange":      Orange,
	"deep_orange": DeepOrange,
	"brown":       Brown,
	"grey":        Grey,
	"gray":        Grey,
	"blue_grey":   BlueGrey,
	"black":       Black,
	"white":       White,
}

// Named looks up a palette colour by its lower-case name, e.g. "green" or
// "blue_grey".
func Named(name string) (Color, bool) {
	c, ok := named[name]
	return c, ok
}
