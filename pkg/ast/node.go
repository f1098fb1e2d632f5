package ast

import (
	"fmt"
	"strings"

	"github.com/brdgme/markup/pkg/color"
)

// Node is a document tree node. The set of implementations is closed.
type Node interface {
	node()
}

// Text is literal text. It may contain newlines.
type Text struct {
	Text string
}

// Fg sets the foreground colour of its children.
type Fg struct {
	Color    color.Color
	Children []Node
}

// Bg sets the background colour of its children.
type Bg struct {
	Color    color.Color
	Children []Node
}

// Bold renders its children in bold.
type Bold struct {
	Children []Node
}

// Action marks its children as an actionable region identified by Label.
// It has no visual effect.
type Action struct {
	Label    string
	Children []Node
}

// Player inserts the display name of the player at Index.
type Player struct {
	Index int
}

// Table lays out rows of cells in aligned columns.
type Table struct {
	Rows []Row
}

// Row is one table row.
type Row []Cell

// Cell is one table cell.
type Cell struct {
	Alignment Alignment
	Children  []Node
}

// Align pads every line of its children to Width columns.
type Align struct {
	Alignment Alignment
	Width     int
	Children  []Node
}

// Indent prefixes every line of its children with Width spaces.
type Indent struct {
	Width    int
	Children []Node
}

// Canvas composites layers onto a 2D character plane. Later layers are
// drawn over earlier ones.
type Canvas struct {
	Layers []Layer
}

// Layer is content placed on a canvas at column X, line Y.
type Layer struct {
	X, Y     int
	Children []Node
}

// Group splices its children into the parent.
type Group struct {
	Children []Node
}

func (Text) node()   {}
func (Fg) node()     {}
func (Bg) node()     {}
func (Bold) node()   {}
func (Action) node() {}
func (Player) node() {}
func (Table) node()  {}
func (Align) node()  {}
func (Indent) node() {}
func (Canvas) node() {}
func (Group) node()  {}

// Alignment is the horizontal placement of content within a padded width.
type Alignment int

const (
	Left Alignment = iota
	Center
	Right
)

var alignmentNames = map[Alignment]string{
	Left:   "left",
	Center: "center",
	Right:  "right",
}

// String returns the markup name of a.
func (a Alignment) String() string {
	if s, ok := alignmentNames[a]; ok {
		return s
	}
	return fmt.Sprintf("Alignment(%d)", int(a))
}

// ParseAlignment parses "left", "center" (or "centre") and "right",
// case-insensitively.
func ParseAlignment(s string) (Alignment, error) {
	switch strings.ToLower(s) {
	case "left", "l":
		return Left, nil
	case "center", "centre", "c":
		return Center, nil
	case "right", "r":
		return Right, nil
	}
	return Left, fmt.Errorf("invalid alignment %q (must be left, center or right)", s)
}
