package render

import "github.com/gdamore/tcell/v2"

// Attr is a tcell text attribute mask
type Attr = tcell.AttrMask

const AttrNone Attr = tcell.AttrNone

// Cell is one composited terminal cell
type Cell struct {
	Rune  rune
	Fg    RGB
	Bg    RGB
	Attrs Attr
}

// DefaultBgRGB is the default background color
var DefaultBgRGB = RgbBackground
