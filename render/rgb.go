package render

import "github.com/lixenwraith/runecast/core"

// RGB is an alias to core.RGB so renderers and simulation share one color type
type RGB = core.RGB

// Predefined default color
var (
	RGBBlack = core.RGBBlack
	RGBWhite = core.RGBWhite
)

// Scale multiplies each channel by factor in [0,1]
func Scale(c RGB, factor float64) RGB {
	return c.Scale(factor)
}

// Lerp blends from a toward b by t in [0,1]
func Lerp(a, b RGB, t float64) RGB {
	return a.Blend(b, t)
}
