package renderers

import (
	"math"

	"github.com/lixenwraith/runecast/render"
	"github.com/lixenwraith/runecast/vmath"
)

// plotLine visits each terminal cell a pixel-space line passes through, once per run of samples
func plotLine(ctx *render.RenderContext, a, b vmath.Point, visit func(x, y int)) {
	step := math.Min(ctx.Surface.CellW, ctx.Surface.CellH) / 2
	steps := int(math.Ceil(vmath.Dist(a, b) / step))
	if steps < 1 {
		steps = 1
	}

	lastX, lastY := math.MinInt, math.MinInt
	for i := 0; i <= steps; i++ {
		p := vmath.Lerp(a, b, float64(i)/float64(steps))
		x, y, ok := ctx.PixelToScreen(p.X, p.Y)
		if !ok || (x == lastX && y == lastY) {
			continue
		}
		lastX, lastY = x, y
		visit(x, y)
	}
}
