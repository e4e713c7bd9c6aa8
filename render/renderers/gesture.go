package renderers

import (
	"github.com/lixenwraith/runecast/constants"
	"github.com/lixenwraith/runecast/engine"
	"github.com/lixenwraith/runecast/render"
)

// GestureRenderer draws the player's trail, brighter toward the newest sample
type GestureRenderer struct {
	gameCtx *engine.GameContext
}

func NewGestureRenderer(gameCtx *engine.GameContext) *GestureRenderer {
	return &GestureRenderer{gameCtx: gameCtx}
}

func (r *GestureRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	points := r.gameCtx.Session.GesturePixels()
	n := len(points)
	if n == 0 {
		return
	}

	if n == 1 {
		if x, y, ok := ctx.PixelToScreen(points[0].X, points[0].Y); ok {
			buf.SetFgOnly(x, y, constants.GlyphGesture, render.RgbGesture, render.AttrNone)
		}
		return
	}

	for i := 1; i < n; i++ {
		fade := 0.35 + 0.65*float64(i)/float64(n-1)
		color := render.Scale(render.RgbGesture, fade)
		plotLine(&ctx, points[i-1], points[i], func(x, y int) {
			buf.SetFgOnly(x, y, constants.GlyphGesture, color, render.AttrNone)
		})
	}
}
