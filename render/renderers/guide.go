package renderers

import (
	"github.com/lixenwraith/runecast/constants"
	"github.com/lixenwraith/runecast/engine"
	"github.com/lixenwraith/runecast/render"
)

// GuideRenderer draws the intact segments of the selected spell's reference path
type GuideRenderer struct {
	gameCtx *engine.GameContext
}

func NewGuideRenderer(gameCtx *engine.GameContext) *GuideRenderer {
	return &GuideRenderer{gameCtx: gameCtx}
}

// Render skips broken segments; their debris takes over
func (r *GuideRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	session := r.gameCtx.Session
	def := session.Spell()
	if def == nil {
		return
	}

	color := render.Lerp(render.RgbGuideIntact, def.Rarity.Color(), 0.35)
	if session.Phase() == engine.PhaseIdle {
		color = render.Lerp(render.RgbGuideDim, def.Rarity.Color(), 0.5)
	}

	for _, seg := range session.Segments() {
		if seg.Broken {
			continue
		}
		plotLine(&ctx, seg.Start, seg.End, func(x, y int) {
			buf.SetFgOnly(x, y, constants.GlyphGuide, color, render.AttrNone)
		})
	}
}
