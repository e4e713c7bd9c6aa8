package renderers

import (
	"fmt"

	"github.com/lixenwraith/runecast/constants"
	"github.com/lixenwraith/runecast/engine"
	"github.com/lixenwraith/runecast/render"
)

// HUDRenderer draws the spell bar, live readouts and the countdown bar in the reserved top rows
type HUDRenderer struct {
	gameCtx *engine.GameContext
}

func NewHUDRenderer(gameCtx *engine.GameContext) *HUDRenderer {
	return &HUDRenderer{gameCtx: gameCtx}
}

func (r *HUDRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	if ctx.ScreenHeight < constants.HUDRows {
		return
	}
	buf.FillRow(0, render.RgbHUDBar)
	buf.FillRow(1, render.RgbHUDBar)

	r.drawSpellBar(ctx, buf)
	r.drawReadout(ctx, buf)
	r.drawTimer(ctx, buf)
}

func (r *HUDRenderer) drawSpellBar(ctx render.RenderContext, buf *render.RenderBuffer) {
	session := r.gameCtx.Session
	selected := ""
	if def := session.Spell(); def != nil {
		selected = def.ID
	}

	x := 1
	for i, def := range r.gameCtx.Catalog.All() {
		label := fmt.Sprintf(" %d %s ", i+1, def.DisplayName())
		if x+render.TextWidth(label) >= ctx.ScreenWidth {
			break
		}
		bg := render.RgbHUDBar
		fg := def.Rarity.Color()
		if def.ID == selected {
			bg = render.Scale(def.Rarity.Color(), 0.35)
			fg = render.RGBWhite
		}
		x = render.DrawText(buf, x, 0, label, fg, bg)
	}
}

func (r *HUDRenderer) drawReadout(ctx render.RenderContext, buf *render.RenderBuffer) {
	session := r.gameCtx.Session

	var text string
	color := render.RgbHUDText
	switch {
	case ctx.IsPaused:
		text = " PAUSED "
		color = render.RgbHUDPaused
	case session.Phase() == engine.PhaseCasting:
		acc := session.Accuracy()
		text = fmt.Sprintf(" score %d  acc %3.0f%%  dmg %d ", session.Score(), acc*100, session.LiveDamage())
		color = render.AccuracyColor(acc)
	default:
		stats := r.gameCtx.Stats()
		text = fmt.Sprintf(" casts %d  hits %d  total %d ", stats.Casts, stats.Successes, stats.TotalDamage)
	}

	x := ctx.ScreenWidth - render.TextWidth(text) - 1
	if x < 0 {
		return
	}
	render.DrawText(buf, x, 1, text, color, render.RgbHUDBar)
}

func (r *HUDRenderer) drawTimer(ctx render.RenderContext, buf *render.RenderBuffer) {
	session := r.gameCtx.Session
	budget := session.Budget()
	frac := 0.0
	if budget > 0 {
		frac = float64(session.Remaining()) / float64(budget)
	}

	label := fmt.Sprintf(" %4.1fs ", session.Remaining().Seconds())
	x := render.DrawText(buf, 1, 1, label, render.RgbHUDLabel, render.RgbHUDBar)

	width := ctx.ScreenWidth/2 - x
	if width <= 0 {
		return
	}
	filled := int(frac*float64(width) + 0.5)
	color := render.TimerColor(frac)
	for i := 0; i < width; i++ {
		glyph := constants.GlyphTimerEmpty
		fg := render.Scale(color, 0.35)
		if i < filled {
			glyph = constants.GlyphTimerFull
			fg = color
		}
		buf.SetWithBg(x+i, 1, glyph, fg, render.RgbHUDBar)
	}
}
