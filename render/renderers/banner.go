package renderers

import (
	"fmt"

	"github.com/lixenwraith/runecast/constants"
	"github.com/lixenwraith/runecast/engine"
	"github.com/lixenwraith/runecast/render"
)

// BannerRenderer shows the cast result during cooldown and a prompt while idle
type BannerRenderer struct {
	gameCtx *engine.GameContext
}

func NewBannerRenderer(gameCtx *engine.GameContext) *BannerRenderer {
	return &BannerRenderer{gameCtx: gameCtx}
}

func (r *BannerRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	top, cols, rows := ctx.PlayArea()
	session := r.gameCtx.Session

	if result, ok := session.Result(); ok {
		r.drawResult(buf, result, top, cols, rows)
		return
	}

	if session.Phase() != engine.PhaseIdle {
		return
	}
	hint := "press 1-6 to choose a spell"
	if session.Spell() != nil {
		hint = "drag along the glyph to cast"
	}
	hint = render.Truncate(hint, cols)
	render.DrawTextFg(buf, render.CenterX(hint, cols), top+rows-1, hint, render.RgbHUDLabel)
}

func (r *BannerRenderer) drawResult(buf *render.RenderBuffer, result engine.CastResult, top, cols, rows int) {
	title := result.SpellName
	verdict := fmt.Sprintf("HIT  %d damage", result.Damage)
	accent := render.RgbSuccess
	if !result.Success {
		verdict = "FIZZLE"
		accent = render.RgbFailure
	}
	if result.TimedOut {
		verdict += "  (timeout)"
	}
	detail := fmt.Sprintf("accuracy %.0f%%  %.1fs  score %d", result.Accuracy*100, result.Elapsed.Seconds(), result.Score)

	width := constants.BannerWidth
	if width > cols {
		width = cols
	}
	x0 := (cols - width) / 2
	y0 := top + rows/2 - 2

	for dy := 0; dy < 5; dy++ {
		for dx := 0; dx < width; dx++ {
			buf.SetWithBg(x0+dx, y0+dy, ' ', render.RgbHUDText, render.RgbBanner)
		}
	}

	lines := []struct {
		text  string
		color render.RGB
	}{
		{title, result.Rarity.Color()},
		{verdict, accent},
		{detail, render.RgbHUDLabel},
	}
	for i, l := range lines {
		text := render.Truncate(l.text, width-2)
		render.DrawText(buf, x0+(width-render.TextWidth(text))/2, y0+1+i, text, l.color, render.RgbBanner)
	}
}
