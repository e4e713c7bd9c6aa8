package renderers

import (
	"github.com/lixenwraith/runecast/constants"
	"github.com/lixenwraith/runecast/engine"
	"github.com/lixenwraith/runecast/render"
)

// glowKernel is the additive background falloff around a glowing particle
var glowKernel = [3][3]float64{
	{0.08, 0.15, 0.08},
	{0.15, 0.35, 0.15},
	{0.08, 0.15, 0.08},
}

// ParticleRenderer draws sparks sized by remaining life, with an additive glow layer
type ParticleRenderer struct {
	gameCtx *engine.GameContext
}

func NewParticleRenderer(gameCtx *engine.GameContext) *ParticleRenderer {
	return &ParticleRenderer{gameCtx: gameCtx}
}

func (r *ParticleRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	particles := r.gameCtx.Particles.Particles()

	// Glow first so spark glyphs land on the accumulated background
	for i := range particles {
		p := &particles[i]
		if !p.Glow || p.Life <= 0 {
			continue
		}
		cx, cy, ok := ctx.PixelToScreen(p.X, p.Y)
		if !ok {
			continue
		}
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				x, y := cx+dx, cy+dy
				if !ctx.Surface.Contains(x, y) {
					continue
				}
				buf.Set(x, y, 0, render.RGBBlack, p.Color, render.BlendAddBg, glowKernel[dy+1][dx+1]*p.Life, render.AttrNone)
			}
		}
	}

	for i := range particles {
		p := &particles[i]
		if p.Life <= 0 {
			continue
		}
		x, y, ok := ctx.PixelToScreen(p.X, p.Y)
		if !ok {
			continue
		}
		buf.SetFgOnly(x, y, particleGlyph(p.Size*p.Life), render.Scale(p.Color, 0.3+0.7*p.Life), render.AttrNone)
	}
}

// particleGlyph picks a dot for the effective radius
func particleGlyph(radius float64) rune {
	switch {
	case radius >= 3:
		return constants.GlyphParticleBig
	case radius >= 1.5:
		return constants.GlyphParticleMid
	default:
		return constants.GlyphParticleDust
	}
}
