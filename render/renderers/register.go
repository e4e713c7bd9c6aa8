package renderers

import (
	"github.com/lixenwraith/runecast/engine"
	"github.com/lixenwraith/runecast/render"
)

// RegisterAll wires every game layer into the orchestrator
func RegisterAll(o *render.RenderOrchestrator, gameCtx *engine.GameContext) {
	o.Register(NewGuideRenderer(gameCtx), render.PriorityGuide)
	o.Register(NewDebrisRenderer(gameCtx), render.PriorityDebris)
	o.Register(NewGestureRenderer(gameCtx), render.PriorityGesture)
	o.Register(NewParticleRenderer(gameCtx), render.PriorityParticle)
	o.Register(NewBannerRenderer(gameCtx), render.PriorityBanner)
	o.Register(NewHUDRenderer(gameCtx), render.PriorityUI)
}
