package render

import (
	"math"
	"time"

	"github.com/lixenwraith/runecast/engine"
)

// RenderContext provides frame state for renderers, passed by value
type RenderContext struct {
	// Time state
	GameTime    time.Time
	DeltaTime   float64
	IsPaused    bool
	FrameNumber int64

	// Screen dimensions (terminal size)
	ScreenWidth  int
	ScreenHeight int

	// Play area mapping
	Surface engine.Surface

	// Screen shake offset in pixels, applied to play-area drawing only
	ShakeX float64
	ShakeY float64
}

// NewRenderContextFromGame snapshots the game context for one frame
func NewRenderContextFromGame(ctx *engine.GameContext, dt time.Duration) RenderContext {
	sx, sy := ctx.Shake.Offset()
	return RenderContext{
		GameTime:     ctx.Clock.Now(),
		DeltaTime:    dt.Seconds(),
		IsPaused:     ctx.IsPaused(),
		FrameNumber:  ctx.FrameNumber.Load(),
		ScreenWidth:  ctx.Width,
		ScreenHeight: ctx.Height,
		Surface:      ctx.Surface,
		ShakeX:       sx,
		ShakeY:       sy,
	}
}

// PixelToScreen maps a play-area pixel to a terminal cell with shake applied
// visible is false when the cell falls outside the play area
func (rc *RenderContext) PixelToScreen(px, py float64) (int, int, bool) {
	sx := int(math.Floor((px + rc.ShakeX) / rc.Surface.CellW))
	sy := int(math.Floor((py+rc.ShakeY)/rc.Surface.CellH)) + rc.Surface.OffsetY
	return sx, sy, rc.Surface.Contains(sx, sy)
}

// PlayArea returns the first play-area row and its size in cells
func (rc *RenderContext) PlayArea() (top, cols, rows int) {
	return rc.Surface.OffsetY, rc.Surface.Cols, rc.Surface.Rows
}
