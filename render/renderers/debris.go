package renderers

import (
	"math"
	"sort"

	"github.com/lixenwraith/runecast/engine"
	"github.com/lixenwraith/runecast/render"
	"github.com/lixenwraith/runecast/systems"
	"github.com/lixenwraith/runecast/vmath"
)

// Fixed-angle oblique projection: depth shifts right and up
const (
	isoDepthX = 0.5
	isoDepthY = -0.35

	// sampleStep is the pixel spacing used to rasterize faces into cell coverage
	sampleStep = 2.0
)

// Per-face opacity fakes lighting
const (
	opacityFront = 1.0
	opacitySide  = 0.75
	opacityTop   = 0.6
)

// Cube corner indices after rotation: bit 0 = +x, bit 1 = +y (down), bit 2 = +z (far)
var (
	faceFront = [4]int{0, 1, 3, 2}
	faceTop   = [4]int{0, 1, 5, 4}
	faceRight = [4]int{1, 5, 7, 3}
	faceLeft  = [4]int{0, 4, 6, 2}
)

// shadeRamp maps cell coverage to block glyphs
var shadeRamp = [...]rune{'░', '▒', '▓', '█'}

type cellKey struct{ x, y int }

type cellPaint struct {
	color RGB
	hits  int
}

// RGB is local shorthand for the render color
type RGB = render.RGB

// DebrisRenderer projects fragments as shaded pseudo-3D blocks, far to near
type DebrisRenderer struct {
	gameCtx *engine.GameContext
	order   []int
	cells   map[cellKey]cellPaint
}

func NewDebrisRenderer(gameCtx *engine.GameContext) *DebrisRenderer {
	return &DebrisRenderer{
		gameCtx: gameCtx,
		cells:   make(map[cellKey]cellPaint, 64),
	}
}

func (r *DebrisRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	debris := r.gameCtx.Debris
	r.drawFloor(ctx, buf, debris.FloorY())

	fragments := debris.Fragments()
	if len(fragments) == 0 {
		return
	}

	// Painter's algorithm: far (large z) first, then top to bottom
	r.order = r.order[:0]
	for i := range fragments {
		r.order = append(r.order, i)
	}
	sort.SliceStable(r.order, func(a, b int) bool {
		fa, fb := &fragments[r.order[a]], &fragments[r.order[b]]
		if fa.Pos.Z != fb.Pos.Z {
			return fa.Pos.Z > fb.Pos.Z
		}
		return fa.Pos.Y < fb.Pos.Y
	})

	for _, idx := range r.order {
		r.drawFragment(&ctx, buf, &fragments[idx])
	}
}

func (r *DebrisRenderer) drawFloor(ctx render.RenderContext, buf *render.RenderBuffer, floorY float64) {
	_, y, ok := ctx.PixelToScreen(0, floorY)
	if !ok {
		return
	}
	for x := 0; x < ctx.Surface.Cols; x++ {
		buf.SetFgOnly(x, y, '▁', render.RgbFloor, render.AttrNone)
	}
}

func (r *DebrisRenderer) drawFragment(ctx *render.RenderContext, buf *render.RenderBuffer, f *systems.Fragment) {
	corners := projectCorners(f)

	minY, maxY := corners[0].Y, corners[0].Y
	for _, c := range corners[1:] {
		minY = math.Min(minY, c.Y)
		maxY = math.Max(maxY, c.Y)
	}

	clear(r.cells)

	// Back faces first; the visible side depends on which way the block is turned
	side := faceRight
	if corners[1].X < corners[0].X {
		side = faceLeft
	}
	r.paintFace(ctx, corners, side, f.Color, opacitySide, minY, maxY)
	r.paintFace(ctx, corners, faceTop, f.Color, opacityTop, minY, maxY)
	r.paintFace(ctx, corners, faceFront, f.Color, opacityFront, minY, maxY)

	cellArea := ctx.Surface.CellW * ctx.Surface.CellH
	for key, paint := range r.cells {
		coverage := float64(paint.hits) * sampleStep * sampleStep / cellArea
		if coverage <= 0 {
			continue
		}
		level := int(coverage * float64(len(shadeRamp)))
		if level >= len(shadeRamp) {
			level = len(shadeRamp) - 1
		}
		buf.SetFgOnly(key.x, key.y, shadeRamp[level], paint.color, render.AttrNone)
	}

	// Blocks smaller than the sample grid still show as one dot
	if len(r.cells) == 0 {
		if x, y, ok := ctx.PixelToScreen(f.Pos.X, f.Pos.Y); ok {
			buf.SetFgOnly(x, y, '▪', f.Color, render.AttrNone)
		}
	}
}

// paintFace rasterizes a convex quad, recording the last face color per covered cell
func (r *DebrisRenderer) paintFace(ctx *render.RenderContext, corners [8]vmath.Point, face [4]int, base RGB, opacity, minY, maxY float64) {
	quad := [4]vmath.Point{corners[face[0]], corners[face[1]], corners[face[2]], corners[face[3]]}

	x0, y0, x1, y1 := quad[0].X, quad[0].Y, quad[0].X, quad[0].Y
	for _, p := range quad[1:] {
		x0, x1 = math.Min(x0, p.X), math.Max(x1, p.X)
		y0, y1 = math.Min(y0, p.Y), math.Max(y1, p.Y)
	}

	span := maxY - minY
	for py := y0; py <= y1; py += sampleStep {
		// Linear gradient: highlight at the top edge, shadow at the bottom
		grad := 1.15
		if span > 0 {
			grad = 1.15 - 0.4*(py-minY)/span
		}
		color := base.Scale(math.Min(1, opacity*grad))

		for px := x0; px <= x1; px += sampleStep {
			if !insideConvex(quad, vmath.Point{X: px, Y: py}) {
				continue
			}
			x, y, ok := ctx.PixelToScreen(px, py)
			if !ok {
				continue
			}
			k := cellKey{x, y}
			paint := r.cells[k]
			paint.color = color
			paint.hits++
			r.cells[k] = paint
		}
	}
}

// projectCorners rotates the block's corners about its center and projects them to screen pixels
func projectCorners(f *systems.Fragment) [8]vmath.Point {
	var out [8]vmath.Point
	hw, hh, hd := f.W/2, f.H/2, f.D/2
	for i := 0; i < 8; i++ {
		v := vmath.Vec3F{X: -hw, Y: -hh, Z: -hd}
		if i&1 != 0 {
			v.X = hw
		}
		if i&2 != 0 {
			v.Y = hh
		}
		if i&4 != 0 {
			v.Z = hd
		}
		v = vmath.V3FRotate(v, 0, 0, f.Rot.Z)
		z := f.Pos.Z + v.Z
		out[i] = vmath.Point{
			X: f.Pos.X + v.X + z*isoDepthX,
			Y: f.Pos.Y + v.Y + z*isoDepthY,
		}
	}
	return out
}

// insideConvex tests p against a convex quad of either winding
func insideConvex(q [4]vmath.Point, p vmath.Point) bool {
	var pos, neg bool
	for i := 0; i < 4; i++ {
		a, b := q[i], q[(i+1)%4]
		cross := (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
		if cross > 0 {
			pos = true
		} else if cross < 0 {
			neg = true
		}
		if pos && neg {
			return false
		}
	}
	return true
}
