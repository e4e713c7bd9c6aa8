// Package preview rasterizes spell reference paths to PNG thumbnails.
package preview

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/lixenwraith/runecast/core"
	"github.com/lixenwraith/runecast/spell"
)

const (
	DefaultSize   = 256
	minSize       = 64
	labelHeight   = 18
	strokeWidth   = 4.0
	markerRadius  = 5.0
	marginPercent = 0.08
)

var background = color.RGBA{16, 14, 28, 255}

// Options controls the preview image
type Options struct {
	Size  int  // square side in pixels; <minSize uses DefaultSize
	Label bool // draw the spell name under the path
}

// Render draws def into a new RGBA image
func Render(def *spell.Definition, opts Options) (*image.RGBA, error) {
	if def == nil {
		return nil, fmt.Errorf("preview: %w", spell.ErrUnknownSpell)
	}
	if err := def.Validate(); err != nil {
		return nil, err
	}

	size := opts.Size
	if size < minSize {
		size = DefaultSize
	}
	h := size
	if opts.Label {
		h += labelHeight
	}

	img := image.NewRGBA(image.Rect(0, 0, size, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{background}, image.Point{}, draw.Src)

	tint := def.Rarity.Color()
	margin := float64(size) * marginPercent
	span := float64(size) - 2*margin
	toPx := func(i int) (float32, float32) {
		p := def.Path[i]
		return float32(margin + p.X*span), float32(margin + p.Y*span)
	}

	z := vector.NewRasterizer(size, size)
	for i := 1; i < len(def.Path); i++ {
		x0, y0 := toPx(i - 1)
		x1, y1 := toPx(i)
		addSegment(z, x0, y0, x1, y1, strokeWidth)
	}
	// Round joints so polyline corners don't notch
	for i := range def.Path {
		x, y := toPx(i)
		addDisc(z, x, y, strokeWidth/2)
	}
	z.Draw(img, image.Rect(0, 0, size, size), image.NewUniform(rgba(tint)), image.Point{})

	// Start marker tells the caster where to begin
	m := vector.NewRasterizer(size, size)
	sx, sy := toPx(0)
	addDisc(m, sx, sy, markerRadius)
	m.Draw(img, image.Rect(0, 0, size, size), image.NewUniform(rgba(tint.Brighten(0.5))), image.Point{})

	if opts.Label {
		drawLabel(img, def.DisplayName(), size)
	}
	return img, nil
}

// WritePNG renders def and encodes it to w
func WritePNG(w io.Writer, def *spell.Definition, opts Options) error {
	img, err := Render(def, opts)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encoding preview: %w", err)
	}
	return nil
}

// addSegment adds a thick line as a quad
func addSegment(z *vector.Rasterizer, x0, y0, x1, y1, width float32) {
	dx, dy := x1-x0, y1-y0
	l := float32(math.Hypot(float64(dx), float64(dy)))
	if l == 0 {
		return
	}
	nx, ny := -dy/l*width/2, dx/l*width/2

	z.MoveTo(x0+nx, y0+ny)
	z.LineTo(x1+nx, y1+ny)
	z.LineTo(x1-nx, y1-ny)
	z.LineTo(x0-nx, y0-ny)
	z.ClosePath()
}

// addDisc adds a 12-gon approximating a circle
func addDisc(z *vector.Rasterizer, cx, cy, r float32) {
	const n = 12
	for i := 0; i < n; i++ {
		a := 2 * math.Pi * float64(i) / n
		x := cx + r*float32(math.Cos(a))
		y := cy + r*float32(math.Sin(a))
		if i == 0 {
			z.MoveTo(x, y)
		} else {
			z.LineTo(x, y)
		}
	}
	z.ClosePath()
}

func drawLabel(img *image.RGBA, text string, width int) {
	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  img,
		Src:  image.White,
		Face: face,
	}
	adv := d.MeasureString(text).Ceil()
	x := (width - adv) / 2
	if x < 2 {
		x = 2
	}
	d.Dot = fixed.P(x, width+labelHeight-5)
	d.DrawString(text)
}

func rgba(c core.RGB) color.RGBA {
	return color.RGBA{c.R, c.G, c.B, 255}
}
