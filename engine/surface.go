package engine

import "github.com/lixenwraith/runecast/constants"

// Surface maps terminal cells to the pixel space the simulation runs in
// Rows above OffsetY are reserved for the HUD and are outside pixel space
type Surface struct {
	Cols, Rows int // play area in cells
	OffsetY    int // terminal row of pixel y = 0
	CellW      float64
	CellH      float64
}

// NewSurface derives the play area from full terminal dimensions
func NewSurface(termWidth, termHeight int) Surface {
	rows := termHeight - constants.HUDRows
	if rows < 1 {
		rows = 1
	}
	cols := termWidth
	if cols < 1 {
		cols = 1
	}
	return Surface{
		Cols:    cols,
		Rows:    rows,
		OffsetY: constants.HUDRows,
		CellW:   constants.CellWidthPx,
		CellH:   constants.CellHeightPx,
	}
}

// PixelSize returns the play area in pixels
func (s Surface) PixelSize() (float64, float64) {
	return float64(s.Cols) * s.CellW, float64(s.Rows) * s.CellH
}

// CellToPixel returns the pixel center of terminal cell (x, y)
func (s Surface) CellToPixel(x, y int) (float64, float64) {
	return (float64(x) + 0.5) * s.CellW, (float64(y-s.OffsetY) + 0.5) * s.CellH
}

// PixelToCell returns the terminal cell containing pixel (px, py)
func (s Surface) PixelToCell(px, py float64) (int, int) {
	x := int(px / s.CellW)
	y := int(py/s.CellH) + s.OffsetY
	if px < 0 {
		x--
	}
	if py < 0 {
		y--
	}
	return x, y
}

// Contains reports whether terminal cell (x, y) lies in the play area
func (s Surface) Contains(x, y int) bool {
	return x >= 0 && x < s.Cols && y >= s.OffsetY && y < s.OffsetY+s.Rows
}
