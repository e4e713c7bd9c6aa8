package render

import "github.com/mattn/go-runewidth"

// DrawText writes s starting at (x, y) and returns the column after the last rune
// Wide runes occupy two cells; the second is left blank
func DrawText(buf *RenderBuffer, x, y int, s string, fg, bg RGB) int {
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		buf.SetWithBg(x, y, r, fg, bg)
		if w == 2 {
			buf.SetWithBg(x+1, y, ' ', fg, bg)
		}
		x += w
	}
	return x
}

// DrawTextFg writes s over the existing background
func DrawTextFg(buf *RenderBuffer, x, y int, s string, fg RGB) int {
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		buf.SetFgOnly(x, y, r, fg, AttrNone)
		x += w
	}
	return x
}

// TextWidth returns the display width of s in cells
func TextWidth(s string) int {
	return runewidth.StringWidth(s)
}

// CenterX returns the column that centers s within width
func CenterX(s string, width int) int {
	x := (width - TextWidth(s)) / 2
	if x < 0 {
		return 0
	}
	return x
}

// Truncate shortens s to fit within width cells, marking the cut with a tail
func Truncate(s string, width int) string {
	return runewidth.Truncate(s, width, "…")
}
