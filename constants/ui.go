package constants

// Surface geometry: one terminal cell covers CellWidthPx x CellHeightPx pixels
const (
	CellWidthPx  = 8.0
	CellHeightPx = 16.0
)

// UI Layout Constants
const (
	// HUDRows is the number of terminal rows reserved at the top for the HUD
	HUDRows = 2

	// BannerWidth is the width of the cast result banner
	BannerWidth = 32
)

// Glyphs
const (
	GlyphGuide        = '·'
	GlyphGesture      = '∙'
	GlyphParticleBig  = '●'
	GlyphParticleMid  = '•'
	GlyphParticleDust = '·'
	GlyphTimerFull    = '█'
	GlyphTimerEmpty   = '░'
)
