package render

// BlendMode defines compositing operations using a bitmask (Flags | Op)
type BlendMode uint8

// Blend Operations (0-15)
const (
	opReplace uint8 = 0x00
	opAlpha   uint8 = 0x01
	opAdd     uint8 = 0x02
	opMax     uint8 = 0x03
)

// Blend Flags
const (
	flagBg uint8 = 0x10 // Apply operation to Background
	flagFg uint8 = 0x20 // Apply operation to Foreground
)

// Pre-defined Blend Modes
const (
	BlendReplace = BlendMode(opReplace | flagBg | flagFg)
	BlendAlpha   = BlendMode(opAlpha | flagBg | flagFg)
	BlendAdd     = BlendMode(opAdd | flagBg | flagFg)
	BlendMax     = BlendMode(opMax | flagBg | flagFg)

	BlendFgOnly  = BlendMode(opReplace | flagFg) // Replace Fg, Keep Bg
	BlendAlphaFg = BlendMode(opAlpha | flagFg)
	BlendAddFg   = BlendMode(opAdd | flagFg)

	BlendAlphaBg = BlendMode(opAlpha | flagBg)
	BlendAddBg   = BlendMode(opAdd | flagBg) // Glow accumulation
	BlendMaxBg   = BlendMode(opMax | flagBg)
)

// apply composites src onto dst for one channel set
func (m BlendMode) apply(dst, src RGB, alpha float64) RGB {
	switch uint8(m) & 0x0F {
	case opAlpha:
		return dst.Blend(src, alpha)
	case opAdd:
		return dst.Add(src.Scale(alpha))
	case opMax:
		return dst.Max(src)
	default:
		return src
	}
}
