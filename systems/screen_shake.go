package systems

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/lixenwraith/runecast/constants"
)

// ScreenShake is a decaying random render offset in pixels
type ScreenShake struct {
	intensity float64
	offX      float64
	offY      float64
	rng       *rand.Rand
}

// NewScreenShake creates an idle shake with a deterministic offset sequence
func NewScreenShake(seed uint64) *ScreenShake {
	return &ScreenShake{rng: rand.New(rand.NewPCG(seed, seed^0x5eed))}
}

// Pulse raises intensity to at least the given value, capped at ShakeMaxIntensity
func (s *ScreenShake) Pulse(intensity float64) {
	s.intensity = math.Min(math.Max(s.intensity, intensity), constants.ShakeMaxIntensity)
}

// Step decays intensity and draws a new offset
func (s *ScreenShake) Step(dt time.Duration) {
	if s.intensity == 0 || dt <= 0 {
		return
	}
	frames := frameScale(dt)
	s.intensity *= math.Pow(constants.ShakeDecay, frames)
	if s.intensity < constants.ShakeCutoff {
		s.Reset()
		return
	}
	s.offX = (s.rng.Float64()*2 - 1) * s.intensity
	s.offY = (s.rng.Float64()*2 - 1) * s.intensity
}

// Offset returns the current pixel offset
func (s *ScreenShake) Offset() (float64, float64) {
	return s.offX, s.offY
}

// Intensity returns the current shake magnitude
func (s *ScreenShake) Intensity() float64 {
	return s.intensity
}

// Active reports whether a shake is in progress
func (s *ScreenShake) Active() bool {
	return s.intensity > 0
}

// Reset stops the shake
func (s *ScreenShake) Reset() {
	s.intensity = 0
	s.offX = 0
	s.offY = 0
}

// frameScale converts dt into a count of reference simulation frames
func frameScale(dt time.Duration) float64 {
	return float64(dt) / float64(constants.SimulationFrame)
}
