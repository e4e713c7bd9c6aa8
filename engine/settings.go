package engine

import (
	"time"

	"github.com/lixenwraith/runecast/constants"
)

// Settings tunes a session; zero fields take defaults in withDefaults
type Settings struct {
	CastBudget    time.Duration
	Cooldown      time.Duration
	SegmentLength float64
	Seed          uint64
	MaxParticles  int
}

// DefaultSettings returns the standard timing and geometry
func DefaultSettings() Settings {
	return Settings{
		CastBudget:    constants.CastBudget,
		Cooldown:      constants.CooldownDuration,
		SegmentLength: constants.GuideSegmentLength,
		Seed:          1,
		MaxParticles:  constants.ParticleDefaultCapacity,
	}
}

func (s Settings) withDefaults() Settings {
	d := DefaultSettings()
	if s.CastBudget <= 0 {
		s.CastBudget = d.CastBudget
	}
	if s.Cooldown <= 0 {
		s.Cooldown = d.Cooldown
	}
	if s.SegmentLength <= 0 {
		s.SegmentLength = d.SegmentLength
	}
	if s.MaxParticles <= 0 {
		s.MaxParticles = d.MaxParticles
	}
	return s
}
