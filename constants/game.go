package constants

import "time"

// Game Loop Timing Constants
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// CountdownTickInterval is the cadence of the cast countdown (~60 Hz)
	CountdownTickInterval = 16 * time.Millisecond

	// SimulationFrame is the reference frame all per-frame physics constants are tuned for
	SimulationFrame = time.Second / 60
)

// Session Timing Constants
const (
	// CastBudget is the countdown a gesture must finish within before auto-release
	CastBudget = 5000 * time.Millisecond

	// CooldownDuration is how long the result stays on screen before returning to idle
	CooldownDuration = 2000 * time.Millisecond
)
