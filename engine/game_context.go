package engine

import (
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/runecast/constants"
	"github.com/lixenwraith/runecast/spell"
	"github.com/lixenwraith/runecast/systems"
)

// GameConfig is everything needed to build a GameContext
type GameConfig struct {
	Settings Settings
	Catalog  *spell.Catalog
	Clock    TimeProvider // base clock wrapped by the pausable clock; nil for system time
	Economy  Economy
	Sink     ResultSink
	Sound    SoundPlayer
	Width    int // terminal columns
	Height   int // terminal rows
}

// SessionStats summarize all casts of one run
type SessionStats struct {
	Casts        int
	Successes    int
	TotalDamage  int
	BestDamage   int
	BestAccuracy float64
	Timeouts     int
}

// GameContext holds the session, simulation systems and the surface they share
type GameContext struct {
	// ===== Immutable After Init =====
	Catalog   *spell.Catalog
	Session   *Session
	Particles *systems.ParticleSystem
	Debris    *systems.DebrisSystem
	Shake     *systems.ScreenShake
	Clock     *PausableClock
	Countdown *Countdown

	// ===== Atomic =====
	FrameNumber atomic.Int64

	// ===== Main-Loop Exclusive =====
	Width, Height int // terminal dimensions
	Surface       Surface
	stats         SessionStats
}

// NewGameContext wires the session to fresh simulation systems sized to the terminal
func NewGameContext(cfg GameConfig) *GameContext {
	settings := cfg.Settings.withDefaults()
	surface := NewSurface(cfg.Width, cfg.Height)
	pw, ph := surface.PixelSize()

	ctx := &GameContext{
		Catalog:   cfg.Catalog,
		Particles: systems.NewParticleSystem(pw, ph, settings.MaxParticles, settings.Seed),
		Debris:    systems.NewDebrisSystem(pw, ph, settings.Seed+1),
		Shake:     systems.NewScreenShake(settings.Seed + 2),
		Clock:     NewPausableClock(cfg.Clock),
		Countdown: NewCountdown(constants.CountdownTickInterval),
		Width:     cfg.Width,
		Height:    cfg.Height,
		Surface:   surface,
	}

	ctx.Session = NewSession(SessionConfig{
		Settings: settings,
		Clock:    ctx.Clock,
		Effects: Effects{
			Particles: ctx.Particles,
			Debris:    ctx.Debris,
			Shake:     ctx.Shake,
		},
		Economy: cfg.Economy,
		Sink:    MultiSink(ResultSinkFunc(ctx.recordStats), cfg.Sink),
		Sound:   cfg.Sound,
		Width:   pw,
		Height:  ph,
	})
	return ctx
}

// Update advances one frame in dependency order: timer, then particles and debris, then shake
func (ctx *GameContext) Update(dt time.Duration) {
	if ctx.Clock.IsPaused() {
		return
	}
	ctx.Session.Tick()
	ctx.SyncCountdown()
	ctx.Particles.Step(dt)
	ctx.Debris.Step(dt)
	ctx.Shake.Step(dt)
	ctx.FrameNumber.Add(1)
}

// TickCountdown handles a countdown tick; auto-release happens here
func (ctx *GameContext) TickCountdown() {
	if ctx.Clock.IsPaused() {
		return
	}
	ctx.Session.Tick()
	ctx.SyncCountdown()
}

// SyncCountdown runs the countdown ticker only while casting and not paused
func (ctx *GameContext) SyncCountdown() {
	if ctx.Session.Phase() == PhaseCasting && !ctx.Clock.IsPaused() {
		ctx.Countdown.Start()
		return
	}
	ctx.Countdown.Stop()
}

// Resize updates the surface and re-derives everything sized in pixels
func (ctx *GameContext) Resize(width, height int) {
	ctx.Width = width
	ctx.Height = height
	ctx.Surface = NewSurface(width, height)
	pw, ph := ctx.Surface.PixelSize()

	ctx.Particles.Resize(pw, ph)
	ctx.Debris.Resize(pw, ph)
	ctx.Session.Resize(pw, ph)
	log.Printf("resize: %dx%d cells, %.0fx%.0f px", width, height, pw, ph)
}

// SelectSlot picks the catalog spell at 1-based slot n
func (ctx *GameContext) SelectSlot(n int) error {
	if ctx.Clock.IsPaused() {
		return nil
	}
	def, err := ctx.Catalog.Slot(n)
	if err != nil {
		return err
	}
	if err := ctx.Session.SelectSpell(def); err != nil {
		return fmt.Errorf("select %s: %w", def.ID, err)
	}
	return nil
}

// PointerDown starts a gesture at terminal cell (x, y)
func (ctx *GameContext) PointerDown(x, y int) bool {
	if ctx.Clock.IsPaused() || !ctx.Surface.Contains(x, y) {
		return false
	}
	px, py := ctx.Surface.CellToPixel(x, y)
	started := ctx.Session.BeginGesture(px, py)
	ctx.SyncCountdown()
	return started
}

// PointerMove feeds a drag sample at terminal cell (x, y)
func (ctx *GameContext) PointerMove(x, y int) {
	if ctx.Clock.IsPaused() {
		return
	}
	px, py := ctx.Surface.CellToPixel(x, y)
	ctx.Session.AddSample(px, py)
}

// PointerUp ends the gesture; also used when the pointer leaves the surface
func (ctx *GameContext) PointerUp() (CastResult, bool) {
	if ctx.Clock.IsPaused() {
		return CastResult{}, false
	}
	result, ok := ctx.Session.EndGesture()
	ctx.SyncCountdown()
	return result, ok
}

// TogglePause freezes or resumes session time and simulation
func (ctx *GameContext) TogglePause() bool {
	paused := ctx.Clock.Toggle()
	ctx.SyncCountdown()
	log.Printf("pause: %t", paused)
	return paused
}

// IsPaused returns the pause state
func (ctx *GameContext) IsPaused() bool {
	return ctx.Clock.IsPaused()
}

// Stats returns the run summary so far
func (ctx *GameContext) Stats() SessionStats {
	return ctx.stats
}

// Shutdown stops background tickers
func (ctx *GameContext) Shutdown() {
	ctx.Countdown.Stop()
}

func (ctx *GameContext) recordStats(r CastResult) error {
	ctx.stats.Casts++
	if r.TimedOut {
		ctx.stats.Timeouts++
	}
	if !r.Success {
		return nil
	}
	ctx.stats.Successes++
	ctx.stats.TotalDamage += r.Damage
	if r.Damage > ctx.stats.BestDamage {
		ctx.stats.BestDamage = r.Damage
	}
	if r.Accuracy > ctx.stats.BestAccuracy {
		ctx.stats.BestAccuracy = r.Accuracy
	}
	return nil
}
