package engine

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/looplab/fsm"

	"github.com/lixenwraith/runecast/constants"
	"github.com/lixenwraith/runecast/core"
	"github.com/lixenwraith/runecast/spell"
	"github.com/lixenwraith/runecast/systems"
	"github.com/lixenwraith/runecast/vmath"
)

// Phase is the session lifecycle state
type Phase string

const (
	PhaseIdle     Phase = "idle"
	PhaseCasting  Phase = "casting"
	PhaseResolved Phase = "resolved"
	PhaseCooldown Phase = "cooldown"
)

const (
	eventBegin   = "begin"
	eventRelease = "release"
	eventCool    = "cool"
	eventReset   = "reset"
)

// ErrSessionBusy is returned when a spell is selected outside Idle
var ErrSessionBusy = errors.New("session busy")

// GesturePoint is one captured pointer sample in normalized surface coordinates
type GesturePoint struct {
	X, Y float64
	Time time.Time
}

// Effects are the simulation systems a session drives from gesture input
type Effects struct {
	Particles *systems.ParticleSystem
	Debris    *systems.DebrisSystem
	Shake     *systems.ScreenShake
}

// SessionConfig wires a session to its clock and collaborators; nil collaborators are no-ops
type SessionConfig struct {
	Settings Settings
	Clock    TimeProvider
	Effects  Effects
	Economy  Economy
	Sink     ResultSink
	Sound    SoundPlayer
	Width    float64
	Height   float64
}

// Session owns one player's casting state: selected spell, gesture, scoring and guide segments
// Not safe for concurrent use; all calls come from the game loop
type Session struct {
	machine  *fsm.FSM
	settings Settings
	clock    TimeProvider
	fx       Effects
	economy  Economy
	sink     ResultSink
	sound    SoundPlayer

	width, height float64

	spell     *spell.Definition
	pixelPath []vmath.Point
	gesture   []GesturePoint
	scorer    *systems.Scorer
	segments  *systems.SegmentTracker

	startTime  time.Time
	resolvedAt time.Time
	lastSample systems.SampleScore
	result     *CastResult
}

// NewSession creates an idle session with no spell selected
func NewSession(cfg SessionConfig) *Session {
	settings := cfg.Settings.withDefaults()
	s := &Session{
		settings: settings,
		clock:    cfg.Clock,
		fx:       cfg.Effects,
		economy:  cfg.Economy,
		sink:     cfg.Sink,
		sound:    cfg.Sound,
		width:    cfg.Width,
		height:   cfg.Height,
		scorer:   systems.NewScorer(),
		segments: systems.NewSegmentTracker(settings.SegmentLength),
	}

	if s.clock == nil {
		s.clock = NewMonotonicTimeProvider()
	}
	if s.economy == nil {
		s.economy = noopEconomy{}
	}
	if s.sink == nil {
		s.sink = noopSink{}
	}
	if s.sound == nil {
		s.sound = noopSound{}
	}
	if s.fx.Particles == nil {
		s.fx.Particles = systems.NewParticleSystem(s.width, s.height, settings.MaxParticles, settings.Seed)
	}
	if s.fx.Debris == nil {
		s.fx.Debris = systems.NewDebrisSystem(s.width, s.height, settings.Seed)
	}
	if s.fx.Shake == nil {
		s.fx.Shake = systems.NewScreenShake(settings.Seed)
	}

	s.machine = fsm.NewFSM(
		string(PhaseIdle),
		fsm.Events{
			{Name: eventBegin, Src: []string{string(PhaseIdle)}, Dst: string(PhaseCasting)},
			{Name: eventRelease, Src: []string{string(PhaseCasting)}, Dst: string(PhaseResolved)},
			{Name: eventCool, Src: []string{string(PhaseResolved)}, Dst: string(PhaseCooldown)},
			{Name: eventReset, Src: []string{string(PhaseCooldown)}, Dst: string(PhaseIdle)},
		},
		fsm.Callbacks{
			"enter_state": func(_ context.Context, e *fsm.Event) {
				log.Printf("session: %s -> %s on %s", e.Src, e.Dst, e.Event)
			},
		},
	)
	return s
}

// Phase returns the current lifecycle state
func (s *Session) Phase() Phase {
	return Phase(s.machine.Current())
}

// transition fires an fsm event; side effects run after it returns
func (s *Session) transition(event string) error {
	if err := s.machine.Event(context.Background(), event); err != nil {
		return fmt.Errorf("session %s from %s: %w", event, s.machine.Current(), err)
	}
	return nil
}

// SelectSpell sets the spell for the next gesture and lays out its guide
func (s *Session) SelectSpell(def *spell.Definition) error {
	if s.Phase() != PhaseIdle {
		return ErrSessionBusy
	}
	if def == nil {
		return fmt.Errorf("%w: nil definition", spell.ErrUnknownSpell)
	}

	s.spell = def
	s.pixelPath = vmath.ScalePath(def.Path, s.width, s.height)
	s.segments.Build(s.pixelPath)
	log.Printf("session: selected %s (%d guide segments)", def.ID, len(s.segments.Segments()))
	return nil
}

// Spell returns the selected spell, nil when none
func (s *Session) Spell() *spell.Definition {
	return s.spell
}

// BeginGesture starts casting at pixel position (x, y); ignored unless Idle with a spell selected
func (s *Session) BeginGesture(x, y float64) bool {
	if s.Phase() != PhaseIdle || s.spell == nil {
		log.Printf("session: gesture start ignored in %s (spell selected: %t)", s.Phase(), s.spell != nil)
		return false
	}
	if err := s.transition(eventBegin); err != nil {
		log.Printf("%v", err)
		return false
	}

	s.scorer.Reset()
	s.gesture = s.gesture[:0]
	s.result = nil
	s.lastSample = systems.SampleScore{}
	s.segments.Build(s.pixelPath)
	s.startTime = s.clock.Now()

	s.AddSample(x, y)
	return true
}

// AddSample scores one pointer sample in pixel space and drives particle and debris feedback
func (s *Session) AddSample(x, y float64) (systems.SampleScore, bool) {
	if s.Phase() != PhaseCasting {
		return systems.SampleScore{}, false
	}

	p := vmath.Point{X: x, Y: y}
	s.gesture = append(s.gesture, GesturePoint{
		X:    safeDiv(x, s.width),
		Y:    safeDiv(y, s.height),
		Time: s.clock.Now(),
	})

	sample := s.scorer.Record(vmath.DistancePointToPath(p, s.pixelPath))
	s.lastSample = sample

	tint := s.spell.Rarity.Color()
	if s.fx.Particles.EmitFeedback(p, sample.Accuracy, tint) {
		s.fx.Shake.Pulse(constants.ShakePulseIntensity)
		s.sound.Play(core.SoundCritical)
	}

	for _, idx := range s.segments.Evaluate(p, sample.Accuracy) {
		s.fx.Debris.Spawn(s.segments.Segment(idx).Line, tint)
		s.sound.Play(core.SoundShatter)
	}

	return sample, true
}

// EndGesture resolves the cast; leaving the surface ends a gesture the same way
func (s *Session) EndGesture() (CastResult, bool) {
	if s.Phase() != PhaseCasting {
		return CastResult{}, false
	}
	return s.resolve(false), true
}

// Tick applies time-driven transitions: countdown auto-release and cooldown expiry
func (s *Session) Tick() {
	switch s.Phase() {
	case PhaseCasting:
		if s.Remaining() <= 0 {
			s.resolve(true)
		}
	case PhaseCooldown:
		if s.clock.Now().Sub(s.resolvedAt) >= s.settings.Cooldown {
			s.reset()
		}
	}
}

func (s *Session) resolve(timedOut bool) CastResult {
	now := s.clock.Now()
	elapsed := now.Sub(s.startTime)
	if elapsed > s.settings.CastBudget {
		elapsed = s.settings.CastBudget
	}

	mean := s.scorer.Mean()
	result := CastResult{
		SpellID:        s.spell.ID,
		SpellName:      s.spell.DisplayName(),
		Rarity:         s.spell.Rarity,
		Success:        systems.IsSuccess(mean),
		Damage:         systems.Damage(s.spell.MinDamage, s.spell.MaxDamage, mean, systems.TimeFactor(elapsed)),
		Accuracy:       mean,
		Score:          s.scorer.Score(),
		Samples:        s.scorer.Count(),
		SegmentsBroken: s.segments.BrokenCount(),
		Elapsed:        elapsed,
		TimedOut:       timedOut,
		ResolvedAt:     now,
	}
	if result.Success {
		result.Essence = s.spell.CostCopy()
	}

	if err := s.transition(eventRelease); err != nil {
		log.Printf("%v", err)
	}
	s.result = &result

	if result.Success {
		// Optimistic commit: a failed deduction does not undo the cast
		if err := s.economy.Deduct(result.SpellID, result.Essence); err != nil {
			log.Printf("session: essence deduction for %s failed: %v", result.SpellID, err)
		}
		s.fx.Particles.EmitExplosion(vmath.Point{X: s.width / 2, Y: s.height / 2}, s.spell.Rarity.Color())
		s.fx.Shake.Pulse(constants.ShakeMaxIntensity)
		s.sound.Play(core.SoundCast)
	} else {
		s.sound.Play(core.SoundFizzle)
	}

	if err := s.sink.CastResolved(result); err != nil {
		log.Printf("session: result sink: %v", err)
	}
	log.Printf("session: %s resolved success=%t damage=%d accuracy=%.3f elapsed=%v timeout=%t",
		result.SpellID, result.Success, result.Damage, result.Accuracy, result.Elapsed, timedOut)

	if err := s.transition(eventCool); err != nil {
		log.Printf("%v", err)
	}
	s.resolvedAt = now
	return result
}

// reset clears the board after cooldown and waits for a new selection
func (s *Session) reset() {
	if err := s.transition(eventReset); err != nil {
		log.Printf("%v", err)
		return
	}
	s.fx.Debris.Clear()
	s.gesture = s.gesture[:0]
	s.result = nil
	s.spell = nil
	s.pixelPath = nil
	s.segments.Reset()
	s.scorer.Reset()
	s.lastSample = systems.SampleScore{}
}

// Resize re-derives the pixel path and guide segments for a new surface size
func (s *Session) Resize(width, height float64) {
	s.width = width
	s.height = height
	if s.spell == nil {
		return
	}
	s.pixelPath = vmath.ScalePath(s.spell.Path, width, height)
	s.segments.Rebuild(s.pixelPath)
}

// Remaining returns the countdown value: the full budget before casting, zero after
func (s *Session) Remaining() time.Duration {
	switch s.Phase() {
	case PhaseIdle:
		return s.settings.CastBudget
	case PhaseCasting:
		left := s.settings.CastBudget - s.clock.Now().Sub(s.startTime)
		if left < 0 {
			return 0
		}
		return left
	default:
		return 0
	}
}

// Budget returns the configured cast budget
func (s *Session) Budget() time.Duration {
	return s.settings.CastBudget
}

// Accuracy returns the running mean accuracy of the current gesture
func (s *Session) Accuracy() float64 {
	return s.scorer.Mean()
}

// Score returns the proximity score of the current gesture
func (s *Session) Score() int {
	return s.scorer.Score()
}

// LiveDamage is the damage preview without time penalty, 0 with no spell
func (s *Session) LiveDamage() int {
	if s.spell == nil {
		return 0
	}
	return systems.PreviewDamage(s.spell.MinDamage, s.spell.MaxDamage, s.scorer.Mean())
}

// LastSample returns the most recent sample score
func (s *Session) LastSample() systems.SampleScore {
	return s.lastSample
}

// Result returns the last cast result while it is on display
func (s *Session) Result() (CastResult, bool) {
	if s.result == nil {
		return CastResult{}, false
	}
	return *s.result, true
}

// Gesture returns the captured samples in normalized coordinates; callers must not modify it
func (s *Session) Gesture() []GesturePoint {
	return s.gesture
}

// GesturePixels returns the captured samples mapped back into current pixel space
func (s *Session) GesturePixels() []vmath.Point {
	out := make([]vmath.Point, len(s.gesture))
	for i, g := range s.gesture {
		out[i] = vmath.Point{X: g.X * s.width, Y: g.Y * s.height}
	}
	return out
}

// PixelPath returns the reference path in pixel space
func (s *Session) PixelPath() []vmath.Point {
	return s.pixelPath
}

// Segments returns the guide segments; callers must not modify them
func (s *Session) Segments() []systems.GuideSegment {
	return s.segments.Segments()
}

func safeDiv(v, d float64) float64 {
	if d == 0 {
		return 0
	}
	return v / d
}
