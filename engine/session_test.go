package engine

import (
	"errors"
	"testing"
	"time"

	"github.com/lixenwraith/runecast/core"
	"github.com/lixenwraith/runecast/spell"
	"github.com/lixenwraith/runecast/vmath"
)

const (
	testWidth  = 800.0
	testHeight = 400.0
)

type recordingEconomy struct {
	calls []string
	err   error
}

func (e *recordingEconomy) Deduct(spellID string, cost []spell.EssenceCost) error {
	e.calls = append(e.calls, spellID)
	return e.err
}

type recordingSink struct {
	results []CastResult
}

func (s *recordingSink) CastResolved(r CastResult) error {
	s.results = append(s.results, r)
	return nil
}

type recordingSound struct {
	played map[core.SoundType]int
}

func (s *recordingSound) Play(sound core.SoundType) {
	if s.played == nil {
		s.played = make(map[core.SoundType]int)
	}
	s.played[sound]++
}

// lineSpell traces a horizontal line across the middle of the surface: (80,200) to (720,200) in pixels
func lineSpell() *spell.Definition {
	return &spell.Definition{
		ID:        "test-line",
		Name:      "Test Line",
		Rarity:    spell.Epic,
		Path:      []vmath.Point{{X: 0.1, Y: 0.5}, {X: 0.9, Y: 0.5}},
		MinDamage: 10,
		MaxDamage: 30,
		Essence:   []spell.EssenceCost{{Type: "fire", Amount: 2}},
	}
}

type sessionFixture struct {
	clock   *MockTimeProvider
	economy *recordingEconomy
	sink    *recordingSink
	sound   *recordingSound
	session *Session
}

func newSessionFixture(t *testing.T) *sessionFixture {
	t.Helper()
	f := &sessionFixture{
		clock:   NewMockTimeProvider(testEpoch),
		economy: &recordingEconomy{},
		sink:    &recordingSink{},
		sound:   &recordingSound{},
	}
	f.session = NewSession(SessionConfig{
		Settings: DefaultSettings(),
		Clock:    f.clock,
		Economy:  f.economy,
		Sink:     f.sink,
		Sound:    f.sound,
		Width:    testWidth,
		Height:   testHeight,
	})
	if err := f.session.SelectSpell(lineSpell()); err != nil {
		t.Fatalf("SelectSpell: %v", err)
	}
	return f
}

// trace samples every 10px along y at a fixed vertical offset from the line over total duration
func (f *sessionFixture) trace(t *testing.T, offsetY float64, total time.Duration) {
	t.Helper()
	const steps = 64
	y := 200 + offsetY
	if !f.session.BeginGesture(80, y) {
		t.Fatal("BeginGesture returned false")
	}
	for i := 1; i <= steps; i++ {
		f.clock.Advance(total / steps)
		f.session.AddSample(80+float64(i)*10, y)
	}
}

func TestSessionPerfectOneSecondCast(t *testing.T) {
	f := newSessionFixture(t)
	f.trace(t, 0, time.Second)

	result, ok := f.session.EndGesture()
	if !ok {
		t.Fatal("EndGesture returned false while casting")
	}

	if !result.Success {
		t.Error("expected success")
	}
	if result.Damage != 27 {
		t.Errorf("Damage = %d, want 27", result.Damage)
	}
	if result.Accuracy != 1 {
		t.Errorf("Accuracy = %v, want 1", result.Accuracy)
	}
	if result.Elapsed != time.Second {
		t.Errorf("Elapsed = %v, want 1s", result.Elapsed)
	}
	if result.Samples != 65 {
		t.Errorf("Samples = %d, want 65", result.Samples)
	}
	if result.SegmentsBroken == 0 {
		t.Error("tracing the exact path should break guide segments")
	}

	if len(f.economy.calls) != 1 || f.economy.calls[0] != "test-line" {
		t.Errorf("economy calls = %v, want one deduction for test-line", f.economy.calls)
	}
	if len(f.sink.results) != 1 {
		t.Errorf("sink received %d results, want 1", len(f.sink.results))
	}
	if f.sound.played[core.SoundCast] != 1 {
		t.Errorf("cast sound played %d times, want 1", f.sound.played[core.SoundCast])
	}
	if f.sound.played[core.SoundShatter] != result.SegmentsBroken {
		t.Errorf("shatter sounds %d, want one per broken segment (%d)", f.sound.played[core.SoundShatter], result.SegmentsBroken)
	}
	if f.session.fx.Debris.Count() == 0 {
		t.Error("broken segments should spawn debris")
	}
	if f.session.Phase() != PhaseCooldown {
		t.Errorf("Phase() = %s after resolve, want cooldown", f.session.Phase())
	}
}

func TestSessionFarGestureFails(t *testing.T) {
	f := newSessionFixture(t)
	f.trace(t, 100, time.Second)

	result, _ := f.session.EndGesture()
	if result.Success {
		t.Error("expected failure for a gesture entirely beyond the accuracy threshold")
	}
	if result.Accuracy != 0 {
		t.Errorf("Accuracy = %v, want 0", result.Accuracy)
	}
	if result.Damage != 10 {
		t.Errorf("Damage = %d, want min damage 10 computed on failure", result.Damage)
	}
	if result.Score != 0 {
		t.Errorf("Score = %d, want 0 after only penalties", result.Score)
	}
	if len(f.economy.calls) != 0 {
		t.Errorf("failed cast must not deduct essence, got %v", f.economy.calls)
	}
	if result.Essence != nil {
		t.Errorf("failed cast carries essence %v", result.Essence)
	}
	if f.sound.played[core.SoundFizzle] != 1 {
		t.Error("failure should fizzle")
	}
	if f.session.fx.Debris.Count() != 0 {
		t.Error("inaccurate samples must not break segments")
	}
}

func TestSessionTimeoutAutoRelease(t *testing.T) {
	f := newSessionFixture(t)
	if !f.session.BeginGesture(80, 200) {
		t.Fatal("BeginGesture returned false")
	}

	f.clock.Advance(4 * time.Second)
	f.session.Tick()
	if f.session.Phase() != PhaseCasting {
		t.Fatalf("Phase() = %s before budget elapsed", f.session.Phase())
	}
	if got := f.session.Remaining(); got != time.Second {
		t.Errorf("Remaining() = %v, want 1s", got)
	}

	f.clock.Advance(1200 * time.Millisecond)
	f.session.Tick()

	result, ok := f.session.Result()
	if !ok {
		t.Fatal("timeout did not resolve the cast")
	}
	if !result.TimedOut {
		t.Error("TimedOut = false")
	}
	if result.Elapsed != 5*time.Second {
		t.Errorf("Elapsed = %v, want capped at budget 5s", result.Elapsed)
	}
	// accuracy 1 at time factor 0.25
	if result.Damage != 15 {
		t.Errorf("Damage = %d, want 15", result.Damage)
	}
}

func TestSessionCooldownReturnsToIdle(t *testing.T) {
	f := newSessionFixture(t)
	f.trace(t, 0, 500*time.Millisecond)
	f.session.EndGesture()

	f.clock.Advance(1999 * time.Millisecond)
	f.session.Tick()
	if f.session.Phase() != PhaseCooldown {
		t.Fatalf("Phase() = %s before cooldown expired", f.session.Phase())
	}

	f.clock.Advance(time.Millisecond)
	f.session.Tick()
	if f.session.Phase() != PhaseIdle {
		t.Fatalf("Phase() = %s after cooldown, want idle", f.session.Phase())
	}
	if f.session.Spell() != nil {
		t.Error("selected spell should clear on return to idle")
	}
	if f.session.fx.Debris.Count() != 0 {
		t.Error("debris should clear on return to idle")
	}
	if len(f.session.Gesture()) != 0 || len(f.session.Segments()) != 0 {
		t.Error("gesture and guide should clear on return to idle")
	}
	if _, ok := f.session.Result(); ok {
		t.Error("result display should clear on return to idle")
	}
}

func TestSessionGestureWithoutSpellIgnored(t *testing.T) {
	s := NewSession(SessionConfig{Clock: NewMockTimeProvider(testEpoch), Width: testWidth, Height: testHeight})

	if s.BeginGesture(100, 100) {
		t.Error("BeginGesture without a spell should be ignored")
	}
	if s.Phase() != PhaseIdle {
		t.Errorf("Phase() = %s, want idle", s.Phase())
	}
	if _, ok := s.AddSample(100, 100); ok {
		t.Error("AddSample outside casting should be ignored")
	}
	if _, ok := s.EndGesture(); ok {
		t.Error("EndGesture outside casting should be ignored")
	}
}

func TestSessionSelectOnlyWhenIdle(t *testing.T) {
	f := newSessionFixture(t)
	f.session.BeginGesture(80, 200)

	if err := f.session.SelectSpell(lineSpell()); !errors.Is(err, ErrSessionBusy) {
		t.Errorf("SelectSpell while casting = %v, want ErrSessionBusy", err)
	}
	if err := NewSession(SessionConfig{}).SelectSpell(nil); !errors.Is(err, spell.ErrUnknownSpell) {
		t.Errorf("SelectSpell(nil) = %v, want ErrUnknownSpell", err)
	}
}

func TestSessionDeductionFailureKeepsSuccess(t *testing.T) {
	f := newSessionFixture(t)
	f.economy.err = errors.New("insufficient")
	f.trace(t, 0, time.Second)

	result, _ := f.session.EndGesture()
	if !result.Success || result.Damage != 27 {
		t.Errorf("result = %+v, want success with 27 damage despite deduction error", result)
	}
	if len(f.sink.results) != 1 || !f.sink.results[0].Success {
		t.Error("sink should still receive the successful result")
	}
}

func TestSessionGestureStoredNormalized(t *testing.T) {
	f := newSessionFixture(t)
	f.session.BeginGesture(400, 100)

	g := f.session.Gesture()
	if len(g) != 1 || g[0].X != 0.5 || g[0].Y != 0.25 {
		t.Errorf("Gesture() = %+v, want one point at (0.5, 0.25)", g)
	}
	if !g[0].Time.Equal(testEpoch) {
		t.Errorf("sample time = %v, want %v", g[0].Time, testEpoch)
	}
}

func TestSessionLiveDamageHasNoTimePenalty(t *testing.T) {
	f := newSessionFixture(t)
	f.session.BeginGesture(80, 200)
	f.clock.Advance(4 * time.Second)
	f.session.AddSample(90, 200)

	if got := f.session.LiveDamage(); got != 30 {
		t.Errorf("LiveDamage() = %d, want 30", got)
	}
}

func TestSessionResizeKeepsBrokenSegments(t *testing.T) {
	f := newSessionFixture(t)
	f.trace(t, 0, time.Second)

	before := 0
	for _, s := range f.session.Segments() {
		if s.Broken {
			before++
		}
	}

	f.session.Resize(testWidth*2, testHeight*2)

	after := 0
	for _, s := range f.session.Segments() {
		if s.Broken {
			after++
		}
	}
	if after < before {
		t.Errorf("broken segments dropped from %d to %d on resize", before, after)
	}
	if got := f.session.PixelPath()[0]; got.X != 160 || got.Y != 400 {
		t.Errorf("PixelPath()[0] = %+v, want (160, 400)", got)
	}
}
