package systems

import (
	"testing"

	"github.com/lixenwraith/runecast/constants"
	"github.com/lixenwraith/runecast/core"
	"github.com/lixenwraith/runecast/vmath"
)

var testTint = core.RGB{R: 255, G: 152, B: 0}

func TestTierOf(t *testing.T) {
	tests := []struct {
		acc  float64
		want AccuracyTier
	}{
		{1.0, TierPerfect},
		{0.95, TierPerfect},
		{0.92, TierCritical},
		{0.9, TierCritical},
		{0.8, TierGood},
		{0.7, TierGood},
		{0.5, TierWeak},
		{0, TierWeak},
	}
	for _, tt := range tests {
		if got := TierOf(tt.acc); got != tt.want {
			t.Errorf("TierOf(%v) = %d, want %d", tt.acc, got, tt.want)
		}
	}
}

func TestEmitFeedbackCounts(t *testing.T) {
	tests := []struct {
		name      string
		accuracy  float64
		wantCount int
		wantBurst bool
	}{
		{"perfect", 0.97, constants.EmitCountCritical + constants.ParticleBurstCount, true},
		{"critical", 0.92, constants.EmitCountCritical, false},
		{"good", 0.8, constants.EmitCountGood, false},
		{"weak", 0.2, constants.EmitCountWeak, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ps := NewParticleSystem(200, 200, 0, 1)
			burst := ps.EmitFeedback(vmath.Point{X: 100, Y: 100}, tt.accuracy, testTint)
			if burst != tt.wantBurst {
				t.Errorf("burst = %v, want %v", burst, tt.wantBurst)
			}
			if ps.Count() != tt.wantCount {
				t.Errorf("Count() = %d, want %d", ps.Count(), tt.wantCount)
			}
		})
	}
}

func TestCriticalParticlesUseTint(t *testing.T) {
	ps := NewParticleSystem(200, 200, 0, 1)
	ps.EmitFeedback(vmath.Point{X: 100, Y: 100}, 0.92, testTint)
	for _, p := range ps.Particles() {
		if p.Color != testTint || !p.Glow {
			t.Fatalf("critical particle color=%v glow=%v, want tint with glow", p.Color, p.Glow)
		}
	}
}

func TestEmitExplosion(t *testing.T) {
	ps := NewParticleSystem(400, 400, 0, 7)
	ps.EmitExplosion(vmath.Point{X: 200, Y: 200}, testTint)
	if ps.Count() != constants.ExplosionParticleCount {
		t.Errorf("Count() = %d, want %d", ps.Count(), constants.ExplosionParticleCount)
	}
}

func TestParticleLifeStrictlyDecreases(t *testing.T) {
	ps := NewParticleSystem(200, 200, 0, 3)
	ps.Emit(vmath.Point{X: 100, Y: 100}, 1, TierWeak, testTint)

	prev := ps.Particles()[0].Life
	for i := 0; i < 10; i++ {
		ps.Step(constants.SimulationFrame)
		if ps.Count() == 0 {
			return
		}
		life := ps.Particles()[0].Life
		if life >= prev {
			t.Fatalf("step %d: life %v did not decrease from %v", i, life, prev)
		}
		prev = life
	}
}

func TestParticlesExpireAndStayInBounds(t *testing.T) {
	const w, h = 120.0, 80.0
	ps := NewParticleSystem(w, h, 0, 11)
	ps.EmitExplosion(vmath.Point{X: 60, Y: 40}, testTint)
	ps.EmitFeedback(vmath.Point{X: 10, Y: 70}, 1, testTint)

	for frame := 0; frame < 300; frame++ {
		ps.Step(constants.SimulationFrame)
		for _, p := range ps.Particles() {
			if p.Life <= 0 {
				t.Fatalf("frame %d: dead particle retained with life %v", frame, p.Life)
			}
			if p.X < 0 || p.X > w || p.Y < 0 || p.Y > h {
				t.Fatalf("frame %d: particle escaped bounds at (%v, %v)", frame, p.X, p.Y)
			}
		}
	}

	if ps.Count() != 0 {
		t.Errorf("Count() = %d after 300 frames, want 0", ps.Count())
	}
}

func TestBouncedParticlesDrainFaster(t *testing.T) {
	ps := NewParticleSystem(200, 200, 0, 1)
	ps.particles = append(ps.particles,
		Particle{X: 100, Y: 100, Life: 1, Decay: 0.02},
		Particle{X: 100, Y: 100, Life: 1, Decay: 0.02, Bounces: constants.ParticleBounceLimit + 1},
	)

	ps.Step(constants.SimulationFrame)

	fresh, worn := ps.particles[0].Life, ps.particles[1].Life
	diff := fresh - worn
	if diff < constants.ParticleBounceLifeDrain-1e-9 || diff > constants.ParticleBounceLifeDrain+1e-9 {
		t.Errorf("extra drain = %v, want %v", diff, constants.ParticleBounceLifeDrain)
	}
}

func TestWallReflectsAndCountsBounce(t *testing.T) {
	ps := NewParticleSystem(100, 100, 0, 1)
	ps.particles = append(ps.particles, Particle{X: 98, Y: 50, VX: 5, Life: 1, Decay: 0.01})

	ps.Step(constants.SimulationFrame)

	p := ps.particles[0]
	if p.X != 100 {
		t.Errorf("X = %v, want clamped to 100", p.X)
	}
	if p.VX >= 0 {
		t.Errorf("VX = %v, want reflected negative", p.VX)
	}
	if p.Bounces != 1 {
		t.Errorf("Bounces = %d, want 1", p.Bounces)
	}
}

func TestParticleCapacityBounded(t *testing.T) {
	ps := NewParticleSystem(100, 100, 10, 1)
	ps.Emit(vmath.Point{X: 50, Y: 50}, 30, TierWeak, testTint)
	if ps.Count() != 10 {
		t.Errorf("Count() = %d, want capacity 10", ps.Count())
	}

	ps.Clear()
	if ps.Count() != 0 {
		t.Errorf("Count() after Clear = %d", ps.Count())
	}
}
