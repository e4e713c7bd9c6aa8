package systems

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/lixenwraith/runecast/constants"
	"github.com/lixenwraith/runecast/core"
	"github.com/lixenwraith/runecast/vmath"
)

// AccuracyTier buckets a sample accuracy for visual feedback
type AccuracyTier uint8

const (
	TierWeak AccuracyTier = iota
	TierGood
	TierCritical
	TierPerfect
)

// TierOf returns the feedback tier for an accuracy value
func TierOf(accuracy float64) AccuracyTier {
	switch {
	case accuracy >= constants.AccuracyPerfect:
		return TierPerfect
	case accuracy >= constants.AccuracyCritical:
		return TierCritical
	case accuracy >= constants.AccuracyGood:
		return TierGood
	default:
		return TierWeak
	}
}

// Particle is a short-lived spark in pixel space
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Life    float64 // 1 at birth, removed at <= 0
	Decay   float64 // life lost per simulation frame
	Size    float64
	Color   core.RGB
	Glow    bool
	Bounces int
}

// ParticleSystem owns a fixed-capacity particle pool
// Dead particles are removed by swapping with the last live one, so order is not stable
type ParticleSystem struct {
	particles []Particle
	capacity  int
	next      int // overwrite cursor once the pool is full
	width     float64
	height    float64
	rng       *rand.Rand
}

// NewParticleSystem creates a pool bounded to a width x height pixel surface
func NewParticleSystem(width, height float64, capacity int, seed uint64) *ParticleSystem {
	if capacity <= 0 {
		capacity = constants.ParticleDefaultCapacity
	}
	return &ParticleSystem{
		particles: make([]Particle, 0, capacity),
		capacity:  capacity,
		width:     width,
		height:    height,
		rng:       rand.New(rand.NewPCG(seed, seed^0x9a271c1e)),
	}
}

// Resize updates the bounce bounds and pulls live particles inside them
func (ps *ParticleSystem) Resize(width, height float64) {
	ps.width = width
	ps.height = height
	for i := range ps.particles {
		p := &ps.particles[i]
		p.X = vmath.Clamp(p.X, 0, width)
		p.Y = vmath.Clamp(p.Y, 0, height)
	}
}

// Emit spawns count particles at pos styled for the tier
// Perfect samples add a faster burst; the return value reports it so the caller can pulse shake
func (ps *ParticleSystem) Emit(pos vmath.Point, count int, tier AccuracyTier, tint core.RGB) bool {
	speed, size := constants.EmitSpeedWeak, constants.EmitSizeWeak
	glow := false
	switch tier {
	case TierPerfect, TierCritical:
		speed, size, glow = constants.EmitSpeedCritical, constants.EmitSizeCritical, true
	case TierGood:
		speed, size = constants.EmitSpeedGood, constants.EmitSizeGood
	}

	for i := 0; i < count; i++ {
		ps.spawn(pos, ps.randomAngle(), speed*(0.5+ps.rng.Float64()*0.5), size, ps.tierColor(tier, tint), glow)
	}

	if tier != TierPerfect {
		return false
	}
	for i := 0; i < constants.ParticleBurstCount; i++ {
		angle := 2 * math.Pi * float64(i) / constants.ParticleBurstCount
		ps.spawn(pos, angle, speed*constants.ParticleBurstSpeedFactor, size, tint, true)
	}
	return true
}

// EmitFeedback emits the tier-appropriate count for one gesture sample
func (ps *ParticleSystem) EmitFeedback(pos vmath.Point, accuracy float64, tint core.RGB) bool {
	tier := TierOf(accuracy)
	count := constants.EmitCountWeak
	switch tier {
	case TierPerfect, TierCritical:
		count = constants.EmitCountCritical
	case TierGood:
		count = constants.EmitCountGood
	}
	return ps.Emit(pos, count, tier, tint)
}

// EmitExplosion releases a radial ring of glowing particles at center
func (ps *ParticleSystem) EmitExplosion(center vmath.Point, tint core.RGB) {
	for i := 0; i < constants.ExplosionParticleCount; i++ {
		angle := 2*math.Pi*float64(i)/constants.ExplosionParticleCount + (ps.rng.Float64()-0.5)*0.2
		speed := constants.ExplosionMinSpeed + ps.rng.Float64()*(constants.ExplosionMaxSpeed-constants.ExplosionMinSpeed)
		color := tint
		if i%3 == 0 {
			color = tint.Brighten(0.4)
		}
		ps.spawn(center, angle, speed, constants.ExplosionSize, color, true)
	}
}

// Step advances all particles by dt and compacts out dead ones
func (ps *ParticleSystem) Step(dt time.Duration) {
	if dt <= 0 || len(ps.particles) == 0 {
		return
	}
	frames := frameScale(dt)
	drag := math.Pow(constants.ParticleVelocityDecay, frames)

	for i := 0; i < len(ps.particles); {
		p := &ps.particles[i]

		p.X += p.VX * frames
		p.Y += p.VY * frames

		if p.X < 0 {
			p.X = 0
			p.VX = -p.VX * constants.ParticleWallDamping
			p.Bounces++
		} else if p.X > ps.width {
			p.X = ps.width
			p.VX = -p.VX * constants.ParticleWallDamping
			p.Bounces++
		}
		if p.Y < 0 {
			p.Y = 0
			p.VY = -p.VY * constants.ParticleWallDamping
			p.Bounces++
		} else if p.Y > ps.height {
			p.Y = ps.height
			p.VY = -p.VY * constants.ParticleWallDamping
			p.Bounces++
		}

		p.VX *= drag
		p.VY *= drag
		p.VY += constants.ParticleGravity * frames

		p.Life -= p.Decay * frames
		if p.Bounces > constants.ParticleBounceLimit {
			p.Life -= constants.ParticleBounceLifeDrain * frames
		}

		if p.Life <= 0 {
			last := len(ps.particles) - 1
			ps.particles[i] = ps.particles[last]
			ps.particles = ps.particles[:last]
			continue
		}
		i++
	}

	if ps.next > len(ps.particles) {
		ps.next = 0
	}
}

// Particles returns the live pool; callers must not retain or modify it
func (ps *ParticleSystem) Particles() []Particle {
	return ps.particles
}

// Count returns the number of live particles
func (ps *ParticleSystem) Count() int {
	return len(ps.particles)
}

// Clear removes all particles
func (ps *ParticleSystem) Clear() {
	ps.particles = ps.particles[:0]
	ps.next = 0
}

func (ps *ParticleSystem) spawn(pos vmath.Point, angle, speed, size float64, color core.RGB, glow bool) {
	p := Particle{
		X:     pos.X,
		Y:     pos.Y,
		VX:    math.Cos(angle) * speed,
		VY:    math.Sin(angle) * speed,
		Life:  1,
		Decay: constants.ParticleMinLifeDecay + ps.rng.Float64()*(constants.ParticleMaxLifeDecay-constants.ParticleMinLifeDecay),
		Size:  size,
		Color: color,
		Glow:  glow,
	}

	if len(ps.particles) < ps.capacity {
		ps.particles = append(ps.particles, p)
		return
	}
	// Full: overwrite round-robin
	ps.particles[ps.next] = p
	ps.next = (ps.next + 1) % ps.capacity
}

func (ps *ParticleSystem) randomAngle() float64 {
	return ps.rng.Float64() * 2 * math.Pi
}

// tierColor picks rarity tint for critical hits and progressively dimmer sparks below
func (ps *ParticleSystem) tierColor(tier AccuracyTier, tint core.RGB) core.RGB {
	hue := ps.rng.Float64() * 360
	switch tier {
	case TierPerfect, TierCritical:
		return tint
	case TierGood:
		return core.HSL(hue, 0.2, 0.85)
	default:
		return core.HSL(hue, 0.1, 0.55)
	}
}
