package constants

// Particle physics, per simulation frame
const (
	ParticleWallDamping   = 0.7
	ParticleVelocityDecay = 0.98
	ParticleGravity       = 0.5

	// ParticleBounceLimit is the bounce count after which life drains faster
	ParticleBounceLimit      = 3
	ParticleBounceLifeDrain  = 0.02
	ParticleMinLifeDecay     = 0.015
	ParticleMaxLifeDecay     = 0.035
	ParticleDefaultCapacity  = 1024
	ParticleBurstCount       = 8
	ParticleBurstSpeedFactor = 1.5
)

// Emission per accuracy tier
const (
	EmitCountCritical = 6
	EmitCountGood     = 4
	EmitCountWeak     = 2

	EmitSpeedCritical = 4.0
	EmitSpeedGood     = 3.0
	EmitSpeedWeak     = 2.0

	EmitSizeCritical = 4.0
	EmitSizeGood     = 3.0
	EmitSizeWeak     = 2.0
)

// Cast resolution explosion
const (
	ExplosionParticleCount = 40
	ExplosionMinSpeed      = 6.0
	ExplosionMaxSpeed      = 14.0
	ExplosionSize          = 5.0
)

// Screen shake
const (
	ShakePulseIntensity = 6.0
	ShakeDecay          = 0.85
	ShakeCutoff         = 0.5
	ShakeMaxIntensity   = 16.0
)
