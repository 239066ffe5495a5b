package parameter

import "time"

// Particles
const (
	// ParticleMax caps live particles per emitter
	ParticleMax = 5000

	ExplosionParticles = 40
	ExplosionSpeed     = 160.0
	ExplosionLife      = 600 * time.Millisecond

	WarningParticleLife = 300 * time.Millisecond
	BeamParticleLife    = 200 * time.Millisecond
	BeamParticleSpeed   = 400.0

	// VampParticlesPerHeal is how many captured drain particles restore one heal unit
	VampParticlesPerHeal = 6
)
