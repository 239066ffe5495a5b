package parameter

import "time"

// Laser Turret
const (
	LaserChargeDuration  = 3000 * time.Millisecond
	LaserFireDuration    = 5000 * time.Millisecond
	LaserCycle           = 2000 * time.Millisecond // Off time before the next charge
	LaserRotationRate    = 0.1                     // rad/s while firing
	LaserLength          = 2000.0
	LaserWidth           = 20.0
	LaserDamage          = 10.0
	LaserPrimedParticles = 10
	LaserBeamParticles   = 4

	LaserTurretHealth  = 30.0
	LaserTurretPoints  = 2000
	LaserTurretScale   = 0.3
	LaserTurretExtentX = 160.0
	LaserTurretExtentY = 160.0
)
