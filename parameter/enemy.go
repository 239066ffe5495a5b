package parameter

import "time"

// Turtle: drifting fodder
const (
	TurtleHealth  = 1.0
	TurtlePoints  = 100
	TurtleExtentX = 64.0
	TurtleExtentY = 64.0
	TurtleScale   = 0.5
)

// Generic Shooter
const (
	ShooterHealth         = 1.0
	ShooterPoints         = 250
	ShooterSpeed          = 180.0
	ShooterScale          = 0.28
	ShooterExtentX        = 160.0
	ShooterExtentY        = 160.0
	ShooterBurstCooldown  = 1000 * time.Millisecond
	ShooterBulletCooldown = 200 * time.Millisecond
	ShooterBulletSpeed    = 300.0
)

// BurstSize is the bullet count of every burst
const BurstSize = 3

// Clone Squad
const (
	CloneHealth         = 20.0
	ClonePoints         = 1000
	CloneScale          = 0.2
	CloneExtentX        = 256.0
	CloneExtentY        = 256.0
	CloneSeekSpeed      = 120.0
	CloneArriveEpsilon  = 0.5
	CloneStunDuration   = 1300 * time.Millisecond
	CloneStunRiseSpeed  = 110.0
	CloneStunSpin       = 0.1
	CloneAttackDescend  = 90.0
	CloneAttackFloorY   = 300.0
	CloneTrackDivisor   = 3.0
	CloneBurstCooldown  = 1000 * time.Millisecond
	CloneBulletCooldown = 200 * time.Millisecond
)
