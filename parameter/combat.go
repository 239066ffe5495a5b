package parameter

import "time"

// Collision radius shrink factors, applied to max(bounding box) per pair type
const (
	HitRadiusPlayer   = 0.4
	HitRadiusEnemy    = 0.5
	HitRadiusBullet   = 0.5
	HitRadiusBoss     = 0.4
	HitRadiusPickup   = 0.65
	HitRadiusLaser    = 0.6  // Of half the target extent
	PickupOwnRadius   = 0.55 // Pickup's own radius before the shared shrink
	BossMassPerUnit   = 200.0
	PlayerMassPerUnit = 100.0
)

// Timers
const (
	// PlayerIframes is the damage immunity window after a hit
	PlayerIframes = 500 * time.Millisecond

	// HitFlashDuration is the tint window on damaged bosses
	HitFlashDuration = 100 * time.Millisecond
)

// Damage
const (
	// DamageCollide is contact damage dealt by regular enemies
	DamageCollide = 5.0

	// DamageEnemyBullet is damage per hostile bullet
	DamageEnemyBullet = 5.0

	// DamagePlayerBullet is damage per friendly bullet
	DamagePlayerBullet = 1.0
)
