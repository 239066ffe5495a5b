package parameter

import "time"

// Player Vitals
const (
	PlayerMaxHealth  = 75.0
	PlayerInitHealth = 50.0

	// PlayerRespawnDelay is the dead time before the level restarts
	PlayerRespawnDelay = 5 * time.Second

	PlayerLives = 3
)

// Player Movement
const (
	PlayerThrust       = 900.0 // units/s^2
	PlayerMaxSpeed     = 320.0
	PlayerDrag         = 4.0 // fraction of velocity shed per second
	PlayerTurnRate     = 8.0 // rad/s toward pointer
	PlayerExtentX      = 48.0
	PlayerExtentY      = 48.0
	PlayerScale        = 0.5
	PlayerSpawnYOffset = 80.0
)

// Player Weapons
const (
	WeaponStraightCooldown = 250 * time.Millisecond
	WeaponSpreadCooldown   = 400 * time.Millisecond
	WeaponSpreadAngle      = 0.2 // radians between spread bullets
	WeaponSpreadAmmo       = 30

	BulletSpeed   = 600.0
	BulletExtentX = 8.0
	BulletExtentY = 16.0
	BulletScale   = 1.0
)
