package component

import "time"

// WeaponKind selects the player's fire pattern
type WeaponKind int

const (
	WeaponStraight WeaponKind = iota
	WeaponSpread
)

// PlayerComponent holds score and weapon state
type PlayerComponent struct {
	Score int

	Weapon       WeaponKind
	Ammo         int // -1 is unlimited
	FireCooldown time.Duration

	// DeadTime accumulates after death until the level restarts
	DeadTime time.Duration
}
