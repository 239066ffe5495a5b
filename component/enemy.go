package component

import "time"

// EnemyKind is the closed set of hostile actor variants
type EnemyKind int

const (
	EnemyTurtle EnemyKind = iota
	EnemyShooter
	EnemyBoss
	EnemyClone
	EnemyLaserTurret
)

var enemyKindNames = [...]string{"turtle", "shooter", "boss", "clone", "laser_turret"}

func (k EnemyKind) String() string {
	if k < 0 || int(k) >= len(enemyKindNames) {
		return "unknown"
	}
	return enemyKindNames[k]
}

// EnemyComponent tags an entity as part of the active enemy collection
type EnemyComponent struct {
	Kind   EnemyKind
	Points int

	// ContactDamage is dealt to the player on body contact
	ContactDamage float64

	// DestroyOnContact removes the enemy after a damaging body contact
	DestroyOnContact bool

	// Physical enemies push the player back with a momentum exchange on contact
	Physical bool

	// VampContact accumulates time spent inside the vamp area
	VampContact time.Duration
}
