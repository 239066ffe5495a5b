package component

import (
	"github.com/lixenwraith/vape/core"
)

// BulletComponent marks a linear projectile entity with contact damage
type BulletComponent struct {
	Owner   core.Entity // Instigator credited with kills
	Damage  float64
	Hostile bool
}
