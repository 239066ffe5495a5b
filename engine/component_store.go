package engine

import (
	"github.com/lixenwraith/vape/component"
)

// ComponentStore provides cached pointers to the typed component stores
// Systems copy it once at construction
type ComponentStore struct {
	// Spatial
	Motion    *Store[component.MotionComponent]
	Physics   *Store[component.PhysicsComponent]
	Bounds    *Store[component.BoundsComponent]
	Transform *Store[component.TransformComponent]

	// Presentation
	Sprite  *Store[component.SpriteComponent]
	Effect  *Store[component.EffectComponent]
	Emitter *Store[component.EmitterComponent]

	// Vitals
	Health *Store[component.HealthComponent]
	Combat *Store[component.CombatComponent]

	// Actor variants
	Player  *Store[component.PlayerComponent]
	Vamp    *Store[component.VampComponent]
	Enemy   *Store[component.EnemyComponent]
	Bullet  *Store[component.BulletComponent]
	Pickup  *Store[component.PickupComponent]
	Shooter *Store[component.ShooterComponent]
	Boss    *Store[component.BossComponent]
	Clone   *Store[component.CloneComponent]
	Laser   *Store[component.LaserComponent]
}

type namedStore struct {
	name  string
	store AnyStore
}

// initComponentStores creates every store and registers it for lifecycle operations
func initComponentStores(w *World) {
	c := &w.Components

	c.Motion = NewStore[component.MotionComponent]()
	c.Physics = NewStore[component.PhysicsComponent]()
	c.Bounds = NewStore[component.BoundsComponent]()
	c.Transform = NewStore[component.TransformComponent]()

	c.Sprite = NewStore[component.SpriteComponent]()
	c.Effect = NewStore[component.EffectComponent]()
	c.Emitter = NewStore[component.EmitterComponent]()

	c.Health = NewStore[component.HealthComponent]()
	c.Combat = NewStore[component.CombatComponent]()

	c.Player = NewStore[component.PlayerComponent]()
	c.Vamp = NewStore[component.VampComponent]()
	c.Enemy = NewStore[component.EnemyComponent]()
	c.Bullet = NewStore[component.BulletComponent]()
	c.Pickup = NewStore[component.PickupComponent]()
	c.Shooter = NewStore[component.ShooterComponent]()
	c.Boss = NewStore[component.BossComponent]()
	c.Clone = NewStore[component.CloneComponent]()
	c.Laser = NewStore[component.LaserComponent]()

	w.stores = []namedStore{
		{"motion", c.Motion},
		{"physics", c.Physics},
		{"bounds", c.Bounds},
		{"transform", c.Transform},
		{"sprite", c.Sprite},
		{"effect", c.Effect},
		{"emitter", c.Emitter},
		{"health", c.Health},
		{"combat", c.Combat},
		{"player", c.Player},
		{"vamp", c.Vamp},
		{"enemy", c.Enemy},
		{"bullet", c.Bullet},
		{"pickup", c.Pickup},
		{"shooter", c.Shooter},
		{"boss", c.Boss},
		{"clone", c.Clone},
		{"laser", c.Laser},
	}
	for _, ns := range w.stores {
		ns.store.bind(w.Exists)
	}
}
