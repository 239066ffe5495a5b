package content

import (
	"math"

	"github.com/lixenwraith/vape/component"
	"github.com/lixenwraith/vape/core"
	"github.com/lixenwraith/vape/engine"
	"github.com/lixenwraith/vape/level"
	"github.com/lixenwraith/vape/parameter"
	"github.com/lixenwraith/vape/vmath"
)

// Descriptor.Direction is the facing angle (0 = down the screen)
// Sprites are authored facing up, so rotation is facing minus pi
func rotationFor(facing float64) float64 {
	return facing - math.Pi
}

// body stages the components every visible actor carries
// The texture extent is resolved first so a missing asset aborts before anything is staged
func body(w *engine.World, texture string, glyph rune, layer int, scale, hitRadius float64, motion component.MotionComponent) (*engine.EntityBuilder, error) {
	ext, err := extent(w, texture)
	if err != nil {
		return nil, err
	}

	c := &w.Components
	eb := w.NewEntity()
	engine.With(eb, c.Motion, motion)
	phys := component.PhysicsComponent{
		Scale:     vmath.V(scale, scale),
		Extent:    ext,
		HitRadius: hitRadius,
	}
	engine.With(eb, c.Physics, phys)
	engine.With(eb, c.Sprite, component.SpriteComponent{Texture: texture, Glyph: glyph, Layer: layer})
	engine.With(eb, c.Transform, component.TransformComponent{Model: phys.Model(motion)})
	return eb, nil
}

func extent(w *engine.World, texture string) (vmath.Vec2, error) {
	cat := w.Resources.Assets.Catalog
	if cat == nil {
		cat = DefaultCatalog()
	}
	return cat.Extent(texture)
}

// enemy stages the shared hostile components on eb
func enemy(w *engine.World, eb *engine.EntityBuilder, kind component.EnemyKind, health float64, points int, destroyOnContact bool) {
	c := &w.Components
	engine.With(eb, c.Health, component.NewHealth(health, health))
	engine.With(eb, c.Combat, component.CombatComponent{})
	engine.With(eb, c.Effect, component.EffectComponent{
		Shader: "enemy",
		Tint:   component.Color{R: 255, G: 255, B: 255},
		Flash:  component.Color{R: 255, G: 64, B: 64},
	})
	engine.With(eb, c.Enemy, component.EnemyComponent{
		Kind:             kind,
		Points:           points,
		ContactDamage:    parameter.DamageCollide,
		DestroyOnContact: destroyOnContact,
		Physical:         kind == component.EnemyBoss,
	})
}

// NewTurtle builds a drifting one-hit enemy
func NewTurtle(w *engine.World, d level.Descriptor) (core.Entity, error) {
	eb, err := body(w, TextureTurtle, 'o', parameter.LayerEnemy, parameter.TurtleScale, parameter.HitRadiusEnemy,
		component.MotionComponent{Position: d.Position, Velocity: d.Velocity, Rotation: rotationFor(d.Direction)})
	if err != nil {
		return core.InvalidEntity, err
	}
	enemy(w, eb, component.EnemyTurtle, parameter.TurtleHealth, parameter.TurtlePoints, true)
	return eb.Build(), nil
}

// NewShooter builds a descending enemy firing bursts along its facing
func NewShooter(w *engine.World, d level.Descriptor) (core.Entity, error) {
	vel := d.Velocity
	if vel == (vmath.Vec2{}) {
		vel = vmath.FromAngle(d.Direction).Scale(parameter.ShooterSpeed)
	}
	eb, err := body(w, TextureShooter, 'V', parameter.LayerEnemy, parameter.ShooterScale, parameter.HitRadiusEnemy,
		component.MotionComponent{Position: d.Position, Velocity: vel, Rotation: rotationFor(d.Direction)})
	if err != nil {
		return core.InvalidEntity, err
	}
	enemy(w, eb, component.EnemyShooter, parameter.ShooterHealth, parameter.ShooterPoints, true)
	engine.With(eb, w.Components.Shooter, component.NewShooter(
		parameter.ShooterBurstCooldown, parameter.ShooterBulletCooldown,
		parameter.DamageEnemyBullet, parameter.ShooterBulletSpeed))
	return eb.Build(), nil
}

// NewBoss builds the patrolling phase boss
func NewBoss(w *engine.World, d level.Descriptor) (core.Entity, error) {
	ext, err := extent(w, TextureBoss)
	if err != nil {
		return core.InvalidEntity, err
	}
	half := parameter.BossScale * ext.X / 2

	eb, err := body(w, TextureBoss, 'W', parameter.LayerEnemy, parameter.BossScale, parameter.HitRadiusBoss,
		component.MotionComponent{
			Position: d.Position,
			Velocity: vmath.V(parameter.BossSpeed, 0),
			Rotation: rotationFor(0),
		})
	if err != nil {
		return core.InvalidEntity, err
	}

	c := &w.Components
	enemy(w, eb, component.EnemyBoss, parameter.BossHealth, parameter.BossPoints, false)
	engine.With(eb, c.Boss, component.BossComponent{
		Phase:     component.BossPhaseOne,
		Speed:     parameter.BossSpeed,
		Direction: 1,
	})
	engine.With(eb, c.Bounds, component.BoundsComponent{
		MinX:    half,
		MaxX:    w.Resources.Config.Width() - half,
		Reflect: true,
	})
	engine.With(eb, c.Shooter, component.NewShooter(
		parameter.BossBurstCooldown, parameter.BossBulletCooldown,
		parameter.DamageEnemyBullet, parameter.BossBulletSpeed))
	return eb.Build(), nil
}

func newClone(w *engine.World, d level.Descriptor, leader bool) (core.Entity, error) {
	eb, err := body(w, TextureClone, 'X', parameter.LayerEnemy, parameter.CloneScale, parameter.HitRadiusEnemy,
		component.MotionComponent{Position: d.Position, Rotation: rotationFor(0)})
	if err != nil {
		return core.InvalidEntity, err
	}

	c := &w.Components
	enemy(w, eb, component.EnemyClone, parameter.CloneHealth, parameter.ClonePoints, false)
	engine.With(eb, c.Clone, component.CloneComponent{
		State:  component.CloneMoving,
		Target: d.Target,
		Speed:  parameter.CloneSeekSpeed,
		Leader: leader,
	})

	shooter := component.NewShooter(
		parameter.CloneBurstCooldown, parameter.CloneBulletCooldown,
		parameter.DamageEnemyBullet, parameter.ShooterBulletSpeed)
	shooter.Armed = false
	shooter.AimAtPlayer = true
	engine.With(eb, c.Shooter, shooter)
	return eb.Build(), nil
}

// NewCloneLead builds the squad leader, the only clone that shoots
func NewCloneLead(w *engine.World, d level.Descriptor) (core.Entity, error) {
	return newClone(w, d, true)
}

// NewClone builds a squad follower
func NewClone(w *engine.World, d level.Descriptor) (core.Entity, error) {
	return newClone(w, d, false)
}

// NewLaserTurret builds a stationary beam turret
func NewLaserTurret(w *engine.World, d level.Descriptor) (core.Entity, error) {
	eb, err := body(w, TextureLaserTurret, 'T', parameter.LayerEnemy, parameter.LaserTurretScale, parameter.HitRadiusEnemy,
		component.MotionComponent{Position: d.Position, Rotation: rotationFor(d.Direction)})
	if err != nil {
		return core.InvalidEntity, err
	}

	c := &w.Components
	enemy(w, eb, component.EnemyLaserTurret, parameter.LaserTurretHealth, parameter.LaserTurretPoints, false)
	engine.With(eb, c.Laser, component.LaserComponent{
		State:          component.LaserOff,
		CycleRemaining: parameter.LaserCycle,
		Damage:         parameter.LaserDamage,
		Length:         parameter.LaserLength,
		Width:          parameter.LaserWidth,
	})
	engine.With(eb, c.Emitter, component.EmitterComponent{Max: 512})
	return eb.Build(), nil
}

func newPickup(w *engine.World, d level.Descriptor, texture string, glyph rune, p component.PickupComponent) (core.Entity, error) {
	vel := d.Velocity
	if vel == (vmath.Vec2{}) {
		vel = vmath.V(0, parameter.PickupFallSpeed)
	}
	eb, err := body(w, texture, glyph, parameter.LayerProjectile, parameter.PickupScale, parameter.HitRadiusPickup,
		component.MotionComponent{Position: d.Position, Velocity: vel})
	if err != nil {
		return core.InvalidEntity, err
	}
	engine.With(eb, w.Components.Pickup, p)
	return eb.Build(), nil
}

// NewHealthPickup builds a falling full-heal pickup
func NewHealthPickup(w *engine.World, d level.Descriptor) (core.Entity, error) {
	return newPickup(w, d, TextureHealthPickup, '+', component.PickupComponent{Kind: component.PickupHealth})
}

// NewWeaponPickup builds a falling spread-shot pickup
func NewWeaponPickup(w *engine.World, d level.Descriptor) (core.Entity, error) {
	return newPickup(w, d, TextureWeaponPickup, '$', component.PickupComponent{
		Kind:   component.PickupWeapon,
		Weapon: component.WeaponSpread,
		Amount: parameter.WeaponSpreadAmmo,
	})
}
