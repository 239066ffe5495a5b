package content

import (
	"math"

	"github.com/lixenwraith/vape/component"
	"github.com/lixenwraith/vape/core"
	"github.com/lixenwraith/vape/engine"
	"github.com/lixenwraith/vape/parameter"
	"github.com/lixenwraith/vape/vmath"
)

// PlayerStart is the spawn point near the bottom centre of the screen
func PlayerStart(w *engine.World) vmath.Vec2 {
	cfg := w.Resources.Config
	return vmath.V(cfg.Width()/2, cfg.Height()-parameter.PlayerSpawnYOffset)
}

// SpawnPlayer builds the player at pos and records it in the game state
// Rotation 0 faces the top of the screen
func SpawnPlayer(w *engine.World, pos vmath.Vec2) (core.Entity, error) {
	eb, err := body(w, TexturePlayer, 'A', parameter.LayerPlayer, parameter.PlayerScale, parameter.HitRadiusPlayer,
		component.MotionComponent{
			Position:       pos,
			Rotation:       0,
			RotationTarget: 0,
			RotationRate:   parameter.PlayerTurnRate,
		})
	if err != nil {
		return core.InvalidEntity, err
	}

	c := &w.Components
	engine.With(eb, c.Health, component.NewHealth(parameter.PlayerInitHealth, parameter.PlayerMaxHealth))
	engine.With(eb, c.Combat, component.CombatComponent{})
	engine.With(eb, c.Player, component.PlayerComponent{Weapon: component.WeaponStraight, Ammo: -1})
	engine.With(eb, c.Vamp, component.VampComponent{
		MaxCharge: parameter.VampMaxCharge,
		Radius:    parameter.VampRadius,
	})
	engine.With(eb, c.Effect, component.EffectComponent{
		Shader: "player",
		Tint:   component.Color{R: 255, G: 255, B: 255},
		Flash:  component.Color{R: 255, G: 255, B: 255},
	})
	engine.With(eb, c.Emitter, component.EmitterComponent{Max: 256})

	e := eb.Build()
	w.Resources.Game.Player = e
	return e, nil
}

// BulletSpec describes one projectile
type BulletSpec struct {
	Owner    core.Entity
	Position vmath.Vec2
	Facing   float64 // Travel direction, 0 = down
	Speed    float64
	Damage   float64
	Hostile  bool
}

// SpawnBullet builds a projectile and adds it to the matching projectile collection
func SpawnBullet(w *engine.World, spec BulletSpec) (core.Entity, error) {
	texture, glyph := TextureBullet, '|'
	if spec.Hostile {
		texture, glyph = TextureEnemyBullet, '*'
	}

	eb, err := body(w, texture, glyph, parameter.LayerProjectile, parameter.BulletScale, parameter.HitRadiusBullet,
		component.MotionComponent{
			Position: spec.Position,
			Velocity: vmath.FromAngle(spec.Facing).Scale(spec.Speed),
			Rotation: rotationFor(spec.Facing),
		})
	if err != nil {
		return core.InvalidEntity, err
	}
	engine.With(eb, w.Components.Bullet, component.BulletComponent{
		Owner:   spec.Owner,
		Damage:  spec.Damage,
		Hostile: spec.Hostile,
	})

	e := eb.Build()
	w.Resources.Projectiles.Add(e, spec.Hostile)
	return e, nil
}

// SpawnExplosion builds a transient particle burst at pos
func SpawnExplosion(w *engine.World, pos vmath.Vec2, count int) core.Entity {
	if count <= 0 {
		count = parameter.ExplosionParticles
	}
	rng := w.Resources.Rand

	em := component.EmitterComponent{
		Particles: make([]component.Particle, 0, count),
		Max:       count,
		Transient: true,
	}
	for i := 0; i < count; i++ {
		angle := rng.Range(0, 2*math.Pi)
		speed := rng.Range(parameter.ExplosionSpeed/4, parameter.ExplosionSpeed)
		em.Emit(component.Particle{
			Position: pos,
			Velocity: vmath.FromAngle(angle).Scale(speed),
			Life:     parameter.ExplosionLife,
			Color:    component.Color{R: 255, G: uint8(96 + rng.Intn(160)), B: 32},
		})
	}

	c := &w.Components
	eb := w.NewEntity()
	engine.With(eb, c.Motion, component.MotionComponent{Position: pos})
	engine.With(eb, c.Emitter, em)
	engine.With(eb, c.Sprite, component.SpriteComponent{Texture: TextureExplosion, Glyph: '.', Layer: parameter.LayerParticle})
	return eb.Build()
}
