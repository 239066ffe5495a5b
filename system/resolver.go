package system

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/vape/component"
	"github.com/lixenwraith/vape/core"
	"github.com/lixenwraith/vape/engine"
	"github.com/lixenwraith/vape/event"
	"github.com/lixenwraith/vape/parameter"
	"github.com/lixenwraith/vape/physics"
	"github.com/lixenwraith/vape/vmath"
)

// Resolver applies the outcome of a detected contact
// Every path that changes health, score or liveness from a collision goes through here
type Resolver struct {
	world *engine.World

	statDamage *atomic.Int64
	statKills  *atomic.Int64
}

// NewResolver creates a resolver bound to world
func NewResolver(world *engine.World) *Resolver {
	return &Resolver{
		world:      world,
		statDamage: world.Resources.Status.Ints.Get("combat.damage_applied"),
		statKills:  world.Resources.Status.Ints.Get("combat.kills"),
	}
}

// Damage applies amount to target and returns true if this call killed it
// No-op while target has iframes, or while debug invincibility covers the player
func (r *Resolver) Damage(target core.Entity, amount float64, instigator core.Entity) bool {
	_, killed := r.apply(target, amount, instigator)
	return killed
}

func (r *Resolver) apply(target core.Entity, amount float64, instigator core.Entity) (applied, killed bool) {
	w := r.world
	c := &w.Components

	if !w.IsAlive(target) {
		return false, false
	}
	health, ok := c.Health.GetComponent(target)
	if !ok || health.Dead {
		return false, false
	}

	isPlayer := c.Player.HasEntity(target)
	if isPlayer && w.Resources.Game.Debug.Invincible {
		return false, false
	}

	combat, hasCombat := c.Combat.GetComponent(target)
	if hasCombat && combat.Immune() {
		return false, false
	}

	killed = health.Damage(amount)
	c.Health.SetComponent(target, health)
	r.statDamage.Add(1)

	if hasCombat {
		if isPlayer {
			combat.DamageImmunityRemaining = parameter.PlayerIframes
		}
		combat.HitFlashRemaining = parameter.HitFlashDuration
		c.Combat.SetComponent(target, combat)
	}

	if c.Boss.HasEntity(target) {
		playSound(w, core.SoundBossHit)
	}

	if isPlayer {
		w.PushEvent(event.EventPlayerDamaged, &event.PlayerDamagedPayload{
			Amount:    amount,
			Remaining: health.Current,
		})
		if killed {
			r.playerDied(target)
		}
		return true, killed
	}

	if killed {
		r.enemyDied(target, instigator, false)
	}
	return true, killed
}

// position returns an entity's position or the zero vector
func (r *Resolver) position(e core.Entity) vmath.Vec2 {
	m, _ := r.world.Components.Motion.GetComponent(e)
	return m.Position
}

func (r *Resolver) playerDied(player core.Entity) {
	w := r.world
	explode(w, r.position(player), 0)
	playSound(w, core.SoundPlayerDeath)
	w.PushEvent(event.EventPlayerDied, &event.EntityPayload{Entity: player})
}

// enemyDied credits the instigating player, emits side effects and marks the enemy
// Vamp kills award no score
func (r *Resolver) enemyDied(target, instigator core.Entity, byVamp bool) {
	w := r.world
	c := &w.Components

	en, _ := c.Enemy.GetComponent(target)
	points := 0
	if !byVamp {
		points = en.Points
		if pc, ok := c.Player.GetComponent(instigator); ok {
			pc.Score += points
			c.Player.SetComponent(instigator, pc)
		}
	}

	explode(w, r.position(target), 0)
	playSound(w, core.SoundExplosion)
	w.PushEvent(event.EventEnemyKilled, &event.EnemyKilledPayload{
		Entity: target,
		Kind:   int(en.Kind),
		Points: points,
		ByVamp: byVamp,
	})
	w.MarkForDeath(target)
	r.statKills.Add(1)
}

// ContactPlayer resolves the player touching an enemy body
func (r *Resolver) ContactPlayer(player, enemy core.Entity) {
	w := r.world
	c := &w.Components

	en, ok := c.Enemy.GetComponent(enemy)
	if !ok {
		return
	}

	if en.Physical {
		r.bounce(player, enemy)
	}

	if combat, ok := c.Combat.GetComponent(player); ok && combat.Immune() {
		return
	}

	applied, _ := r.apply(player, en.ContactDamage, enemy)
	if !applied && !en.DestroyOnContact {
		return
	}

	explode(w, r.position(enemy), 0)
	playSound(w, core.SoundExplosion)

	switch {
	case en.Kind == component.EnemyClone:
		r.stunClone(enemy)
	case en.DestroyOnContact:
		if h, ok := c.Health.GetComponent(enemy); ok {
			h.Dead = true
			c.Health.SetComponent(enemy, h)
		}
		w.MarkForDeath(enemy)
	}
}

// bounce pushes the player out of a physical enemy with a momentum exchange
func (r *Resolver) bounce(player, other core.Entity) {
	c := &r.world.Components

	pm, ok1 := c.Motion.GetComponent(player)
	pp, ok2 := c.Physics.GetComponent(player)
	om, ok3 := c.Motion.GetComponent(other)
	op, ok4 := c.Physics.GetComponent(other)
	if !ok1 || !ok2 || !ok3 || !ok4 {
		return
	}

	body := physics.Body{Position: pm.Position, Velocity: pm.Velocity, Radius: pp.Radius()}
	hit := physics.ApplyCollision(&body,
		physics.Body{Position: om.Position, Velocity: om.Velocity, Radius: op.Radius()},
		physics.CollisionProfile{
			TargetMassPerRadius: parameter.PlayerMassPerUnit,
			OtherMassPerRadius:  parameter.BossMassPerUnit,
		})
	if !hit {
		return
	}
	pm.Position = body.Position
	pm.Velocity = body.Velocity
	pm.Acceleration = vmath.Vec2{}
	c.Motion.SetComponent(player, pm)
}

func (r *Resolver) stunClone(e core.Entity) {
	c := &r.world.Components
	cl, ok := c.Clone.GetComponent(e)
	if !ok || !cl.Stun(parameter.CloneStunDuration) {
		return
	}
	c.Clone.SetComponent(e, cl)
	r.world.PushEvent(event.EventCloneStunned, &event.EntityPayload{Entity: e})
}

// BulletHit resolves a bullet touching target and consumes the bullet
// A bullet is spent on its first target, so a second overlapping enemy is never charged
func (r *Resolver) BulletHit(bullet, target core.Entity) {
	w := r.world
	b, ok := w.Components.Bullet.GetComponent(bullet)
	if !ok {
		return
	}
	r.apply(target, b.Damage, b.Owner)
	w.MarkForDeath(bullet)
}

// VampContact accumulates drain time on an enemy inside the vamp area
// Regular enemies die after VampDamageTimer, bosses take periodic damage, clones are stunned
func (r *Resolver) VampContact(player, enemy core.Entity, dt time.Duration) {
	w := r.world
	c := &w.Components

	en, ok := c.Enemy.GetComponent(enemy)
	if !ok {
		return
	}
	en.VampContact += dt

	switch en.Kind {
	case component.EnemyClone:
		c.Enemy.SetComponent(enemy, en)
		r.stunClone(enemy)

	case component.EnemyBoss:
		ticks := 0
		for en.VampContact >= parameter.VampDamageTimerBoss {
			en.VampContact -= parameter.VampDamageTimerBoss
			ticks++
		}
		c.Enemy.SetComponent(enemy, en)
		for i := 0; i < ticks; i++ {
			if r.Damage(enemy, parameter.VampDamageBoss, player) {
				break
			}
		}

	default:
		c.Enemy.SetComponent(enemy, en)
		if en.VampContact < parameter.VampDamageTimer {
			return
		}
		if h, ok := c.Health.GetComponent(enemy); ok {
			if h.Dead {
				return
			}
			h.Dead = true
			h.Current = 0
			c.Health.SetComponent(enemy, h)
		}
		r.enemyDied(enemy, player, true)
		r.drainInto(player, enemy)
	}
}

// drainInto heals the player and counts the kill toward the level quota
func (r *Resolver) drainInto(player, enemy core.Entity) {
	w := r.world
	c := &w.Components

	if h, ok := c.Health.GetComponent(player); ok {
		h.Heal(parameter.VampHeal)
		c.Health.SetComponent(player, h)
	}

	if w.Resources.Game.Quota > 0 {
		w.Resources.Game.Quota--
	}

	// Drain particles stream from the victim toward the player
	if em, ok := c.Emitter.GetComponent(player); ok {
		from := r.position(enemy)
		to := r.position(player)
		dir := to.Sub(from)
		life := parameter.ExplosionLife
		for i := 0; i < parameter.VampParticlesPerHeal; i++ {
			jitter := vmath.V(w.Resources.Rand.Range(-8, 8), w.Resources.Rand.Range(-8, 8))
			em.Emit(component.Particle{
				Position: from.Add(jitter),
				Velocity: dir.Scale(1 / life.Seconds()),
				Life:     life,
				Color:    component.Color{R: 200, G: 0, B: 40},
			})
		}
		c.Emitter.SetComponent(player, em)
	}
}

// Collect applies a pickup to the player and destroys it
func (r *Resolver) Collect(player, pickup core.Entity) {
	w := r.world
	c := &w.Components

	p, ok := c.Pickup.GetComponent(pickup)
	if !ok {
		return
	}

	switch p.Kind {
	case component.PickupHealth:
		if h, ok := c.Health.GetComponent(player); ok {
			h.Refill()
			c.Health.SetComponent(player, h)
		}
	case component.PickupWeapon:
		if pc, ok := c.Player.GetComponent(player); ok {
			pc.Weapon = p.Weapon
			pc.Ammo = p.Amount
			c.Player.SetComponent(player, pc)
		}
	}

	playSound(w, core.SoundPickup)
	w.PushEvent(event.EventPickupCollected, &event.PickupPayload{Kind: int(p.Kind), Amount: p.Amount})
	w.MarkForDeath(pickup)
}
