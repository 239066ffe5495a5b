package system

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vape/component"
	"github.com/lixenwraith/vape/content"
	"github.com/lixenwraith/vape/core"
	"github.com/lixenwraith/vape/event"
	"github.com/lixenwraith/vape/parameter"
	"github.com/lixenwraith/vape/vmath"
)

func TestCollision_PlayerHitsEnemy(t *testing.T) {
	h := newHarness(t)
	at := vmath.V(400, 500)
	player := h.player(at)
	turtle := h.spawn(content.KindTurtle, at)

	h.step(core.InputSnapshot{})

	hp, _ := h.world.Components.Health.GetComponent(player)
	assert.Equal(t, 45.0, hp.Current)
	assert.False(t, hp.Dead)

	combat, _ := h.world.Components.Combat.GetComponent(player)
	assert.Equal(t, parameter.PlayerIframes, combat.DamageImmunityRemaining)

	assert.False(t, h.world.Exists(turtle), "enemy destroyed on contact")
	assert.Equal(t, 1, h.count(event.EventExplosionRequest))
	assert.Equal(t, 1, h.audio.count(core.SoundExplosion))
	assert.Equal(t, 1, h.count(event.EventPlayerDamaged))
}

func TestCollision_IframesBlockDamage(t *testing.T) {
	h := newHarness(t)
	at := vmath.V(400, 500)
	player := h.player(at)
	h.run(func() {
		h.world.Components.Combat.SetComponent(player, component.CombatComponent{DamageImmunityRemaining: parameter.PlayerIframes})
	})
	turtle := h.spawn(content.KindTurtle, at)

	h.step(core.InputSnapshot{})

	hp, _ := h.world.Components.Health.GetComponent(player)
	assert.Equal(t, parameter.PlayerInitHealth, hp.Current)
	assert.True(t, h.world.IsAlive(turtle))
	assert.Zero(t, h.count(event.EventExplosionRequest))
}

func TestCollision_DebugInvincibility(t *testing.T) {
	h := newHarness(t)
	at := vmath.V(400, 500)
	player := h.player(at)
	h.world.Resources.Game.Debug.Invincible = true
	h.spawn(content.KindTurtle, at)

	h.step(core.InputSnapshot{})

	hp, _ := h.world.Components.Health.GetComponent(player)
	combat, _ := h.world.Components.Combat.GetComponent(player)
	assert.Equal(t, parameter.PlayerInitHealth, hp.Current)
	assert.Zero(t, combat.DamageImmunityRemaining, "invincibility never writes iframes")
}

func TestCollision_BulletKillsOneOfTwo(t *testing.T) {
	h := newHarness(t)
	player := h.player(vmath.V(400, 550))

	at := vmath.V(400, 200)
	a := h.spawn(content.KindShooter, at)
	b := h.spawn(content.KindShooter, at)

	h.run(func() {
		_, err := content.SpawnBullet(h.world, content.BulletSpec{
			Owner:    player,
			Position: at,
			Facing:   math.Pi,
			Speed:    parameter.BulletSpeed,
			Damage:   parameter.DamagePlayerBullet,
		})
		require.NoError(t, err)
	})

	h.step(core.InputSnapshot{})

	pc, _ := h.world.Components.Player.GetComponent(player)
	assert.Equal(t, parameter.ShooterPoints, pc.Score)

	alive := 0
	for _, e := range []core.Entity{a, b} {
		if h.world.Exists(e) {
			alive++
			hp, _ := h.world.Components.Health.GetComponent(e)
			assert.Equal(t, parameter.ShooterHealth, hp.Current, "survivor untouched")
		}
	}
	assert.Equal(t, 1, alive)
	assert.Equal(t, 1, h.world.Components.Enemy.CountEntities())
	assert.Empty(t, h.world.Resources.Projectiles.Friendly, "bullet consumed")
	assert.Equal(t, 1, h.count(event.EventEnemyKilled))

	v, _ := h.world.Components.Vamp.GetComponent(player)
	assert.Equal(t, 1, v.Charge, "bullet kill adds vamp charge")
}

func TestCollision_HostileBullet(t *testing.T) {
	h := newHarness(t)
	at := vmath.V(400, 500)
	player := h.player(at)

	h.run(func() {
		_, err := content.SpawnBullet(h.world, content.BulletSpec{
			Position: at,
			Speed:    1,
			Damage:   parameter.DamageEnemyBullet,
			Hostile:  true,
		})
		require.NoError(t, err)
	})
	h.step(core.InputSnapshot{})

	hp, _ := h.world.Components.Health.GetComponent(player)
	assert.Equal(t, parameter.PlayerInitHealth-parameter.DamageEnemyBullet, hp.Current)
	assert.Empty(t, h.world.Resources.Projectiles.Hostile)
}

func TestCollision_Pickups(t *testing.T) {
	h := newHarness(t)
	at := vmath.V(400, 500)
	player := h.player(at)
	h.spawn(content.KindHealthPickup, at)
	h.spawn(content.KindWeaponPickup, at.Add(vmath.V(5, 0)))

	h.step(core.InputSnapshot{})

	hp, _ := h.world.Components.Health.GetComponent(player)
	assert.Equal(t, parameter.PlayerMaxHealth, hp.Current)

	pc, _ := h.world.Components.Player.GetComponent(player)
	assert.Equal(t, component.WeaponSpread, pc.Weapon)
	assert.Equal(t, parameter.WeaponSpreadAmmo, pc.Ammo)

	assert.Zero(t, h.world.Components.Pickup.CountEntities())
	assert.Equal(t, 2, h.count(event.EventPickupCollected))
}

func TestCollision_BossPushesPlayer(t *testing.T) {
	h := newHarness(t)
	boss := h.spawn(content.KindBoss, vmath.V(400, 120))
	player := h.player(vmath.V(400, 160))

	h.step(core.InputSnapshot{})

	bm, _ := h.world.Components.Motion.GetComponent(boss)
	pm, _ := h.world.Components.Motion.GetComponent(player)
	bp, _ := h.world.Components.Physics.GetComponent(boss)
	pp, _ := h.world.Components.Physics.GetComponent(player)

	// Separated to the touching distance, accelerating nowhere
	dist := pm.Position.Sub(bm.Position).Len()
	assert.GreaterOrEqual(t, dist+1e-6, bp.Radius()+pp.Radius())
	assert.Equal(t, vmath.Vec2{}, pm.Acceleration)
	assert.True(t, h.world.IsAlive(boss), "boss survives contact")
}
