package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/vape/content"
	"github.com/lixenwraith/vape/core"
	"github.com/lixenwraith/vape/event"
	"github.com/lixenwraith/vape/parameter"
	"github.com/lixenwraith/vape/vmath"
)

func TestShooter_BurstCadence(t *testing.T) {
	h := newHarness(t)
	h.player(vmath.V(700, 550))
	shooter := h.spawn(content.KindShooter, vmath.V(100, 20))
	hostile := func() int { return len(h.world.Resources.Projectiles.Hostile) }

	wait := int((parameter.ShooterBurstCooldown + tick - 1) / tick)
	h.steps(wait)
	assert.Zero(t, hostile(), "burst cooldown first")

	h.steps(1)
	assert.Equal(t, 1, hostile())
	assert.Equal(t, 1, h.count(event.EventBurstFired))
	assert.Equal(t, 1, h.audio.count(core.SoundEnemyShoot))

	h.steps(int(2*parameter.ShooterBulletCooldown/tick) + 4)
	assert.Equal(t, parameter.BurstSize, hostile())
	assert.Equal(t, 1, h.count(event.EventBurstFired), "one event per burst")

	b := h.world.Resources.Projectiles.Hostile[0]
	bc, _ := h.world.Components.Bullet.GetComponent(b)
	assert.Equal(t, shooter, bc.Owner)
	bm, _ := h.world.Components.Motion.GetComponent(b)
	assert.Greater(t, bm.Velocity.Y, 0.0, "fires down along facing")
}

func TestShooter_DisarmedHoldsFire(t *testing.T) {
	h := newHarness(t)
	h.player(vmath.V(700, 550))
	shooter := h.spawn(content.KindShooter, vmath.V(100, 20))
	h.run(func() {
		sh, _ := h.world.Components.Shooter.GetComponent(shooter)
		sh.Armed = false
		h.world.Components.Shooter.SetComponent(shooter, sh)
	})

	h.steps(int(parameter.ShooterBurstCooldown/tick) * 2)
	assert.Empty(t, h.world.Resources.Projectiles.Hostile)
}
