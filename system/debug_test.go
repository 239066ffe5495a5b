package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/vape/core"
	"github.com/lixenwraith/vape/parameter"
	"github.com/lixenwraith/vape/vmath"
)

func TestDebug_Keys(t *testing.T) {
	h := newHarness(t)
	player := h.player(vmath.V(400, 500))
	game := h.world.Resources.Game
	game.Debug.Enabled = true

	h.run(func() { h.set.Resolver.Damage(player, 30, core.Entity(0)) })
	h.step(pressed(core.InputDebugHealth))
	hc, _ := h.world.Components.Health.GetComponent(player)
	assert.Equal(t, hc.Max, hc.Current)

	h.step(pressed(core.InputDebugCharge))
	v, _ := h.world.Components.Vamp.GetComponent(player)
	assert.Equal(t, v.MaxCharge, v.Charge)

	h.step(pressed(core.InputDebugInvincible))
	assert.True(t, game.Debug.Invincible)
	h.step(pressed(core.InputDebugInvincible))
	assert.False(t, game.Debug.Invincible)

	h.step(pressed(core.InputSpeedUp))
	assert.Equal(t, 1+parameter.SpeedStep, game.BaseSpeed)
	for i := 0; i < 20; i++ {
		h.step(pressed(core.InputSpeedDown))
	}
	assert.Equal(t, parameter.MinSpeed, game.BaseSpeed)
}

func TestDebug_DisabledIgnoresKeys(t *testing.T) {
	h := newHarness(t)
	h.player(vmath.V(400, 500))
	game := h.world.Resources.Game

	h.step(pressed(core.InputDebugInvincible, core.InputSpeedUp))
	assert.False(t, game.Debug.Invincible)
	assert.Equal(t, 1.0, game.BaseSpeed)
}

func TestDebug_RefillNeverRevives(t *testing.T) {
	h := newHarness(t)
	player := h.player(vmath.V(400, 500))
	h.world.Resources.Game.Debug.Enabled = true

	h.run(func() { h.set.Resolver.Damage(player, 1e6, core.Entity(0)) })
	h.step(pressed(core.InputDebugHealth))

	hc, _ := h.world.Components.Health.GetComponent(player)
	assert.True(t, hc.Dead)
}
