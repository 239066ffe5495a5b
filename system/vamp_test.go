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

func TestVamp_ActivateDrainEnd(t *testing.T) {
	h := newHarness(t)
	player := h.player(vmath.V(400, 500))
	store := h.world.Components.Vamp
	game := h.world.Resources.Game

	// Empty meter refuses activation
	h.step(pressed(core.InputVamp))
	v, _ := store.GetComponent(player)
	assert.False(t, v.Active)
	assert.Equal(t, 1.0, game.VampFactor)

	h.run(func() {
		v, _ := store.GetComponent(player)
		v.Charge = 2
		v.ActivationCooldown = 0
		store.SetComponent(player, v)
	})

	h.step(pressed(core.InputVamp))
	v, _ = store.GetComponent(player)
	assert.True(t, v.Active)
	assert.Equal(t, parameter.VampTimeSlowdown, game.VampFactor)
	assert.Equal(t, 1, h.count(event.EventVampStart))

	// Slowdown applies to the simulation clock, not the wall clock
	h.step(core.InputSnapshot{})
	assert.Equal(t, tick/2, h.world.Resources.Time.SimDelta)
	assert.Equal(t, tick, h.world.Resources.Time.DeltaTime)

	// Two points at 200ms each
	h.steps(30)
	v, _ = store.GetComponent(player)
	assert.False(t, v.Active)
	assert.Zero(t, v.Charge)
	assert.Equal(t, 1.0, game.VampFactor)
	assert.Equal(t, 1, h.count(event.EventVampEnd))
}

func TestVamp_ManualCancelAndCooldown(t *testing.T) {
	h := newHarness(t)
	player := h.player(vmath.V(400, 500))
	store := h.world.Components.Vamp

	h.run(func() {
		v, _ := store.GetComponent(player)
		v.Charge = parameter.VampMaxCharge
		store.SetComponent(player, v)
	})

	h.step(pressed(core.InputVamp))
	// Second press inside the debounce window is ignored
	h.step(pressed(core.InputVamp))
	v, _ := store.GetComponent(player)
	assert.True(t, v.Active)

	h.steps(int(parameter.VampActivationCooldown/tick) + 1)
	h.step(pressed(core.InputVamp))
	v, _ = store.GetComponent(player)
	assert.False(t, v.Active)
	assert.Equal(t, 1.0, h.world.Resources.Game.VampFactor)
}

func TestVamp_ChargeFromKills(t *testing.T) {
	h := newHarness(t)
	player := h.player(vmath.V(400, 500))
	store := h.world.Components.Vamp

	h.run(func() {
		v, _ := store.GetComponent(player)
		v.Charge = parameter.VampMaxCharge - 1
		store.SetComponent(player, v)
	})

	for i := 0; i < 2; i++ {
		turtle := h.spawn(content.KindTurtle, vmath.V(100, 100))
		h.run(func() { h.set.Resolver.Damage(turtle, 10, player) })
		h.step(core.InputSnapshot{})
	}

	v, _ := store.GetComponent(player)
	assert.Equal(t, parameter.VampMaxCharge, v.Charge, "capped at max")
	assert.Equal(t, 1, h.count(event.EventVampCharged))
	assert.Equal(t, 1, h.audio.count(core.SoundVampCharged))
}

func TestVamp_DrainsOverlappingEnemies(t *testing.T) {
	h := newHarness(t)
	player := h.player(vmath.V(400, 500))
	near := h.spawn(content.KindTurtle, vmath.V(400, 420))
	far := h.spawn(content.KindTurtle, vmath.V(100, 100))
	h.world.Resources.Game.Quota = 5

	h.run(func() {
		v, _ := h.world.Components.Vamp.GetComponent(player)
		v.Charge = parameter.VampMaxCharge
		h.world.Components.Vamp.SetComponent(player, v)
	})
	h.step(pressed(core.InputVamp))

	// Contact accumulates on simulation time, halved by the slowdown
	h.steps(20)

	assert.False(t, h.world.Exists(near))
	assert.True(t, h.world.IsAlive(far))
	assert.Equal(t, 4, h.world.Resources.Game.Quota)
}

func TestVamp_EndsOnPlayerDeath(t *testing.T) {
	h := newHarness(t)
	player := h.player(vmath.V(400, 500))

	h.run(func() {
		v, _ := h.world.Components.Vamp.GetComponent(player)
		v.Charge = parameter.VampMaxCharge
		h.world.Components.Vamp.SetComponent(player, v)
	})
	h.step(pressed(core.InputVamp))
	assert.Equal(t, parameter.VampTimeSlowdown, h.world.Resources.Game.VampFactor)

	h.run(func() { h.set.Resolver.Damage(player, 1000, player) })
	h.step(core.InputSnapshot{})

	v, _ := h.world.Components.Vamp.GetComponent(player)
	assert.False(t, v.Active)
	assert.Equal(t, 1.0, h.world.Resources.Game.VampFactor)
}
