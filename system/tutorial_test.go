package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vape/core"
	"github.com/lixenwraith/vape/event"
	"github.com/lixenwraith/vape/vmath"
)

func TestTutorial_FullLesson(t *testing.T) {
	h := newHarness(t)
	player := h.player(vmath.V(400, 500))
	game := h.world.Resources.Game
	game.Tutorial = true
	game.Quota = 3
	tut := h.set.Tutorial

	h.run(func() { require.NoError(t, tut.Start()) })
	assert.Equal(t, "Intro", tut.Stage())

	h.step(core.InputSnapshot{})
	assert.Equal(t, "Intro", tut.Stage(), "waits for confirm")
	assert.Equal(t, 1, h.count(event.EventDialogueAdvance))

	h.step(pressed(core.InputConfirm))
	assert.Equal(t, "Movement", tut.Stage())

	for _, dir := range tutorialDirections {
		h.step(held(dir))
	}
	assert.Equal(t, "Shooting", tut.Stage())

	h.step(core.InputSnapshot{})
	enemies := h.world.Query().With(h.world.Components.Enemy).Execute()
	require.Len(t, enemies, 1, "one target kept alive")

	h.run(func() { h.set.Resolver.Damage(enemies[0], 100, player) })
	h.step(core.InputSnapshot{})
	assert.Equal(t, "VampCharge", tut.Stage())

	v, _ := h.world.Components.Vamp.GetComponent(player)
	assert.GreaterOrEqual(t, v.Charge, 12, "precharged")

	// Bullet kills fill the meter
	for i := 0; i < 5 && tut.Stage() == "VampCharge"; i++ {
		h.step(core.InputSnapshot{})
		enemies = h.world.Query().With(h.world.Components.Enemy).Execute()
		require.NotEmpty(t, enemies)
		h.run(func() { h.set.Resolver.Damage(enemies[0], 100, player) })
		h.step(core.InputSnapshot{})
	}
	assert.Equal(t, "VampDrain", tut.Stage())

	// Charge is pinned while the quota stands
	h.run(func() {
		v, _ := h.world.Components.Vamp.GetComponent(player)
		v.Charge = 1
		h.world.Components.Vamp.SetComponent(player, v)
	})
	h.step(core.InputSnapshot{})
	v, _ = h.world.Components.Vamp.GetComponent(player)
	assert.Equal(t, v.MaxCharge, v.Charge)

	game.Quota = 0
	h.step(core.InputSnapshot{})
	assert.Equal(t, "Clear", tut.Stage())
	assert.Zero(t, h.count(event.EventLevelComplete))

	h.step(pressed(core.InputConfirm))
	h.step(core.InputSnapshot{})
	assert.Equal(t, 1, h.count(event.EventLevelComplete))
	assert.Empty(t, tut.Stage(), "idle after completion")
}

func TestTutorial_IdleUntilStarted(t *testing.T) {
	h := newHarness(t)
	h.player(vmath.V(400, 500))

	h.steps(3)
	assert.Empty(t, h.set.Tutorial.Stage())
	assert.Zero(t, h.count(event.EventDialogueAdvance))
	assert.Zero(t, h.world.Components.Enemy.CountEntities())
}
