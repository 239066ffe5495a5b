package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vape/core"
	"github.com/lixenwraith/vape/engine"
	"github.com/lixenwraith/vape/event"
	"github.com/lixenwraith/vape/parameter"
)

func TestEffect_ExplosionLifecycle(t *testing.T) {
	h := newHarness(t)
	emitters := func() int { return h.world.Components.Emitter.CountEntities() }

	h.run(func() { h.world.PushEvent(event.EventExplosionRequest, &event.ExplosionPayload{X: 200, Y: 200, Count: 10}) })
	h.step(core.InputSnapshot{})
	require.Equal(t, 1, emitters())
	assert.Equal(t, int64(10), h.world.Resources.Status.Ints.Get("effect.particles").Load())

	h.steps(int(parameter.ExplosionLife/tick) + 2)
	assert.Zero(t, emitters(), "spent bursts are removed")
	assert.Zero(t, h.world.Resources.Status.Ints.Get("effect.particles").Load())
}

func TestEffect_ParticleCap(t *testing.T) {
	w := engine.NewWorld()
	s := NewEffectSystem(w).(*EffectSystem)
	s.live = parameter.ParticleMax - 5

	w.RunSafe(func() {
		s.explode(&event.ExplosionPayload{Count: 10})
		s.explode(&event.ExplosionPayload{Count: 10})
	})

	var spawned int
	for _, e := range w.Query().With(w.Components.Emitter).Execute() {
		em, _ := w.Components.Emitter.GetComponent(e)
		spawned += len(em.Particles)
	}
	assert.Equal(t, 5, spawned)
	assert.Equal(t, int64(2), w.Resources.Status.Ints.Get("effect.dropped").Load())
}
