package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vape/component"
)

func TestEntityBuilder_CommitsOnBuild(t *testing.T) {
	w := NewWorld()

	eb := w.NewEntity()
	With(eb, w.Components.Health, component.NewHealth(3, 3))
	With(eb, w.Components.Enemy, component.EnemyComponent{Points: 100})

	assert.Equal(t, 0, w.Components.Health.CountEntities(), "nothing lands before Build")

	e := eb.Build()
	assert.Equal(t, eb.Entity(), e)

	h, ok := w.Components.Health.GetComponent(e)
	require.True(t, ok)
	assert.Equal(t, 3.0, h.Current)

	en, ok := w.Components.Enemy.GetComponent(e)
	require.True(t, ok)
	assert.Equal(t, 100, en.Points)
}

func TestEntityBuilder_DiscardReleasesSlot(t *testing.T) {
	w := NewWorld()

	eb := w.NewEntity()
	With(eb, w.Components.Health, component.NewHealth(3, 3))
	reserved := eb.Entity()
	eb.Discard()

	assert.False(t, w.Exists(reserved))
	assert.Equal(t, 0, w.EntityCount())
	assert.Equal(t, 0, w.Components.Health.CountEntities())

	// Discard after Build is a no-op
	built := w.NewEntity()
	e := built.Build()
	built.Discard()
	assert.True(t, w.IsAlive(e))
}

func TestEntityBuilder_PanicsAfterBuild(t *testing.T) {
	w := NewWorld()
	eb := w.NewEntity()
	eb.Build()

	assert.Panics(t, func() {
		With(eb, w.Components.Health, component.NewHealth(1, 1))
	})
	assert.Panics(t, func() { eb.Build() })
}
