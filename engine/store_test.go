package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vape/component"
	"github.com/lixenwraith/vape/core"
)

func TestStore_SetGetRemove(t *testing.T) {
	s := NewStore[component.HealthComponent]()
	a := core.NewEntity(0, 1)
	b := core.NewEntity(1, 1)

	s.SetComponent(a, component.NewHealth(10, 10))
	s.SetComponent(b, component.NewHealth(20, 20))
	require.Equal(t, 2, s.CountEntities())

	h, ok := s.GetComponent(b)
	require.True(t, ok)
	assert.Equal(t, 20.0, h.Current)

	s.RemoveEntity(a)
	assert.False(t, s.HasEntity(a))
	assert.True(t, s.HasEntity(b))
	assert.Equal(t, []core.Entity{b}, s.GetAllEntities())
}

func TestStore_StaleGenerationMisses(t *testing.T) {
	s := NewStore[component.HealthComponent]()
	old := core.NewEntity(3, 1)
	s.SetComponent(old, component.NewHealth(5, 5))

	fresh := core.NewEntity(3, 2)
	_, ok := s.GetComponent(fresh)
	assert.False(t, ok, "same slot with a newer generation must not see the old row")
	assert.False(t, s.HasEntity(fresh))

	s.RemoveEntity(fresh)
	assert.True(t, s.HasEntity(old), "removing a stale handle leaves the live row alone")
}

func TestStore_RemoveBatchKeepsOrder(t *testing.T) {
	s := NewStore[component.HealthComponent]()
	var es []core.Entity
	for i := uint32(0); i < 6; i++ {
		e := core.NewEntity(i, 1)
		es = append(es, e)
		s.SetComponent(e, component.NewHealth(float64(i+1), 10))
	}

	s.RemoveBatch([]core.Entity{es[1], es[4]})

	assert.Equal(t, []core.Entity{es[0], es[2], es[3], es[5]}, s.GetAllEntities())
	h, ok := s.GetComponent(es[5])
	require.True(t, ok)
	assert.Equal(t, 6.0, h.Current)
}

func TestStore_GetAllEntitiesIsCopy(t *testing.T) {
	s := NewStore[component.HealthComponent]()
	e := core.NewEntity(0, 1)
	s.SetComponent(e, component.NewHealth(1, 1))

	list := s.GetAllEntities()
	s.SetComponent(core.NewEntity(1, 1), component.NewHealth(1, 1))
	list[0] = core.InvalidEntity

	assert.Len(t, list, 1)
	assert.Equal(t, e, s.GetAllEntities()[0])
}

func TestStore_StaleWriteCannotTakeLiveRow(t *testing.T) {
	w := NewWorld()
	old := w.CreateEntity()
	w.Components.Health.SetComponent(old, component.NewHealth(10, 10))
	w.DestroyEntity(old)

	fresh := w.CreateEntity()
	require.Equal(t, old.Index(), fresh.Index(), "slot is reused")
	w.Components.Health.SetComponent(fresh, component.NewHealth(75, 75))

	err := w.Components.Health.Put(old, component.NewHealth(1, 1))
	assert.ErrorIs(t, err, core.ErrInvariant)
	w.Components.Health.SetComponent(old, component.NewHealth(1, 1))

	h, ok := w.Components.Health.GetComponent(fresh)
	require.True(t, ok, "live entity keeps its row")
	assert.Equal(t, 75.0, h.Current)
	assert.False(t, w.Components.Health.HasEntity(old))
	assert.Equal(t, []core.Entity{fresh}, w.Components.Health.GetAllEntities())
	assert.Equal(t, int64(2), w.Components.Health.Rejected())
}

func TestStore_StaleWriteDoesNotAppend(t *testing.T) {
	w := NewWorld()
	old := w.CreateEntity()
	w.DestroyEntity(old)
	fresh := w.CreateEntity()

	err := w.Components.Health.Put(old, component.NewHealth(1, 1))
	assert.ErrorIs(t, err, core.ErrInvariant)
	assert.Zero(t, w.Components.Health.CountEntities())

	require.NoError(t, w.Components.Health.Put(fresh, component.NewHealth(3, 3)))
	assert.True(t, w.Components.Health.HasEntity(fresh))
}

func TestStore_DetachedRejectsOtherGeneration(t *testing.T) {
	s := NewStore[component.HealthComponent]()
	live := core.NewEntity(2, 3)
	require.NoError(t, s.Put(live, component.NewHealth(9, 9)))

	err := s.Put(core.NewEntity(2, 1), component.NewHealth(1, 1))
	assert.ErrorIs(t, err, core.ErrInvariant)
	h, _ := s.GetComponent(live)
	assert.Equal(t, 9.0, h.Current)

	assert.Error(t, s.Put(core.InvalidEntity, component.NewHealth(1, 1)))
}
