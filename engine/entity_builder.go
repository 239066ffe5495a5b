package engine

import "github.com/lixenwraith/vape/core"

// EntityBuilder stages components for an entity and commits them together on Build
// A discarded builder releases its reserved handle, so a failed constructor leaves nothing behind
//
// Example usage:
//
//	eb := world.NewEntity()
//	engine.With(eb, world.Components.Motion, motion)
//	engine.With(eb, world.Components.Health, health)
//	entity := eb.Build()
type EntityBuilder struct {
	world  *World
	entity core.Entity
	ops    []func()
	done   bool
}

// NewEntity reserves a handle and returns a builder for it
func (w *World) NewEntity() *EntityBuilder {
	return &EntityBuilder{
		world:  w,
		entity: w.CreateEntity(),
		ops:    make([]func(), 0, 8),
	}
}

// With stages a component of type T
// Panics if called after Build or Discard
func With[T any](eb *EntityBuilder, store *Store[T], c T) *EntityBuilder {
	if eb.done {
		panic("entity already built - cannot add components after Build()")
	}
	e := eb.entity
	eb.ops = append(eb.ops, func() { store.SetComponent(e, c) })
	return eb
}

// Entity returns the reserved handle
func (eb *EntityBuilder) Entity() core.Entity {
	return eb.entity
}

// Build commits all staged components and returns the entity
func (eb *EntityBuilder) Build() core.Entity {
	if eb.done {
		panic("entity builder reused")
	}
	eb.done = true
	for _, op := range eb.ops {
		op()
	}
	eb.ops = nil
	return eb.entity
}

// Discard releases the reserved handle without committing anything
// Safe to call after Build (no-op)
func (eb *EntityBuilder) Discard() {
	if eb.done {
		return
	}
	eb.done = true
	eb.ops = nil
	eb.world.DestroyEntity(eb.entity)
}
