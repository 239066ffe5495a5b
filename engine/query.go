package engine

import (
	"sort"

	"github.com/lixenwraith/vape/core"
)

// QueryBuilder finds entities present in every listed store
// The smallest store drives the intersection and its insertion order is kept
type QueryBuilder struct {
	world    *World
	stores   []QueryableStore
	executed bool
	results  []core.Entity
}

// Query creates a new QueryBuilder
//
//	entities := world.Query().
//	    With(world.Components.Motion).
//	    With(world.Components.Enemy).
//	    Execute()
func (w *World) Query() *QueryBuilder {
	return &QueryBuilder{
		world:  w,
		stores: make([]QueryableStore, 0, 4),
	}
}

// With adds a component store to the query filter
// Panics if called after Execute
func (qb *QueryBuilder) With(store QueryableStore) *QueryBuilder {
	if qb.executed {
		panic("query already executed - cannot modify after Execute()")
	}
	qb.stores = append(qb.stores, store)
	return qb
}

// Execute returns the live entities present in all stores
// Entities marked for death are excluded
func (qb *QueryBuilder) Execute() []core.Entity {
	if qb.executed {
		return qb.results
	}
	qb.executed = true

	if len(qb.stores) == 0 {
		qb.results = make([]core.Entity, 0)
		return qb.results
	}

	sort.SliceStable(qb.stores, func(i, j int) bool {
		return qb.stores[i].CountEntities() < qb.stores[j].CountEntities()
	})

	candidates := qb.stores[0].GetAllEntities()
	out := candidates[:0]
	for _, e := range candidates {
		if !qb.world.IsAlive(e) {
			continue
		}
		inAll := true
		for _, s := range qb.stores[1:] {
			if !s.HasEntity(e) {
				inAll = false
				break
			}
		}
		if inAll {
			out = append(out, e)
		}
	}
	qb.results = out
	return qb.results
}
