package engine

import (
	"github.com/lixenwraith/vape/core"
)

// AnyStore provides type-erased operations for lifecycle management
// World manages every store through it without knowing the concrete type
type AnyStore interface {
	RemoveEntity(e core.Entity)
	RemoveBatch(entities []core.Entity)
	HasEntity(e core.Entity) bool
	CountEntities() int
	ClearAllComponents()
	Rejected() int64

	bind(allocated func(core.Entity) bool)
}

// QueryableStore extends AnyStore with the listing the query builder intersects
type QueryableStore interface {
	AnyStore
	GetAllEntities() []core.Entity
}
