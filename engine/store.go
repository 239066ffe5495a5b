package engine

import (
	"sync"
	"sync/atomic"

	"github.com/pkg/errors"

	"github.com/lixenwraith/vape/core"
)

// Store is a dense typed table for component type T
// sparse maps a slot index to its dense position + 1 (0 = absent); entities holds the
// full handle per dense row so a stale generation never aliases a live component
// Dense order is insertion order and survives removals
type Store[T any] struct {
	mu       sync.RWMutex
	sparse   []int32
	dense    []T
	entities []core.Entity

	// allocated is the owning world's liveness check, nil for detached stores
	allocated func(core.Entity) bool
	rejected  atomic.Int64
}

// NewStore creates a new component store for type T
func NewStore[T any]() *Store[T] {
	return &Store[T]{
		sparse:   make([]int32, 0, 64),
		dense:    make([]T, 0, 64),
		entities: make([]core.Entity, 0, 64),
	}
}

// row returns the dense index for e, or -1; caller holds the lock
func (s *Store[T]) row(e core.Entity) int {
	idx := int(e.Index())
	if idx >= len(s.sparse) {
		return -1
	}
	r := int(s.sparse[idx]) - 1
	if r < 0 || s.entities[r] != e {
		return -1
	}
	return r
}

// SetComponent inserts or updates a component for an entity
// Writes through stale handles are dropped; Put reports them
func (s *Store[T]) SetComponent(e core.Entity, val T) {
	_ = s.Put(e, val)
}

// Put inserts or updates a component for an entity
// Returns core.ErrInvariant when e is not the handle that owns its slot
func (s *Store[T]) Put(e core.Entity, val T) error {
	if e == core.InvalidEntity || (s.allocated != nil && !s.allocated(e)) {
		s.rejected.Add(1)
		return errors.Wrapf(core.ErrInvariant, "set component on stale entity %s", e)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if r := s.row(e); r >= 0 {
		s.dense[r] = val
		return nil
	}

	idx := int(e.Index())
	if idx >= len(s.sparse) {
		grown := make([]int32, idx+1, (idx+1)*2)
		copy(grown, s.sparse)
		s.sparse = grown
	}
	// Removal always clears the slot entry, so a row held by another generation
	// belongs to whichever handle the world allocated last
	if held := int(s.sparse[idx]) - 1; held >= 0 {
		s.rejected.Add(1)
		return errors.Wrapf(core.ErrInvariant, "slot of entity %s is owned by %s", e, s.entities[held])
	}

	s.dense = append(s.dense, val)
	s.entities = append(s.entities, e)
	s.sparse[idx] = int32(len(s.dense))
	return nil
}

// Rejected counts writes refused because the handle did not own its slot
func (s *Store[T]) Rejected() int64 {
	return s.rejected.Load()
}

// GetComponent retrieves a copy of the component for an entity
func (s *Store[T]) GetComponent(e core.Entity) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if r := s.row(e); r >= 0 {
		return s.dense[r], true
	}
	var zero T
	return zero, false
}

// RemoveEntity deletes the component of an entity, preserving the order of the rest
func (s *Store[T]) RemoveEntity(e core.Entity) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r := s.row(e)
	if r < 0 {
		return
	}
	copy(s.dense[r:], s.dense[r+1:])
	copy(s.entities[r:], s.entities[r+1:])
	last := len(s.dense) - 1
	var zero T
	s.dense[last] = zero
	s.dense = s.dense[:last]
	s.entities = s.entities[:last]
	s.sparse[e.Index()] = 0

	for i := r; i < len(s.entities); i++ {
		s.sparse[s.entities[i].Index()] = int32(i + 1)
	}
}

// RemoveBatch deletes multiple entities in a single order-preserving compaction
func (s *Store[T]) RemoveBatch(entities []core.Entity) {
	if len(entities) == 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.dense) == 0 {
		return
	}

	removed := 0
	for _, e := range entities {
		if r := s.row(e); r >= 0 {
			s.sparse[e.Index()] = 0
			removed++
		}
	}
	if removed == 0 {
		return
	}

	// Rows whose sparse entry was cleared are dropped
	writeIdx := 0
	for i, e := range s.entities {
		if s.sparse[e.Index()] == 0 {
			continue
		}
		s.entities[writeIdx] = e
		s.dense[writeIdx] = s.dense[i]
		s.sparse[e.Index()] = int32(writeIdx + 1)
		writeIdx++
	}
	var zero T
	for i := writeIdx; i < len(s.dense); i++ {
		s.dense[i] = zero
	}
	s.dense = s.dense[:writeIdx]
	s.entities = s.entities[:writeIdx]
}

// HasEntity checks if entity has this component
func (s *Store[T]) HasEntity(e core.Entity) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.row(e) >= 0
}

// GetAllEntities returns a copy of all entities with this component, in insertion order
func (s *Store[T]) GetAllEntities() []core.Entity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]core.Entity, len(s.entities))
	copy(result, s.entities)
	return result
}

// CountEntities returns number of entities with this component
func (s *Store[T]) CountEntities() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entities)
}

// ClearAllComponents removes all components from this store
func (s *Store[T]) ClearAllComponents() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sparse = make([]int32, 0, 64)
	s.dense = make([]T, 0, 64)
	s.entities = make([]core.Entity, 0, 64)
}

// bind attaches the owning world's allocation check
func (s *Store[T]) bind(allocated func(core.Entity) bool) {
	s.allocated = allocated
}
