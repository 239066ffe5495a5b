package engine

import (
	"sync"
	"sync/atomic"

	"github.com/pkg/errors"

	"github.com/lixenwraith/vape/core"
	"github.com/lixenwraith/vape/event"
	"github.com/lixenwraith/vape/parameter"
)

// World owns entity lifetime and all component stores
// Slots are reused with a bumped generation, so a handle outlives its entity only as a stale value
// Destruction is deferred: MarkForDeath hides the entity, Reap releases it
type World struct {
	mu          sync.RWMutex
	generations []uint32
	free        []uint32
	live        int

	dying      map[core.Entity]struct{}
	dyingOrder []core.Entity

	Resources  *Resource
	Components ComponentStore
	stores     []namedStore

	// Direct pointers for high-frequency path optimization
	eventQueue  *event.EventQueue
	frameSource *atomic.Int64

	systems     []System
	updateMutex sync.Mutex
}

// NewWorld creates a world with every component store initialized and default resources
func NewWorld() *World {
	w := &World{
		generations: make([]uint32, 0, parameter.InitialEntityCapacity),
		dying:       make(map[core.Entity]struct{}),
		Resources:   NewResource(),
	}
	initComponentStores(w)
	return w
}

// CreateEntity reserves a fresh handle
func (w *World) CreateEntity() core.Entity {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.live++
	if n := len(w.free); n > 0 {
		idx := w.free[n-1]
		w.free = w.free[:n-1]
		return core.NewEntity(idx, w.generations[idx])
	}
	idx := uint32(len(w.generations))
	w.generations = append(w.generations, 1)
	return core.NewEntity(idx, 1)
}

// exists reports an allocated handle; caller holds mu
func (w *World) exists(e core.Entity) bool {
	idx := e.Index()
	return e != core.InvalidEntity && int(idx) < len(w.generations) && w.generations[idx] == e.Generation()
}

// Exists reports whether the handle names an allocated entity, marked or not
func (w *World) Exists(e core.Entity) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.exists(e)
}

// IsAlive reports an allocated entity that is not marked for death
func (w *World) IsAlive(e core.Entity) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if !w.exists(e) {
		return false
	}
	_, marked := w.dying[e]
	return !marked
}

// IsMarked reports an entity waiting for the next reap
func (w *World) IsMarked(e core.Entity) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	_, marked := w.dying[e]
	return marked
}

// MarkForDeath queues an entity for removal at the next Reap
// Returns false for stale or already marked handles
func (w *World) MarkForDeath(e core.Entity) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.exists(e) {
		return false
	}
	if _, marked := w.dying[e]; marked {
		return false
	}
	w.dying[e] = struct{}{}
	w.dyingOrder = append(w.dyingOrder, e)
	return true
}

// PendingDeaths returns the number of marked entities
func (w *World) PendingDeaths() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.dyingOrder)
}

// Reap removes every marked entity from all stores and frees their slots
// Returns the number reaped
func (w *World) Reap() int {
	w.mu.Lock()
	batch := w.dyingOrder
	w.dyingOrder = nil
	w.dying = make(map[core.Entity]struct{}, len(batch))
	w.mu.Unlock()

	if len(batch) == 0 {
		return 0
	}

	for _, ns := range w.stores {
		ns.store.RemoveBatch(batch)
	}

	w.mu.Lock()
	for _, e := range batch {
		w.release(e)
	}
	w.mu.Unlock()

	return len(batch)
}

// release bumps the slot generation and returns it to the free list; caller holds mu
func (w *World) release(e core.Entity) {
	if !w.exists(e) {
		return
	}
	idx := e.Index()
	w.generations[idx]++
	if w.generations[idx] == 0 {
		w.generations[idx] = 1
	}
	w.free = append(w.free, idx)
	w.live--
}

// DestroyEntity removes an entity from all stores immediately
// Prefer MarkForDeath inside a frame
func (w *World) DestroyEntity(e core.Entity) {
	if !w.Exists(e) {
		return
	}
	for _, ns := range w.stores {
		ns.store.RemoveEntity(e)
	}

	w.mu.Lock()
	if _, marked := w.dying[e]; marked {
		delete(w.dying, e)
		for i, d := range w.dyingOrder {
			if d == e {
				w.dyingOrder = append(w.dyingOrder[:i], w.dyingOrder[i+1:]...)
				break
			}
		}
	}
	w.release(e)
	w.mu.Unlock()
}

// Clear removes all entities and components
// Slot generations survive so handles from before the clear stay stale
func (w *World) Clear() {
	for _, ns := range w.stores {
		ns.store.ClearAllComponents()
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.free = w.free[:0]
	for idx := range w.generations {
		w.generations[idx]++
		if w.generations[idx] == 0 {
			w.generations[idx] = 1
		}
		w.free = append(w.free, uint32(idx))
	}
	w.live = 0
	w.dying = make(map[core.Entity]struct{})
	w.dyingOrder = nil
}

// EntityCount returns the number of allocated entities, marked ones included
func (w *World) EntityCount() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.live
}

// Check reports an invariant violation for handles that no longer name an entity
func (w *World) Check(e core.Entity) error {
	if !w.Exists(e) {
		return errors.Wrapf(core.ErrInvariant, "entity %s does not exist", e)
	}
	return nil
}

// Describe lists the component kinds attached to e
func (w *World) Describe(e core.Entity) ([]string, error) {
	if err := w.Check(e); err != nil {
		return nil, err
	}
	var names []string
	for _, ns := range w.stores {
		if ns.store.HasEntity(e) {
			names = append(names, ns.name)
		}
	}
	return names, nil
}

// AddSystem adds a system to the world and sorts by priority
func (w *World) AddSystem(system System) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.systems = append(w.systems, system)

	// Stable insertion sort, small N
	for i := len(w.systems) - 1; i > 0 && w.systems[i-1].Priority() > w.systems[i].Priority(); i-- {
		w.systems[i-1], w.systems[i] = w.systems[i], w.systems[i-1]
	}
}

// Systems returns a copy of all registered systems
func (w *World) Systems() []System {
	w.mu.RLock()
	defer w.mu.RUnlock()
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// RunSafe executes a function while holding the world's update lock
func (w *World) RunSafe(fn func()) {
	w.updateMutex.Lock()
	defer w.updateMutex.Unlock()
	fn()
}

// Update runs all systems sequentially under the update lock
func (w *World) Update() {
	w.RunSafe(w.UpdateLocked)
}

// UpdateLocked runs all systems assuming the caller already holds the update lock
func (w *World) UpdateLocked() {
	for _, system := range w.Systems() {
		system.Update()
	}
}

// FrameNumber returns the current frame index from the owning GameContext
func (w *World) FrameNumber() int64 {
	if w.frameSource == nil {
		return 0
	}
	return w.frameSource.Load()
}

// SetEventMetadata wires the direct pointers for PushEvent
// Called once during GameContext initialization
func (w *World) SetEventMetadata(q *event.EventQueue, f *atomic.Int64) {
	w.eventQueue = q
	w.frameSource = f
}

// PushEvent emits a game event stamped with the current frame
func (w *World) PushEvent(eventType event.EventType, payload any) {
	if w.eventQueue == nil {
		return
	}
	w.eventQueue.Push(event.GameEvent{
		Type:    eventType,
		Payload: payload,
		Frame:   w.FrameNumber(),
	})
}
