package core

import "fmt"

// Entity is a generation-checked handle into the world's entity slots
// Low 32 bits hold the slot index, high 32 bits the slot generation
// Generations start at 1, the zero value never names a live entity
type Entity uint64

// InvalidEntity is the zero handle
const InvalidEntity Entity = 0

// NewEntity packs a slot index and generation into a handle
func NewEntity(index, generation uint32) Entity {
	return Entity(uint64(generation)<<32 | uint64(index))
}

// Index returns the slot index
func (e Entity) Index() uint32 {
	return uint32(e)
}

// Generation returns the slot generation the handle was issued for
func (e Entity) Generation() uint32 {
	return uint32(e >> 32)
}

func (e Entity) String() string {
	return fmt.Sprintf("%d:%d", e.Index(), e.Generation())
}
