package event

import (
	"time"

	"github.com/lixenwraith/vape/core"
)

// GameEvent is the envelope pushed through the queue
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64
}

// SoundRequestPayload names the sound to play or stop
type SoundRequestPayload struct {
	Sound core.SoundType
}

// ExplosionPayload positions an explosion burst
type ExplosionPayload struct {
	X, Y  float64
	Count int
}

// EnemyKilledPayload describes a kill
type EnemyKilledPayload struct {
	Entity core.Entity
	Kind   int
	Points int
	ByVamp bool
}

// PlayerDamagedPayload reports applied damage and the resulting health
type PlayerDamagedPayload struct {
	Amount    float64
	Remaining float64
}

// BurstFiredPayload identifies the shooter
type BurstFiredPayload struct {
	Shooter core.Entity
}

// BossPhasePayload carries the new phase index
type BossPhasePayload struct {
	Boss  core.Entity
	Phase int
}

// EntityPayload carries a single entity
type EntityPayload struct {
	Entity core.Entity
}

// LaserStatePayload carries a laser transition
type LaserStatePayload struct {
	Laser    core.Entity
	From, To int
}

// PickupPayload describes a collected pickup
type PickupPayload struct {
	Kind   int
	Amount int
}

// WaveSpawnedPayload describes a fired timeline entry
type WaveSpawnedPayload struct {
	At    time.Duration
	Count int
}

// SpawnFailedPayload describes an abandoned descriptor
type SpawnFailedPayload struct {
	Kind string
	Err  error
}

// DialoguePayload carries the tutorial stage name and its line
type DialoguePayload struct {
	Stage string
	Text  string
}

// MetaSystemCommandPayload toggles a system
type MetaSystemCommandPayload struct {
	SystemName string
	Enabled    bool
}
