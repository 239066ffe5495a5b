package parameter

import "time"

// Game Loop & Engine Timing
const (
	// TickInterval is the fixed simulation step (~60 Hz)
	TickInterval = 16 * time.Millisecond

	// MaxCatchUpTicks bounds how many fixed steps one scheduler pump may run after a stall
	MaxCatchUpTicks = 5

	// DefaultScreenWidth and DefaultScreenHeight are world extents in units
	DefaultScreenWidth  = 800.0
	DefaultScreenHeight = 600.0

	// SpeedStep is the base simulation speed change per speed-control press
	SpeedStep = 0.25
	MinSpeed  = 0.25
	MaxSpeed  = 3.0
)

// ECS & Resources Limits
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 2048

	// EventBufferMask is the bitmask for fast modulo operations (2048 - 1)
	EventBufferMask = 2047

	// InitialEntityCapacity pre-sizes slot and store arrays
	InitialEntityCapacity = 256
)

// Spectator
const (
	// SpectatorPublishEvery is the default frame interval between snapshots
	SpectatorPublishEvery = 6

	// SpectatorSendQueue is the per-client buffered snapshot count before drops
	SpectatorSendQueue = 16

	SpectatorWriteTimeout = 2 * time.Second
)
