package engine

import "github.com/lixenwraith/vape/event"

// System is a unit of per-tick logic
// Systems run in ascending Priority order inside World.UpdateLocked
type System interface {
	// Name identifies the system for meta commands and logs
	Name() string

	// Priority orders systems, lower runs first
	Priority() int

	// EventTypes returns the event types this system receives
	EventTypes() []event.EventType

	// HandleEvent processes a routed event during dispatch
	HandleEvent(ev event.GameEvent)

	// Update runs the per-tick logic
	Update()
}
