package engine

import "github.com/lixenwraith/vape/event"

// EventHandler processes specific event types
// Systems implement this interface to receive routed events
type EventHandler interface {
	// HandleEvent processes a single event
	// Called synchronously during the dispatch phase
	HandleEvent(ev event.GameEvent)

	// EventTypes returns the event types this handler processes
	EventTypes() []event.EventType
}

// EventRouter dispatches events to registered handlers
//
// Architecture:
//   - Single-threaded dispatch (no concurrency issues with World mutation)
//   - Multiple handlers can register for the same event type
//   - Handlers are invoked in registration order
//   - Events pushed during dispatch are delivered in the same DispatchAll call
type EventRouter struct {
	handlers map[event.EventType][]EventHandler
	queue    *event.EventQueue
	observer func(event.GameEvent)
	scratch  []event.GameEvent
}

// maxDispatchRounds bounds cascades of events emitted by handlers
const maxDispatchRounds = 8

// NewEventRouter creates a router attached to the given queue
func NewEventRouter(queue *event.EventQueue) *EventRouter {
	return &EventRouter{
		handlers: make(map[event.EventType][]EventHandler),
		queue:    queue,
	}
}

// Register adds a handler for its declared event types
func (r *EventRouter) Register(handler EventHandler) {
	for _, t := range handler.EventTypes() {
		r.handlers[t] = append(r.handlers[t], handler)
	}
}

// Observe installs a callback that sees every dispatched event before its handlers
func (r *EventRouter) Observe(fn func(event.GameEvent)) {
	r.observer = fn
}

// DispatchAll consumes all pending events and routes them to handlers in FIFO order
// Returns the number of events dispatched
func (r *EventRouter) DispatchAll() int {
	n := 0
	for round := 0; round < maxDispatchRounds; round++ {
		r.scratch = r.queue.Drain(r.scratch[:0])
		if len(r.scratch) == 0 {
			break
		}
		// Handlers may push; anything they emit lands in the next round
		events := r.scratch
		for _, ev := range events {
			if r.observer != nil {
				r.observer(ev)
			}
			for _, h := range r.handlers[ev.Type] {
				h.HandleEvent(ev)
			}
		}
		n += len(events)
	}
	return n
}

