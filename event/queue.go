package event

import (
	"sync/atomic"

	"github.com/lixenwraith/vape/parameter"
)

// EventQueue is a fixed ring of game events with many producers and one consumer
//
// Producers claim a slot by advancing tail with CAS, write it, then flip the slot's
// ready flag. The consumer stops at the first slot whose flag is not yet set, so a
// half-written event is never observed. When producers lap the consumer the oldest
// events are lost and counted.
type EventQueue struct {
	slots [parameter.EventQueueSize]slot
	head  atomic.Uint64
	tail  atomic.Uint64
	lost  atomic.Uint64
}

type slot struct {
	ev    GameEvent
	ready atomic.Bool
}

func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push appends ev, overwriting the oldest pending event when the ring is full
func (q *EventQueue) Push(ev GameEvent) {
	var pos uint64
	for {
		pos = q.tail.Load()
		if q.tail.CompareAndSwap(pos, pos+1) {
			break
		}
	}

	s := &q.slots[pos&parameter.EventBufferMask]
	s.ev = ev
	s.ready.Store(true)

	// Drag head forward when this write lapped unread events
	for {
		head := q.head.Load()
		floor := pos + 1 - min(pos+1, parameter.EventQueueSize)
		if head >= floor {
			return
		}
		if q.head.CompareAndSwap(head, floor) {
			q.lost.Add(floor - head)
			return
		}
	}
}

// Drain appends every published event to dst in FIFO order and returns it
// Reusing dst across frames keeps dispatch allocation free
func (q *EventQueue) Drain(dst []GameEvent) []GameEvent {
	for {
		head := q.head.Load()
		tail := q.tail.Load()
		if head == tail {
			return dst
		}

		start := len(dst)
		pos := head
		for ; pos < tail; pos++ {
			s := &q.slots[pos&parameter.EventBufferMask]
			if !s.ready.Load() {
				break
			}
			dst = append(dst, s.ev)
		}

		if q.head.CompareAndSwap(head, pos) {
			for p := head; p < pos; p++ {
				q.slots[p&parameter.EventBufferMask].ready.Store(false)
			}
			return dst
		}
		// A producer moved head under us; retry from the new position
		dst = dst[:start]
	}
}

// Consume returns all pending events, or nil when there are none
func (q *EventQueue) Consume() []GameEvent {
	events := q.Drain(nil)
	if len(events) == 0 {
		return nil
	}
	return events
}

// Reset discards pending events without delivering them
func (q *EventQueue) Reset() int {
	for {
		head := q.head.Load()
		tail := q.tail.Load()
		if q.head.CompareAndSwap(head, tail) {
			for p := head; p < tail; p++ {
				q.slots[p&parameter.EventBufferMask].ready.Store(false)
			}
			return int(tail - head)
		}
	}
}

// Len returns the approximate pending count
func (q *EventQueue) Len() int {
	head := q.head.Load()
	tail := q.tail.Load()
	if tail <= head {
		return 0
	}
	return int(min(tail-head, parameter.EventQueueSize))
}

// Lost returns how many events were overwritten before being consumed
func (q *EventQueue) Lost() uint64 {
	return q.lost.Load()
}
