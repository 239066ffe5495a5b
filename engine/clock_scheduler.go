package engine

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/vape/parameter"
)

// ClockScheduler drives a step function on a fixed tick
// Elapsed clock time accumulates and is consumed in whole intervals, so variable
// wall-clock gaps never change the simulation step
type ClockScheduler struct {
	clock    Clock
	interval time.Duration
	maxSteps int
	step     func(dt time.Duration)

	mu          sync.Mutex
	last        time.Time
	accumulator time.Duration

	tickCount atomic.Uint64
	dropped   atomic.Uint64
}

// NewClockScheduler creates a scheduler calling step once per interval of clock time
func NewClockScheduler(clock Clock, interval time.Duration, step func(dt time.Duration)) *ClockScheduler {
	if interval <= 0 {
		interval = parameter.TickInterval
	}
	return &ClockScheduler{
		clock:    clock,
		interval: interval,
		maxSteps: parameter.MaxCatchUpTicks,
		step:     step,
		last:     clock.Now(),
	}
}

// Pump runs every step owed since the previous pump and returns how many ran
// After a stall longer than MaxCatchUpTicks intervals the backlog is dropped
func (cs *ClockScheduler) Pump() int {
	cs.mu.Lock()
	now := cs.clock.Now()
	cs.accumulator += now.Sub(cs.last)
	cs.last = now

	n := 0
	for cs.accumulator >= cs.interval && n < cs.maxSteps {
		cs.accumulator -= cs.interval
		n++
	}
	if cs.accumulator >= cs.interval {
		cs.dropped.Add(uint64(cs.accumulator / cs.interval))
		cs.accumulator %= cs.interval
	}
	cs.mu.Unlock()

	for i := 0; i < n; i++ {
		cs.step(cs.interval)
		cs.tickCount.Add(1)
	}
	return n
}

// Reset forgets accumulated time, used after pause or level load
func (cs *ClockScheduler) Reset() {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.last = cs.clock.Now()
	cs.accumulator = 0
}

// Run pumps on a ticker until ctx is cancelled
func (cs *ClockScheduler) Run(ctx context.Context) error {
	ticker := time.NewTicker(cs.interval)
	defer ticker.Stop()

	cs.Reset()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			cs.Pump()
		}
	}
}

// TickCount returns the number of steps run
func (cs *ClockScheduler) TickCount() uint64 {
	return cs.tickCount.Load()
}

// Dropped returns the number of steps discarded after stalls
func (cs *ClockScheduler) Dropped() uint64 {
	return cs.dropped.Load()
}
