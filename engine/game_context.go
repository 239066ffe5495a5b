package engine

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/vape/core"
	"github.com/lixenwraith/vape/event"
	"github.com/lixenwraith/vape/status"
)

// GameContext owns the World, the event queue and router, and the frame counter
// Independent instances share nothing, so tests build as many as they need
type GameContext struct {
	// ===== Immutable After Init =====

	World      *World
	Router     *EventRouter
	eventQueue *event.EventQueue

	// ===== Atomic (Self-Synchronized) =====

	FrameNumber atomic.Int64 // Step counter, read by World.PushEvent for event stamps

	statSteps  *atomic.Int64
	statEvents *atomic.Int64
	statLost   *atomic.Int64
	statReaped *atomic.Int64
	statSpeed  *status.Float
}

// NewGameContext creates a GameContext around world
// width/height are the world extents in units
func NewGameContext(world *World, width, height int) *GameContext {
	ctx := &GameContext{
		World:      world,
		eventQueue: event.NewEventQueue(),
	}
	ctx.Router = NewEventRouter(ctx.eventQueue)

	// Wire World to this Context's frame and event source
	world.SetEventMetadata(ctx.eventQueue, &ctx.FrameNumber)

	res := world.Resources
	res.Event.Queue = ctx.eventQueue
	res.Config.ScreenWidth = width
	res.Config.ScreenHeight = height

	ctx.statSteps = res.Status.Ints.Get("engine.steps")
	ctx.statEvents = res.Status.Ints.Get("engine.events")
	ctx.statLost = res.Status.Ints.Get("engine.events_lost")
	ctx.statReaped = res.Status.Ints.Get("engine.reaped")
	ctx.statSpeed = res.Status.Floats.Get("time.speed")

	return ctx
}

// AddSystem registers the system for updates and for its declared events
func (ctx *GameContext) AddSystem(s System) {
	ctx.World.AddSystem(s)
	ctx.Router.Register(s)
}

// EventQueue returns the queue shared by World.PushEvent
func (ctx *GameContext) EventQueue() *event.EventQueue {
	return ctx.eventQueue
}

// PushEvent emits an event stamped with the current frame
func (ctx *GameContext) PushEvent(eventType event.EventType, payload any) {
	ctx.World.PushEvent(eventType, payload)
}

// Step advances the simulation by one fixed tick
// Order: time, pre-dispatch, systems, post-dispatch, reap, projectile compaction
func (ctx *GameContext) Step(dt time.Duration, input core.InputSnapshot) {
	ctx.World.RunSafe(func() {
		frame := ctx.FrameNumber.Add(1)
		res := ctx.World.Resources

		res.Input.Snapshot = input
		res.Time.Update(dt, res.Game.Speed(), frame)

		n := ctx.Router.DispatchAll()
		ctx.World.UpdateLocked()
		n += ctx.Router.DispatchAll()

		reaped := ctx.World.Reap()
		res.Projectiles.Compact(ctx.World.IsAlive)

		ctx.statSteps.Add(1)
		ctx.statEvents.Add(int64(n))
		ctx.statLost.Store(int64(ctx.eventQueue.Lost()))
		ctx.statReaped.Add(int64(reaped))
		ctx.statSpeed.Store(res.Game.Speed())
	})
}

// DispatchPending delivers queued events outside of a step
// Used while paused so menu-driven events still reach their handlers
func (ctx *GameContext) DispatchPending() int {
	var n int
	ctx.World.RunSafe(func() {
		n = ctx.Router.DispatchAll()
		ctx.World.Reap()
		ctx.World.Resources.Projectiles.Compact(ctx.World.IsAlive)
	})
	return n
}

// ResetWorld destroys every entity and clears per-level transient state
// Caller must not hold the update lock
func (ctx *GameContext) ResetWorld() {
	ctx.World.RunSafe(func() {
		ctx.eventQueue.Reset()
		ctx.World.Clear()
		res := ctx.World.Resources
		res.Projectiles.Clear()
		res.Time.Elapsed = 0
		res.Game.Player = core.InvalidEntity
		res.Game.VampFactor = 1
	})
}
