package system

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vape/content"
	"github.com/lixenwraith/vape/core"
	"github.com/lixenwraith/vape/engine"
	"github.com/lixenwraith/vape/event"
	"github.com/lixenwraith/vape/level"
	"github.com/lixenwraith/vape/parameter"
	"github.com/lixenwraith/vape/vmath"
)

const tick = parameter.TickInterval

// fakeAudio records device calls
type fakeAudio struct {
	played  []core.SoundType
	stopped []core.SoundType
}

func (a *fakeAudio) Play(s core.SoundType) bool {
	a.played = append(a.played, s)
	return true
}

func (a *fakeAudio) Stop(s core.SoundType) {
	a.stopped = append(a.stopped, s)
}

func (a *fakeAudio) count(s core.SoundType) int {
	n := 0
	for _, p := range a.played {
		if p == s {
			n++
		}
	}
	return n
}

// harness is a full simulation with every system installed and all events recorded
type harness struct {
	t        *testing.T
	ctx      *engine.GameContext
	world    *engine.World
	set      *Set
	registry *content.Registry
	audio    *fakeAudio
	events   []event.GameEvent
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	w := engine.NewWorld()
	ctx := engine.NewGameContext(w, 800, 600)

	audio := &fakeAudio{}
	w.Resources.Audio.Player = audio

	registry := content.NewRegistry()
	set, err := Install(ctx, registry, 0)
	require.NoError(t, err)

	h := &harness{t: t, ctx: ctx, world: w, set: set, registry: registry, audio: audio}
	ctx.Router.Observe(func(ev event.GameEvent) {
		h.events = append(h.events, ev)
	})
	return h
}

func (h *harness) step(in core.InputSnapshot) {
	h.ctx.Step(tick, in)
}

func (h *harness) steps(n int) {
	for i := 0; i < n; i++ {
		h.step(core.InputSnapshot{})
	}
}

func (h *harness) count(et event.EventType) int {
	n := 0
	for _, ev := range h.events {
		if ev.Type == et {
			n++
		}
	}
	return n
}

func (h *harness) player(at vmath.Vec2) core.Entity {
	h.t.Helper()
	e, err := content.SpawnPlayer(h.world, at)
	require.NoError(h.t, err)
	return e
}

func (h *harness) spawn(kind string, at vmath.Vec2) core.Entity {
	h.t.Helper()
	e, err := h.registry.Spawn(h.world, level.Descriptor{Kind: kind, Position: at})
	require.NoError(h.t, err)
	return e
}

// run executes fn inside the update lock, as systems do
func (h *harness) run(fn func()) {
	h.world.RunSafe(fn)
}

func pressed(codes ...core.InputCode) core.InputSnapshot {
	var in core.InputSnapshot
	for _, c := range codes {
		in.Pressed[c] = true
		in.Held[c] = true
	}
	return in
}

func held(codes ...core.InputCode) core.InputSnapshot {
	var in core.InputSnapshot
	for _, c := range codes {
		in.Held[c] = true
	}
	return in
}
