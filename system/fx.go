package system

import (
	"github.com/lixenwraith/vape/core"
	"github.com/lixenwraith/vape/engine"
	"github.com/lixenwraith/vape/event"
	"github.com/lixenwraith/vape/vmath"
)

// playSound requests a one-shot or looping sound
func playSound(w *engine.World, s core.SoundType) {
	w.PushEvent(event.EventSoundRequest, &event.SoundRequestPayload{Sound: s})
}

// stopSound stops a looping sound
func stopSound(w *engine.World, s core.SoundType) {
	w.PushEvent(event.EventSoundStop, &event.SoundRequestPayload{Sound: s})
}

// explode requests a particle burst; count 0 uses the default size
func explode(w *engine.World, at vmath.Vec2, count int) {
	w.PushEvent(event.EventExplosionRequest, &event.ExplosionPayload{X: at.X, Y: at.Y, Count: count})
}

// metaToggle applies a meta system command addressed to name
func metaToggle(ev event.GameEvent, name string, enabled *bool) {
	if payload, ok := ev.Payload.(*event.MetaSystemCommandPayload); ok && payload.SystemName == name {
		*enabled = payload.Enabled
	}
}

// livePlayer returns the player entity when it exists and is not dead
func livePlayer(w *engine.World) (core.Entity, bool) {
	p := w.Resources.Game.Player
	if !w.IsAlive(p) {
		return core.InvalidEntity, false
	}
	if h, ok := w.Components.Health.GetComponent(p); ok && h.Dead {
		return p, false
	}
	return p, true
}
