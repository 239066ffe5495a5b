package system

import (
	"github.com/lixenwraith/vape/engine"
	"github.com/lixenwraith/vape/event"
	"github.com/lixenwraith/vape/parameter"
)

// AudioSystem forwards sound events to the audio adapter
// Systems never touch the device directly
type AudioSystem struct {
	world  *engine.World
	player engine.AudioPlayer

	enabled bool
}

// NewAudioSystem creates an audio system bound to the world's audio resource
// The player may be nil when audio is muted
func NewAudioSystem(world *engine.World) engine.System {
	var player engine.AudioPlayer
	if world.Resources.Audio != nil {
		player = world.Resources.Audio.Player
	}
	s := &AudioSystem{
		world:  world,
		player: player,
	}
	s.Init()
	return s
}

// Init resets session state for a new level
func (s *AudioSystem) Init() {
	s.enabled = true
}

func (s *AudioSystem) Name() string  { return "audio" }
func (s *AudioSystem) Priority() int { return parameter.PriorityAudio }

func (s *AudioSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventSoundRequest,
		event.EventSoundStop,
		event.EventMetaSystemCommandRequest,
		event.EventGameReset,
	}
}

func (s *AudioSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventGameReset:
		s.Init()
		return
	case event.EventMetaSystemCommandRequest:
		metaToggle(ev, s.Name(), &s.enabled)
		return
	}

	if !s.enabled || s.player == nil {
		return
	}
	payload, ok := ev.Payload.(*event.SoundRequestPayload)
	if !ok {
		return
	}

	switch ev.Type {
	case event.EventSoundRequest:
		s.player.Play(payload.Sound)
	case event.EventSoundStop:
		s.player.Stop(payload.Sound)
	}
}

// Update implements System; audio is purely event driven
func (s *AudioSystem) Update() {}
