package system

import (
	"github.com/lixenwraith/vape/core"
	"github.com/lixenwraith/vape/engine"
	"github.com/lixenwraith/vape/event"
	"github.com/lixenwraith/vape/log"
	"github.com/lixenwraith/vape/parameter"
	"github.com/lixenwraith/vape/vmath"
)

// DebugSystem handles the debug keys
// Refill and max charge go through the normal component paths, so a dead player stays dead
type DebugSystem struct {
	world *engine.World

	enabled bool
}

func NewDebugSystem(world *engine.World) engine.System {
	s := &DebugSystem{world: world}
	s.Init()
	return s
}

func (s *DebugSystem) Init() {
	s.enabled = true
}

func (s *DebugSystem) Name() string  { return "debug" }
func (s *DebugSystem) Priority() int { return parameter.PriorityDebug }

func (s *DebugSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventMetaSystemCommandRequest,
		event.EventGameReset,
	}
}

func (s *DebugSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventGameReset:
		s.Init()
	case event.EventMetaSystemCommandRequest:
		metaToggle(ev, s.Name(), &s.enabled)
	}
}

func (s *DebugSystem) Update() {
	game := s.world.Resources.Game
	if !s.enabled || !game.Debug.Enabled {
		return
	}

	in := &s.world.Resources.Input.Snapshot
	c := &s.world.Components
	player := game.Player

	if in.JustPressed(core.InputDebugHealth) {
		if h, ok := c.Health.GetComponent(player); ok {
			h.Refill()
			c.Health.SetComponent(player, h)
		}
	}

	if in.JustPressed(core.InputDebugCharge) {
		if v, ok := c.Vamp.GetComponent(player); ok {
			v.Charge = v.MaxCharge
			c.Vamp.SetComponent(player, v)
		}
	}

	if in.JustPressed(core.InputDebugInvincible) {
		game.Debug.Invincible = !game.Debug.Invincible
		s.world.Resources.Log.Info("debug invincibility", log.Bool("on", game.Debug.Invincible))
	}

	switch {
	case in.JustPressed(core.InputSpeedUp):
		game.BaseSpeed = vmath.Clamp(game.BaseSpeed+parameter.SpeedStep, parameter.MinSpeed, parameter.MaxSpeed)
	case in.JustPressed(core.InputSpeedDown):
		game.BaseSpeed = vmath.Clamp(game.BaseSpeed-parameter.SpeedStep, parameter.MinSpeed, parameter.MaxSpeed)
	}
}
