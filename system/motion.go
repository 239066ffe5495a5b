package system

import (
	"github.com/lixenwraith/vape/component"
	"github.com/lixenwraith/vape/engine"
	"github.com/lixenwraith/vape/event"
	"github.com/lixenwraith/vape/parameter"
	"github.com/lixenwraith/vape/physics"
	"github.com/lixenwraith/vape/vmath"
)

// MotionSystem integrates every kinematic entity
// The player steps on wall-clock time, everything else on simulation time
type MotionSystem struct {
	world *engine.World

	enabled bool
}

func NewMotionSystem(world *engine.World) engine.System {
	s := &MotionSystem{world: world}
	s.Init()
	return s
}

func (s *MotionSystem) Init() {
	s.enabled = true
}

func (s *MotionSystem) Name() string  { return "motion" }
func (s *MotionSystem) Priority() int { return parameter.PriorityMotion }

func (s *MotionSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventMetaSystemCommandRequest,
		event.EventGameReset,
	}
}

func (s *MotionSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventGameReset:
		s.Init()
	case event.EventMetaSystemCommandRequest:
		metaToggle(ev, s.Name(), &s.enabled)
	}
}

func (s *MotionSystem) Update() {
	if !s.enabled {
		return
	}

	res := s.world.Resources
	c := &s.world.Components
	width, height := res.Config.Width(), res.Config.Height()

	for _, e := range s.world.Query().With(c.Motion).Execute() {
		m, ok := c.Motion.GetComponent(e)
		if !ok {
			continue
		}

		isPlayer := c.Player.HasEntity(e)
		dt := res.Time.SimDelta
		if isPlayer {
			dt = res.Time.DeltaTime
		}

		m.Position, m.Velocity = physics.Integrate(m.Position, m.Velocity, m.Acceleration, dt)
		m.Rotation = vmath.EaseAngle(m.Rotation, m.RotationTarget, m.RotationRate, dt)

		if b, ok := c.Bounds.GetComponent(e); ok {
			switch {
			case m.Position.X < b.MinX:
				m.Position.X = b.MinX
				if b.Reflect && m.Velocity.X < 0 {
					m.Velocity.X = -m.Velocity.X
				}
			case m.Position.X > b.MaxX:
				m.Position.X = b.MaxX
				if b.Reflect && m.Velocity.X > 0 {
					m.Velocity.X = -m.Velocity.X
				}
			}
		}

		// Player stays on screen; velocity into the edge is dropped
		if isPlayer {
			if x := vmath.Clamp(m.Position.X, 0, width); x != m.Position.X {
				m.Position.X = x
				m.Velocity.X = 0
			}
			if y := vmath.Clamp(m.Position.Y, 0, height); y != m.Position.Y {
				m.Position.Y = y
				m.Velocity.Y = 0
			}
		}

		c.Motion.SetComponent(e, m)

		if c.Transform.HasEntity(e) {
			if p, ok := c.Physics.GetComponent(e); ok {
				c.Transform.SetComponent(e, component.TransformComponent{Model: p.Model(m)})
			}
		}
	}
}
