package system

import (
	"math"
	"time"

	"github.com/lixenwraith/vape/component"
	"github.com/lixenwraith/vape/core"
	"github.com/lixenwraith/vape/engine"
	"github.com/lixenwraith/vape/event"
	"github.com/lixenwraith/vape/parameter"
	"github.com/lixenwraith/vape/vmath"
)

// CloneSystem drives the clone squad: fly into formation, attack, recover from stuns
type CloneSystem struct {
	world *engine.World

	enabled bool
}

func NewCloneSystem(world *engine.World) engine.System {
	s := &CloneSystem{world: world}
	s.Init()
	return s
}

func (s *CloneSystem) Init() {
	s.enabled = true
}

func (s *CloneSystem) Name() string  { return "clone" }
func (s *CloneSystem) Priority() int { return parameter.PriorityClone }

func (s *CloneSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventMetaSystemCommandRequest,
		event.EventGameReset,
	}
}

func (s *CloneSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventGameReset:
		s.Init()
	case event.EventMetaSystemCommandRequest:
		metaToggle(ev, s.Name(), &s.enabled)
	}
}

func (s *CloneSystem) Update() {
	if !s.enabled {
		return
	}

	c := &s.world.Components
	dt := s.world.Resources.Time.SimDelta

	var playerPos vmath.Vec2
	player, hasPlayer := livePlayer(s.world)
	if hasPlayer {
		pm, _ := c.Motion.GetComponent(player)
		playerPos = pm.Position
	}

	for _, e := range s.world.Query().With(c.Clone).With(c.Motion).Execute() {
		cl, _ := c.Clone.GetComponent(e)
		m, _ := c.Motion.GetComponent(e)
		armed := false

		switch cl.State {
		case component.CloneMoving:
			if seek(&m, cl.Target, cl.Speed, dt) {
				cl.State = component.CloneAttack
				m.Velocity = vmath.Vec2{}
				faceDown(&m)
			}

		case component.CloneAttack:
			switch {
			case !hasPlayer:
				m.Velocity = vmath.Vec2{}
			case cl.Leader:
				armed = true
				m.Velocity.X = (playerPos.X - m.Position.X) / parameter.CloneTrackDivisor
				m.Velocity.Y = 0
				if m.Position.Y < parameter.CloneAttackFloorY {
					m.Velocity.Y = parameter.CloneAttackDescend
				}
			default:
				seek(&m, playerPos, cl.Speed, dt)
			}

		case component.CloneStunned:
			// Recovery waits for the tick after the timer runs out
			if cl.StunRemaining < 0 {
				cl.Recover()
				m.Velocity = vmath.Vec2{}
				faceDown(&m)
				break
			}
			if m.Position.Y > 0 {
				m.Velocity = vmath.V(0, -parameter.CloneStunRiseSpeed)
			} else {
				cl.StunRemaining = 0
			}
			m.Rotation += parameter.CloneStunSpin
			m.RotationTarget = m.Rotation
			cl.StunRemaining -= dt
		}

		s.arm(e, armed)
		c.Motion.SetComponent(e, m)
		c.Clone.SetComponent(e, cl)
	}
}

// faceDown points the sprite at the bottom of the screen
func faceDown(m *component.MotionComponent) {
	m.Rotation = math.Pi
	m.RotationTarget = m.Rotation
}

// seek steers m toward target at speed and reports arrival
// The last step is shortened so the clone lands on the target instead of orbiting it
func seek(m *component.MotionComponent, target vmath.Vec2, speed float64, dt time.Duration) bool {
	d := target.Sub(m.Position)
	if math.Abs(d.X) < parameter.CloneArriveEpsilon && math.Abs(d.Y) < parameter.CloneArriveEpsilon {
		return true
	}

	a := math.Atan2(d.X, d.Y)
	m.Rotation = a - math.Pi
	m.RotationTarget = m.Rotation

	sec := dt.Seconds()
	if sec > 0 && speed*sec >= d.Len() {
		m.Velocity = d.Scale(1 / sec)
		return false
	}
	m.Velocity = vmath.FromAngle(a).Scale(speed)
	return false
}

func (s *CloneSystem) arm(e core.Entity, armed bool) {
	store := s.world.Components.Shooter
	sh, ok := store.GetComponent(e)
	if !ok || sh.Armed == armed {
		return
	}
	sh.Armed = armed
	store.SetComponent(e, sh)
}
