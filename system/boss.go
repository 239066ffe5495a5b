package system

import (
	"time"

	"github.com/lixenwraith/vape/component"
	"github.com/lixenwraith/vape/engine"
	"github.com/lixenwraith/vape/event"
	"github.com/lixenwraith/vape/parameter"
)

// BossSystem derives boss phase from health and drives the patrol
// Phase two adds random direction reversals drawn from the level RNG
type BossSystem struct {
	world *engine.World

	enabled bool
}

func NewBossSystem(world *engine.World) engine.System {
	s := &BossSystem{world: world}
	s.Init()
	return s
}

func (s *BossSystem) Init() {
	s.enabled = true
}

func (s *BossSystem) Name() string  { return "boss" }
func (s *BossSystem) Priority() int { return parameter.PriorityBoss }

func (s *BossSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventMetaSystemCommandRequest,
		event.EventGameReset,
	}
}

func (s *BossSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventGameReset:
		s.Init()
	case event.EventMetaSystemCommandRequest:
		metaToggle(ev, s.Name(), &s.enabled)
	}
}

func (s *BossSystem) Update() {
	if !s.enabled {
		return
	}

	c := &s.world.Components
	dt := s.world.Resources.Time.SimDelta
	rng := s.world.Resources.Rand

	for _, e := range s.world.Query().With(c.Boss).With(c.Health).With(c.Motion).Execute() {
		b, _ := c.Boss.GetComponent(e)
		h, _ := c.Health.GetComponent(e)

		phase := component.NextPhase(b.Phase, h.Fraction(), parameter.BossPhaseTwoThreshold)
		if h.Dead {
			phase = component.BossPhaseDown
		}
		if phase != b.Phase {
			b.Phase = phase
			s.world.PushEvent(event.EventBossPhaseChange, &event.BossPhasePayload{Boss: e, Phase: int(phase)})
		}

		if b.Phase == component.BossPhaseDown {
			if sh, ok := c.Shooter.GetComponent(e); ok && sh.Armed {
				sh.Armed = false
				c.Shooter.SetComponent(e, sh)
			}
			c.Boss.SetComponent(e, b)
			continue
		}

		m, _ := c.Motion.GetComponent(e)

		// Bounds reflection flips velocity; follow it
		if m.Velocity.X > 0 {
			b.Direction = 1
		} else if m.Velocity.X < 0 {
			b.Direction = -1
		}

		if b.Phase == component.BossPhaseTwo {
			b.DirectionCooldown -= dt
			if b.DirectionCooldown <= 0 && rng.Float64() < parameter.BossDirectionChance {
				b.Direction = -b.Direction
				extra := time.Duration(rng.Intn(parameter.BossDirectionCooldownMax)) * time.Millisecond
				b.DirectionCooldown = parameter.BossDirectionCooldown + extra
			}
		}

		if b.Direction == 0 {
			b.Direction = 1
		}
		m.Velocity.X = b.Direction * b.Speed
		c.Motion.SetComponent(e, m)
		c.Boss.SetComponent(e, b)
	}
}
