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

// LaserSystem cycles laser turrets through off, primed and firing
// One looping sound covers every firing beam; it stops when the last one goes quiet
type LaserSystem struct {
	world *engine.World

	firing map[core.Entity]struct{}

	enabled bool
}

func NewLaserSystem(world *engine.World) engine.System {
	s := &LaserSystem{world: world}
	s.Init()
	return s
}

func (s *LaserSystem) Init() {
	if len(s.firing) > 0 {
		stopSound(s.world, core.SoundLaser)
	}
	s.firing = make(map[core.Entity]struct{})
	s.enabled = true
}

func (s *LaserSystem) Name() string  { return "laser" }
func (s *LaserSystem) Priority() int { return parameter.PriorityLaser }

func (s *LaserSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventMetaSystemCommandRequest,
		event.EventGameReset,
	}
}

func (s *LaserSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventGameReset:
		s.Init()
	case event.EventMetaSystemCommandRequest:
		metaToggle(ev, s.Name(), &s.enabled)
	}
}

func (s *LaserSystem) Update() {
	if !s.enabled {
		return
	}

	c := &s.world.Components
	dt := s.world.Resources.Time.SimDelta

	for _, e := range s.world.Query().With(c.Laser).With(c.Motion).Execute() {
		l, _ := c.Laser.GetComponent(e)
		m, _ := c.Motion.GetComponent(e)
		prev := l.State

		if l.State == component.LaserOff {
			l.CycleRemaining -= dt
			if l.CycleRemaining <= 0 && l.Fire(parameter.LaserChargeDuration, parameter.LaserFireDuration) {
				s.aim(&m)
			}
		} else {
			l.Advance(dt)
		}

		if l.State != prev {
			s.transition(e, &l, &m, prev)
		}

		switch l.State {
		case component.LaserPrimed:
			s.warn(e, l, m)
		case component.LaserFiring:
			s.beam(e, l, m)
		}

		c.Laser.SetComponent(e, l)
		c.Motion.SetComponent(e, m)
	}

	s.pruneFiring()
}

// aim points the rotation target at the player's current position
func (s *LaserSystem) aim(m *component.MotionComponent) {
	player, ok := livePlayer(s.world)
	if !ok {
		m.RotationTarget = m.Rotation
		return
	}
	pm, _ := s.world.Components.Motion.GetComponent(player)
	facing := m.Position.AngleTo(pm.Position)
	m.RotationTarget = vmath.NearestAngle(m.Rotation, facing-math.Pi)
	m.RotationRate = 0
}

func (s *LaserSystem) transition(e core.Entity, l *component.LaserComponent, m *component.MotionComponent, from component.LaserState) {
	s.world.PushEvent(event.EventLaserStateChange, &event.LaserStatePayload{
		Laser: e,
		From:  int(from),
		To:    int(l.State),
	})

	switch {
	case l.State == component.LaserFiring:
		m.RotationRate = parameter.LaserRotationRate
		if len(s.firing) == 0 {
			playSound(s.world, core.SoundLaser)
		}
		s.firing[e] = struct{}{}

	case from == component.LaserFiring:
		m.RotationRate = 0
		m.RotationTarget = m.Rotation
		l.CycleRemaining = parameter.LaserCycle
		delete(s.firing, e)
		if len(s.firing) == 0 {
			stopSound(s.world, core.SoundLaser)
		}
	}
}

// pruneFiring drops turrets destroyed mid-beam and stops the loop when none remain
func (s *LaserSystem) pruneFiring() {
	if len(s.firing) == 0 {
		return
	}
	for e := range s.firing {
		if !s.world.IsAlive(e) {
			delete(s.firing, e)
		}
	}
	if len(s.firing) == 0 {
		stopSound(s.world, core.SoundLaser)
	}
}

// warn scatters sparse static particles along the future beam path
func (s *LaserSystem) warn(e core.Entity, l component.LaserComponent, m component.MotionComponent) {
	s.emitAlongBeam(e, l, m, parameter.LaserPrimedParticles, 0, parameter.WarningParticleLife,
		component.Color{R: 160, G: 0, B: 0})
}

// beam streams fast particles outward along the firing beam
func (s *LaserSystem) beam(e core.Entity, l component.LaserComponent, m component.MotionComponent) {
	s.emitAlongBeam(e, l, m, parameter.LaserBeamParticles, parameter.BeamParticleSpeed, parameter.BeamParticleLife,
		component.Color{R: 255, G: 80, B: 80})
}

func (s *LaserSystem) emitAlongBeam(e core.Entity, l component.LaserComponent, m component.MotionComponent,
	count int, speed float64, life time.Duration, color component.Color) {
	store := s.world.Components.Emitter
	em, ok := store.GetComponent(e)
	if !ok {
		return
	}
	rng := s.world.Resources.Rand
	dir := vmath.FromAngle(m.Rotation + math.Pi)
	for i := 0; i < count; i++ {
		at := m.Position.Add(dir.Scale(rng.Range(0, l.Length)))
		at.X += rng.Range(-l.Width/3, l.Width/3)
		em.Emit(component.Particle{
			Position: at,
			Velocity: dir.Scale(speed),
			Life:     life,
			Color:    color,
		})
	}
	store.SetComponent(e, em)
}
