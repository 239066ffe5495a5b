package system

import (
	"sync/atomic"

	"github.com/lixenwraith/vape/content"
	"github.com/lixenwraith/vape/engine"
	"github.com/lixenwraith/vape/event"
	"github.com/lixenwraith/vape/parameter"
	"github.com/lixenwraith/vape/vmath"
)

// EffectSystem spawns explosion bursts and ages every particle emitter
type EffectSystem struct {
	world *engine.World

	// live is the particle count after the last step, used to cap new bursts
	live int

	statParticles *atomic.Int64
	statDropped   *atomic.Int64

	enabled bool
}

func NewEffectSystem(world *engine.World) engine.System {
	s := &EffectSystem{
		world:         world,
		statParticles: world.Resources.Status.Ints.Get("effect.particles"),
		statDropped:   world.Resources.Status.Ints.Get("effect.dropped"),
	}
	s.Init()
	return s
}

func (s *EffectSystem) Init() {
	s.live = 0
	s.enabled = true
}

func (s *EffectSystem) Name() string  { return "effect" }
func (s *EffectSystem) Priority() int { return parameter.PriorityEffect }

func (s *EffectSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventExplosionRequest,
		event.EventMetaSystemCommandRequest,
		event.EventGameReset,
	}
}

func (s *EffectSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventGameReset:
		s.Init()
		return
	case event.EventMetaSystemCommandRequest:
		metaToggle(ev, s.Name(), &s.enabled)
		return
	}
	if !s.enabled {
		return
	}

	if ev.Type == event.EventExplosionRequest {
		if p, ok := ev.Payload.(*event.ExplosionPayload); ok {
			s.explode(p)
		}
	}
}

func (s *EffectSystem) explode(p *event.ExplosionPayload) {
	count := p.Count
	if count <= 0 {
		count = parameter.ExplosionParticles
	}
	if room := parameter.ParticleMax - s.live; count > room {
		s.statDropped.Add(1)
		if room <= 0 {
			return
		}
		count = room
	}
	content.SpawnExplosion(s.world, vmath.V(p.X, p.Y), count)
	s.live += count
}

func (s *EffectSystem) Update() {
	if !s.enabled {
		return
	}

	store := s.world.Components.Emitter
	dt := s.world.Resources.Time.SimDelta
	live := 0

	for _, e := range s.world.Query().With(store).Execute() {
		em, _ := store.GetComponent(e)
		if len(em.Particles) == 0 && !em.Transient {
			continue
		}
		em.Step(dt)
		store.SetComponent(e, em)
		live += len(em.Particles)

		if em.Transient && len(em.Particles) == 0 {
			s.world.MarkForDeath(e)
		}
	}

	s.live = live
	s.statParticles.Store(int64(live))
}
