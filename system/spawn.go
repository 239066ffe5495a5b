package system

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/vape/content"
	"github.com/lixenwraith/vape/core"
	"github.com/lixenwraith/vape/engine"
	"github.com/lixenwraith/vape/event"
	"github.com/lixenwraith/vape/level"
	"github.com/lixenwraith/vape/log"
	"github.com/lixenwraith/vape/parameter"
)

// SpawnSystem fires the level timeline on simulation time
// Each wave fires exactly once; a failing descriptor is skipped and reported
type SpawnSystem struct {
	world    *engine.World
	registry *content.Registry

	timeline *level.Timeline
	clock    time.Duration
	spawned  []core.Entity

	statSpawned *atomic.Int64
	statFailed  *atomic.Int64

	enabled bool
}

func NewSpawnSystem(world *engine.World, registry *content.Registry) *SpawnSystem {
	s := &SpawnSystem{
		world:       world,
		registry:    registry,
		timeline:    level.NewTimeline(nil),
		statSpawned: world.Resources.Status.Ints.Get("spawn.spawned"),
		statFailed:  world.Resources.Status.Ints.Get("spawn.failed"),
	}
	s.Init()
	return s
}

// Init rewinds the clock; the timeline is replaced only through Reset
func (s *SpawnSystem) Init() {
	s.clock = 0
	s.spawned = s.spawned[:0]
	s.enabled = true
}

func (s *SpawnSystem) Name() string  { return "spawn" }
func (s *SpawnSystem) Priority() int { return parameter.PrioritySpawn }

func (s *SpawnSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventMetaSystemCommandRequest,
		event.EventGameReset,
	}
}

func (s *SpawnSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventGameReset:
		s.Init()
	case event.EventMetaSystemCommandRequest:
		metaToggle(ev, s.Name(), &s.enabled)
	}
}

// Reset marks every live spawned actor for death and installs a clone of timeline
// Waves already fired from the previous timeline never refire
func (s *SpawnSystem) Reset(timeline *level.Timeline) {
	for _, e := range s.spawned {
		s.world.MarkForDeath(e)
	}
	s.spawned = s.spawned[:0]
	s.timeline = timeline.Clone()
	s.clock = 0
}

// Done reports that every wave has fired
func (s *SpawnSystem) Done() bool {
	return s.timeline.Len() == 0
}

// Clock returns simulation time since the last reset
func (s *SpawnSystem) Clock() time.Duration {
	return s.clock
}

func (s *SpawnSystem) Update() {
	if !s.enabled {
		return
	}

	s.clock += s.world.Resources.Time.SimDelta
	s.prune()

	for _, wave := range s.timeline.PopDue(s.clock) {
		n := 0
		for _, d := range wave.Spawns {
			e, err := s.registry.Spawn(s.world, d)
			if err != nil {
				s.statFailed.Add(1)
				s.world.Resources.Log.Warn("spawn failed",
					log.String("kind", d.Kind),
					log.Duration("at", wave.At),
					log.Err(err),
				)
				s.world.PushEvent(event.EventSpawnFailed, &event.SpawnFailedPayload{Kind: d.Kind, Err: err})
				continue
			}
			s.spawned = append(s.spawned, e)
			n++
		}
		s.statSpawned.Add(int64(n))
		s.world.PushEvent(event.EventWaveSpawned, &event.WaveSpawnedPayload{At: wave.At, Count: n})
	}
}

// prune forgets spawned entities that are gone
func (s *SpawnSystem) prune() {
	live := s.spawned[:0]
	for _, e := range s.spawned {
		if s.world.IsAlive(e) {
			live = append(live, e)
		}
	}
	s.spawned = live
}
