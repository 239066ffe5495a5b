package system

import (
	"sync/atomic"

	"github.com/lixenwraith/vape/engine"
	"github.com/lixenwraith/vape/event"
	"github.com/lixenwraith/vape/parameter"
)

// WaveSource reports whether the level script has nothing left to spawn
type WaveSource interface {
	Done() bool
}

// ProgressSystem decides when a level ends
// A dead player restarts the level after the respawn delay, or ends the run when lives are out
// A regular level completes when the vamp quota is met or the script is exhausted and the field is clear
type ProgressSystem struct {
	world *engine.World
	waves WaveSource

	maxLives int // 0 is unlimited
	deaths   int

	finished bool

	// quotaArmed is set once a positive quota is seen, so levels without a quota never complete on it
	quotaArmed bool

	statDeaths *atomic.Int64

	enabled bool
}

func NewProgressSystem(world *engine.World, waves WaveSource, lives int) *ProgressSystem {
	s := &ProgressSystem{
		world:      world,
		waves:      waves,
		maxLives:   lives,
		statDeaths: world.Resources.Status.Ints.Get("progress.deaths"),
	}
	s.Init()
	return s
}

// Init arms the level-end checks for a fresh level
func (s *ProgressSystem) Init() {
	s.finished = false
	s.quotaArmed = false
	s.enabled = true
}

// ResetRun forgets deaths from a previous run
func (s *ProgressSystem) ResetRun() {
	s.deaths = 0
	s.statDeaths.Store(0)
}

// LivesLeft returns remaining lives, or -1 when unlimited
func (s *ProgressSystem) LivesLeft() int {
	if s.maxLives <= 0 {
		return -1
	}
	return max(s.maxLives-s.deaths, 0)
}

func (s *ProgressSystem) Name() string  { return "progress" }
func (s *ProgressSystem) Priority() int { return parameter.PriorityProgress }

func (s *ProgressSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventMetaSystemCommandRequest,
		event.EventGameReset,
	}
}

func (s *ProgressSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventGameReset:
		s.Init()
	case event.EventMetaSystemCommandRequest:
		metaToggle(ev, s.Name(), &s.enabled)
	}
}

func (s *ProgressSystem) Update() {
	if !s.enabled || s.finished {
		return
	}

	game := s.world.Resources.Game
	c := &s.world.Components
	player := game.Player

	h, ok := c.Health.GetComponent(player)
	if !ok {
		return
	}

	if h.Dead {
		pc, _ := c.Player.GetComponent(player)
		pc.DeadTime += s.world.Resources.Time.DeltaTime
		c.Player.SetComponent(player, pc)
		if pc.DeadTime < parameter.PlayerRespawnDelay {
			return
		}

		s.finished = true
		s.deaths++
		s.statDeaths.Store(int64(s.deaths))
		if s.maxLives > 0 && s.deaths >= s.maxLives {
			s.world.PushEvent(event.EventGameOver, nil)
			return
		}
		s.world.PushEvent(event.EventLevelRestart, nil)
		return
	}

	// Tutorial completion is owned by the tutorial graph
	if game.Tutorial {
		return
	}

	if game.Quota > 0 {
		s.quotaArmed = true
	}
	if (s.quotaArmed && game.Quota <= 0) || (s.waves != nil && s.waves.Done() && c.Enemy.CountEntities() == 0) {
		s.finished = true
		s.world.PushEvent(event.EventLevelComplete, nil)
	}
}
