package system

import (
	"math"
	"sync/atomic"

	"github.com/lixenwraith/vape/content"
	"github.com/lixenwraith/vape/core"
	"github.com/lixenwraith/vape/engine"
	"github.com/lixenwraith/vape/event"
	"github.com/lixenwraith/vape/log"
	"github.com/lixenwraith/vape/parameter"
)

// ShooterSystem ticks the burst cadence of every armed shooter and spawns hostile bullets
type ShooterSystem struct {
	world *engine.World

	statBullets *atomic.Int64
	statBursts  *atomic.Int64

	enabled bool
}

func NewShooterSystem(world *engine.World) engine.System {
	s := &ShooterSystem{
		world:       world,
		statBullets: world.Resources.Status.Ints.Get("shooter.bullets"),
		statBursts:  world.Resources.Status.Ints.Get("shooter.bursts"),
	}
	s.Init()
	return s
}

func (s *ShooterSystem) Init() {
	s.enabled = true
}

func (s *ShooterSystem) Name() string  { return "shooter" }
func (s *ShooterSystem) Priority() int { return parameter.PriorityShooter }

func (s *ShooterSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventMetaSystemCommandRequest,
		event.EventGameReset,
	}
}

func (s *ShooterSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventGameReset:
		s.Init()
	case event.EventMetaSystemCommandRequest:
		metaToggle(ev, s.Name(), &s.enabled)
	}
}

func (s *ShooterSystem) Update() {
	if !s.enabled {
		return
	}

	c := &s.world.Components
	dt := s.world.Resources.Time.SimDelta
	player, hasPlayer := livePlayer(s.world)

	for _, e := range s.world.Query().With(c.Shooter).With(c.Motion).Execute() {
		sh, _ := c.Shooter.GetComponent(e)
		if !sh.Armed {
			continue
		}
		fired := sh.Tick(dt)
		c.Shooter.SetComponent(e, sh)
		if !fired {
			continue
		}

		m, _ := c.Motion.GetComponent(e)
		facing := m.Rotation + math.Pi
		if sh.AimAtPlayer && hasPlayer {
			if pm, ok := c.Motion.GetComponent(player); ok {
				facing = m.Position.AngleTo(pm.Position)
			}
		}

		_, err := content.SpawnBullet(s.world, content.BulletSpec{
			Owner:    e,
			Position: m.Position,
			Facing:   facing,
			Speed:    sh.BulletSpeed,
			Damage:   sh.BulletDamage,
			Hostile:  true,
		})
		if err != nil {
			s.world.Resources.Log.Warn("hostile bullet", log.Err(err))
			continue
		}
		s.statBullets.Add(1)

		if sh.FirstOfBurst() {
			s.statBursts.Add(1)
			playSound(s.world, core.SoundEnemyShoot)
			s.world.PushEvent(event.EventBurstFired, &event.BurstFiredPayload{Shooter: e})
		}
	}
}
