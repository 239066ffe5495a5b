package system

import (
	"sync/atomic"

	"github.com/lixenwraith/vape/core"
	"github.com/lixenwraith/vape/engine"
	"github.com/lixenwraith/vape/event"
	"github.com/lixenwraith/vape/parameter"
)

// VampSystem owns vamp mode activation, charge drain and the global slowdown
// Contact drain itself runs in the collision pass through the resolver
type VampSystem struct {
	world *engine.World

	statActive *atomic.Bool
	statCharge *atomic.Int64

	enabled bool
}

func NewVampSystem(world *engine.World) engine.System {
	s := &VampSystem{
		world:      world,
		statActive: world.Resources.Status.Bools.Get("vamp.active"),
		statCharge: world.Resources.Status.Ints.Get("vamp.charge"),
	}
	s.Init()
	return s
}

func (s *VampSystem) Init() {
	s.statActive.Store(false)
	s.statCharge.Store(0)
	s.enabled = true
}

func (s *VampSystem) Name() string  { return "vamp" }
func (s *VampSystem) Priority() int { return parameter.PriorityVamp }

func (s *VampSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventEnemyKilled,
		event.EventPlayerDied,
		event.EventMetaSystemCommandRequest,
		event.EventGameReset,
	}
}

func (s *VampSystem) HandleEvent(ev event.GameEvent) {
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

	switch ev.Type {
	case event.EventEnemyKilled:
		if p, ok := ev.Payload.(*event.EnemyKilledPayload); ok && !p.ByVamp {
			s.addCharge()
		}
	case event.EventPlayerDied:
		s.end()
	}
}

// addCharge credits one kill outside vamp mode
func (s *VampSystem) addCharge() {
	player := s.world.Resources.Game.Player
	store := s.world.Components.Vamp
	v, ok := store.GetComponent(player)
	if !ok {
		return
	}
	full := v.AddCharge()
	store.SetComponent(player, v)
	s.statCharge.Store(int64(v.Charge))

	if full {
		playSound(s.world, core.SoundVampCharged)
		s.world.PushEvent(event.EventVampCharged, nil)
	}
}

func (s *VampSystem) Update() {
	if !s.enabled {
		return
	}
	player, ok := livePlayer(s.world)
	if !ok {
		return
	}
	store := s.world.Components.Vamp
	v, ok := store.GetComponent(player)
	if !ok {
		return
	}

	dt := s.world.Resources.Time.DeltaTime
	in := &s.world.Resources.Input.Snapshot

	v.ActivationCooldown = max(v.ActivationCooldown-dt, 0)
	if in.JustPressed(core.InputVamp) && v.ActivationCooldown <= 0 {
		v.ActivationCooldown = parameter.VampActivationCooldown
		if !v.Active && v.Charge >= parameter.VampActivationCost+1 {
			v.Charge -= parameter.VampActivationCost
			v.Active = true
			v.Timer = 0
			store.SetComponent(player, v)
			s.start()
		} else {
			store.SetComponent(player, v)
			s.end()
			v, _ = store.GetComponent(player)
		}
	}

	if v.Active {
		v.Timer += dt
		for v.Timer >= parameter.VampTimePerPoint && v.Charge > 0 {
			v.Timer -= parameter.VampTimePerPoint
			v.Charge--
		}
		store.SetComponent(player, v)
		if v.Charge <= 0 {
			s.end()
			v, _ = store.GetComponent(player)
		}
	}

	store.SetComponent(player, v)
	s.statCharge.Store(int64(v.Charge))
}

func (s *VampSystem) start() {
	s.world.Resources.Game.VampFactor = parameter.VampTimeSlowdown
	s.statActive.Store(true)
	playSound(s.world, core.SoundVampStart)
	s.world.PushEvent(event.EventVampStart, nil)
}

// end leaves vamp mode and restores normal speed; no-op when inactive
func (s *VampSystem) end() {
	s.world.Resources.Game.VampFactor = 1

	player := s.world.Resources.Game.Player
	store := s.world.Components.Vamp
	v, ok := store.GetComponent(player)
	if !ok || !v.Active {
		return
	}
	v.Active = false
	v.Timer = 0
	store.SetComponent(player, v)

	s.statActive.Store(false)
	playSound(s.world, core.SoundVampEnd)
	s.world.PushEvent(event.EventVampEnd, nil)
}
