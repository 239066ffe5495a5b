package system

import (
	"github.com/lixenwraith/vape/engine"
	"github.com/lixenwraith/vape/event"
	"github.com/lixenwraith/vape/parameter"
)

// CombatSystem counts down iframes and hit flash
// Timers run on wall-clock time so vamp slowdown never stretches player immunity
type CombatSystem struct {
	world *engine.World

	enabled bool
}

func NewCombatSystem(world *engine.World) engine.System {
	s := &CombatSystem{world: world}
	s.Init()
	return s
}

func (s *CombatSystem) Init() {
	s.enabled = true
}

func (s *CombatSystem) Name() string  { return "combat" }
func (s *CombatSystem) Priority() int { return parameter.PriorityCombat }

func (s *CombatSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventMetaSystemCommandRequest,
		event.EventGameReset,
	}
}

func (s *CombatSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventGameReset:
		s.Init()
	case event.EventMetaSystemCommandRequest:
		metaToggle(ev, s.Name(), &s.enabled)
	}
}

func (s *CombatSystem) Update() {
	if !s.enabled {
		return
	}
	dt := s.world.Resources.Time.DeltaTime
	store := s.world.Components.Combat

	for _, e := range store.GetAllEntities() {
		c, ok := store.GetComponent(e)
		if !ok {
			continue
		}
		if c.DamageImmunityRemaining <= 0 && c.HitFlashRemaining <= 0 {
			continue
		}
		c.DamageImmunityRemaining = max(c.DamageImmunityRemaining-dt, 0)
		c.HitFlashRemaining = max(c.HitFlashRemaining-dt, 0)
		store.SetComponent(e, c)
	}
}
