package system

import (
	"sync/atomic"

	"github.com/lixenwraith/vape/core"
	"github.com/lixenwraith/vape/engine"
	"github.com/lixenwraith/vape/event"
	"github.com/lixenwraith/vape/parameter"
)

// cullMargin is how far past the screen edge an entity may travel before removal
const cullMargin = 64.0

// CullSystem removes bullets that left the screen and enemies or pickups that fell below it
// Enemies spawn above the top edge, so only the bottom is checked for them
type CullSystem struct {
	world *engine.World

	statCulled *atomic.Int64

	enabled bool
}

func NewCullSystem(world *engine.World) engine.System {
	s := &CullSystem{
		world:      world,
		statCulled: world.Resources.Status.Ints.Get("cull.removed"),
	}
	s.Init()
	return s
}

func (s *CullSystem) Init() {
	s.enabled = true
}

func (s *CullSystem) Name() string  { return "cull" }
func (s *CullSystem) Priority() int { return parameter.PriorityCull }

func (s *CullSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventMetaSystemCommandRequest,
		event.EventGameReset,
	}
}

func (s *CullSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventGameReset:
		s.Init()
	case event.EventMetaSystemCommandRequest:
		metaToggle(ev, s.Name(), &s.enabled)
	}
}

func (s *CullSystem) Update() {
	if !s.enabled {
		return
	}

	res := s.world.Resources
	width, height := res.Config.Width(), res.Config.Height()

	for _, list := range [][]core.Entity{res.Projectiles.Friendly, res.Projectiles.Hostile} {
		for _, e := range list {
			m, ok := s.world.Components.Motion.GetComponent(e)
			if !ok || !s.world.IsAlive(e) {
				continue
			}
			p := m.Position
			if p.X < -cullMargin || p.X > width+cullMargin || p.Y < -cullMargin || p.Y > height+cullMargin {
				s.remove(e)
			}
		}
	}

	c := &s.world.Components
	for _, store := range []engine.QueryableStore{c.Enemy, c.Pickup} {
		for _, e := range s.world.Query().With(store).With(c.Motion).Execute() {
			m, _ := c.Motion.GetComponent(e)
			if m.Position.Y > height+cullMargin {
				s.remove(e)
			}
		}
	}
}

func (s *CullSystem) remove(e core.Entity) {
	if s.world.MarkForDeath(e) {
		s.statCulled.Add(1)
	}
}
