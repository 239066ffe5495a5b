package system

import (
	"math"
	"sync/atomic"

	"github.com/lixenwraith/vape/core"
	"github.com/lixenwraith/vape/engine"
	"github.com/lixenwraith/vape/event"
	"github.com/lixenwraith/vape/parameter"
	"github.com/lixenwraith/vape/physics"
)

// CollisionSystem detects contacts after motion and resolves them in place
// Rows run in a fixed order each tick:
//  1. player against enemy bodies, first match only
//  2. friendly bullets against enemies, first match per bullet
//  3. hostile bullets against the player
//  4. firing lasers against the player
//  5. vamp area against every overlapping enemy
//  6. player against pickups
type CollisionSystem struct {
	world    *engine.World
	resolver *Resolver

	statContacts *atomic.Int64

	enabled bool
}

func NewCollisionSystem(world *engine.World, resolver *Resolver) engine.System {
	s := &CollisionSystem{
		world:        world,
		resolver:     resolver,
		statContacts: world.Resources.Status.Ints.Get("collision.contacts"),
	}
	s.Init()
	return s
}

func (s *CollisionSystem) Init() {
	s.enabled = true
}

func (s *CollisionSystem) Name() string  { return "collision" }
func (s *CollisionSystem) Priority() int { return parameter.PriorityCollision }

func (s *CollisionSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventMetaSystemCommandRequest,
		event.EventGameReset,
	}
}

func (s *CollisionSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventGameReset:
		s.Init()
	case event.EventMetaSystemCommandRequest:
		metaToggle(ev, s.Name(), &s.enabled)
	}
}

func (s *CollisionSystem) Update() {
	if !s.enabled {
		return
	}

	c := &s.world.Components
	enemies := s.world.Query().With(c.Enemy).With(c.Motion).With(c.Physics).Execute()

	player, playerAlive := livePlayer(s.world)

	if playerAlive {
		s.playerEnemies(player, enemies)
	}
	s.friendlyBullets(enemies)
	if !playerAlive {
		return
	}
	s.hostileBullets(player)
	s.lasers(player)
	s.vampArea(player, enemies)
	s.pickups(player)
}

// circle builds the collision circle of e with the given shrink factor
func (s *CollisionSystem) circle(e core.Entity, shrink float64) (physics.Circle, bool) {
	c := &s.world.Components
	m, ok := c.Motion.GetComponent(e)
	if !ok {
		return physics.Circle{}, false
	}
	p, ok := c.Physics.GetComponent(e)
	if !ok {
		return physics.Circle{}, false
	}
	return physics.CircleFromBox(m.Position, p.BoundingBox(), shrink), true
}

// enemyShrink selects the body shrink factor for an enemy
func (s *CollisionSystem) enemyShrink(e core.Entity) float64 {
	if s.world.Components.Boss.HasEntity(e) {
		return parameter.HitRadiusBoss
	}
	return parameter.HitRadiusEnemy
}

func (s *CollisionSystem) playerEnemies(player core.Entity, enemies []core.Entity) {
	pc, ok := s.circle(player, parameter.HitRadiusPlayer)
	if !ok {
		return
	}
	for _, e := range enemies {
		if !s.world.IsAlive(e) {
			continue
		}
		ec, ok := s.circle(e, s.enemyShrink(e))
		if !ok || !physics.CirclesOverlap(pc, ec) {
			continue
		}
		s.statContacts.Add(1)
		s.resolver.ContactPlayer(player, e)
		break
	}
}

func (s *CollisionSystem) friendlyBullets(enemies []core.Entity) {
	for _, b := range s.world.Resources.Projectiles.Friendly {
		if !s.world.IsAlive(b) {
			continue
		}
		bc, ok := s.circle(b, parameter.HitRadiusBullet)
		if !ok {
			continue
		}
		for _, e := range enemies {
			if !s.world.IsAlive(e) {
				continue
			}
			ec, ok := s.circle(e, s.enemyShrink(e))
			if !ok || !physics.CirclesOverlap(bc, ec) {
				continue
			}
			s.statContacts.Add(1)
			s.resolver.BulletHit(b, e)
			break
		}
	}
}

func (s *CollisionSystem) hostileBullets(player core.Entity) {
	for _, b := range s.world.Resources.Projectiles.Hostile {
		if !s.world.IsAlive(b) {
			continue
		}
		pc, ok := s.circle(player, parameter.HitRadiusPlayer)
		if !ok {
			return
		}
		bc, ok := s.circle(b, parameter.HitRadiusBullet)
		if !ok || !physics.CirclesOverlap(bc, pc) {
			continue
		}
		s.statContacts.Add(1)
		s.resolver.BulletHit(b, player)
	}
}

func (s *CollisionSystem) lasers(player core.Entity) {
	c := &s.world.Components
	// Laser target circle uses half the extent
	target, ok := s.circle(player, parameter.HitRadiusLaser/2)
	if !ok {
		return
	}

	for _, e := range s.world.Query().With(c.Laser).With(c.Motion).Execute() {
		l, _ := c.Laser.GetComponent(e)
		if !l.CanDamage() {
			continue
		}
		m, _ := c.Motion.GetComponent(e)
		facing := m.Rotation + math.Pi
		if !physics.BeamIntersectsCircle(m.Position, facing, l.Length, l.Width, target) {
			continue
		}
		s.statContacts.Add(1)
		s.resolver.Damage(player, l.Damage, e)
	}
}

func (s *CollisionSystem) vampArea(player core.Entity, enemies []core.Entity) {
	c := &s.world.Components
	v, ok := c.Vamp.GetComponent(player)
	if !ok || !v.Active {
		return
	}
	m, ok := c.Motion.GetComponent(player)
	if !ok {
		return
	}
	area := physics.Circle{Center: m.Position, Radius: v.Radius}
	dt := s.world.Resources.Time.SimDelta

	for _, e := range enemies {
		if !s.world.IsAlive(e) {
			continue
		}
		ec, ok := s.circle(e, s.enemyShrink(e))
		if !ok || !physics.CirclesOverlap(area, ec) {
			continue
		}
		s.resolver.VampContact(player, e, dt)
	}
}

func (s *CollisionSystem) pickups(player core.Entity) {
	c := &s.world.Components
	pp, ok := c.Physics.GetComponent(player)
	if !ok {
		return
	}
	pm, _ := c.Motion.GetComponent(player)
	playerBox := pp.BoundingBox().MaxComponent()

	for _, e := range s.world.Query().With(c.Pickup).With(c.Motion).With(c.Physics).Execute() {
		m, _ := c.Motion.GetComponent(e)
		p, _ := c.Physics.GetComponent(e)
		own := p.BoundingBox().MaxComponent() * parameter.PickupOwnRadius
		r := parameter.HitRadiusPickup * math.Max(playerBox, own)

		// Single radius around the pickup; the player is treated as a point
		if !physics.CirclesOverlap(physics.Circle{Center: m.Position, Radius: r}, physics.Circle{Center: pm.Position}) {
			continue
		}
		s.statContacts.Add(1)
		s.resolver.Collect(player, e)
	}
}
