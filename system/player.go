package system

import (
	"math"
	"sync/atomic"

	"github.com/lixenwraith/vape/component"
	"github.com/lixenwraith/vape/content"
	"github.com/lixenwraith/vape/core"
	"github.com/lixenwraith/vape/engine"
	"github.com/lixenwraith/vape/event"
	"github.com/lixenwraith/vape/log"
	"github.com/lixenwraith/vape/parameter"
	"github.com/lixenwraith/vape/physics"
	"github.com/lixenwraith/vape/vmath"
)

// PlayerSystem turns the input snapshot into thrust, facing and weapon fire
type PlayerSystem struct {
	world *engine.World

	statShots *atomic.Int64

	enabled bool
}

func NewPlayerSystem(world *engine.World) engine.System {
	s := &PlayerSystem{
		world:     world,
		statShots: world.Resources.Status.Ints.Get("player.shots"),
	}
	s.Init()
	return s
}

func (s *PlayerSystem) Init() {
	s.enabled = true
}

func (s *PlayerSystem) Name() string  { return "player" }
func (s *PlayerSystem) Priority() int { return parameter.PriorityPlayer }

func (s *PlayerSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventMetaSystemCommandRequest,
		event.EventGameReset,
	}
}

func (s *PlayerSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventGameReset:
		s.Init()
	case event.EventMetaSystemCommandRequest:
		metaToggle(ev, s.Name(), &s.enabled)
	}
}

func (s *PlayerSystem) Update() {
	if !s.enabled {
		return
	}
	player, ok := livePlayer(s.world)
	if !ok {
		return
	}

	c := &s.world.Components
	m, ok := c.Motion.GetComponent(player)
	if !ok {
		return
	}
	pc, ok := c.Player.GetComponent(player)
	if !ok {
		return
	}

	in := &s.world.Resources.Input.Snapshot
	dt := s.world.Resources.Time.DeltaTime

	m.Acceleration = thrust(in).Scale(parameter.PlayerThrust)
	m.Velocity = physics.ApplyDrag(m.Velocity, parameter.PlayerDrag, dt)
	m.Velocity = physics.ClampSpeed(m.Velocity, parameter.PlayerMaxSpeed)

	if in.HasPointer {
		facing := m.Position.AngleTo(vmath.V(in.PointerX, in.PointerY))
		m.RotationTarget = vmath.NearestAngle(m.Rotation, facing-math.Pi)
	}
	c.Motion.SetComponent(player, m)

	pc.FireCooldown = max(pc.FireCooldown-dt, 0)
	if in.IsHeld(core.InputFire) && pc.FireCooldown <= 0 {
		s.fire(player, m, &pc)
	}
	c.Player.SetComponent(player, pc)
}

// thrust returns the unit direction of the held movement keys
func thrust(in *core.InputSnapshot) vmath.Vec2 {
	var dir vmath.Vec2
	if in.IsHeld(core.InputUp) {
		dir.Y--
	}
	if in.IsHeld(core.InputDown) {
		dir.Y++
	}
	if in.IsHeld(core.InputLeft) {
		dir.X--
	}
	if in.IsHeld(core.InputRight) {
		dir.X++
	}
	return dir.Normalize()
}

// fire discharges the current weapon along the player's facing
// Spread ammo running out reverts to the straight shot
func (s *PlayerSystem) fire(player core.Entity, m component.MotionComponent, pc *component.PlayerComponent) {
	facing := m.Rotation + math.Pi

	var angles []float64
	switch pc.Weapon {
	case component.WeaponSpread:
		angles = []float64{facing - parameter.WeaponSpreadAngle, facing, facing + parameter.WeaponSpreadAngle}
		pc.FireCooldown = parameter.WeaponSpreadCooldown
	default:
		angles = []float64{facing}
		pc.FireCooldown = parameter.WeaponStraightCooldown
	}

	for _, a := range angles {
		_, err := content.SpawnBullet(s.world, content.BulletSpec{
			Owner:    player,
			Position: m.Position,
			Facing:   a,
			Speed:    parameter.BulletSpeed,
			Damage:   parameter.DamagePlayerBullet,
		})
		if err != nil {
			s.world.Resources.Log.Warn("player bullet", log.Err(err))
			return
		}
		s.statShots.Add(1)
	}
	playSound(s.world, core.SoundShoot)

	if pc.Weapon == component.WeaponSpread && pc.Ammo > 0 {
		pc.Ammo--
		if pc.Ammo == 0 {
			pc.Weapon = component.WeaponStraight
			pc.Ammo = -1
		}
	}
}
