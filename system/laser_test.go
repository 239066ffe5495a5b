package system

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/vape/component"
	"github.com/lixenwraith/vape/content"
	"github.com/lixenwraith/vape/core"
	"github.com/lixenwraith/vape/event"
	"github.com/lixenwraith/vape/parameter"
	"github.com/lixenwraith/vape/vmath"
)

func TestLaser_DamagesOnlyWhileFiring(t *testing.T) {
	tests := []struct {
		name  string
		laser component.LaserComponent
		hit   bool
	}{
		{"off", component.LaserComponent{State: component.LaserOff, CycleRemaining: time.Minute}, false},
		{"primed", component.LaserComponent{State: component.LaserPrimed, ChargeRemaining: time.Minute, FireRemaining: time.Minute}, false},
		{"firing", component.LaserComponent{State: component.LaserFiring, FireRemaining: time.Minute}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			player := h.player(vmath.V(400, 400))
			turret := h.spawn(content.KindLaserTurret, vmath.V(400, 100))

			h.run(func() {
				l := tt.laser
				l.Damage = parameter.LaserDamage
				l.Length = parameter.LaserLength
				l.Width = parameter.LaserWidth
				h.world.Components.Laser.SetComponent(turret, l)
			})
			h.step(core.InputSnapshot{})

			hp, _ := h.world.Components.Health.GetComponent(player)
			if tt.hit {
				assert.Equal(t, parameter.PlayerInitHealth-parameter.LaserDamage, hp.Current)
			} else {
				assert.Equal(t, parameter.PlayerInitHealth, hp.Current)
			}
		})
	}
}

func TestLaser_CycleAndSound(t *testing.T) {
	h := newHarness(t)
	h.player(vmath.V(600, 500))
	turret := h.spawn(content.KindLaserTurret, vmath.V(100, 100))

	state := func() component.LaserState {
		l, _ := h.world.Components.Laser.GetComponent(turret)
		return l.State
	}
	stepFor := func(d time.Duration) {
		h.steps(int(d/tick) + 1)
	}

	stepFor(parameter.LaserCycle)
	assert.Equal(t, component.LaserPrimed, state())

	m, _ := h.world.Components.Motion.GetComponent(turret)
	assert.NotEqual(t, m.Rotation, m.RotationTarget, "aimed at the player on fire")
	assert.Zero(t, m.RotationRate, "holds still while charging")

	em, _ := h.world.Components.Emitter.GetComponent(turret)
	assert.NotEmpty(t, em.Particles, "warning particles while primed")

	stepFor(parameter.LaserChargeDuration)
	assert.Equal(t, component.LaserFiring, state())
	assert.Equal(t, 1, h.audio.count(core.SoundLaser))
	m, _ = h.world.Components.Motion.GetComponent(turret)
	assert.Equal(t, parameter.LaserRotationRate, m.RotationRate)

	stepFor(parameter.LaserFireDuration)
	assert.Equal(t, component.LaserOff, state())
	assert.Equal(t, []core.SoundType{core.SoundLaser}, h.audio.stopped)

	l, _ := h.world.Components.Laser.GetComponent(turret)
	assert.Greater(t, l.CycleRemaining, time.Duration(0), "cycle restarted")
	assert.Equal(t, 3, h.count(event.EventLaserStateChange))
}

func TestLaser_StopsSoundWhenTurretDies(t *testing.T) {
	h := newHarness(t)
	player := h.player(vmath.V(600, 500))
	turret := h.spawn(content.KindLaserTurret, vmath.V(100, 100))

	h.run(func() {
		l, _ := h.world.Components.Laser.GetComponent(turret)
		l.State = component.LaserPrimed
		l.ChargeRemaining = tick
		l.FireRemaining = time.Minute
		h.world.Components.Laser.SetComponent(turret, l)
	})
	h.steps(2)
	assert.Equal(t, 1, h.audio.count(core.SoundLaser))

	h.run(func() {
		h.set.Resolver.Damage(turret, parameter.LaserTurretHealth, player)
	})
	h.steps(2)
	assert.Equal(t, []core.SoundType{core.SoundLaser}, h.audio.stopped)
}
