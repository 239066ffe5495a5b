package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/vape/component"
	"github.com/lixenwraith/vape/content"
	"github.com/lixenwraith/vape/core"
	"github.com/lixenwraith/vape/event"
	"github.com/lixenwraith/vape/parameter"
	"github.com/lixenwraith/vape/vmath"
)

func TestBoss_PhaseLatches(t *testing.T) {
	h := newHarness(t)
	boss := h.spawn(content.KindBoss, vmath.V(400, 120))
	c := &h.world.Components

	h.step(core.InputSnapshot{})
	b, _ := c.Boss.GetComponent(boss)
	assert.Equal(t, component.BossPhaseOne, b.Phase)

	h.run(func() { h.set.Resolver.Damage(boss, parameter.BossHealth/2, core.InvalidEntity) })
	h.step(core.InputSnapshot{})
	b, _ = c.Boss.GetComponent(boss)
	assert.Equal(t, component.BossPhaseTwo, b.Phase)
	assert.Equal(t, 1, h.count(event.EventBossPhaseChange))

	// Healing above the threshold never regresses the phase
	h.run(func() {
		hp, _ := c.Health.GetComponent(boss)
		hp.Refill()
		c.Health.SetComponent(boss, hp)
	})
	h.step(core.InputSnapshot{})
	b, _ = c.Boss.GetComponent(boss)
	assert.Equal(t, component.BossPhaseTwo, b.Phase)
}

func TestBoss_PatrolReflects(t *testing.T) {
	h := newHarness(t)
	boss := h.spawn(content.KindBoss, vmath.V(400, 120))
	c := &h.world.Components

	bounds, _ := c.Bounds.GetComponent(boss)
	h.run(func() {
		m, _ := c.Motion.GetComponent(boss)
		m.Position.X = bounds.MaxX - 1
		c.Motion.SetComponent(boss, m)
	})

	h.step(core.InputSnapshot{})
	m, _ := c.Motion.GetComponent(boss)
	assert.Equal(t, bounds.MaxX, m.Position.X)
	assert.Equal(t, -parameter.BossSpeed, m.Velocity.X)

	h.step(core.InputSnapshot{})
	b, _ := c.Boss.GetComponent(boss)
	m, _ = c.Motion.GetComponent(boss)
	assert.Equal(t, -1.0, b.Direction)
	assert.Less(t, m.Position.X, bounds.MaxX)
	assert.InDelta(t, parameter.BossScale*parameter.BossExtentX/2, bounds.MinX, 1e-9)
}

func TestBoss_NextPhase(t *testing.T) {
	tests := []struct {
		name    string
		current component.BossPhase
		frac    float64
		want    component.BossPhase
	}{
		{"healthy", component.BossPhaseOne, 0.9, component.BossPhaseOne},
		{"threshold", component.BossPhaseOne, 0.5, component.BossPhaseTwo},
		{"latched", component.BossPhaseTwo, 1, component.BossPhaseTwo},
		{"down", component.BossPhaseTwo, 0, component.BossPhaseDown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, component.NextPhase(tt.current, tt.frac, parameter.BossPhaseTwoThreshold))
		})
	}
}
