package fsm

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vape/event"
)

type probe struct {
	trace []string
	ready bool
}

const graph = `
initial: Idle
states:
  Active:
    on_enter:
      - action: Log
        args: {msg: enter-active}
    on_exit:
      - action: Log
        args: {msg: exit-active}
  Idle:
    on_enter:
      - action: Log
        args: {msg: enter-idle}
    transitions:
      - trigger: tick
        target: Running
        guard: Ready
  Running:
    parent: Active
    on_enter:
      - action: Log
        args: {msg: enter-running}
    transitions:
      - trigger: EnemyKilled
        target: Cooling
      - trigger: tick
        target: Idle
        guard: StateTimeExceeds
        guard_args: {ms: 500}
  Cooling:
    parent: Active
    on_enter:
      - action: Log
        args: {msg: enter-cooling}
    transitions:
      - trigger: tick
        target: Idle
        guard: StateTimeExceeds
        guard_args: {ms: 100}
`

func newProbeMachine(t *testing.T) (*Machine[*probe], *probe) {
	t.Helper()
	m := NewMachine[*probe]()
	m.RegisterAction("Log", func(p *probe, args map[string]any) {
		p.trace = append(p.trace, args["msg"].(string))
	})
	m.RegisterGuard("Ready", func(p *probe) bool { return p.ready })
	require.NoError(t, m.LoadYAML([]byte(graph)))

	p := &probe{}
	require.NoError(t, m.Init(p))
	return m, p
}

func TestMachine_TickTransitionsAndHierarchy(t *testing.T) {
	m, p := newProbeMachine(t)
	assert.Equal(t, "Idle", m.Current())

	m.Update(p, 16*time.Millisecond)
	assert.Equal(t, "Idle", m.Current(), "guard blocks")

	p.ready = true
	m.Update(p, 16*time.Millisecond)
	assert.Equal(t, "Running", m.Current())
	assert.Equal(t, []string{"enter-idle", "enter-active", "enter-running"}, p.trace)

	// Sibling move keeps the shared parent entered
	p.trace = nil
	assert.True(t, m.HandleEvent(p, event.EventEnemyKilled))
	assert.Equal(t, "Cooling", m.Current())
	assert.Equal(t, []string{"enter-cooling"}, p.trace)

	p.ready = false
	p.trace = nil
	m.Update(p, 60*time.Millisecond)
	assert.Equal(t, "Cooling", m.Current())
	m.Update(p, 60*time.Millisecond)
	assert.Equal(t, "Idle", m.Current())
	assert.Equal(t, []string{"exit-active", "enter-idle"}, p.trace)
}

func TestMachine_UnmatchedEventIgnored(t *testing.T) {
	m, p := newProbeMachine(t)
	assert.False(t, m.HandleEvent(p, event.EventEnemyKilled))
	assert.False(t, m.HandleEvent(p, event.EventNone))
	assert.Equal(t, "Idle", m.Current())
}

func TestMachine_Reset(t *testing.T) {
	m, p := newProbeMachine(t)
	p.ready = true
	m.Update(p, time.Millisecond)
	require.Equal(t, "Running", m.Current())

	p.trace = nil
	require.NoError(t, m.Reset(p))
	assert.Equal(t, "Idle", m.Current())
	assert.Equal(t, time.Duration(0), m.TimeInState())
	assert.Equal(t, []string{"exit-active", "enter-idle"}, p.trace)
}

func TestMachine_LoadErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"unknown target", "initial: A\nstates:\n  A:\n    transitions:\n      - {trigger: tick, target: B}\n"},
		{"unknown action", "initial: A\nstates:\n  A:\n    on_enter:\n      - {action: Nope}\n"},
		{"unknown trigger", "initial: A\nstates:\n  A:\n    transitions:\n      - {trigger: Bogus, target: A}\n"},
		{"unknown guard", "initial: A\nstates:\n  A:\n    transitions:\n      - {trigger: tick, target: A, guard: Nope}\n"},
		{"missing initial", "initial: Z\nstates:\n  A: {}\n"},
		{"unknown parent", "initial: A\nstates:\n  A: {parent: Q}\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMachine[*probe]()
			assert.Error(t, m.LoadYAML([]byte(tt.yaml)))
		})
	}
}
