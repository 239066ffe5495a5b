package input

import (
	"slices"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vape/core"
)

const hold = 400 * time.Millisecond

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestTracker_HoldWindow(t *testing.T) {
	tr := NewTracker(nil, hold)
	ev := key('w')
	require.True(t, tr.HandleEvent(ev))
	at := ev.When()

	s := tr.Snapshot(at)
	assert.True(t, s.JustPressed(core.InputUp))
	assert.True(t, s.IsHeld(core.InputUp))

	s = tr.Snapshot(at.Add(hold / 2))
	assert.False(t, s.JustPressed(core.InputUp), "press edge is consumed")
	assert.True(t, s.IsHeld(core.InputUp))

	s = tr.Snapshot(at.Add(hold + time.Millisecond))
	assert.False(t, s.IsHeld(core.InputUp), "released after the hold window")
}

func TestTracker_RepeatIsNotAPress(t *testing.T) {
	tr := NewTracker(nil, hold)
	first := key(' ')
	tr.HandleEvent(first)
	tr.Snapshot(first.When())

	repeat := key(' ')
	tr.HandleEvent(repeat)
	s := tr.Snapshot(repeat.When())
	assert.False(t, s.JustPressed(core.InputFire))
	assert.True(t, s.IsHeld(core.InputFire))
}

func TestTracker_CaseAndUnmapped(t *testing.T) {
	tr := NewTracker(nil, hold)
	assert.True(t, tr.HandleEvent(key('D')))
	assert.False(t, tr.HandleEvent(key('z')))
	assert.False(t, tr.HandleEvent(tcell.NewEventResize(80, 24)))
	assert.Equal(t, 1, tr.Events())

	s := tr.Next()
	assert.True(t, s.JustPressed(core.InputRight))
}

func TestTracker_SpecialKeys(t *testing.T) {
	tr := NewTracker(nil, hold)
	tr.HandleEvent(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
	tr.HandleEvent(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone))

	s := tr.Next()
	assert.True(t, s.JustPressed(core.InputConfirm))
	assert.True(t, s.IsHeld(core.InputLeft))
}

func TestTracker_Mouse(t *testing.T) {
	tr := NewTracker(nil, hold)
	tr.SetView(80, 24, 800, 600)

	tr.HandleEvent(tcell.NewEventMouse(40, 12, tcell.Button1, tcell.ModNone))
	s := tr.Next()
	assert.True(t, s.HasPointer)
	assert.InDelta(t, 405.0, s.PointerX, 1e-9)
	assert.InDelta(t, 312.5, s.PointerY, 1e-9)
	assert.True(t, s.JustPressed(core.InputFire))

	s = tr.Next()
	assert.True(t, s.IsHeld(core.InputFire), "button still down")
	assert.False(t, s.JustPressed(core.InputFire))

	tr.HandleEvent(tcell.NewEventMouse(10, 2, tcell.ButtonNone, tcell.ModNone))
	s = tr.Next()
	assert.False(t, s.IsHeld(core.InputFire))
	assert.InDelta(t, 105.0, s.PointerX, 1e-9)
}

func TestTracker_Release(t *testing.T) {
	tr := NewTracker(nil, hold)
	ev := key('a')
	tr.HandleEvent(ev)
	tr.Release()

	s := tr.Snapshot(ev.When())
	assert.False(t, s.IsHeld(core.InputLeft))
	assert.False(t, s.JustPressed(core.InputLeft))
}

func TestLoadKeyConfig(t *testing.T) {
	over, err := LoadKeyConfig([]byte(`
keys:
  Enter: fire
runes:
  space: none
  X: vamp
`))
	require.NoError(t, err)

	kt := DefaultKeyTable()
	kt.Merge(over)

	_, ok := kt.Runes[' ']
	assert.False(t, ok, "none unbinds")
	assert.Equal(t, core.InputVamp, kt.Runes['x'])
	assert.Equal(t, core.InputFire, kt.Keys[tcell.KeyEnter])
	assert.Equal(t, core.InputVamp, kt.Runes['v'], "untouched bindings survive")
}

func TestLoadKeyConfig_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"unknown action", "runes:\n  x: teleport\n"},
		{"unknown key", "keys:\n  NotAKey: fire\n"},
		{"bad rune", "runes:\n  xy: fire\n"},
		{"bad yaml", "keys: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadKeyConfig([]byte(tt.doc))
			assert.Error(t, err)
		})
	}
}

func TestActionNames(t *testing.T) {
	names := ActionNames()
	assert.True(t, slices.IsSorted(names))
	assert.Contains(t, names, "vamp")
	assert.Contains(t, names, "none")

	_, err := LoadKeyConfig([]byte("runes:\n  x: teleport\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "move_up")
}
