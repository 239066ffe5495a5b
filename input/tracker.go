package input

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vape/core"
)

// Tracker folds terminal events into per-frame input snapshots
// Keys stay held for a hold window after their last event since terminals send no release;
// the mouse reports real button state and drives the pointer
type Tracker struct {
	mu     sync.Mutex
	keys   *KeyTable
	hold   time.Duration
	now    func() time.Time
	events int

	lastSeen [core.InputCodeCount]time.Time
	pressed  [core.InputCodeCount]bool

	mouseFire bool

	// View mapping from cells to world units
	cols, rows    int
	width, height float64

	pointerX, pointerY float64
	hasPointer         bool
}

// NewTracker creates a tracker with the given bindings and hold window
func NewTracker(keys *KeyTable, hold time.Duration) *Tracker {
	if keys == nil {
		keys = DefaultKeyTable()
	}
	return &Tracker{
		keys: keys,
		hold: hold,
		now:  time.Now,
	}
}

// SetView sets the cell grid and the world extent it shows, for pointer mapping
func (t *Tracker) SetView(cols, rows int, width, height float64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cols, t.rows = cols, rows
	t.width, t.height = width, height
}

// HandleEvent records a terminal event; safe from the event pump goroutine
// Returns true if the event mapped to an input
func (t *Tracker) HandleEvent(ev tcell.Event) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	switch e := ev.(type) {
	case *tcell.EventKey:
		code, ok := t.keys.Lookup(e)
		if !ok {
			return false
		}
		at := e.When()
		if !t.heldAt(code, at) {
			t.pressed[code] = true
		}
		t.lastSeen[code] = at
		t.events++
		return true

	case *tcell.EventMouse:
		x, y := e.Position()
		t.pointer(x, y)
		down := e.Buttons()&tcell.Button1 != 0
		if down && !t.mouseFire {
			t.pressed[core.InputFire] = true
		}
		t.mouseFire = down
		t.events++
		return true
	}
	return false
}

// heldAt reports whether code is inside its hold window at time at
func (t *Tracker) heldAt(code core.InputCode, at time.Time) bool {
	seen := t.lastSeen[code]
	return !seen.IsZero() && at.Sub(seen) < t.hold
}

func (t *Tracker) pointer(col, row int) {
	if t.cols <= 0 || t.rows <= 0 {
		return
	}
	t.pointerX = (float64(col) + 0.5) / float64(t.cols) * t.width
	t.pointerY = (float64(row) + 0.5) / float64(t.rows) * t.height
	t.hasPointer = true
}

// Snapshot returns the input state at now and clears press edges
func (t *Tracker) Snapshot(now time.Time) core.InputSnapshot {
	t.mu.Lock()
	defer t.mu.Unlock()

	var s core.InputSnapshot
	for code := core.InputCode(0); code < core.InputCodeCount; code++ {
		s.Pressed[code] = t.pressed[code]
		s.Held[code] = t.pressed[code] || t.heldAt(code, now)
		t.pressed[code] = false
	}
	if t.mouseFire {
		s.Held[core.InputFire] = true
	}
	s.PointerX, s.PointerY, s.HasPointer = t.pointerX, t.pointerY, t.hasPointer
	return s
}

// Next is Snapshot at the tracker's clock
func (t *Tracker) Next() core.InputSnapshot {
	return t.Snapshot(t.now())
}

// Release drops every held key, used when the game pauses or loses focus
func (t *Tracker) Release() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.lastSeen = [core.InputCodeCount]time.Time{}
	t.pressed = [core.InputCodeCount]bool{}
	t.mouseFire = false
}

// Events returns the number of mapped events seen
func (t *Tracker) Events() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.events
}
