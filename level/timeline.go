package level

import (
	"sort"
	"time"

	"github.com/lixenwraith/vape/vmath"
)

// Descriptor names one actor to spawn and its initial motion
type Descriptor struct {
	Kind      string
	Position  vmath.Vec2
	Velocity  vmath.Vec2
	Direction float64    // Initial rotation in radians
	Target    vmath.Vec2 // Seek target for actors that travel to a post (clones)
}

// Wave is a batch of descriptors due at a level-relative time
type Wave struct {
	At     time.Duration
	Spawns []Descriptor
}

// Timeline is a time-ordered wave list consumed destructively by PopDue
type Timeline struct {
	waves []Wave
}

// NewTimeline copies and stable-sorts waves by At
func NewTimeline(waves []Wave) *Timeline {
	t := &Timeline{waves: make([]Wave, len(waves))}
	copy(t.waves, waves)
	sort.SliceStable(t.waves, func(i, j int) bool {
		return t.waves[i].At < t.waves[j].At
	})
	return t
}

// PopDue removes and returns every wave with At <= clock, in order
func (t *Timeline) PopDue(clock time.Duration) []Wave {
	n := 0
	for n < len(t.waves) && t.waves[n].At <= clock {
		n++
	}
	if n == 0 {
		return nil
	}
	due := make([]Wave, n)
	copy(due, t.waves[:n])
	t.waves = t.waves[n:]
	return due
}

// Len returns the number of waves not yet popped
func (t *Timeline) Len() int {
	return len(t.waves)
}

// Next returns the time of the next wave
func (t *Timeline) Next() (time.Duration, bool) {
	if len(t.waves) == 0 {
		return 0, false
	}
	return t.waves[0].At, true
}

// Clone returns a deep copy, so consuming the clone leaves t intact
func (t *Timeline) Clone() *Timeline {
	if t == nil {
		return NewTimeline(nil)
	}
	waves := make([]Wave, len(t.waves))
	for i, w := range t.waves {
		waves[i] = Wave{At: w.At, Spawns: append([]Descriptor(nil), w.Spawns...)}
	}
	return &Timeline{waves: waves}
}

// Count returns the total number of descriptors across pending waves
func (t *Timeline) Count() int {
	n := 0
	for _, w := range t.waves {
		n += len(w.Spawns)
	}
	return n
}
