package component

import (
	"time"

	"github.com/lixenwraith/vape/vmath"
)

// Particle is a short-lived visual point
type Particle struct {
	Position vmath.Vec2
	Velocity vmath.Vec2
	Life     time.Duration
	Color    Color
}

// EmitterComponent owns a bounded particle pool
// Transient emitters destroy their entity once empty
type EmitterComponent struct {
	Particles []Particle
	Max       int
	Transient bool
}

// Emit appends a particle unless the pool is full
func (e *EmitterComponent) Emit(p Particle) bool {
	if e.Max > 0 && len(e.Particles) >= e.Max {
		return false
	}
	e.Particles = append(e.Particles, p)
	return true
}

// Step ages and moves particles, dropping expired ones in place
func (e *EmitterComponent) Step(dt time.Duration) {
	sec := dt.Seconds()
	live := e.Particles[:0]
	for _, p := range e.Particles {
		p.Life -= dt
		if p.Life <= 0 {
			continue
		}
		p.Position = p.Position.Add(p.Velocity.Scale(sec))
		live = append(live, p)
	}
	e.Particles = live
}
