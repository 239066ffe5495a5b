package physics

import (
	"time"

	"github.com/lixenwraith/vape/vmath"
)

// Integrate advances velocity by acceleration, then position by velocity
// Velocity and acceleration are per second, dt is scaled accordingly
func Integrate(pos, vel, acc vmath.Vec2, dt time.Duration) (vmath.Vec2, vmath.Vec2) {
	sec := dt.Seconds()
	vel = vel.Add(acc.Scale(sec))
	pos = pos.Add(vel.Scale(sec))
	return pos, vel
}

// ApplyDrag sheds a fraction of velocity per second, never reversing it
func ApplyDrag(vel vmath.Vec2, drag float64, dt time.Duration) vmath.Vec2 {
	k := 1 - drag*dt.Seconds()
	if k < 0 {
		k = 0
	}
	return vel.Scale(k)
}

// ClampSpeed limits the velocity magnitude
func ClampSpeed(vel vmath.Vec2, max float64) vmath.Vec2 {
	if max <= 0 {
		return vel
	}
	l := vel.Len()
	if l <= max {
		return vel
	}
	return vel.Scale(max / l)
}
