package vmath

import (
	"math"
	"time"
)

// EaseAngle steps current toward target by at most rate*dt radians
// The step never overshoots; a zero or negative rate leaves current unchanged
func EaseAngle(current, target, ratePerSec float64, dt time.Duration) float64 {
	if ratePerSec <= 0 {
		return current
	}
	step := ratePerSec * dt.Seconds()
	diff := target - current
	if math.Abs(diff) <= step {
		return target
	}
	if diff > 0 {
		return current + step
	}
	return current - step
}

// WrapAngle maps r into (-π, π]
func WrapAngle(r float64) float64 {
	r = math.Mod(r+math.Pi, 2*math.Pi)
	if r <= 0 {
		r += 2 * math.Pi
	}
	return r - math.Pi
}

// NearestAngle returns the angle equivalent to target closest to current
// Easing toward the result never takes the long way round
func NearestAngle(current, target float64) float64 {
	return current + WrapAngle(target-current)
}
