package component

import "github.com/lixenwraith/vape/vmath"

// MotionComponent is the kinematic state integrated every tick
type MotionComponent struct {
	Position     vmath.Vec2
	Velocity     vmath.Vec2 // units per second
	Acceleration vmath.Vec2 // units per second squared

	// Rotation in radians; eased toward RotationTarget at RotationRate rad/s when the rate is > 0
	Rotation       float64
	RotationTarget float64
	RotationRate   float64
}

// BoundsComponent clamps X after integration
// With Reflect set, hitting a bound flips the X velocity
type BoundsComponent struct {
	MinX, MaxX float64
	Reflect    bool
}
