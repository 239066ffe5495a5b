package component

import (
	"math"

	"github.com/lixenwraith/vape/vmath"
)

// PhysicsComponent holds scale and the base texture extent
// The sign of Scale.X encodes facing
type PhysicsComponent struct {
	Scale  vmath.Vec2
	Extent vmath.Vec2

	// HitRadius is the shrink factor applied to max(bounding box)
	HitRadius float64
}

// BoundingBox is |Scale| * Extent
func (p PhysicsComponent) BoundingBox() vmath.Vec2 {
	return p.Scale.Abs().Mul(p.Extent)
}

// Radius is the collision radius with the component's own shrink factor
func (p PhysicsComponent) Radius() float64 {
	return p.BoundingBox().MaxComponent() * p.HitRadius
}

// RadiusWith returns the collision radius for a pair-specific shrink factor
func (p PhysicsComponent) RadiusWith(shrink float64) float64 {
	return p.BoundingBox().MaxComponent() * shrink
}

// Facing returns -1 for a mirrored sprite, 1 otherwise
func (p PhysicsComponent) Facing() float64 {
	if math.Signbit(p.Scale.X) {
		return -1
	}
	return 1
}

// Model is the sprite matrix for this scale at the motion's pose
func (p PhysicsComponent) Model(m MotionComponent) vmath.Mat3 {
	return vmath.Model(m.Position, m.Rotation, p.Scale)
}
