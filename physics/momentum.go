package physics

import "github.com/lixenwraith/vape/vmath"

// Body is the state the momentum response needs from each participant
type Body struct {
	Position vmath.Vec2
	Velocity vmath.Vec2
	Radius   float64
}

// CollisionProfile assigns mass per unit radius to each side of a contact
type CollisionProfile struct {
	TargetMassPerRadius float64
	OtherMassPerRadius  float64
}

// ApplyCollision separates target from other and recomputes target's velocity
// with an elastic exchange along the centre line: other is treated as immovable
// for positioning but its mass and velocity still enter the exchange
// Returns false and leaves target untouched when the circles do not overlap
func ApplyCollision(target *Body, other Body, profile CollisionProfile) bool {
	d := target.Position.Sub(other.Position)
	distSq := d.LenSq()
	rSum := target.Radius + other.Radius
	if distSq >= rSum*rSum {
		return false
	}

	if distSq == 0 {
		// Coincident centres: separate along +Y, velocity exchange undefined
		target.Position = target.Position.Add(vmath.V(0, rSum))
		return true
	}

	dist := d.Len()
	overlap := dist - rSum // negative while penetrating
	normal := d.Scale(1 / dist)

	mt := target.Radius * profile.TargetMassPerRadius
	mo := other.Radius * profile.OtherMassPerRadius

	relVel := target.Velocity.Sub(other.Velocity)
	k := (2 * mo / (mt + mo)) * relVel.Dot(d) / distSq
	target.Velocity = target.Velocity.Sub(d.Scale(k))

	target.Position = target.Position.Add(normal.Scale(-overlap))
	return true
}
