package physics

import (
	"math"

	"github.com/lixenwraith/vape/vmath"
)

// Circle is a collision circle in world units
type Circle struct {
	Center vmath.Vec2
	Radius float64
}

// CircleFromBox builds a circle from a bounding box using max(w, h) * shrink
func CircleFromBox(center, box vmath.Vec2, shrink float64) Circle {
	return Circle{Center: center, Radius: box.MaxComponent() * shrink}
}

// CirclesOverlap tests overlap by squared distance
// Touching circles do not overlap
func CirclesOverlap(a, b Circle) bool {
	r := a.Radius + b.Radius
	return a.Center.Sub(b.Center).LenSq() < r*r
}

// SegmentIntersectsCircle solves |p0 + t(p1-p0) - c|^2 = r^2 and accepts roots with t in [0,1]
func SegmentIntersectsCircle(p0, p1 vmath.Vec2, c Circle) bool {
	d := p1.Sub(p0)
	f := p0.Sub(c.Center)

	a := d.Dot(d)
	if a == 0 {
		return f.LenSq() < c.Radius*c.Radius
	}
	b := 2 * f.Dot(d)
	cc := f.Dot(f) - c.Radius*c.Radius

	disc := b*b - 4*a*cc
	if disc < 0 {
		return false
	}
	disc = math.Sqrt(disc)

	t1 := (-b - disc) / (2 * a)
	t2 := (-b + disc) / (2 * a)
	return (t1 >= 0 && t1 <= 1) || (t2 >= 0 && t2 <= 1)
}

// Beam returns the two parallel segments of a beam of given length and width
// rooted at origin and pointing along rotation, offset by ±width/3 on X
func Beam(origin vmath.Vec2, rotation, length, width float64) [2][2]vmath.Vec2 {
	dir := vmath.FromAngle(rotation).Scale(length)
	off := vmath.V(width/3, 0)

	a0 := origin.Sub(off)
	b0 := origin.Add(off)
	return [2][2]vmath.Vec2{
		{a0, a0.Add(dir)},
		{b0, b0.Add(dir)},
	}
}

// BeamIntersectsCircle reports a hit on either beam segment
func BeamIntersectsCircle(origin vmath.Vec2, rotation, length, width float64, c Circle) bool {
	for _, seg := range Beam(origin, rotation, length, width) {
		if SegmentIntersectsCircle(seg[0], seg[1], c) {
			return true
		}
	}
	return false
}
