package physics

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/vape/vmath"
)

func TestCirclesOverlapBoundaryExclusive(t *testing.T) {
	box1 := vmath.V(20, 10)
	box2 := vmath.V(10, 30)
	const shrink = 0.5
	// radii: 20*0.5 = 10 and 30*0.5 = 15, sum 25
	a := CircleFromBox(vmath.V(0, 0), box1, shrink)

	tests := []struct {
		name string
		dist float64
		want bool
	}{
		{"exactly touching", 25, false},
		{"just inside", 24.999, true},
		{"well apart", 40, false},
		{"concentric", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := CircleFromBox(vmath.V(tt.dist, 0), box2, shrink)
			assert.Equal(t, tt.want, CirclesOverlap(a, b))
			assert.Equal(t, tt.want, CirclesOverlap(b, a))
		})
	}
}

func TestCirclesOverlapDiagonal(t *testing.T) {
	// 3-4-5 triangle, radii sum 5
	a := Circle{Center: vmath.V(0, 0), Radius: 2}
	b := Circle{Center: vmath.V(3, 4), Radius: 3}
	assert.False(t, CirclesOverlap(a, b))
	b.Radius = 3.01
	assert.True(t, CirclesOverlap(a, b))
}

func TestSegmentIntersectsCircle(t *testing.T) {
	c := Circle{Center: vmath.V(0, 10), Radius: 2}
	tests := []struct {
		name   string
		p0, p1 vmath.Vec2
		want   bool
	}{
		{"crosses", vmath.V(0, 0), vmath.V(0, 20), true},
		{"stops short", vmath.V(0, 0), vmath.V(0, 7), false},
		{"ends inside", vmath.V(0, 0), vmath.V(0, 9), true},
		{"parallel miss", vmath.V(5, 0), vmath.V(5, 20), false},
		{"points away", vmath.V(0, 0), vmath.V(0, -20), false},
		{"tangent grazes", vmath.V(2, 0), vmath.V(2, 20), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SegmentIntersectsCircle(tt.p0, tt.p1, c))
		})
	}
}

func TestBeamIntersectsCircle(t *testing.T) {
	origin := vmath.V(400, 0)
	target := Circle{Center: vmath.V(400, 300), Radius: 10}

	// Rotation 0 points down +Y
	assert.True(t, BeamIntersectsCircle(origin, 0, 2000, 20, target))
	// Pointing up, away from the target
	assert.False(t, BeamIntersectsCircle(origin, math.Pi, 2000, 20, target))
	// Too short to reach
	assert.False(t, BeamIntersectsCircle(origin, 0, 100, 20, target))

	segs := Beam(origin, 0, 10, 30)
	assert.InDelta(t, 390, segs[0][0].X, 1e-9)
	assert.InDelta(t, 410, segs[1][0].X, 1e-9)
	assert.InDelta(t, 10, segs[0][1].Y, 1e-9)
}

func TestIntegrate(t *testing.T) {
	pos, vel := Integrate(vmath.V(0, 0), vmath.V(100, -50), vmath.Vec2{}, 16*time.Millisecond)
	assert.InDelta(t, 1.6, pos.X, 1e-9)
	assert.InDelta(t, -0.8, pos.Y, 1e-9)
	assert.Equal(t, vmath.V(100, -50), vel)

	_, vel = Integrate(vmath.Vec2{}, vmath.Vec2{}, vmath.V(10, 0), 500*time.Millisecond)
	assert.InDelta(t, 5, vel.X, 1e-9)
}

func TestDragAndClamp(t *testing.T) {
	v := ApplyDrag(vmath.V(100, 0), 4, 100*time.Millisecond)
	assert.InDelta(t, 60, v.X, 1e-9)
	assert.Equal(t, vmath.Vec2{}, ApplyDrag(vmath.V(100, 0), 4, time.Second))

	c := ClampSpeed(vmath.V(300, 400), 100)
	assert.InDelta(t, 100, c.Len(), 1e-9)
	assert.Equal(t, vmath.V(3, 4), ClampSpeed(vmath.V(3, 4), 100))
}
