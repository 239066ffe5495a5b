package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/vape/vmath"
)

var testProfile = CollisionProfile{TargetMassPerRadius: 100, OtherMassPerRadius: 200}

func TestApplyCollisionSeparatesAndBounces(t *testing.T) {
	player := Body{Position: vmath.V(0, 15), Velocity: vmath.V(0, -100), Radius: 10}
	boss := Body{Position: vmath.V(0, 0), Velocity: vmath.V(350, 0), Radius: 10}

	assert.True(t, ApplyCollision(&player, boss, testProfile))

	// Pushed out to exactly touching along +Y
	assert.InDelta(t, 20, player.Position.Y, 1e-9)
	assert.InDelta(t, 0, player.Position.X, 1e-9)

	// d = (0,15), rel = (-350,-100), dot = -1500, |d|^2 = 225
	// k = (2*2000/(1000+2000)) * -1500/225 = -8.888..., v' = v - d*k
	assert.InDelta(t, -100+15*(4.0/3.0)*(1500.0/225.0), player.Velocity.Y, 1e-9)
	assert.InDelta(t, 0, player.Velocity.X, 1e-9)
	assert.Greater(t, player.Velocity.Y, 0.0, "player must now move away from the boss")
}

func TestApplyCollisionNoOverlap(t *testing.T) {
	player := Body{Position: vmath.V(0, 20), Velocity: vmath.V(1, 1), Radius: 10}
	boss := Body{Position: vmath.V(0, 0), Radius: 10}

	assert.False(t, ApplyCollision(&player, boss, testProfile))
	assert.Equal(t, vmath.V(0, 20), player.Position)
	assert.Equal(t, vmath.V(1, 1), player.Velocity)
}

func TestApplyCollisionCoincident(t *testing.T) {
	player := Body{Position: vmath.V(5, 5), Radius: 4}
	other := Body{Position: vmath.V(5, 5), Radius: 6}

	assert.True(t, ApplyCollision(&player, other, testProfile))
	assert.Equal(t, vmath.V(5, 15), player.Position)
}
