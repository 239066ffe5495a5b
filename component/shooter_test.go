package component

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fireTimes runs a shooter for the given span and records the tick times it fired
func fireTimes(s *ShooterComponent, dt, span time.Duration) []time.Duration {
	var out []time.Duration
	for now := dt; now <= span; now += dt {
		if s.Tick(dt) {
			out = append(out, now)
		}
	}
	return out
}

func TestBurstCadence(t *testing.T) {
	tests := []struct {
		name   string
		burst  time.Duration
		bullet time.Duration
		dt     time.Duration
	}{
		{"boss cadence", 800 * time.Millisecond, 100 * time.Millisecond, 10 * time.Millisecond},
		{"shooter cadence 60hz", 1000 * time.Millisecond, 200 * time.Millisecond, 16 * time.Millisecond},
		{"clone cadence coarse tick", 1000 * time.Millisecond, 200 * time.Millisecond, 50 * time.Millisecond},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewShooter(tt.burst, tt.bullet, 5, 100)
			times := fireTimes(&s, tt.dt, 10*time.Second)
			require.GreaterOrEqual(t, len(times), 6)

			for start := 0; start+3 <= len(times); start += 3 {
				first := times[start]
				for k := 1; k < 3; k++ {
					rel := times[start+k] - first
					assert.InDelta(t, float64(time.Duration(k)*tt.bullet), float64(rel), float64(tt.dt),
						"triplet at %v shot %d", first, k)
				}
				if start+3 < len(times) {
					pause := times[start+3] - times[start+2]
					assert.GreaterOrEqual(t, pause, tt.burst, "pause after triplet at %v", first)
				}
			}

			// First shot waits out the initial burst cooldown
			assert.Greater(t, times[0], tt.burst)
		})
	}
}

func TestShooterFirstOfBurst(t *testing.T) {
	s := NewShooter(0, 0, 1, 1)
	require.True(t, s.Tick(time.Millisecond))
	assert.True(t, s.FirstOfBurst())
	require.True(t, s.Tick(time.Millisecond))
	assert.False(t, s.FirstOfBurst())
}
