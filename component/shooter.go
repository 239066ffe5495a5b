package component

import (
	"time"

	"github.com/lixenwraith/vape/parameter"
)

// ShooterComponent drives the burst-fire cadence shared by hostile shooters
// Bursts of BurstSize bullets BulletCooldown apart, then a BurstCooldown pause
type ShooterComponent struct {
	BurstCooldown  time.Duration
	BulletCooldown time.Duration
	BurstSize      int

	BurstRemaining  time.Duration
	BulletRemaining time.Duration
	Count           int

	// Armed shooters tick; owners with their own state machine toggle this
	Armed bool

	BulletDamage float64
	BulletSpeed  float64

	// AimAtPlayer fires toward the player instead of along facing
	AimAtPlayer bool
}

// NewShooter returns an armed shooter that starts with a full burst cooldown
func NewShooter(burst, bullet time.Duration, damage, speed float64) ShooterComponent {
	return ShooterComponent{
		BurstCooldown:  burst,
		BulletCooldown: bullet,
		BurstSize:      parameter.BurstSize,
		BurstRemaining: burst,
		Armed:          true,
		BulletDamage:   damage,
		BulletSpeed:    speed,
	}
}

// Tick advances the cadence by dt and reports whether a bullet fires this tick
// The inner cooldown is checked after decrementing so shots land on C, not C+dt
func (s *ShooterComponent) Tick(dt time.Duration) bool {
	if s.BurstRemaining > 0 {
		s.BurstRemaining -= dt
		return false
	}
	if s.Count >= s.BurstSize {
		s.Count = 0
		s.BurstRemaining = s.BurstCooldown
		return false
	}
	s.BulletRemaining -= dt
	if s.BulletRemaining > 0 {
		return false
	}
	s.Count++
	s.BulletRemaining = s.BulletCooldown
	return true
}

// FirstOfBurst reports whether the last fired bullet opened a burst
func (s ShooterComponent) FirstOfBurst() bool {
	return s.Count == 1
}
