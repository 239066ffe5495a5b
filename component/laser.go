package component

import "time"

// LaserState is the beam weapon phase
type LaserState int

const (
	LaserOff LaserState = iota
	LaserPrimed
	LaserFiring
)

func (s LaserState) String() string {
	switch s {
	case LaserOff:
		return "off"
	case LaserPrimed:
		return "primed"
	case LaserFiring:
		return "firing"
	}
	return "unknown"
}

// LaserComponent is a charge-then-fire beam
type LaserComponent struct {
	State           LaserState
	ChargeRemaining time.Duration
	FireRemaining   time.Duration

	// CycleRemaining counts the off time before the turret fires again
	CycleRemaining time.Duration

	Damage float64
	Length float64
	Width  float64
}

// Fire primes an idle laser
func (l *LaserComponent) Fire(charge, fire time.Duration) bool {
	if l.State != LaserOff {
		return false
	}
	l.State = LaserPrimed
	l.ChargeRemaining = charge
	l.FireRemaining = fire
	return true
}

// Advance runs the off -> primed -> firing -> off sequence and returns the state before the call
func (l *LaserComponent) Advance(dt time.Duration) LaserState {
	prev := l.State
	switch l.State {
	case LaserPrimed:
		l.ChargeRemaining -= dt
		if l.ChargeRemaining <= 0 {
			l.State = LaserFiring
		}
	case LaserFiring:
		l.FireRemaining -= dt
		if l.FireRemaining <= 0 {
			l.State = LaserOff
		}
	}
	return prev
}

// CanDamage is true only while firing
func (l LaserComponent) CanDamage() bool {
	return l.State == LaserFiring
}
