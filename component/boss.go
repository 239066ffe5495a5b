package component

import "time"

// BossPhase is derived from health and never moves backward
type BossPhase int

const (
	BossPhaseOne BossPhase = iota
	BossPhaseTwo
	BossPhaseDown
)

// BossComponent holds patrol and phase state
type BossComponent struct {
	Phase     BossPhase
	Speed     float64
	Direction float64 // +1 right, -1 left

	// DirectionCooldown gates random reversals in phase two
	DirectionCooldown time.Duration
}

// NextPhase returns the phase for a health fraction, never regressing
func NextPhase(current BossPhase, fraction, threshold float64) BossPhase {
	switch {
	case fraction <= 0 || current == BossPhaseDown:
		return BossPhaseDown
	case current == BossPhaseTwo || fraction <= threshold:
		return BossPhaseTwo
	default:
		return BossPhaseOne
	}
}
