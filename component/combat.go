package component

import (
	"time"
)

// CombatComponent holds the timers that gate damage and hit feedback
type CombatComponent struct {
	// DamageImmunityRemaining is remaining immunity time for damage (iframes)
	DamageImmunityRemaining time.Duration

	// HitFlashRemaining is the remaining duration of hit visual feedback
	HitFlashRemaining time.Duration
}

// Immune reports active iframes
func (c CombatComponent) Immune() bool {
	return c.DamageImmunityRemaining > 0
}
