package parameter

import "time"

// Vamp Mode
const (
	VampMaxCharge          = 15
	VampActivationCost     = 0
	VampActivationCooldown = 300 * time.Millisecond
	VampTimePerPoint       = 200 * time.Millisecond
	VampTimeSlowdown       = 0.5
	VampKillsNeeded        = 3

	// VampDamageTimer is contact time before a regular enemy is drained
	VampDamageTimer = 125 * time.Millisecond

	// VampDamageTimerBoss is contact time per boss damage tick
	VampDamageTimerBoss = 400 * time.Millisecond
	VampDamageBoss      = 4.0

	// VampHeal is health restored per drained enemy
	VampHeal = 2.0

	// VampRadius is the drain area radius around the player
	VampRadius = 120.0

	// TutorialVampPrecharge is the charge granted when the vamp lesson begins
	TutorialVampPrecharge = 12
)
