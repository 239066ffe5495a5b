package parameter

import "time"

// Boss
const (
	BossHealth            = 100.0
	BossPoints            = 10000
	BossSpeed             = 350.0
	BossScale             = 0.4
	BossExtentX           = 400.0
	BossExtentY           = 300.0
	BossBurstCooldown     = 800 * time.Millisecond
	BossBulletCooldown    = 100 * time.Millisecond
	BossBulletSpeed       = 400.0
	BossPhaseTwoThreshold = 0.5 // Fraction of max health

	// Phase two random reversal
	BossDirectionChance      = 0.01
	BossDirectionCooldown    = 800 * time.Millisecond
	BossDirectionCooldownMax = 2000 // ms of extra random cooldown
)
