package core

// SoundType represents different sound effects
type SoundType int

const (
	SoundExplosion    SoundType = iota // Enemy or player hit
	SoundShoot                         // Player weapon discharge
	SoundEnemyShoot                    // First bullet of a hostile burst
	SoundBossHit                       // Bullet on boss armor
	SoundVampCharged                   // Vamp charge reached maximum
	SoundVampStart                     // Vamp mode entered
	SoundVampEnd                       // Vamp mode left
	SoundLaser                         // Continuous beam, looping until stopped
	SoundPickup                        // Pickup collected
	SoundPlayerDeath                   // Player health reached zero
	SoundTypeCount
)

var soundNames = [SoundTypeCount]string{
	"explosion", "shoot", "enemy_shoot", "boss_hit", "vamp_charged",
	"vamp_start", "vamp_end", "laser", "pickup", "player_death",
}

func (s SoundType) String() string {
	if s < 0 || s >= SoundTypeCount {
		return "unknown"
	}
	return soundNames[s]
}

// Looping reports whether the sound plays until explicitly stopped
func (s SoundType) Looping() bool {
	return s == SoundLaser
}
