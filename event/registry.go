package event

import "strings"

// Name table used by configuration-driven consumers (fsm graphs)
var nameToType = map[string]EventType{
	"Tick":                     EventNone,
	"SoundRequest":             EventSoundRequest,
	"SoundStop":                EventSoundStop,
	"ExplosionRequest":         EventExplosionRequest,
	"EnemyKilled":              EventEnemyKilled,
	"PlayerDamaged":            EventPlayerDamaged,
	"PlayerDied":               EventPlayerDied,
	"BurstFired":               EventBurstFired,
	"BossPhaseChange":          EventBossPhaseChange,
	"CloneStunned":             EventCloneStunned,
	"LaserStateChange":         EventLaserStateChange,
	"PickupCollected":          EventPickupCollected,
	"VampCharged":              EventVampCharged,
	"VampStart":                EventVampStart,
	"VampEnd":                  EventVampEnd,
	"WaveSpawned":              EventWaveSpawned,
	"SpawnFailed":              EventSpawnFailed,
	"LevelComplete":            EventLevelComplete,
	"LevelRestart":             EventLevelRestart,
	"GameOver":                 EventGameOver,
	"DialogueAdvance":          EventDialogueAdvance,
	"GameReset":                EventGameReset,
	"MetaSystemCommandRequest": EventMetaSystemCommandRequest,
}

// GetEventType returns the EventType for a given name, case-insensitive for "tick"
func GetEventType(name string) (EventType, bool) {
	if strings.EqualFold(name, "Tick") || name == "" {
		return EventNone, true
	}
	et, ok := nameToType[name]
	return et, ok
}

// GetEventName returns the registered name for an EventType
func GetEventName(et EventType) string {
	for name, t := range nameToType {
		if t == et {
			return name
		}
	}
	return ""
}
