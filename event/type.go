package event

// EventType represents the type of game event
type EventType int

const (
	// EventNone is reserved; fsm transitions use it for tick (event-less) transitions
	EventNone EventType = iota

	// === Audio Event ===

	// EventSoundRequest requests audio playback
	// Trigger: Systems requiring audio feedback
	// Consumer: AudioSystem | Payload: *SoundRequestPayload
	EventSoundRequest

	// EventSoundStop halts a looping sound
	// Trigger: LaserSystem leaving the firing state
	// Consumer: AudioSystem | Payload: *SoundRequestPayload
	EventSoundStop

	// === Effect Event ===

	// EventExplosionRequest spawns an explosion particle burst
	// Trigger: Resolver on kills and player hits
	// Consumer: EffectSystem | Payload: *ExplosionPayload
	EventExplosionRequest

	// === Combat Event ===

	// EventEnemyKilled reports an enemy crossing to zero health
	// Trigger: Resolver
	// Consumer: TutorialSystem, ProgressSystem | Payload: *EnemyKilledPayload
	EventEnemyKilled

	// EventPlayerDamaged reports damage actually applied to the player
	// Trigger: Resolver
	// Consumer: Game state (HUD flash) | Payload: *PlayerDamagedPayload
	EventPlayerDamaged

	// EventPlayerDied reports the player's health latching to dead
	// Trigger: Resolver
	// Consumer: ProgressSystem, VampSystem | Payload: nil
	EventPlayerDied

	// EventBurstFired reports the first bullet of a hostile burst
	// Trigger: ShooterSystem
	// Consumer: AudioSystem (via sound request), telemetry | Payload: *BurstFiredPayload
	EventBurstFired

	// EventBossPhaseChange reports a boss entering a new phase
	// Trigger: BossSystem
	// Consumer: telemetry, game state | Payload: *BossPhasePayload
	EventBossPhaseChange

	// EventCloneStunned reports a clone entering the stunned state
	// Trigger: Resolver
	// Consumer: telemetry | Payload: *EntityPayload
	EventCloneStunned

	// EventLaserStateChange reports a laser state transition
	// Trigger: LaserSystem
	// Consumer: telemetry, game state | Payload: *LaserStatePayload
	EventLaserStateChange

	// EventPickupCollected reports a pickup applied to the player
	// Trigger: Resolver
	// Consumer: telemetry | Payload: *PickupPayload
	EventPickupCollected

	// === Vamp Event ===

	// EventVampCharged reports charge reaching maximum outside vamp mode
	// Trigger: VampSystem
	// Consumer: TutorialSystem | Payload: nil
	EventVampCharged

	// EventVampStart reports vamp mode activation
	// Trigger: VampSystem
	// Consumer: TutorialSystem | Payload: nil
	EventVampStart

	// EventVampEnd reports vamp mode ending
	// Trigger: VampSystem
	// Consumer: TutorialSystem | Payload: nil
	EventVampEnd

	// === Level Event ===

	// EventWaveSpawned reports a timeline entry fired
	// Trigger: SpawnSystem
	// Consumer: telemetry | Payload: *WaveSpawnedPayload
	EventWaveSpawned

	// EventSpawnFailed reports an abandoned spawn descriptor
	// Trigger: SpawnSystem
	// Consumer: telemetry | Payload: *SpawnFailedPayload
	EventSpawnFailed

	// EventLevelComplete requests advancing to the next level
	// Trigger: ProgressSystem, TutorialSystem
	// Consumer: Game state | Payload: nil
	EventLevelComplete

	// EventLevelRestart requests restarting the current level
	// Trigger: ProgressSystem after respawn delay, pause menu
	// Consumer: Game state | Payload: nil
	EventLevelRestart

	// EventGameOver ends the run and hands the score to persistence
	// Trigger: ProgressSystem when lives run out
	// Consumer: Game state | Payload: nil
	EventGameOver

	// EventDialogueAdvance shows the next tutorial dialogue line
	// Trigger: TutorialSystem on stage entry
	// Consumer: Game state (HUD) | Payload: *DialoguePayload
	EventDialogueAdvance

	// === Engine Event ===

	// EventGameReset resets session state in every system
	// Trigger: Game state on level load
	// Consumer: All systems | Payload: nil
	EventGameReset

	// EventMetaSystemCommandRequest enables or disables a system by name
	// Trigger: Debug tooling
	// Consumer: All systems | Payload: *MetaSystemCommandPayload
	EventMetaSystemCommandRequest
)
