package system

import (
	"github.com/lixenwraith/vape/content"
	"github.com/lixenwraith/vape/engine"
)

// Set exposes the systems the game drives directly after installation
type Set struct {
	Resolver *Resolver
	Spawn    *SpawnSystem
	Progress *ProgressSystem
	Tutorial *TutorialSystem
}

// Install builds every gameplay system and registers it with ctx
// lives is the number of deaths allowed per run, 0 for unlimited
func Install(ctx *engine.GameContext, registry *content.Registry, lives int) (*Set, error) {
	w := ctx.World

	tutorial, err := NewTutorialSystem(w, registry)
	if err != nil {
		return nil, err
	}

	set := &Set{
		Resolver: NewResolver(w),
		Spawn:    NewSpawnSystem(w, registry),
		Tutorial: tutorial,
	}
	set.Progress = NewProgressSystem(w, set.Spawn, lives)

	for _, s := range []engine.System{
		NewDebugSystem(w),
		set.Spawn,
		NewPlayerSystem(w),
		set.Tutorial,
		NewVampSystem(w),
		NewBossSystem(w),
		NewCloneSystem(w),
		NewLaserSystem(w),
		NewShooterSystem(w),
		NewCombatSystem(w),
		NewMotionSystem(w),
		NewCollisionSystem(w, set.Resolver),
		NewCullSystem(w),
		set.Progress,
		NewEffectSystem(w),
		NewAudioSystem(w),
	} {
		ctx.AddSystem(s)
	}
	return set, nil
}
