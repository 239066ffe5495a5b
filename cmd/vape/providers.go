package main

import (
	"os"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/lixenwraith/vape/audio"
	"github.com/lixenwraith/vape/config"
	"github.com/lixenwraith/vape/content"
	"github.com/lixenwraith/vape/core"
	"github.com/lixenwraith/vape/engine"
	"github.com/lixenwraith/vape/game"
	"github.com/lixenwraith/vape/input"
	"github.com/lixenwraith/vape/leaderboard"
	"github.com/lixenwraith/vape/log"
	"github.com/lixenwraith/vape/network"
	"github.com/lixenwraith/vape/parameter"
)

func provideLogger(cfg *config.Config) (*log.Logger, func(), error) {
	logger, err := log.New(cfg.Log)
	if err != nil {
		return nil, nil, err
	}
	logger = logger.With(log.String("run", uuid.NewString()))
	return logger, func() { _ = logger.Sync() }, nil
}

func provideWorld(logger *log.Logger) *engine.World {
	w := engine.NewWorld()
	w.Resources.Log = logger
	return w
}

func provideContext(cfg *config.Config, w *engine.World) *engine.GameContext {
	return engine.NewGameContext(w, cfg.Screen.Width, cfg.Screen.Height)
}

// provideAudio attaches the player to the world only when a device is available
func provideAudio(cfg *config.Config, w *engine.World, logger *log.Logger) (*audio.Player, func()) {
	p := audio.NewPlayer()
	if cfg.Mute {
		p.SetMuted(true)
		return p, func() {}
	}
	if err := audio.StartSpeaker(p); err != nil {
		logger.Warn("audio disabled", log.Err(err))
		return p, func() {}
	}
	w.Resources.Audio.Player = p
	return p, audio.CloseSpeaker
}

func provideKeys(cfg *config.Config) (*input.KeyTable, error) {
	keys := input.DefaultKeyTable()
	if cfg.KeymapPath == "" {
		return keys, nil
	}
	data, err := os.ReadFile(cfg.KeymapPath)
	if err != nil {
		return nil, errors.Wrapf(core.ErrResourceLoad, "read keymap %s: %v", cfg.KeymapPath, err)
	}
	over, err := input.LoadKeyConfig(data)
	if err != nil {
		return nil, err
	}
	keys.Merge(over)
	return keys, nil
}

func provideTracker(keys *input.KeyTable) *input.Tracker {
	return input.NewTracker(keys, parameter.InputHoldWindow)
}

func provideScores(cfg *config.Config) *leaderboard.FileStore {
	return leaderboard.NewFileStore(cfg.Leaderboard, leaderboard.DefaultCapacity)
}

func provideHub(cfg *config.Config, logger *log.Logger) *network.Hub {
	return network.NewHub(cfg.Network(), logger)
}

func provideClock() engine.Clock {
	return engine.NewTimeProvider()
}

func provideState(
	cfg *config.Config,
	ctx *engine.GameContext,
	registry *content.Registry,
	scores *leaderboard.FileStore,
	hub *network.Hub,
) (*game.State, error) {
	opts := game.Options{
		Levels:       cfg.Levels(),
		StartLevel:   cfg.StartLevel,
		Lives:        cfg.Lives,
		PlayerName:   cfg.PlayerName,
		Debug:        cfg.Debug,
		PublishEvery: cfg.Spectator.PublishEvery,
	}
	// An empty leaderboard path disables persistence
	if cfg.Leaderboard != "" {
		opts.Scores = scores
	}
	if cfg.Network().Enabled() {
		opts.Spectators = hub
	}
	return game.NewState(ctx, registry, opts)
}
