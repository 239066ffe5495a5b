//go:build wireinject
// +build wireinject

package main

import (
	"github.com/gdamore/tcell/v2"
	"github.com/google/wire"

	"github.com/lixenwraith/vape/config"
	"github.com/lixenwraith/vape/content"
	"github.com/lixenwraith/vape/render"
)

func initApp(cfg *config.Config, screen tcell.Screen) (*App, func(), error) {
	wire.Build(
		provideLogger,
		provideWorld,
		provideContext,
		provideAudio,
		provideKeys,
		provideTracker,
		provideScores,
		provideHub,
		provideClock,
		provideState,
		content.NewRegistry,
		render.NewTerminalCanvas,
		wire.Bind(new(render.Canvas), new(*render.TerminalCanvas)),
		newApp,
	)
	return nil, nil, nil
}
