package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"github.com/pkg/profile"

	"github.com/lixenwraith/vape/config"
	"github.com/lixenwraith/vape/core"
)

// flags mirror the config keys they override
type flags struct {
	config    string
	level     string
	profile   string
	spectator string
	name      string
	mute      bool
	debug     bool
}

func parseFlags(fs *flag.FlagSet, args []string) (*flags, error) {
	f := &flags{}
	fs.StringVar(&f.config, "config", "", "YAML config file")
	fs.StringVar(&f.level, "level", "", "Start level id")
	fs.StringVar(&f.profile, "profile", "", "Profile mode: cpu, mem")
	fs.StringVar(&f.spectator, "spectator", "", "Spectator websocket address, e.g. :8088")
	fs.StringVar(&f.name, "name", "", "Player name for the leaderboard")
	fs.BoolVar(&f.mute, "mute", false, "Disable audio")
	fs.BoolVar(&f.debug, "debug", false, "Enable debug keys")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return f, nil
}

// apply overrides only the flags given on the command line
func (f *flags) apply(fs *flag.FlagSet, cfg *config.Config) error {
	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "level":
			cfg.StartLevel = f.level
		case "spectator":
			cfg.Spectator.Address = f.spectator
		case "name":
			cfg.PlayerName = f.name
		case "mute":
			cfg.Mute = f.mute
		case "debug":
			cfg.Debug = f.debug
		}
	})
	return cfg.Validate()
}

func startProfile(mode string) (interface{ Stop() }, error) {
	switch mode {
	case "":
		return nil, nil
	case "cpu":
		return profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook), nil
	case "mem":
		return profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook), nil
	}
	return nil, errors.Errorf("unknown profile mode %q", mode)
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "vape: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("vape", flag.ContinueOnError)
	f, err := parseFlags(fs, args)
	if err != nil {
		return err
	}

	cfg, err := config.Load(f.config)
	if err != nil {
		return err
	}
	if err := f.apply(fs, cfg); err != nil {
		return err
	}

	prof, err := startProfile(f.profile)
	if err != nil {
		return err
	}
	if prof != nil {
		defer prof.Stop()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "create screen")
	}
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "init screen")
	}
	// Restore the terminal before any crash report reaches stderr
	core.SetCrashCleanup(screen.Fini)
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()
	defer screen.Fini()
	screen.EnableMouse()

	app, cleanup, err := initApp(cfg, screen)
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return app.Run(ctx)
}
