package config

import (
	"bytes"
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/vape/core"
	"github.com/lixenwraith/vape/level"
	"github.com/lixenwraith/vape/log"
	"github.com/lixenwraith/vape/network"
	"github.com/lixenwraith/vape/parameter"
)

// Screen is the world extent in units, independent of the terminal size
type Screen struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Spectator configures the optional websocket stream
type Spectator struct {
	Address      string `yaml:"address"` // Empty disables the server
	PublishEvery int    `yaml:"publish_every"`
	MaxClients   int    `yaml:"max_clients"`
}

// Config is the runtime configuration of one game process
type Config struct {
	Screen Screen `yaml:"screen"`

	// Lives is the number of deaths allowed per run, 0 for unlimited
	Lives      int    `yaml:"lives"`
	StartLevel string `yaml:"start_level"`
	LevelDir   string `yaml:"level_dir"` // Empty uses the embedded chain

	PlayerName  string `yaml:"player_name"`
	Mute        bool   `yaml:"mute"`
	Debug       bool   `yaml:"debug"`
	KeymapPath  string `yaml:"keymap"`
	Leaderboard string `yaml:"leaderboard"`

	Log       log.Config `yaml:"log"`
	Spectator Spectator  `yaml:"spectator"`
}

// Default returns a complete configuration
func Default() *Config {
	return &Config{
		Screen: Screen{
			Width:  parameter.DefaultScreenWidth,
			Height: parameter.DefaultScreenHeight,
		},
		Lives:       3,
		StartLevel:  level.FirstLevel,
		PlayerName:  parameter.DefaultPlayerName,
		Leaderboard: "vape-scores.yaml",
		Log: log.Config{
			Level:  "info",
			Output: []string{"vape.log"},
		},
		Spectator: Spectator{
			PublishEvery: parameter.SpectatorPublishEvery,
			MaxClients:   32,
		},
	}
}

// Load reads a YAML file over Default; a missing path returns Default
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(core.ErrResourceLoad, "read config %s: %v", path, err)
	}
	cfg, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// Decode reads YAML over Default and validates the result
// Unknown keys are rejected so typos do not silently fall back to defaults
func Decode(r io.Reader) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Wrapf(core.ErrResourceLoad, "decode config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks ranges and fills derived defaults
func (c *Config) Validate() error {
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return errors.Errorf("screen %dx%d must be positive", c.Screen.Width, c.Screen.Height)
	}
	if c.Lives < 0 {
		return errors.Errorf("lives %d must be >= 0", c.Lives)
	}
	if c.StartLevel == "" {
		return errors.New("start_level is required")
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return err
	}
	if c.Spectator.PublishEvery < 1 {
		return errors.Errorf("spectator publish_every %d must be >= 1", c.Spectator.PublishEvery)
	}
	if c.Spectator.MaxClients < 0 {
		return errors.Errorf("spectator max_clients %d must be >= 0", c.Spectator.MaxClients)
	}
	if c.PlayerName == "" {
		c.PlayerName = parameter.DefaultPlayerName
	}
	return nil
}

// Network returns the spectator server settings
func (c *Config) Network() *network.Config {
	nc := network.DefaultConfig()
	nc.Address = c.Spectator.Address
	nc.MaxClients = c.Spectator.MaxClients
	return nc
}

// Levels returns the configured level source
func (c *Config) Levels() level.Source {
	if c.LevelDir == "" {
		return level.Embedded()
	}
	return level.Dir(c.LevelDir)
}
