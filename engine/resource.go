package engine

import (
	"time"

	"github.com/lixenwraith/vape/core"
	"github.com/lixenwraith/vape/event"
	"github.com/lixenwraith/vape/log"
	"github.com/lixenwraith/vape/parameter"
	"github.com/lixenwraith/vape/status"
	"github.com/lixenwraith/vape/vmath"
)

// Resource holds singleton game resources, initialized with the World, accessed via World.Resources
type Resource struct {
	// World Resource
	Time        *TimeResource
	Config      *ConfigResource
	Game        *GameStateResource
	Event       *EventQueueResource
	Input       *InputResource
	Projectiles *ProjectileResource
	Rand        *vmath.FastRand

	// Telemetry
	Status *status.Registry
	Log    *log.Logger

	// Bridged resources from adapters
	Audio  *AudioResource
	Assets *AssetResource
}

// NewResource returns resources with safe defaults; adapters are replaced by the caller
func NewResource() *Resource {
	return &Resource{
		Time: &TimeResource{
			DeltaTime: parameter.TickInterval,
			SimDelta:  parameter.TickInterval,
			Speed:     1,
		},
		Config: &ConfigResource{
			ScreenWidth:  parameter.DefaultScreenWidth,
			ScreenHeight: parameter.DefaultScreenHeight,
		},
		Game:        NewGameStateResource(),
		Event:       &EventQueueResource{},
		Input:       &InputResource{},
		Projectiles: &ProjectileResource{},
		Rand:        vmath.NewFastRand(1),
		Status:      status.NewRegistry(),
		Log:         log.Nop(),
		Audio:       &AudioResource{},
		Assets:      &AssetResource{},
	}
}

// === World Resources ===

// TimeResource wraps time data for systems
// It is updated by the GameContext at the start of a step
type TimeResource struct {
	// DeltaTime is the wall-clock step, used by the player and UI timers
	DeltaTime time.Duration

	// SimDelta is DeltaTime scaled by Speed, used by everything else
	SimDelta time.Duration

	// Speed is BaseSpeed times the vamp slowdown factor
	Speed float64

	// Elapsed is total simulated time since the level started
	Elapsed time.Duration

	// FrameNumber is the current frame count
	FrameNumber int64
}

// Update modifies TimeResource fields in-place (zero allocation)
func (tr *TimeResource) Update(dt time.Duration, speed float64, frameNumber int64) {
	tr.DeltaTime = dt
	tr.Speed = speed
	tr.SimDelta = time.Duration(float64(dt) * speed)
	tr.Elapsed += tr.SimDelta
	tr.FrameNumber = frameNumber
}

// Seconds returns the wall delta in seconds
func (tr *TimeResource) Seconds() float64 {
	return tr.DeltaTime.Seconds()
}

// ConfigResource holds semi-static screen configuration
type ConfigResource struct {
	ScreenWidth  int
	ScreenHeight int
}

// Width returns the screen width as float
func (c *ConfigResource) Width() float64 { return float64(c.ScreenWidth) }

// Height returns the screen height as float
func (c *ConfigResource) Height() float64 { return float64(c.ScreenHeight) }

// EventQueueResource wraps the event queue for systems access
type EventQueueResource struct {
	Queue *event.EventQueue
}

// DebugFlags are the debug-only gates, separate from gameplay state
type DebugFlags struct {
	Enabled    bool
	Invincible bool
}

// GameStateResource holds the per-run gameplay state shared across systems
type GameStateResource struct {
	Paused bool
	Debug  DebugFlags

	// Player is the current player entity, InvalidEntity while dead and reaped
	Player core.Entity

	LevelID    string
	Tutorial   bool
	Quota      int
	StartScore int

	// BaseSpeed is the user speed control, VampFactor the vamp slowdown
	BaseSpeed  float64
	VampFactor float64
}

// NewGameStateResource returns state at normal speed with no player
func NewGameStateResource() *GameStateResource {
	return &GameStateResource{
		BaseSpeed:  1,
		VampFactor: 1,
	}
}

// Speed returns the effective simulation speed
func (g *GameStateResource) Speed() float64 {
	return g.BaseSpeed * g.VampFactor
}

// InputResource holds the input snapshot for the current step
type InputResource struct {
	Snapshot core.InputSnapshot
}

// ProjectileResource tracks live bullets by side
// Systems append on fire; entries are compacted after every reap
type ProjectileResource struct {
	Friendly []core.Entity
	Hostile  []core.Entity
}

// Add appends a bullet to the side matching hostile
func (p *ProjectileResource) Add(e core.Entity, hostile bool) {
	if hostile {
		p.Hostile = append(p.Hostile, e)
		return
	}
	p.Friendly = append(p.Friendly, e)
}

// Compact drops entries rejected by alive, in place
func (p *ProjectileResource) Compact(alive func(core.Entity) bool) {
	p.Friendly = compactEntities(p.Friendly, alive)
	p.Hostile = compactEntities(p.Hostile, alive)
}

// Clear forgets every projectile
func (p *ProjectileResource) Clear() {
	p.Friendly = p.Friendly[:0]
	p.Hostile = p.Hostile[:0]
}

func compactEntities(list []core.Entity, alive func(core.Entity) bool) []core.Entity {
	out := list[:0]
	for _, e := range list {
		if alive(e) {
			out = append(out, e)
		}
	}
	return out
}

// === Bridged Resources from adapters ===

// AudioPlayer defines the minimal audio interface used by game systems
type AudioPlayer interface {
	Play(core.SoundType) bool
	Stop(core.SoundType)
}

// AudioResource wraps the audio player interface, Player may be nil when muted at startup
type AudioResource struct {
	Player AudioPlayer
}

// AssetCatalog resolves texture names to their native pixel extents
type AssetCatalog interface {
	Extent(texture string) (vmath.Vec2, error)
}

// AssetResource wraps the asset catalog
type AssetResource struct {
	Catalog AssetCatalog
}
