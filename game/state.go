package game

import (
	"time"

	"github.com/pkg/errors"

	"github.com/lixenwraith/vape/content"
	"github.com/lixenwraith/vape/core"
	"github.com/lixenwraith/vape/engine"
	"github.com/lixenwraith/vape/event"
	"github.com/lixenwraith/vape/leaderboard"
	"github.com/lixenwraith/vape/level"
	"github.com/lixenwraith/vape/log"
	"github.com/lixenwraith/vape/network"
	"github.com/lixenwraith/vape/parameter"
	"github.com/lixenwraith/vape/render"
	"github.com/lixenwraith/vape/system"
)

// ScoreSink receives the run result once, at game over or at the end of the chain
type ScoreSink interface {
	Submit(leaderboard.Entry) error
}

// SnapshotSink receives periodic read-only frames
type SnapshotSink interface {
	Publish(network.Snapshot)
}

// Phase is the top-level run state
type Phase int

const (
	PhasePlaying Phase = iota
	PhasePaused
	PhaseOver
	PhaseQuit
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseOver:
		return "over"
	case PhaseQuit:
		return "quit"
	}
	return "unknown"
}

// Options configure a State
type Options struct {
	Levels     level.Source
	StartLevel string
	Lives      int
	PlayerName string
	Debug      bool

	Scores       ScoreSink    // Optional
	Spectators   SnapshotSink // Optional
	PublishEvery int

	// Now stamps leaderboard entries, time.Now when nil
	Now func() time.Time
}

// State drives one game session: level chain, pause menu and run end
// Level transitions requested by systems during a step are applied after it
type State struct {
	ctx      *engine.GameContext
	world    *engine.World
	set      *system.Set
	registry *content.Registry
	opts     Options
	logger   *log.Logger

	level   *level.Level
	phase   Phase
	menu    int
	won     bool
	pending []event.EventType

	dialogue   string
	flash      time.Duration
	finalScore int
	submitted  bool
	published  int

	list *render.DrawList
}

// NewState installs every gameplay system into ctx and subscribes to level transitions
// Call Start to load the first level
func NewState(ctx *engine.GameContext, registry *content.Registry, opts Options) (*State, error) {
	if opts.Levels == nil {
		opts.Levels = level.Embedded()
	}
	if opts.StartLevel == "" {
		opts.StartLevel = level.FirstLevel
	}
	if opts.PlayerName == "" {
		opts.PlayerName = parameter.DefaultPlayerName
	}
	if opts.PublishEvery < 1 {
		opts.PublishEvery = parameter.SpectatorPublishEvery
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	set, err := system.Install(ctx, registry, opts.Lives)
	if err != nil {
		return nil, errors.Wrap(err, "install systems")
	}

	s := &State{
		ctx:      ctx,
		world:    ctx.World,
		set:      set,
		registry: registry,
		opts:     opts,
		logger:   ctx.World.Resources.Log.With(log.String("component", "game")),
		list:     render.NewDrawList(512),
	}
	ctx.World.Resources.Game.Debug.Enabled = opts.Debug
	ctx.Router.Register(s)
	return s, nil
}

// Start begins a fresh run at the configured level
func (s *State) Start() error {
	s.set.Progress.ResetRun()
	s.submitted = false
	s.won = false
	return s.load(s.opts.StartLevel, 0)
}

// Phase returns the run state
func (s *State) Phase() Phase { return s.phase }

// Level returns the loaded level
func (s *State) Level() *level.Level { return s.level }

// Systems exposes the installed systems
func (s *State) Systems() *system.Set { return s.set }

// Won reports whether a finished run cleared the whole chain
func (s *State) Won() bool { return s.won }

// Dialogue returns the current tutorial line
func (s *State) Dialogue() string { return s.dialogue }

// Score returns the live player's score, or the final score once the run is over
func (s *State) Score() int {
	if s.phase == PhaseOver {
		return s.finalScore
	}
	pc, ok := s.world.Components.Player.GetComponent(s.world.Resources.Game.Player)
	if !ok {
		return s.world.Resources.Game.StartScore
	}
	return pc.Score
}

func (s *State) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventLevelComplete,
		event.EventLevelRestart,
		event.EventGameOver,
		event.EventDialogueAdvance,
		event.EventPlayerDamaged,
	}
}

// HandleEvent runs inside dispatch; level loads are deferred until the step returns
func (s *State) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventDialogueAdvance:
		if p, ok := ev.Payload.(*event.DialoguePayload); ok {
			s.dialogue = p.Text
		}
	case event.EventPlayerDamaged:
		s.flash = parameter.HUDFlashDuration
	default:
		s.pending = append(s.pending, ev.Type)
	}
}

// Tick consumes one frame of input and advances the simulation when playing
// Returns false once the player chose to quit
func (s *State) Tick(dt time.Duration, in core.InputSnapshot) bool {
	if in.JustPressed(core.InputQuit) {
		s.phase = PhaseQuit
	}

	switch s.phase {
	case PhasePlaying:
		switch {
		case in.JustPressed(core.InputPause):
			s.pause()
			return true
		case in.JustPressed(core.InputReset):
			s.requestRestart()
			return true
		}
		s.ctx.Step(dt, in)
		s.flash = max(s.flash-dt, 0)
		s.applyPending()
		s.publish()

	case PhasePaused:
		s.menuInput(in)

	case PhaseOver:
		if in.JustPressed(core.InputConfirm) || in.JustPressed(core.InputReset) {
			if err := s.Start(); err != nil {
				s.logger.Error("new run", log.Err(err))
				s.phase = PhaseQuit
			}
		}
	}
	return s.phase != PhaseQuit
}

func (s *State) pause() {
	s.phase = PhasePaused
	s.menu = 0
	s.world.Resources.Game.Paused = true
}

func (s *State) resume() {
	s.phase = PhasePlaying
	s.world.Resources.Game.Paused = false
}

// requestRestart goes through the event path so restart handling stays in one place
func (s *State) requestRestart() {
	s.world.PushEvent(event.EventLevelRestart, nil)
	s.ctx.DispatchPending()
	s.applyPending()
}

// applyPending performs the first level transition requested during the step
// Anything queued behind it belongs to the level being replaced
func (s *State) applyPending() {
	if len(s.pending) == 0 {
		return
	}
	next := s.pending[0]
	s.pending = s.pending[:0]

	var err error
	switch next {
	case event.EventLevelComplete:
		err = s.advance()
	case event.EventLevelRestart:
		err = s.load(s.level.ID, s.world.Resources.Game.StartScore)
	case event.EventGameOver:
		s.finish(false)
	}
	if err != nil {
		s.logger.Error("level transition", log.Err(err))
		s.finish(false)
	}
}

func (s *State) advance() error {
	score := s.Score()
	if s.level.Next == "" {
		s.finish(true)
		return nil
	}
	s.logger.Info("level complete",
		log.String("level", s.level.ID),
		log.String("next", s.level.Next),
		log.Int("score", score),
	)
	return s.load(s.level.Next, score)
}

// finish ends the run and submits the score exactly once
func (s *State) finish(won bool) {
	s.finalScore = s.Score()
	s.won = won
	s.phase = PhaseOver
	s.set.Tutorial.Stop()

	if s.submitted {
		return
	}
	s.submitted = true

	levelID := ""
	if s.level != nil {
		levelID = s.level.ID
	}
	s.logger.Info("run over", log.Bool("won", won), log.Int("score", s.finalScore), log.String("level", levelID))
	if s.opts.Scores == nil {
		return
	}
	entry := leaderboard.NewEntry(s.opts.PlayerName, s.finalScore, levelID, won, s.opts.Now())
	if err := s.opts.Scores.Submit(entry); err != nil {
		s.logger.Error("submit score", log.Err(err))
	}
}

// load replaces the world with level id; score carries over into the new player
func (s *State) load(id string, score int) error {
	lvl, err := s.opts.Levels.Level(id)
	if err != nil {
		return err
	}

	s.ctx.ResetWorld()
	res := s.world.Resources
	s.world.RunSafe(func() {
		g := res.Game
		g.LevelID = lvl.ID
		g.Tutorial = lvl.Tutorial
		g.Quota = lvl.VampQuota
		g.StartScore = score
		g.Paused = false
		res.Rand.Seed(lvl.Seed)
	})

	// Systems re-arm on reset before the new actors exist
	s.world.PushEvent(event.EventGameReset, nil)
	s.ctx.DispatchPending()

	var spawnErr error
	s.world.RunSafe(func() {
		s.set.Spawn.Reset(lvl.Timeline)

		player, err := content.SpawnPlayer(s.world, content.PlayerStart(s.world))
		if err != nil {
			spawnErr = err
			return
		}
		pc, _ := s.world.Components.Player.GetComponent(player)
		pc.Score = score
		s.world.Components.Player.SetComponent(player, pc)

		s.set.Tutorial.Stop()
		if lvl.Tutorial {
			spawnErr = s.set.Tutorial.Start()
		}
	})
	if spawnErr != nil {
		return errors.Wrapf(spawnErr, "load level %s", lvl.ID)
	}

	s.level = lvl
	s.pending = s.pending[:0]
	s.dialogue = ""
	s.flash = 0
	s.phase = PhasePlaying
	s.ctx.DispatchPending()

	s.logger.Info("level loaded", log.String("level", lvl.ID), log.Int("waves", lvl.Timeline.Len()), log.Int("score", score))
	return nil
}
