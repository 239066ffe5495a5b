package system

import (
	_ "embed"

	"github.com/pkg/errors"

	"github.com/lixenwraith/vape/content"
	"github.com/lixenwraith/vape/core"
	"github.com/lixenwraith/vape/engine"
	"github.com/lixenwraith/vape/event"
	"github.com/lixenwraith/vape/fsm"
	"github.com/lixenwraith/vape/level"
	"github.com/lixenwraith/vape/log"
	"github.com/lixenwraith/vape/parameter"
	"github.com/lixenwraith/vape/vmath"
)

//go:embed tutorial.yaml
var tutorialGraph []byte

// Directions the movement lesson waits for
var tutorialDirections = [...]core.InputCode{core.InputUp, core.InputDown, core.InputLeft, core.InputRight}

// TutorialSystem gates the training level through a lesson graph
// It only runs between Start and Stop; other levels leave it idle
type TutorialSystem struct {
	world    *engine.World
	registry *content.Registry
	machine  *fsm.Machine[*TutorialSystem]

	active bool
	moved  [len(tutorialDirections)]bool

	enabled bool
}

// NewTutorialSystem loads the embedded lesson graph
func NewTutorialSystem(world *engine.World, registry *content.Registry) (*TutorialSystem, error) {
	s := &TutorialSystem{
		world:    world,
		registry: registry,
		machine:  fsm.NewMachine[*TutorialSystem](),
	}
	s.register()
	if err := s.machine.LoadYAML(tutorialGraph); err != nil {
		return nil, errors.Wrap(err, "tutorial graph")
	}
	s.Init()
	return s, nil
}

func (s *TutorialSystem) Init() {
	s.enabled = true
}

// Start enters the first lesson
func (s *TutorialSystem) Start() error {
	s.moved = [len(tutorialDirections)]bool{}
	s.active = true
	return s.machine.Reset(s)
}

// Stop idles the system until the next Start
func (s *TutorialSystem) Stop() {
	s.active = false
}

// Stage returns the active lesson name, empty when idle
func (s *TutorialSystem) Stage() string {
	if !s.active {
		return ""
	}
	return s.machine.Current()
}

func (s *TutorialSystem) Name() string  { return "tutorial" }
func (s *TutorialSystem) Priority() int { return parameter.PriorityTutorial }

func (s *TutorialSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventEnemyKilled,
		event.EventVampCharged,
		event.EventMetaSystemCommandRequest,
		event.EventGameReset,
	}
}

func (s *TutorialSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventGameReset:
		s.Init()
		return
	case event.EventMetaSystemCommandRequest:
		metaToggle(ev, s.Name(), &s.enabled)
		return
	}
	if !s.enabled || !s.active {
		return
	}
	s.machine.HandleEvent(s, ev.Type)
}

func (s *TutorialSystem) Update() {
	if !s.enabled || !s.active {
		return
	}
	s.machine.Update(s, s.world.Resources.Time.DeltaTime)
}

func (s *TutorialSystem) register() {
	m := s.machine

	m.RegisterGuard("ConfirmPressed", func(s *TutorialSystem) bool {
		return s.world.Resources.Input.Snapshot.JustPressed(core.InputConfirm)
	})
	m.RegisterGuard("MovedAllDirections", func(s *TutorialSystem) bool {
		for _, ok := range s.moved {
			if !ok {
				return false
			}
		}
		return true
	})
	m.RegisterGuard("QuotaCleared", func(s *TutorialSystem) bool {
		return s.world.Resources.Game.Quota <= 0
	})

	m.RegisterAction("Dialogue", func(s *TutorialSystem, args map[string]any) {
		s.world.PushEvent(event.EventDialogueAdvance, &event.DialoguePayload{
			Stage: argString(args, "stage"),
			Text:  argString(args, "text"),
		})
	})
	m.RegisterAction("TrackMovement", func(s *TutorialSystem, _ map[string]any) {
		in := &s.world.Resources.Input.Snapshot
		for i, code := range tutorialDirections {
			if in.IsHeld(code) {
				s.moved[i] = true
			}
		}
	})
	m.RegisterAction("KeepEnemies", func(s *TutorialSystem, args map[string]any) {
		want := argInt(args, "count")
		if quota, _ := args["quota"].(bool); quota {
			want = s.world.Resources.Game.Quota
		}
		s.keepEnemies(want)
	})
	m.RegisterAction("Precharge", func(s *TutorialSystem, args map[string]any) {
		s.setCharge(func(v *int, _ int) { *v = argInt(args, "charge") })
	})
	m.RegisterAction("HoldCharge", func(s *TutorialSystem, _ map[string]any) {
		if s.world.Resources.Game.Quota > 0 {
			s.setCharge(func(v *int, limit int) { *v = limit })
		}
	})
	m.RegisterAction("Complete", func(s *TutorialSystem, _ map[string]any) {
		s.active = false
		s.world.PushEvent(event.EventLevelComplete, nil)
	})
}

// keepEnemies tops the field up to want hovering drones
func (s *TutorialSystem) keepEnemies(want int) {
	c := &s.world.Components
	have := len(s.world.Query().With(c.Enemy).Execute())
	width := s.world.Resources.Config.Width()
	rng := s.world.Resources.Rand

	for ; have < want; have++ {
		d := level.Descriptor{
			Kind:     content.KindTurtle,
			Position: vmath.V(rng.Range(width*0.15, width*0.85), rng.Range(80, 200)),
		}
		if _, err := s.registry.Spawn(s.world, d); err != nil {
			s.world.Resources.Log.Warn("tutorial spawn", log.Err(err))
			return
		}
	}
}

func (s *TutorialSystem) setCharge(fn func(charge *int, limit int)) {
	player := s.world.Resources.Game.Player
	store := s.world.Components.Vamp
	v, ok := store.GetComponent(player)
	if !ok {
		return
	}
	fn(&v.Charge, v.MaxCharge)
	store.SetComponent(player, v)
}

func argString(args map[string]any, key string) string {
	v, _ := args[key].(string)
	return v
}

func argInt(args map[string]any, key string) int {
	switch v := args[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return 0
}
