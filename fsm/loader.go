package fsm

import (
	"sort"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/vape/event"
)

// LoadYAML parses a YAML graph and populates the Machine
// All references (states, guards, actions, events) are validated
// Existing graph data is cleared first
func (m *Machine[T]) LoadYAML(data []byte) error {
	var config RootConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return errors.Wrap(err, "unmarshal fsm config")
	}
	return m.Load(&config)
}

// Load builds the graph from a decoded config
func (m *Machine[T]) Load(config *RootConfig) error {
	m.nodes = make(map[StateID]*Node[T])
	m.nameToID = make(map[string]StateID)
	m.activeStateID = StateNone
	m.activePath = m.activePath[:0]

	if config.States == nil {
		config.States = make(map[string]*StateConfig)
	}
	if _, ok := config.States["Root"]; !ok {
		config.States["Root"] = &StateConfig{}
	}

	// First pass: deterministic IDs, Root reserved
	m.AddState(StateRoot, "Root", StateNone)

	stateNames := make([]string, 0, len(config.States))
	for name := range config.States {
		if name != "Root" {
			stateNames = append(stateNames, name)
		}
	}
	sort.Strings(stateNames)

	ids := make(map[string]StateID, len(stateNames)+1)
	ids["Root"] = StateRoot
	for i, name := range stateNames {
		ids[name] = StateID(i + 2)
	}

	// Second pass: nodes and parents
	for _, name := range stateNames {
		cfg := config.States[name]
		pName := cfg.Parent
		if pName == "" {
			pName = "Root"
		}
		parentID, ok := ids[pName]
		if !ok {
			return errors.Errorf("state '%s' references unknown parent '%s'", name, pName)
		}
		m.AddState(ids[name], name, parentID)
	}

	// Third pass: actions and transitions
	for name, cfg := range config.States {
		node := m.nodes[ids[name]]

		var err error
		if node.OnEnter, err = m.compileActions(cfg.OnEnter); err != nil {
			return errors.Wrapf(err, "state '%s' on_enter", name)
		}
		if node.OnUpdate, err = m.compileActions(cfg.OnUpdate); err != nil {
			return errors.Wrapf(err, "state '%s' on_update", name)
		}
		if node.OnExit, err = m.compileActions(cfg.OnExit); err != nil {
			return errors.Wrapf(err, "state '%s' on_exit", name)
		}
		if err := m.compileTransitions(node, cfg.Transitions); err != nil {
			return errors.Wrapf(err, "state '%s' transitions", name)
		}
	}

	if err := m.CompilePaths(); err != nil {
		return err
	}

	initialID, ok := ids[config.InitialState]
	if !ok || initialID == StateRoot {
		return errors.Errorf("initial state '%s' not found", config.InitialState)
	}
	m.InitialStateID = initialID

	return nil
}

func (m *Machine[T]) compileActions(configs []ActionConfig) ([]Action[T], error) {
	actions := make([]Action[T], 0, len(configs))
	for _, cfg := range configs {
		fn, ok := m.actionReg[cfg.Action]
		if !ok {
			return nil, errors.Errorf("unknown action function '%s'", cfg.Action)
		}
		actions = append(actions, Action[T]{Func: fn, Args: cfg.Args})
	}
	return actions, nil
}

func (m *Machine[T]) compileTransitions(node *Node[T], configs []TransitionConfig) error {
	for _, cfg := range configs {
		targetID, ok := m.nameToID[cfg.Target]
		if !ok {
			return errors.Errorf("unknown target state '%s'", cfg.Target)
		}

		et, ok := event.GetEventType(cfg.Trigger)
		if !ok {
			return errors.Errorf("unknown trigger '%s'", cfg.Trigger)
		}

		var guard GuardFunc[T]
		if cfg.Guard != "" {
			if g, ok := m.guardReg[cfg.Guard]; ok {
				guard = g
			} else if factory, ok := m.guardFactoryReg[cfg.Guard]; ok {
				g, err := factory(m, cfg.GuardArgs)
				if err != nil {
					return errors.Wrapf(err, "guard '%s'", cfg.Guard)
				}
				guard = g
			} else {
				return errors.Errorf("unknown guard '%s'", cfg.Guard)
			}
		}

		node.Transitions = append(node.Transitions, Transition[T]{
			TargetID: targetID,
			Event:    et,
			Guard:    guard,
		})
	}
	return nil
}
