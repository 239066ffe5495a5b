package content

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/lixenwraith/vape/core"
	"github.com/lixenwraith/vape/engine"
	"github.com/lixenwraith/vape/level"
)

// Factory builds one actor from a descriptor
// A factory that fails must leave nothing registered in the world
type Factory func(w *engine.World, d level.Descriptor) (core.Entity, error)

// Kind names accepted in level scripts
const (
	KindTurtle       = "turtle"
	KindShooter      = "shooter"
	KindBoss         = "boss"
	KindCloneLead    = "clone_lead"
	KindClone        = "clone"
	KindLaserTurret  = "laser_turret"
	KindHealthPickup = "health_pickup"
	KindWeaponPickup = "weapon_pickup"
)

// Registry maps descriptor kinds to factories
type Registry struct {
	factories map[string]Factory
}

// NewRegistry returns a registry with every built-in kind
func NewRegistry() *Registry {
	r := &Registry{factories: make(map[string]Factory)}
	r.Register(KindTurtle, NewTurtle)
	r.Register(KindShooter, NewShooter)
	r.Register(KindBoss, NewBoss)
	r.Register(KindCloneLead, NewCloneLead)
	r.Register(KindClone, NewClone)
	r.Register(KindLaserTurret, NewLaserTurret)
	r.Register(KindHealthPickup, NewHealthPickup)
	r.Register(KindWeaponPickup, NewWeaponPickup)
	return r
}

// Register adds or replaces the factory for kind
func (r *Registry) Register(kind string, f Factory) {
	r.factories[kind] = f
}

// Kinds lists registered kinds in sorted order
func (r *Registry) Kinds() []string {
	kinds := make([]string, 0, len(r.factories))
	for k := range r.factories {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

// Spawn builds the actor named by d.Kind
// Errors wrap core.ErrSpawn, or core.ErrResourceLoad for missing assets
func (r *Registry) Spawn(w *engine.World, d level.Descriptor) (core.Entity, error) {
	f, ok := r.factories[d.Kind]
	if !ok {
		return core.InvalidEntity, errors.Wrapf(core.ErrSpawn, "unknown kind %q", d.Kind)
	}
	e, err := f(w, d)
	if err != nil {
		if errors.Is(err, core.ErrResourceLoad) || errors.Is(err, core.ErrSpawn) {
			return core.InvalidEntity, err
		}
		return core.InvalidEntity, errors.Wrapf(core.ErrSpawn, "kind %q: %v", d.Kind, err)
	}
	return e, nil
}
