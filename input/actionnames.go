package input

import (
	"maps"
	"slices"

	"github.com/lixenwraith/vape/core"
)

// actionRegistry maps canonical action names to input codes
// Used by the keymap loader to resolve action strings to bindings
var actionRegistry = map[string]core.InputCode{
	// Unbind sentinel
	"none": core.InputCodeCount,

	"move_up":    core.InputUp,
	"move_down":  core.InputDown,
	"move_left":  core.InputLeft,
	"move_right": core.InputRight,
	"fire":       core.InputFire,
	"vamp":       core.InputVamp,

	"pause":   core.InputPause,
	"confirm": core.InputConfirm,
	"reset":   core.InputReset,
	"quit":    core.InputQuit,

	"speed_up":   core.InputSpeedUp,
	"speed_down": core.InputSpeedDown,

	"debug_health":     core.InputDebugHealth,
	"debug_charge":     core.InputDebugCharge,
	"debug_invincible": core.InputDebugInvincible,
}

// ActionNames returns every bindable action name, sorted
func ActionNames() []string {
	return slices.Sorted(maps.Keys(actionRegistry))
}
