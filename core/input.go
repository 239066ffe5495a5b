package core

// InputCode identifies a logical input, independent of the physical key bound to it
type InputCode int

const (
	InputUp InputCode = iota
	InputDown
	InputLeft
	InputRight
	InputFire
	InputVamp
	InputPause
	InputConfirm
	InputReset
	InputSpeedUp
	InputSpeedDown
	InputDebugHealth
	InputDebugCharge
	InputDebugInvincible
	InputQuit
	InputCodeCount
)

// InputSnapshot is the per-frame input state fed into the simulation
// Held is level-triggered, Pressed is true only on the frame the input went down
type InputSnapshot struct {
	Held    [InputCodeCount]bool
	Pressed [InputCodeCount]bool

	// Pointer position in world coordinates, valid once HasPointer is set
	PointerX   float64
	PointerY   float64
	HasPointer bool
}

// IsHeld returns true while the input is down
func (s *InputSnapshot) IsHeld(c InputCode) bool {
	if c < 0 || c >= InputCodeCount {
		return false
	}
	return s.Held[c]
}

// JustPressed returns true on the frame the input went down
func (s *InputSnapshot) JustPressed(c InputCode) bool {
	if c < 0 || c >= InputCodeCount {
		return false
	}
	return s.Pressed[c]
}
