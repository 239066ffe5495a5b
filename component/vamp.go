package component

import "time"

// VampComponent is the player's vamp mode state
type VampComponent struct {
	Charge    int
	MaxCharge int
	Active    bool

	// Timer accumulates active time toward the next charge drain
	Timer time.Duration

	// ActivationCooldown debounces the toggle input
	ActivationCooldown time.Duration

	Radius float64
}

// AddCharge adds one unit outside vamp mode, returns true when the charge reaches max on this call
func (v *VampComponent) AddCharge() bool {
	if v.Active || v.Charge >= v.MaxCharge {
		return false
	}
	v.Charge++
	return v.Charge == v.MaxCharge
}
