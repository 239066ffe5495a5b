package component

// HealthComponent tracks hit points with a latched death flag
// Once Dead is set no path clears it: healing a dead entity is a no-op
type HealthComponent struct {
	Current float64
	Max     float64 // 0 means unbounded
	Dead    bool
}

// NewHealth returns a live component at the given values
func NewHealth(current, max float64) HealthComponent {
	return HealthComponent{Current: current, Max: max, Dead: current <= 0}
}

// Damage subtracts d and latches death when the result is <= 0
// Returns true if this call crossed to dead
func (h *HealthComponent) Damage(d float64) bool {
	if h.Dead {
		return false
	}
	h.Current -= d
	if h.Current <= 0 {
		h.Dead = true
		return true
	}
	return false
}

// Heal adds up to Max while alive
func (h *HealthComponent) Heal(amount float64) {
	if h.Dead {
		return
	}
	h.Current += amount
	if h.Max > 0 && h.Current > h.Max {
		h.Current = h.Max
	}
}

// Refill restores to Max while alive
func (h *HealthComponent) Refill() {
	if h.Dead || h.Max <= 0 {
		return
	}
	h.Current = h.Max
}

// Alive reports a living entity
func (h HealthComponent) Alive() bool {
	return !h.Dead
}

// Fraction returns Current/Max, or 1 when unbounded
func (h HealthComponent) Fraction() float64 {
	if h.Max <= 0 {
		return 1
	}
	return h.Current / h.Max
}
