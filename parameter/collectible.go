package parameter

// Pickups
const (
	PickupFallSpeed = 20.0
	PickupExtentX   = 32.0
	PickupExtentY   = 32.0
	PickupScale     = 1.0
)
