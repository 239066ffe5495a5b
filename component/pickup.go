package component

// PickupKind is the closed set of collectible variants
type PickupKind int

const (
	PickupHealth PickupKind = iota
	PickupWeapon
)

// PickupComponent is applied to the player on contact, then the pickup is destroyed
type PickupComponent struct {
	Kind   PickupKind
	Weapon WeaponKind
	Amount int
}
