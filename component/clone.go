package component

import (
	"time"

	"github.com/lixenwraith/vape/vmath"
)

// CloneState is the clone behaviour phase
type CloneState int

const (
	CloneMoving CloneState = iota
	CloneAttack
	CloneStunned
)

func (s CloneState) String() string {
	switch s {
	case CloneMoving:
		return "moving"
	case CloneAttack:
		return "attack"
	case CloneStunned:
		return "stunned"
	}
	return "unknown"
}

// CloneComponent is one member of a clone squad
// Stun is an interrupt: Previous holds the state to resume
type CloneComponent struct {
	State    CloneState
	Previous CloneState

	Target vmath.Vec2
	Speed  float64
	Leader bool

	StunRemaining time.Duration
}

// Stun interrupts attack; clones already stunned or still moving in ignore it
func (c *CloneComponent) Stun(d time.Duration) bool {
	if c.State == CloneStunned || c.State == CloneMoving {
		return false
	}
	c.Previous = c.State
	c.State = CloneStunned
	c.StunRemaining = d
	return true
}

// Recover pops the interrupt
func (c *CloneComponent) Recover() {
	c.State = c.Previous
	c.StunRemaining = 0
}
