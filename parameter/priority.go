package parameter

// System Execution Priorities (lower runs first)
// Order encodes the per-tick pipeline: spawn, intent, state machines, motion,
// collision with resolution, cleanup, effects
const (
	PriorityDebug     = 10
	PrioritySpawn     = 20
	PriorityPlayer    = 30 // Input to thrust and weapon fire
	PriorityTutorial  = 40
	PriorityVamp      = 50
	PriorityBoss      = 60
	PriorityClone     = 70
	PriorityLaser     = 80
	PriorityShooter   = 90 // After boss and clone arm or disarm their shooters
	PriorityCombat    = 100
	PriorityMotion    = 200
	PriorityCollision = 300 // After all motion, resolves in place
	PriorityCull      = 400
	PriorityProgress  = 500
	PriorityEffect    = 600
	PriorityAudio     = 900
)
