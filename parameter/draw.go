package parameter

// Draw layers, back to front
// Higher values are "on top"
const (
	LayerBackground = 0
	LayerEnemy      = 100
	LayerVamp       = 200
	LayerParticle   = 300
	LayerProjectile = 400
	LayerPlayer     = 500
	LayerUI         = 900
	LayerPause      = 1000
)
