package parameter

import "time"

// Input
const (
	// InputHoldWindow keeps a key held after its last terminal event
	// Terminals report presses and repeats but no release, so hold is inferred from repeat cadence
	InputHoldWindow = 400 * time.Millisecond
)

// HUD & Menus
const (
	// HUDRow is the cell row of the status line
	HUDRow = 0

	// DialogueRowFromBottom places tutorial dialogue above the bottom edge
	DialogueRowFromBottom = 2

	// ChargeBarWidth is the cell width of the vamp meter
	ChargeBarWidth = 15

	PauseTitle = "PAUSED"

	// MenuCharWidth and MenuLineHeight lay out world-anchored menu text
	MenuCharWidth  = 10.0
	MenuLineHeight = 30.0

	// HUDFlashDuration tints the status line after the player takes damage
	HUDFlashDuration = 300 * time.Millisecond
)

// Player
const (
	// DefaultPlayerName labels leaderboard entries when none is configured
	DefaultPlayerName = "Vaypur"
)
