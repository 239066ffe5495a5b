package network

// EntityView is one visible actor in a spectator frame
type EntityView struct {
	Kind string  `json:"kind"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Rot  float64 `json:"rot,omitempty"`
}

// PlayerView carries the player's vitals; absent while no player is alive
type PlayerView struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Health int     `json:"health"`
	Max    int     `json:"max"`
	Charge int     `json:"charge"`
	Vamp   bool    `json:"vamp"`
}

// Snapshot is a read-only view of one simulation frame
type Snapshot struct {
	Frame    uint64             `json:"frame"`
	Level    string             `json:"level"`
	Score    int                `json:"score"`
	Lives    int                `json:"lives"`
	Paused   bool               `json:"paused,omitempty"`
	Player   *PlayerView        `json:"player,omitempty"`
	Entities []EntityView       `json:"entities"`
	Stats    map[string]float64 `json:"stats,omitempty"`
}
