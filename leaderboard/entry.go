package leaderboard

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultName is used when a run is submitted without a player name
const DefaultName = "Vaypur"

// Entry is one finished run
type Entry struct {
	ID    string    `yaml:"id"`
	Name  string    `yaml:"name"`
	Score int       `yaml:"score"`
	Level string    `yaml:"level"`
	Won   bool      `yaml:"won"`
	Time  time.Time `yaml:"time"`
}

// NewEntry stamps a run with a fresh id; blank names become DefaultName
func NewEntry(name string, score int, level string, won bool, at time.Time) Entry {
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultName
	}
	return Entry{
		ID:    uuid.NewString(),
		Name:  name,
		Score: score,
		Level: level,
		Won:   won,
		Time:  at.UTC(),
	}
}

// less orders by score descending, earlier runs first on ties
func less(a, b Entry) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	return a.Time.Before(b.Time)
}
