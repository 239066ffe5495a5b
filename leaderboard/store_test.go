package leaderboard

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

func TestNewEntry(t *testing.T) {
	e := NewEntry("  ", 250, "level1", false, epoch)
	assert.Equal(t, DefaultName, e.Name)
	assert.Len(t, e.ID, 36)
	assert.Equal(t, 250, e.Score)

	other := NewEntry("ana", 0, "level1", true, epoch)
	assert.NotEqual(t, e.ID, other.ID)
	assert.Equal(t, "ana", other.Name)
}

func TestFileStore_EmptyBoard(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "board.yaml"), 0)
	top, err := s.Top(5)
	require.NoError(t, err)
	assert.Empty(t, top)
}

func TestFileStore_RankOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "board.yaml")
	s := NewFileStore(path, 0)

	low := NewEntry("low", 100, "level1", false, epoch)
	high := NewEntry("high", 10000, "boss", true, epoch)
	tieLate := NewEntry("late", 500, "level2", false, epoch.Add(time.Minute))
	tieEarly := NewEntry("early", 500, "level2", false, epoch)

	for _, e := range []Entry{low, high, tieLate, tieEarly} {
		require.NoError(t, s.Submit(e))
	}

	top, err := s.Top(0)
	require.NoError(t, err)
	names := make([]string, len(top))
	for i, e := range top {
		names[i] = e.Name
	}
	assert.Equal(t, []string{"high", "early", "late", "low"}, names)

	top, err = s.Top(2)
	require.NoError(t, err)
	assert.Len(t, top, 2)

	rank, err := s.Rank(tieLate.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, rank)

	// Persisted across store instances
	reopened := NewFileStore(path, 0)
	top, err = reopened.Top(1)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, high.ID, top[0].ID)
	assert.True(t, top[0].Time.Equal(epoch))
}

func TestFileStore_Capacity(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "board.yaml"), 2)
	for i := 1; i <= 4; i++ {
		require.NoError(t, s.Submit(NewEntry("p", i*10, "level1", false, epoch)))
	}

	top, err := s.Top(0)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, 40, top[0].Score)
	assert.Equal(t, 30, top[1].Score)

	rank, err := s.Rank("missing")
	require.NoError(t, err)
	assert.Zero(t, rank)
}

func TestFileStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.yaml")
	require.NoError(t, os.WriteFile(path, []byte("entries: [\n"), 0644))

	s := NewFileStore(path, 0)
	_, err := s.Top(1)
	assert.Error(t, err)
	assert.Error(t, s.Submit(NewEntry("x", 1, "level1", false, epoch)))
}
