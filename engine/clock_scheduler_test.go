package engine

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClockScheduler_FixedSteps(t *testing.T) {
	clock := NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	var steps []time.Duration
	cs := NewClockScheduler(clock, 16*time.Millisecond, func(dt time.Duration) {
		steps = append(steps, dt)
	})

	clock.Advance(10 * time.Millisecond)
	assert.Equal(t, 0, cs.Pump())

	clock.Advance(10 * time.Millisecond)
	assert.Equal(t, 1, cs.Pump(), "20ms accumulated covers one 16ms step")

	clock.Advance(28 * time.Millisecond)
	assert.Equal(t, 2, cs.Pump(), "4ms remainder carries over")

	assert.Equal(t, uint64(3), cs.TickCount())
	for _, dt := range steps {
		assert.Equal(t, 16*time.Millisecond, dt)
	}
}

func TestClockScheduler_StallDropsBacklog(t *testing.T) {
	clock := NewMockTimeProvider(time.Unix(0, 0))
	count := 0
	cs := NewClockScheduler(clock, 10*time.Millisecond, func(time.Duration) { count++ })

	clock.Advance(time.Second)
	n := cs.Pump()

	assert.Equal(t, 5, n)
	assert.Equal(t, 5, count)
	assert.Equal(t, uint64(95), cs.Dropped())

	clock.Advance(10 * time.Millisecond)
	assert.Equal(t, 1, cs.Pump())
}

func TestClockScheduler_Reset(t *testing.T) {
	clock := NewMockTimeProvider(time.Unix(0, 0))
	cs := NewClockScheduler(clock, 10*time.Millisecond, func(time.Duration) {})

	clock.Advance(35 * time.Millisecond)
	cs.Reset()
	assert.Equal(t, 0, cs.Pump())
}

func TestClockScheduler_RunStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cs := NewClockScheduler(NewTimeProvider(), time.Millisecond, func(time.Duration) {})

	done := make(chan error, 1)
	go func() { done <- cs.Run(ctx) }()
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop")
	}
}

func TestMockTimeProvider(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(start)
	assert.True(t, mock.Now().Equal(start))

	mock.Advance(time.Hour)
	assert.True(t, mock.Now().Equal(start.Add(time.Hour)))

	later := start.Add(48 * time.Hour)
	mock.SetTime(later)
	assert.True(t, mock.Now().Equal(later))
}
