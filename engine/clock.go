package engine

import (
	"sync"
	"time"
)

// Clock is the wall-time source of the scheduler
type Clock interface {
	Now() time.Time
}

// TimeProvider reads the system clock
type TimeProvider struct{}

func NewTimeProvider() *TimeProvider { return &TimeProvider{} }

func (*TimeProvider) Now() time.Time { return time.Now() }

// MockTimeProvider is a Clock that moves only when told to
type MockTimeProvider struct {
	mu  sync.RWMutex
	now time.Time
}

func NewMockTimeProvider(start time.Time) *MockTimeProvider {
	return &MockTimeProvider{now: start}
}

func (m *MockTimeProvider) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.now
}

// SetTime jumps to t, which may be earlier than the current reading
func (m *MockTimeProvider) SetTime(t time.Time) {
	m.mu.Lock()
	m.now = t
	m.mu.Unlock()
}

// Advance moves the clock forward by d
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.mu.Lock()
	m.now = m.now.Add(d)
	m.mu.Unlock()
}
