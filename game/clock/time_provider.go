package clock

import (
	"sync"
	"time"
)

// TimeProvider is a source of the current time.
type TimeProvider interface {
	Now() time.Time
}

// RealTime reads the system monotonic clock.
type RealTime struct{}

func (RealTime) Now() time.Time {
	return time.Now()
}

// MockTime is a controllable time source for tests and virtual scheduling.
type MockTime struct {
	mu          sync.RWMutex
	currentTime time.Time
}

// NewMockTime creates a mock time source starting at start.
func NewMockTime(start time.Time) *MockTime {
	return &MockTime{currentTime: start}
}

func (m *MockTime) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentTime
}

// Advance moves the mock time forward by d.
func (m *MockTime) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = m.currentTime.Add(d)
}
