package engine

import (
	"sync"
	"time"
)

// TimeProvider is the time source the scheduler advances against
type TimeProvider interface {
	Now() time.Time
}

// MonotonicTimeProvider provides the real system time with monotonic clock readings
type MonotonicTimeProvider struct{}

// NewMonotonicTimeProvider creates a new monotonic time provider
func NewMonotonicTimeProvider() *MonotonicTimeProvider {
	return &MonotonicTimeProvider{}
}

// Now returns the current time with monotonic clock reading
func (p *MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}

// MockTimeProvider provides a controllable time source for testing
type MockTimeProvider struct {
	mu          sync.RWMutex
	currentTime time.Time
}

// NewMockTimeProvider creates a new mock time provider with the given start time
func NewMockTimeProvider(startTime time.Time) *MockTimeProvider {
	return &MockTimeProvider{currentTime: startTime}
}

// Now returns the current mocked time
func (m *MockTimeProvider) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentTime
}

// Advance moves the mocked time forward by d
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = m.currentTime.Add(d)
}

// PausableClock derives game time from a source clock, excluding paused spans
// Only the main loop goroutine touches it
type PausableClock struct {
	source      TimeProvider
	paused      bool
	pausedAt    time.Time
	totalPaused time.Duration
}

// NewPausableClock creates a running clock over source
func NewPausableClock(source TimeProvider) *PausableClock {
	return &PausableClock{source: source}
}

// Now returns game time: source time minus accumulated pauses, frozen while paused
func (pc *PausableClock) Now() time.Time {
	if pc.paused {
		return pc.pausedAt.Add(-pc.totalPaused)
	}
	return pc.source.Now().Add(-pc.totalPaused)
}

// Pause stops game time advancement
func (pc *PausableClock) Pause() {
	if pc.paused {
		return
	}
	pc.paused = true
	pc.pausedAt = pc.source.Now()
}

// Resume continues game time advancement
func (pc *PausableClock) Resume() {
	if !pc.paused {
		return
	}
	pc.paused = false
	pc.totalPaused += pc.source.Now().Sub(pc.pausedAt)
	pc.pausedAt = time.Time{}
}

// Toggle flips the pause state and reports the new state
func (pc *PausableClock) Toggle() bool {
	if pc.paused {
		pc.Resume()
	} else {
		pc.Pause()
	}
	return pc.paused
}

// IsPaused returns current pause state
func (pc *PausableClock) IsPaused() bool {
	return pc.paused
}

// TotalPauseDuration returns cumulative pause time, including an ongoing pause
func (pc *PausableClock) TotalPauseDuration() time.Duration {
	total := pc.totalPaused
	if pc.paused {
		total += pc.source.Now().Sub(pc.pausedAt)
	}
	return total
}
