package engine

import (
	"testing"
	"time"
)

func TestMockTimeProvider(t *testing.T) {
	startTime := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(startTime)

	if now := mock.Now(); !now.Equal(startTime) {
		t.Errorf("Expected initial time to be %v, got %v", startTime, now)
	}

	mock.Advance(5 * time.Second)
	if now := mock.Now(); !now.Equal(startTime.Add(5 * time.Second)) {
		t.Errorf("Expected time after advance to be %v, got %v", startTime.Add(5*time.Second), now)
	}
}

func TestPausableClockFreezesWhilePaused(t *testing.T) {
	source := NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	pc := NewPausableClock(source)
	start := pc.Now()

	source.Advance(time.Second)
	if !pc.Toggle() {
		t.Fatal("Toggle should report paused")
	}
	source.Advance(3 * time.Second)
	if got := pc.Now().Sub(start); got != time.Second {
		t.Errorf("Paused clock advanced: %v", got)
	}
	if got := pc.TotalPauseDuration(); got != 3*time.Second {
		t.Errorf("TotalPauseDuration = %v, want 3s", got)
	}

	pc.Resume()
	source.Advance(time.Second)
	if got := pc.Now().Sub(start); got != 2*time.Second {
		t.Errorf("Game time = %v, want 2s", got)
	}
	if pc.IsPaused() {
		t.Error("Clock should be running")
	}
}

func TestSchedulerHoldsDuringPause(t *testing.T) {
	source := NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	pc := NewPausableClock(source)
	s := NewScheduler(pc)
	fired := false
	s.After(100*time.Millisecond, func() { fired = true })

	pc.Pause()
	source.Advance(time.Second)
	s.Advance()
	if fired {
		t.Fatal("Task fired while paused")
	}

	pc.Resume()
	source.Advance(100 * time.Millisecond)
	s.Advance()
	if !fired {
		t.Error("Task did not fire after resume")
	}
}
