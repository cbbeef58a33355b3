package engine

import (
	"time"

	"github.com/lixenwraith/party-arcade/constants"
)

// Simulator drives a Scheduler over mocked time in fixed steps
// Used by tests and headless runs to replay simulated seconds instantly
type Simulator struct {
	Clock     *MockTimeProvider
	Scheduler *Scheduler
	Step      time.Duration
	elapsed   time.Duration
}

// NewSimulator creates a simulator stepping at the frame interval
func NewSimulator() *Simulator {
	clock := NewMockTimeProvider(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	return &Simulator{
		Clock:     clock,
		Scheduler: NewScheduler(clock),
		Step:      constants.FrameUpdateInterval,
	}
}

// Elapsed returns total simulated time
func (sim *Simulator) Elapsed() time.Duration {
	return sim.elapsed
}

// Run advances simulated time by d
func (sim *Simulator) Run(d time.Duration) {
	sim.Scheduler.Advance()
	for end := sim.elapsed + d; sim.elapsed < end; {
		step := min(sim.Step, end-sim.elapsed)
		sim.Clock.Advance(step)
		sim.elapsed += step
		sim.Scheduler.Advance()
	}
}

// RunUntil advances until cond holds or limit elapses, checking after every step
// Returns the simulated time spent and whether cond was met
func (sim *Simulator) RunUntil(limit time.Duration, cond func() bool) (time.Duration, bool) {
	start := sim.elapsed
	sim.Scheduler.Advance()
	if cond() {
		return 0, true
	}
	for sim.elapsed-start < limit {
		sim.Clock.Advance(sim.Step)
		sim.elapsed += sim.Step
		sim.Scheduler.Advance()
		if cond() {
			return sim.elapsed - start, true
		}
	}
	return sim.elapsed - start, false
}
