package engine

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/party-arcade/constants"
	"github.com/lixenwraith/party-arcade/status"
)

// Scheduler runs timeouts, recurring tasks and posted callbacks on the caller's goroutine
// Nothing runs outside Advance; all game state is touched from one goroutine and needs no locks
type Scheduler struct {
	clock  TimeProvider
	now    time.Time
	tasks  map[uint64]*task
	posted []func()
	nextID uint64

	// Cached metric pointers, nil until Instrument
	statTicks *atomic.Int64
	statTasks *atomic.Int64
}

type task struct {
	id       uint64
	due      time.Time
	interval time.Duration // 0 = one-shot
	tick     func(dt time.Duration)
	once     func()
}

// Handle identifies one scheduled task
// The zero Handle is inert; cancelling a finished or cancelled task is a no-op
type Handle struct {
	s  *Scheduler
	id uint64
}

// Cancel removes the task, reporting whether it was still scheduled
func (h Handle) Cancel() bool {
	if h.s == nil {
		return false
	}
	return h.s.cancel(h.id)
}

// Active reports whether the task is still scheduled
func (h Handle) Active() bool {
	if h.s == nil {
		return false
	}
	_, ok := h.s.tasks[h.id]
	return ok
}

// NewScheduler creates a scheduler reading time from clock
func NewScheduler(clock TimeProvider) *Scheduler {
	return &Scheduler{
		clock: clock,
		now:   clock.Now(),
		tasks: make(map[uint64]*task),
	}
}

// Instrument caches metric pointers from the registry
func (s *Scheduler) Instrument(reg *status.Registry) {
	s.statTicks = reg.Ints.Get("engine.ticks")
	s.statTasks = reg.Ints.Get("engine.tasks")
}

// Now returns scheduler time: the due time of the task being run, or the last Advance target
func (s *Scheduler) Now() time.Time {
	return s.now
}

// After runs fn once, d after now
func (s *Scheduler) After(d time.Duration, fn func()) Handle {
	if d < 0 {
		d = 0
	}
	return s.add(&task{due: s.now.Add(d), once: fn})
}

// Every runs fn every d, first at now+d; fn receives the interval as its step
func (s *Scheduler) Every(d time.Duration, fn func(dt time.Duration)) Handle {
	if d <= 0 {
		panic(fmt.Sprintf("engine: non-positive interval %v", d))
	}
	return s.add(&task{due: s.now.Add(d), interval: d, tick: fn})
}

// Frame runs fn at the display refresh interval
func (s *Scheduler) Frame(fn func(dt time.Duration)) Handle {
	return s.Every(constants.FrameUpdateInterval, fn)
}

// Post queues fn to run on the next Advance, after the current callback returns
func (s *Scheduler) Post(fn func()) {
	s.posted = append(s.posted, fn)
}

// Pending returns the number of scheduled tasks plus queued posts
func (s *Scheduler) Pending() int {
	return len(s.tasks) + len(s.posted)
}

// Advance runs posted callbacks and every task due up to the clock's current time, in due order
// Returns the number of callbacks executed
func (s *Scheduler) Advance() int {
	target := s.clock.Now()
	if target.Before(s.now) {
		target = s.now
	}

	ran := s.drainPosted()
	for {
		t := s.nextDue(target)
		if t == nil {
			break
		}

		if t.interval > 0 {
			if target.Sub(t.due) > constants.StallThreshold {
				t.due = target.Add(-t.interval * constants.MaxCatchUpIntervals)
			}
			s.now = t.due
			t.due = t.due.Add(t.interval)
			t.tick(t.interval)
		} else {
			s.now = t.due
			delete(s.tasks, t.id)
			t.once()
		}
		ran++
		ran += s.drainPosted()
	}
	s.now = target

	if s.statTicks != nil {
		s.statTicks.Add(1)
		s.statTasks.Store(int64(len(s.tasks)))
	}
	return ran
}

func (s *Scheduler) add(t *task) Handle {
	s.nextID++
	t.id = s.nextID
	s.tasks[t.id] = t
	return Handle{s: s, id: t.id}
}

func (s *Scheduler) cancel(id uint64) bool {
	if _, ok := s.tasks[id]; !ok {
		return false
	}
	delete(s.tasks, id)
	return true
}

func (s *Scheduler) drainPosted() int {
	n := 0
	for len(s.posted) > 0 {
		fn := s.posted[0]
		s.posted[0] = nil
		s.posted = s.posted[1:]
		fn()
		n++
	}
	return n
}

// nextDue returns the earliest task due at or before target, ties broken by creation order
func (s *Scheduler) nextDue(target time.Time) *task {
	var best *task
	for _, t := range s.tasks {
		if t.due.After(target) {
			continue
		}
		if best == nil || t.due.Before(best.due) || (t.due.Equal(best.due) && t.id < best.id) {
			best = t
		}
	}
	return best
}
