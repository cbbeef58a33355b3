package minigame

import (
	"log"
	"time"

	"github.com/lixenwraith/party-arcade/engine"
	"github.com/lixenwraith/party-arcade/input"
	"github.com/lixenwraith/party-arcade/render"
)

// Outcome is the result a session resolved with
type Outcome uint8

const (
	Pending Outcome = iota
	Won
	Lost
)

func (o Outcome) String() string {
	switch o {
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "pending"
	}
}

// Session owns the input subscriptions and scheduled tasks of one running minigame
// Every handle it hands out is tracked and cancelled exactly once on Resolve
type Session struct {
	id      ID
	env     Env
	start   time.Time
	subs    []input.Subscription
	tasks   []engine.Handle
	outcome Outcome
	onWin   func()
	onLose  func()
}

// Begin starts a session at the scheduler's current time
func Begin(id ID, env Env, onWin, onLose func()) *Session {
	return &Session{
		id:     id,
		env:    env,
		start:  env.Scheduler.Now(),
		onWin:  onWin,
		onLose: onLose,
	}
}

// Env returns the session environment
func (s *Session) Env() Env {
	return s.env
}

// Elapsed returns scheduler time since Begin
func (s *Session) Elapsed() time.Duration {
	return s.env.Scheduler.Now().Sub(s.start)
}

// Remaining returns budget minus elapsed, floored at zero
func (s *Session) Remaining(budget time.Duration) time.Duration {
	return max(budget-s.Elapsed(), 0)
}

// Done reports whether the session has resolved
func (s *Session) Done() bool {
	return s.outcome != Pending
}

// Outcome returns the resolved outcome, Pending while running
func (s *Session) Outcome() Outcome {
	return s.outcome
}

// OnKeyDown subscribes fn to key-down events until the session resolves
func (s *Session) OnKeyDown(fn input.Handler) {
	s.subscribe(input.KindKeyDown, fn)
}

// OnClick subscribes fn to pointer clicks until the session resolves
func (s *Session) OnClick(fn input.Handler) {
	s.subscribe(input.KindClick, fn)
}

func (s *Session) subscribe(kind input.Kind, fn input.Handler) {
	sub := s.env.Input.Subscribe(kind, func(ev input.Event) {
		if s.Done() {
			return
		}
		fn(ev)
	})
	s.subs = append(s.subs, sub)
}

// EveryFrame runs fn at the display refresh interval
func (s *Session) EveryFrame(fn func(dt time.Duration)) engine.Handle {
	h := s.env.Scheduler.Frame(s.guardTick(fn))
	s.track(h)
	return h
}

// Every runs fn on a fixed interval, for turn-based games
// The returned handle may be cancelled early; Resolve cancels it otherwise
func (s *Session) Every(d time.Duration, fn func(dt time.Duration)) engine.Handle {
	h := s.env.Scheduler.Every(d, s.guardTick(fn))
	s.track(h)
	return h
}

// After runs fn once after d
func (s *Session) After(d time.Duration, fn func()) engine.Handle {
	h := s.env.Scheduler.After(d, func() {
		if s.Done() {
			return
		}
		fn()
	})
	s.track(h)
	return h
}

// Deadline resolves with win after budget measured from Begin
func (s *Session) Deadline(budget time.Duration, win func() bool) {
	s.After(s.Remaining(budget), func() { s.Resolve(win()) })
}

// Paint clears the surface, then hands it to draw
func (s *Session) Paint(draw func(surf render.Surface)) {
	s.env.Surface.Clear()
	draw(s.env.Surface)
}

func (s *Session) guardTick(fn func(time.Duration)) func(time.Duration) {
	return func(dt time.Duration) {
		if s.Done() {
			return
		}
		fn(dt)
	}
}

func (s *Session) track(h engine.Handle) {
	// Drop finished one-shots so long sessions don't accumulate handles
	live := s.tasks[:0]
	for _, t := range s.tasks {
		if t.Active() {
			live = append(live, t)
		}
	}
	s.tasks = append(live, h)
}

// Win resolves the session as won
func (s *Session) Win() bool { return s.Resolve(true) }

// Lose resolves the session as lost
func (s *Session) Lose() bool { return s.Resolve(false) }

// Resolve detaches every subscription and task, resets the mirror transform, then posts the
// outcome callback to the scheduler. Only the first call has any effect
func (s *Session) Resolve(win bool) bool {
	if s.Done() {
		return false
	}
	s.outcome = Lost
	if win {
		s.outcome = Won
	}

	for _, t := range s.tasks {
		t.Cancel()
	}
	s.tasks = nil
	for _, sub := range s.subs {
		if !s.env.Input.Unsubscribe(sub) {
			log.Printf("minigame: %s subscription already detached", s.id)
		}
	}
	s.subs = nil
	s.env.Surface.SetMirror(false)

	log.Printf("minigame: %s %s after %v", s.id, s.outcome, s.Elapsed())

	cb := s.onLose
	if win {
		cb = s.onWin
	}
	s.env.Scheduler.Post(cb)
	return true
}
