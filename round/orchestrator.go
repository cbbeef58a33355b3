// Package round sequences minigames into a scored run.
//
// The orchestrator owns the only RunState, moves it through a validated phase table and
// treats a minigame reporting an outcome outside its active round as a fatal contract
// violation.
package round

import (
	"context"
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/party-arcade/config"
	"github.com/lixenwraith/party-arcade/constants"
	"github.com/lixenwraith/party-arcade/engine"
	"github.com/lixenwraith/party-arcade/leaderboard"
	"github.com/lixenwraith/party-arcade/minigame"
	"github.com/lixenwraith/party-arcade/render"
	"github.com/lixenwraith/party-arcade/status"
)

// Leaderboard persists finished scores
type Leaderboard interface {
	Save(ctx context.Context, name string, score int) error
	Load(ctx context.Context) ([]leaderboard.Entry, error)
}

// Orchestrator runs the start, preview, play, transition and end cycle
// All methods must be called from the goroutine that advances the scheduler
type Orchestrator struct {
	env    minigame.Env
	roster map[minigame.ID]minigame.Minigame
	order  []minigame.ID
	ui     UI
	board  Leaderboard
	cues   Cues
	ctx    context.Context

	phase      Phase
	phaseStart time.Time
	state      *RunState
	summary    *Summary
	active     minigame.Minigame
	timer      engine.Handle
	countdown  engine.Handle

	statWon      *atomic.Int64
	statLost     *atomic.Int64
	statFinished *atomic.Int64
}

// Option configures an Orchestrator
type Option func(*Orchestrator)

// WithUI sets the presentation shell
func WithUI(ui UI) Option {
	return func(o *Orchestrator) { o.ui = ui }
}

// WithLeaderboard sets score persistence; without it scores are not saved
func WithLeaderboard(b Leaderboard) Option {
	return func(o *Orchestrator) { o.board = b }
}

// WithCues sets the sound cue player
func WithCues(c Cues) Option {
	return func(o *Orchestrator) { o.cues = c }
}

// WithContext sets the context for leaderboard I/O
func WithContext(ctx context.Context) Option {
	return func(o *Orchestrator) { o.ctx = ctx }
}

// WithRegistry publishes round counters
func WithRegistry(reg *status.Registry) Option {
	return func(o *Orchestrator) {
		o.statWon = reg.Ints.Get("rounds.won")
		o.statLost = reg.Ints.Get("rounds.lost")
		o.statFinished = reg.Ints.Get("runs.finished")
	}
}

// New creates an orchestrator in PhaseIdle over the given roster
func New(env minigame.Env, roster []minigame.Minigame, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		env:          env,
		roster:       make(map[minigame.ID]minigame.Minigame, len(roster)),
		ui:           nopUI{},
		cues:         nopCues{},
		ctx:          context.Background(),
		statWon:      new(atomic.Int64),
		statLost:     new(atomic.Int64),
		statFinished: new(atomic.Int64),
	}
	for _, g := range roster {
		o.roster[g.ID()] = g
		o.order = append(o.order, g.ID())
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Phase returns the current phase
func (o *Orchestrator) Phase() Phase {
	return o.phase
}

// PhaseElapsed returns scheduler time spent in the current phase
func (o *Orchestrator) PhaseElapsed() time.Duration {
	return o.env.Scheduler.Now().Sub(o.phaseStart)
}

// State returns a copy of the run state, false before the first Submit or after Restart
func (o *Orchestrator) State() (RunState, bool) {
	if o.state == nil {
		return RunState{}, false
	}
	return *o.state, true
}

// Summary returns the end-of-run summary once Finished
func (o *Orchestrator) Summary() (Summary, bool) {
	if o.summary == nil {
		return Summary{}, false
	}
	return *o.summary, true
}

// Active returns the minigame of the current round, nil outside a run
func (o *Orchestrator) Active() minigame.Minigame {
	return o.active
}

// Config returns the run configuration, zero outside a run
func (o *Orchestrator) Config() config.RunConfig {
	if o.state == nil {
		return config.RunConfig{}
	}
	return o.state.Config
}

// Begin leaves Idle and shows the start screen
func (o *Orchestrator) Begin() error {
	if !o.transition(PhaseAwaitingStart) {
		return ErrWrongPhase
	}
	o.ui.Show(ScreenStart)
	o.refreshBoard(-1)
	return nil
}

// Submit validates the player name and starts a run
// An invalid name leaves every piece of state untouched
func (o *Orchestrator) Submit(name string, cfg config.RunConfig) error {
	if o.phase != PhaseAwaitingStart {
		return ErrWrongPhase
	}
	norm, err := NormalizeName(name)
	if err != nil {
		return err
	}

	o.state = NewRunState(norm, cfg, o.shuffle())
	o.summary = nil
	o.env.Palette = render.PaletteFor(cfg.Theme)
	log.Printf("round: run %s started by %s, modifiers %v", o.state.ID, norm, cfg.Modifiers())

	o.ui.Hide(ScreenStart)
	o.preview()
	return nil
}

// Restart returns from the end screen to the start screen, discarding the run
func (o *Orchestrator) Restart() error {
	if o.phase != PhaseFinished {
		return ErrWrongPhase
	}
	o.ui.Hide(ScreenEnd)
	o.state = nil
	o.summary = nil
	o.active = nil
	o.mustTransition(PhaseAwaitingStart)
	o.ui.Show(ScreenStart)
	o.refreshBoard(-1)
	return nil
}

// shuffle returns a Fisher-Yates permutation of the roster
func (o *Orchestrator) shuffle() []minigame.ID {
	seq := make([]minigame.ID, len(o.order))
	copy(seq, o.order)
	o.env.Rand.Shuffle(len(seq), func(i, j int) { seq[i], seq[j] = seq[j], seq[i] })
	return seq
}

func (o *Orchestrator) preview() {
	o.mustTransition(PhaseRoundPreview)
	o.active = o.roster[o.state.Current()]

	o.ui.SetRoundName(o.active.Name())
	o.ui.SetProgress(o.state.CurrentRoundIndex+1, o.state.Total())
	o.ui.SetCountdown(constants.PreviewDelay)
	o.ui.Show(ScreenPreview)
	o.cues.PlayTick()

	o.countdown = o.env.Scheduler.Every(constants.CountdownStep, func(time.Duration) {
		o.ui.SetCountdown(max(constants.PreviewDelay-o.PhaseElapsed(), 0))
	})
	o.timer = o.env.Scheduler.After(constants.PreviewDelay, o.activate)
}

func (o *Orchestrator) activate() {
	o.countdown.Cancel()
	o.ui.SetCountdown(0)
	o.ui.Hide(ScreenPreview)
	o.mustTransition(PhaseRoundActive)

	o.env.Surface.SetMirror(false)
	o.env.Surface.Clear()

	g := o.active
	index := o.state.CurrentRoundIndex
	o.active.Run(o.env, o.state.Config,
		func() { o.outcome(g, index, true) },
		func() { o.outcome(g, index, false) },
	)
}

// outcome is the continuation handed to the active minigame
func (o *Orchestrator) outcome(g minigame.Minigame, index int, won bool) {
	if o.phase != PhaseRoundActive || o.state == nil || o.state.CurrentRoundIndex != index {
		panic(fmt.Sprintf("round: %s reported an outcome for round %d during %s", g.Name(), index+1, o.phase))
	}

	if won {
		o.state.RecordWin()
		o.statWon.Add(1)
		o.cues.PlayWin()
	} else {
		o.state.RecordLoss()
		o.statLost.Add(1)
		o.cues.PlayLose()
	}
	log.Printf("round: %s won=%v score=%d/%d", g.Name(), won, o.state.Score, o.state.CurrentRoundIndex)

	o.mustTransition(PhaseRoundTransition)
	o.timer = o.env.Scheduler.After(constants.TransitionDelay, o.advance)
}

// advance is the termination check run once per round boundary
func (o *Orchestrator) advance() {
	if o.state.Done() {
		o.finish()
		return
	}
	o.preview()
}

func (o *Orchestrator) finish() {
	o.mustTransition(PhaseFinished)
	o.active = nil
	o.env.Surface.Clear()

	s := o.state
	o.summary = &Summary{
		Name:      s.Username,
		Score:     s.Score,
		Total:     s.Total(),
		Trophies:  Trophies(s),
		Highlight: -1,
	}
	o.statFinished.Add(1)
	log.Printf("round: run %s finished %d/%d trophies %v", s.ID, s.Score, s.Total(), o.summary.Trophies)

	if o.board != nil {
		if err := o.board.Save(o.ctx, s.Username, s.Score); err != nil {
			log.Printf("round: save score: %v", err)
		}
	}

	o.ui.SetFinalScore(s.Score, s.Total())
	o.ui.SetTrophies(o.summary.Trophies)
	o.refreshBoard(0)
	o.ui.Show(ScreenEnd)
}

// refreshBoard reloads the leaderboard into the UI
// With highlight >= 0 the entry matching the finished run is marked
func (o *Orchestrator) refreshBoard(highlight int) {
	if o.board == nil {
		return
	}
	entries, err := o.board.Load(o.ctx)
	if err != nil {
		log.Printf("round: load leaderboard: %v", err)
		entries = nil
	}
	idx := -1
	if highlight >= 0 && o.summary != nil {
		idx = leaderboard.Highlight(entries, o.summary.Name, o.summary.Score)
		o.summary.Board = entries
		o.summary.Highlight = idx
	}
	o.ui.SetLeaderboard(entries, idx)
}

// transition attempts to move to a new phase with validation
func (o *Orchestrator) transition(to Phase) bool {
	if !CanTransition(o.phase, to) {
		return false
	}
	o.phase = to
	o.phaseStart = o.env.Scheduler.Now()
	return true
}

func (o *Orchestrator) mustTransition(to Phase) {
	if !o.transition(to) {
		panic(fmt.Sprintf("round: invalid transition %s -> %s", o.phase, to))
	}
}
