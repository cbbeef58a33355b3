package round

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/lixenwraith/party-arcade/config"
	"github.com/lixenwraith/party-arcade/constants"
	"github.com/lixenwraith/party-arcade/minigame"
)

var (
	// ErrInvalidName rejects names that are empty or too long after trimming
	ErrInvalidName = errors.New("round: name must be 1-8 characters")

	// ErrWrongPhase rejects operations not allowed in the current phase
	ErrWrongPhase = errors.New("round: operation not allowed in this phase")
)

// NormalizeName trims and uppercases a player name and checks its length in runes
func NormalizeName(raw string) (string, error) {
	name := strings.ToUpper(strings.TrimSpace(raw))
	n := utf8.RuneCountInString(name)
	if n < constants.NameMinLength || n > constants.NameMaxLength {
		return "", ErrInvalidName
	}
	return name, nil
}

// RunState is the progress of one run
// Only the orchestrator mutates it, between rounds
type RunState struct {
	ID                uuid.UUID
	Username          string
	Score             int
	CurrentRoundIndex int
	OneLifeFailed     bool
	GameSequence      []minigame.ID
	Config            config.RunConfig
}

// NewRunState creates the state for a validated name and a fixed sequence
func NewRunState(name string, cfg config.RunConfig, sequence []minigame.ID) *RunState {
	return &RunState{
		ID:           uuid.New(),
		Username:     name,
		GameSequence: sequence,
		Config:       cfg,
	}
}

// Total returns the number of rounds in the run
func (s *RunState) Total() int {
	return len(s.GameSequence)
}

// Current returns the minigame of the round in progress
func (s *RunState) Current() minigame.ID {
	return s.GameSequence[s.CurrentRoundIndex]
}

// RecordWin scores a won round and advances
func (s *RunState) RecordWin() {
	s.Score++
	s.CurrentRoundIndex++
}

// RecordLoss advances past a lost round, marking a one-life failure
func (s *RunState) RecordLoss() {
	if s.Config.OneLife {
		s.OneLifeFailed = true
	}
	s.CurrentRoundIndex++
}

// Done reports whether the run is over: every round played, or a one-life run lost a round
func (s *RunState) Done() bool {
	return s.CurrentRoundIndex >= len(s.GameSequence) || (s.Config.OneLife && s.OneLifeFailed)
}
