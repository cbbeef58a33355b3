package round

import (
	"github.com/lixenwraith/party-arcade/constants"
	"github.com/lixenwraith/party-arcade/leaderboard"
)

// Trophy is a badge awarded at the end of a run
type Trophy string

const (
	TrophyPerfectRun      Trophy = "Perfect Run"
	TrophySurvivedOneLife Trophy = "Survived One-Life"
	TrophyArcadePro       Trophy = "Arcade Pro"
)

// Trophies returns the badges earned by a finished run, in display order
func Trophies(s *RunState) []Trophy {
	var out []Trophy
	if s.Score == s.Total() {
		out = append(out, TrophyPerfectRun)
	}
	if s.Config.OneLife && !s.OneLifeFailed {
		out = append(out, TrophySurvivedOneLife)
	}
	if s.Score > constants.ArcadeProThreshold {
		out = append(out, TrophyArcadePro)
	}
	return out
}

// Summary is what the end screen shows
type Summary struct {
	Name      string
	Score     int
	Total     int
	Trophies  []Trophy
	Board     []leaderboard.Entry
	Highlight int // index into Board, -1 when absent
}
