package round

import (
	"time"

	"github.com/lixenwraith/party-arcade/leaderboard"
)

// Screen names one overlay of the presentation shell
type Screen uint8

const (
	ScreenStart Screen = iota
	ScreenPreview
	ScreenEnd
)

func (s Screen) String() string {
	switch s {
	case ScreenStart:
		return "start"
	case ScreenPreview:
		return "preview"
	case ScreenEnd:
		return "end"
	default:
		return "unknown"
	}
}

// UI is the presentation surface the orchestrator drives
type UI interface {
	Show(s Screen)
	Hide(s Screen)
	SetRoundName(name string)
	SetCountdown(left time.Duration)
	SetProgress(round, total int)
	SetFinalScore(score, total int)
	SetTrophies(trophies []Trophy)
	SetLeaderboard(entries []leaderboard.Entry, highlight int)
}

// Cues plays feedback sounds
type Cues interface {
	PlayWin()
	PlayLose()
	PlayTick()
}

type nopUI struct{}

func (nopUI) Show(Screen)                             {}
func (nopUI) Hide(Screen)                             {}
func (nopUI) SetRoundName(string)                     {}
func (nopUI) SetCountdown(time.Duration)              {}
func (nopUI) SetProgress(int, int)                    {}
func (nopUI) SetFinalScore(int, int)                  {}
func (nopUI) SetTrophies([]Trophy)                    {}
func (nopUI) SetLeaderboard([]leaderboard.Entry, int) {}

type nopCues struct{}

func (nopCues) PlayWin()  {}
func (nopCues) PlayLose() {}
func (nopCues) PlayTick() {}
