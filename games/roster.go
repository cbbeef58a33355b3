// Package games holds the ten minigame kinds. Each Run builds a fresh per-run round that
// lives only until its session resolves.
package games

import (
	"github.com/lixenwraith/party-arcade/minigame"
)

// Roster returns one of every minigame kind in ID order
func Roster() []minigame.Minigame {
	return []minigame.Minigame{
		Snake{},
		Asteroids{},
		SpinDodge{},
		Slalom{},
		BrickBreaker{},
		PatternMemory{},
		MagneticMaze{},
		LadderClimb{},
		CodeBreaker{},
		StopTheCar{},
	}
}

// ByID returns the roster entry for id
func ByID(id minigame.ID) (minigame.Minigame, bool) {
	for _, g := range Roster() {
		if g.ID() == id {
			return g, true
		}
	}
	return nil, false
}
