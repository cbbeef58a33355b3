// Package minigame defines the contract every round implements and the lifecycle helper
// that enforces it: one outcome, posted after all input subscriptions and scheduled work
// the round registered are cancelled.
package minigame

import (
	"math/rand/v2"
	"time"

	"github.com/lixenwraith/party-arcade/config"
	"github.com/lixenwraith/party-arcade/engine"
	"github.com/lixenwraith/party-arcade/input"
	"github.com/lixenwraith/party-arcade/render"
)

// Env carries the collaborators shared by all minigames
// Only the active minigame may touch them
type Env struct {
	Scheduler *engine.Scheduler
	Input     *input.Bus
	Surface   render.Surface
	Palette   render.Palette
	Rand      *rand.Rand
}

// Minigame is one playable kind
// Run starts a fresh instance and returns immediately; exactly one of onWin or onLose is
// invoked later from the scheduler, never from inside Run
type Minigame interface {
	ID() ID
	Name() string
	Budget() time.Duration
	Run(env Env, cfg config.RunConfig, onWin, onLose func())
}
