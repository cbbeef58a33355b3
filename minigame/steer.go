package minigame

import (
	"github.com/lixenwraith/party-arcade/config"
	"github.com/lixenwraith/party-arcade/input"
)

// Steer maps an arrow key to a direction, flipping its sign for inverted controls
func Steer(ev input.Event, cfg config.RunConfig) (dx, dy int, ok bool) {
	dx, dy, ok = ev.Direction()
	if ok && cfg.Inverted {
		dx, dy = -dx, -dy
	}
	return dx, dy, ok
}
