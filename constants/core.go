package constants

import "time"

// Game Loop & Engine Timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// StallThreshold is the lag past which a recurring task is treated as stalled
	// Shorter lags replay every missed period
	StallThreshold = 250 * time.Millisecond

	// MaxCatchUpIntervals bounds how many missed periods a recurring task replays after a stall
	MaxCatchUpIntervals = 2

	// EventChannelSize is the buffer between the terminal poller and the main loop
	EventChannelSize = 256
)

// Play area
const (
	// MinSurfaceWidth and MinSurfaceHeight are the smallest play area the minigames are tuned for
	MinSurfaceWidth  = 40
	MinSurfaceHeight = 20

	// StatusRows is the number of terminal rows reserved below the play area
	StatusRows = 1
)
