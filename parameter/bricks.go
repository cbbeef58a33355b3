package parameter

import "time"

// Brick breaker
const (
	BrickBudget  = 20 * time.Second
	BrickCount   = 6
	BrickWidth   = 5.0
	BrickHeight  = 1.0
	BrickGap     = 1.0
	BrickRow     = 3.0
	PaddleWidth  = 8.0
	PaddleStep   = 2.0
	PaddleInset  = 2.0 // rows above the bottom edge
	BallRadius   = 0.5
	BallSpeedX   = 8.0
	BallSpeedY   = -10.0
	BallMaxSteer = 0.8 // fraction of speed redirected by off-centre paddle hits
)
