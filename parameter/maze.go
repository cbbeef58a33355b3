package parameter

import "time"

// Magnetic maze
const (
	MazeBudget       = 20 * time.Second
	MazeGridCols     = 9 // maze cells laid over the arena, odd
	MazeGridRows     = 7
	MazeBraiding     = 0.5
	MazeMagnets      = 3
	MazeMagnetRadius = 1.0
	MazeMagnetForce  = 40.0 // cells³/s², scaled by 1/d²
	MazeMinDistSq    = 4.0
	MazeThrust       = 3.0 // cells/s per key press
	MazeDamping      = 0.6 // velocity retained per second
	MazeMaxSpeed     = 14.0
	MazeWallBounce   = 0.5 // velocity retained off a wall
	MazePlayerRadius = 0.6
)
