package parameter

import "time"

// Snake grid and pacing
const (
	SnakeBudget   = 20 * time.Second
	SnakeStep     = 200 * time.Millisecond
	SnakeFoodGoal = 3

	// Start cell, snake length 1 heading right
	SnakeStartX = 10
	SnakeStartY = 10

	// SnakePortalInset is the portal distance from the top-left and bottom-right corners
	// Portals sit at (inset, inset) and (cols-1-inset, rows-1-inset)
	SnakePortalInset = 2
)
