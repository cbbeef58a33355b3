package parameter

import "time"

// Ladder climb
const (
	LadderBudget        = 20 * time.Second
	LadderGravity       = 30.0 // cells/s²
	LadderBounceSpeed   = 15.0
	LadderRungSpacing   = 3.0
	LadderRungWidth     = 10.0
	LadderFloorFraction = 0.5 // bottom rung width as a fraction of arena width
	LadderStep          = 2.0
	LadderDrag          = 0.2 // horizontal drift retained per second
	LadderTopRow        = 4.0 // no rung above this row
	LadderGoalRise      = 2.0 // rows above the top rung that count as the top
	LadderBottomInset   = 2.0
)
