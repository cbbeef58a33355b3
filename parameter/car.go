package parameter

import "time"

// Stop the car
const (
	CarBudget      = 15 * time.Second
	CarSpeed       = 18.0 // cells/s
	CarBrake       = 24.0 // cells/s²
	CarMinCruise   = 4.0  // glitch impulses never slow an unbraked car below this
	CarLength      = 4.0
	CarStartX      = 2.0
	CarTolerance   = 1.5
	CarLineMin     = 0.55 // stop line range as fractions of arena width
	CarLineMax     = 0.8
	CarSettleDelay = 500 * time.Millisecond
)
