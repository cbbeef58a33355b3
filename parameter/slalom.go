package parameter

import "time"

// Slalom
const (
	SlalomBudget      = 20 * time.Second
	SlalomGates       = 8
	SlalomGapWidth    = 6
	SlalomGateSpacing = 6.0 // rows between consecutive gates
	SlalomScrollSpeed = 8.0 // rows/s
	SlalomLaneWidth   = 2
	SlalomPlayerInset = 3 // rows above the bottom edge
)
