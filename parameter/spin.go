package parameter

import "time"

// Spin dodge
const (
	SpinBudget = 15 * time.Second

	SpinBlades       = 3
	SpinBladeRadius  = 1.5
	SpinAngularSpeed = 2.2 // rad/s

	// Orbit radius as a fraction of the short arena side, breathing by SpinOrbitSwing
	SpinOrbitFraction = 0.35
	SpinOrbitSwing    = 0.4
	SpinOrbitPeriod   = 3 * time.Second

	SpinPlayerRadius = 0.8
	SpinPlayerStep   = 1.0
	SpinStartInset   = 2.0
)
