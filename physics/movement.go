package physics

import (
	"time"

	"github.com/lixenwraith/party-arcade/vmath"
)

// CapSpeed limits the velocity magnitude to maxSpeed
// Returns true if velocity was clamped
func CapSpeed(vel *vmath.Vec2, maxSpeed float64) bool {
	if vel.Len() <= maxSpeed {
		return false
	}
	*vel = vel.ClampLen(maxSpeed)
	return true
}

// Decelerate lowers a scalar speed by rate*dt, stopping at zero
func Decelerate(speed, rate float64, dt time.Duration) float64 {
	return max(speed-rate*dt.Seconds(), 0)
}
