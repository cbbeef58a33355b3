// Package physics holds the point-mass helpers shared by the arcade kinds.
//
// Positions and velocities are vmath.Vec2 in cell units and cells per second.
// Helpers mutate through pointers so a game keeps its own pos/vel fields.
package physics

import (
	"math"
	"time"

	"github.com/lixenwraith/party-arcade/vmath"
)

// Integrate performs one semi-implicit Euler step: v = v + a*dt; p = p + v*dt
func Integrate(pos, vel *vmath.Vec2, accel vmath.Vec2, dt time.Duration) {
	sec := dt.Seconds()
	*vel = vel.Add(accel.Scale(sec))
	*pos = pos.Add(vel.Scale(sec))
}

// Accelerate applies a over dt without moving
func Accelerate(vel *vmath.Vec2, accel vmath.Vec2, dt time.Duration) {
	*vel = vel.Add(accel.Scale(dt.Seconds()))
}

// ApplyImpulse adds a velocity delta
func ApplyImpulse(vel *vmath.Vec2, dv vmath.Vec2) {
	*vel = vel.Add(dv)
}

// Deflect adds dv but keeps the previous speed, so only the heading changes
func Deflect(vel *vmath.Vec2, dv vmath.Vec2) {
	speed := vel.Len()
	*vel = vel.Add(dv).Normalize().Scale(speed)
}

// DampFactor converts a per-second retention factor into the factor for dt
func DampFactor(perSecond float64, dt time.Duration) float64 {
	return math.Pow(perSecond, dt.Seconds())
}

// ReflectBoundsX keeps pos.X within [minX, maxX], turning vel.X back inward
// Returns true if a reflection occurred
func ReflectBoundsX(pos, vel *vmath.Vec2, minX, maxX float64) bool {
	switch {
	case pos.X < minX:
		pos.X, vel.X = minX, math.Abs(vel.X)
	case pos.X > maxX:
		pos.X, vel.X = maxX, -math.Abs(vel.X)
	default:
		return false
	}
	return true
}

// ReflectBoundsY keeps pos.Y within [minY, maxY], turning vel.Y back inward
func ReflectBoundsY(pos, vel *vmath.Vec2, minY, maxY float64) bool {
	switch {
	case pos.Y < minY:
		pos.Y, vel.Y = minY, math.Abs(vel.Y)
	case pos.Y > maxY:
		pos.Y, vel.Y = maxY, -math.Abs(vel.Y)
	default:
		return false
	}
	return true
}
