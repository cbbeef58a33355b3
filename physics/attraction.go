package physics

import "github.com/lixenwraith/party-arcade/vmath"

// Attraction returns the inverse-square pull on a body at pos toward center
// Negative strength repels. minDistSq floors the squared distance so the force stays finite near the center
func Attraction(pos, center vmath.Vec2, strength, minDistSq float64) vmath.Vec2 {
	d := center.Sub(pos)
	distSq := max(d.X*d.X+d.Y*d.Y, minDistSq)
	return d.Normalize().Scale(strength / distSq)
}
