package vmath

// Rect is an axis-aligned box with top-left corner (X, Y)
type Rect struct {
	X, Y, W, H float64
}

// Center returns the box midpoint
func (r Rect) Center() Vec2 { return Vec2{r.X + r.W/2, r.Y + r.H/2} }

// Contains reports whether p lies inside the box (right/bottom edges exclusive)
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// CirclesOverlap reports distance < sum of radii
func CirclesOverlap(a Vec2, ra float64, b Vec2, rb float64) bool {
	sum := ra + rb
	return a.DistSq(b) < sum*sum
}

// RectsOverlap reports axis-aligned box intersection with positive area
func RectsOverlap(a, b Rect) bool {
	return a.X < b.X+b.W && b.X < a.X+a.W && a.Y < b.Y+b.H && b.Y < a.Y+a.H
}

// CircleRectOverlap reports whether a circle intersects a box, using the closest box point
func CircleRectOverlap(c Vec2, r float64, box Rect) bool {
	closest := Vec2{Clamp(c.X, box.X, box.X+box.W), Clamp(c.Y, box.Y, box.Y+box.H)}
	return c.DistSq(closest) < r*r
}

// Reflect mirrors velocity v about a surface with unit normal n
func Reflect(v, n Vec2) Vec2 {
	return v.Sub(n.Scale(2 * v.Dot(n)))
}

// BounceAxis returns the normal of the box face a circle at c most likely struck
// Horizontal faces win ties so balls bounce vertically off brick rows
func BounceAxis(c Vec2, box Rect) Vec2 {
	center := box.Center()
	dx := (c.X - center.X) / (box.W / 2)
	dy := (c.Y - center.Y) / (box.H / 2)
	if abs(dx) > abs(dy) {
		if dx < 0 {
			return Vec2{-1, 0}
		}
		return Vec2{1, 0}
	}
	if dy < 0 {
		return Vec2{0, -1}
	}
	return Vec2{0, 1}
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
