package physics

import (
	"math"
	"testing"
	"time"

	"github.com/lixenwraith/party-arcade/vmath"
)

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestIntegrateIsSemiImplicit(t *testing.T) {
	pos, vel := vmath.V(0, 0), vmath.V(1, 0)
	Integrate(&pos, &vel, vmath.V(0, 10), 500*time.Millisecond)

	if !near(vel.Y, 5) || !near(vel.X, 1) {
		t.Errorf("vel = %v, want (1, 5)", vel)
	}
	// Position uses the updated velocity
	if !near(pos.X, 0.5) || !near(pos.Y, 2.5) {
		t.Errorf("pos = %v, want (0.5, 2.5)", pos)
	}
}

func TestDeflectKeepsSpeed(t *testing.T) {
	vel := vmath.V(3, 4)
	Deflect(&vel, vmath.V(-6, 0))
	if !near(vel.Len(), 5) {
		t.Errorf("speed = %v, want 5", vel.Len())
	}
	if vel.X >= 0 {
		t.Errorf("Expected heading turned left, got %v", vel)
	}
}

func TestReflectBounds(t *testing.T) {
	tests := []struct {
		name    string
		pos     vmath.Vec2
		vel     vmath.Vec2
		want    bool
		wantPos float64
		wantVel float64
	}{
		{"below min", vmath.V(-1, 0), vmath.V(-2, 0), true, 0, 2},
		{"above max", vmath.V(11, 0), vmath.V(2, 0), true, 10, -2},
		{"inside", vmath.V(5, 0), vmath.V(-2, 0), false, 5, -2},
		// Already heading inward stays inward
		{"outside moving in", vmath.V(-1, 0), vmath.V(3, 0), true, 0, 3},
	}

	for _, tt := range tests {
		pos, vel := tt.pos, tt.vel
		got := ReflectBoundsX(&pos, &vel, 0, 10)
		if got != tt.want || pos.X != tt.wantPos || vel.X != tt.wantVel {
			t.Errorf("%s: got %v pos=%v vel=%v", tt.name, got, pos.X, vel.X)
		}
	}

	pos, vel := vmath.V(0, 0.5), vmath.V(0, -4)
	if !ReflectBoundsY(&pos, &vel, 1, math.Inf(1)) || pos.Y != 1 || vel.Y != 4 {
		t.Errorf("ReflectBoundsY: pos=%v vel=%v", pos, vel)
	}
}

func TestCapSpeed(t *testing.T) {
	vel := vmath.V(30, 40)
	if !CapSpeed(&vel, 10) || !near(vel.Len(), 10) {
		t.Errorf("Expected clamp to 10, got %v", vel)
	}
	slow := vmath.V(1, 1)
	if CapSpeed(&slow, 10) || slow != vmath.V(1, 1) {
		t.Errorf("Slow velocity changed: %v", slow)
	}
}

func TestDampAndDecelerate(t *testing.T) {
	if f := DampFactor(0.25, 500*time.Millisecond); !near(f, 0.5) {
		t.Errorf("DampFactor = %v, want 0.5", f)
	}
	if s := Decelerate(3, 10, time.Second); s != 0 {
		t.Errorf("Decelerate overshot zero: %v", s)
	}
	if s := Decelerate(10, 4, 500*time.Millisecond); !near(s, 8) {
		t.Errorf("Decelerate = %v, want 8", s)
	}
}

func TestAttraction(t *testing.T) {
	pull := Attraction(vmath.V(0, 0), vmath.V(4, 0), 32, 1)
	if !near(pull.X, 2) || pull.Y != 0 {
		t.Errorf("pull = %v, want (2, 0)", pull)
	}
	push := Attraction(vmath.V(0, 0), vmath.V(4, 0), -32, 1)
	if push.X >= 0 {
		t.Errorf("Negative strength should repel, got %v", push)
	}
	// Floor keeps the force finite on top of the center
	if f := Attraction(vmath.V(1, 1), vmath.V(1, 1), 10, 4); f != (vmath.Vec2{}) {
		t.Errorf("Coincident points should give zero, got %v", f)
	}
	if f := Attraction(vmath.V(0, 0), vmath.V(0.5, 0), 8, 4); !near(f.X, 2) {
		t.Errorf("Floored force = %v, want 2", f.X)
	}
}
