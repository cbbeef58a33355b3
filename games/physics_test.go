package games

import (
	"testing"
	"time"

	"github.com/lixenwraith/party-arcade/config"
	"github.com/lixenwraith/party-arcade/input"
	"github.com/lixenwraith/party-arcade/maze"
	"github.com/lixenwraith/party-arcade/parameter"
	"github.com/lixenwraith/party-arcade/vmath"
)

func TestStopTheCarTimedBrakeWins(t *testing.T) {
	for seed := uint64(1); seed <= 4; seed++ {
		h := newHarness(40, 20, seed)
		r := newCarRound(h.env, config.RunConfig{}, h.onWin, h.onLose)
		r.start()

		stopping := parameter.CarSpeed * parameter.CarSpeed / (2 * parameter.CarBrake)
		braked := false
		for h.sim.Elapsed() < parameter.CarBudget && !h.resolved() {
			if !braked && r.front() >= r.line-stopping {
				h.bus.Dispatch(input.Press(input.KeySpace))
				braked = true
			}
			h.sim.Run(h.sim.Step)
		}
		if h.wins != 1 {
			t.Errorf("seed %d: wins=%d losses=%d front=%.2f line=%.2f", seed, h.wins, h.losses, r.front(), r.line)
		}
	}
}

func TestStopTheCarIdleOvershoots(t *testing.T) {
	h := newHarness(40, 20, 1)
	r := newCarRound(h.env, config.RunConfig{}, h.onWin, h.onLose)
	r.start()

	took, ok := h.sim.RunUntil(parameter.CarBudget, h.resolved)
	if !ok || h.losses != 1 {
		t.Fatalf("wins=%d losses=%d, want loss", h.wins, h.losses)
	}
	if took > 3*time.Second {
		t.Errorf("Overshoot took %v", took)
	}
}

func TestStopTheCarEarlyStopLosesAfterSettling(t *testing.T) {
	h := newHarness(40, 20, 1)
	r := newCarRound(h.env, config.RunConfig{}, h.onWin, h.onLose)
	r.start()
	h.bus.Dispatch(input.Press(input.KeySpace))

	h.sim.Run(time.Second)
	if h.resolved() {
		t.Fatal("Resolved before the settle delay elapsed")
	}
	h.sim.Run(parameter.CarSettleDelay)
	if h.losses != 1 {
		t.Fatalf("wins=%d losses=%d, want loss for stopping short", h.wins, h.losses)
	}
}

func TestStopTheCarGlitchNeverStopsUnbrakedCar(t *testing.T) {
	h := newHarness(40, 20, 1)
	r := newCarRound(h.env, config.RunConfig{Glitch: true}, h.onWin, h.onLose)
	r.start()
	r.nudge(-10 * parameter.CarSpeed)
	if r.speed != parameter.CarMinCruise {
		t.Fatalf("speed = %v, want floor %v", r.speed, parameter.CarMinCruise)
	}
	h.sim.Run(time.Second)
	if r.settling || h.resolved() {
		t.Errorf("Unbraked car came to rest: settling=%v wins=%d losses=%d", r.settling, h.wins, h.losses)
	}

	r.braking = true
	r.nudge(-10 * parameter.CarSpeed)
	if r.speed != 0 {
		t.Errorf("Braking car should be able to stop, speed = %v", r.speed)
	}
}

func TestSpinDodgeIdleSurvives(t *testing.T) {
	h := newHarness(40, 20, 1)
	SpinDodge{}.Run(h.env, config.RunConfig{}, h.onWin, h.onLose)

	took, ok := h.sim.RunUntil(parameter.SpinBudget+slack, h.resolved)
	if !ok || h.wins != 1 {
		t.Fatalf("wins=%d losses=%d, want win on timeout", h.wins, h.losses)
	}
	if took < parameter.SpinBudget {
		t.Errorf("Won after %v, before the budget", took)
	}
}

func TestSpinDodgeTeleportIsOneShot(t *testing.T) {
	h := newHarness(40, 20, 1)
	r := newSpinRound(h.env, config.RunConfig{}, h.onWin, h.onLose)
	r.start()
	before := r.player

	h.bus.Dispatch(input.Press(input.KeySpace))
	want := vmath.V(40-before.X, 20-before.Y)
	if r.player != want {
		t.Fatalf("Teleported to %v, want %v", r.player, want)
	}
	h.bus.Dispatch(input.Press(input.KeySpace))
	if r.player != want {
		t.Error("Second teleport should be ignored")
	}
}

func TestSpinDodgeBladeContactLoses(t *testing.T) {
	h := newHarness(40, 20, 1)
	r := newSpinRound(h.env, config.RunConfig{}, h.onWin, h.onLose)
	r.start()
	r.player = r.blades(0)[0]

	h.sim.Run(50 * time.Millisecond)
	if h.losses != 1 {
		t.Fatalf("wins=%d losses=%d, want loss on contact", h.wins, h.losses)
	}
}

func TestAsteroidsTimeoutWithoutQuotaLoses(t *testing.T) {
	h := newHarness(40, 20, 1)
	Asteroids{}.Run(h.env, config.RunConfig{}, h.onWin, h.onLose)

	took, ok := h.sim.RunUntil(parameter.AsteroidBudget+slack, h.resolved)
	if !ok || h.losses != 1 {
		t.Fatalf("wins=%d losses=%d, want loss", h.wins, h.losses)
	}
	if took < parameter.AsteroidBudget {
		t.Errorf("Lost after %v, before the budget", took)
	}
}

func TestAsteroidsQuotaWins(t *testing.T) {
	h := newHarness(40, 20, 1)
	r := newAsteroidRound(h.env, config.RunConfig{}, h.onWin, h.onLose)
	r.start()

	// Park a rock on each bullet's path
	for range parameter.AsteroidQuota {
		r.rocks = append(r.rocks, rock{pos: r.ship.Add(vmath.V(0, -3))})
		r.bullets = append(r.bullets, r.ship.Add(vmath.V(0, -3)))
		h.sim.Run(20 * time.Millisecond)
	}
	h.sim.Run(50 * time.Millisecond)
	if h.wins != 1 {
		t.Fatalf("wins=%d losses=%d kills=%d, want win", h.wins, h.losses, r.kills)
	}
}

func TestSlalomThroughEveryGapWins(t *testing.T) {
	h := newHarness(40, 20, 3)
	r := newSlalomRound(h.env, config.RunConfig{}, h.onWin, h.onLose)
	r.start()

	for h.sim.Elapsed() < parameter.SlalomBudget && !h.resolved() {
		for _, g := range r.gates {
			if !g.cleared {
				r.playerX = g.gapX + 1
				break
			}
		}
		h.sim.Run(h.sim.Step)
	}
	if h.wins != 1 || r.passed != parameter.SlalomGates {
		t.Fatalf("wins=%d losses=%d passed=%d", h.wins, h.losses, r.passed)
	}
}

func TestSlalomMissedGateLoses(t *testing.T) {
	h := newHarness(40, 20, 3)
	r := newSlalomRound(h.env, config.RunConfig{}, h.onWin, h.onLose)
	r.start()
	r.gates[0].gapX = 30
	r.playerX = 0

	h.sim.Run(3 * time.Second)
	if h.losses != 1 {
		t.Fatalf("wins=%d losses=%d, want loss", h.wins, h.losses)
	}
}

func TestBrickBreakerBallOutLoses(t *testing.T) {
	h := newHarness(40, 20, 1)
	r := newBrickRound(h.env, config.RunConfig{}, h.onWin, h.onLose)
	r.start()
	r.ball = vmath.V(1, 18.5)
	r.vel = vmath.V(0, 10)
	r.paddle.X = 30

	h.sim.Run(500 * time.Millisecond)
	if h.losses != 1 {
		t.Fatalf("wins=%d losses=%d, want loss", h.wins, h.losses)
	}
}

func TestBrickBreakerLastBrickWins(t *testing.T) {
	h := newHarness(40, 20, 1)
	r := newBrickRound(h.env, config.RunConfig{}, h.onWin, h.onLose)
	r.start()
	r.bricks = r.bricks[:1]
	b := r.bricks[0]
	r.ball = vmath.V(b.X+b.W/2, b.Y+b.H+1)
	r.vel = vmath.V(0, -10)

	h.sim.Run(300 * time.Millisecond)
	if h.wins != 1 {
		t.Fatalf("wins=%d losses=%d, want win", h.wins, h.losses)
	}
}

func TestPaddleReflectsBallUpward(t *testing.T) {
	h := newHarness(40, 20, 1)
	r := newBrickRound(h.env, config.RunConfig{}, h.onWin, h.onLose)
	r.start()
	r.ball = vmath.V(r.paddle.Center().X, r.paddle.Y-0.6)
	r.vel = vmath.V(0, 10)

	h.sim.Run(50 * time.Millisecond)
	if r.vel.Y >= 0 {
		t.Errorf("Ball still moving down: %v", r.vel)
	}
}

func TestMagneticMazeGoalAndBounds(t *testing.T) {
	h := newHarness(40, 20, 1)
	r := newMazeRound(h.env, config.RunConfig{}, h.onWin, h.onLose)
	r.start()
	r.magnets = nil
	r.walls = maze.Layout{}
	r.pos = vmath.V(r.goal.X-0.5, r.goal.Center().Y)
	r.vel = vmath.V(5, 0)
	h.sim.Run(300 * time.Millisecond)
	if h.wins != 1 {
		t.Fatalf("wins=%d losses=%d, want win", h.wins, h.losses)
	}

	h = newHarness(40, 20, 1)
	r = newMazeRound(h.env, config.RunConfig{}, h.onWin, h.onLose)
	r.start()
	r.magnets = nil
	r.walls = maze.Layout{}
	r.pos = vmath.V(0.5, 10)
	r.vel = vmath.V(-5, 0)
	h.sim.Run(300 * time.Millisecond)
	if h.losses != 1 {
		t.Fatalf("wins=%d losses=%d, want loss", h.wins, h.losses)
	}
}

func TestMagneticMazeLayout(t *testing.T) {
	for seed := uint64(1); seed <= 5; seed++ {
		h := newHarness(40, 20, seed)
		r := newMazeRound(h.env, config.RunConfig{}, h.onWin, h.onLose)
		if len(r.walls.Path) == 0 {
			t.Fatalf("seed %d: goal unreachable", seed)
		}
		if r.wallAt(r.pos) || r.goal.Contains(r.pos) {
			t.Fatalf("seed %d: bad start %v", seed, r.pos)
		}
		if len(r.magnets) != parameter.MazeMagnets {
			t.Fatalf("seed %d: %d magnets", seed, len(r.magnets))
		}
		for _, m := range r.magnets {
			if r.wallAt(m.pos) || r.goal.Contains(m.pos) {
				t.Errorf("seed %d: magnet placed at %v", seed, m.pos)
			}
		}
	}
}

func TestMagneticMazeMagnetsAvoidSolution(t *testing.T) {
	for seed := uint64(1); seed <= 20; seed++ {
		h := newHarness(40, 20, seed)
		r := newMazeRound(h.env, config.RunConfig{}, h.onWin, h.onLose)

		onPath := make(map[vmath.Vec2]bool)
		for _, c := range r.walls.Path {
			onPath[r.cellRect(c).Center()] = true
		}
		offRooms := 0
		for _, c := range r.walls.Rooms() {
			if c != r.walls.Start && c != r.walls.End && !onPath[r.cellRect(c).Center()] {
				offRooms++
			}
		}
		if offRooms < parameter.MazeMagnets {
			continue
		}
		for _, m := range r.magnets {
			if onPath[m.pos] {
				t.Errorf("seed %d: magnet on the solution at %v with %d free rooms", seed, m.pos, offRooms)
			}
		}
	}
}

func TestMagneticMazeWallBounces(t *testing.T) {
	h := newHarness(40, 20, 1)
	r := newMazeRound(h.env, config.RunConfig{}, h.onWin, h.onLose)
	grid := make([][]bool, parameter.MazeGridRows)
	for y := range grid {
		grid[y] = make([]bool, parameter.MazeGridCols)
	}
	grid[3][4] = maze.Wall
	r.walls = maze.Layout{Grid: grid}

	wall := r.cellRect(vmath.Cell{X: 4, Y: 3})
	r.pos = vmath.V(wall.X-0.2, wall.Center().Y)
	r.vel = vmath.V(6, 0)
	r.move(vmath.V(0.5, 0))
	if r.wallAt(r.pos) {
		t.Fatalf("Moved into wall: %v", r.pos)
	}
	if r.vel.X != -6*parameter.MazeWallBounce {
		t.Errorf("vel.X = %v, want reflected", r.vel.X)
	}

	r.vel = vmath.V(0, 3)
	before := r.pos
	r.move(vmath.V(0, 0.5))
	if r.pos.Y != before.Y+0.5 || r.vel.Y != 3 {
		t.Errorf("Open axis blocked: pos=%v vel=%v", r.pos, r.vel)
	}
}

func TestMagnetPolarity(t *testing.T) {
	h := newHarness(40, 20, 1)
	r := newMazeRound(h.env, config.RunConfig{}, h.onWin, h.onLose)
	r.pos = vmath.V(10, 10)
	r.magnets = []magnet{{pos: vmath.V(15, 10), polarity: 1}}
	if r.force().X <= 0 {
		t.Error("Attracting magnet should pull toward itself")
	}
	r.magnets[0].polarity = -1
	if r.force().X >= 0 {
		t.Error("Repelling magnet should push away")
	}
}

func TestLadderIdleBouncesUntilTimeout(t *testing.T) {
	h := newHarness(40, 20, 1)
	LadderClimb{}.Run(h.env, config.RunConfig{}, h.onWin, h.onLose)

	took, ok := h.sim.RunUntil(parameter.LadderBudget+slack, h.resolved)
	if !ok || h.losses != 1 || took < parameter.LadderBudget {
		t.Fatalf("wins=%d losses=%d after %v, want timeout loss", h.wins, h.losses, took)
	}
}

func TestLadderClimbToTopWins(t *testing.T) {
	h := newHarness(40, 20, 6)
	r := newLadderRound(h.env, config.RunConfig{}, h.onWin, h.onLose)
	r.start()

	// Hold the player over the rung above the one it last bounced from
	base := r.pos.Y
	for h.sim.Elapsed() < parameter.LadderBudget && !h.resolved() {
		if r.vel.Y == -parameter.LadderBounceSpeed {
			base = r.pos.Y
		}
		for _, rung := range r.rungs {
			if rung.Y < base-0.5 {
				r.pos.X = rung.Center().X
				break
			}
		}
		h.sim.Run(h.sim.Step)
	}
	if h.wins != 1 {
		t.Fatalf("wins=%d losses=%d pos=%v, want win", h.wins, h.losses, r.pos)
	}
}

func TestLadderFallLoses(t *testing.T) {
	h := newHarness(40, 20, 1)
	r := newLadderRound(h.env, config.RunConfig{}, h.onWin, h.onLose)
	r.start()
	r.pos = vmath.V(1, 19)
	r.vel = vmath.V(0, 5)

	h.sim.Run(500 * time.Millisecond)
	if h.losses != 1 {
		t.Fatalf("wins=%d losses=%d, want loss", h.wins, h.losses)
	}
}
