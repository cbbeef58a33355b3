package games

import (
	"math"
	"time"

	"github.com/lixenwraith/party-arcade/config"
	"github.com/lixenwraith/party-arcade/input"
	"github.com/lixenwraith/party-arcade/maze"
	"github.com/lixenwraith/party-arcade/minigame"
	"github.com/lixenwraith/party-arcade/parameter"
	"github.com/lixenwraith/party-arcade/physics"
	"github.com/lixenwraith/party-arcade/render"
	"github.com/lixenwraith/party-arcade/vmath"
)

// MagneticMaze: thrust a particle through a walled maze of attracting and repelling magnets
// into the goal room. Walls bounce; leaving the arena loses
type MagneticMaze struct{}

func (MagneticMaze) ID() minigame.ID       { return minigame.MagneticMaze }
func (MagneticMaze) Name() string          { return minigame.MagneticMaze.String() }
func (MagneticMaze) Budget() time.Duration { return parameter.MazeBudget }
func (MagneticMaze) Run(env minigame.Env, cfg config.RunConfig, onWin, onLose func()) {
	newMazeRound(env, cfg, onWin, onLose).start()
}

type magnet struct {
	pos      vmath.Vec2
	polarity float64 // +1 attracts, -1 repels
}

type mazeRound struct {
	s      *minigame.Session
	cfg    config.RunConfig
	glitch *minigame.Glitch

	arena   vmath.Rect
	cellW   float64
	cellH   float64
	walls   maze.Layout
	goal    vmath.Rect
	magnets []magnet
	pos     vmath.Vec2
	vel     vmath.Vec2
}

func newMazeRound(env minigame.Env, cfg config.RunConfig, onWin, onLose func()) *mazeRound {
	s := minigame.Begin(minigame.MagneticMaze, env, onWin, onLose)
	w, h := env.Surface.Size()
	r := &mazeRound{
		s:      s,
		cfg:    cfg,
		glitch: minigame.NewGlitch(s, cfg, minigame.GlitchImpulse),
		arena:  vmath.Rect{X: 0, Y: 1, W: float64(w), H: float64(h - 1)},
	}
	r.cellW = r.arena.W / parameter.MazeGridCols
	r.cellH = r.arena.H / parameter.MazeGridRows

	// Enter mid-left, exit mid-right; the open outer ring keeps the arena edge deadly
	mid := (parameter.MazeGridRows / 2) | 1
	start := vmath.Cell{X: 1, Y: mid}
	end := vmath.Cell{X: parameter.MazeGridCols - 2, Y: mid}
	r.walls = maze.Generate(maze.Config{
		Width:         parameter.MazeGridCols,
		Height:        parameter.MazeGridRows,
		Braiding:      parameter.MazeBraiding,
		RemoveBorders: true,
		Start:         &start,
		End:           &end,
	}, env.Rand)

	r.goal = r.cellRect(end)
	r.pos = r.cellRect(start).Center()

	// Magnets prefer rooms off the solution path
	onPath := make(map[vmath.Cell]bool, len(r.walls.Path))
	for _, c := range r.walls.Path {
		onPath[c] = true
	}
	var off, on []vmath.Cell
	for _, c := range r.walls.Rooms() {
		switch {
		case c == start || c == end:
		case onPath[c]:
			on = append(on, c)
		default:
			off = append(off, c)
		}
	}
	env.Rand.Shuffle(len(off), func(i, j int) { off[i], off[j] = off[j], off[i] })
	env.Rand.Shuffle(len(on), func(i, j int) { on[i], on[j] = on[j], on[i] })
	rooms := append(off, on...)
	for _, c := range rooms[:min(parameter.MazeMagnets, len(rooms))] {
		polarity := 1.0
		if env.Rand.IntN(2) == 0 {
			polarity = -1
		}
		r.magnets = append(r.magnets, magnet{pos: r.cellRect(c).Center(), polarity: polarity})
	}
	return r
}

// cellRect maps a maze cell onto the arena
func (r *mazeRound) cellRect(c vmath.Cell) vmath.Rect {
	return vmath.Rect{
		X: r.arena.X + float64(c.X)*r.cellW,
		Y: r.arena.Y + float64(c.Y)*r.cellH,
		W: r.cellW,
		H: r.cellH,
	}
}

func (r *mazeRound) wallAt(p vmath.Vec2) bool {
	c := vmath.Cell{
		X: int(math.Floor((p.X - r.arena.X) / r.cellW)),
		Y: int(math.Floor((p.Y - r.arena.Y) / r.cellH)),
	}
	return r.walls.WallAt(c)
}

// move advances one axis at a time so a wall reflects only the blocked component
func (r *mazeRound) move(step vmath.Vec2) {
	if next := vmath.V(r.pos.X+step.X, r.pos.Y); r.wallAt(next) {
		r.vel.X = -r.vel.X * parameter.MazeWallBounce
	} else {
		r.pos = next
	}
	if next := vmath.V(r.pos.X, r.pos.Y+step.Y); r.wallAt(next) {
		r.vel.Y = -r.vel.Y * parameter.MazeWallBounce
	} else {
		r.pos = next
	}
}

func (r *mazeRound) start() {
	r.s.OnKeyDown(func(ev input.Event) {
		if dx, dy, ok := minigame.Steer(ev, r.cfg); ok {
			physics.ApplyImpulse(&r.vel, vmath.V(float64(dx), float64(dy)).Scale(parameter.MazeThrust))
		}
	})
	r.s.EveryFrame(r.frame)
	r.s.Deadline(parameter.MazeBudget, never)
}

// force sums the magnet pulls on the particle
func (r *mazeRound) force() vmath.Vec2 {
	var f vmath.Vec2
	for _, m := range r.magnets {
		f = f.Add(physics.Attraction(r.pos, m.pos, parameter.MazeMagnetForce*m.polarity, parameter.MazeMinDistSq))
	}
	return f
}

func (r *mazeRound) frame(dt time.Duration) {
	sec := dt.Seconds()
	if r.glitch.Tick(dt) {
		physics.ApplyImpulse(&r.vel, r.glitch.Impulse())
	}
	physics.Accelerate(&r.vel, r.force(), dt)
	r.vel = r.vel.Scale(physics.DampFactor(parameter.MazeDamping, dt))
	physics.CapSpeed(&r.vel, parameter.MazeMaxSpeed)
	r.move(r.vel.Scale(sec))

	if !r.arena.Contains(r.pos) {
		r.s.Lose()
		return
	}
	if r.goal.Contains(r.pos) {
		r.s.Win()
		return
	}

	pal := r.s.Env().Palette
	r.s.Paint(func(surf render.Surface) {
		surf.SetFill(pal.Dim)
		for y, row := range r.walls.Grid {
			for x, wall := range row {
				if wall {
					c := r.cellRect(vmath.Cell{X: x, Y: y})
					surf.FillRect(c.X, c.Y, c.W, c.H)
				}
			}
		}
		surf.SetStroke(pal.Goal)
		surf.StrokeRect(r.goal.X, r.goal.Y, r.goal.W, r.goal.H)
		for _, m := range r.magnets {
			surf.SetFill(pal.Accent)
			if m.polarity < 0 {
				surf.SetFill(pal.Hazard)
			}
			surf.FillCircle(m.pos.X, m.pos.Y, parameter.MazeMagnetRadius)
		}
		surf.SetFill(pal.Player)
		surf.FillCircle(r.pos.X, r.pos.Y, parameter.MazePlayerRadius)
		drawHUD(surf, pal, "REACH THE GOAL", r.s.Remaining(parameter.MazeBudget))
	})
}
