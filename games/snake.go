package games

import (
	"fmt"
	"time"

	"github.com/lixenwraith/party-arcade/config"
	"github.com/lixenwraith/party-arcade/input"
	"github.com/lixenwraith/party-arcade/minigame"
	"github.com/lixenwraith/party-arcade/parameter"
	"github.com/lixenwraith/party-arcade/render"
	"github.com/lixenwraith/party-arcade/vmath"
)

// Snake: eat three food cells on a grid with a pair of teleport portals
// Timing out counts as a win
type Snake struct{}

func (Snake) ID() minigame.ID       { return minigame.Snake }
func (Snake) Name() string          { return minigame.Snake.String() }
func (Snake) Budget() time.Duration { return parameter.SnakeBudget }
func (Snake) Run(env minigame.Env, cfg config.RunConfig, onWin, onLose func()) {
	newSnakeRound(env, cfg, onWin, onLose).start()
}

type snakeRound struct {
	s      *minigame.Session
	cfg    config.RunConfig
	glitch *minigame.Glitch

	cols, rows int
	body       []vmath.Cell // head first
	heading    vmath.Cell
	next       vmath.Cell
	food       vmath.Cell
	portals    [2]vmath.Cell
	eaten      int
}

func newSnakeRound(env minigame.Env, cfg config.RunConfig, onWin, onLose func()) *snakeRound {
	s := minigame.Begin(minigame.Snake, env, onWin, onLose)
	cols, rows := env.Surface.Size()
	inset := parameter.SnakePortalInset
	r := &snakeRound{
		s:       s,
		cfg:     cfg,
		glitch:  minigame.NewGlitch(s, cfg, minigame.GlitchMirror),
		cols:    cols,
		rows:    rows,
		body:    []vmath.Cell{{X: parameter.SnakeStartX, Y: parameter.SnakeStartY}},
		heading: vmath.Cell{X: 1},
		next:    vmath.Cell{X: 1},
		portals: [2]vmath.Cell{{X: inset, Y: inset}, {X: cols - 1 - inset, Y: rows - 1 - inset}},
	}
	r.spawnFood()
	return r
}

func (r *snakeRound) start() {
	r.s.OnKeyDown(r.steer)
	r.s.Every(parameter.SnakeStep, func(time.Duration) { r.step() })
	r.s.EveryFrame(r.frame)
	r.s.Deadline(parameter.SnakeBudget, always)
}

// steer queues a turn; reversing onto the body is ignored
func (r *snakeRound) steer(ev input.Event) {
	dx, dy, ok := minigame.Steer(ev, r.cfg)
	if !ok {
		return
	}
	if (dx != 0 && r.heading.X == 0) || (dy != 0 && r.heading.Y == 0) {
		r.next = vmath.Cell{X: dx, Y: dy}
	}
}

func (r *snakeRound) step() {
	r.heading = r.next
	head := r.body[0].Add(r.heading.X, r.heading.Y)
	switch head {
	case r.portals[0]:
		head = r.portals[1]
	case r.portals[1]:
		head = r.portals[0]
	}

	if !r.inField(head) || r.onBody(head, len(r.body)-1) {
		r.s.Lose()
		return
	}

	r.body = append([]vmath.Cell{head}, r.body...)
	if head != r.food {
		r.body = r.body[:len(r.body)-1]
		return
	}
	r.eaten++
	if r.eaten >= parameter.SnakeFoodGoal {
		r.s.Win()
		return
	}
	r.spawnFood()
}

// onBody checks the first n segments; the tail moves out of the way on a non-eating step
func (r *snakeRound) onBody(c vmath.Cell, n int) bool {
	for _, b := range r.body[:n] {
		if b == c {
			return true
		}
	}
	return false
}

// inField reports whether c is on the grid below the HUD
func (r *snakeRound) inField(c vmath.Cell) bool {
	return c.In(r.cols, r.rows) && c.Y >= hudRows
}

func (r *snakeRound) spawnFood() {
	free := make([]vmath.Cell, 0, r.cols*r.rows)
	for y := hudRows; y < r.rows; y++ {
		for x := range r.cols {
			c := vmath.Cell{X: x, Y: y}
			if c == r.portals[0] || c == r.portals[1] || r.onBody(c, len(r.body)) {
				continue
			}
			free = append(free, c)
		}
	}
	r.food = free[r.s.Env().Rand.IntN(len(free))]
}

func (r *snakeRound) frame(dt time.Duration) {
	r.glitch.Tick(dt)
	pal := r.s.Env().Palette
	r.s.Paint(func(surf render.Surface) {
		surf.SetStroke(pal.Accent)
		for _, p := range r.portals {
			surf.StrokeCircle(float64(p.X)+0.5, float64(p.Y)+0.5, 0.5)
		}
		surf.SetFill(pal.Goal)
		surf.FillRect(float64(r.food.X), float64(r.food.Y), 1, 1)
		surf.SetFill(pal.Player)
		for _, b := range r.body {
			surf.FillRect(float64(b.X), float64(b.Y), 1, 1)
		}
		drawHUD(surf, pal, fmt.Sprintf("FOOD %d/%d", r.eaten, parameter.SnakeFoodGoal),
			r.s.Remaining(parameter.SnakeBudget))
	})
}
