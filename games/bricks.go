package games

import (
	"fmt"
	"math"
	"time"

	"github.com/lixenwraith/party-arcade/config"
	"github.com/lixenwraith/party-arcade/input"
	"github.com/lixenwraith/party-arcade/minigame"
	"github.com/lixenwraith/party-arcade/parameter"
	"github.com/lixenwraith/party-arcade/physics"
	"github.com/lixenwraith/party-arcade/render"
	"github.com/lixenwraith/party-arcade/vmath"
)

// BrickBreaker: clear a row of bricks without letting the ball past the paddle
type BrickBreaker struct{}

func (BrickBreaker) ID() minigame.ID       { return minigame.BrickBreaker }
func (BrickBreaker) Name() string          { return minigame.BrickBreaker.String() }
func (BrickBreaker) Budget() time.Duration { return parameter.BrickBudget }
func (BrickBreaker) Run(env minigame.Env, cfg config.RunConfig, onWin, onLose func()) {
	newBrickRound(env, cfg, onWin, onLose).start()
}

type brickRound struct {
	s      *minigame.Session
	cfg    config.RunConfig
	glitch *minigame.Glitch

	w, h   float64
	paddle vmath.Rect
	ball   vmath.Vec2
	vel    vmath.Vec2
	bricks []vmath.Rect
}

func newBrickRound(env minigame.Env, cfg config.RunConfig, onWin, onLose func()) *brickRound {
	s := minigame.Begin(minigame.BrickBreaker, env, onWin, onLose)
	w, h := env.Surface.Size()
	fw, fh := float64(w), float64(h)

	py := fh - parameter.PaddleInset
	vx := parameter.BallSpeedX
	if env.Rand.IntN(2) == 0 {
		vx = -vx
	}
	r := &brickRound{
		s:      s,
		cfg:    cfg,
		glitch: minigame.NewGlitch(s, cfg, minigame.GlitchImpulse),
		w:      fw,
		h:      fh,
		paddle: vmath.Rect{X: (fw - parameter.PaddleWidth) / 2, Y: py, W: parameter.PaddleWidth, H: 1},
		ball:   vmath.V(fw/2, py-1.5),
		vel:    vmath.V(vx, parameter.BallSpeedY),
	}

	total := parameter.BrickCount*parameter.BrickWidth + (parameter.BrickCount-1)*parameter.BrickGap
	x0 := max((fw-total)/2, 0)
	for i := range parameter.BrickCount {
		r.bricks = append(r.bricks, vmath.Rect{
			X: x0 + float64(i)*(parameter.BrickWidth+parameter.BrickGap),
			Y: parameter.BrickRow,
			W: parameter.BrickWidth,
			H: parameter.BrickHeight,
		})
	}
	return r
}

func (r *brickRound) start() {
	r.s.OnKeyDown(r.key)
	r.s.EveryFrame(r.frame)
	r.s.Deadline(parameter.BrickBudget, never)
}

func (r *brickRound) key(ev input.Event) {
	if dx, _, ok := minigame.Steer(ev, r.cfg); ok {
		r.paddle.X = vmath.Clamp(r.paddle.X+float64(dx)*parameter.PaddleStep, 0, r.w-r.paddle.W)
	}
}

func (r *brickRound) frame(dt time.Duration) {
	if r.glitch.Tick(dt) {
		physics.Deflect(&r.vel, r.glitch.Impulse())
	}

	rad := parameter.BallRadius
	physics.Integrate(&r.ball, &r.vel, vmath.Vec2{}, dt)

	// Walls; the HUD rows act as the ceiling and the bottom stays open
	physics.ReflectBoundsX(&r.ball, &r.vel, rad, r.w-rad)
	physics.ReflectBoundsY(&r.ball, &r.vel, hudRows+rad, math.Inf(1))

	if r.vel.Y > 0 && vmath.CircleRectOverlap(r.ball, rad, r.paddle) {
		offset := vmath.Clamp((r.ball.X-r.paddle.Center().X)/(r.paddle.W/2), -1, 1)
		speed := r.vel.Len()
		r.vel = vmath.V(offset*parameter.BallMaxSteer, -1).Normalize().Scale(speed)
		r.ball.Y = r.paddle.Y - rad
	}

	for i, b := range r.bricks {
		if !vmath.CircleRectOverlap(r.ball, rad, b) {
			continue
		}
		if n := vmath.BounceAxis(r.ball, b); r.vel.Dot(n) < 0 {
			r.vel = vmath.Reflect(r.vel, n)
		}
		r.bricks = append(r.bricks[:i], r.bricks[i+1:]...)
		if len(r.bricks) == 0 {
			r.s.Win()
			return
		}
		break
	}

	if r.ball.Y-rad > r.h {
		r.s.Lose()
		return
	}

	pal := r.s.Env().Palette
	r.s.Paint(func(surf render.Surface) {
		surf.SetFill(pal.Goal)
		for _, b := range r.bricks {
			surf.FillRect(b.X, b.Y, b.W, b.H)
		}
		surf.SetFill(pal.Player)
		surf.FillRect(r.paddle.X, r.paddle.Y, r.paddle.W, r.paddle.H)
		surf.SetFill(pal.Accent)
		surf.FillCircle(r.ball.X, r.ball.Y, rad)
		drawHUD(surf, pal, fmt.Sprintf("BRICKS %d", len(r.bricks)), r.s.Remaining(parameter.BrickBudget))
	})
}
