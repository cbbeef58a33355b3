package games

import (
	"time"

	"github.com/lixenwraith/party-arcade/config"
	"github.com/lixenwraith/party-arcade/input"
	"github.com/lixenwraith/party-arcade/minigame"
	"github.com/lixenwraith/party-arcade/parameter"
	"github.com/lixenwraith/party-arcade/physics"
	"github.com/lixenwraith/party-arcade/render"
	"github.com/lixenwraith/party-arcade/vmath"
)

// LadderClimb: bounce from rung to rung up to the top of the field
// Rungs only catch a falling player; dropping below the field loses
type LadderClimb struct{}

func (LadderClimb) ID() minigame.ID       { return minigame.LadderClimb }
func (LadderClimb) Name() string          { return minigame.LadderClimb.String() }
func (LadderClimb) Budget() time.Duration { return parameter.LadderBudget }
func (LadderClimb) Run(env minigame.Env, cfg config.RunConfig, onWin, onLose func()) {
	newLadderRound(env, cfg, onWin, onLose).start()
}

type ladderRound struct {
	s      *minigame.Session
	cfg    config.RunConfig
	glitch *minigame.Glitch

	w, h  float64
	rungs []vmath.Rect // bottom first
	goalY float64
	pos   vmath.Vec2
	vel   vmath.Vec2
}

func newLadderRound(env minigame.Env, cfg config.RunConfig, onWin, onLose func()) *ladderRound {
	s := minigame.Begin(minigame.LadderClimb, env, onWin, onLose)
	w, h := env.Surface.Size()
	fw, fh := float64(w), float64(h)

	floorW := fw * parameter.LadderFloorFraction
	floorY := fh - parameter.LadderBottomInset
	r := &ladderRound{
		s:      s,
		cfg:    cfg,
		glitch: minigame.NewGlitch(s, cfg, minigame.GlitchImpulse),
		w:      fw,
		h:      fh,
		rungs:  []vmath.Rect{{X: (fw - floorW) / 2, Y: floorY, W: floorW}},
		pos:    vmath.V(fw/2, floorY),
		vel:    vmath.V(0, -parameter.LadderBounceSpeed),
	}
	// Rungs alternate sides and never span the centre column, so climbing means steering
	rungW := min(parameter.LadderRungWidth, fw/2-1)
	slack := max(fw/2-1-rungW, 0)
	left := env.Rand.IntN(2) == 0
	for y := floorY - parameter.LadderRungSpacing; y >= parameter.LadderTopRow; y -= parameter.LadderRungSpacing {
		x := env.Rand.Float64() * slack
		if !left {
			x = fw/2 + 1 + x
		}
		r.rungs = append(r.rungs, vmath.Rect{X: x, Y: y, W: rungW})
		left = !left
	}
	r.goalY = r.rungs[len(r.rungs)-1].Y - parameter.LadderGoalRise
	return r
}

func (r *ladderRound) start() {
	r.s.OnKeyDown(func(ev input.Event) {
		if dx, _, ok := minigame.Steer(ev, r.cfg); ok {
			r.pos.X = vmath.Clamp(r.pos.X+float64(dx)*parameter.LadderStep, 0, r.w-1)
		}
	})
	r.s.EveryFrame(r.frame)
	r.s.Deadline(parameter.LadderBudget, never)
}

func (r *ladderRound) frame(dt time.Duration) {
	if r.glitch.Tick(dt) {
		physics.ApplyImpulse(&r.vel, vmath.V(r.glitch.Impulse().X, 0))
	}

	prevY := r.pos.Y
	r.vel.X *= physics.DampFactor(parameter.LadderDrag, dt)
	physics.Integrate(&r.pos, &r.vel, vmath.V(0, parameter.LadderGravity), dt)
	r.pos.X = vmath.Clamp(r.pos.X, 0, r.w-1)

	if r.vel.Y > 0 {
		for _, rung := range r.rungs {
			if prevY <= rung.Y && r.pos.Y >= rung.Y && r.pos.X >= rung.X && r.pos.X <= rung.X+rung.W {
				r.pos.Y = rung.Y
				r.vel.Y = -parameter.LadderBounceSpeed
				break
			}
		}
	}

	if r.pos.Y <= r.goalY {
		r.s.Win()
		return
	}
	if r.pos.Y > r.h {
		r.s.Lose()
		return
	}

	pal := r.s.Env().Palette
	r.s.Paint(func(surf render.Surface) {
		surf.SetFill(pal.Goal)
		surf.FillRect(0, r.goalY, r.w, 0.5)
		surf.SetFill(pal.Accent)
		for _, rung := range r.rungs {
			surf.FillRect(rung.X, rung.Y, rung.W, 1)
		}
		surf.SetFill(pal.Player)
		surf.FillRect(r.pos.X, r.pos.Y-1, 1, 1)
		drawHUD(surf, pal, "CLIMB", r.s.Remaining(parameter.LadderBudget))
	})
}
