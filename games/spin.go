package games

import (
	"math"
	"time"

	"github.com/lixenwraith/party-arcade/config"
	"github.com/lixenwraith/party-arcade/input"
	"github.com/lixenwraith/party-arcade/minigame"
	"github.com/lixenwraith/party-arcade/parameter"
	"github.com/lixenwraith/party-arcade/render"
	"github.com/lixenwraith/party-arcade/vmath"
)

// SpinDodge: survive blades orbiting the arena centre on a breathing radius
// Space teleports once to the point mirrored through the centre
type SpinDodge struct{}

func (SpinDodge) ID() minigame.ID       { return minigame.SpinDodge }
func (SpinDodge) Name() string          { return minigame.SpinDodge.String() }
func (SpinDodge) Budget() time.Duration { return parameter.SpinBudget }
func (SpinDodge) Run(env minigame.Env, cfg config.RunConfig, onWin, onLose func()) {
	newSpinRound(env, cfg, onWin, onLose).start()
}

type spinRound struct {
	s      *minigame.Session
	cfg    config.RunConfig
	glitch *minigame.Glitch

	w, h       float64
	center     vmath.Vec2
	orbit      float64
	player     vmath.Vec2
	teleported bool
}

func newSpinRound(env minigame.Env, cfg config.RunConfig, onWin, onLose func()) *spinRound {
	s := minigame.Begin(minigame.SpinDodge, env, onWin, onLose)
	w, h := env.Surface.Size()
	fw, fh := float64(w), float64(h)
	return &spinRound{
		s:      s,
		cfg:    cfg,
		glitch: minigame.NewGlitch(s, cfg, minigame.GlitchMirror),
		w:      fw,
		h:      fh,
		center: vmath.V(fw/2, fh/2),
		orbit:  parameter.SpinOrbitFraction * min(fw, fh),
		player: vmath.V(parameter.SpinStartInset, parameter.SpinStartInset),
	}
}

func (r *spinRound) start() {
	r.s.OnKeyDown(r.key)
	r.s.EveryFrame(r.frame)
	r.s.Deadline(parameter.SpinBudget, always)
}

func (r *spinRound) key(ev input.Event) {
	if ev.Key == input.KeySpace {
		if !r.teleported {
			r.teleported = true
			r.move(r.center.Scale(2).Sub(r.player))
		}
		return
	}
	if dx, dy, ok := minigame.Steer(ev, r.cfg); ok {
		step := parameter.SpinPlayerStep
		r.move(r.player.Add(vmath.V(float64(dx)*step, float64(dy)*step)))
	}
}

func (r *spinRound) move(p vmath.Vec2) {
	rad := parameter.SpinPlayerRadius
	r.player = vmath.V(vmath.Clamp(p.X, rad, r.w-rad), vmath.Clamp(p.Y, 1+rad, r.h-rad))
}

// blades returns blade centres at time t
func (r *spinRound) blades(t float64) []vmath.Vec2 {
	phase := 2 * math.Pi * t / parameter.SpinOrbitPeriod.Seconds()
	radius := r.orbit * (1 - parameter.SpinOrbitSwing*0.5*(1-math.Cos(phase)))
	out := make([]vmath.Vec2, parameter.SpinBlades)
	for i := range out {
		a := parameter.SpinAngularSpeed*t + float64(i)*2*math.Pi/parameter.SpinBlades
		out[i] = vmath.Polar(r.center, radius, a)
	}
	return out
}

func (r *spinRound) frame(dt time.Duration) {
	r.glitch.Tick(dt)
	blades := r.blades(r.s.Elapsed().Seconds())
	for _, b := range blades {
		if vmath.CirclesOverlap(r.player, parameter.SpinPlayerRadius, b, parameter.SpinBladeRadius) {
			r.s.Lose()
			return
		}
	}

	pal := r.s.Env().Palette
	r.s.Paint(func(surf render.Surface) {
		surf.SetStroke(pal.Dim)
		surf.StrokeCircle(r.center.X, r.center.Y, r.orbit)
		surf.SetFill(pal.Hazard)
		for _, b := range blades {
			surf.FillCircle(b.X, b.Y, parameter.SpinBladeRadius)
		}
		surf.SetFill(pal.Player)
		surf.FillCircle(r.player.X, r.player.Y, parameter.SpinPlayerRadius)
		status := "SPACE: TELEPORT"
		if r.teleported {
			status = "SURVIVE"
		}
		drawHUD(surf, pal, status, r.s.Remaining(parameter.SpinBudget))
	})
}
