package games

import (
	"math"
	"time"

	"github.com/lixenwraith/party-arcade/config"
	"github.com/lixenwraith/party-arcade/input"
	"github.com/lixenwraith/party-arcade/minigame"
	"github.com/lixenwraith/party-arcade/parameter"
	"github.com/lixenwraith/party-arcade/physics"
	"github.com/lixenwraith/party-arcade/render"
)

// StopTheCar: brake once so the car's nose comes to rest on the line
// The stop is judged a short while after the car settles
type StopTheCar struct{}

func (StopTheCar) ID() minigame.ID       { return minigame.StopTheCar }
func (StopTheCar) Name() string          { return minigame.StopTheCar.String() }
func (StopTheCar) Budget() time.Duration { return parameter.CarBudget }
func (StopTheCar) Run(env minigame.Env, cfg config.RunConfig, onWin, onLose func()) {
	newCarRound(env, cfg, onWin, onLose).start()
}

type carRound struct {
	s      *minigame.Session
	glitch *minigame.Glitch

	w, road  float64
	x, speed float64
	line     float64
	braking  bool
	settling bool
}

func newCarRound(env minigame.Env, cfg config.RunConfig, onWin, onLose func()) *carRound {
	s := minigame.Begin(minigame.StopTheCar, env, onWin, onLose)
	w, h := env.Surface.Size()
	fw := float64(w)
	return &carRound{
		s:      s,
		glitch: minigame.NewGlitch(s, cfg, minigame.GlitchImpulse),
		w:      fw,
		road:   float64(h / 2),
		x:      parameter.CarStartX,
		speed:  parameter.CarSpeed,
		line:   fw * (parameter.CarLineMin + env.Rand.Float64()*(parameter.CarLineMax-parameter.CarLineMin)),
	}
}

func (r *carRound) start() {
	r.s.OnKeyDown(func(ev input.Event) {
		if ev.Key == input.KeySpace {
			r.braking = true
		}
	})
	r.s.EveryFrame(r.frame)
	r.s.Deadline(parameter.CarBudget, never)
}

func (r *carRound) front() float64 {
	return r.x + parameter.CarLength
}

// nudge applies a glitch impulse along the road
// Only the brake may bring the car to rest
func (r *carRound) nudge(dv float64) {
	floor := parameter.CarMinCruise
	if r.braking {
		floor = 0
	}
	r.speed = max(r.speed+dv, floor)
}

func (r *carRound) frame(dt time.Duration) {
	sec := dt.Seconds()
	if r.glitch.Tick(dt) && r.speed > 0 {
		r.nudge(r.glitch.Impulse().X)
	}
	if r.braking {
		r.speed = physics.Decelerate(r.speed, parameter.CarBrake, dt)
	}
	r.x += r.speed * sec

	if r.front() > r.line+parameter.CarTolerance || r.front() > r.w {
		r.s.Lose()
		return
	}
	if r.speed == 0 && !r.settling {
		r.settling = true
		r.s.After(parameter.CarSettleDelay, func() {
			r.s.Resolve(math.Abs(r.front()-r.line) <= parameter.CarTolerance)
		})
	}

	pal := r.s.Env().Palette
	r.s.Paint(func(surf render.Surface) {
		surf.SetFill(pal.Dim)
		surf.FillRect(0, r.road+1, r.w, 1)
		surf.SetFill(pal.Goal)
		surf.FillRect(r.line, r.road-2, 0.5, 3)
		surf.SetFill(pal.Player)
		surf.FillRect(r.x, r.road, parameter.CarLength, 1)
		status := "SPACE: BRAKE"
		if r.braking {
			status = "BRAKING"
		}
		drawHUD(surf, pal, status, r.s.Remaining(parameter.CarBudget))
	})
}
