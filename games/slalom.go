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

// Slalom: steer through the gap of every gate scrolling down the course
type Slalom struct{}

func (Slalom) ID() minigame.ID       { return minigame.Slalom }
func (Slalom) Name() string          { return minigame.Slalom.String() }
func (Slalom) Budget() time.Duration { return parameter.SlalomBudget }
func (Slalom) Run(env minigame.Env, cfg config.RunConfig, onWin, onLose func()) {
	newSlalomRound(env, cfg, onWin, onLose).start()
}

type gate struct {
	y       float64
	gapX    int
	cleared bool
}

type slalomRound struct {
	s      *minigame.Session
	cfg    config.RunConfig
	glitch *minigame.Glitch

	w, h    int
	playerX int
	playerY float64
	gates   []gate
	passed  int
}

func newSlalomRound(env minigame.Env, cfg config.RunConfig, onWin, onLose func()) *slalomRound {
	s := minigame.Begin(minigame.Slalom, env, onWin, onLose)
	w, h := env.Surface.Size()
	r := &slalomRound{
		s:       s,
		cfg:     cfg,
		glitch:  minigame.NewGlitch(s, cfg, minigame.GlitchRemap),
		w:       w,
		h:       h,
		playerX: w / 2,
		playerY: float64(h - parameter.SlalomPlayerInset),
		gates:   make([]gate, parameter.SlalomGates),
	}
	span := max(w-parameter.SlalomGapWidth, 1)
	for i := range r.gates {
		r.gates[i] = gate{
			y:    1 - float64(i)*parameter.SlalomGateSpacing,
			gapX: env.Rand.IntN(span),
		}
	}
	return r
}

func (r *slalomRound) start() {
	r.s.OnKeyDown(r.key)
	r.s.EveryFrame(r.frame)
	r.s.Deadline(parameter.SlalomBudget, never)
}

func (r *slalomRound) key(ev input.Event) {
	dx, _, ok := minigame.Steer(ev, r.cfg)
	if !ok || dx == 0 {
		return
	}
	dx = r.glitch.RemapX(dx)
	r.playerX = vmath.ClampInt(r.playerX+dx*parameter.SlalomLaneWidth, 0, r.w-1)
}

func (r *slalomRound) frame(dt time.Duration) {
	r.glitch.Tick(dt)
	for i := range r.gates {
		g := &r.gates[i]
		g.y += parameter.SlalomScrollSpeed * dt.Seconds()
		if g.cleared || g.y < r.playerY {
			continue
		}
		if r.playerX < g.gapX || r.playerX >= g.gapX+parameter.SlalomGapWidth {
			r.s.Lose()
			return
		}
		g.cleared = true
		r.passed++
	}
	if r.passed == len(r.gates) {
		r.s.Win()
		return
	}

	pal := r.s.Env().Palette
	r.s.Paint(func(surf render.Surface) {
		for _, g := range r.gates {
			if g.y < 1 || g.y >= float64(r.h) {
				continue
			}
			surf.SetFill(pal.Hazard)
			if g.cleared {
				surf.SetFill(pal.Dim)
			}
			right := g.gapX + parameter.SlalomGapWidth
			surf.FillRect(0, g.y, float64(g.gapX), 1)
			surf.FillRect(float64(right), g.y, float64(r.w-right), 1)
		}
		surf.SetFill(pal.Player)
		surf.FillRect(float64(r.playerX), r.playerY, 1, 1)
		drawHUD(surf, pal, fmt.Sprintf("GATES %d/%d", r.passed, len(r.gates)),
			r.s.Remaining(parameter.SlalomBudget))
	})
}
