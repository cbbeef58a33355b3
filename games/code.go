package games

import (
	"strconv"
	"strings"
	"time"

	"github.com/lixenwraith/party-arcade/config"
	"github.com/lixenwraith/party-arcade/input"
	"github.com/lixenwraith/party-arcade/minigame"
	"github.com/lixenwraith/party-arcade/parameter"
	"github.com/lixenwraith/party-arcade/render"
)

// CodeBreaker: memorize a briefly shown code and type it back
// Under glitch a typed digit may be rewired; the rewired digit is the one checked
type CodeBreaker struct{}

func (CodeBreaker) ID() minigame.ID       { return minigame.CodeBreaker }
func (CodeBreaker) Name() string          { return minigame.CodeBreaker.String() }
func (CodeBreaker) Budget() time.Duration { return parameter.CodeBudget }
func (CodeBreaker) Run(env minigame.Env, cfg config.RunConfig, onWin, onLose func()) {
	newCodeRound(env, cfg, onWin, onLose).start()
}

type codeRound struct {
	s      *minigame.Session
	glitch *minigame.Glitch

	secret []int
	typed  []int // digits as pressed, for display only
}

func newCodeRound(env minigame.Env, cfg config.RunConfig, onWin, onLose func()) *codeRound {
	s := minigame.Begin(minigame.CodeBreaker, env, onWin, onLose)
	r := &codeRound{
		s:      s,
		glitch: minigame.NewGlitch(s, cfg, minigame.GlitchRemap),
		secret: make([]int, parameter.CodeLength),
	}
	for i := range r.secret {
		r.secret[i] = env.Rand.IntN(10)
	}
	return r
}

func (r *codeRound) start() {
	r.s.OnKeyDown(func(ev input.Event) {
		if d, ok := ev.Digit(); ok {
			r.enter(d)
		}
	})
	r.s.Every(parameter.CodeTick, r.tick)
	r.s.Deadline(parameter.CodeBudget, never)
	r.draw()
}

// enter checks the actual digit against the next code position
func (r *codeRound) enter(pressed int) {
	actual := r.glitch.RemapDigit(pressed)
	pos := len(r.typed)
	r.typed = append(r.typed, pressed)
	if actual != r.secret[pos] {
		r.s.Lose()
		return
	}
	if len(r.typed) == len(r.secret) {
		r.s.Win()
	}
}

func (r *codeRound) tick(dt time.Duration) {
	r.glitch.Tick(dt)
	r.draw()
}

func (r *codeRound) draw() {
	pal := r.s.Env().Palette
	r.s.Paint(func(surf render.Surface) {
		w, h := surf.Size()
		code := digits(r.secret)
		if r.s.Elapsed() >= parameter.CodeReveal {
			code = strings.Repeat("* ", len(r.secret))
		}
		line := "CODE  " + code
		surf.SetFill(pal.Goal)
		surf.Text((w-len(line))/2, h/2-2, line)

		entry := "INPUT " + digits(r.typed) + strings.Repeat("_ ", len(r.secret)-len(r.typed))
		surf.SetFill(pal.Player)
		surf.Text((w-len(entry))/2, h/2, entry)

		if r.glitch.Active() {
			surf.SetFill(pal.Hazard)
			surf.Text((w-14)/2, h/2+2, "WIRES CROSSED!")
		}
		drawHUD(surf, pal, "DEFUSE", r.s.Remaining(parameter.CodeBudget))
	})
}

func digits(ds []int) string {
	var b strings.Builder
	for _, d := range ds {
		b.WriteString(strconv.Itoa(d))
		b.WriteByte(' ')
	}
	return b.String()
}
