package games

import (
	"fmt"
	"strconv"
	"time"

	"github.com/lixenwraith/party-arcade/config"
	"github.com/lixenwraith/party-arcade/engine"
	"github.com/lixenwraith/party-arcade/input"
	"github.com/lixenwraith/party-arcade/minigame"
	"github.com/lixenwraith/party-arcade/parameter"
	"github.com/lixenwraith/party-arcade/render"
)

// PatternMemory: watch tiles light up in order, then repeat the sequence
// Tiles are numbered 1-9 and may be chosen by digit key or click
type PatternMemory struct{}

func (PatternMemory) ID() minigame.ID       { return minigame.PatternMemory }
func (PatternMemory) Name() string          { return minigame.PatternMemory.String() }
func (PatternMemory) Budget() time.Duration { return parameter.PatternBudget }
func (PatternMemory) Run(env minigame.Env, cfg config.RunConfig, onWin, onLose func()) {
	newPatternRound(env, cfg, onWin, onLose).start()
}

type patternRound struct {
	s      *minigame.Session
	glitch *minigame.Glitch

	x0, y0   int
	sequence []int
	shown    int // tiles already presented
	lit      int // tile currently lit, 0 for none
	entered  int
	showing  bool
	ticker   engine.Handle
}

func newPatternRound(env minigame.Env, cfg config.RunConfig, onWin, onLose func()) *patternRound {
	s := minigame.Begin(minigame.PatternMemory, env, onWin, onLose)
	w, h := env.Surface.Size()
	gw, gh := patternGridSize()
	r := &patternRound{
		s:        s,
		glitch:   minigame.NewGlitch(s, cfg, minigame.GlitchFlicker),
		x0:       max((w-gw)/2, 0),
		y0:       max((h-gh)/2, 1),
		sequence: make([]int, parameter.PatternLength),
		showing:  true,
	}
	prev := 0
	for i := range r.sequence {
		// No immediate repeats, so every step is a visible flash
		n := 1 + env.Rand.IntN(9)
		for n == prev {
			n = 1 + env.Rand.IntN(9)
		}
		r.sequence[i], prev = n, n
	}
	return r
}

func patternGridSize() (w, h int) {
	n := parameter.PatternGridSize
	return n*parameter.PatternTileWidth + (n-1)*parameter.PatternTileGap,
		n*parameter.PatternTileHeight + (n-1)*parameter.PatternTileGap
}

func (r *patternRound) start() {
	r.light()
	r.ticker = r.s.Every(parameter.PatternShowOn+parameter.PatternShowGap, func(time.Duration) {
		r.shown++
		if r.shown < len(r.sequence) {
			r.light()
			return
		}
		r.showing = false
		r.ticker.Cancel()
	})
	r.s.OnKeyDown(func(ev input.Event) {
		if d, ok := ev.Digit(); ok && d > 0 {
			r.press(d)
		}
	})
	r.s.OnClick(func(ev input.Event) {
		if n := r.tileAt(ev.X, ev.Y); n > 0 {
			r.press(n)
		}
	})
	r.s.EveryFrame(r.frame)
	r.s.Deadline(parameter.PatternBudget, never)
}

func (r *patternRound) light() {
	r.lit = r.sequence[r.shown]
	r.s.After(parameter.PatternShowOn, func() { r.lit = 0 })
}

// press checks one tile against the sequence; the first wrong tile loses
func (r *patternRound) press(n int) {
	if r.showing {
		return
	}
	if n != r.sequence[r.entered] {
		r.s.Lose()
		return
	}
	r.entered++
	if r.entered == len(r.sequence) {
		r.s.Win()
	}
}

func (r *patternRound) tileRect(n int) (x, y, w, h int) {
	i := n - 1
	col, row := i%parameter.PatternGridSize, i/parameter.PatternGridSize
	x = r.x0 + col*(parameter.PatternTileWidth+parameter.PatternTileGap)
	y = r.y0 + row*(parameter.PatternTileHeight+parameter.PatternTileGap)
	return x, y, parameter.PatternTileWidth, parameter.PatternTileHeight
}

// tileAt returns the tile under a cell, 0 for gaps and outside the grid
func (r *patternRound) tileAt(cx, cy int) int {
	for n := 1; n <= parameter.PatternGridSize*parameter.PatternGridSize; n++ {
		x, y, w, h := r.tileRect(n)
		if cx >= x && cx < x+w && cy >= y && cy < y+h {
			return n
		}
	}
	return 0
}

func (r *patternRound) frame(dt time.Duration) {
	r.glitch.Tick(dt)
	pal := r.s.Env().Palette
	r.s.Paint(func(surf render.Surface) {
		if !r.glitch.Active() {
			for n := 1; n <= parameter.PatternGridSize*parameter.PatternGridSize; n++ {
				x, y, w, h := r.tileRect(n)
				if n == r.lit {
					surf.SetFill(pal.Highlight)
					surf.FillRect(float64(x), float64(y), float64(w), float64(h))
				} else {
					surf.SetStroke(pal.Dim)
					surf.StrokeRect(float64(x), float64(y), float64(w), float64(h))
				}
				surf.SetFill(pal.Text)
				surf.Text(x+w/2, y+h/2, strconv.Itoa(n))
			}
		}
		status := "WATCH"
		if !r.showing {
			status = fmt.Sprintf("REPEAT %d/%d", r.entered, len(r.sequence))
		}
		drawHUD(surf, pal, status, r.s.Remaining(parameter.PatternBudget))
	})
}
