package minigame

import (
	"math"
	"time"

	"github.com/lixenwraith/party-arcade/config"
	"github.com/lixenwraith/party-arcade/parameter"
	"github.com/lixenwraith/party-arcade/vmath"
)

// GlitchClass is the one kind of perturbation a minigame injects in glitch mode
type GlitchClass uint8

const (
	GlitchMirror  GlitchClass = iota // horizontal screen mirroring
	GlitchImpulse                    // random physics impulse
	GlitchRemap                      // control remapping
	GlitchFlicker                    // parts of the scene blink out
)

func (c GlitchClass) String() string {
	switch c {
	case GlitchMirror:
		return "mirror"
	case GlitchImpulse:
		return "impulse"
	case GlitchRemap:
		return "remap"
	case GlitchFlicker:
		return "flicker"
	default:
		return "unknown"
	}
}

// Glitch rolls a per-tick chance of starting a perturbation of a fixed class
// Disabled glitches never fire
type Glitch struct {
	class   GlitchClass
	enabled bool
	session *Session
	left    time.Duration
	shift   int
}

// NewGlitch creates the glitch source for a session
func NewGlitch(s *Session, cfg config.RunConfig, class GlitchClass) *Glitch {
	return &Glitch{class: class, enabled: cfg.Glitch, session: s}
}

// Class returns the perturbation class
func (g *Glitch) Class() GlitchClass {
	return g.class
}

// Tick ages the active perturbation and rolls for a new one
// Returns true when a perturbation starts on this tick
func (g *Glitch) Tick(dt time.Duration) bool {
	if !g.enabled {
		return false
	}
	if g.left > 0 {
		g.left -= dt
		if g.left <= 0 {
			g.left = 0
			g.apply(false)
		}
		return false
	}

	// Chance is tuned per frame; scale for coarser ticks
	chance := parameter.GlitchChance * float64(dt) / float64(parameter.FrameReference)
	if g.session.env.Rand.Float64() >= chance {
		return false
	}
	g.left = parameter.GlitchDuration
	g.shift = 1 + g.session.env.Rand.IntN(9)
	g.apply(true)
	return true
}

// Active reports whether a perturbation is in effect
func (g *Glitch) Active() bool {
	return g.left > 0
}

// Impulse returns a random vector of the configured magnitude
func (g *Glitch) Impulse() vmath.Vec2 {
	a := g.session.env.Rand.Float64() * 2 * math.Pi
	return vmath.Polar(vmath.Vec2{}, parameter.GlitchImpulse, a)
}

// RemapDigit returns the digit actually entered while a remap is active
func (g *Glitch) RemapDigit(d int) int {
	if g.class != GlitchRemap || !g.Active() {
		return d
	}
	return (d + g.shift) % 10
}

// RemapX swaps horizontal direction while a remap is active
func (g *Glitch) RemapX(dx int) int {
	if g.class != GlitchRemap || !g.Active() {
		return dx
	}
	return -dx
}

func (g *Glitch) apply(on bool) {
	if g.class == GlitchMirror {
		g.session.env.Surface.SetMirror(on)
	}
}
