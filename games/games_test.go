package games

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/lixenwraith/party-arcade/config"
	"github.com/lixenwraith/party-arcade/engine"
	"github.com/lixenwraith/party-arcade/input"
	"github.com/lixenwraith/party-arcade/minigame"
	"github.com/lixenwraith/party-arcade/render"
)

const slack = 500 * time.Millisecond

type harness struct {
	sim    *engine.Simulator
	bus    *input.Bus
	rec    *render.Recorder
	env    minigame.Env
	wins   int
	losses int
}

func newHarness(w, h int, seed uint64) *harness {
	sim := engine.NewSimulator()
	bus := input.NewBus()
	rec := render.NewRecorder(w, h)
	return &harness{
		sim: sim,
		bus: bus,
		rec: rec,
		env: minigame.Env{
			Scheduler: sim.Scheduler,
			Input:     bus,
			Surface:   rec,
			Palette:   render.PaletteFor(config.ThemeNeon),
			Rand:      rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		},
	}
}

func (h *harness) onWin()  { h.wins++ }
func (h *harness) onLose() { h.losses++ }

func (h *harness) outcomes() int { return h.wins + h.losses }

func (h *harness) resolved() bool { return h.outcomes() > 0 }

// randomEvent picks any event a player could produce on the surface
func randomEvent(rng *rand.Rand, w, h int) input.Event {
	switch rng.IntN(4) {
	case 0:
		keys := []input.Key{input.KeyUp, input.KeyDown, input.KeyLeft, input.KeyRight, input.KeySpace, input.KeyEnter}
		return input.Press(keys[rng.IntN(len(keys))])
	case 1:
		return input.RuneDown(rune('0' + rng.IntN(10)))
	case 2:
		return input.Click(rng.IntN(w), rng.IntN(h))
	default:
		return input.Press(input.Key(1 + rng.IntN(4)))
	}
}

// checkDetached verifies nothing of the round survives its outcome
func checkDetached(t *testing.T, h *harness, name string) {
	t.Helper()
	if h.bus.Len() != 0 {
		t.Errorf("%s: %d subscriptions left after outcome", name, h.bus.Len())
	}
	if n := h.sim.Scheduler.Pending(); n != 0 {
		t.Errorf("%s: %d scheduled tasks left after outcome", name, n)
	}
	if h.rec.Mirrored() {
		t.Errorf("%s: mirror left on after outcome", name)
	}

	h.rec.Reset()
	h.sim.Run(time.Second)
	if ops := len(h.rec.Ops()); ops != 0 {
		t.Errorf("%s: %d draw ops after outcome", name, ops)
	}
	if h.outcomes() != 1 {
		t.Errorf("%s: %d outcomes after settling, want 1", name, h.outcomes())
	}
}

func TestEveryKindResolvesOnceWhenIdle(t *testing.T) {
	configs := []config.RunConfig{
		{},
		{Inverted: true, Glitch: true, Theme: config.ThemeRetro},
	}
	sizes := [][2]int{{40, 20}, {60, 24}}

	for _, g := range Roster() {
		for _, cfg := range configs {
			for _, size := range sizes {
				h := newHarness(size[0], size[1], 7)
				g.Run(h.env, cfg, h.onWin, h.onLose)
				if h.resolved() {
					t.Fatalf("%s: outcome delivered synchronously from Run", g.Name())
				}

				took, ok := h.sim.RunUntil(g.Budget()+slack, h.resolved)
				if !ok {
					t.Errorf("%s %v %v: no outcome within %v", g.Name(), cfg.Modifiers(), size, g.Budget()+slack)
					continue
				}
				if took > g.Budget()+slack {
					t.Errorf("%s: resolved after %v", g.Name(), took)
				}
				checkDetached(t, h, g.Name())
			}
		}
	}
}

func TestEveryKindResolvesOnceUnderRandomInput(t *testing.T) {
	for _, g := range Roster() {
		for seed := uint64(1); seed <= 6; seed++ {
			h := newHarness(40, 20, seed)
			cfg := config.RunConfig{Glitch: seed%2 == 0, Inverted: seed%3 == 0}
			rng := rand.New(rand.NewPCG(seed, 99))
			g.Run(h.env, cfg, h.onWin, h.onLose)

			limit := g.Budget() + slack
			for h.sim.Elapsed() < limit && !h.resolved() {
				for range rng.IntN(3) {
					h.bus.Dispatch(randomEvent(rng, 40, 20))
				}
				h.sim.Run(h.sim.Step)
			}
			if !h.resolved() {
				t.Errorf("%s seed %d: no outcome within %v", g.Name(), seed, limit)
				continue
			}

			// Input after the outcome must not reach the finished round
			for range 50 {
				h.bus.Dispatch(randomEvent(rng, 40, 20))
			}
			checkDetached(t, h, g.Name())
		}
	}
}

func TestFramesStartWithClear(t *testing.T) {
	for _, g := range Roster() {
		h := newHarness(40, 20, 3)
		g.Run(h.env, config.RunConfig{}, h.onWin, h.onLose)
		h.sim.Run(200 * time.Millisecond)

		ops := h.rec.Ops()
		if len(ops) == 0 {
			t.Errorf("%s: nothing drawn", g.Name())
			continue
		}
		if ops[0].Kind != render.OpClear {
			t.Errorf("%s: first op %v, want clear", g.Name(), ops[0].Kind)
		}
	}
}

func TestRosterCoversEveryID(t *testing.T) {
	seen := map[minigame.ID]bool{}
	for _, g := range Roster() {
		if seen[g.ID()] {
			t.Errorf("Duplicate roster entry %s", g.ID())
		}
		seen[g.ID()] = true
		if g.Budget() <= 0 || g.Budget() > 20*time.Second {
			t.Errorf("%s: budget %v", g.Name(), g.Budget())
		}
	}
	for _, id := range minigame.IDs() {
		if !seen[id] {
			t.Errorf("Roster missing %s", id)
		}
		if _, ok := ByID(id); !ok {
			t.Errorf("ByID(%s) not found", id)
		}
	}
}
