package games

import (
	"fmt"
	"time"

	"github.com/lixenwraith/party-arcade/config"
	"github.com/lixenwraith/party-arcade/input"
	"github.com/lixenwraith/party-arcade/minigame"
	"github.com/lixenwraith/party-arcade/parameter"
	"github.com/lixenwraith/party-arcade/physics"
	"github.com/lixenwraith/party-arcade/render"
	"github.com/lixenwraith/party-arcade/vmath"
)

// Asteroids: shoot down a quota of drifting rocks
// The timeout resolves as a win only if the quota was met
type Asteroids struct{}

func (Asteroids) ID() minigame.ID       { return minigame.Asteroids }
func (Asteroids) Name() string          { return minigame.Asteroids.String() }
func (Asteroids) Budget() time.Duration { return parameter.AsteroidBudget }
func (Asteroids) Run(env minigame.Env, cfg config.RunConfig, onWin, onLose func()) {
	newAsteroidRound(env, cfg, onWin, onLose).start()
}

type rock struct {
	pos, vel vmath.Vec2
}

type asteroidRound struct {
	s      *minigame.Session
	cfg    config.RunConfig
	glitch *minigame.Glitch

	w, h     float64
	ship     vmath.Vec2
	bullets  []vmath.Vec2
	rocks    []rock
	kills    int
	cooldown time.Duration
	spawnIn  time.Duration
}

func newAsteroidRound(env minigame.Env, cfg config.RunConfig, onWin, onLose func()) *asteroidRound {
	s := minigame.Begin(minigame.Asteroids, env, onWin, onLose)
	w, h := env.Surface.Size()
	return &asteroidRound{
		s:      s,
		cfg:    cfg,
		glitch: minigame.NewGlitch(s, cfg, minigame.GlitchImpulse),
		w:      float64(w),
		h:      float64(h),
		ship:   vmath.V(float64(w)/2, float64(h)-2),
	}
}

func (r *asteroidRound) start() {
	r.s.OnKeyDown(r.key)
	r.s.EveryFrame(r.frame)
	r.s.Deadline(parameter.AsteroidBudget, func() bool { return r.kills >= parameter.AsteroidQuota })
}

func (r *asteroidRound) key(ev input.Event) {
	if ev.Key == input.KeySpace {
		if r.cooldown <= 0 {
			r.bullets = append(r.bullets, r.ship.Add(vmath.V(0, -1)))
			r.cooldown = parameter.AsteroidFireCooldown
		}
		return
	}
	if dx, _, ok := minigame.Steer(ev, r.cfg); ok {
		r.ship.X = vmath.Clamp(r.ship.X+float64(dx)*parameter.AsteroidShipStep, 1, r.w-2)
	}
}

func (r *asteroidRound) frame(dt time.Duration) {
	sec := dt.Seconds()
	r.cooldown -= dt

	if r.glitch.Tick(dt) {
		for i := range r.rocks {
			physics.ApplyImpulse(&r.rocks[i].vel, r.glitch.Impulse())
		}
	}

	r.spawnIn -= dt
	if r.spawnIn <= 0 && len(r.rocks) < parameter.AsteroidMaxTargets {
		r.spawn()
		r.spawnIn = parameter.AsteroidSpawnDelay
	}

	rad := parameter.AsteroidRadius
	for i := range r.rocks {
		k := &r.rocks[i]
		physics.Integrate(&k.pos, &k.vel, vmath.Vec2{}, dt)
		physics.ReflectBoundsX(&k.pos, &k.vel, rad, r.w-rad)
		// Rocks that drift off the bottom re-enter at the top
		if k.pos.Y-rad > r.h {
			k.pos.Y = 1 - rad
		} else if k.pos.Y+rad < 0 {
			k.pos.Y = r.h + rad
		}
	}

	live := r.bullets[:0]
	for _, b := range r.bullets {
		b.Y -= parameter.AsteroidBulletSpeed * sec
		if b.Y < 0 {
			continue
		}
		if r.hit(b) {
			r.kills++
			if r.kills >= parameter.AsteroidQuota {
				r.s.Win()
				return
			}
			continue
		}
		live = append(live, b)
	}
	r.bullets = live

	r.draw()
}

// hit removes the first rock the bullet overlaps
func (r *asteroidRound) hit(b vmath.Vec2) bool {
	for i, k := range r.rocks {
		if vmath.CirclesOverlap(b, parameter.AsteroidBulletRadius, k.pos, parameter.AsteroidRadius) {
			r.rocks = append(r.rocks[:i], r.rocks[i+1:]...)
			return true
		}
	}
	return false
}

func (r *asteroidRound) spawn() {
	rng := r.s.Env().Rand
	rad := parameter.AsteroidRadius
	speed := parameter.AsteroidMinSpeed + rng.Float64()*(parameter.AsteroidMaxSpeed-parameter.AsteroidMinSpeed)
	r.rocks = append(r.rocks, rock{
		pos: vmath.V(rad+rng.Float64()*(r.w-2*rad), 1+rad),
		vel: vmath.V((rng.Float64()*2-1)*speed/2, speed),
	})
}

func (r *asteroidRound) draw() {
	pal := r.s.Env().Palette
	r.s.Paint(func(surf render.Surface) {
		surf.SetStroke(pal.Hazard)
		for _, k := range r.rocks {
			surf.StrokeCircle(k.pos.X, k.pos.Y, parameter.AsteroidRadius)
		}
		surf.SetFill(pal.Accent)
		for _, b := range r.bullets {
			surf.FillRect(b.X, b.Y, 0.5, 0.5)
		}
		surf.SetFill(pal.Player)
		surf.FillRect(r.ship.X-1, r.ship.Y, 3, 1)
		drawHUD(surf, pal, fmt.Sprintf("HITS %d/%d", r.kills, parameter.AsteroidQuota),
			r.s.Remaining(parameter.AsteroidBudget))
	})
}
