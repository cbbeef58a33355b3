package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/party-arcade/audio"
	"github.com/lixenwraith/party-arcade/config"
	"github.com/lixenwraith/party-arcade/constants"
	"github.com/lixenwraith/party-arcade/core"
	"github.com/lixenwraith/party-arcade/engine"
	"github.com/lixenwraith/party-arcade/games"
	"github.com/lixenwraith/party-arcade/input"
	"github.com/lixenwraith/party-arcade/leaderboard"
	"github.com/lixenwraith/party-arcade/minigame"
	"github.com/lixenwraith/party-arcade/render"
	"github.com/lixenwraith/party-arcade/round"
	"github.com/lixenwraith/party-arcade/shell"
	"github.com/lixenwraith/party-arcade/status"
	"github.com/lixenwraith/party-arcade/store"
)

func main() {
	// Reset the terminal even if the main goroutine panics
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	app, err := parseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "party-arcade: %v\n", err)
		os.Exit(2)
	}

	if logFile := setupLogging(app.Debug); logFile != nil {
		defer logFile.Close()
	}

	if err := run(app); err != nil {
		fmt.Fprintf(os.Stderr, "party-arcade: %v\n", err)
		os.Exit(1)
	}
}

// parseFlags layers configuration: ini file, then .env and process environment, then flags
func parseFlags(args []string) (config.App, error) {
	fs := flag.NewFlagSet("party-arcade", flag.ContinueOnError)
	configPath := fs.String("config", config.DefaultConfigPath, "ini configuration file")
	dbPath := fs.String("db", "", "leaderboard database file")
	debug := fs.Bool("debug", false, "log to logs/ and show the status line")
	seed := fs.Uint64("seed", 0, "random seed for game order and spawns (0 = time)")
	mute := fs.Bool("mute", false, "disable sound")
	if err := fs.Parse(args); err != nil {
		return config.App{}, err
	}

	app, err := config.Load(*configPath)
	if err != nil {
		return app, err
	}
	if err := app.ApplyEnv(config.DefaultEnvPath); err != nil {
		return app, err
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "db":
			app.DBPath = *dbPath
		case "debug":
			app.Debug = *debug
		case "seed":
			app.Seed = *seed
		case "mute":
			app.Mute = *mute
		}
	})
	return app, nil
}

// newRand seeds the run generator; seed 0 draws from the wall clock
func newRand(seed uint64) (*rand.Rand, uint64) {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)), seed
}

// lastSaved describes when the leaderboard record was last written
func lastSaved(ctx context.Context, db *store.SQLite) string {
	at, ok, err := db.UpdatedAt(ctx, constants.LeaderboardKey)
	switch {
	case err != nil:
		return fmt.Sprintf("leaderboard timestamp unavailable: %v", err)
	case !ok:
		return "leaderboard empty"
	}
	return "leaderboard last saved " + at.Local().Format(time.DateTime)
}

func run(app config.App) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := store.Open(app.DBPath)
	if err != nil {
		return err
	}
	defer db.Close()
	if err := db.Migrate(ctx); err != nil {
		return err
	}
	log.Printf("main: %s", lastSaved(ctx, db))

	sound := audio.NewSoundManager(app.Volume)
	sound.SetMuted(app.Mute)
	if !app.Mute {
		if err := sound.Initialize(); err != nil {
			log.Printf("main: audio initialization failed: %v (continuing without audio)", err)
		}
	}
	defer sound.Cleanup()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	core.SetTerminal(screen)
	defer func() {
		core.SetTerminal(nil)
		screen.Fini()
	}()
	screen.EnableMouse()
	screen.HideCursor()
	screen.Clear()

	w, h := screen.Size()
	if w < constants.MinSurfaceWidth || h-constants.StatusRows < constants.MinSurfaceHeight {
		return fmt.Errorf("terminal is %dx%d, need at least %dx%d",
			w, h, constants.MinSurfaceWidth, constants.MinSurfaceHeight+constants.StatusRows)
	}

	reg := status.NewRegistry()
	frames := reg.Ints.Get("frames")

	clock := engine.NewPausableClock(engine.NewMonotonicTimeProvider())
	sched := engine.NewScheduler(clock)
	sched.Instrument(reg)

	bus := input.NewBus()
	bus.Instrument(reg)
	translator := input.NewTranslator(0, 0)
	canvas := render.NewCanvas(screen, 0, 0, w, h-constants.StatusRows)

	rng, seed := newRand(app.Seed)
	log.Printf("main: seed %d, db %s, terminal %dx%d", seed, app.DBPath, w, h)

	env := minigame.Env{
		Scheduler: sched,
		Input:     bus,
		Surface:   canvas,
		Palette:   render.PaletteFor(app.Run.Theme),
		Rand:      rng,
	}

	ui := shell.New(screen, bus, app.PlayerName, app.Run)
	orch := round.New(env, games.Roster(),
		round.WithUI(ui),
		round.WithLeaderboard(leaderboard.New(db)),
		round.WithCues(sound),
		round.WithContext(ctx),
		round.WithRegistry(reg),
	)
	ui.SetController(orch)
	if app.Debug {
		ui.SetStatus(func() string {
			return fmt.Sprintf("%s | %s", orch.Phase(), reg.Line())
		})
	}
	if err := orch.Begin(); err != nil {
		return err
	}

	events := make(chan tcell.Event, constants.EventChannelSize)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	})

	ticker := time.NewTicker(constants.FrameUpdateInterval)
	defer ticker.Stop()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch e := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
				w, h := screen.Size()
				canvas.Resize(0, 0, w, h-constants.StatusRows)
				continue
			case *tcell.EventKey:
				switch e.Key() {
				case tcell.KeyCtrlC:
					return nil
				case tcell.KeyCtrlP:
					ui.SetPaused(clock.Toggle())
					continue
				case tcell.KeyEscape:
					if p := orch.Phase(); p == round.PhaseAwaitingStart || p == round.PhaseFinished {
						return nil
					}
				}
			}
			if clock.IsPaused() {
				continue
			}
			if in, ok := translator.Translate(ev); ok {
				bus.Dispatch(in)
			}

		case <-ticker.C:
			frames.Add(1)
			if !clock.IsPaused() {
				sched.Advance()
			}
			theme := app.Run.Theme
			if _, ok := orch.State(); ok {
				theme = orch.Config().Theme
			}
			canvas.SetBackground(render.PaletteFor(theme).Background)
			if p := orch.Phase(); p != round.PhaseRoundActive && p != round.PhaseRoundTransition {
				canvas.Clear()
			}
			ui.Draw()
			screen.Show()
		}
	}
}
