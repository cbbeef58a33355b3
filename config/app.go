package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/ini.v1"
)

// Environment overrides, applied after the ini file
const (
	EnvDBPath = "PARTY_ARCADE_DB"
	EnvDebug  = "PARTY_ARCADE_DEBUG"
	EnvMute   = "PARTY_ARCADE_MUTE"
	EnvSeed   = "PARTY_ARCADE_SEED"
)

const (
	DefaultConfigPath = "party-arcade.ini"
	DefaultEnvPath    = ".env"
	DefaultDBPath     = "party-arcade.db"
	DefaultVolume     = 0.8
)

// App is the process-level configuration
// Run holds the start-form defaults; the player can still change them per run
type App struct {
	PlayerName string
	Run        RunConfig
	DBPath     string
	Debug      bool
	Mute       bool
	Volume     float64 // master gain, 0..1
	Seed       uint64 // 0 = seed from time
}

// Default returns the built-in configuration
func Default() App {
	return App{
		Run:    RunConfig{Theme: ThemeNeon},
		DBPath: DefaultDBPath,
		Volume: DefaultVolume,
	}
}

// Load reads the ini file at path over the defaults
// A missing file is not an error
func Load(path string) (App, error) {
	app := Default()

	file, err := ini.LoadSources(ini.LoadOptions{Loose: true, Insensitive: true}, path)
	if err != nil {
		return app, fmt.Errorf("failed to load config %s: %w", path, err)
	}

	player := file.Section("player")
	app.PlayerName = strings.TrimSpace(player.Key("name").String())

	run := file.Section("run")
	app.Run.Inverted = run.Key("inverted").MustBool(false)
	app.Run.OneLife = run.Key("one_life").MustBool(false)
	app.Run.Glitch = run.Key("glitch").MustBool(false)
	if name := run.Key("theme").String(); name != "" {
		theme, err := ParseTheme(name)
		if err != nil {
			return app, fmt.Errorf("config %s [run] theme: %w", path, err)
		}
		app.Run.Theme = theme
	}

	storage := file.Section("storage")
	if p := strings.TrimSpace(storage.Key("db").String()); p != "" {
		app.DBPath = p
	}

	sound := file.Section("audio")
	app.Mute = sound.Key("mute").MustBool(false)
	// Volume is written 0-100
	if sound.HasKey("volume") {
		app.Volume = min(max(float64(sound.Key("volume").MustInt(80))/100, 0), 1)
	}

	debug := file.Section("debug")
	app.Debug = debug.Key("enabled").MustBool(false)
	app.Seed = debug.Key("seed").MustUint64(0)

	return app, nil
}

// ApplyEnv overlays environment variables, falling back to values from the dotenv file at envPath
// Process environment wins over the dotenv file
func (a *App) ApplyEnv(envPath string) error {
	fileVars, err := godotenv.Read(envPath)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to read %s: %w", envPath, err)
	}

	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := fileVars[key]
		return v, ok
	}

	if v, ok := lookup(EnvDBPath); ok && v != "" {
		a.DBPath = v
	}
	if v, ok := lookup(EnvDebug); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvDebug, err)
		}
		a.Debug = b
	}
	if v, ok := lookup(EnvMute); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvMute, err)
		}
		a.Mute = b
	}
	if v, ok := lookup(EnvSeed); ok {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSeed, err)
		}
		a.Seed = n
	}
	return nil
}
