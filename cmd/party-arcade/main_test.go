package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lixenwraith/party-arcade/config"
	"github.com/lixenwraith/party-arcade/constants"
	"github.com/lixenwraith/party-arcade/store"
)

func writeIni(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "party.ini")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParseFlagsDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	app, err := parseFlags(nil)
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}
	if app != config.Default() {
		t.Errorf("App = %+v, want defaults", app)
	}
}

func TestParseFlagsLayering(t *testing.T) {
	t.Chdir(t.TempDir())
	path := writeIni(t, "[storage]\ndb = ini.db\n[debug]\nseed = 3\n[audio]\nvolume = 50\n")
	t.Setenv(config.EnvSeed, "5")

	app, err := parseFlags([]string{"-config", path, "-db", "flag.db", "-mute"})
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}
	if app.DBPath != "flag.db" {
		t.Errorf("DBPath = %q, flag should win", app.DBPath)
	}
	if app.Seed != 5 {
		t.Errorf("Seed = %d, env should beat the ini file", app.Seed)
	}
	if !app.Mute || app.Volume != 0.5 {
		t.Errorf("Mute=%v Volume=%v", app.Mute, app.Volume)
	}

	app, err = parseFlags([]string{"-config", path, "-seed", "9"})
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}
	if app.Seed != 9 || app.DBPath != "ini.db" {
		t.Errorf("Seed=%d DBPath=%q", app.Seed, app.DBPath)
	}
}

func TestParseFlagsErrors(t *testing.T) {
	t.Chdir(t.TempDir())
	if _, err := parseFlags([]string{"-bogus"}); err == nil {
		t.Error("Unknown flag accepted")
	}
	if _, err := parseFlags([]string{"-h"}); !errors.Is(err, flag.ErrHelp) {
		t.Errorf("-h err = %v", err)
	}
	bad := writeIni(t, "[run]\ntheme = plaid\n")
	if _, err := parseFlags([]string{"-config", bad}); err == nil {
		t.Error("Bad theme accepted")
	}
}

func TestNewRandSeed(t *testing.T) {
	a, seed := newRand(42)
	b, _ := newRand(42)
	if seed != 42 || a.Uint64() != b.Uint64() {
		t.Error("Fixed seed is not reproducible")
	}
	if _, s := newRand(0); s == 0 {
		t.Error("Zero seed not replaced")
	}
}

func TestLastSaved(t *testing.T) {
	ctx := context.Background()
	db, err := store.Open(":memory:")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer db.Close()
	if err := db.Migrate(ctx); err != nil {
		t.Fatalf("Migrate: %v", err)
	}

	if got := lastSaved(ctx, db); got != "leaderboard empty" {
		t.Errorf("lastSaved = %q before any save", got)
	}
	if err := db.Put(ctx, constants.LeaderboardKey, []byte(`[]`)); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if got := lastSaved(ctx, db); !strings.HasPrefix(got, "leaderboard last saved ") {
		t.Errorf("lastSaved = %q after a save", got)
	}
}
