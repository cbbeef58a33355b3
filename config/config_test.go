package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseTheme(t *testing.T) {
	tests := []struct {
		in      string
		want    Theme
		wantErr bool
	}{
		{"neon", ThemeNeon, false},
		{" Retro ", ThemeRetro, false},
		{"MONO", ThemeMono, false},
		{"sepia", ThemeNeon, true},
	}

	for _, tt := range tests {
		got, err := ParseTheme(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseTheme(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseTheme(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestThemeNextWraps(t *testing.T) {
	th := ThemeNeon
	for range Themes() {
		th = th.Next()
	}
	if th != ThemeNeon {
		t.Errorf("Expected full cycle to return to neon, got %v", th)
	}
}

func TestModifiers(t *testing.T) {
	c := RunConfig{Inverted: true, Glitch: true}
	mods := c.Modifiers()
	if len(mods) != 2 || mods[0] != "INVERTED" || mods[1] != "GLITCH" {
		t.Errorf("Unexpected modifiers: %v", mods)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	app, err := Load(filepath.Join(t.TempDir(), "absent.ini"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if app != Default() {
		t.Errorf("Expected defaults, got %+v", app)
	}
}

func TestLoadIni(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "party.ini")
	content := `[player]
name = zed

[run]
inverted = true
one_life = true
theme = retro

[storage]
db = scores.db

[audio]
mute = true
volume = 150
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	app, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if app.PlayerName != "zed" {
		t.Errorf("PlayerName = %q", app.PlayerName)
	}
	if !app.Run.Inverted || !app.Run.OneLife || app.Run.Glitch {
		t.Errorf("Unexpected run flags: %+v", app.Run)
	}
	if app.Run.Theme != ThemeRetro {
		t.Errorf("Theme = %v, want retro", app.Run.Theme)
	}
	if app.DBPath != "scores.db" || !app.Mute {
		t.Errorf("Unexpected storage/audio: %+v", app)
	}
	if app.Volume != 1 {
		t.Errorf("Volume = %v, want clamped to 1", app.Volume)
	}
}

func TestLoadRejectsUnknownTheme(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.ini")
	if err := os.WriteFile(path, []byte("[run]\ntheme = plaid\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Expected error for unknown theme")
	}
}

func TestApplyEnvPrecedence(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	if err := os.WriteFile(envPath, []byte("PARTY_ARCADE_DB=from-file.db\nPARTY_ARCADE_MUTE=true\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvDBPath, "from-env.db")
	t.Setenv(EnvSeed, "42")

	app := Default()
	if err := app.ApplyEnv(envPath); err != nil {
		t.Fatalf("ApplyEnv failed: %v", err)
	}
	if app.DBPath != "from-env.db" {
		t.Errorf("DBPath = %q, want process env to win", app.DBPath)
	}
	if !app.Mute {
		t.Error("Expected mute from dotenv file")
	}
	if app.Seed != 42 {
		t.Errorf("Seed = %d, want 42", app.Seed)
	}
}

func TestApplyEnvMissingFile(t *testing.T) {
	app := Default()
	if err := app.ApplyEnv(filepath.Join(t.TempDir(), "none.env")); err != nil {
		t.Errorf("Missing dotenv file should be ignored, got %v", err)
	}
}

func TestApplyEnvBadBool(t *testing.T) {
	t.Setenv(EnvDebug, "sometimes")
	app := Default()
	if err := app.ApplyEnv(filepath.Join(t.TempDir(), "none.env")); err == nil {
		t.Error("Expected parse error")
	}
}
