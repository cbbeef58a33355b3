package config

import (
	"fmt"
	"strings"
)

// Theme selects the color palette for a run
type Theme uint8

const (
	ThemeNeon Theme = iota
	ThemeRetro
	ThemeMono
)

var themeNames = [...]string{
	ThemeNeon:  "neon",
	ThemeRetro: "retro",
	ThemeMono:  "mono",
}

// Themes lists every theme in selection order
func Themes() []Theme {
	return []Theme{ThemeNeon, ThemeRetro, ThemeMono}
}

func (t Theme) String() string {
	if int(t) < len(themeNames) {
		return themeNames[t]
	}
	return fmt.Sprintf("theme(%d)", t)
}

// Next returns the following theme, wrapping around
func (t Theme) Next() Theme {
	return Theme((int(t) + 1) % len(themeNames))
}

// ParseTheme resolves a theme name, case-insensitive
func ParseTheme(s string) (Theme, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range themeNames {
		if n == name {
			return Theme(i), nil
		}
	}
	return ThemeNeon, fmt.Errorf("unknown theme %q", s)
}

// RunConfig holds the player-chosen modifiers for one run
// Captured at run start and never mutated; minigames receive a copy
type RunConfig struct {
	Inverted bool  // flip directional input
	OneLife  bool  // end the run after the first lost round
	Glitch   bool  // probabilistic visual/physics/input perturbations
	Theme    Theme // palette
}

// Modifiers returns short labels for the enabled modifiers, in fixed order
func (c RunConfig) Modifiers() []string {
	var mods []string
	if c.Inverted {
		mods = append(mods, "INVERTED")
	}
	if c.OneLife {
		mods = append(mods, "ONE-LIFE")
	}
	if c.Glitch {
		mods = append(mods, "GLITCH")
	}
	return mods
}
