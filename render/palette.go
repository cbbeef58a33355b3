package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/party-arcade/config"
)

// Palette maps drawing roles to colors for one theme
type Palette struct {
	Background tcell.Color
	Text       tcell.Color
	Player     tcell.Color
	Hazard     tcell.Color
	Goal       tcell.Color
	Accent     tcell.Color
	Dim        tcell.Color
	Highlight  tcell.Color
}

var palettes = map[config.Theme]Palette{
	config.ThemeNeon: {
		Background: tcell.NewRGBColor(8, 8, 16),
		Text:       tcell.NewRGBColor(240, 240, 255),
		Player:     tcell.NewRGBColor(57, 255, 20),
		Hazard:     tcell.NewRGBColor(255, 20, 147),
		Goal:       tcell.NewRGBColor(255, 240, 31),
		Accent:     tcell.NewRGBColor(0, 255, 255),
		Dim:        tcell.NewRGBColor(70, 70, 110),
		Highlight:  tcell.NewRGBColor(255, 215, 0),
	},
	config.ThemeRetro: {
		Background: tcell.NewRGBColor(20, 12, 28),
		Text:       tcell.NewRGBColor(222, 238, 214),
		Player:     tcell.NewRGBColor(109, 170, 44),
		Hazard:     tcell.NewRGBColor(208, 70, 72),
		Goal:       tcell.NewRGBColor(218, 212, 94),
		Accent:     tcell.NewRGBColor(89, 125, 206),
		Dim:        tcell.NewRGBColor(78, 74, 78),
		Highlight:  tcell.NewRGBColor(210, 125, 44),
	},
	config.ThemeMono: {
		Background: tcell.ColorBlack,
		Text:       tcell.ColorWhite,
		Player:     tcell.ColorWhite,
		Hazard:     tcell.ColorSilver,
		Goal:       tcell.ColorWhite,
		Accent:     tcell.ColorSilver,
		Dim:        tcell.ColorGray,
		Highlight:  tcell.ColorWhite,
	},
}

// PaletteFor returns the palette for theme, neon for unknown themes
func PaletteFor(theme config.Theme) Palette {
	if p, ok := palettes[theme]; ok {
		return p
	}
	return palettes[config.ThemeNeon]
}
