package viz

import (
	"image/color"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Theme defines colour scheme for the TUI
type Theme struct {
	Name       string
	Primary    lipgloss.Color
	Accent     lipgloss.Color
	Background lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	// Canvas is the paper colour behind the tree.
	Canvas string
}

// Available themes
var (
	ThemePaper = Theme{
		Name:       "paper",
		Primary:    lipgloss.Color("#2e7d32"),
		Accent:     lipgloss.Color("#9ccc65"),
		Background: lipgloss.Color("#0a0a0a"),
		Text:       lipgloss.Color("#ffffff"),
		Muted:      lipgloss.Color("#666666"),
		Canvas:     "#ffffff",
	}

	ThemeParchment = Theme{
		Name:       "parchment",
		Primary:    lipgloss.Color("#8d6e63"),
		Accent:     lipgloss.Color("#c5e1a5"),
		Background: lipgloss.Color("#1b1208"),
		Text:       lipgloss.Color("#f5ecd7"),
		Muted:      lipgloss.Color("#8b7b66"),
		Canvas:     "#f5ecd7",
	}

	ThemeMoss = Theme{
		Name:       "moss",
		Primary:    lipgloss.Color("#00ff88"),
		Accent:     lipgloss.Color("#ccff90"),
		Background: lipgloss.Color("#001100"),
		Text:       lipgloss.Color("#e8ffe8"),
		Muted:      lipgloss.Color("#4a7a4a"),
		Canvas:     "#e8f5e9",
	}

	// Default theme
	CurrentTheme = ThemePaper

	// All available themes
	Themes = []Theme{
		ThemePaper,
		ThemeParchment,
		ThemeMoss,
	}
)

// GetTheme returns a theme by name
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemePaper
}

// SetTheme changes the current theme
func SetTheme(name string) {
	CurrentTheme = GetTheme(name)
}

// NextTheme returns the theme after current in Themes, wrapping around.
func NextTheme(current string) Theme {
	for i, t := range Themes {
		if t.Name == current {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// CanvasColor returns the theme's paper colour, white if unparsable.
func (t Theme) CanvasColor() color.Color {
	c, err := colorful.Hex(t.Canvas)
	if err != nil {
		return color.White
	}
	return c.Clamped()
}
