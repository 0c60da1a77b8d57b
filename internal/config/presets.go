package config

import "sort"

// Presets are named canvas and style setups.
var Presets = map[string]*Config{
	"default": DefaultConfig(),
	"wide": func() *Config {
		c := DefaultConfig()
		c.Canvas = CanvasConfig{Width: 1280, Height: 720, OriginX: 640, OriginY: 680}
		return c
	}(),
	"night": func() *Config {
		c := DefaultConfig()
		c.Style.Background = "#0a0a0a"
		c.Style.Lightness = 45
		c.Theme = "moss"
		return c
	}(),
	"print": func() *Config {
		c := DefaultConfig()
		c.Variant = "colored"
		c.Seed = 1
		c.Scale = 4
		return c
	}(),
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	cp := *cfg
	return &cp
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
