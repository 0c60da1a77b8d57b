package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/san-kum/fractree/internal/render"
	"github.com/san-kum/fractree/internal/tree"
	"gopkg.in/yaml.v3"
)

const (
	DefaultWidth      = 600
	DefaultHeight     = 600
	DefaultOriginX    = 300.0
	DefaultOriginY    = 500.0
	DefaultFPS        = 60
	DefaultBackground = "#ffffff"
	DefaultTheme      = "paper"
	DefaultScale      = 1.0
)

// ErrInvalidConfig indicates a configuration value outside its valid range.
var ErrInvalidConfig = errors.New("config: invalid value")

type Config struct {
	Variant string       `yaml:"variant" toml:"variant"`
	Seed    int64        `yaml:"seed" toml:"seed"`
	Canvas  CanvasConfig `yaml:"canvas" toml:"canvas"`
	Style   StyleConfig  `yaml:"style" toml:"style"`
	FPS     int          `yaml:"fps" toml:"fps"`
	Theme   string       `yaml:"theme" toml:"theme"`
	Scale   float64      `yaml:"scale" toml:"scale"`
}

type CanvasConfig struct {
	Width   int     `yaml:"width" toml:"width"`
	Height  int     `yaml:"height" toml:"height"`
	OriginX float64 `yaml:"origin_x" toml:"origin_x"`
	OriginY float64 `yaml:"origin_y" toml:"origin_y"`
}

type StyleConfig struct {
	Background string  `yaml:"background" toml:"background"`
	Hue        float64 `yaml:"hue" toml:"hue"`
	Saturation float64 `yaml:"saturation" toml:"saturation"`
	Lightness  float64 `yaml:"lightness" toml:"lightness"`
	Width      float64 `yaml:"width" toml:"width"`
}

func DefaultConfig() *Config {
	st := render.DefaultStyle()
	return &Config{
		Variant: tree.Basic.String(),
		Canvas: CanvasConfig{
			Width:   DefaultWidth,
			Height:  DefaultHeight,
			OriginX: DefaultOriginX,
			OriginY: DefaultOriginY,
		},
		Style: StyleConfig{
			Background: DefaultBackground,
			Hue:        st.Hue,
			Saturation: st.Saturation,
			Lightness:  st.Lightness,
			Width:      st.Width,
		},
		FPS:   DefaultFPS,
		Theme: DefaultTheme,
		Scale: DefaultScale,
	}
}

// Load reads a YAML file, or TOML when the extension is .toml, on top of the
// defaults and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if isTOML(path) {
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	if isTOML(path) {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		return toml.NewEncoder(f).Encode(cfg)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

// Validate checks every field and reports the first offending one.
func (c *Config) Validate() error {
	if _, err := tree.ParseVariant(c.Variant); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return fmt.Errorf("%w: canvas %dx%d", ErrInvalidConfig, c.Canvas.Width, c.Canvas.Height)
	}
	if c.FPS <= 0 || c.FPS > 240 {
		return fmt.Errorf("%w: fps %d", ErrInvalidConfig, c.FPS)
	}
	if c.Scale <= 0 {
		return fmt.Errorf("%w: scale %g", ErrInvalidConfig, c.Scale)
	}
	if c.Style.Saturation < 0 || c.Style.Saturation > 100 {
		return fmt.Errorf("%w: saturation %g", ErrInvalidConfig, c.Style.Saturation)
	}
	if c.Style.Lightness < 0 || c.Style.Lightness > 100 {
		return fmt.Errorf("%w: lightness %g", ErrInvalidConfig, c.Style.Lightness)
	}
	if c.Style.Width <= 0 {
		return fmt.Errorf("%w: stroke width %g", ErrInvalidConfig, c.Style.Width)
	}
	if _, err := render.ParseHex(c.Style.Background); err != nil {
		return fmt.Errorf("%w: background %q", ErrInvalidConfig, c.Style.Background)
	}
	return nil
}

// GetVariant returns the configured start variant.
func (c *Config) GetVariant() tree.Variant {
	v, err := tree.ParseVariant(c.Variant)
	if err != nil {
		return tree.Basic
	}
	return v
}

// GetStyle builds the renderer style. An unparsable background falls back to
// white.
func (c *Config) GetStyle() render.Style {
	st := render.DefaultStyle()
	if bg, err := render.ParseHex(c.Style.Background); err == nil {
		st.Background = bg
	}
	st.Hue = c.Style.Hue
	st.Saturation = c.Style.Saturation
	st.Lightness = c.Style.Lightness
	st.Width = c.Style.Width
	return st
}

// GetGenerator returns a generator seeded from Seed, or from the clock when
// Seed is zero.
func (c *Config) GetGenerator() *tree.Generator {
	if c.Seed == 0 {
		return tree.NewGenerator(nil)
	}
	return tree.NewSeededGenerator(c.Seed)
}

// NewScene generates every variant from the configured origin and activates
// the start variant.
func (c *Config) NewScene() *tree.Scene {
	scene := tree.NewScene(c.GetGenerator(), c.Canvas.OriginX, c.Canvas.OriginY)
	if v := c.GetVariant(); v != tree.Basic {
		scene.Select(v)
	}
	return scene
}
