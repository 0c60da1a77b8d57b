package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/fractree/internal/tree"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Variant != "basic" {
		t.Errorf("expected variant basic, got %s", cfg.Variant)
	}
	if cfg.Canvas.OriginX != 300 || cfg.Canvas.OriginY != 500 {
		t.Errorf("expected origin (300,500), got (%v,%v)", cfg.Canvas.OriginX, cfg.Canvas.OriginY)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}

	st := cfg.GetStyle()
	if st.Hue != 100 || st.Saturation != 100 || st.Lightness != 5 || st.Width != 1 {
		t.Errorf("unexpected default style %+v", st)
	}
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tree.yaml")
	data := "variant: random\nseed: 42\ncanvas:\n  width: 800\n  origin_x: 400\nstyle:\n  background: \"#000000\"\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.GetVariant() != tree.Random {
		t.Errorf("expected random, got %s", cfg.GetVariant())
	}
	if cfg.Seed != 42 || cfg.Canvas.Width != 800 || cfg.Canvas.OriginX != 400 {
		t.Errorf("fields not loaded: %+v", cfg)
	}
	if cfg.Canvas.Height != DefaultHeight || cfg.Canvas.OriginY != DefaultOriginY {
		t.Error("unset fields should keep defaults")
	}
}

func TestLoadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tree.toml")
	data := "variant = \"colored\"\nfps = 30\n\n[style]\nlightness = 20.0\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.GetVariant() != tree.Colored || cfg.FPS != 30 || cfg.Style.Lightness != 20 {
		t.Errorf("fields not loaded: %+v", cfg)
	}
	if cfg.Style.Hue != 100 {
		t.Error("unset style fields should keep defaults")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	for _, name := range []string{"tree.yaml", "tree.toml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			cfg := DefaultConfig()
			cfg.Seed = 7
			cfg.Theme = "moss"
			if err := Save(path, cfg); err != nil {
				t.Fatalf("save failed: %v", err)
			}
			got, err := Load(path)
			if err != nil {
				t.Fatalf("load failed: %v", err)
			}
			if *got != *cfg {
				t.Errorf("round trip mismatch: %+v vs %+v", got, cfg)
			}
		})
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	os.WriteFile(path, []byte("canvas: [1, 2"), 0644)
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown variant", func(c *Config) { c.Variant = "oak" }},
		{"zero width", func(c *Config) { c.Canvas.Width = 0 }},
		{"negative height", func(c *Config) { c.Canvas.Height = -1 }},
		{"zero fps", func(c *Config) { c.FPS = 0 }},
		{"huge fps", func(c *Config) { c.FPS = 1000 }},
		{"zero scale", func(c *Config) { c.Scale = 0 }},
		{"saturation", func(c *Config) { c.Style.Saturation = 101 }},
		{"lightness", func(c *Config) { c.Style.Lightness = -1 }},
		{"stroke width", func(c *Config) { c.Style.Width = 0 }},
		{"background", func(c *Config) { c.Style.Background = "white" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}

	cfg := DefaultConfig()
	cfg.Variant = "oak"
	if err := cfg.Validate(); !errors.Is(err, tree.ErrUnknownVariant) {
		t.Errorf("expected ErrUnknownVariant in chain, got %v", err)
	}
}

func TestNewScene(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Variant = "colored"
	cfg.Seed = 3

	scene := cfg.NewScene()
	if scene.Active() != tree.Colored {
		t.Errorf("expected colored, got %s", scene.Active())
	}
	if x, y := scene.Origin(); x != 300 || y != 500 {
		t.Errorf("unexpected origin (%v,%v)", x, y)
	}

	again := cfg.NewScene()
	if again.Current()[10] != scene.Current()[10] {
		t.Error("seeded scenes should match")
	}
}

func TestPresets(t *testing.T) {
	names := ListPresets()
	if len(names) != len(Presets) {
		t.Fatalf("expected %d presets, got %d", len(Presets), len(names))
	}
	for _, name := range names {
		cfg := GetPreset(name)
		if cfg == nil {
			t.Fatalf("preset %s missing", name)
		}
		if err := cfg.Validate(); err != nil {
			t.Errorf("preset %s invalid: %v", name, err)
		}
	}

	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}

	p := GetPreset("night")
	p.Theme = "changed"
	if Presets["night"].Theme == "changed" {
		t.Error("GetPreset should return a copy")
	}
}
