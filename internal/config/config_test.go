package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Dt != 3600 {
		t.Errorf("expected dt 3600, got %g", cfg.Dt)
	}
	if cfg.FPS != 60 {
		t.Errorf("expected 60 fps, got %d", cfg.FPS)
	}
	if len(cfg.Bodies) != 3 {
		t.Fatalf("expected 3 bodies, got %d", len(cfg.Bodies))
	}
	if cfg.Bodies[0].Name != "Sun" || !cfg.Bodies[0].Anchor {
		t.Errorf("first body should be the anchored Sun, got %+v", cfg.Bodies[0])
	}
	if cfg.Bodies[1].Mass != 5.972e24 {
		t.Errorf("expected Earth mass 5.972e24, got %g", cfg.Bodies[1].Mass)
	}
	// Moon carries Earth's orbital velocity plus its own.
	if cfg.Bodies[2].VY != 29.78e3+1.022e3 {
		t.Errorf("expected Moon vy %g, got %g", 29.78e3+1.022e3, cfg.Bodies[2].VY)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("solar-system")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if len(cfg.Bodies) != 9 {
		t.Errorf("expected 9 bodies, got %d", len(cfg.Bodies))
	}

	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for unknown preset")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) != 3 {
		t.Fatalf("expected 3 presets, got %v", names)
	}
	// Sorted.
	if names[0] != "inner-planets" || names[2] != "sun-earth-moon" {
		t.Errorf("presets not sorted: %v", names)
	}
}

func TestRegistry(t *testing.T) {
	cfg := DefaultConfig()
	reg, err := cfg.Registry()
	if err != nil {
		t.Fatalf("registry failed: %v", err)
	}

	if reg.Len() != 3 {
		t.Fatalf("expected 3 bodies, got %d", reg.Len())
	}

	sun := reg.Bodies()[0]
	if sun.Color.R != 255 || sun.Color.G != 255 || sun.Color.B != 0 {
		t.Errorf("sun color mismatch: %+v", sun.Color)
	}
	earth := reg.Bodies()[1]
	if earth.Pos.X != -1.496e11 || earth.Vel.Y != 29.78e3 {
		t.Errorf("earth initial state mismatch: pos=%v vel=%v", earth.Pos, earth.Vel)
	}
}

func TestRegistryRejectsBadConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"no bodies", func(c *Config) { c.Bodies = nil }},
		{"bad color", func(c *Config) { c.Bodies[0].Color = "yellow" }},
		{"zero mass", func(c *Config) { c.Bodies[0].Mass = 0 }},
		{"duplicate position", func(c *Config) {
			c.Bodies[1].X = c.Bodies[0].X
			c.Bodies[1].Y = c.Bodies[0].Y
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if _, err := cfg.Registry(); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestLoadSaveRoundtrip(t *testing.T) {
	cfg := GetPreset("inner-planets")
	cfg.Speed = 8

	path := filepath.Join(t.TempDir(), "orbits.yaml")
	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if loaded.Speed != 8 {
		t.Errorf("expected speed 8, got %d", loaded.Speed)
	}
	if len(loaded.Bodies) != len(cfg.Bodies) {
		t.Errorf("body count mismatch: %d vs %d", len(loaded.Bodies), len(cfg.Bodies))
	}
	if loaded.Bodies[1].Name != "Mercury" {
		t.Errorf("expected Mercury second, got %s", loaded.Bodies[1].Name)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); !os.IsNotExist(err) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}
