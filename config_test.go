package pebble

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().World.Validate(); err != nil {
		t.Errorf("DefaultConfig().World.Validate() = %v", err)
	}
}

func TestWorldConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*WorldConfig)
	}{
		{"zero width", func(c *WorldConfig) { c.Width = 0 }},
		{"negative height", func(c *WorldConfig) { c.Height = -10 }},
		{"restitution above one", func(c *WorldConfig) { c.Restitution = 1.5 }},
		{"negative restitution", func(c *WorldConfig) { c.Restitution = -0.1 }},
		{"zero fixed step", func(c *WorldConfig) { c.FixedStep = 0 }},
		{"zero substeps", func(c *WorldConfig) { c.MaxSubsteps = 0 }},
		{"zero frame delta", func(c *WorldConfig) { c.MaxFrameDelta = 0 }},
		{"inverted cell bounds", func(c *WorldConfig) { c.CellSizeMin = 100; c.CellSizeMax = 50 }},
		{"zero tune interval", func(c *WorldConfig) { c.TuneInterval = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig().World
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate accepted an invalid config")
			}
		})
	}
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sandbox.yaml")
	data := []byte("world:\n  gravity: 450\n  restitution: 0.6\nspawn:\n  initial_bodies: 12\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	assertNear(t, "Gravity", cfg.World.Gravity, 450)
	assertNear(t, "Restitution", cfg.World.Restitution, 0.6)
	if cfg.Spawn.InitialBodies != 12 {
		t.Errorf("InitialBodies = %d, want 12", cfg.Spawn.InitialBodies)
	}
	// Untouched fields keep defaults.
	assertNear(t, "Width", cfg.World.Width, DefaultConfig().World.Width)
	assertNear(t, "FixedStep", cfg.World.FixedStep, DefaultConfig().World.FixedStep)
}

func TestLoadConfigErrors(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadConfig accepted a missing file")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	os.WriteFile(bad, []byte("world: [not a mapping"), 0o644)
	if _, err := LoadConfig(bad); err == nil {
		t.Error("LoadConfig accepted malformed YAML")
	}

	invalid := filepath.Join(t.TempDir(), "invalid.yaml")
	os.WriteFile(invalid, []byte("world:\n  restitution: 2.0\n"), 0o644)
	if _, err := LoadConfig(invalid); err == nil {
		t.Error("LoadConfig accepted an out-of-range restitution")
	}
}
