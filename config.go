package pebble

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// WorldConfig holds the simulation parameters for one [World]. Zero values
// are not meaningful; start from [DefaultConfig] and override.
type WorldConfig struct {
	// Width and Height are the playfield dimensions in pixels. Bodies are
	// kept inside [0,Width]×[0,Height].
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	// Gravity is the downward acceleration in px/s². Adjustable at runtime
	// via World.SetGravity.
	Gravity float64 `yaml:"gravity"`

	// Restitution is the bounce coefficient in [0,1], shared by every body
	// and every wall. 1 is perfectly elastic, 0 perfectly inelastic.
	Restitution float64 `yaml:"restitution"`

	// FixedStep is the physics substep duration in seconds.
	FixedStep float64 `yaml:"fixed_step"`

	// MaxSubsteps caps how many substeps a single Tick may run, so a long
	// stall cannot freeze the process catching up.
	MaxSubsteps int `yaml:"max_substeps"`

	// MaxFrameDelta clamps the per-tick elapsed time in seconds before it
	// enters the accumulator.
	MaxFrameDelta float64 `yaml:"max_frame_delta"`

	// CellSizeMin and CellSizeMax bound the broadphase cell size in pixels.
	CellSizeMin float64 `yaml:"cell_size_min"`
	CellSizeMax float64 `yaml:"cell_size_max"`

	// TuneInterval is the number of physics steps between broadphase
	// cell-size retunes.
	TuneInterval int `yaml:"tune_interval"`
}

// SpawnConfig controls how shells randomize new bodies. The core never reads
// it; it rides along in the config file so the whole sandbox is tuned in one
// place.
type SpawnConfig struct {
	InitialBodies   int     `yaml:"initial_bodies"`
	MinRadius       float64 `yaml:"min_radius"`
	MaxRadius       float64 `yaml:"max_radius"`
	MaxInitialSpeed float64 `yaml:"max_initial_speed"`
}

// Config is the top-level sandbox configuration.
type Config struct {
	World WorldConfig `yaml:"world"`
	Spawn SpawnConfig `yaml:"spawn"`
}

// DefaultConfig returns the configuration the sandbox ships with.
func DefaultConfig() Config {
	return Config{
		World: WorldConfig{
			Width:         1280,
			Height:        720,
			Gravity:       900,
			Restitution:   0.8,
			FixedStep:     1.0 / 120.0,
			MaxSubsteps:   8,
			MaxFrameDelta: 0.25,
			CellSizeMin:   16,
			CellSizeMax:   256,
			TuneInterval:  30,
		},
		Spawn: SpawnConfig{
			InitialBodies:   60,
			MinRadius:       8,
			MaxRadius:       28,
			MaxInitialSpeed: 120,
		},
	}
}

// LoadConfig reads a YAML config file. Fields absent from the file keep their
// [DefaultConfig] values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("pebble: load config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("pebble: parse config %s: %w", path, err)
	}
	if err := cfg.World.Validate(); err != nil {
		return cfg, fmt.Errorf("pebble: config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports the first invalid world parameter, or nil.
func (c WorldConfig) Validate() error {
	switch {
	case !(c.Width > 0) || !(c.Height > 0):
		return fmt.Errorf("playfield %gx%g: dimensions must be positive", c.Width, c.Height)
	case !isFinite(c.Gravity):
		return fmt.Errorf("gravity %g: must be finite", c.Gravity)
	case !isFinite(c.Restitution) || c.Restitution < 0 || c.Restitution > 1:
		return fmt.Errorf("restitution %g: must be in [0,1]", c.Restitution)
	case !(c.FixedStep > 0):
		return fmt.Errorf("fixed_step %g: must be positive", c.FixedStep)
	case c.MaxSubsteps < 1:
		return fmt.Errorf("max_substeps %d: must be at least 1", c.MaxSubsteps)
	case !(c.MaxFrameDelta > 0):
		return fmt.Errorf("max_frame_delta %g: must be positive", c.MaxFrameDelta)
	case !(c.CellSizeMin > 0) || c.CellSizeMax < c.CellSizeMin:
		return fmt.Errorf("cell size bounds [%g,%g]: invalid", c.CellSizeMin, c.CellSizeMax)
	case c.TuneInterval < 1:
		return fmt.Errorf("tune_interval %d: must be at least 1", c.TuneInterval)
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
