package kaleido

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Reference timing constants. The simulation treats one frame at 60 TPS as
// the unit tick: opacity decay and color oscillation advance by a fixed
// amount per tick, while positions scale with real elapsed time.
const (
	FrameUnit = 1.0 / 60.0

	// OpacityDecay is the per-tick opacity loss (zero after ~200 ticks).
	OpacityDecay = 0.005

	// ColorStep is the per-tick color oscillation increment.
	ColorStep = 0.005

	// DragSpawnThreshold is the cumulative pointer travel, in pixels,
	// required between spawns during a drag gesture.
	DragSpawnThreshold = 10.0
)

// Settings clamp ranges. Out-of-range values are clamped, never rejected.
const (
	MinElementSize = 10.0
	MaxElementSize = 100.0
	MinSpeed       = 0.0
	MaxSpeed       = 10.0
	MinSymmetry    = 2
	MaxSymmetry    = 12
)

// Config holds session configuration
type Config struct {
	// ScreenWidth is the window width in pixels
	ScreenWidth int `yaml:"screen_width"`

	// ScreenHeight is the window height in pixels
	ScreenHeight int `yaml:"screen_height"`

	// StarCount is the fixed starfield population
	StarCount int `yaml:"star_count"`

	// StarTick is the starfield update period in seconds
	StarTick float64 `yaml:"star_tick"`

	// AutoSpawnEvery is the period of the random auto-spawner in seconds
	AutoSpawnEvery float64 `yaml:"auto_spawn_every"`

	// PruneOffscreen removes elements that drift fully outside an
	// expanded canvas rectangle. Off by default: elements normally die
	// by opacity decay alone.
	PruneOffscreen bool `yaml:"prune_offscreen"`

	// Seed seeds the session RNG; 0 means time-based
	Seed int64 `yaml:"seed"`

	// Default user-adjustable settings
	Symmetry    int     `yaml:"symmetry"`
	ElementSize float64 `yaml:"element_size"`
	SpawnSpeed  float64 `yaml:"spawn_speed"`

	// Muted starts the session with audio off
	Muted bool `yaml:"muted"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{
		ScreenWidth:    1024,
		ScreenHeight:   768,
		StarCount:      100,
		StarTick:       0.05,
		AutoSpawnEvery: 0.3,
		PruneOffscreen: false,
		Symmetry:       6,
		ElementSize:    40,
		SpawnSpeed:     2.0,
	}
}

// LoadConfig reads a yaml config file, overlaying it on the defaults.
// Loaded values are sanitized: a config file can tune the session but
// never wedge it.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg.sanitized(), nil
}

// sanitized replaces values the simulation cannot run with: dimensions
// must be positive, the star population non-negative, and the period
// accumulators in Session.Advance need strictly positive periods or
// their drain loops never terminate.
func (c Config) sanitized() Config {
	def := DefaultConfig()
	if c.ScreenWidth <= 0 {
		c.ScreenWidth = def.ScreenWidth
	}
	if c.ScreenHeight <= 0 {
		c.ScreenHeight = def.ScreenHeight
	}
	if c.StarCount < 0 {
		c.StarCount = 0
	}
	if c.StarTick <= 0 {
		c.StarTick = def.StarTick
	}
	if c.AutoSpawnEvery <= 0 {
		c.AutoSpawnEvery = def.AutoSpawnEvery
	}
	return c
}

// SaveConfig writes the configuration as yaml.
func SaveConfig(path string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// CanvasCenter returns the canvas midpoint, the pivot for symmetry copies.
func (c Config) CanvasCenter() Vec2 {
	return Vec2{float64(c.ScreenWidth) / 2, float64(c.ScreenHeight) / 2}
}
