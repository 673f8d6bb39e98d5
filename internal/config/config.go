// Package config provides YAML-based game configuration loading and
// difficulty management for Flappy X.
package config

import (
	"errors"
	"fmt"
	"time"
)

// FlappyConfig contains all tunables of the simulation.
// Distances are in logical canvas units, speeds in units per tick,
// durations in milliseconds of wall-clock time.
type FlappyConfig struct {
	Canvas     Canvas           `yaml:"canvas"`
	Physics    Physics          `yaml:"physics"`
	Bird       Bird             `yaml:"bird"`
	Obstacles  Obstacles        `yaml:"obstacles"`
	PowerUps   PowerUps         `yaml:"power_ups"`
	Particles  Particles        `yaml:"particles"`
	Ambient    Ambient          `yaml:"ambient"`
	Practice   Practice         `yaml:"practice"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// Canvas is the logical play field. Renderers scale it to their output.
type Canvas struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Physics defines bird kinematics and scrolling.
type Physics struct {
	Gravity          float64 `yaml:"gravity"`
	FlapImpulse      float64 `yaml:"flap_impulse"`
	JetBoostImpulse  float64 `yaml:"jet_boost_impulse"`
	ScrollSpeed      float64 `yaml:"scroll_speed"`
	SlowMotionFactor float64 `yaml:"slow_motion_factor"`
}

// Bird defines the spawn position and hitbox of the bird.
type Bird struct {
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
	Size float64 `yaml:"size"`
}

// Obstacles defines pipe geometry and spawning.
type Obstacles struct {
	Width         float64 `yaml:"width"`
	Gap           float64 `yaml:"gap"`
	SpawnInterval float64 `yaml:"spawn_interval"`
	MinMargin     float64 `yaml:"min_margin"`
	InitialCount  int     `yaml:"initial_count"`
	InitialOffset float64 `yaml:"initial_offset"`
	PowerUpChance float64 `yaml:"power_up_chance"` // Chance a pipe carries a potential drop
}

// PowerUps defines pickup spawning and effect durations.
type PowerUps struct {
	DropChance    float64 `yaml:"drop_chance"` // Chance a carrying pipe actually drops on pass
	PickupRadius  float64 `yaml:"pickup_radius"`
	DespawnX      float64 `yaml:"despawn_x"`
	ShieldMS      int     `yaml:"shield_ms"`
	SlowMotionMS  int     `yaml:"slow_motion_ms"`
	JetBoostMS    int     `yaml:"jet_boost_ms"`
	IndicatorSize float64 `yaml:"indicator_size"` // Drawn radius of a pickup
}

// Particles defines the cosmetic flap burst.
type Particles struct {
	Burst  int     `yaml:"burst"`
	Life   int     `yaml:"life"` // ticks
	Spread float64 `yaml:"spread"`
}

// Ambient defines weather and day/night timing.
type Ambient struct {
	WeatherIntervalMS  int         `yaml:"weather_interval_ms"`
	DayNightIntervalMS int         `yaml:"day_night_interval_ms"`
	WrapY              float64     `yaml:"wrap_y"`
	Rain               WeatherPool `yaml:"rain"`
	Snow               WeatherPool `yaml:"snow"`
}

// WeatherPool defines how a weather kind's particle pool is generated.
// Extent is drop length for rain and flake radius for snow.
type WeatherPool struct {
	Count     int     `yaml:"count"`
	MinSpeed  float64 `yaml:"min_speed"`
	MaxSpeed  float64 `yaml:"max_speed"`
	MinExtent float64 `yaml:"min_extent"`
	MaxExtent float64 `yaml:"max_extent"`
}

// Practice defines the debug-mode cheat commands.
type Practice struct {
	GodModeMS    int     `yaml:"god_mode_ms"`
	SpawnOffsetX float64 `yaml:"spawn_offset_x"`
}

// DifficultyConfig defines the discrete difficulty tiers.
type DifficultyConfig struct {
	Enabled       bool    `yaml:"enabled"`
	PointsPerTier int     `yaml:"points_per_tier"`
	MaxTier       int     `yaml:"max_tier"`
	InitialTier   int     `yaml:"initial_tier"`
	SpeedPerTier  float64 `yaml:"speed_per_tier"` // Scroll speed bonus per tier above the first
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string into a preset. Unknown values map to "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// Millis converts a millisecond setting to a duration.
func Millis(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate rejects configurations the simulation cannot run with.
func (c FlappyConfig) Validate() error {
	switch {
	case c.Canvas.Width <= 0 || c.Canvas.Height <= 0:
		return fmt.Errorf("%w: canvas must have positive size", ErrInvalidConfig)
	case c.Bird.Size <= 0:
		return fmt.Errorf("%w: bird size must be positive", ErrInvalidConfig)
	case c.Obstacles.Width <= 0:
		return fmt.Errorf("%w: obstacle width must be positive", ErrInvalidConfig)
	case c.Obstacles.SpawnInterval <= 0:
		return fmt.Errorf("%w: spawn interval must be positive", ErrInvalidConfig)
	case c.Obstacles.Gap <= 0 || c.Obstacles.Gap+2*c.Obstacles.MinMargin > c.Canvas.Height:
		return fmt.Errorf("%w: gap %.0f with margin %.0f does not fit canvas height %.0f",
			ErrInvalidConfig, c.Obstacles.Gap, c.Obstacles.MinMargin, c.Canvas.Height)
	case c.Obstacles.PowerUpChance < 0 || c.Obstacles.PowerUpChance > 1:
		return fmt.Errorf("%w: power_up_chance must be within [0, 1]", ErrInvalidConfig)
	case c.PowerUps.DropChance < 0 || c.PowerUps.DropChance > 1:
		return fmt.Errorf("%w: drop_chance must be within [0, 1]", ErrInvalidConfig)
	case c.Physics.SlowMotionFactor <= 0:
		return fmt.Errorf("%w: slow_motion_factor must be positive", ErrInvalidConfig)
	case c.Difficulty.PointsPerTier <= 0 || c.Difficulty.MaxTier < 1:
		return fmt.Errorf("%w: difficulty tiers must be positive", ErrInvalidConfig)
	}
	return nil
}
