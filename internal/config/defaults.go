package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the built-in configuration.
// It mirrors defaults/flappy.yaml and is used when the embedded file
// cannot be parsed.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Canvas: Canvas{
			Width:  800,
			Height: 600,
		},
		Physics: Physics{
			Gravity:          0.5,
			FlapImpulse:      -12,
			JetBoostImpulse:  -15,
			ScrollSpeed:      3,
			SlowMotionFactor: 0.5,
		},
		Bird: Bird{
			X:    150,
			Y:    300,
			Size: 40,
		},
		Obstacles: Obstacles{
			Width:         80,
			Gap:           200,
			SpawnInterval: 300,
			MinMargin:     100,
			InitialCount:  3,
			InitialOffset: 500,
			PowerUpChance: 0.3,
		},
		PowerUps: PowerUps{
			DropChance:    0.5,
			PickupRadius:  30,
			DespawnX:      -50,
			ShieldMS:      5000,
			SlowMotionMS:  3000,
			JetBoostMS:    2000,
			IndicatorSize: 15,
		},
		Particles: Particles{
			Burst:  5,
			Life:   20,
			Spread: 2,
		},
		Ambient: Ambient{
			WeatherIntervalMS:  30000,
			DayNightIntervalMS: 45000,
			WrapY:              -20,
			Rain: WeatherPool{
				Count:     100,
				MinSpeed:  3,
				MaxSpeed:  8,
				MinExtent: 10,
				MaxExtent: 30,
			},
			Snow: WeatherPool{
				Count:     50,
				MinSpeed:  1,
				MaxSpeed:  3,
				MinExtent: 2,
				MaxExtent: 5,
			},
		},
		Practice: Practice{
			GodModeMS:    10000,
			SpawnOffsetX: 100,
		},
		Difficulty: DifficultyConfig{
			Enabled:       true,
			PointsPerTier: 10,
			MaxTier:       3,
			InitialTier:   1,
			SpeedPerTier:  0.1,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
