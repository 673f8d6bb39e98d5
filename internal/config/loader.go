package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadFlappy loads the game configuration.
// Search order: customPath -> ~/.flappyx/configs/flappy.yaml -> ./configs/flappy.yaml -> embedded default.
// Files only need to list the keys they override; everything else keeps its default.
func LoadFlappy(customPath string) (FlappyConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return FlappyConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := ParseFlappy(data)
		if err != nil {
			return FlappyConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := UserConfigPath("flappy.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := ParseFlappy(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "flappy.yaml")); err == nil {
		if cfg, err := ParseFlappy(data); err == nil {
			return cfg, nil
		}
	}

	return embeddedFlappy(), nil
}

// ParseFlappy decodes YAML on top of the embedded defaults and validates the result.
func ParseFlappy(data []byte) (FlappyConfig, error) {
	cfg := embeddedFlappy()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return FlappyConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return FlappyConfig{}, err
	}
	return cfg, nil
}

// Marshal renders a configuration as YAML.
func Marshal(cfg FlappyConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

func embeddedFlappy() FlappyConfig {
	var cfg FlappyConfig
	if err := yaml.Unmarshal(defaultFlappyYAML, &cfg); err != nil {
		return DefaultFlappyConfig() // Fallback to hardcoded if embed fails
	}
	return cfg
}

// UserConfigPath returns the path to a user config file, or empty if home is unavailable.
func UserConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".flappyx", "configs", filename)
}

// ApplyFlappyPreset modifies the config based on a difficulty preset.
func ApplyFlappyPreset(cfg *FlappyConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	case DifficultyEasy:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialTier = 1
		cfg.Obstacles.Gap += 40
	case DifficultyNormal:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialTier = 1
	case DifficultyHard:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialTier = 2
		cfg.Obstacles.Gap -= 40
	}
}
