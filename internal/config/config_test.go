package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestEmbeddedMatchesHardcodedDefaults(t *testing.T) {
	embedded := embeddedFlappy()
	if embedded != DefaultFlappyConfig() {
		t.Errorf("embedded YAML and DefaultFlappyConfig differ:\n%+v\n%+v", embedded, DefaultFlappyConfig())
	}
	if err := embedded.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadFlappyCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flappy.yaml")
	data := []byte("physics:\n  gravity: 0.8\nobstacles:\n  gap: 180\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFlappy(path)
	if err != nil {
		t.Fatalf("LoadFlappy() failed: %v", err)
	}

	if cfg.Physics.Gravity != 0.8 {
		t.Errorf("gravity = %v, expected 0.8", cfg.Physics.Gravity)
	}
	if cfg.Obstacles.Gap != 180 {
		t.Errorf("gap = %v, expected 180", cfg.Obstacles.Gap)
	}
	// Untouched keys keep their defaults
	if cfg.Physics.FlapImpulse != -12 {
		t.Errorf("flap impulse = %v, expected default -12", cfg.Physics.FlapImpulse)
	}
	if cfg.PowerUps.ShieldMS != 5000 {
		t.Errorf("shield duration = %d, expected default 5000", cfg.PowerUps.ShieldMS)
	}
}

func TestLoadFlappyMissingCustomPath(t *testing.T) {
	_, err := LoadFlappy(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing custom config")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error should wrap os.ErrNotExist, got %v", err)
	}
}

func TestLoadFlappyRejectsInvalidGeometry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flappy.yaml")
	if err := os.WriteFile(path, []byte("obstacles:\n  gap: 900\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := LoadFlappy(path)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestParseFlappyBadYAML(t *testing.T) {
	if _, err := ParseFlappy([]byte("physics: [unterminated")); err == nil {
		t.Error("expected parse error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*FlappyConfig)
	}{
		{"zero canvas", func(c *FlappyConfig) { c.Canvas.Width = 0 }},
		{"zero bird", func(c *FlappyConfig) { c.Bird.Size = 0 }},
		{"zero pipe width", func(c *FlappyConfig) { c.Obstacles.Width = 0 }},
		{"zero spawn interval", func(c *FlappyConfig) { c.Obstacles.SpawnInterval = 0 }},
		{"margins too large", func(c *FlappyConfig) { c.Obstacles.MinMargin = 250 }},
		{"chance above one", func(c *FlappyConfig) { c.Obstacles.PowerUpChance = 1.5 }},
		{"negative drop chance", func(c *FlappyConfig) { c.PowerUps.DropChance = -0.1 }},
		{"no slow motion factor", func(c *FlappyConfig) { c.Physics.SlowMotionFactor = 0 }},
		{"no tiers", func(c *FlappyConfig) { c.Difficulty.PointsPerTier = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultFlappyConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func TestApplyFlappyPreset(t *testing.T) {
	base := DefaultFlappyConfig()

	easy := base
	ApplyFlappyPreset(&easy, DifficultyEasy)
	if easy.Obstacles.Gap <= base.Obstacles.Gap {
		t.Error("easy preset should widen the gap")
	}

	hard := base
	ApplyFlappyPreset(&hard, DifficultyHard)
	if hard.Obstacles.Gap >= base.Obstacles.Gap || hard.Difficulty.InitialTier != 2 {
		t.Errorf("hard preset should narrow the gap and start at tier 2, got %+v", hard.Difficulty)
	}

	fixed := base
	ApplyFlappyPreset(&fixed, DifficultyFixed)
	if fixed.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}

	if ParsePreset("bogus") != "" {
		t.Error("unknown preset should parse to empty")
	}
}

func TestDifficultyTier(t *testing.T) {
	d := NewDifficultyManager(DefaultFlappyConfig().Difficulty)

	tests := []struct {
		score, tier int
	}{
		{0, 1},
		{9, 1},
		{10, 2},
		{19, 2},
		{20, 3},
		{30, 3},
		{40, 3},
		{50, 3},
	}
	for _, tc := range tests {
		if got := d.Tier(tc.score); got != tc.tier {
			t.Errorf("Tier(%d) = %d, expected %d", tc.score, got, tc.tier)
		}
	}

	fixed := DefaultFlappyConfig().Difficulty
	fixed.Enabled = false
	if got := NewDifficultyManager(fixed).Tier(100); got != 1 {
		t.Errorf("disabled progression should stay at tier 1, got %d", got)
	}
}

func TestDifficultySpeedFactor(t *testing.T) {
	d := NewDifficultyManager(DefaultFlappyConfig().Difficulty)

	if got := d.SpeedFactor(1); got != 1 {
		t.Errorf("SpeedFactor(1) = %v, expected 1", got)
	}
	if got := d.SpeedFactor(3); math.Abs(got-1.2) > 1e-9 {
		t.Errorf("SpeedFactor(3) = %v, expected 1.2", got)
	}
}

func TestWatcherReloadsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flappy.yaml")
	if err := os.WriteFile(path, []byte("physics:\n  gravity: 0.5\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher() failed: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("physics:\n  gravity: 0.9\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	select {
	case r := <-w.Reloads:
		if r.Err != nil {
			t.Fatalf("reload failed: %v", r.Err)
		}
		if r.Config.Physics.Gravity != 0.9 {
			t.Errorf("reloaded gravity = %v, expected 0.9", r.Config.Physics.Gravity)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for reload")
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "flappy.yaml")
	if err := os.WriteFile(path, []byte("{}\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher() failed: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x: 1\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	select {
	case r := <-w.Reloads:
		t.Errorf("unexpected reload %+v", r)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestDefaultYAMLMatchesDefaults(t *testing.T) {
	cfg, err := ParseFlappy(DefaultYAML())
	if err != nil {
		t.Fatalf("ParseFlappy(DefaultYAML()) failed: %v", err)
	}
	if cfg != DefaultFlappyConfig() {
		t.Errorf("embedded defaults differ from DefaultFlappyConfig:\n%+v\n%+v", cfg, DefaultFlappyConfig())
	}
	if cfg.PowerUps.IndicatorSize != 15 {
		t.Errorf("IndicatorSize = %v, want 15", cfg.PowerUps.IndicatorSize)
	}
}
