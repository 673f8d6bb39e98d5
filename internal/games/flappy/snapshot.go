package flappy

import (
	"slices"
	"time"
)

// EffectView is an active effect as seen by the renderer.
type EffectView struct {
	Kind      PowerUpKind
	Remaining float64 // Fraction of the duration left, in [0, 1]
}

// Snapshot is an immutable copy of the world for one rendered frame.
// Slices are copies; mutating them does not affect the game.
type Snapshot struct {
	Tick  uint64
	Clock time.Duration
	Phase Phase

	CanvasW, CanvasH float64
	PipeWidth        float64
	Gap              float64
	PowerUpSize      float64

	Bird      Bird
	Obstacles []Obstacle
	PowerUps  []PowerUp
	Particles []Particle
	Drops     []WeatherParticle
	Effects   []EffectView

	Score      int
	HighScore  int
	NewRecord  bool
	Tier       int
	Multiplier float64
	Shielded   bool

	Weather    Weather
	TimeOfDay  TimeOfDay
	Background Background

	Message     string
	Skin        Skin
	SkinIndex   int
	SkinLocked  []bool
	DarkMode    bool
	Debug       bool
	Stats       Stats
	FPS         int
	PracticeRun bool
}

// SuccessRate is the game over screen's success percentage.
func (s Snapshot) SuccessRate() int {
	return 100 * s.Score / (s.Score + 1)
}

// Snapshot returns a deep copy of the current world.
func (g *Game) Snapshot() Snapshot {
	w := g.world
	snap := Snapshot{
		Tick:        w.Tick,
		Clock:       w.Clock,
		Phase:       w.Phase,
		CanvasW:     w.Cfg.Canvas.Width,
		CanvasH:     w.Cfg.Canvas.Height,
		PipeWidth:   w.Cfg.Obstacles.Width,
		PowerUpSize: w.Cfg.PowerUps.IndicatorSize,
		Gap:         w.Cfg.Obstacles.Gap,
		Bird:        w.Bird,
		Obstacles:   slices.Clone(w.Obstacles),
		PowerUps:    slices.Clone(w.PowerUps),
		Particles:   slices.Clone(w.Particles),
		Drops:       slices.Clone(w.Drops),
		Score:       w.Score,
		HighScore:   w.HighScore,
		NewRecord:   w.NewRecord,
		Tier:        w.Tier,
		Multiplier:  w.Multiplier,
		Shielded:    g.effects.Active(w, PowerUpShield),
		Weather:     w.Weather,
		TimeOfDay:   w.TimeOfDay,
		Background:  w.Background,
		Message:     w.Message,
		Skin:        skinAt(w.Skin),
		SkinIndex:   w.Skin,
		DarkMode:    w.DarkMode,
		Debug:       w.Debug,
		Stats:       w.Stats,
		FPS:         w.FPS,
		PracticeRun: g.practice,
	}

	snap.Effects = make([]EffectView, 0, len(w.Effects))
	for _, e := range w.Effects {
		snap.Effects = append(snap.Effects, EffectView{Kind: e.Kind, Remaining: e.Remaining(w.Clock)})
	}

	snap.SkinLocked = make([]bool, len(Skins))
	for i, s := range Skins {
		snap.SkinLocked[i] = !s.Unlocked(w.HighScore)
	}
	return snap
}
