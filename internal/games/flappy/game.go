// Package flappy implements Flappy X, a side-scrolling flappy bird game with
// power-ups and ambient weather.
//
// The simulation runs on a logical canvas (800x600 by default) and is
// independent of the terminal size; Render scales it onto the screen.
// Physics advances one fixed step per Step call while timers (power-ups,
// weather, day/night) run on the wall time passed in by the driver.
package flappy

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/vovakirdan/flappyx/internal/config"
	"github.com/vovakirdan/flappyx/internal/core"
	"github.com/vovakirdan/flappyx/internal/registry"
)

// Mode identifiers.
const (
	ModeClassic  = "flappy"
	ModePractice = "flappy_practice"
)

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets a custom config file path for subsequent games.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset for subsequent games.
// Unknown names keep the config file's own difficulty settings.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// Game implements the Flappy X state machine on top of a World.
type Game struct {
	id       string
	title    string
	practice bool

	runtime core.RuntimeConfig
	rng     *rand.Rand
	world   *World

	spawner    *Spawner
	physics    *Physics
	collisions *Collisions
	effects    Effects
	ambient    *Ambient
	difficulty *config.DifficultyManager

	pending *config.FlappyConfig // Applied at the next Start
}

// New creates a classic game.
func New() *Game {
	return &Game{id: ModeClassic, title: "Flappy X"}
}

// NewPractice creates a game with the debug cheats enabled from the start.
func NewPractice() *Game {
	return &Game{id: ModePractice, title: "Flappy X (Practice)", practice: true}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.title
}

// Reset builds a fresh session sitting in the menu. High score, skin,
// display mode and the hit counter survive a reset.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if runtime.TickRate <= 0 {
		runtime.TickRate = core.DefaultConfig().TickRate
	}
	g.runtime = runtime
	g.rng = newRNG(runtime.Seed)

	var cfg config.FlappyConfig
	if g.pending != nil {
		cfg = *g.pending
		g.pending = nil
	} else {
		cfg = loadConfig()
	}

	prev := g.world
	g.world = newWorld(cfg)
	g.world.Debug = g.practice
	if prev != nil {
		g.world.HighScore = prev.HighScore
		g.world.Skin = prev.Skin
		g.world.DarkMode = prev.DarkMode
		g.world.Stats.Hits = prev.Stats.Hits
	}
	g.applyConfig(cfg)
}

// loadConfig reads the configuration, falling back to defaults on error.
func loadConfig() config.FlappyConfig {
	cfg, err := config.LoadFlappy(configPath)
	if err != nil {
		cfg = config.DefaultFlappyConfig()
	}
	if difficultyPreset != "" {
		config.ApplyFlappyPreset(&cfg, difficultyPreset)
	}
	return cfg
}

// applyConfig rebuilds the engines around cfg.
func (g *Game) applyConfig(cfg config.FlappyConfig) {
	g.world.Cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	g.spawner = NewSpawner(g.rng)
	g.physics = NewPhysics(g.rng, g.spawner, g.difficulty)
	g.collisions = NewCollisions(g.rng, g.spawner)
	g.ambient = NewAmbient(g.rng, g.spawner)
	g.world.Tier = g.difficulty.Tier(g.world.Score)
}

// SetConfig replaces the configuration. It takes effect at the next Start
// so a running life keeps its geometry.
func (g *Game) SetConfig(cfg config.FlappyConfig) {
	if difficultyPreset != "" {
		config.ApplyFlappyPreset(&cfg, difficultyPreset)
	}
	g.pending = &cfg
}

// Config returns the configuration of the current life.
func (g *Game) Config() config.FlappyConfig {
	return g.world.Cfg
}

// Step advances the game by one tick. dt is the wall time since the
// previous tick; it drives effect and ambient timers only.
func (g *Game) Step(in core.InputFrame, dt time.Duration) core.StepResult {
	w := g.world
	if dt > 0 {
		w.FPS = int(math.Round(float64(time.Second) / float64(dt)))
	}
	g.ambient.Update(w, dt)

	if in.Has(core.ActionToggleDark) {
		w.DarkMode = !w.DarkMode
	}
	if in.Has(core.ActionToggleDebug) {
		w.Debug = !w.Debug
	}

	var out Outcome
	switch w.Phase {
	case PhaseMenu:
		if in.Has(core.ActionSkinPrev) {
			w.Skin = nextUnlocked(w.Skin, -1, w.HighScore)
		}
		if in.Has(core.ActionSkinNext) {
			w.Skin = nextUnlocked(w.Skin, 1, w.HighScore)
		}
		if in.Has(core.ActionStart) {
			g.Start()
		}
	case PhaseOver:
		if in.Has(core.ActionStart) {
			g.Start()
		}
	case PhasePaused:
		if in.Has(core.ActionPause) {
			w.Phase = PhasePlaying
		}
	case PhasePlaying:
		if in.Has(core.ActionPause) {
			w.Phase = PhasePaused
			break
		}
		out = g.tick(in, dt)
	}

	return core.StepResult{
		State:        g.State(),
		LifeEnded:    out.LifeEnded,
		NewHighScore: out.NewHighScore,
	}
}

// tick runs one playing step: cheats, flap, physics, collisions, effect expiry.
func (g *Game) tick(in core.InputFrame, dt time.Duration) Outcome {
	w := g.world
	w.Clock += dt
	w.Tick++

	if w.Debug {
		g.cheat(in)
	}
	if in.Has(core.ActionFlap) {
		g.physics.Flap(w)
	}

	g.physics.Advance(w, 1)
	out := g.collisions.Resolve(w)
	g.effects.Tick(w, w.Clock)
	w.Tier = g.difficulty.Tier(w.Score)
	return out
}

// cheat applies the practice commands.
func (g *Game) cheat(in core.InputFrame) {
	w := g.world
	if in.Has(core.ActionGodMode) {
		shield := g.spawner.NewPowerUp(w.Cfg.PowerUps, PowerUpShield, w.Bird.X, w.Bird.Y)
		shield.Duration = config.Millis(w.Cfg.Practice.GodModeMS)
		g.effects.Activate(w, shield)
	}
	if in.Has(core.ActionSpawnPowerUp) {
		x := w.Bird.X + w.Cfg.Practice.SpawnOffsetX
		w.PowerUps = append(w.PowerUps, g.spawner.RandomPowerUp(w.Cfg.PowerUps, x, w.Bird.Y))
	}
}

// Start begins a new life: bird, pools, effects and score are reset and the
// opening obstacles are placed.
func (g *Game) Start() {
	if g.pending != nil {
		g.applyConfig(*g.pending)
		g.pending = nil
	}

	w := g.world
	w.Phase = PhasePlaying
	w.resetBird()
	w.Obstacles = nil
	w.PowerUps = nil
	w.Effects = nil
	w.Particles = nil
	w.Multiplier = 1
	w.Score = 0
	w.NewRecord = false
	w.Message = ""
	w.Stats.Jumps = 0
	w.Tick = 0
	w.Clock = 0
	w.Background = Background{}

	g.spawner.PreSpawn(w)
	g.ambient.Regenerate(w)
	w.Tier = g.difficulty.Tier(0)
}

// SetHighScore seeds the high score, typically from storage. It never lowers it.
func (g *Game) SetHighScore(n int) {
	g.world.HighScore = max(g.world.HighScore, n)
}

// SelectSkin picks a skin by catalog index.
func (g *Game) SelectSkin(index int) error {
	if index < 0 || index >= len(Skins) {
		return fmt.Errorf("%w: %d", ErrUnknownSkin, index)
	}
	s := Skins[index]
	if !s.Unlocked(g.world.HighScore) {
		return fmt.Errorf("%w: %s needs a best score of %d", ErrSkinLocked, s.Name, s.UnlockAt)
	}
	g.world.Skin = index
	return nil
}

// SetDarkMode sets the display-mode flag.
func (g *Game) SetDarkMode(on bool) {
	g.world.DarkMode = on
}

// Render draws the current frame to the screen.
func (g *Game) Render(dst *core.Screen) {
	Render(dst, g.Snapshot())
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	w := g.world
	return core.GameState{
		Score:     w.Score,
		HighScore: w.HighScore,
		GameOver:  w.Phase == PhaseOver,
		Paused:    w.Phase == PhasePaused,
		InMenu:    w.Phase == PhaseMenu,
		Skin:      w.Skin,
		DarkMode:  w.DarkMode,
		Message:   w.Message,
	}
}

// Register games on package load
func init() {
	registry.Register(ModeClassic, func() registry.Game {
		return New()
	})
	registry.Register(ModePractice, func() registry.Game {
		return NewPractice()
	})
}
