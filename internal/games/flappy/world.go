package flappy

import (
	"time"

	"github.com/vovakirdan/flappyx/internal/config"
	"github.com/vovakirdan/flappyx/internal/core"
)

// Phase is the state of the game state machine.
type Phase int

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhasePaused
	PhaseOver
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseOver:
		return "over"
	default:
		return "unknown"
	}
}

// Weather is the ambient weather kind.
type Weather int

const (
	WeatherClear Weather = iota
	WeatherRain
	WeatherSnow
)

// String returns the weather name.
func (w Weather) String() string {
	switch w {
	case WeatherClear:
		return "clear"
	case WeatherRain:
		return "rain"
	case WeatherSnow:
		return "snow"
	default:
		return "unknown"
	}
}

// TimeOfDay is the ambient day/night flag.
type TimeOfDay int

const (
	Day TimeOfDay = iota
	Night
)

// String returns "day" or "night".
func (t TimeOfDay) String() string {
	if t == Night {
		return "night"
	}
	return "day"
}

// Bird is the player. X never changes after spawn.
type Bird struct {
	X, Y     float64
	Velocity float64
	Size     float64
}

// Rect returns the bird's square hitbox.
func (b Bird) Rect() core.Rect {
	return core.NewRect(b.X, b.Y, b.Size, b.Size)
}

// Obstacle is a pipe pair with a gap between GapTop and GapBottom.
type Obstacle struct {
	X              float64
	GapTop         float64
	GapBottom      float64
	Scored         bool
	CarriesPowerUp bool
}

// PowerUp is a pickup floating in the world. X, Y is its center.
type PowerUp struct {
	X, Y      float64
	Kind      PowerUpKind
	Color     core.Color
	Duration  time.Duration
	Collected bool
}

// ActiveEffect is a collected power-up whose timer is running.
// Start is a reading of World.Clock.
type ActiveEffect struct {
	Kind     PowerUpKind
	Start    time.Duration
	Duration time.Duration
}

// Expired reports whether the effect has run out at now.
func (e ActiveEffect) Expired(now time.Duration) bool {
	return now-e.Start >= e.Duration
}

// Remaining returns the fraction of the effect left at now, in [0, 1].
func (e ActiveEffect) Remaining(now time.Duration) float64 {
	if e.Duration <= 0 {
		return 0
	}
	left := e.Duration - (now - e.Start)
	return core.ClampF(float64(left)/float64(e.Duration), 0, 1)
}

// Particle is a cosmetic flap spark. Life counts down in ticks.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Life   int
	Color  core.Color
}

// WeatherParticle is a rain drop (Length) or snow flake (Size).
// It wraps back to the top instead of being destroyed.
type WeatherParticle struct {
	X, Y   float64
	Speed  float64
	Length float64
	Size   float64
}

// Background holds the parallax scroll offsets of the three scenery layers.
type Background struct {
	Sky      float64
	Mountain float64
	City     float64
}

// Parallax factors relative to the obstacle scroll speed.
const (
	skyParallax      = 0.5
	mountainParallax = 0.3
	cityParallax     = 0.7
)

// Stats are the per-player counters shown in the debug panel and game over screen.
// Jumps resets with each life, Hits accumulates over the session.
type Stats struct {
	Jumps int
	Hits  int
}

// World is the complete mutable simulation state. It is owned by Game and
// passed explicitly into every engine.
type World struct {
	Cfg config.FlappyConfig

	Phase Phase
	Bird  Bird

	Obstacles []Obstacle // oldest first, strictly increasing X
	PowerUps  []PowerUp
	Effects   []ActiveEffect
	Particles []Particle

	Weather       Weather
	TimeOfDay     TimeOfDay
	Drops         []WeatherParticle
	Background    Background
	WeatherTimer  time.Duration
	DayNightTimer time.Duration

	Score     int
	HighScore int
	NewRecord bool
	Tier      int

	// Multiplier scales gravity and scrolling. Slow motion lowers it.
	Multiplier float64

	// Tick counts physics steps of the current life.
	Tick uint64
	// Clock is wall time spent playing the current life. Effect timers read it.
	Clock time.Duration
	// AmbientClock is wall time since the game was created, in any phase.
	AmbientClock time.Duration
	// FPS is the frame rate measured from the last driver interval.
	FPS int

	Message  string
	Stats    Stats
	Skin     int
	DarkMode bool
	Debug    bool
}

// newWorld returns a world sitting in the menu.
func newWorld(cfg config.FlappyConfig) *World {
	w := &World{
		Cfg:        cfg,
		Phase:      PhaseMenu,
		Multiplier: 1,
		Tier:       1,
	}
	w.resetBird()
	return w
}

func (w *World) resetBird() {
	w.Bird = Bird{
		X:    w.Cfg.Bird.X,
		Y:    w.Cfg.Bird.Y,
		Size: w.Cfg.Bird.Size,
	}
}

// trailing returns the most recently spawned obstacle.
func (w *World) trailing() (Obstacle, bool) {
	if len(w.Obstacles) == 0 {
		return Obstacle{}, false
	}
	return w.Obstacles[len(w.Obstacles)-1], true
}
