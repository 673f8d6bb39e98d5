package flappy

import (
	"math/rand"

	"github.com/vovakirdan/flappyx/internal/config"
)

// Spawner creates and recycles obstacles, power-ups and weather particles.
type Spawner struct {
	rng *rand.Rand
}

// NewSpawner creates a spawner drawing from rng.
func NewSpawner(rng *rand.Rand) *Spawner {
	return &Spawner{rng: rng}
}

// SpawnObstacle creates an obstacle at x with a random gap position.
func (s *Spawner) SpawnObstacle(cfg config.Obstacles, canvasH, x float64) Obstacle {
	top := uniform(s.rng, cfg.MinMargin, canvasH-cfg.Gap-cfg.MinMargin)
	return Obstacle{
		X:              x,
		GapTop:         top,
		GapBottom:      top + cfg.Gap,
		CarriesPowerUp: chance(s.rng, cfg.PowerUpChance),
	}
}

// PreSpawn fills an empty world with the staggered opening obstacles.
func (s *Spawner) PreSpawn(w *World) {
	oc := w.Cfg.Obstacles
	for i := range oc.InitialCount {
		x := oc.InitialOffset + float64(i)*oc.SpawnInterval
		w.Obstacles = append(w.Obstacles, s.SpawnObstacle(oc, w.Cfg.Canvas.Height, x))
	}
}

// Maintain appends a new obstacle once the trailing one has moved far enough
// from the right edge. An empty pool spawns at the right edge.
func (s *Spawner) Maintain(w *World) {
	oc := w.Cfg.Obstacles
	last, ok := w.trailing()
	switch {
	case !ok:
		w.Obstacles = append(w.Obstacles, s.SpawnObstacle(oc, w.Cfg.Canvas.Height, w.Cfg.Canvas.Width))
	case last.X < w.Cfg.Canvas.Width-oc.SpawnInterval:
		w.Obstacles = append(w.Obstacles, s.SpawnObstacle(oc, w.Cfg.Canvas.Height, last.X+oc.SpawnInterval))
	}
}

// Collect removes obstacles that are fully off the left edge, and power-ups
// that were collected or drifted past the despawn line.
func (s *Spawner) Collect(w *World) {
	width := w.Cfg.Obstacles.Width
	obstacles := w.Obstacles[:0]
	for _, o := range w.Obstacles {
		if o.X > -width {
			obstacles = append(obstacles, o)
		}
	}
	w.Obstacles = obstacles

	powerUps := w.PowerUps[:0]
	for _, p := range w.PowerUps {
		if !p.Collected && p.X > w.Cfg.PowerUps.DespawnX {
			powerUps = append(powerUps, p)
		}
	}
	w.PowerUps = powerUps
}

// NewPowerUp creates a pickup of kind centered at x, y.
func (s *Spawner) NewPowerUp(cfg config.PowerUps, kind PowerUpKind, x, y float64) PowerUp {
	return PowerUp{
		X:        x,
		Y:        y,
		Kind:     kind,
		Color:    kind.Color(),
		Duration: kind.duration(cfg),
	}
}

// RandomPowerUp creates a pickup of a uniformly random kind.
func (s *Spawner) RandomPowerUp(cfg config.PowerUps, x, y float64) PowerUp {
	kind := PowerUpKind(s.rng.Intn(int(powerUpKindCount)))
	return s.NewPowerUp(cfg, kind, x, y)
}

// WeatherPool generates the particle pool for a weather kind.
// Clear weather has no particles.
func (s *Spawner) WeatherPool(cfg config.FlappyConfig, kind Weather) []WeatherParticle {
	var pool config.WeatherPool
	switch kind {
	case WeatherRain:
		pool = cfg.Ambient.Rain
	case WeatherSnow:
		pool = cfg.Ambient.Snow
	default:
		return nil
	}

	drops := make([]WeatherParticle, 0, pool.Count)
	for range pool.Count {
		d := WeatherParticle{
			X:     uniform(s.rng, 0, cfg.Canvas.Width),
			Y:     uniform(s.rng, 0, cfg.Canvas.Height),
			Speed: uniform(s.rng, pool.MinSpeed, pool.MaxSpeed),
		}
		extent := uniform(s.rng, pool.MinExtent, pool.MaxExtent)
		if kind == WeatherRain {
			d.Length = extent
		} else {
			d.Size = extent
		}
		drops = append(drops, d)
	}
	return drops
}

// wrapX returns a fresh horizontal position for a recycled weather particle.
func (s *Spawner) wrapX(width float64) float64 {
	return uniform(s.rng, 0, width)
}
