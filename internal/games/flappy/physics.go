package flappy

import (
	"math/rand"

	"github.com/vovakirdan/flappyx/internal/config"
)

// Physics is the physics and spawn engine.
type Physics struct {
	rng        *rand.Rand
	spawner    *Spawner
	difficulty *config.DifficultyManager
}

// NewPhysics creates the engine. difficulty supplies the per-tier scroll bonus.
func NewPhysics(rng *rand.Rand, spawner *Spawner, difficulty *config.DifficultyManager) *Physics {
	return &Physics{rng: rng, spawner: spawner, difficulty: difficulty}
}

// Flap resets the bird's velocity to the flap impulse and emits a particle burst.
// Flapping never adds to the current velocity.
func (p *Physics) Flap(w *World) {
	color := skinAt(w.Skin).Color
	w.Bird.Velocity = w.Cfg.Physics.FlapImpulse
	w.Stats.Jumps++

	pc := w.Cfg.Particles
	for range pc.Burst {
		w.Particles = append(w.Particles, Particle{
			X:     w.Bird.X,
			Y:     w.Bird.Y + w.Bird.Size/2,
			VX:    uniform(p.rng, -pc.Spread, pc.Spread),
			VY:    uniform(p.rng, -pc.Spread, pc.Spread),
			Life:  pc.Life,
			Color: color,
		})
	}
}

// scrollSpeed returns how far the world scrolls per tick right now.
func (p *Physics) scrollSpeed(w *World) float64 {
	return w.Cfg.Physics.ScrollSpeed * w.Multiplier * p.difficulty.SpeedFactor(w.Tier)
}

// Advance moves the world forward by dt ticks. Velocity is updated before
// position, so the bird moves by its new velocity.
func (p *Physics) Advance(w *World, dt float64) {
	w.Bird.Velocity += w.Cfg.Physics.Gravity * w.Multiplier * dt
	w.Bird.Y += w.Bird.Velocity * dt

	speed := p.scrollSpeed(w) * dt
	for i := range w.Obstacles {
		w.Obstacles[i].X -= speed
	}
	for i := range w.PowerUps {
		w.PowerUps[i].X -= speed
	}

	w.Background.Sky += speed * skyParallax
	w.Background.Mountain += speed * mountainParallax
	w.Background.City += speed * cityParallax

	p.advanceParticles(w, dt)
	p.advanceWeather(w, dt)

	p.spawner.Collect(w)
	p.spawner.Maintain(w)
}

func (p *Physics) advanceParticles(w *World, dt float64) {
	kept := w.Particles[:0]
	for _, pt := range w.Particles {
		pt.X += pt.VX * dt
		pt.Y += pt.VY * dt
		pt.Life--
		if pt.Life > 0 {
			kept = append(kept, pt)
		}
	}
	w.Particles = kept
}

func (p *Physics) advanceWeather(w *World, dt float64) {
	for i := range w.Drops {
		d := &w.Drops[i]
		d.Y += d.Speed * dt
		if d.Y > w.Cfg.Canvas.Height {
			d.Y = w.Cfg.Ambient.WrapY
			d.X = p.spawner.wrapX(w.Cfg.Canvas.Width)
		}
	}
}
