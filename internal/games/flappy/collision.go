package flappy

import (
	"math/rand"

	"github.com/vovakirdan/flappyx/internal/core"
)

// Outcome reports what happened during one collision pass.
type Outcome struct {
	Scored       int           // Obstacles passed this tick
	PickedUp     []PowerUpKind // Power-ups collected this tick
	LifeEnded    bool
	NewHighScore bool
}

// Collisions is the collision and scoring engine.
type Collisions struct {
	rng     *rand.Rand
	spawner *Spawner
	effects Effects
}

// NewCollisions creates the engine.
func NewCollisions(rng *rand.Rand, spawner *Spawner) *Collisions {
	return &Collisions{rng: rng, spawner: spawner}
}

// Resolve scores passed obstacles, collects nearby power-ups and ends the
// life on a hit. It runs once per tick after Physics.Advance.
func (c *Collisions) Resolve(w *World) Outcome {
	var out Outcome

	out.Scored = c.score(w)
	out.PickedUp = c.pickUp(w)

	if c.effects.Active(w, PowerUpShield) {
		return out
	}
	if c.hit(w) {
		out.LifeEnded = true
		out.NewHighScore = c.endLife(w)
	}
	return out
}

// score marks every obstacle the bird has fully passed. Each obstacle
// scores at most once.
func (c *Collisions) score(w *World) int {
	oc := w.Cfg.Obstacles
	scored := 0
	for i := range w.Obstacles {
		o := &w.Obstacles[i]
		if o.Scored || o.X+oc.Width >= w.Bird.X {
			continue
		}
		o.Scored = true
		w.Score++
		scored++
		if o.CarriesPowerUp && chance(c.rng, w.Cfg.PowerUps.DropChance) {
			w.PowerUps = append(w.PowerUps,
				c.spawner.RandomPowerUp(w.Cfg.PowerUps, o.X, o.GapTop+oc.Gap/2))
		}
	}
	return scored
}

func (c *Collisions) pickUp(w *World) []PowerUpKind {
	var kinds []PowerUpKind
	cx, cy := w.Bird.Rect().Center()
	for i := range w.PowerUps {
		p := &w.PowerUps[i]
		if p.Collected {
			continue
		}
		if core.Dist(cx, cy, p.X, p.Y) < w.Cfg.PowerUps.PickupRadius {
			p.Collected = true
			c.effects.Activate(w, *p)
			kinds = append(kinds, p.Kind)
		}
	}
	return kinds
}

// hit reports whether the bird touches a pipe or leaves the canvas vertically.
func (c *Collisions) hit(w *World) bool {
	b := w.Bird.Rect()
	if b.Y < 0 || b.Bottom() > w.Cfg.Canvas.Height {
		return true
	}
	for _, o := range w.Obstacles {
		pipe := core.NewRect(o.X, 0, w.Cfg.Obstacles.Width, w.Cfg.Canvas.Height)
		if !b.OverlapsX(pipe) {
			continue
		}
		if b.Y < o.GapTop || b.Bottom() > o.GapBottom {
			return true
		}
	}
	return false
}

// endLife moves the world to the over phase. It reports whether the
// high score was raised.
func (c *Collisions) endLife(w *World) bool {
	w.Phase = PhaseOver
	w.Stats.Hits++
	raised := false
	if w.Score > w.HighScore {
		w.HighScore = w.Score
		w.NewRecord = true
		raised = true
	}
	w.Message = endOfLifeMessage(c.rng, w.Stats.Jumps, w.HighScore)
	return raised
}
