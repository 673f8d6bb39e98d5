package flappy

import (
	"testing"
	"time"

	"github.com/vovakirdan/flappyx/internal/config"
	"github.com/vovakirdan/flappyx/internal/core"
)

func newTestCollisions(cfg config.FlappyConfig) (*World, *Collisions) {
	rng := newRNG(5)
	w := newWorld(cfg)
	w.Phase = PhasePlaying
	return w, NewCollisions(rng, NewSpawner(rng))
}

func TestScoringExactlyOnce(t *testing.T) {
	w, c := newTestCollisions(config.DefaultFlappyConfig())
	w.Obstacles = []Obstacle{
		{X: 60, GapTop: 200, GapBottom: 400},  // right edge 140, passed
		{X: 70, GapTop: 200, GapBottom: 400},  // right edge 150, level with the bird
		{X: 400, GapTop: 200, GapBottom: 400}, // ahead
	}

	out := c.Resolve(w)
	if out.Scored != 1 || w.Score != 1 {
		t.Fatalf("scored %d (score %d), expected 1", out.Scored, w.Score)
	}
	if !w.Obstacles[0].Scored || w.Obstacles[1].Scored || w.Obstacles[2].Scored {
		t.Errorf("unexpected scored flags %+v", w.Obstacles)
	}

	for range 5 {
		c.Resolve(w)
	}
	if w.Score != 1 {
		t.Errorf("obstacle scored more than once, score %d", w.Score)
	}

	w.Obstacles[1].X = 69.9
	c.Resolve(w)
	if w.Score != 2 {
		t.Errorf("score = %d after second obstacle passed, expected 2", w.Score)
	}
}

func TestScoringDropsPowerUp(t *testing.T) {
	tests := []struct {
		name    string
		chance  float64
		carries bool
		drops   int
	}{
		{"carrier always drops", 1, true, 1},
		{"carrier never drops", 0, true, 0},
		{"plain obstacle", 1, false, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.DefaultFlappyConfig()
			cfg.PowerUps.DropChance = tc.chance
			w, c := newTestCollisions(cfg)
			w.Obstacles = []Obstacle{{X: 60, GapTop: 220, GapBottom: 420, CarriesPowerUp: tc.carries}}

			c.Resolve(w)
			if len(w.PowerUps) != tc.drops {
				t.Fatalf("dropped %d power-ups, expected %d", len(w.PowerUps), tc.drops)
			}
			if tc.drops == 1 {
				// The drop lands at the passed obstacle's x, behind the bird.
				p := w.PowerUps[0]
				if p.X != 60 || p.Y != 320 {
					t.Errorf("power-up at (%v, %v), expected obstacle x and gap centre (60, 320)", p.X, p.Y)
				}
				if cx, _ := w.Bird.Rect().Center(); p.X >= cx {
					t.Errorf("drop at x=%v should trail the bird centre %v", p.X, cx)
				}
				if p.Duration != p.Kind.duration(cfg.PowerUps) || p.Color != p.Kind.Color() {
					t.Errorf("power-up not built from its kind: %+v", p)
				}
			}
		})
	}
}

func TestPickupRadius(t *testing.T) {
	w, c := newTestCollisions(config.DefaultFlappyConfig())
	cx, cy := w.Bird.Rect().Center()

	w.PowerUps = []PowerUp{
		{X: cx + 29, Y: cy, Kind: PowerUpSlowMotion, Duration: time.Second},
		{X: cx + 30, Y: cy, Kind: PowerUpJetBoost, Duration: time.Second},
		{X: cx, Y: cy, Kind: PowerUpJetBoost, Duration: time.Second, Collected: true},
	}

	out := c.Resolve(w)
	if len(out.PickedUp) != 1 || out.PickedUp[0] != PowerUpSlowMotion {
		t.Fatalf("picked up %v, expected only slow motion", out.PickedUp)
	}
	if !w.PowerUps[0].Collected || w.PowerUps[1].Collected {
		t.Errorf("unexpected collected flags %+v", w.PowerUps)
	}
	if len(w.Effects) != 1 || w.Multiplier != 0.5 {
		t.Errorf("slow motion should be active: effects %d multiplier %v", len(w.Effects), w.Multiplier)
	}
	if w.Bird.Velocity != 0 {
		t.Error("already collected jet boost must be ignored")
	}
}

func TestObstacleCollision(t *testing.T) {
	tests := []struct {
		name   string
		birdY  float64
		gapTop float64
		hit    bool
	}{
		{"inside gap", 300, 250, false},
		{"touching gap top", 250, 250, false},
		{"touching gap bottom", 410, 250, false},
		{"above gap", 249, 250, true},
		{"below gap", 411, 250, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w, c := newTestCollisions(config.DefaultFlappyConfig())
			w.Bird.Y = tc.birdY
			w.Obstacles = []Obstacle{{X: 120, GapTop: tc.gapTop, GapBottom: tc.gapTop + 200}}

			out := c.Resolve(w)
			if out.LifeEnded != tc.hit {
				t.Errorf("LifeEnded = %v, expected %v", out.LifeEnded, tc.hit)
			}
			if tc.hit && (w.Phase != PhaseOver || w.Stats.Hits != 1 || w.Message == "") {
				t.Errorf("life end not recorded: phase %v hits %d message %q", w.Phase, w.Stats.Hits, w.Message)
			}
		})
	}
}

func TestNoCollisionWithoutHorizontalOverlap(t *testing.T) {
	w, c := newTestCollisions(config.DefaultFlappyConfig())
	w.Obstacles = []Obstacle{
		{X: 70, GapTop: 0, GapBottom: 1},  // ends at the bird's left edge
		{X: 190, GapTop: 0, GapBottom: 1}, // starts at the bird's right edge
	}

	if out := c.Resolve(w); out.LifeEnded {
		t.Error("touching edges should not collide")
	}
}

func TestBoundsCollision(t *testing.T) {
	tests := []struct {
		y   float64
		hit bool
	}{
		{0, false},
		{560, false},
		{-0.5, true},
		{560.5, true},
	}

	for _, tc := range tests {
		w, c := newTestCollisions(config.DefaultFlappyConfig())
		w.Bird.Y = tc.y
		if out := c.Resolve(w); out.LifeEnded != tc.hit {
			t.Errorf("y=%v: LifeEnded = %v, expected %v", tc.y, out.LifeEnded, tc.hit)
		}
	}
}

func TestShieldBlocksEveryCollision(t *testing.T) {
	for _, y := range []float64{-100, 0, 300, 700} {
		w, c := newTestCollisions(config.DefaultFlappyConfig())
		c.effects.Activate(w, PowerUp{Kind: PowerUpShield, Duration: 5 * time.Second})
		w.Bird.Y = y
		w.Obstacles = []Obstacle{{X: 150, GapTop: 0, GapBottom: 1}}

		if out := c.Resolve(w); out.LifeEnded || w.Phase != PhasePlaying {
			t.Errorf("shielded bird at y=%v lost its life", y)
		}
	}
}

func TestShieldExpiryScenario(t *testing.T) {
	g := newTestGame(t, staticConfig())
	step(g, core.ActionStart)
	w := g.world

	for range 10 {
		step(g)
	}

	// Tick T: collect a shield
	cx, cy := w.Bird.Rect().Center()
	w.PowerUps = []PowerUp{g.spawner.NewPowerUp(w.Cfg.PowerUps, PowerUpShield, cx, cy)}
	step(g)
	if len(w.Effects) != 1 || w.Effects[0].Kind != PowerUpShield {
		t.Fatalf("shield not collected: %+v", w.Effects)
	}

	// From T+1 the bird sits inside a pipe
	blocker := Obstacle{X: 130, GapTop: 0, GapBottom: 10}
	w.Obstacles = append([]Obstacle{blocker}, w.Obstacles...)

	// 5000ms / 16ms = 312 ticks of protection
	for k := 1; k <= 312; k++ {
		if res := step(g); res.LifeEnded {
			t.Fatalf("life ended at T+%d while shielded", k)
		}
	}
	res := step(g)
	if !res.LifeEnded || !res.State.GameOver {
		t.Error("life should end at T+313 once the shield expired")
	}
}
