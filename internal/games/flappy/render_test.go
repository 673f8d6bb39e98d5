package flappy

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/flappyx/internal/config"
	"github.com/vovakirdan/flappyx/internal/core"
)

func screenContains(s *core.Screen, text string) bool {
	return strings.Contains(s.String(), text)
}

func TestRenderMenu(t *testing.T) {
	g := newTestGame(t, config.DefaultFlappyConfig())
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if !screenContains(screen, "FLAPPY X") {
		t.Error("menu title missing")
	}
	if !screenContains(screen, "Classic") {
		t.Error("selected skin missing from menu")
	}
	if !screenContains(screen, "Robotic@10") {
		t.Error("locked skins should be listed with their unlock score")
	}
}

func TestRenderPlaying(t *testing.T) {
	g := newTestGame(t, staticConfig())
	step(g, core.ActionStart)

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	// Bird at (150, 300) on an 800x600 canvas maps to cell (15, 12)
	cell := screen.GetCell(15, 12)
	if cell.Rune != BirdChar || cell.Color != core.ColorGold {
		t.Errorf("bird cell = %q/%d", cell.Rune, cell.Color)
	}
	if !screenContains(screen, "Score: 0") || !screenContains(screen, "Best: 0") {
		t.Error("HUD missing")
	}
	// First pipe at x=500 starts at column 50
	if screen.Get(50, 0) != PipeChar && screen.Get(50, 23) != PipeChar {
		t.Error("pipe missing at column 50")
	}
	if screenContains(screen, "GAME OVER") || screenContains(screen, "PAUSED") {
		t.Error("no overlay expected while playing")
	}
}

func TestRenderShieldAndEffectBars(t *testing.T) {
	g := newTestGame(t, staticConfig())
	step(g, core.ActionStart)
	g.effects.Activate(g.world, PowerUp{Kind: PowerUpShield, Duration: 5 * time.Second})

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if screen.Get(14, 11) != '┌' {
		t.Errorf("shield ring missing, got %q", screen.Get(14, 11))
	}
	if !screenContains(screen, "shield") {
		t.Error("effect bar missing")
	}
}

func TestRenderGameOver(t *testing.T) {
	g := newTestGame(t, staticConfig())
	step(g, core.ActionStart)
	g.world.Score = 3
	g.world.Bird.Y = -100
	step(g)

	screen := core.NewScreen(100, 30)
	g.Render(screen)

	for _, want := range []string{"GAME OVER", "NEW HIGH SCORE!", "Pipes passed: 3", "Success rate: 75%"} {
		if !screenContains(screen, want) {
			t.Errorf("game over screen missing %q", want)
		}
	}
}

func TestRenderDebugPanel(t *testing.T) {
	g := NewPractice()
	g.SetConfig(staticConfig())
	g.Reset(core.DefaultConfig())
	step(g, core.ActionStart)

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	// 16ms between steps measures as 63 fps
	for _, want := range []string{"DEBUG", "fps: 63", "jumps: 0", "tier: 1", "weather: "} {
		if !screenContains(screen, want) {
			t.Errorf("debug panel missing %q", want)
		}
	}
}

func TestRenderDoesNotMutate(t *testing.T) {
	g := newTestGame(t, config.DefaultFlappyConfig())
	step(g, core.ActionStart)
	for range 30 {
		step(g)
	}

	before := g.Snapshot()
	screen := core.NewScreen(80, 24)
	Render(screen, before)
	after := g.Snapshot()

	if before.Bird != after.Bird || before.Tick != after.Tick || len(before.Obstacles) != len(after.Obstacles) {
		t.Error("render changed the world")
	}
}

func TestRenderTinyScreen(t *testing.T) {
	g := newTestGame(t, config.DefaultFlappyConfig())
	step(g, core.ActionStart)

	// Must not panic on degenerate sizes
	for _, size := range [][2]int{{1, 1}, {3, 2}, {10, 3}} {
		g.Render(core.NewScreen(size[0], size[1]))
	}
}

func TestRenderPowerUpCoversIndicator(t *testing.T) {
	g := newTestGame(t, staticConfig())
	step(g, core.ActionStart)
	g.world.PowerUps = append(g.world.PowerUps, PowerUp{X: 400, Y: 300, Kind: PowerUpShield, Color: core.ColorSky})

	// 160x60 scales the 800x600 canvas by 0.2 x 0.1; a 15 unit indicator
	// spans canvas x 385..415 and y 285..315.
	screen := core.NewScreen(160, 60)
	g.Render(screen)

	glyph := PowerUpShield.Glyph()
	for _, c := range [][2]int{{77, 28}, {82, 28}, {77, 30}, {82, 30}, {80, 29}} {
		if got := screen.Get(c[0], c[1]); got != glyph {
			t.Errorf("cell %v = %q, want %q", c, got, glyph)
		}
	}
	for _, c := range [][2]int{{76, 29}, {83, 29}, {80, 27}, {80, 31}} {
		if got := screen.Get(c[0], c[1]); got == glyph {
			t.Errorf("cell %v outside the indicator drew %q", c, got)
		}
	}
}
