package flappy

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/flappyx/internal/core"
)

// Visual characters for rendering
const (
	BirdChar      = '█'
	BirdEyeChar   = '•'
	PipeChar      = '█'
	PipeCapTop    = '▄'
	PipeCapBottom = '▀'
	GapChar       = '░'
	ParticleChar  = '·'
	RainChar      = '|'
	SnowChar      = '*'
	StarChar      = '.'
	GroundChar    = '▔'
	MountainChar  = '▲'
	CityChar      = '▆'
)

// viewport maps logical canvas coordinates to screen cells.
type viewport struct {
	sx, sy float64
	w, h   int
}

func newViewport(dst *core.Screen, snap Snapshot) viewport {
	return viewport{
		sx: float64(dst.Width()) / snap.CanvasW,
		sy: float64(dst.Height()) / snap.CanvasH,
		w:  dst.Width(),
		h:  dst.Height(),
	}
}

func (v viewport) col(x float64) int { return int(x * v.sx) }
func (v viewport) row(y float64) int { return int(y * v.sy) }

// span returns the first cell and cell count covering [from, from+size),
// at least one cell wide.
func (v viewport) span(from, size, scale float64) (int, int) {
	start := int(from * scale)
	end := int((from + size) * scale)
	return start, max(1, end-start)
}

// Render draws a snapshot. It only reads snap.
func Render(dst *core.Screen, snap Snapshot) {
	dst.Clear()
	if snap.CanvasW <= 0 || snap.CanvasH <= 0 {
		return
	}
	v := newViewport(dst, snap)

	drawScenery(dst, v, snap)
	drawWeather(dst, v, snap)
	for _, o := range snap.Obstacles {
		drawObstacle(dst, v, snap, o)
	}
	for _, p := range snap.PowerUps {
		if !p.Collected {
			drawPowerUp(dst, v, snap.PowerUpSize, p)
		}
	}
	for _, p := range snap.Particles {
		dst.SetColored(v.col(p.X), v.row(p.Y), ParticleChar, p.Color)
	}
	drawBird(dst, v, snap)
	drawHUD(dst, snap)
	if snap.Debug {
		drawDebugPanel(dst, snap)
	}

	switch snap.Phase {
	case PhaseMenu:
		drawMenu(dst, snap)
	case PhasePaused:
		drawCenteredMessage(dst, []string{"PAUSED", "Press P to resume"}, core.ColorBrightWhite)
	case PhaseOver:
		drawGameOver(dst, snap)
	}
}

// drawPowerUp fills the cells covered by the pickup's indicator, which
// extends size canvas units around its centre.
func drawPowerUp(dst *core.Screen, v viewport, size float64, p PowerUp) {
	x0, cols := v.span(p.X-size, 2*size, v.sx)
	y0, rows := v.span(p.Y-size, 2*size, v.sy)
	dst.FillRect(x0, y0, cols, rows, p.Kind.Glyph(), p.Color)
}

// skyColor picks the accent color of background details.
func skyColor(snap Snapshot) core.Color {
	if snap.DarkMode || snap.TimeOfDay == Night {
		return core.ColorNight
	}
	return core.ColorSky
}

// drawScenery draws the parallax layers and the ground line.
func drawScenery(dst *core.Screen, v viewport, snap Snapshot) {
	if v.h < 4 {
		return
	}
	if snap.TimeOfDay == Night || snap.DarkMode {
		// Stars drift with the slowest layer.
		shift := int(snap.Background.Sky * v.sx)
		for x := range v.w {
			if (x+shift)%11 == 0 {
				dst.SetColored(x, (x*7+shift)%max(1, v.h/3), StarChar, core.ColorBrightWhite)
			}
		}
	}

	ground := v.h - 1
	mountainShift := int(snap.Background.Mountain * v.sx)
	cityShift := int(snap.Background.City * v.sx)
	for x := range v.w {
		if (x+mountainShift)%16 < 5 {
			dst.SetColored(x, ground-1, MountainChar, core.ColorDarkGray)
		}
		if (x+cityShift)%9 < 3 {
			dst.SetColored(x, ground-1, CityChar, skyColor(snap))
		}
	}
	dst.DrawHLine(0, ground, v.w, GroundChar, core.ColorGreen)
}

func drawWeather(dst *core.Screen, v viewport, snap Snapshot) {
	for _, d := range snap.Drops {
		if d.Y < 0 {
			continue
		}
		switch snap.Weather {
		case WeatherRain:
			dst.SetColored(v.col(d.X), v.row(d.Y), RainChar, core.ColorBlue)
		case WeatherSnow:
			dst.SetColored(v.col(d.X), v.row(d.Y), SnowChar, core.ColorWhite)
		}
	}
}

// drawObstacle renders a pipe pair with caps facing the gap.
func drawObstacle(dst *core.Screen, v viewport, snap Snapshot, o Obstacle) {
	x, w := v.span(o.X, snap.PipeWidth, v.sx)
	top := v.row(o.GapTop)
	bottom := v.row(o.GapBottom)

	dst.FillRect(x, 0, w, top, PipeChar, core.ColorGreen)
	dst.FillRect(x, bottom, w, v.h-bottom, PipeChar, core.ColorGreen)
	if top > 0 {
		dst.DrawHLine(x, top-1, w, PipeCapTop, core.ColorBrightGreen)
	}
	if bottom < v.h {
		dst.DrawHLine(x, bottom, w, PipeCapBottom, core.ColorBrightGreen)
	}
	if snap.Debug {
		dst.FillRect(x, top, w, bottom-top, GapChar, core.ColorDarkGray)
	}
}

func drawBird(dst *core.Screen, v viewport, snap Snapshot) {
	b := snap.Bird
	x, w := v.span(b.X, b.Size, v.sx)
	y, h := v.span(b.Y, b.Size, v.sy)

	if snap.Shielded {
		dst.DrawBox(x-1, y-1, w+2, h+2, PowerUpShield.Color())
	}
	dst.FillRect(x, y, w, h, BirdChar, snap.Skin.Color)
	if w > 1 {
		dst.SetColored(x+w-1, y, BirdEyeChar, core.ColorBrightWhite)
	}
}

func drawHUD(dst *core.Screen, snap Snapshot) {
	text := core.ColorBrightWhite
	if !snap.DarkMode && snap.TimeOfDay == Day {
		text = core.ColorWhite
	}
	dst.DrawTextColored(1, 0, fmt.Sprintf(" Score: %d ", snap.Score), text)
	dst.DrawTextColored(1, 1, fmt.Sprintf(" Best: %d ", snap.HighScore), text)

	const barWidth = 10
	for i, e := range snap.Effects {
		filled := int(e.Remaining * barWidth)
		bar := strings.Repeat("█", filled) + strings.Repeat(" ", barWidth-filled)
		dst.DrawTextColored(1, 2+i, fmt.Sprintf(" [%s] %s ", bar, e.Kind), e.Kind.Color())
	}
}

func drawDebugPanel(dst *core.Screen, snap Snapshot) {
	lines := []string{
		"DEBUG",
		fmt.Sprintf("fps: %d", snap.FPS),
		fmt.Sprintf("jumps: %d", snap.Stats.Jumps),
		fmt.Sprintf("hits: %d", snap.Stats.Hits),
		fmt.Sprintf("tier: %d", snap.Tier),
		fmt.Sprintf("speed: x%.1f", snap.Multiplier),
		fmt.Sprintf("weather: %s", snap.Weather),
		fmt.Sprintf("time: %s", snap.TimeOfDay),
		"G shield  X power-up",
	}
	width := 0
	for _, l := range lines {
		width = max(width, len(l))
	}
	x := dst.Width() - width - 2
	for i, l := range lines {
		dst.DrawTextColored(x, i, l, core.ColorYellow)
	}
}

func drawMenu(dst *core.Screen, snap Snapshot) {
	skinLine := fmt.Sprintf("< %s >", snap.Skin.Name)
	var locked []string
	for i, s := range Skins {
		if snap.SkinLocked[i] {
			locked = append(locked, fmt.Sprintf("%s@%d", s.Name, s.UnlockAt))
		}
	}
	lines := []string{
		"FLAPPY X",
		"",
		fmt.Sprintf("Best: %d", snap.HighScore),
		"Skin: " + skinLine,
	}
	if len(locked) > 0 {
		lines = append(lines, "Locked: "+strings.Join(locked, " "))
	}
	lines = append(lines, "", "ENTER start  SPACE flap  P pause", "T dark  D debug  Q quit")
	drawCenteredMessage(dst, lines, core.ColorBrightYellow)
}

func drawGameOver(dst *core.Screen, snap Snapshot) {
	lines := []string{"GAME OVER"}
	if snap.NewRecord {
		lines = append(lines, "NEW HIGH SCORE!")
	}
	lines = append(lines,
		"",
		fmt.Sprintf("Pipes passed: %d", snap.Score),
		fmt.Sprintf("Tier reached: %d", snap.Tier),
		fmt.Sprintf("Success rate: %d%%", snap.SuccessRate()),
		fmt.Sprintf("Jumps: %d", snap.Stats.Jumps),
		"",
		snap.Message,
		"",
		"Press ENTER or R to restart",
	)
	drawCenteredMessage(dst, lines, core.ColorBrightRed)
}

// drawCenteredMessage draws a framed message box in the center of the screen.
// The first line is the title and takes the accent color.
func drawCenteredMessage(dst *core.Screen, lines []string, accent core.Color) {
	inner := 0
	for _, l := range lines {
		inner = max(inner, len([]rune(l)))
	}
	boxW := min(inner+4, dst.Width())
	boxH := len(lines) + 2
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.FillRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH, accent)

	for i, l := range lines {
		c := core.ColorBrightWhite
		if i == 0 {
			c = accent
		}
		dst.DrawTextColored(boxX+(boxW-len([]rune(l)))/2, boxY+1+i, l, c)
	}
}
