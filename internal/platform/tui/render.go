package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/flappyx/internal/core"
)

// palette maps core.Color to ANSI 256 codes. An empty code means the
// terminal's default foreground.
var palette = map[core.Color]string{
	core.ColorDefault:       "",
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
	core.ColorDarkGray:      "238",
	core.ColorGold:          "220",
	core.ColorPink:          "198",
	core.ColorSky:           "117",
	core.ColorNight:         "61",
}

// darkOverrides swaps colours that would vanish on the dark background.
var darkOverrides = map[core.Color]string{
	core.ColorDefault:  "252",
	core.ColorDarkGray: "243",
	core.ColorNight:    "105",
	core.ColorBlue:     "33",
}

// darkBackground is layered under every cell in dark mode.
const darkBackground = "234"

var (
	lightStyles = buildStyles(false)
	darkStyles  = buildStyles(true)
)

func buildStyles(dark bool) map[core.Color]lipgloss.Style {
	styles := make(map[core.Color]lipgloss.Style, len(palette))
	for c, code := range palette {
		if dark {
			if o, ok := darkOverrides[c]; ok {
				code = o
			}
		}
		st := lipgloss.NewStyle()
		if code != "" {
			st = st.Foreground(lipgloss.Color(code))
		}
		if dark {
			st = st.Background(lipgloss.Color(darkBackground))
		}
		styles[c] = st
	}
	return styles
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	return renderScreen(s, lightStyles)
}

// RenderScreenDark renders with the dark palette and background.
func RenderScreenDark(s *core.Screen) string {
	return renderScreen(s, darkStyles)
}

func renderScreen(s *core.Screen, styles map[core.Color]lipgloss.Style) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		for x := 0; x < s.Width(); {
			color := s.GetCell(x, y).Color
			run.Reset()
			for ; x < s.Width() && s.GetCell(x, y).Color == color; x++ {
				run.WriteRune(s.GetCell(x, y).Rune)
			}

			style, ok := styles[color]
			if !ok {
				style = styles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
