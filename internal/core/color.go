package core

// Color represents a foreground color for a screen cell.
// Values map onto ANSI 256-color codes in the terminal renderer.
type Color uint8

// Palette shared by the simulation (entity colors) and the renderer.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorDarkGray
	ColorGold
	ColorPink
	ColorSky
	ColorNight
)
