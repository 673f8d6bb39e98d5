package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flappyx/internal/core"
)

// GameKeyMap defines the key bindings while a game is running.
type GameKeyMap struct {
	Flap       key.Binding
	Start      key.Binding
	Pause      key.Binding
	Dark       key.Binding
	Debug      key.Binding
	GodMode    key.Binding
	SpawnPower key.Binding
	SkinPrev   key.Binding
	SkinNext   key.Binding
	Screenshot key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Flap, k.Start, k.Pause, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Flap, k.Start, k.Pause},
		{k.SkinPrev, k.SkinNext, k.Dark},
		{k.Debug, k.GodMode, k.SpawnPower},
		{k.Screenshot, k.Help, k.Quit},
	}
}

// DefaultGameKeyMap returns default key bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Flap: key.NewBinding(
			key.WithKeys(" ", "up", "w"),
			key.WithHelp("space/up/w", "flap"),
		),
		Start: key.NewBinding(
			key.WithKeys("enter", "r"),
			key.WithHelp("enter/r", "start"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Dark: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "dark mode"),
		),
		Debug: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "debug"),
		),
		GodMode: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "shield (debug)"),
		),
		SpawnPower: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "power-up (debug)"),
		),
		SkinPrev: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("left", "prev skin"),
		),
		SkinNext: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right", "next skin"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Action translates a key message to a game action.
// Screenshot and help are handled by the model and map to ActionNone.
func (k GameKeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Flap):
		return core.ActionFlap
	case key.Matches(msg, k.Start):
		return core.ActionStart
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.Dark):
		return core.ActionToggleDark
	case key.Matches(msg, k.Debug):
		return core.ActionToggleDebug
	case key.Matches(msg, k.GodMode):
		return core.ActionGodMode
	case key.Matches(msg, k.SpawnPower):
		return core.ActionSpawnPowerUp
	case key.Matches(msg, k.SkinPrev):
		return core.ActionSkinPrev
	case key.Matches(msg, k.SkinNext):
		return core.ActionSkinNext
	}
	return core.ActionNone
}

// isClick reports whether a mouse message is a left button press.
func isClick(msg tea.MouseMsg) bool {
	return msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft
}
