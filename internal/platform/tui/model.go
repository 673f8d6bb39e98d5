package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappyx/internal/config"
	"github.com/vovakirdan/flappyx/internal/core"
	"github.com/vovakirdan/flappyx/internal/registry"
	"github.com/vovakirdan/flappyx/internal/storage"
)

// configurable is implemented by games that accept a new configuration
// while running.
type configurable interface {
	SetConfig(cfg config.FlappyConfig)
}

// reloadMsg carries a config reload from the file watcher.
type reloadMsg config.Reload

// statusDuration is how long a status line stays visible.
const statusDuration = 3 * time.Second

var (
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("117"))
)

// Option customizes a Model.
type Option func(*Model)

// WithProfile sets the preference profile, e.g. the SSH user name.
func WithProfile(profile string) Option {
	return func(m *Model) { m.profile = profile }
}

// WithReloads feeds config reloads into the running game.
func WithReloads(ch <-chan config.Reload) Option {
	return func(m *Model) { m.reloads = ch }
}

// WithLogger sets the logger for persistence and reload problems.
func WithLogger(logger *log.Logger) Option {
	return func(m *Model) { m.logger = logger }
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	profile    string
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	lastTick   time.Time
	keys       GameKeyMap
	help       help.Model
	reloads    <-chan config.Reload
	logger     *log.Logger
	status     string
	statusAt   time.Time
	quitting   bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a model for the given game, resets it and restores the
// high score and preferences from store (which may be nil).
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...Option) Model {
	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, max(1, cfg.ScreenH-1)),
		store:      store,
		profile:    storage.DefaultProfile,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keys:       DefaultGameKeyMap(),
		help:       help.New(),
		logger:     log.Default(),
	}
	for _, opt := range opts {
		opt(&m)
	}

	m.game.Reset(m.config)
	m.restore()
	m.gameState = m.game.State()
	return m
}

// restore seeds the game from storage.
func (m *Model) restore() {
	p, ok := m.game.(registry.Persistent)
	if !ok || m.store == nil {
		return
	}

	high, err := m.store.HighScore(m.game.ID())
	if err != nil {
		m.logger.Warn("cannot load high score", "mode", m.game.ID(), "err", err)
	}
	p.SetHighScore(high)

	prefs, err := m.store.LoadPreferences(m.profile)
	if err != nil {
		m.logger.Warn("cannot load preferences", "profile", m.profile, "err", err)
		return
	}
	if err := p.SelectSkin(prefs.Skin); err != nil {
		m.logger.Debug("stored skin unavailable", "skin", prefs.Skin, "err", err)
	}
	p.SetDarkMode(prefs.DarkMode)
}

// Init starts the tick loop and the config reload listener.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(m.config.TickRate), waitForReload(m.reloads))
}

// waitForReload blocks on the next config reload.
func waitForReload(ch <-chan config.Reload) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		r, ok := <-ch
		if !ok {
			return nil
		}
		return reloadMsg(r)
	}
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if isClick(msg) {
			m.inputFrame.Set(core.ActionFlap)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case reloadMsg:
		return m.handleReload(config.Reload(msg))

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	action := m.keys.Action(msg)
	if action == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}
	if action != core.ActionNone {
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleResize processes window resize events. The simulation is
// resolution independent, so only the screen buffer changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.fitScreen(m.footer())
	return m, nil
}

// fitScreen sizes the game screen to the rows the footer leaves free.
func (m *Model) fitScreen(footer string) {
	w := max(1, m.config.ScreenW)
	h := max(1, m.config.ScreenH-lipgloss.Height(footer))
	if m.screen.Width() != w || m.screen.Height() != h {
		m.screen.Resize(w, h)
	}
}

// footer is the status line when one is showing, the key help otherwise.
func (m Model) footer() string {
	if m.status != "" {
		return statusStyle.Render(m.status)
	}
	return helpStyle.Render(m.help.View(m.keys))
}

// handleReload hands a reloaded config to the game. It applies at the next start.
func (m Model) handleReload(r config.Reload) (tea.Model, tea.Cmd) {
	if r.Err != nil {
		m.logger.Warn("config reload failed", "err", r.Err)
		m.setStatus("config reload failed: " + r.Err.Error())
		return m, waitForReload(m.reloads)
	}
	if c, ok := m.game.(configurable); ok {
		c.SetConfig(r.Config)
		m.setStatus("config reloaded, applies on next start")
	}
	return m, waitForReload(m.reloads)
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := elapsed(m.lastTick, now, m.config.TickRate)
	m.lastTick = now

	prev := m.gameState
	result := m.game.Step(m.inputFrame, dt)
	m.gameState = result.State
	m.inputFrame.Clear()

	if !m.gameState.GameOver {
		m.scoreSaved = false
	}
	if result.LifeEnded && !m.scoreSaved {
		m.saveScore()
		m.scoreSaved = true
	}
	if prev.Skin != m.gameState.Skin || prev.DarkMode != m.gameState.DarkMode {
		m.savePreferences()
	}
	if m.status != "" && now.Sub(m.statusAt) > statusDuration {
		m.status = ""
	}

	return m, tickCmd(m.config.TickRate)
}

// saveScore records the finished life. Zero scores are not worth a row.
func (m *Model) saveScore() {
	if m.store == nil || m.gameState.Score <= 0 {
		return
	}
	if _, err := m.store.SaveScore(m.game.ID(), m.gameState.Score); err != nil {
		m.logger.Warn("cannot save score", "mode", m.game.ID(), "err", err)
	}
}

func (m *Model) savePreferences() {
	if m.store == nil {
		return
	}
	prefs := storage.Preferences{Skin: m.gameState.Skin, DarkMode: m.gameState.DarkMode}
	if err := m.store.SavePreferences(m.profile, prefs); err != nil {
		m.logger.Warn("cannot save preferences", "profile", m.profile, "err", err)
	}
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusAt = m.lastTick
	if m.statusAt.IsZero() {
		m.statusAt = time.Now()
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.setStatus("screenshot failed: no home directory")
		return
	}
	dir := filepath.Join(home, ".flappyx", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.setStatus("screenshot failed: " + err.Error())
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.setStatus("screenshot failed: " + err.Error())
		return
	}
	m.setStatus("saved " + path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	footer := m.footer()
	m.fitScreen(footer)
	m.game.Render(m.screen)

	var body string
	if m.gameState.DarkMode {
		body = RenderScreenDark(m.screen)
	} else {
		body = RenderScreen(m.screen)
	}
	return body + "\n" + footer
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...Option) error {
	model := NewModel(game, store, cfg, opts...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Mouse clicks flap
	)

	_, err := p.Run()
	return err
}
