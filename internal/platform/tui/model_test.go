package tui

import (
	"io"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappyx/internal/config"
	"github.com/vovakirdan/flappyx/internal/core"
	"github.com/vovakirdan/flappyx/internal/storage"
)

// stubGame ends a life with the queued score whenever it sees ActionStart.
type stubGame struct {
	state      core.GameState
	lastInput  core.InputFrame
	steps      int
	lastDT     time.Duration
	configured []config.FlappyConfig
}

func (g *stubGame) ID() string                      { return "stub" }
func (g *stubGame) Title() string                   { return "Stub" }
func (g *stubGame) Reset(core.RuntimeConfig)        { g.state.InMenu = true }
func (g *stubGame) Render(dst *core.Screen)         { dst.DrawText(0, 0, "stub") }
func (g *stubGame) State() core.GameState           { return g.state }
func (g *stubGame) SetHighScore(n int)              { g.state.HighScore = max(g.state.HighScore, n) }
func (g *stubGame) SetDarkMode(on bool)             { g.state.DarkMode = on }
func (g *stubGame) SetConfig(c config.FlappyConfig) { g.configured = append(g.configured, c) }

func (g *stubGame) SelectSkin(i int) error {
	g.state.Skin = i
	return nil
}

func (g *stubGame) Step(in core.InputFrame, dt time.Duration) core.StepResult {
	g.steps++
	g.lastDT = dt
	g.lastInput = core.NewInputFrame()
	for a, on := range in.Actions {
		if on {
			g.lastInput.Set(a)
		}
	}

	res := core.StepResult{}
	switch {
	case in.Has(core.ActionStart):
		g.state.GameOver = true
		g.state.Score = 7
		res.LifeEnded = true
	case in.Has(core.ActionToggleDark):
		g.state.DarkMode = !g.state.DarkMode
	case in.Has(core.ActionSkinNext):
		g.state.Skin++
	}
	res.State = g.state
	return res
}

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T, want Model", next)
	}
	return nm
}

func TestKeyMapActions(t *testing.T) {
	keys := DefaultGameKeyMap()
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionFlap},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionFlap},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionStart},
		{"r", runeKey('r'), core.ActionStart},
		{"p", runeKey('p'), core.ActionPause},
		{"t", runeKey('t'), core.ActionToggleDark},
		{"d", runeKey('d'), core.ActionToggleDebug},
		{"g", runeKey('g'), core.ActionGodMode},
		{"x", runeKey('x'), core.ActionSpawnPowerUp},
		{"left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionSkinPrev},
		{"right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionSkinNext},
		{"q", runeKey('q'), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", runeKey('z'), core.ActionNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keys.Action(tt.msg); got != tt.want {
				t.Errorf("Action(%q) = %v, want %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestElapsed(t *testing.T) {
	base := time.Unix(1000, 0)
	if got := elapsed(time.Time{}, base, 60); got != time.Second/60 {
		t.Errorf("first tick = %v, want nominal interval", got)
	}
	if got := elapsed(base, base.Add(40*time.Millisecond), 60); got != 40*time.Millisecond {
		t.Errorf("elapsed = %v, want 40ms", got)
	}
	if got := elapsed(base, base.Add(-time.Second), 50); got != 20*time.Millisecond {
		t.Errorf("backwards clock = %v, want 20ms", got)
	}
}

func TestModelQueuesInputUntilTick(t *testing.T) {
	game := &stubGame{}
	m := NewModel(game, nil, core.DefaultConfig(), WithLogger(quietLogger()))

	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m = update(t, m, tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if game.steps != 0 {
		t.Fatal("keys must not step the game")
	}

	base := time.Unix(1000, 0)
	m = update(t, m, TickMsg(base))
	if !game.lastInput.Has(core.ActionFlap) {
		t.Error("queued flap was not delivered on the tick")
	}
	if game.lastDT != time.Second/60 {
		t.Errorf("first dt = %v, want nominal interval", game.lastDT)
	}

	update(t, m, TickMsg(base.Add(25*time.Millisecond)))
	if !game.lastInput.Empty() {
		t.Error("input frame should be cleared after a tick")
	}
	if game.lastDT != 25*time.Millisecond {
		t.Errorf("dt = %v, want 25ms", game.lastDT)
	}
}

func TestModelQuit(t *testing.T) {
	m := NewModel(&stubGame{}, nil, core.DefaultConfig(), WithLogger(quietLogger()))
	next, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("quit key should return a command")
	}
	if next.(Model).View() != "" {
		t.Error("View() should be empty after quitting")
	}
}

func TestModelSavesScoreOncePerLife(t *testing.T) {
	store := openStore(t)
	game := &stubGame{}
	m := NewModel(game, store, core.DefaultConfig(), WithLogger(quietLogger()))

	base := time.Unix(1000, 0)
	m = update(t, m, runeKey('r'))
	m = update(t, m, TickMsg(base))
	m = update(t, m, TickMsg(base.Add(time.Second/60)))
	update(t, m, TickMsg(base.Add(2*time.Second/60)))

	scores, err := store.TopScores("stub", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 || scores[0].Score != 7 {
		t.Errorf("scores = %+v, want a single 7", scores)
	}
}

func TestModelRestoresFromStore(t *testing.T) {
	store := openStore(t)
	if _, err := store.SaveScore("stub", 42); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	prefs := storage.Preferences{Skin: 2, DarkMode: true}
	if err := store.SavePreferences("alice", prefs); err != nil {
		t.Fatalf("SavePreferences() failed: %v", err)
	}

	game := &stubGame{}
	m := NewModel(game, store, core.DefaultConfig(), WithProfile("alice"), WithLogger(quietLogger()))

	if m.gameState.HighScore != 42 {
		t.Errorf("HighScore = %d, want 42", m.gameState.HighScore)
	}
	if m.gameState.Skin != 2 || !m.gameState.DarkMode {
		t.Errorf("preferences not restored: %+v", m.gameState)
	}
}

func TestModelSavesPreferencesOnChange(t *testing.T) {
	store := openStore(t)
	game := &stubGame{}
	m := NewModel(game, store, core.DefaultConfig(), WithProfile("bob"), WithLogger(quietLogger()))

	base := time.Unix(1000, 0)
	m = update(t, m, runeKey('t'))
	m = update(t, m, TickMsg(base))
	m = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	update(t, m, TickMsg(base.Add(time.Second/60)))

	got, err := store.LoadPreferences("bob")
	if err != nil {
		t.Fatalf("LoadPreferences() failed: %v", err)
	}
	want := storage.Preferences{Skin: 1, DarkMode: true}
	if got != want {
		t.Errorf("preferences = %+v, want %+v", got, want)
	}
}

func TestModelAppliesConfigReload(t *testing.T) {
	game := &stubGame{}
	m := NewModel(game, nil, core.DefaultConfig(), WithLogger(quietLogger()))

	cfg := config.DefaultFlappyConfig()
	cfg.Obstacles.Gap = 123
	m = update(t, m, reloadMsg{Config: cfg})
	if len(game.configured) != 1 || game.configured[0].Obstacles.Gap != 123 {
		t.Fatalf("SetConfig not called with reloaded config: %+v", game.configured)
	}
	if m.status == "" {
		t.Error("reload should show a status line")
	}

	m = update(t, m, reloadMsg{Err: config.ErrInvalidConfig})
	if len(game.configured) != 1 {
		t.Error("failed reload must not reach the game")
	}
	if m.status == "" {
		t.Error("failed reload should show a status line")
	}
}

func TestModelViewUsesHelpFooter(t *testing.T) {
	m := NewModel(&stubGame{}, nil, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60},
		WithLogger(quietLogger()))
	if view := m.View(); view == "" {
		t.Error("View() should render the game")
	}
}

func TestModelViewFitsTerminalWithFullHelp(t *testing.T) {
	m := NewModel(&stubGame{}, nil, core.RuntimeConfig{ScreenW: 100, ScreenH: 20, TickRate: 60},
		WithLogger(quietLogger()))
	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 20})

	if got := lipgloss.Height(m.View()); got != 20 {
		t.Errorf("short help view height = %d, want 20", got)
	}

	m = update(t, m, runeKey('?'))
	if !m.help.ShowAll {
		t.Fatal("? should expand the help")
	}
	if lipgloss.Height(m.footer()) < 2 {
		t.Fatal("full help should span several rows")
	}
	if got := lipgloss.Height(m.View()); got != 20 {
		t.Errorf("full help view height = %d, want 20", got)
	}
}
