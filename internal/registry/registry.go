// Package registry maps mode IDs to game factories. Game packages
// register their modes from init(), so the CLI and the SSH server can
// create them by name.
package registry

import (
	"cmp"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/vovakirdan/flappyx/internal/core"
)

// Game is the contract between a simulation and the platform driver.
// Implementations hold no terminal or storage dependencies.
type Game interface {
	// ID is the mode identifier used by the CLI and as the score key.
	ID() string

	// Title is the display name.
	Title() string

	// Reset builds a fresh session sitting in its title menu.
	Reset(cfg core.RuntimeConfig)

	// Step advances one fixed tick. dt is the wall time the driver
	// measured since the previous tick; it feeds timers, never physics.
	Step(in core.InputFrame, dt time.Duration) core.StepResult

	// Render draws the current frame into a pre-cleared screen.
	Render(dst *core.Screen)

	// State returns the platform-facing status.
	State() core.GameState
}

// Persistent is implemented by games whose high score and cosmetic
// preferences are restored from storage.
type Persistent interface {
	SetHighScore(n int)
	SelectSkin(index int) error
	SetDarkMode(on bool)
}

// GameInfo describes a registered mode.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new game instance.
type Factory func() Game

type entry struct {
	factory Factory
	title   string
}

var (
	mu    sync.RWMutex
	modes = make(map[string]entry)
)

// Register adds a mode. It panics on duplicate IDs.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := modes[id]; exists {
		panic(fmt.Sprintf("registry: mode %q already registered", id))
	}
	modes[id] = entry{factory: f, title: f().Title()}
}

// List returns all registered modes sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]GameInfo, 0, len(modes))
	for id, e := range modes {
		out = append(out, GameInfo{ID: id, Title: e.title})
	}
	slices.SortFunc(out, func(a, b GameInfo) int { return cmp.Compare(a.ID, b.ID) })
	return out
}

// Create instantiates a mode by ID.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := modes[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown mode %q", id)
	}
	return e.factory(), nil
}

// Exists reports whether a mode is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := modes[id]
	return ok
}
