package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/flappyx/internal/config"
	"github.com/vovakirdan/flappyx/internal/core"
	"github.com/vovakirdan/flappyx/internal/games/flappy"
	"github.com/vovakirdan/flappyx/internal/platform/tui"
	"github.com/vovakirdan/flappyx/internal/registry"
	"github.com/vovakirdan/flappyx/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagWatch      bool
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play Flappy X",
	Long: `Start playing. The mode defaults to "flappy"; "flappy_practice"
starts with the debug panel and cheats enabled.

Controls:
  Space/Up/Click - Flap
  Enter/R        - Start / restart
  P/Esc          - Pause
  Left/Right     - Pick skin (menu)
  T              - Dark mode
  D              - Debug panel (G: shield, X: power-up)
  Ctrl+S         - Screenshot
  Q/Ctrl+C       - Quit

Difficulty options:
  easy   - Wider gaps, progression on
  normal - Config defaults
  hard   - Narrower gaps, starts at a higher tier
  fixed  - No progression

With --watch the config file is reloaded when it changes; the new values
apply at the next start.

Examples:
  flappyx play
  flappyx play flappy_practice
  flappyx play --difficulty hard
  flappyx play --config ./my-flappy.yaml --watch`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the config file when it changes")
}

func runPlay(cmd *cobra.Command, args []string) {
	mode := flappy.ModeClassic
	if len(args) > 0 {
		mode = args[0]
	}

	if !registry.Exists(mode) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", mode)
		fmt.Fprintln(os.Stderr, "Run 'flappyx list' to see available modes.")
		os.Exit(1)
	}
	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		logger.Warn("unknown difficulty preset, ignoring", "preset", flagDifficulty)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Set config path and difficulty before the game loads its config
	flappy.SetConfigPath(flagConfig)
	flappy.SetDifficultyPreset(flagDifficulty)

	game, err := registry.Create(mode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	opts := []tui.Option{tui.WithLogger(logger)}
	var watcher *config.Watcher
	if flagWatch {
		if watcher = startWatcher(); watcher != nil {
			opts = append(opts, tui.WithReloads(watcher.Reloads))
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "err", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, cfg, opts...)

	// Close before potential exit
	closeSession(store, watcher)

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// closeSession releases what runPlay opened. Either argument may be nil.
func closeSession(store *storage.Store, watcher *config.Watcher) {
	if store != nil {
		if err := store.Close(); err != nil {
			logger.Warn("cannot close scores database", "err", err)
		}
	}
	if watcher != nil {
		if err := watcher.Close(); err != nil {
			logger.Warn("cannot close config watcher", "err", err)
		}
	}
}

// startWatcher watches --config, or the user config file when no path was
// given. It returns nil when there is nothing to watch.
func startWatcher() *config.Watcher {
	path := flagConfig
	if path == "" {
		path = config.UserConfigPath("flappy.yaml")
		if _, err := os.Stat(path); err != nil {
			logger.Warn("--watch needs --config or a user config file", "looked_at", path)
			return nil
		}
	}

	w, err := config.NewWatcher(path)
	if err != nil {
		logger.Warn("cannot watch config", "path", path, "err", err)
		return nil
	}
	logger.Info("watching config", "path", w.Path())
	return w
}
