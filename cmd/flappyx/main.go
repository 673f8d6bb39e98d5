// flappyx is a Flappy Bird style game for the terminal.
//
// Usage:
//
//	flappyx play [mode]       - Play (modes: flappy, flappy_practice)
//	flappyx list              - List available modes
//	flappyx scores <mode>     - Show high scores for a mode
//	flappyx serve             - Start SSH server for remote play
//	flappyx config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.flappyx/scores.db)
//	--log-level <level> - debug, info, warn or error (default: warn)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/flappyx/internal/games/flappy"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
)

// logger writes CLI warnings to stderr. The level is set before each command runs.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "flappyx",
	Level:  log.WarnLevel,
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappyx",
	Short: "Flappy X - flap through pipes in your terminal",
	Long: `Flappy X is a terminal Flappy Bird variant with power-ups,
weather, day/night cycles and unlockable skins.

Available commands:
  play     - Play a mode (default: flappy)
  list     - Show all available modes
  scores   - View high scores
  serve    - Start SSH server for remote play
  config   - Print the effective configuration

Examples:
  flappyx play
  flappyx play flappy_practice
  flappyx play --difficulty hard --seed 42
  flappyx serve --ssh :2222
  flappyx scores flappy --interactive`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			logger.Warn("unknown log level, keeping warn", "level", flagLogLevel)
			return
		}
		logger.SetLevel(level)
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.flappyx/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
