package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappyx/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a game would start with, as YAML.

The output is a complete config file: save it to
~/.flappyx/configs/flappy.yaml and edit the values you want to change.

Examples:
  flappyx config
  flappyx config --difficulty hard
  flappyx config --defaults
  flappyx config --config ./my-flappy.yaml > flappy.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	configCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults file, comments included")
}

func runConfig(cmd *cobra.Command, args []string) {
	if flagDefaults {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	cfg, err := config.LoadFlappy(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if preset := config.ParsePreset(flagDifficulty); preset != "" {
		config.ApplyFlappyPreset(&cfg, preset)
	} else if flagDifficulty != "" {
		logger.Warn("unknown difficulty preset, ignoring", "preset", flagDifficulty)
	}

	out, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(out)
}
