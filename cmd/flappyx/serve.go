package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappyx/internal/games/flappy"
	"github.com/vovakirdan/flappyx/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagServeMode   string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Flappy X SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection plays its own independent game. Scores are shared by
everyone on the server; skin and dark mode are remembered per SSH user.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.flappyx/host_key

Examples:
  flappyx serve                           # Listen on :23234 with auto-generated key
  flappyx serve --ssh :2222               # Listen on port 2222
  flappyx serve --mode flappy_practice    # Serve the practice mode
  flappyx serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().StringVar(&flagServeMode, "mode", flappy.ModeClassic, "Mode every session plays")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	serverLogger := logger.WithPrefix("flappyx-ssh")
	serverLogger.SetReportTimestamp(true)
	if logger.GetLevel() > log.InfoLevel {
		// Session events are the point of running a server.
		serverLogger.SetLevel(log.InfoLevel)
	}

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		Mode:        flagServeMode,
		TickRate:    flagFPS,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		Logger:      serverLogger,
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting Flappy X SSH server on %s\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
