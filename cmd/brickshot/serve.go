package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickshot/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the brickshot SSH server",
	Long: `Start an SSH server that gives every connection its own aim viewer.

Each SSH connection gets a separate board session. Shots from all users are
recorded in the same database.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.brickshot/host_key

Examples:
  brickshot serve                           # Listen on :23234 with auto-generated key
  brickshot serve --ssh :2222               # Listen on port 2222
  brickshot serve --host-key ./my_host_key  # Use specific host key
  brickshot serve --db ./shots.db           # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(cmd *cobra.Command, _ []string) error {
	logger, err := newLogger("brickshot-ssh")
	if err != nil {
		return err
	}
	// Session lifecycle logs are the point of a server.
	if !cmd.Flags().Changed("log-level") {
		logger.SetLevel(log.InfoLevel)
	}

	board, set, err := loadBoard()
	if err != nil {
		return err
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		TickRate:    flagFPS,
	}

	server, err := tui.NewSSHServer(cfg, board, set, store, logger)
	if err != nil {
		return fmt.Errorf("cannot create server: %w", err)
	}

	fmt.Printf("Starting brickshot SSH server on %s\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}
