package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/helix-drop/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Helix Drop SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own session with the mode and level menu.
Runs are stored per-server (all users share the same leaderboard).
Sound is never sent over SSH.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.helixdrop/host_key

Examples:
  helixdrop serve                           # Listen on :23234 with auto-generated key
  helixdrop serve --ssh :2222               # Listen on port 2222
  helixdrop serve --host-key ./my_host_key  # Use specific host key
  helixdrop serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	RunE: runServe,
}

func init() {
	addGameFlags(serveCmd)
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(cmd *cobra.Command, _ []string) error {
	if err := applyGameFlags(); err != nil {
		return err
	}
	if !cmd.Flags().Changed("log-level") {
		logger.SetLevel(log.InfoLevel) // Session logs are the server's output
	}

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
	}

	server, err := tui.NewSSHServer(cfg, logger.WithPrefix("helixdrop-ssh"))
	if err != nil {
		return err
	}

	fmt.Printf("Starting Helix Drop SSH server on %s\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}
