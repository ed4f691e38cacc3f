package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-archipelago/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the archipelago SSH server",
	Long: `Start an SSH server that lets users connect and sail.

Each SSH connection gets its own world and boat. Seeds loaded by any
session are recorded in the server's seed log.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.archipelago/host_key

Examples:
  archipelago serve                           # Listen on :23235 with auto-generated key
  archipelago serve --ssh :2222               # Listen on port 2222
  archipelago serve --host-key ./my_host_key  # Use specific host key
  archipelago serve --preset archipelago      # Larger worlds for every session

Users can connect with:
  ssh localhost -p 23235`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23235", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	logger := newLogger(os.Stderr, "archipelago-ssh")

	serverCfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      cfg.Paths.Database,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		FPS:         cfg.Frame.FPS,
		Sim:         cfg.SimParams(),
		Render:      cfg.RenderOptions(),
		HoldWindow:  cfg.HoldWindow(),
	}

	server, err := tui.NewSSHServer(serverCfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting archipelago SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
