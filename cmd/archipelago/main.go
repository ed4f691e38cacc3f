// archipelago is a terminal sailing game over seeded procedural islands.
//
// Usage:
//
//	archipelago sail [seed]        - Sail a world interactively
//	archipelago serve              - Start SSH server for remote sailing
//	archipelago seeds              - List or prune the seed log
//	archipelago inspect <seed>     - Print what a seed generates
//	archipelago trace <seed>       - Replay scripted input headlessly
//	archipelago config defaults    - Print the default configuration
//	archipelago config schema      - Print the configuration JSON Schema
//
// Global flags:
//
//	--fps <rate>         - Frame rate (default: from config)
//	--seed <value>       - World seed (default: random)
//	--config <path>      - Configuration file
//	--db <path>          - Seed log path (default: from config)
//	--log-level <level>  - debug, info, warn or error
//	--preset <name>      - World size: cove, standard or archipelago
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-archipelago/internal/config"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     string
	flagConfig   string
	flagDBPath   string
	flagLogLevel string
	flagPreset   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "archipelago",
	Short: "Archipelago - Sail seeded islands in your terminal",
	Long: `Archipelago generates a world of islands from a seed string and lets
you sail a small boat around it. The same seed always produces the same
world, so a seed is all you need to share a place.

Available commands:
  sail     - Sail a world interactively
  serve    - Start SSH server for remote sailing
  seeds    - List or prune recently sailed seeds
  inspect  - Print what a seed generates
  trace    - Replay scripted input without a terminal
  config   - Print default configuration or its schema

Examples:
  archipelago sail
  archipelago sail abc123
  archipelago sail --last
  archipelago serve --ssh :23235
  archipelago inspect abc123 --yaml
  archipelago trace abc123 --script forward:5,left:2,idle:4`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Frame rate (0 = use config)")
	rootCmd.PersistentFlags().StringVar(&flagSeed, "seed", "", "World seed (empty = random)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to configuration YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to seed log database (empty = use config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagPreset, "preset", "", "World size preset: cove, standard, archipelago")

	rootCmd.AddCommand(sailCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(seedsCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(traceCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the configuration and applies the global flags.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	preset, err := config.ParsePreset(flagPreset)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	config.ApplyPreset(&cfg, preset)

	if flagFPS > 0 {
		cfg.Frame.FPS = flagFPS
	}
	if flagDBPath != "" {
		cfg.Paths.Database = flagDBPath
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// newLogger creates a logger at the level selected by --log-level.
func newLogger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
		return logger
	}
	logger.SetLevel(level)
	return logger
}
