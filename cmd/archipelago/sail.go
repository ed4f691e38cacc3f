package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-archipelago/internal/config"
	"github.com/vovakirdan/tui-archipelago/internal/core"
	"github.com/vovakirdan/tui-archipelago/internal/platform/tui"
	"github.com/vovakirdan/tui-archipelago/internal/storage"
)

var (
	flagLast bool
	flagPick bool
)

var sailCmd = &cobra.Command{
	Use:   "sail [seed]",
	Short: "Sail a world",
	Long: `Generate the world for a seed and sail it.

The seed is taken from the argument, then --seed, then the most recent
seed in the log when --last is given. --pick chooses one from the log
interactively. Otherwise a random seed is used.

Controls:
  W/Up       - Raise sail
  S/Down     - Lower sail
  A/Left     - Turn to port
  D/Right    - Turn to starboard
  E or /     - Edit seed (Enter loads, Esc cancels)
  N          - New random seed
  C          - Copy seed to clipboard
  Ctrl+S     - Save screenshot
  ?          - Toggle help
  Q/Ctrl+C   - Quit

Leave the controls alone for a moment and the anchor drops.

Examples:
  archipelago sail
  archipelago sail abc123
  archipelago sail --last
  archipelago sail --pick
  archipelago sail --preset cove`,
	Args: cobra.MaximumNArgs(1),
	Run:  runSail,
}

func init() {
	sailCmd.Flags().BoolVar(&flagLast, "last", false, "Resume the most recently sailed seed")
	sailCmd.Flags().BoolVar(&flagPick, "pick", false, "Pick a seed from the log")
}

func runSail(_ *cobra.Command, args []string) {
	cfg := loadConfig()

	logWriter, closeLog := openLogFile(config.ExpandHome(cfg.Paths.LogFile))
	defer closeLog()
	logger := newLogger(logWriter, "archipelago")

	store, err := storage.Open(cfg.Paths.Database)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open seed log: %v\n", err)
		// Continue without storage - sailing still works
		store = nil
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	seed := flagSeed
	if len(args) > 0 {
		seed = args[0]
	}
	if seed == "" && flagPick && store != nil {
		picked, ok, pickErr := tui.RunSeedPicker(store, width, height)
		if pickErr != nil {
			fmt.Fprintf(os.Stderr, "Error running seed picker: %v\n", pickErr)
			store.Close()
			os.Exit(1)
		}
		// User quit the picker
		if !ok {
			store.Close()
			return
		}
		seed = picked
	}
	if seed == "" && flagLast && store != nil {
		if last, ok, lastErr := store.LastSeed(); lastErr == nil && ok {
			seed = last
		}
	}

	opts := tui.SailOptions{
		Config: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: cfg.Frame.FPS,
			Seed:     seed,
		},
		Sim:         cfg.SimParams(),
		Render:      cfg.RenderOptions(),
		HoldWindow:  cfg.HoldWindow(),
		Store:       store,
		Logger:      logger,
		Share:       os.Stdout,
		Term:        os.Getenv("TERM"),
		Screenshots: tui.DirScreenshotter(config.ExpandHome(cfg.Paths.Screenshots)),
	}

	logger.Info("session started", "seed", seed, "width", width, "height", height)
	runErr := tui.Run(opts)
	logger.Info("session ended")

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		logger.Error("session failed", "error", runErr)
		closeLog()
		fmt.Fprintf(os.Stderr, "Error running session: %v\n", runErr)
		os.Exit(1)
	}
}

// openLogFile opens the session log for appending. The alternate screen
// owns stdout, so when the file cannot be opened logs are dropped.
func openLogFile(path string) (io.Writer, func()) {
	if path == "" {
		return io.Discard, func() {}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: cannot create log directory: %v\n", err)
		return io.Discard, func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: cannot open log file: %v\n", err)
		return io.Discard, func() {}
	}
	return f, func() { f.Close() }
}
