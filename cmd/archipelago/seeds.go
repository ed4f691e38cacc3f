package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-archipelago/internal/storage"
)

var (
	flagLimit  int
	flagForget string
	flagClear  bool
)

var seedsCmd = &cobra.Command{
	Use:   "seeds",
	Short: "List recently sailed seeds",
	Long: `Display the seed log, most recently sailed first.

Examples:
  archipelago seeds
  archipelago seeds --limit 5
  archipelago seeds --forget abc123
  archipelago seeds --clear`,
	Args: cobra.NoArgs,
	Run:  runSeeds,
}

func init() {
	seedsCmd.Flags().IntVar(&flagLimit, "limit", 20, "Number of seeds to show")
	seedsCmd.Flags().StringVar(&flagForget, "forget", "", "Remove a seed from the log")
	seedsCmd.Flags().BoolVar(&flagClear, "clear", false, "Remove every seed from the log")
}

func runSeeds(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	store, err := storage.Open(cfg.Paths.Database)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening seed log: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagClear:
		if err := store.ClearSeeds(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing seeds: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Seed log cleared.")
		return
	case flagForget != "":
		found, err := store.ForgetSeed(flagForget)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error forgetting seed: %v\n", err)
			os.Exit(1)
		}
		if !found {
			fmt.Printf("Seed %q was not in the log.\n", flagForget)
			return
		}
		fmt.Printf("Forgot seed %q.\n", flagForget)
		return
	}

	seeds, err := store.RecentSeeds(flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving seeds: %v\n", err)
		os.Exit(1)
	}

	if len(seeds) == 0 {
		fmt.Println("No seeds recorded yet.")
		fmt.Println()
		fmt.Println("Run 'archipelago sail' to sail your first world!")
		return
	}

	maxSeedLen := 4 // "Seed" header
	for _, s := range seeds {
		maxSeedLen = max(maxSeedLen, len(s.Seed))
	}

	fmt.Printf("  %-*s  %-7s  %-6s  %s\n", maxSeedLen, "Seed", "Islands", "Visits", "Last sailed")
	fmt.Printf("  %-*s  %-7s  %-6s  %s\n", maxSeedLen, "----", "-------", "------", "-----------")
	for _, s := range seeds {
		fmt.Printf("  %-*s  %-7d  %-6d  %s\n", maxSeedLen, s.Seed, s.Islands, s.Visits, s.LastUsed.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	fmt.Println("Run 'archipelago sail <seed>' to sail one again.")
}
