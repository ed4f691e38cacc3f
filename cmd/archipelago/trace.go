package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-archipelago/internal/sim"
)

var (
	flagScript string
	flagDt     float64
	flagEvery  int
)

var traceCmd = &cobra.Command{
	Use:   "trace <seed>",
	Short: "Replay scripted input headlessly",
	Long: `Load a seed and drive the boat with a fixed-step script, printing the
telemetry as it goes. The same seed and script always print the same trace.

A script is a comma-separated list of command:seconds segments. Commands
are forward, backward, left, right or idle, joined with '+'.

Examples:
  archipelago trace abc123
  archipelago trace abc123 --script forward:5,forward+left:2,idle:4
  archipelago trace abc123 --dt 0.05 --every 1`,
	Args: cobra.ExactArgs(1),
	Run:  runTrace,
}

func init() {
	traceCmd.Flags().StringVar(&flagScript, "script", "forward:3,left:1,idle:4", "Input script")
	traceCmd.Flags().Float64Var(&flagDt, "dt", 0.016, "Fixed step in seconds")
	traceCmd.Flags().IntVar(&flagEvery, "every", 30, "Print every Nth frame")
}

func runTrace(_ *cobra.Command, args []string) {
	cfg := loadConfig()

	script, err := sim.ParseScript(flagScript)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if !(flagDt > 0) {
		fmt.Fprintln(os.Stderr, "Error: --dt must be positive")
		os.Exit(1)
	}
	every := max(1, flagEvery)

	s := sim.New(cfg.SimParams(), newLogger(os.Stderr, "archipelago"))
	seed := s.Load(args[0])
	frames := sim.Replay(s, script, flagDt)

	fmt.Printf("Trace - %s (%.2fs at dt %.3f)\n", seed, script.Duration(), flagDt)
	fmt.Println()
	fmt.Printf("  %-7s  %-9s  %-9s  %-6s  %-4s  %-5s  %-15s  %s\n",
		"Time", "X", "Y", "Knots", "Hdg", "Sail", "Status", "Blocked")
	for i, f := range frames {
		if i%every != every-1 && i != len(frames)-1 {
			continue
		}
		blocked := ""
		if f.Blocked {
			blocked = "yes"
		}
		fmt.Printf("  %-7.2f  %-9.1f  %-9.1f  %-6.1f  %-4d  %-5d  %-15s  %s\n",
			f.Time, f.Pos.X, f.Pos.Y, f.Telemetry.Knots, f.Telemetry.Heading,
			f.Telemetry.Sail, f.Telemetry.Status, blocked)
	}
}
