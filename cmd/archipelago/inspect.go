package main

import (
	"fmt"
	"math"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-archipelago/internal/sim"
	"github.com/vovakirdan/tui-archipelago/internal/world"
)

var flagYAML bool

var inspectCmd = &cobra.Command{
	Use:   "inspect <seed>",
	Short: "Print what a seed generates",
	Long: `Generate the world for a seed and print placement statistics and a
summary of every island.

Examples:
  archipelago inspect abc123
  archipelago inspect abc123 --yaml
  archipelago inspect reef --preset archipelago`,
	Args: cobra.ExactArgs(1),
	Run:  runInspect,
}

func init() {
	inspectCmd.Flags().BoolVar(&flagYAML, "yaml", false, "Print the report as YAML")
}

// worldReport is the printable summary of a generated world.
type worldReport struct {
	Seed      string         `yaml:"seed"`
	Width     float64        `yaml:"width"`
	Height    float64        `yaml:"height"`
	Requested int            `yaml:"requested"`
	Placed    int            `yaml:"placed"`
	Attempts  int            `yaml:"attempts"`
	Waves     int            `yaml:"waves"`
	Islands   []islandReport `yaml:"islands"`
}

type islandReport struct {
	ID      int        `yaml:"id"`
	Center  [2]float64 `yaml:"center,flow"`
	Radius  float64    `yaml:"radius"`
	Bound   float64    `yaml:"bound"`
	Samples int        `yaml:"samples"`
	Cliffs  int        `yaml:"cliffs"`
	Trees   int        `yaml:"trees"`
	Streams int        `yaml:"streams"`
	Meadows int        `yaml:"meadows"`
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func newWorldReport(w *world.World) worldReport {
	r := worldReport{
		Seed:      w.Seed,
		Width:     w.Width,
		Height:    w.Height,
		Requested: w.Stats.Requested,
		Placed:    w.Stats.Placed,
		Attempts:  w.Stats.Attempts,
		Waves:     len(w.Waves),
	}
	for i := range w.Islands {
		is := &w.Islands[i]
		trees := 0
		for _, c := range is.Trees {
			trees += len(c.Trees)
		}
		r.Islands = append(r.Islands, islandReport{
			ID:      is.ID,
			Center:  [2]float64{round1(is.Center.X), round1(is.Center.Y)},
			Radius:  round1(is.Radius),
			Bound:   round1(is.BoundRadius()),
			Samples: len(is.Coast),
			Cliffs:  len(is.Cliffs),
			Trees:   trees,
			Streams: len(is.Streams),
			Meadows: len(is.Meadows),
		})
	}
	return r
}

func runInspect(_ *cobra.Command, args []string) {
	cfg := loadConfig()
	seed := sim.ResolveSeed(args[0])
	report := newWorldReport(world.FromSeed(cfg.WorldParams(), seed))

	if flagYAML {
		data, err := yaml.Marshal(report)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding report: %v\n", err)
			os.Exit(1)
		}
		os.Stdout.Write(data)
		return
	}

	fmt.Printf("World - %s\n", report.Seed)
	fmt.Println()
	fmt.Printf("  Size:     %.0f x %.0f\n", report.Width, report.Height)
	fmt.Printf("  Islands:  %d of %d placed in %d attempts\n", report.Placed, report.Requested, report.Attempts)
	fmt.Printf("  Waves:    %d\n", report.Waves)
	fmt.Println()

	if len(report.Islands) == 0 {
		fmt.Println("No islands placed.")
		return
	}

	fmt.Printf("  %-3s  %-15s  %-6s  %-6s  %-7s  %-6s  %-5s  %-7s  %s\n",
		"ID", "Center", "Radius", "Bound", "Samples", "Cliffs", "Trees", "Streams", "Meadows")
	fmt.Printf("  %-3s  %-15s  %-6s  %-6s  %-7s  %-6s  %-5s  %-7s  %s\n",
		"--", "------", "------", "-----", "-------", "------", "-----", "-------", "-------")
	for _, is := range report.Islands {
		center := fmt.Sprintf("%.0f,%.0f", is.Center[0], is.Center[1])
		fmt.Printf("  %-3d  %-15s  %-6.1f  %-6.1f  %-7d  %-6d  %-5d  %-7d  %d\n",
			is.ID, center, is.Radius, is.Bound, is.Samples, is.Cliffs, is.Trees, is.Streams, is.Meadows)
	}

	if report.Placed < report.Requested {
		fmt.Println()
		fmt.Println("The world was too crowded to place every island.")
	}
}
