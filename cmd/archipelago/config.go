package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-archipelago/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print default configuration or its schema",
	Long: `Print the built-in configuration or a JSON Schema describing it.

Copy the defaults to ~/.archipelago/config.yaml to customise them.

Examples:
  archipelago config defaults > ~/.archipelago/config.yaml
  archipelago config schema`,
}

var configDefaultsCmd = &cobra.Command{
	Use:   "defaults",
	Short: "Print the default configuration YAML",
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		os.Stdout.Write(config.DefaultYAML())
	},
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the configuration JSON Schema",
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		data, err := config.SchemaJSON()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error generating schema: %v\n", err)
			os.Exit(1)
		}
		os.Stdout.Write(data)
		fmt.Println()
	},
}

func init() {
	configCmd.AddCommand(configDefaultsCmd)
	configCmd.AddCommand(configSchemaCmd)
}
