// snackrun is Marathon Snack Collector, playable in the terminal or in a
// desktop window.
//
// Usage:
//
//	snackrun play            - Play the game
//	snackrun frontends       - List available frontends
//	snackrun config          - Print the effective configuration
//
// Global flags:
//
//	--config <path> - Use a custom config YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import frontends to register them
	_ "github.com/vovakirdan/snackrun/internal/platform/tui"
	_ "github.com/vovakirdan/snackrun/internal/platform/window"
)

var (
	// Global flags
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snackrun",
	Short: "Marathon Snack Collector - catch 20 snacks before the finish line",
	Long: `Marathon Snack Collector is a short arcade game: slide left and right to
catch falling snacks for 20 seconds, then meet the finish line with at
least 20 of them.

Available commands:
  play       - Play the game
  frontends  - Show available frontends
  config     - Print the effective configuration

Examples:
  snackrun play
  snackrun play --frontend window
  snackrun play --seed 42 --log snackrun.log
  snackrun config > ~/.snackrun/config.yaml`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(frontendsCmd)
	rootCmd.AddCommand(configCmd)
}
