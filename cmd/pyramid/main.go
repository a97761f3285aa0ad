// pyramid is a terminal puzzle game: steer falling blocks onto the outline
// of a pyramid, fill every slot to advance a level, and keep the structure
// stable while misplaced blocks settle.
//
// Usage:
//
//	pyramid list              - List available modes
//	pyramid play [mode]       - Play a mode (default: pyramid)
//	pyramid menu              - Start menu to pick modes interactively
//	pyramid shapes            - Show the shape catalog
//	pyramid scores [mode]     - Show high scores for a mode
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.arcade/scores.db)
//	--log-level <level>  - Write diagnostics to ~/.arcade/pyramid.log
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register its modes
	_ "github.com/vovakirdan/pyramid-arcade/internal/games/pyramid"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pyramid",
	Short: "Pyramid Builder - a falling-block puzzle in your terminal",
	Long: `Pyramid Builder is a terminal falling-block puzzle. Each level shows the
outline of a pyramid; steer pieces onto its open slots. Perfect fits score
a bonus and steady the structure, misfits shake it and loose blocks settle.
Fill every slot to complete the pyramid and move up a level.

Available commands:
  list     - Show all available modes
  play     - Play a mode directly
  menu     - Interactive mode picker menu
  shapes   - Show the shape catalog
  scores   - View high scores

Examples:
  pyramid list
  pyramid play
  pyramid play pyramid_zen --difficulty easy
  pyramid menu
  pyramid scores pyramid`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level for ~/.arcade/pyramid.log: debug, info, warn, error (empty = no log)")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(shapesCmd)
	rootCmd.AddCommand(scoresCmd)
}
