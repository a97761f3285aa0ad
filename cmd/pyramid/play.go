package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/pyramid-arcade/internal/config"
	"github.com/vovakirdan/pyramid-arcade/internal/core"
	"github.com/vovakirdan/pyramid-arcade/internal/games/pyramid"
	"github.com/vovakirdan/pyramid-arcade/internal/platform/tui"
	"github.com/vovakirdan/pyramid-arcade/internal/registry"
	"github.com/vovakirdan/pyramid-arcade/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing the specified mode (pyramid or pyramid_zen).

Controls:
  Left/Right, A/D   - Move piece
  Up, W, X          - Rotate
  Down, S           - Soft drop
  Space             - Hard drop
  C                 - Discard piece
  P/Esc             - Pause
  R                 - Restart (after game over)
  Ctrl+S            - Save a screenshot
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - Gentle dealing, slow gravity, halved misfit penalty
  normal - Default rules, gravity speeds up with score
  hard   - Less help from the dealer, faster gravity
  fixed  - No speed-up beyond the per-level gravity

Examples:
  pyramid play
  pyramid play pyramid_zen
  pyramid play --difficulty hard
  pyramid play --config ./my-pyramid.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := "pyramid"
	if len(args) == 1 {
		gameID = args[0]
	}

	// Check if mode exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'pyramid list' to see available modes.")
		os.Exit(1)
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := openLogger(flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	if err := configureGame(logger, preset); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("could not open scores database", "error", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, logger, runtimeConfig())

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		closeLog()
		os.Exit(1)
	}
}

// configureGame checks the configuration up front so a broken file is
// reported on the command line instead of silently replaced by defaults,
// then hands the settings to the game package.
func configureGame(logger *log.Logger, preset config.DifficultyPreset) error {
	cfg, err := config.LoadPyramid(flagConfig)
	if err != nil {
		return err
	}
	config.ApplyPyramidPreset(&cfg, preset)
	if _, err := pyramid.RulesFromConfig(cfg); err != nil {
		return err
	}

	pyramid.SetConfigPath(flagConfig)
	pyramid.SetDifficultyPreset(string(preset))
	pyramid.SetLogger(logger)
	logger.Debug("game configured", "config", flagConfig, "difficulty", preset)
	return nil
}

// runtimeConfig sizes the game to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}
