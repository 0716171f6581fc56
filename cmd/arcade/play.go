package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/neon-arcade/internal/config"
	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/games/runner"
	"github.com/vovakirdan/neon-arcade/internal/games/shooter"
	"github.com/vovakirdan/neon-arcade/internal/platform/tui"
	"github.com/vovakirdan/neon-arcade/internal/registry"
	"github.com/vovakirdan/neon-arcade/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Enter/R       - Start (and restart after game over)
  Space/Up      - Jump (runner) / Fire (shooter)
  Arrows/WASD   - Move the ship (shooter)
  P/Esc         - Pause
  Ctrl+S        - Save a screenshot
  Q/Ctrl+C      - Quit

Difficulty options:
  easy   - Slower hazards, longer spawn intervals
  normal - Config values as written
  hard   - Faster hazards, shorter spawn intervals
  fixed  - No escalation, stays at the config's initial level

Examples:
  arcade play runner
  arcade play runner --difficulty easy
  arcade play shooter --difficulty fixed
  arcade play shooter --config ./my-shooter.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	logger, closeLog := newLogger(flagLogFile, flagLogLevel)
	defer closeLog()

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("could not open scores database", "error", err)
		// Continue without storage - game still works
		store = nil
	}

	game, err := createGame(gameID, store, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	runErr := tui.Run(game, store, logger, terminalConfig())

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

// terminalConfig builds the runtime config from the terminal size and flags.
func terminalConfig() core.RuntimeConfig {
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

// createGame applies the config flags and wires storage and logging into a
// fresh game instance.
func createGame(gameID string, store *storage.Store, logger *log.Logger) (registry.Game, error) {
	if _, ok := config.ParsePreset(flagDifficulty); !ok {
		logger.Warn("unknown difficulty preset, using config values", "preset", flagDifficulty)
	}

	// Set config path and difficulty for games before creation
	switch gameID {
	case runner.GameID:
		runner.SetConfigPath(flagConfig)
		runner.SetDifficultyPreset(flagDifficulty)
	case shooter.GameID:
		shooter.SetConfigPath(flagConfig)
		shooter.SetDifficultyPreset(flagDifficulty)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return nil, err
	}

	if u, ok := game.(registry.LoggerUser); ok {
		u.SetLogger(logger)
	}
	if u, ok := game.(registry.BestScoreUser); ok {
		u.SetBestScores(storage.NewBestScores(store, gameID, logger))
	}
	logger.Info("game created", "game", gameID, "difficulty", flagDifficulty, "config", flagConfig)

	return game, nil
}
