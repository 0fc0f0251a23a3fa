package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/memylon/internal/games/memory"
	"github.com/vovakirdan/memylon/internal/platform/tui"
	"github.com/vovakirdan/memylon/internal/registry"
)

var flagLogFile string

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing the specified game (memylon by default).

Controls:
  Mouse click  - Turn a card over
  R            - New game
  Esc/B        - Quit to shell
  Ctrl+S       - Save a screenshot
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Cards are shown 50% longer, mismatches stay up longer
  normal - Default timings
  hard   - Cards are shown for half the time

Examples:
  memylon play
  memylon play --difficulty easy
  memylon play --config ./my-deck.yaml
  memylon play --seed 42 --log-file memylon.log`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write debug logs to this file")
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := memory.ID
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'memylon list' to see available games.")
		os.Exit(1)
	}

	logger, closeLog, err := fileLogger(flagLogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	game, err := newGame(gameID, parseDifficulty(), logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store := openStore()
	runErr := tui.Run(game, store, runtimeConfig(), tui.WithModelLogger(logger))

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// fileLogger returns a debug logger writing to path, or a discarding logger
// when path is empty. The terminal belongs to the game while it runs.
func fileLogger(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		Level:           log.DebugLevel,
		ReportTimestamp: true,
		Prefix:          "memylon",
	})
	return logger, func() { f.Close() }, nil
}
