package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/memylon/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a game and difficulty picker",
	Long: `Start memylon in interactive menu mode.

Use arrow keys or j/k to pick a game, left/right to pick a difficulty,
Enter to play and Tab to see the best runs. Leaving a game with Esc
returns to the menu.

Examples:
  memylon menu
  memylon menu --difficulty hard
  memylon menu --db ~/.memylon/results.db`,
	Run: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write debug logs to this file")
}

func runMenu(_ *cobra.Command, _ []string) {
	store := openStore()
	preset := parseDifficulty()

	logger, closeLog, err := fileLogger(flagLogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	cfg := runtimeConfig()

	for {
		menuResult, err := tui.RunMenu(cfg, preset)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		cfg = menuResult.Config
		preset = menuResult.Difficulty

		if menuResult.Quit {
			break
		}

		if menuResult.WantsResults {
			goBack, rErr := tui.RunResults(store, cfg.ScreenW, cfg.ScreenH)
			if rErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", rErr)
			}
			if goBack {
				continue
			}
			break
		}

		game, err := newGame(menuResult.GameID, preset, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			break
		}

		// Fresh board every time unless a seed was pinned.
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		// Esc comes back to the menu, q quits.
		back, err := tui.RunGame(game, store, cfg, tui.WithModelLogger(logger))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			break
		}
		if !back {
			break
		}
	}

	if store != nil {
		store.Close()
	}
}
