// memylon is a memory matching card game for the terminal.
//
// Usage:
//
//	memylon list              - List available games
//	memylon play [game]       - Play a game (default: memylon)
//	memylon menu              - Start menu to pick games interactively
//	memylon serve             - Start SSH server for remote play
//	memylon results [game]    - Show the best runs for a game
//	memylon deck              - Print the card deck
//
// Global flags:
//
//	--frame-ms <ms>        - Simulation tick interval (default: from config)
//	--seed <value>         - Set RNG seed for reproducible boards
//	--db <path>            - Keep results in a SQLite file (default: in memory)
//	--config <path>        - Custom game config YAML
//	--difficulty <preset>  - easy, normal or hard
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFrameMS    int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "memylon",
	Short: "Memylon - a memory matching game in your terminal",
	Long: `Memylon deals 24 cards face down, shows them to you for a few
seconds, and then asks you to find the 12 pairs with the mouse.
Clear the board to win a link about the last pair you found.

Available commands:
  list     - Show all available games
  play     - Play a game directly
  menu     - Interactive game and difficulty picker
  serve    - Start SSH server for remote play
  results  - View the best runs
  deck     - Print the card deck

Examples:
  memylon play
  memylon play --difficulty hard
  memylon menu --db ~/.memylon/results.db
  memylon serve --ssh :2222
  memylon deck`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFrameMS, "frame-ms", 0, "Tick interval in milliseconds (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to results database (empty = in memory)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(resultsCmd)
	rootCmd.AddCommand(deckCmd)
}
