package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/memylon/internal/games/memory"
	"github.com/vovakirdan/memylon/internal/registry"
	"github.com/vovakirdan/memylon/internal/storage"
)

var (
	flagLimit int
	flagClear bool
)

var resultsCmd = &cobra.Command{
	Use:   "results [game]",
	Short: "Show the best runs for a game",
	Long: `Display the best runs (fewest misses, then fastest) for a game.

Results are only kept across invocations when --db points at a file.

Examples:
  memylon results --db ~/.memylon/results.db
  memylon results memylon --limit 20 --db ./results.db
  memylon results --clear --db ./results.db`,
	Args: cobra.MaximumNArgs(1),
	Run:  runResults,
}

func init() {
	resultsCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	resultsCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded runs for the game")
}

func runResults(_ *cobra.Command, args []string) {
	gameID := memory.ID
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'memylon list' to see available games.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing results: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared results for %s\n", title)
		return
	}

	runs, err := store.BestRuns(gameID, flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving results: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Best Runs - %s\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		if flagDBPath == "" {
			fmt.Println("Results are kept in memory; pass --db to keep them between games.")
		}
		return
	}

	fmt.Printf("  %-4s  %-6s  %-8s  %-16s  %s\n", "Rank", "Misses", "Time", "Winner", "Date")
	fmt.Printf("  %-4s  %-6s  %-8s  %-16s  %s\n", "----", "------", "----", "------", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-6d  %-8s  %-16s  %s\n",
			i+1, r.Misses, r.Duration.Round(100*time.Millisecond), r.Winner, r.CreatedAt.Local().Format("2006-01-02 15:04"))
	}

	if stats, err := store.Stats(gameID); err == nil && stats.Runs > 0 {
		fmt.Println()
		fmt.Printf("Runs: %d  Best: %d misses  Average: %.1f  Fastest: %s\n",
			stats.Runs, stats.BestMisses, stats.AvgMisses, stats.Fastest.Round(100*time.Millisecond))
	}
}
