package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/memylon/internal/config"
)

var flagDefaultConfig bool

var deckCmd = &cobra.Command{
	Use:   "deck",
	Short: "Print the card deck",
	Long: `Print every card face with its name and winner link.

Each board uses 12 faces drawn at random from the deck. Use --config to
inspect a custom deck, or --default-config to print the built-in YAML
as a starting point for one.

Examples:
  memylon deck
  memylon deck --config ./my-deck.yaml
  memylon deck --default-config > memory.yaml`,
	Run: runDeck,
}

func init() {
	deckCmd.Flags().BoolVar(&flagDefaultConfig, "default-config", false, "Print the built-in config YAML and exit")
}

func runDeck(_ *cobra.Command, _ []string) {
	if flagDefaultConfig {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	cfg, err := config.LoadMemory(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	deck := cfg.Deck()

	maxName := 4 // "Name" header
	for _, name := range deck.Names() {
		if len(name) > maxName {
			maxName = len(name)
		}
	}

	fmt.Printf("  %4s  %-*s  %s\n", "Face", maxName, "Name", "Link")
	fmt.Printf("  %4s  %-*s  %s\n", "----", maxName, "----", "----")
	for face := 1; face <= deck.Len(); face++ {
		card := deck.Card(face)
		fmt.Printf("  %4d  %-*s  %s\n", face, maxName, card.Name, card.Link)
	}

	fmt.Println()
	fmt.Printf("%d cards, %d pairs per board\n", deck.Len(), config.Pairs)
}
