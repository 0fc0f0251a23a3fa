package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/memylon/internal/config"
	"github.com/vovakirdan/memylon/internal/core"
	"github.com/vovakirdan/memylon/internal/games/memory"
	"github.com/vovakirdan/memylon/internal/registry"
	"github.com/vovakirdan/memylon/internal/storage"
)

// loadConfig resolves the game config and applies a difficulty preset.
func loadConfig(preset config.DifficultyPreset) (config.MemoryConfig, error) {
	cfg, err := config.LoadMemory(flagConfig)
	if err != nil {
		return config.MemoryConfig{}, err
	}
	config.ApplyPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return config.MemoryConfig{}, err
	}
	return cfg, nil
}

// newGame builds a game for the given id. The memory game is configured from
// --config and the preset; other games come from the registry as-is.
func newGame(gameID string, preset config.DifficultyPreset, logger *log.Logger) (registry.Game, error) {
	if gameID != memory.ID {
		return registry.Create(gameID)
	}
	cfg, err := loadConfig(preset)
	if err != nil {
		return nil, err
	}
	return memory.New(cfg, memory.WithLogger(logger)), nil
}

// frameTime returns the tick interval from --frame-ms or the config.
func frameTime() time.Duration {
	if flagFrameMS > 0 {
		return time.Duration(flagFrameMS) * time.Millisecond
	}
	cfg, err := config.LoadMemory(flagConfig)
	if err != nil {
		return core.DefaultFrameTime
	}
	return cfg.Timing.Frame()
}

// runtimeConfig builds the runtime config from the terminal size and flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.FrameTime = frameTime()
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the results database. Play continues without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		return nil
	}
	return store
}

// parseDifficulty reads --difficulty or exits with an error.
func parseDifficulty() config.DifficultyPreset {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return preset
}
