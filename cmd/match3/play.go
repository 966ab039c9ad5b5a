package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Entemena/MATCH3PROTOTYPE/internal/core"
	"github.com/Entemena/MATCH3PROTOTYPE/internal/platform/tui"
	"github.com/Entemena/MATCH3PROTOTYPE/internal/registry"
	"github.com/Entemena/MATCH3PROTOTYPE/internal/storage"
)

var errNoTerminal = errors.New("stdout is not a terminal; use 'match3 sim' for headless runs")

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Arrows/WASD  - Move the cursor
  Space/Enter  - Select a tile, or swap with the selected one
  Mouse        - Click a tile to select or swap
  X            - Clear the selection
  P            - Pause
  R            - Restart (after game over)
  Esc          - Leave the game
  Q/Ctrl+C     - Quit

Examples:
  match3 play match3
  match3 play merge3 --size small
  match3 play match3 --seed 42
  match3 play merge3 --config ./my-tiles.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := args[0]

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q (run 'match3 list' to see available games)", gameID)
	}

	cfg, err := terminalConfig()
	if err != nil {
		return err
	}

	game, err := tui.NewGame(gameID, tilesConfig, sizePreset)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	logger.Info("starting game", "game", gameID, "seed", cfg.Seed, "size", sizePreset)
	if _, err := tui.Run(game, store, cfg); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// terminalConfig builds a runtime config sized to the controlling terminal.
func terminalConfig() (core.RuntimeConfig, error) {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return core.RuntimeConfig{}, errNoTerminal
	}

	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(fd); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg, nil
}

// openStore opens the score database. Games still run without one.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}
