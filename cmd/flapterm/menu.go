package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"flapterm/internal/core"
	"flapterm/internal/games/flappy"
	"flapterm/internal/games/pixel"
	"flapterm/internal/platform/tui"
	"flapterm/internal/registry"
	"flapterm/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start flapterm with a game picker menu",
	Long: `Start flapterm in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a game.
After a game ends, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select game
  Tab          - Scoreboard
  Q            - Quit

Examples:
  flapterm menu
  flapterm menu --fps 60
  flapterm menu --db ./scores.db`,
	Run: runMenuCmd,
}

func runMenuCmd(_ *cobra.Command, _ []string) {
	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}

	// Get terminal size
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	sound := setupSound()

	// Remembered across menu loops so a returning player only
	// confirms the pre-filled name
	playerName := tui.SanitizeName(flagName)

	// Menu loop
	for {
		// Show menu and get selection
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config

		// Check if user quit
		if menuResult.Quit {
			break
		}

		// Check if user wants scoreboard
		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, playerName, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from scoreboard
		}

		gameID := menuResult.GameID
		if gameID == "" {
			break
		}

		// Set config path and difficulty for games before creation
		switch gameID {
		case "flappy":
			flappy.SetConfigPath(flagConfig)
			flappy.SetDifficultyPreset(flagDifficulty)
		case "pixel":
			pixel.SetConfigPath(flagConfig)
			pixel.SetDifficultyPreset(flagDifficulty)
		}

		// Create game instance
		game, err := registry.Create(gameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		if ng, ok := game.(tui.NamedGame); ok {
			name, cancelled, introErr := tui.RunIntro(game.Title(), playerName, cfg.ScreenW, cfg.ScreenH)
			if introErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", introErr)
				continue
			}
			if cancelled {
				continue // Back to menu
			}
			playerName = name
			ng.SetPlayerName(playerName)
		}

		// Update seed for each game
		cfg.Seed = time.Now().UnixNano()

		// Run the game
		if err := tui.Run(game, store, sound, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}

		// Loop back to menu
	}

	// Cleanup
	if sound != nil {
		sound.Cleanup()
	}
	if store != nil {
		store.Close()
	}
}
