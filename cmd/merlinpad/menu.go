package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"merlinpad/internal/platform/tui"
	"merlinpad/internal/settings"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the pad with a game picker menu",
	Long: `Start the pad in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a game.
After a game ends, press Q to return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select game
  Tab          - High scores
  Q            - Quit

Examples:
  merlinpad menu
  merlinpad menu --db ./scores.db`,
	Run: runMenu,
}

func init() {
	// Uses global flags from main.go (--db, --engine)
}

func runMenu(_ *cobra.Command, _ []string) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		if w < minTermWidth || h < minTermHeight {
			fmt.Fprintf(os.Stderr, "Error: terminal is %dx%d, need at least %dx%d\n",
				w, h, minTermWidth, minTermHeight)
			os.Exit(1)
		}
	}

	// Open score storage
	store, err := settings.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}

	engineCfg := engineConfig()

	// Menu loop
	for {
		// Show menu and get selection
		menuResult, err := tui.RunMenu(store)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Check if user quit
		if menuResult.Quit {
			break
		}

		// Check if user wants the scoreboard
		if menuResult.WantsScores {
			if sbErr := tui.RunScoreboard(store); sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			continue // Back to menu
		}

		gameID := menuResult.GameID
		if gameID == "" {
			break
		}

		// Run the game
		if err := tui.RunGame(gameID, store, engineCfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}

		// Loop back to menu
	}

	// Cleanup
	if store != nil {
		store.Close()
	}
}
