package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"merlinpad/internal/games/asteroids"
	"merlinpad/internal/games/pacman"
	"merlinpad/internal/games/snake"
	"merlinpad/internal/platform/tui"
	"merlinpad/internal/registry"
	"merlinpad/internal/settings"
)

// The simulated device needs room for the 128-column screen plus the
// LED panel beside it.
const (
	minTermWidth  = 140
	minTermHeight = 36
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
  Arrows/WASD  - D-pad keys
  Space/F      - Fire key
  Enter        - Start key
  Esc/M        - Menu key
  , and .      - Rotary dial
  0-9          - Press pad keys directly
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  merlinpad play snake
  merlinpad play asteroids --difficulty hard
  merlinpad play snake --config ./my-snake.yaml`,
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
		fmt.Fprintln(os.Stderr, "Run 'merlinpad list' to see available games.")
		os.Exit(1)
	}

	// The simulated screen does not scale down, so fail early on tiny
	// terminals instead of drawing garbage.
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		if w < minTermWidth || h < minTermHeight {
			fmt.Fprintf(os.Stderr, "Error: terminal is %dx%d, need at least %dx%d\n",
				w, h, minTermWidth, minTermHeight)
			os.Exit(1)
		}
	}

	// Apply config path and difficulty for games before creation
	applyGameFlags(gameID)

	// Open score storage
	store, err := settings.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Run the game
	runErr := tui.RunGame(gameID, store, engineConfig())

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// applyGameFlags forwards --config and --difficulty to the game that is
// about to be created. Simon has no tunables.
func applyGameFlags(gameID string) {
	switch gameID {
	case "snake":
		snake.SetConfigPath(flagConfig)
		snake.SetDifficultyPreset(flagDifficulty)
	case "asteroids":
		asteroids.SetConfigPath(flagConfig)
		asteroids.SetDifficultyPreset(flagDifficulty)
	case "pacman":
		pacman.SetConfigPath(flagConfig)
	}
}
