// merlinpad simulates a 12-key RGB macropad with a 128x64 OLED in the
// terminal and runs the arcade games written for it.
//
// Usage:
//
//	merlinpad list              - List available games
//	merlinpad play <game>       - Play a game
//	merlinpad menu              - Start menu to pick games interactively
//	merlinpad serve             - Start SSH server for remote play
//	merlinpad scores <game>     - Show high scores for a game
//
// Global flags:
//
//	--db <path>     - Set database path (default: ~/.merlinpad/scores.db)
//	--engine <path> - Override the engine tuning YAML
//	--fps <rate>    - Override the simulation tick rate
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"merlinpad/internal/config"

	// Import games to register them
	_ "merlinpad/internal/games/asteroids"
	_ "merlinpad/internal/games/pacman"
	_ "merlinpad/internal/games/simon"
	_ "merlinpad/internal/games/snake"
)

var (
	// Global flags
	flagDBPath       string
	flagEngineConfig string
	flagFPS          int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "merlinpad",
	Short: "MerlinPad - A 12-key arcade machine in your terminal",
	Long: `MerlinPad simulates a small arcade handheld: a monochrome 128x64
screen, a 3x4 pad of RGB-lit keys and a rotary dial, rendered in your
terminal.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  merlinpad list
  merlinpad play snake
  merlinpad menu
  merlinpad serve --ssh :2222
  merlinpad scores snake`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.merlinpad/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagEngineConfig, "engine", "", "Path to engine tuning YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Override the simulation tick rate")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// engineConfig loads the engine tuning, falling back to defaults on error.
func engineConfig() config.EngineConfig {
	cfg, err := config.LoadEngine(flagEngineConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: bad engine config, using defaults: %v\n", err)
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	return cfg
}
