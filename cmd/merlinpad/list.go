package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"merlinpad/internal/registry"
	"merlinpad/internal/settings"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows every game registered on the pad, with its stored best score.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()
	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	// Best scores are decoration here; without a database the column
	// just reads zero.
	best := make(map[string]int, len(games))
	if store, err := settings.Open(flagDBPath); err == nil {
		for _, g := range games {
			best[g.ID], _ = store.HighScore(g.ID)
		}
		store.Close()
	} else {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
	}

	idW, titleW := len("ID"), len("Title")
	for _, g := range games {
		idW = max(idW, len(g.ID))
		titleW = max(titleW, len(g.Title))
	}

	fmt.Printf("%-*s  %-*s  %s\n", idW, "ID", titleW, "Title", "Best")
	for _, g := range games {
		fmt.Printf("%-*s  %-*s  %d\n", idW, g.ID, titleW, g.Title, best[g.ID])
	}
	fmt.Println()
	fmt.Println("Run 'merlinpad play <id>' to play a game.")
}
