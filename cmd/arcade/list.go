package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-arcade/internal/registry"
	"github.com/vovakirdan/neon-arcade/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows every registered game with its best score, when a scores database is available.`,
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()
	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	// Best scores are optional here
	store, err := storage.Open(flagDBPath)
	if err != nil {
		store = nil
	} else {
		defer store.Close()
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  ID\tTITLE\tBEST")
	for _, g := range games {
		best := "-"
		if store != nil {
			b, _ := store.BestScore(g.ID)
			h, _ := store.HighScore(g.ID)
			if b = max(b, h); b > 0 {
				best = fmt.Sprint(b)
			}
		}
		fmt.Fprintf(w, "  %s\t%s\t%s\n", g.ID, g.Title, best)
	}
	w.Flush()

	fmt.Println()
	fmt.Println("Run 'arcade play <id>' to play a game.")
}
