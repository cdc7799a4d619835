package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/drpaneas/panis/internal/platform/tui"
	"github.com/drpaneas/panis/internal/storage"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregate statistics",
	Args:  cobra.NoArgs,
	Run:   runStats,
}

func runStats(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	stats, err := store.SessionStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving statistics: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("PANIS Statistics")
	fmt.Println()

	if stats.Sessions == 0 {
		fmt.Println("No sessions recorded yet.")
		return
	}

	fmt.Printf("  Sessions:    %d\n", stats.Sessions)
	fmt.Printf("  Wins:        %d\n", stats.Wins)
	fmt.Printf("  High score:  %d\n", stats.HighScore)
	fmt.Printf("  Avg score:   %.1f\n", stats.AvgScore)
	if !stats.LastPlayed.IsZero() {
		fmt.Printf("  Last played: %s\n", stats.LastPlayed.Format("2006-01-02 15:04"))
	}
}

// runScoreboardTUI opens the interactive session browser.
func runScoreboardTUI(store *storage.Store) error {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return tui.RunScoreboard(store, width, height)
}
