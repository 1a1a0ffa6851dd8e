package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"flapterm/internal/registry"
	"flapterm/internal/storage"
)

var statsCmd = &cobra.Command{
	Use:   "stats [game]",
	Short: "Show aggregate play statistics",
	Long: `Display aggregate statistics: runs played, high score, average and
total score, and when the game was last played.

Without an argument, statistics for all games are shown.

Examples:
  flapterm stats
  flapterm stats flappy`,
	Args: cobra.MaximumNArgs(1),
	Run:  runStats,
}

func runStats(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	var stats []*storage.GameStats

	if len(args) == 1 {
		gameID := args[0]
		if !registry.Exists(gameID) {
			fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
			os.Exit(1)
		}

		s, statsErr := store.GetGameStats(gameID)
		if statsErr != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", statsErr)
			os.Exit(1)
		}
		stats = append(stats, s)
	} else {
		all, statsErr := store.GetAllGamesStats()
		if statsErr != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", statsErr)
			os.Exit(1)
		}
		for _, s := range all {
			stats = append(stats, s)
		}
		sort.Slice(stats, func(i, j int) bool { return stats[i].GameID < stats[j].GameID })
	}

	if len(stats) == 0 {
		fmt.Println("No games played yet.")
		return
	}

	fmt.Printf("  %-10s  %-6s  %-6s  %-8s  %-8s  %s\n", "Game", "Runs", "High", "Avg", "Total", "Last played")
	fmt.Printf("  %-10s  %-6s  %-6s  %-8s  %-8s  %s\n", "----", "----", "----", "---", "-----", "-----------")

	for _, s := range stats {
		if s.GamesCount == 0 {
			fmt.Printf("  %-10s  %-6d  %-6s  %-8s  %-8s  %s\n", s.GameID, 0, "-", "-", "-", "-")
			continue
		}
		fmt.Printf("  %-10s  %-6d  %-6d  %-8.1f  %-8d  %s\n",
			s.GameID, s.GamesCount, s.HighScore, s.AvgScore, s.TotalScore,
			s.LastPlayed.Format("2006-01-02 15:04"))
	}
}
