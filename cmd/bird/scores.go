package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-bird/internal/platform/tui"
	"github.com/vovakirdan/tui-bird/internal/storage"
)

var (
	flagInteractive bool
	flagLimit       int
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best runs",
	Long: `Display the best runs of all players and the best score of one player.

Examples:
  bird scores
  bird scores --player alice
  bird scores --interactive
  bird scores --clear --player alice`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse scores in a table")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the run history and best score of --player")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	player := flagPlayer
	if player == "" {
		player = storage.DefaultPlayer
	}

	if flagClear {
		if err := store.ClearRuns(player); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared scores of %s\n", player)
		return
	}

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, player, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	runs, err := store.TopRuns(flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Top runs")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'bird play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-12s  %-6s  %-7s  %-9s  %s\n", "Rank", "Player", "Score", "Time", "Crash", "Date")
	fmt.Printf("  %-4s  %-12s  %-6s  %-7s  %-9s  %s\n", "----", "------", "-----", "----", "-----", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-12s  %-6d  %-7s  %-9s  %s\n",
			i+1, r.Player, r.Score, fmt.Sprintf("%.1fs", r.Duration.Seconds()), r.Reason,
			r.CreatedAt.Local().Format("2006-01-02 15:04"))
	}

	fmt.Println()
	stats, err := store.GetPlayerStats(player)
	if err == nil {
		fmt.Printf("%s: best %d, %d runs, average %.1f\n", player, stats.Best, stats.RunsCount, stats.AvgScore)
	}
}
