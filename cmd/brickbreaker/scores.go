package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/brickbreaker/internal/platform/tui"
	"github.com/vovakirdan/brickbreaker/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the top scores",
	Long: `Display the top 10 scores and overall stats.

Examples:
  brickbreaker scores
  brickbreaker scores --db ./scores.db`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

var flagClear bool

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Browse scores interactively",
	Args:  cobra.NoArgs,
	Run:   runBoard,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all saved scores")
}

func mustOpenStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening scores database: %v", err)
	}
	return store
}

func runScores(_ *cobra.Command, _ []string) {
	store := mustOpenStore()
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(); err != nil {
			store.Close()
			fail("clearing scores: %v", err)
		}
		fmt.Println("All scores deleted.")
		return
	}

	// Get top scores
	scores, err := store.TopScores(10)
	if err != nil {
		store.Close()
		fail("retrieving scores: %v", err)
	}

	// Display scores
	fmt.Println("High Scores - Brick Breaker")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'brickbreaker play' to set the first high score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %-8s  %s\n", "Rank", "Score", "Host", "Date")
	fmt.Printf("  %-4s  %-10s  %-8s  %s\n", "----", "-----", "----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-8s  %s\n", i+1, entry.Score, entry.Host, dateStr)
	}

	fmt.Println()
	if stats, err := store.GetStats(); err == nil {
		fmt.Printf("Best: %d  Runs: %d  Average: %.0f\n", stats.HighScore, stats.GamesCount, stats.AvgScore)
	}
}

func runBoard(_ *cobra.Command, _ []string) {
	store := mustOpenStore()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runErr := tui.RunScoreboard(store, width, height)
	store.Close()
	if runErr != nil {
		fail("running scoreboard: %v", runErr)
	}
}
