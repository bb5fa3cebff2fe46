package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-ai/internal/games/flappy"
	"github.com/vovakirdan/flappy-ai/internal/storage"
)

var (
	flagClear  bool
	flagRecent bool
	flagLimit  int
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the attempt history",
	Long: `Display the best attempts, or the latest ones with --recent.

Examples:
  flappy scores
  flappy scores --recent --limit 20
  flappy scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the history and the high score")
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "List the latest attempts instead of the best")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of attempts to list (0 lists every attempt)")
}

func runScores(cmd *cobra.Command, args []string) {
	logger := cliLogger()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Fatal("cannot open scores database", "path", flagDBPath, "err", err)
	}

	if flagClear {
		err = clearScores(store)
		if err == nil {
			fmt.Println("Scores cleared.")
		}
	} else {
		err = printScores(os.Stdout, store)
	}
	store.Close()
	if err != nil {
		logger.Fatal("scores command failed", "err", err)
	}
}

// printScores writes the score table selected by --recent and --limit.
func printScores(w io.Writer, store *storage.Store) error {
	var (
		scores []storage.ScoreEntry
		err    error
	)
	switch {
	case flagLimit <= 0:
		scores, err = store.AllScores(flappy.GameID)
	case flagRecent:
		scores, err = store.RecentScores(flappy.GameID, flagLimit)
	default:
		scores, err = store.TopScores(flappy.GameID, flagLimit)
	}
	if err != nil {
		return fmt.Errorf("cannot retrieve scores: %w", err)
	}

	heading := "High Scores"
	switch {
	case flagLimit <= 0:
		heading = "All Attempts"
	case flagRecent:
		heading = "Recent Attempts"
	}
	fmt.Fprintf(w, "%s - %s\n\n", heading, flappy.GameTitle)

	if len(scores) == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Run 'flappy' to set the first high score!")
		return nil
	}

	fmt.Fprintf(w, "  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Fprintf(w, "  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Fprintf(w, "  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(flappy.GameID)
	if err != nil {
		return fmt.Errorf("cannot retrieve stats: %w", err)
	}
	fmt.Fprintf(w, "\nBest: %d  Attempts: %d  Average: %.1f\n", stats.HighScore, stats.GamesCount, stats.AvgScore)
	return nil
}

// clearScores wipes the database and, with --store file, the high score file.
func clearScores(store *storage.Store) error {
	if err := store.ClearScores(flappy.GameID); err != nil {
		return err
	}
	if flagStore != storeFile {
		return nil
	}
	file, err := storage.NewFileStore(flagHighScoreFile)
	if err != nil {
		return err
	}
	if err := os.Remove(file.Path()); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("cannot remove %s: %w", file.Path(), err)
	}
	return nil
}
