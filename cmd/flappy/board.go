package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/flappy-ai/internal/games/flappy"
	"github.com/vovakirdan/flappy-ai/internal/platform/tui"
	"github.com/vovakirdan/flappy-ai/internal/storage"
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Browse the scoreboard",
	Long: `Interactive scoreboard with the best and the latest attempts.

Controls:
  Up/Down   - Scroll
  Tab       - Switch between best and recent
  Q/Esc     - Quit`,
	Args: cobra.NoArgs,
	Run:  runBoard,
}

func runBoard(cmd *cobra.Command, args []string) {
	logger := cliLogger()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Fatal("cannot open scores database", "path", flagDBPath, "err", err)
	}
	defer store.Close()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	if err := tui.RunScoreboard(store, flappy.GameID, flappy.GameTitle, width, height); err != nil {
		logger.Error("scoreboard stopped", "err", err)
	}
}
