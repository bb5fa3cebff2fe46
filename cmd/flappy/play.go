package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/flappy-ai/internal/assets"
	"github.com/vovakirdan/flappy-ai/internal/audio/sfx"
	"github.com/vovakirdan/flappy-ai/internal/config"
	"github.com/vovakirdan/flappy-ai/internal/core"
	"github.com/vovakirdan/flappy-ai/internal/games/flappy"
	"github.com/vovakirdan/flappy-ai/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start the game on the welcome screen.

Controls:
  Space/Up/W - Flap (also starts and restarts)
  Enter      - Start / restart
  R          - Restart after game over
  P/Esc      - Pause
  Ctrl+S     - Screenshot to ~/.flappy/screenshots
  Q/Ctrl+C   - Quit

Examples:
  flappy play
  flappy play --fps 30
  flappy play --config ./my-flappy.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	if err := playGame(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// playGame wires config, assets, audio and stores into the game and runs the
// TUI until the player quits.
func playGame() error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if flagFPS > 0 {
		cfg.World.TickRate = flagFPS
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	reg, err := assets.LoadOrDefault(cfg.Assets.Dir)
	if err != nil {
		return err
	}

	// The TUI owns the terminal from here on, so logs go to a file.
	logger, closeLog, err := fileLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
		if logger, err = newLogger(io.Discard); err != nil {
			return err
		}
	}
	defer closeLog()

	st, err := openStores(logger)
	if err != nil {
		return err
	}
	defer st.Close()

	player := sfx.NewPlayer(cfg.Audio.Enabled && !flagMute, sfx.Options{
		SampleRate: cfg.Audio.SampleRate,
		Volume:     cfg.Audio.Volume,
		SoundsDir:  cfg.Audio.SoundsDir,
		Logger:     logger,
	})
	if c, ok := player.(interface{ Close() }); ok {
		defer c.Close()
	}

	game := flappy.New(flappy.Options{
		Config: &cfg,
		Assets: reg,
		Audio:  player,
		Store:  st.best,
		Logger: logger,
	})

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}
	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.World.TickRate,
		Seed:     flagSeed,
	}
	game.Reset(rt)

	opts := tui.Options{
		Runtime: rt,
		WorldW:  cfg.World.Width,
		WorldH:  cfg.World.Height,
		Logger:  logger,
	}
	if st.db != nil {
		opts.History = st.db
	}
	if dir := config.UserDir(); dir != "" {
		opts.ScreenshotDir = filepath.Join(dir, "screenshots")
	}

	logger.Info("starting", "fps", rt.TickRate, "seed", flagSeed, "store", flagStore, "mute", flagMute)
	if err := tui.Run(game, opts); err != nil {
		logger.Error("game stopped", "err", err)
		return fmt.Errorf("running game: %w", err)
	}
	state := game.State()
	logger.Info("bye", "attempts", state.Attempt, "high_score", state.HighScore)
	return nil
}
