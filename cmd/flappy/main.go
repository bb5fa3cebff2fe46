// flappy is Flappy Bird for the terminal.
//
// Usage:
//
//	flappy [play]            - Play the game
//	flappy scores [--clear]  - Show or clear the attempt history
//	flappy board             - Browse the scoreboard
//
// Global flags:
//
//	--fps <rate>              - Set tick rate (default: from config, 60)
//	--seed <value>            - Set RNG seed for reproducible pipes
//	--db <path>               - Set database path (default: ~/.flappy/scores.db)
//	--store <sqlite|file>     - Where the high score lives
//	--high-score-file <path>  - High score file for --store file
//	--config <path>           - Custom config YAML
//	--mute                    - Disable sound
//	--log-level <level>       - debug, info, warn, error
//	--log-file <path>         - Log destination while the game runs
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-ai/internal/storage"
)

const (
	storeSQLite = "sqlite"
	storeFile   = "file"
)

var (
	// Global flags
	flagFPS           int
	flagSeed          int64
	flagDBPath        string
	flagStore         string
	flagHighScoreFile string
	flagConfig        string
	flagMute          bool
	flagLogLevel      string
	flagLogFile       string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy Bird in your terminal",
	Long: `Flap a bird through an endless row of pipes.

Available commands:
  play     - Play the game (default)
  scores   - Show the attempt history
  board    - Interactive scoreboard

Examples:
  flappy
  flappy --seed 42 --mute
  flappy --store file --high-score-file ./high_score.txt
  flappy scores --clear`,
	SilenceUsage: true,
	Run:          runPlay,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 0, "Tick rate in frames per second (0 = config value)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.flappy/scores.db", "Path to scores database")
	pf.StringVar(&flagStore, "store", storeSQLite, "High score store: sqlite or file")
	pf.StringVar(&flagHighScoreFile, "high-score-file", "~/.flappy/"+storage.DefaultHighScoreFile, "High score file used with --store file")
	pf.StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	pf.BoolVar(&flagMute, "mute", false, "Disable sound")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", "~/.flappy/flappy.log", "Log file used while the game runs")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(boardCmd)
}

// newLogger builds the program logger writing to w at the --log-level level.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "flappy",
		Level:           level,
	}), nil
}

// cliLogger logs to stderr for commands that do not take over the terminal.
func cliLogger() *log.Logger {
	logger, err := newLogger(os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	return logger
}

// fileLogger opens --log-file for appending. The returned close function is
// never nil.
func fileLogger() (*log.Logger, func(), error) {
	path, err := storage.ExpandHome(flagLogFile)
	if err != nil {
		return nil, func() {}, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, func() {}, fmt.Errorf("cannot create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, func() {}, fmt.Errorf("cannot open log file: %w", err)
	}
	logger, err := newLogger(f)
	if err != nil {
		f.Close()
		return nil, func() {}, err
	}
	//nolint:errcheck // Best-effort close on exit
	return logger, func() { f.Close() }, nil
}
