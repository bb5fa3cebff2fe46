package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy-ai/internal/core"
	"github.com/vovakirdan/flappy-ai/internal/render"
)

// Game is what the platform drives: one Step per tick, one Frame per view.
type Game interface {
	ID() string
	Title() string
	Reset(cfg core.RuntimeConfig)
	Step(in core.InputFrame) core.StepResult
	Frame() []render.DrawCmd
	State() core.GameState
}

// History records finished attempts.
type History interface {
	SaveScore(gameID string, score int) (int64, error)
}

// Options configure a Model.
type Options struct {
	Runtime core.RuntimeConfig

	// WorldW and WorldH are the game world size in pixels.
	WorldW, WorldH int

	History       History // optional
	Logger        *log.Logger
	ScreenshotDir string // empty disables ctrl+s
}

// Model is the Bubble Tea model for running the game.
type Model struct {
	game          Game
	raster        *render.Rasterizer
	history       History
	logger        *log.Logger
	keys          *KeyMapper
	config        core.RuntimeConfig
	screenshotDir string
	inputFrame    core.InputFrame
	gameState     core.GameState
	quitting      bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game Game, opts Options) Model {
	cfg := opts.Runtime
	if cfg.ScreenW <= 0 || cfg.ScreenH <= 0 {
		def := core.DefaultConfig()
		cfg.ScreenW, cfg.ScreenH = def.ScreenW, def.ScreenH
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	return Model{
		game:          game,
		raster:        render.NewRasterizer(screen, opts.WorldW, opts.WorldH),
		history:       opts.History,
		logger:        logger,
		keys:          NewKeyMapper(),
		config:        cfg,
		screenshotDir: opts.ScreenshotDir,
		inputFrame:    core.NewInputFrame(),
		gameState:     game.State(),
	}
}

// Init starts the tick loop. The game is expected to be freshly reset.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.raster.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey collects actions for the next tick. Quit does not wait for it.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		res := m.game.Step(core.InputOf(core.ActionQuit))
		m.gameState = res.State
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	in := m.inputFrame.Clone()
	m.inputFrame.Clear()

	result := m.game.Step(in)
	m.gameState = result.State

	if result.AttemptEnded {
		m.recordAttempt(result.State.Score)
	}
	if result.Quit {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.config.TickRate)
}

// recordAttempt appends the attempt to the history. Best-effort, the game
// continues regardless.
func (m Model) recordAttempt(score int) {
	if m.history == nil {
		return
	}
	if _, err := m.history.SaveScore(m.game.ID(), score); err != nil {
		m.logger.Warn("cannot record attempt", "score", score, "err", err)
	}
}

// saveScreenshot writes the current frame as plain text. Best-effort.
func (m Model) saveScreenshot() {
	path, err := m.Screenshot()
	if err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}
	if path != "" {
		m.logger.Info("screenshot saved", "path", path)
	}
}

// Screenshot renders the current frame into the screenshot directory and
// returns the file path, or "" when screenshots are disabled.
func (m Model) Screenshot() (string, error) {
	if m.screenshotDir == "" {
		return "", nil
	}
	m.raster.Present(m.game.Frame())

	if err := os.MkdirAll(m.screenshotDir, 0o755); err != nil {
		return "", fmt.Errorf("tui: cannot create screenshot dir: %w", err)
	}
	timestamp := time.Now().Format("20060102_150405.000")
	path := filepath.Join(m.screenshotDir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.raster.Screen().String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: cannot write screenshot: %w", err)
	}
	return path, nil
}

// State returns the game state seen on the latest tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.raster.Present(m.game.Frame())
	return RenderScreen(m.raster.Screen())
}

// Run starts the Bubble Tea program for game and blocks until it exits.
func Run(game Game, opts Options) error {
	p := tea.NewProgram(
		NewModel(game, opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
