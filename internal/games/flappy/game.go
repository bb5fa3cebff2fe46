// Package flappy implements the Flappy Bird game.
// The player flaps a bird through gaps in an endless row of pipes; touching a
// pipe, the ground or the top of the world ends the attempt.
package flappy

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy-ai/internal/assets"
	"github.com/vovakirdan/flappy-ai/internal/audio"
	"github.com/vovakirdan/flappy-ai/internal/config"
	"github.com/vovakirdan/flappy-ai/internal/core"
	"github.com/vovakirdan/flappy-ai/internal/render"
)

const (
	GameID    = "flappy" // score storage key
	GameTitle = "Flappy Bird"
)

// restartDelay is how long, in reference frames, the game-over screen ignores
// restart input. Held keys auto-repeat in a terminal.
const restartDelay = 30

// HighScoreStore persists the best score as a single integer.
type HighScoreStore interface {
	Read() (int, error)
	Write(score int) error
}

// Options are the collaborators of a Game. Zero values select defaults:
// built-in config and sprites, no audio, no persistence, the default logger.
type Options struct {
	Config *config.FlappyConfig
	Assets *assets.Registry
	Audio  audio.Player
	Store  HighScoreStore
	Logger *log.Logger
}

// Game implements the session state machine: Welcome, Playing, GameOver.
type Game struct {
	cfg    config.FlappyConfig
	reg    *assets.Registry
	audio  audio.Player
	store  HighScoreStore
	logger *log.Logger

	rng    *rand.Rand
	bird   *Bird
	ground *Ground
	stream *Stream

	phase     core.Phase
	paused    bool
	score     int
	highScore int
	attempt   int
	collision Collision
	tickCount int     // ticks of the current attempt
	overTime  float64 // reference frames spent in GameOver
}

// New creates a game in the Welcome phase. The high score is read from the
// store once, here.
func New(opts Options) *Game {
	g := &Game{
		cfg:    config.DefaultFlappyConfig(),
		reg:    opts.Assets,
		audio:  opts.Audio,
		store:  opts.Store,
		logger: opts.Logger,
	}
	if opts.Config != nil {
		g.cfg = *opts.Config
	}
	if g.reg == nil {
		g.reg = assets.Default()
	}
	if g.audio == nil {
		g.audio = audio.Silent{}
	}
	if g.logger == nil {
		g.logger = log.Default()
	}

	g.highScore = g.readHighScore()
	g.Reset(core.RuntimeConfig{TickRate: g.cfg.World.TickRate})
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return GameTitle
}

// Reset returns to the Welcome phase with a fresh world. A non-zero seed makes
// pipe generation reproducible; a tick rate overrides the configured one.
func (g *Game) Reset(rt core.RuntimeConfig) {
	if rt.TickRate > 0 {
		g.cfg.World.TickRate = rt.TickRate
	}
	seed := rt.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.rng = rand.New(rand.NewSource(seed))

	g.phase = core.PhaseWelcome
	g.paused = false
	g.attempt = 0
	g.stream = NewStream(g.cfg, g.reg, g.audio, g.rng)
	g.newWorld()
}

// newWorld places the bird, the ground and the first pipe.
func (g *Game) newWorld() {
	g.bird = NewBird(g.cfg, g.reg, g.audio)
	g.ground = NewGround(g.cfg.Ground.Y, g.cfg.Ground.Speed, g.reg.Ground())
	g.stream.Reset()
	g.score = 0
	g.collision = Collision{}
	g.tickCount = 0
}

// startAttempt begins a fresh Playing phase.
func (g *Game) startAttempt() {
	if g.phase == core.PhaseGameOver {
		g.newWorld()
	}
	g.phase = core.PhasePlaying
	g.paused = false
	g.attempt++
	g.audio.Play(audio.CueSwoosh)
}

// Step is the single transition function, called once per tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionQuit) {
		g.phase = core.PhaseQuit
	}

	var ended bool
	switch g.phase {
	case core.PhaseWelcome:
		if in.HasAny(core.ActionJump, core.ActionConfirm) {
			g.startAttempt()
		}

	case core.PhasePlaying:
		if in.Has(core.ActionPause) {
			g.paused = !g.paused
		}
		if g.paused {
			break
		}
		if in.Has(core.ActionJump) {
			g.bird.Jump()
		}
		ended = g.tick()

	case core.PhaseGameOver:
		g.overTime += g.cfg.DeltaTime()
		if g.overTime < restartDelay {
			break
		}
		if in.HasAny(core.ActionJump, core.ActionConfirm, core.ActionRestart) {
			g.startAttempt()
		}
	}

	return core.StepResult{
		State:        g.State(),
		AttemptEnded: ended,
		Quit:         g.phase == core.PhaseQuit,
	}
}

// tick runs one simulation frame and reports whether the attempt ended.
func (g *Game) tick() bool {
	dt := g.cfg.DeltaTime()
	g.tickCount++

	g.bird.Update(dt)
	g.ground.Move(dt)
	g.score += g.stream.Advance(dt, g.bird.X)

	c, hit := CheckCollision(g.bird, g.stream.Pipes(), g.ground, g.audio)
	if !hit {
		return false
	}
	g.endAttempt(c)
	return true
}

func (g *Game) endAttempt(c Collision) {
	g.phase = core.PhaseGameOver
	g.collision = c
	g.overTime = 0
	g.audio.Play(audio.CueDie)
	g.recordHighScore()
	g.logger.Debug("attempt ended", "attempt", g.attempt, "score", g.score, "cause", c.Cause, "ticks", g.tickCount)
}

// recordHighScore raises the high score and persists it only when the
// attempt beat it. Store failures keep the in-memory value.
func (g *Game) recordHighScore() {
	if g.score <= g.highScore {
		return
	}
	g.highScore = g.score
	if g.store == nil {
		return
	}
	if err := g.store.Write(g.score); err != nil {
		g.logger.Warn("cannot save high score", "score", g.score, "err", err)
	}
}

func (g *Game) readHighScore() int {
	if g.store == nil {
		return 0
	}
	score, err := g.store.Read()
	if err != nil {
		g.logger.Warn("cannot read high score, starting from 0", "err", err)
		return 0
	}
	return score
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Phase:     g.phase,
		Score:     g.score,
		HighScore: g.highScore,
		Attempt:   g.attempt,
		GameOver:  g.phase == core.PhaseGameOver,
		Paused:    g.paused,
	}
}

// LastCollision returns what ended the latest attempt.
func (g *Game) LastCollision() Collision { return g.collision }

// Frame returns the draw list for the current state in layer order.
func (g *Game) Frame() []render.DrawCmd {
	pipes := g.stream.Pipes()
	cmds := make([]render.DrawCmd, 0, 2*len(pipes)+8)

	cmds = append(cmds, render.SpriteCmd(render.LayerBackground, g.reg.Background(), 0, 0))
	for _, p := range pipes {
		cmds = append(cmds,
			render.SpriteCmd(render.LayerPipes, g.reg.PipeTop(), p.X, float64(p.TopY())),
			render.SpriteCmd(render.LayerPipes, g.reg.PipeBottom(), p.X, float64(p.BottomY())),
		)
	}
	tile := g.ground.Tile()
	cmds = append(cmds,
		render.SpriteCmd(render.LayerGround, tile, g.ground.X1, g.ground.Y),
		render.SpriteCmd(render.LayerGround, tile, g.ground.X2, g.ground.Y),
	)
	bx, by := g.bird.Origin()
	cmds = append(cmds, render.SpriteCmd(render.LayerBird, g.bird.Sprite(), float64(bx), float64(by)))

	cx := float64(g.cfg.World.Width) / 2
	cy := float64(g.cfg.World.Height) / 2

	switch g.phase {
	case core.PhaseWelcome:
		cmds = append(cmds, render.BoxCmd(cx, cy, core.ColorBrightWhite,
			"FLAPPY BIRD",
			"",
			fmt.Sprintf("Best: %d", g.highScore),
			"",
			"space  flap",
			"p  pause",
			"q  quit",
			"",
			"space to start",
		))
	case core.PhasePlaying:
		cmds = append(cmds, g.hud()...)
		if g.paused {
			cmds = append(cmds, render.BoxCmd(cx, cy, core.ColorBrightWhite, "PAUSED", "", "p to resume"))
		}
	case core.PhaseGameOver:
		cmds = append(cmds, g.hud()...)
		cmds = append(cmds, render.BoxCmd(cx, cy, core.ColorRed,
			"GAME OVER",
			g.collision.Cause.String(),
			"",
			fmt.Sprintf("Score: %d  Best: %d", g.score, g.highScore),
			"",
			"space to restart",
			"q to quit",
		))
	}
	return cmds
}

func (g *Game) hud() []render.DrawCmd {
	cx := float64(g.cfg.World.Width) / 2
	return []render.DrawCmd{
		render.CenteredTextCmd(render.LayerHUD, cx, 50, core.ColorBrightWhite, fmt.Sprintf("Score: %d", g.score)),
		render.CenteredTextCmd(render.LayerHUD, cx, 100, core.ColorWhite, fmt.Sprintf("High Score: %d", g.highScore)),
	}
}
