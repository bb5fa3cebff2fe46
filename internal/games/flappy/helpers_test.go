package flappy

import (
	"errors"
	"io"
	"math"
	"math/rand"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy-ai/internal/assets"
	"github.com/vovakirdan/flappy-ai/internal/audio"
	"github.com/vovakirdan/flappy-ai/internal/config"
	"github.com/vovakirdan/flappy-ai/internal/core"
)

// Sprites are immutable, so tests share one registry.
var testAssets = assets.Default()

// cueRecorder is an audio.Player that remembers what was played.
type cueRecorder struct {
	cues []audio.Cue
}

func (r *cueRecorder) Play(c audio.Cue) { r.cues = append(r.cues, c) }

func (r *cueRecorder) count(c audio.Cue) int {
	n := 0
	for _, x := range r.cues {
		if x == c {
			n++
		}
	}
	return n
}

// memStore is an in-memory HighScoreStore.
type memStore struct {
	score    int
	writes   []int
	readErr  error
	writeErr error
}

func (m *memStore) Read() (int, error) {
	if m.readErr != nil {
		return 0, m.readErr
	}
	return m.score, nil
}

func (m *memStore) Write(score int) error {
	m.writes = append(m.writes, score)
	if m.writeErr != nil {
		return m.writeErr
	}
	m.score = score
	return nil
}

var errDisk = errors.New("disk full")

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func newTestGame(t *testing.T, store HighScoreStore, rec *cueRecorder) *Game {
	t.Helper()
	if rec == nil {
		rec = &cueRecorder{}
	}
	opts := Options{
		Assets: testAssets,
		Audio:  rec,
		Logger: quietLogger(),
	}
	if store != nil {
		opts.Store = store
	}
	g := New(opts)
	g.Reset(core.RuntimeConfig{TickRate: 60, Seed: 42})
	return g
}

// startPlaying moves a fresh game out of the Welcome phase.
func startPlaying(t *testing.T, g *Game) {
	t.Helper()
	g.Step(core.InputOf(core.ActionConfirm))
	if g.State().Phase != core.PhasePlaying {
		t.Fatalf("phase = %v, expected Playing", g.State().Phase)
	}
}

// waitForRestart idles through the part of the game-over screen that ignores
// restart input. Assumes the reference tick rate.
func waitForRestart(t *testing.T, g *Game) {
	t.Helper()
	for i := 1; i < restartDelay; i++ {
		if res := g.Step(idle()); res.State.Phase != core.PhaseGameOver {
			t.Fatalf("left GameOver after %d idle ticks", i)
		}
	}
}

// clearPipes empties the stream so only the ground and ceiling can end the
// attempt.
func clearPipes(g *Game) {
	g.stream.pipes = nil
	g.stream.pending = false
}

func idle() core.InputFrame { return core.NewInputFrame() }

func jump() core.InputFrame { return core.InputOf(core.ActionJump) }

func newTestStream(seed int64, rec audio.Player) *Stream {
	return NewStream(config.DefaultFlappyConfig(), testAssets, rec, rand.New(rand.NewSource(seed)))
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
