package flappy

import (
	"math/rand"

	"github.com/vovakirdan/flappy-ai/internal/assets"
	"github.com/vovakirdan/flappy-ai/internal/audio"
	"github.com/vovakirdan/flappy-ai/internal/config"
)

// Stream owns the live pipes: it moves them, scores passes, retires pipes
// that left the screen and spawns new ones at a fixed spacing.
type Stream struct {
	pipes   []*Pipe
	pending bool // a pass happened and a new pipe is owed

	cfg    config.Obstacles
	worldW float64
	reg    *assets.Registry
	audio  audio.Player
	rng    *rand.Rand
}

// NewStream returns an empty stream drawing gap anchors from rng.
func NewStream(cfg config.FlappyConfig, reg *assets.Registry, player audio.Player, rng *rand.Rand) *Stream {
	return &Stream{
		cfg:    cfg.Obstacles,
		worldW: float64(cfg.World.Width),
		reg:    reg,
		audio:  player,
		rng:    rng,
	}
}

// Reset clears the stream and spawns the first pipe of an attempt.
func (s *Stream) Reset() {
	clear(s.pipes)
	s.pipes = s.pipes[:0]
	s.pending = false
	s.spawn()
}

// Pipes returns the live pipes, oldest first. The slice is owned by the
// stream and valid until the next Advance or Reset.
func (s *Stream) Pipes() []*Pipe { return s.pipes }

// Pending reports whether a spawn is owed.
func (s *Stream) Pending() bool { return s.pending }

// Advance moves every pipe, marks pipes whose x crossed birdX as passed and
// returns how many were passed this frame. Pipes fully off screen are
// removed after the pass, keeping the order of the rest.
func (s *Stream) Advance(dt, birdX float64) int {
	dist := s.cfg.Speed * dt
	passed := 0
	for _, p := range s.pipes {
		p.Move(dist)
		if !p.Passed && p.X < birdX {
			p.Passed = true
			passed++
			s.pending = true
			s.audio.Play(audio.CuePoint)
		}
	}

	s.retire()

	if s.pending && s.roomForNext() {
		s.spawn()
		s.pending = false
	}
	return passed
}

func (s *Stream) retire() {
	kept := s.pipes[:0]
	for _, p := range s.pipes {
		if p.X+float64(p.Width()) >= 0 {
			kept = append(kept, p)
		}
	}
	clear(s.pipes[len(kept):])
	s.pipes = kept
}

func (s *Stream) roomForNext() bool {
	if len(s.pipes) == 0 {
		return true
	}
	return s.pipes[len(s.pipes)-1].X < s.worldW-s.cfg.Spacing
}

func (s *Stream) spawn() {
	span := s.cfg.MaxAnchor - s.cfg.MinAnchor + 1
	anchor := s.cfg.MinAnchor + s.rng.Intn(span)
	s.pipes = append(s.pipes, newPipe(s.worldW+s.cfg.SpawnOffset, anchor, s.cfg.Gap, s.reg))
}
