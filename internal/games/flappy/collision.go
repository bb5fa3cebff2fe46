package flappy

import (
	"github.com/vovakirdan/flappy-ai/internal/audio"
)

// Cause names what ended an attempt.
type Cause int

const (
	CauseNone Cause = iota
	CausePipe
	CauseGround
	CauseCeiling
)

// String returns a short description of the cause.
func (c Cause) String() string {
	switch c {
	case CausePipe:
		return "hit a pipe"
	case CauseGround:
		return "hit the ground"
	case CauseCeiling:
		return "flew too high"
	default:
		return "none"
	}
}

// Collision describes a fatal contact.
type Collision struct {
	Cause Cause
}

// CheckCollision tests pipes, then the ground, then the top boundary, and
// stops at the first hit. The hit cue plays once for that hit.
func CheckCollision(b *Bird, pipes []*Pipe, ground *Ground, player audio.Player) (Collision, bool) {
	cause := CauseNone
	switch {
	case collidesWithPipes(b, pipes):
		cause = CausePipe
	case ground != nil && ground.Collide(b):
		cause = CauseGround
	case b.Rect().Y <= 0:
		cause = CauseCeiling
	default:
		return Collision{}, false
	}

	player.Play(audio.CueHit)
	return Collision{Cause: cause}, true
}

func collidesWithPipes(b *Bird, pipes []*Pipe) bool {
	for _, p := range pipes {
		if p.Collide(b) {
			return true
		}
	}
	return false
}
