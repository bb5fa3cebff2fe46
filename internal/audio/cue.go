// Package audio plays the short sound cues of the game.
package audio

// Cue identifies a sound effect.
type Cue string

const (
	CueWing   Cue = "wing"
	CuePoint  Cue = "point"
	CueHit    Cue = "hit"
	CueDie    Cue = "die"
	CueSwoosh Cue = "swoosh"
)

// Cues lists every cue in a stable order.
var Cues = []Cue{CueWing, CuePoint, CueHit, CueDie, CueSwoosh}

// Player plays cues without blocking the caller.
// Playing a cue that is still sounding does nothing.
type Player interface {
	Play(c Cue)
}

// Silent is a Player that discards every cue.
type Silent struct{}

// Play does nothing.
func (Silent) Play(Cue) {}
