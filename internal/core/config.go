package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The terminal size only affects presentation; the simulation runs in world
// units defined by the game config.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Phase is the state machine position of a game session.
type Phase int

const (
	PhaseWelcome  Phase = iota // Waiting for the start input
	PhasePlaying               // Simulation running
	PhaseGameOver              // Attempt ended, waiting for restart or quit
	PhaseQuit                  // Quit requested, the platform should exit
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseWelcome:
		return "Welcome"
	case PhasePlaying:
		return "Playing"
	case PhaseGameOver:
		return "GameOver"
	case PhaseQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Phase     Phase // Current state machine phase
	Score     int   // Current attempt score
	HighScore int   // Best score known to the session
	Attempt   int   // Number of attempts started so far
	GameOver  bool  // Whether the current attempt has ended
	Paused    bool  // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState

	// AttemptEnded is true only on the tick where an attempt transitions
	// from Playing to GameOver.
	AttemptEnded bool

	// Quit is true when the player asked to leave the program.
	Quit bool
}
