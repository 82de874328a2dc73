package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to size the playfield and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Playfield width in characters
	ScreenH  int   // Playfield height in characters
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig matching the classic 13-brick board.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  104,
		ScreenH:  30,
		TickRate: 50,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Phase is the overall state of a game run.
type Phase int

const (
	PhaseWelcome  Phase = iota // Start screen, nothing moves yet
	PhaseServe                 // Ball parked on the paddle, waiting for launch
	PhasePlaying               // Ball in play
	PhasePaused                // Frozen until resumed
	PhaseGameOver              // No lives left
	PhaseVictory               // Every destructible brick cleared
)

// String returns a short name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseWelcome:
		return "welcome"
	case PhaseServe:
		return "serve"
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "gameover"
	case PhaseVictory:
		return "victory"
	default:
		return "unknown"
	}
}

// Terminal reports whether the run has ended. Only a restart leaves a terminal phase.
func (p Phase) Terminal() bool {
	return p == PhaseGameOver || p == PhaseVictory
}

// GameState represents the externally visible state of a game.
type GameState struct {
	Score int
	Lives int
	Level int // 1-based level number
	Phase Phase
}

// Over reports whether the run has finished, won or lost.
func (s GameState) Over() bool {
	return s.Phase.Terminal()
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event // What happened during this tick, in order
}
