package core

// RuntimeConfig carries the per-session parameters a game receives on
// Reset. Screen dimensions come from the terminal (or SSH pty), the tick
// rate from flags, and the seed drives obstacle generation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in cells
	ScreenH  int   // Screen height in cells
	TickRate int   // Simulation ticks per second
	Seed     int64 // Seed for procedural generation; 0 means time-based
}

// DefaultConfig returns a runtime configuration with standard values.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     0,
	}
}

// GameState is the externally visible state of a run.
type GameState struct {
	Score    int
	GameOver bool
	Paused   bool
}

// Event is something noteworthy that happened during a single Step, such
// as a surge, a pair passed, or a crash. The platform layer uses events
// to trigger sounds without the simulation knowing about audio.
type Event int

const (
	EventFlap  Event = iota // Player surged upward
	EventScore              // An obstacle pair was passed
	EventCrash              // The run ended in a collision
)

// StepResult is returned by Game.Step. It contains the updated game
// state and any events that occurred during the tick.
type StepResult struct {
	State  GameState
	Events []Event
}
