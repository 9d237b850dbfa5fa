package core

// RuntimeConfig is what the host passes to a game on Reset.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in cells
	ScreenH  int   // Screen height in cells
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed; 0 lets the host pick one from the clock
}

// DefaultConfig returns a RuntimeConfig for an 80×24 terminal at 60 ticks
// per second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// Phase is the orchestration state of a session.
type Phase int

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhaseGameOver
)

// String returns the lowercase phase name.
func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// GameState is the externally visible status of a game.
type GameState struct {
	Phase    Phase
	Score    int  // Whole metres travelled
	Ticks    int  // Playing ticks of the current run
	GameOver bool // Whether the current run has ended
	Paused   bool
}

// StepResult is returned by Game.Step after each tick.
type StepResult struct {
	State GameState
	// Ended is true only on the tick the run ended.
	Ended bool
}

// RunStats summarizes a finished run for persistence.
type RunStats struct {
	Seed          int64
	Score         int
	Ticks         int
	MaxDifficulty float64
	Platforms     int // platforms spawned during the run
}
