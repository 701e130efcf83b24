package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
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

// GameState is the host-facing summary of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score     int  // Current score
	HighScore int  // Best score across sessions
	Level     int  // Current difficulty level
	Started   bool // False while the title screen is shown
	GameOver  bool // Whether the run has ended
	Paused    bool // Whether the run is paused
}

// Running reports whether the simulation is advancing.
func (s GameState) Running() bool {
	return s.Started && !s.GameOver && !s.Paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	// RunEnded is true only on the tick where the run transitioned to game over.
	RunEnded bool
	// Run holds the finished run's summary when RunEnded is set.
	Run RunSummary
}

// RunSummary describes a finished run for run history.
type RunSummary struct {
	Score             int
	Level             int
	Jumps             int
	ObstaclesCleared  int
	PowerUpsCollected int
	Ticks             int
}
