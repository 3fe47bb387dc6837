package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to adapt to screen size and for deterministic simulation.
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

// GameState represents the current state of the game, as reported to the
// platform after each tick.
type GameState struct {
	Score    int  // Current score
	Lives    int  // Remaining lives
	Level    int  // Current level number (1-based)
	GameOver bool // Whether the game has ended (loss or win)
	Won      bool // Whether the game ended in a win
	Paused   bool // Whether the game is paused
}

// EventType identifies a gameplay event produced during a tick.
// The platform consumes these as its "play effect" sink.
type EventType int

const (
	EventWallBounce EventType = iota
	EventPaddleBounce
	EventBrickHit       // Brick damaged but still alive
	EventBrickDestroyed // Brick removed; X/Y is the brick center
	EventMiss           // Ball crossed below the paddle baseline
	EventLevelClear
	EventGameOver
)

// Event is a single gameplay event with its cell position.
type Event struct {
	Type EventType
	X, Y int
}

// StepResult is returned by the game after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event
}
