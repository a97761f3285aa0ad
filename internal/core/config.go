package core

// Tick rate bounds for RuntimeConfig.
const (
	DefaultTickRate = 60
	MaxTickRate     = 240
)

// RuntimeConfig is what the platform hands a game on Reset.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed; 0 lets the platform pick one from the clock
}

// Normalized returns c with the tick rate defaulted and clamped to
// [1, MaxTickRate] and negative screen sizes zeroed.
func (c RuntimeConfig) Normalized() RuntimeConfig {
	if c.TickRate <= 0 {
		c.TickRate = DefaultTickRate
	}
	c.TickRate = min(c.TickRate, MaxTickRate)
	c.ScreenW = max(0, c.ScreenW)
	c.ScreenH = max(0, c.ScreenH)
	return c
}

// GameState is the summary a game reports to the platform after each tick.
type GameState struct {
	Score    int
	Level    int // 0 for games without levels
	Pyramids int // Pyramids completed this session
	GameOver bool
	Paused   bool
}

// StepResult is returned by Game.Step.
type StepResult struct {
	State GameState
}
