package core

import "time"

// Terminal cell limits the hosts fall back to when a size is unknown.
const (
	DefaultScreenW  = 80
	DefaultScreenH  = 30
	DefaultTickRate = 60
)

// RuntimeConfig is what a host tells a game about the terminal it runs in.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second
	Seed     int64 // World seed; 0 asks the host for a fresh one
}

// DefaultConfig returns the configuration used when nothing is known
// about the terminal.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  DefaultScreenW,
		ScreenH:  DefaultScreenH,
		TickRate: DefaultTickRate,
	}
}

// Normalized fills unset fields. A zero seed is replaced with one derived
// from now, so only an explicit seed replays a run.
func (c RuntimeConfig) Normalized(now time.Time) RuntimeConfig {
	if c.ScreenW <= 0 {
		c.ScreenW = DefaultScreenW
	}
	if c.ScreenH <= 0 {
		c.ScreenH = DefaultScreenH
	}
	if c.TickRate <= 0 {
		c.TickRate = DefaultTickRate
	}
	if c.Seed == 0 {
		c.Seed = now.UnixNano()
	}
	return c
}

// Ticks converts a duration to whole ticks at this rate, at least one.
func (c RuntimeConfig) Ticks(d time.Duration) int {
	rate := c.TickRate
	if rate <= 0 {
		rate = DefaultTickRate
	}
	return max(1, int(d*time.Duration(rate)/time.Second))
}

// GameState is the summary a game reports to its host after every step.
type GameState struct {
	Score    int  // Banked score plus the current level's score
	Level    int  // Current level, starting at 1
	Lives    int  // Remaining lives
	GameOver bool // Whether the run has ended, by losing or winning
	Won      bool // Whether the final level was cleared
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step after each simulation tick.
type StepResult struct {
	State GameState
}
