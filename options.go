package pocketcube

import "math/rand"

// Option configures Session behavior.
type Option func(*config)

type config struct {
	moveHistory    bool
	phaseDetection bool
	rng            *rand.Rand
}

func defaultConfig() *config {
	return &config{
		moveHistory:    true,
		phaseDetection: true,
	}
}

// WithMoveHistory enables or disables move history tracking.
// When enabled (default), all applied moves are stored and accessible
// via Moves(). Disable this for long sessions to reduce memory usage.
func WithMoveHistory(enabled bool) Option {
	return func(c *config) {
		c.moveHistory = enabled
	}
}

// WithPhaseDetection enables or disables automatic phase detection.
// When enabled (default), the OnPhaseChange callback fires when a new
// highest phase is reached.
func WithPhaseDetection(enabled bool) Option {
	return func(c *config) {
		c.phaseDetection = enabled
	}
}

// WithRand sets the random source used by Scramble. Sessions without
// one share the math/rand default source.
func WithRand(r *rand.Rand) Option {
	return func(c *config) {
		c.rng = r
	}
}
