package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// DefaultBreakoutConfig returns the built-in Breakout configuration.
// It mirrors defaults/breakout.yaml and is the fallback when the embedded
// file cannot be parsed.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Physics: BreakoutPhysics{
			BallSpeed:    0.3,
			PaddleSpeed:  3,
			MaxBallSpeed: 0.9,
			English:      0.4,
			EndlessStep:  0.03,
		},
		Paddle: BreakoutPaddle{
			Width: 12,
		},
		Bricks: BreakoutBricks{
			Width:  8,
			TopRow: 3,
			Points: 10,
		},
		Gameplay: BreakoutGameplay{
			Lives:      3,
			ServeDelay: 25, // Half a second at 50 ticks per second
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultBreakoutYAML
}
