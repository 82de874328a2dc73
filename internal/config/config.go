// Package config provides YAML-based game tuning, difficulty presets and
// playfield sizing for the breakout game.
package config

import (
	"errors"
	"fmt"
)

// BreakoutConfig contains all tuning for the Breakout game.
type BreakoutConfig struct {
	Physics  BreakoutPhysics  `yaml:"physics"`
	Paddle   BreakoutPaddle   `yaml:"paddle"`
	Bricks   BreakoutBricks   `yaml:"bricks"`
	Gameplay BreakoutGameplay `yaml:"gameplay"`
}

// BreakoutPhysics defines ball and paddle motion, in cells per tick.
type BreakoutPhysics struct {
	BallSpeed    float64 `yaml:"ball_speed"`     // Per-axis launch speed
	PaddleSpeed  float64 `yaml:"paddle_speed"`   // Cells moved per key press
	MaxBallSpeed float64 `yaml:"max_ball_speed"` // Cap on either velocity component
	English      float64 `yaml:"english"`        // Horizontal kick from off-centre paddle hits
	EndlessStep  float64 `yaml:"endless_step"`   // Speed added per endless cycle
}

// BreakoutPaddle defines the paddle.
type BreakoutPaddle struct {
	Width int `yaml:"width"`
}

// BreakoutBricks defines the brick grid layout.
type BreakoutBricks struct {
	Width  int `yaml:"width"`   // Cells per brick
	TopRow int `yaml:"top_row"` // First brick row
	Points int `yaml:"points"`  // Points for a plain brick
}

// BreakoutGameplay defines rules.
type BreakoutGameplay struct {
	Lives      int `yaml:"lives"`
	ServeDelay int `yaml:"serve_delay"` // Ticks before a serve is allowed after a miss
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficulty validates a preset name. The empty string means normal.
func ParseDifficulty(name string) (DifficultyPreset, error) {
	switch DifficultyPreset(name) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyHard:
		return DifficultyPreset(name), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", name)
	}
}

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid breakout config")

// Validate checks that the tuning can produce a playable game.
// Ball speed must stay below one cell per tick so the ball never skips a brick.
func (c BreakoutConfig) Validate() error {
	switch {
	case c.Physics.BallSpeed <= 0:
		return fmt.Errorf("%w: ball_speed must be positive", ErrInvalidConfig)
	case c.Physics.MaxBallSpeed < c.Physics.BallSpeed:
		return fmt.Errorf("%w: max_ball_speed must be at least ball_speed", ErrInvalidConfig)
	case c.Physics.MaxBallSpeed >= 1:
		return fmt.Errorf("%w: max_ball_speed must be below 1 cell per tick", ErrInvalidConfig)
	case c.Physics.PaddleSpeed <= 0:
		return fmt.Errorf("%w: paddle_speed must be positive", ErrInvalidConfig)
	case c.Paddle.Width < 1:
		return fmt.Errorf("%w: paddle width must be positive", ErrInvalidConfig)
	case c.Bricks.Width < 1:
		return fmt.Errorf("%w: brick width must be positive", ErrInvalidConfig)
	case c.Bricks.TopRow < 1:
		return fmt.Errorf("%w: brick top_row must be inside the border", ErrInvalidConfig)
	case c.Gameplay.Lives < 1:
		return fmt.Errorf("%w: lives must be positive", ErrInvalidConfig)
	case c.Gameplay.ServeDelay < 0:
		return fmt.Errorf("%w: serve_delay must not be negative", ErrInvalidConfig)
	}
	return nil
}

// ApplyBreakoutPreset modifies the config based on a difficulty preset.
func ApplyBreakoutPreset(cfg *BreakoutConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Paddle.Width = 16
		cfg.Physics.BallSpeed = 0.25
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Paddle.Width = 8
		cfg.Physics.BallSpeed = 0.4
	}
}
