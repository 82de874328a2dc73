package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parseBreakout(DefaultYAML())
	if err != nil {
		t.Fatalf("parseBreakout(embedded) failed: %v", err)
	}
	if cfg != DefaultBreakoutConfig() {
		t.Errorf("embedded YAML = %+v, expected %+v", cfg, DefaultBreakoutConfig())
	}
}

func TestLoadBreakoutCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := []byte("paddle:\n  width: 20\ngameplay:\n  lives: 7\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := LoadBreakout(path)
	if err != nil {
		t.Fatalf("LoadBreakout() failed: %v", err)
	}

	if cfg.Paddle.Width != 20 {
		t.Errorf("Paddle.Width = %d, expected 20", cfg.Paddle.Width)
	}
	if cfg.Gameplay.Lives != 7 {
		t.Errorf("Gameplay.Lives = %d, expected 7", cfg.Gameplay.Lives)
	}
	// Keys absent from the file keep their defaults
	if cfg.Physics.BallSpeed != DefaultBreakoutConfig().Physics.BallSpeed {
		t.Errorf("Physics.BallSpeed = %v, expected default", cfg.Physics.BallSpeed)
	}
}

func TestLoadBreakoutErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadBreakout(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("LoadBreakout() should fail for a missing custom file")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("physics: [not, a, map]"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if _, err := LoadBreakout(bad); err == nil {
		t.Error("LoadBreakout() should fail for malformed YAML")
	}

	fast := filepath.Join(dir, "fast.yaml")
	if err := os.WriteFile(fast, []byte("physics:\n  max_ball_speed: 1.5\n"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	_, err := LoadBreakout(fast)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("LoadBreakout() error = %v, expected ErrInvalidConfig", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*BreakoutConfig)
		ok     bool
	}{
		{"defaults", func(*BreakoutConfig) {}, true},
		{"zero ball speed", func(c *BreakoutConfig) { c.Physics.BallSpeed = 0 }, false},
		{"max below base", func(c *BreakoutConfig) { c.Physics.MaxBallSpeed = 0.1 }, false},
		{"tunneling speed", func(c *BreakoutConfig) { c.Physics.MaxBallSpeed = 1 }, false},
		{"no paddle", func(c *BreakoutConfig) { c.Paddle.Width = 0 }, false},
		{"no lives", func(c *BreakoutConfig) { c.Gameplay.Lives = 0 }, false},
		{"bricks on border", func(c *BreakoutConfig) { c.Bricks.TopRow = 0 }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultBreakoutConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if (err == nil) != tc.ok {
				t.Errorf("Validate() = %v, expected ok=%v", err, tc.ok)
			}
		})
	}
}

func TestDifficultyPresets(t *testing.T) {
	easy := DefaultBreakoutConfig()
	ApplyBreakoutPreset(&easy, DifficultyEasy)
	if easy.Gameplay.Lives != 5 || easy.Paddle.Width != 16 {
		t.Errorf("easy preset = %+v", easy)
	}

	hard := DefaultBreakoutConfig()
	ApplyBreakoutPreset(&hard, DifficultyHard)
	if hard.Gameplay.Lives != 2 || hard.Physics.BallSpeed != 0.4 {
		t.Errorf("hard preset = %+v", hard)
	}
	if err := hard.Validate(); err != nil {
		t.Errorf("hard preset should stay valid: %v", err)
	}

	normal := DefaultBreakoutConfig()
	ApplyBreakoutPreset(&normal, DifficultyNormal)
	if normal != DefaultBreakoutConfig() {
		t.Error("normal preset should not change the defaults")
	}

	if _, err := ParseDifficulty("insane"); err == nil {
		t.Error("ParseDifficulty should reject unknown presets")
	}
	if p, err := ParseDifficulty(""); err != nil || p != DifficultyNormal {
		t.Errorf("ParseDifficulty(\"\") = %q, %v, expected normal", p, err)
	}
}
