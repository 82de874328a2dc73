package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
)

// stubTerminal replaces the terminal probes and the program runner for one
// test. The returned pointer receives the config of the model that would run.
func stubTerminal(t *testing.T, w, h int, tty bool) *core.RuntimeConfig {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	oldSize, oldTTY, oldRun := terminalSize, isTerminal, runProgram
	t.Cleanup(func() {
		terminalSize, isTerminal, runProgram = oldSize, oldTTY, oldRun
	})

	terminalSize = func() (int, int, error) { return w, h, nil }
	isTerminal = func() bool { return tty }

	got := new(core.RuntimeConfig)
	runProgram = func(_ context.Context, m tui.Model) error {
		*got = m.Config()
		return nil
	}
	return got
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	dir := t.TempDir()
	args = append(args,
		"--db", filepath.Join(dir, "scores.db"),
		"--log-file", filepath.Join(dir, "breakout.log"),
	)

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestWidthTooSmall(t *testing.T) {
	ran := stubTerminal(t, 200, 60, true)

	out, err := execute(t, "--width", "10")
	if !errors.Is(err, config.ErrWidthTooSmall) {
		t.Fatalf("error = %v, expected ErrWidthTooSmall", err)
	}
	if !strings.Contains(out, "Usage:") {
		t.Errorf("usage not printed, output:\n%s", out)
	}
	if ran.ScreenW != 0 {
		t.Error("game should not start")
	}
}

func TestShortHIsHeight(t *testing.T) {
	stubTerminal(t, 200, 60, true)

	_, err := execute(t, "-h", "12")
	if !errors.Is(err, config.ErrHeightTooSmall) {
		t.Fatalf("error = %v, expected ErrHeightTooSmall", err)
	}
}

func TestFillUsesTerminalSize(t *testing.T) {
	ran := stubTerminal(t, 131, 41, true)

	if _, err := execute(t, "--fill"); err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if ran.ScreenW != 131 || ran.ScreenH != 41 {
		t.Errorf("playfield = %dx%d, expected 131x41", ran.ScreenW, ran.ScreenH)
	}
}

func TestExplicitSize(t *testing.T) {
	ran := stubTerminal(t, 200, 60, true)

	if _, err := execute(t, "-w", "45", "-h", "24", "--seed", "7", "--fps", "30"); err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if ran.ScreenW != 40 || ran.ScreenH != 24 {
		t.Errorf("playfield = %dx%d, expected 40x24", ran.ScreenW, ran.ScreenH)
	}
	if ran.Seed != 7 || ran.TickRate != 30 {
		t.Errorf("runtime = %+v", *ran)
	}
}

func TestEnvironmentOverride(t *testing.T) {
	stubTerminal(t, 200, 60, true)
	t.Setenv("BREAKOUT_WIDTH", "10")

	_, err := execute(t)
	if !errors.Is(err, config.ErrWidthTooSmall) {
		t.Fatalf("error = %v, expected ErrWidthTooSmall from BREAKOUT_WIDTH", err)
	}
}

func TestNotATerminal(t *testing.T) {
	stubTerminal(t, 200, 60, false)

	_, err := execute(t)
	if !errors.Is(err, ErrNotTerminal) {
		t.Fatalf("error = %v, expected ErrNotTerminal", err)
	}
}

func TestInvalidFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"mode", []string{"--mode", "arcade"}},
		{"level", []string{"--level", "moon"}},
		{"difficulty", []string{"--difficulty", "nightmare"}},
		{"fps", []string{"--fps", "0"}},
		{"args", []string{"extra"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ran := stubTerminal(t, 200, 60, true)
			if _, err := execute(t, tc.args...); err == nil {
				t.Error("expected an error")
			}
			if ran.ScreenW != 0 {
				t.Error("game should not start")
			}
		})
	}
}

func TestLevelsCommand(t *testing.T) {
	stubTerminal(t, 200, 60, true)

	out, err := execute(t, "levels")
	if err != nil {
		t.Fatalf("levels failed: %v", err)
	}
	for _, id := range []string{"classic", "pyramid", "castle"} {
		if !strings.Contains(out, id) {
			t.Errorf("levels output missing %q:\n%s", id, out)
		}
	}
}

func TestCustomLevelDir(t *testing.T) {
	ran := stubTerminal(t, 200, 60, true)

	dir := t.TempDir()
	level := "id: arch\nname: Arch\npattern: ['.####.', '#....#']\n"
	if err := os.WriteFile(filepath.Join(dir, "arch.yaml"), []byte(level), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "levels", "--levels-dir", dir)
	if err != nil {
		t.Fatalf("levels failed: %v", err)
	}
	if !strings.Contains(out, "arch") || !strings.Contains(out, "built-in") {
		t.Errorf("levels output:\n%s", out)
	}

	if _, err := execute(t, "--levels-dir", dir, "--level", "arch"); err != nil {
		t.Fatalf("play failed: %v", err)
	}
	if ran.ScreenW == 0 {
		t.Error("game did not start on the custom level")
	}
}

func TestScoresCommandEmpty(t *testing.T) {
	stubTerminal(t, 100, 40, true)

	out, err := execute(t, "scores", "--mode", "campaign")
	if err != nil {
		t.Fatalf("scores failed: %v", err)
	}
	if !strings.Contains(out, "No scores yet") {
		t.Errorf("scores output:\n%s", out)
	}
}

func TestScoresClear(t *testing.T) {
	stubTerminal(t, 100, 40, true)

	out, err := execute(t, "scores", "--mode", "endless", "--clear")
	if err != nil {
		t.Fatalf("scores --clear failed: %v", err)
	}
	if !strings.Contains(out, "Cleared endless scores") {
		t.Errorf("output = %q", out)
	}
}
