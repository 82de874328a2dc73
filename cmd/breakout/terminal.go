package main

import (
	"errors"
	"os"

	"golang.org/x/term"
)

// ErrNotTerminal is returned when stdout cannot host the game.
var ErrNotTerminal = errors.New("breakout requires an interactive terminal")

// Terminal probes, replaceable in tests.
var (
	terminalSize = func() (int, int, error) {
		return term.GetSize(int(os.Stdout.Fd()))
	}
	isTerminal = func() bool {
		return term.IsTerminal(int(os.Stdout.Fd()))
	}
)
