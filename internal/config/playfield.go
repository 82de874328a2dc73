package config

import (
	"errors"
	"fmt"
)

// Playfield limits. The welcome dialog is 32 cells wide and 13 rows tall,
// which sets the smallest board it fits on.
const (
	MinWidth      = 32
	MinHeight     = 20
	DefaultWidth  = 13 * 8
	DefaultHeight = 30
)

// Sizing errors. Both are usage errors: the caller should print usage and exit non-zero.
var (
	ErrWidthTooSmall  = errors.New("the specified or computed width is too small")
	ErrHeightTooSmall = errors.New("the specified or computed height is too small")
)

// SizeFunc reports the current terminal dimensions.
type SizeFunc func() (width, height int, err error)

// PlayfieldRequest is what the user asked for on the command line.
type PlayfieldRequest struct {
	Width     int
	Height    int
	Fill      bool // Use the terminal size instead of Width/Height
	CellWidth int  // Brick width; explicit widths are rounded down to a multiple of it
}

// Playfield is the resolved board size in terminal cells.
type Playfield struct {
	Width  int
	Height int
}

// ResolvePlayfield turns a request into a validated playfield size.
// With Fill the terminal dimensions are used unchanged. Explicit widths are
// rounded down to whole bricks after the minimum check.
func ResolvePlayfield(req PlayfieldRequest, size SizeFunc) (Playfield, error) {
	w, h := req.Width, req.Height

	if req.Fill {
		if size == nil {
			return Playfield{}, errors.New("config: no terminal size source for --fill")
		}
		tw, th, err := size()
		if err != nil {
			return Playfield{}, fmt.Errorf("config: failed to get terminal size: %w", err)
		}
		w, h = tw, th
	}

	if w < MinWidth {
		return Playfield{}, fmt.Errorf("%w: %d (minimum %d)", ErrWidthTooSmall, w, MinWidth)
	}
	if h < MinHeight {
		return Playfield{}, fmt.Errorf("%w: %d (minimum %d)", ErrHeightTooSmall, h, MinHeight)
	}

	if !req.Fill && req.CellWidth > 0 {
		w = (w / req.CellWidth) * req.CellWidth
	}

	return Playfield{Width: w, Height: h}, nil
}
