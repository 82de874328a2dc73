// Package breakout implements a Breakout-style brick breaker game.
package breakout

import (
	"math/rand/v2"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// BrickKind represents different types of bricks.
type BrickKind int

const (
	BrickEmpty  BrickKind = iota // No brick
	BrickNormal                  // Standard brick, destroyed in one hit
	BrickHard                    // Requires 2 hits to destroy
	BrickSolid                   // Indestructible
)

// Brick is one cell of the wall arena.
type Brick struct {
	Kind   BrickKind
	HP     int
	Points int
	Color  core.Color
	Alive  bool
}

// Destructible reports whether the brick counts towards clearing the level.
func (b Brick) Destructible() bool {
	return b.Alive && (b.Kind == BrickNormal || b.Kind == BrickHard)
}

// Wall is the brick grid stored as a flat arena indexed by row*Cols+col.
// Each brick occupies BrickW columns and one row; the grid's top-left
// brick starts at (X0, Y0) in playfield coordinates.
type Wall struct {
	Cols, Rows int
	X0, Y0     int
	BrickW     int
	Bricks     []Brick
}

// NewWall allocates an empty wall.
func NewWall(cols, rows, x0, y0, brickW int) *Wall {
	return &Wall{
		Cols:   cols,
		Rows:   rows,
		X0:     x0,
		Y0:     y0,
		BrickW: brickW,
		Bricks: make([]Brick, cols*rows),
	}
}

// Index returns the arena index for a grid position.
func (w *Wall) Index(col, row int) int {
	return row*w.Cols + col
}

// At returns the brick at a grid position, or nil outside the grid.
func (w *Wall) At(col, row int) *Brick {
	if col < 0 || col >= w.Cols || row < 0 || row >= w.Rows {
		return nil
	}
	return &w.Bricks[w.Index(col, row)]
}

// CellAt maps a playfield cell to the index of a live brick covering it.
// The gap column after each brick is empty space.
func (w *Wall) CellAt(x, y int) (int, bool) {
	if x < w.X0 || y < w.Y0 {
		return -1, false
	}
	col, row := (x-w.X0)/w.BrickW, y-w.Y0
	b := w.At(col, row)
	if b == nil || !b.Alive {
		return -1, false
	}
	i := w.Index(col, row)
	if !w.Rect(i).Contains(x, y) {
		return -1, false
	}
	return i, true
}

// Rect returns the playfield cells drawn for brick i. Bricks leave a
// one-cell gap to their right unless they are a single cell wide.
func (w *Wall) Rect(i int) core.Rect {
	col, row := i%w.Cols, i/w.Cols
	return core.NewRect(w.X0+col*w.BrickW, w.Y0+row, max(1, w.BrickW-1), 1)
}

// Remaining counts the destructible bricks still standing.
func (w *Wall) Remaining() int {
	n := 0
	for _, b := range w.Bricks {
		if b.Destructible() {
			n++
		}
	}
	return n
}

// Clone creates a deep copy of the wall.
func (w *Wall) Clone() *Wall {
	c := *w
	c.Bricks = make([]Brick, len(w.Bricks))
	copy(c.Bricks, w.Bricks)
	return &c
}

// LevelSpec describes a built-in level. A nil Pattern means the classic
// full grid with random colors.
//
// Pattern characters:
//
//	'#' = normal brick
//	'.' = empty
//	'1'-'9' = normal brick worth 10 * digit points
//	'H' = hard brick (2 HP, double points)
//	'X' = solid/indestructible brick
type LevelSpec struct {
	ID      string
	Name    string
	Pattern []string
	Colors  []core.Color // Row colors, repeating; nil uses the rainbow palette
	Source  string       // File the level was loaded from; empty for built-ins
}

// BuiltinLevels returns all built-in levels in campaign order.
func BuiltinLevels() []LevelSpec {
	return []LevelSpec{
		{ID: "classic", Name: "Classic"},

		{ID: "pyramid", Name: "Pyramid", Pattern: []string{
			"........####........",
			"......########......",
			"....############....",
			"..################..",
			"####################",
		}},

		{ID: "checker", Name: "Checkerboard", Pattern: []string{
			"#.#.#.#.#.#.#.#.#.#.",
			".#.#.#.#.#.#.#.#.#.#",
			"#.#.#.#.#.#.#.#.#.#.",
			".#.#.#.#.#.#.#.#.#.#",
			"#.#.#.#.#.#.#.#.#.#.",
			".#.#.#.#.#.#.#.#.#.#",
		}},

		{ID: "diamond", Name: "Diamond", Pattern: []string{
			"....................",
			".........##.........",
			"......22222222......",
			"...333333333333333..",
			"......22222222......",
			".........##.........",
		}},

		{ID: "striped", Name: "Striped", Pattern: []string{
			"55555555555555555555",
			"....................",
			"33333333333333333333",
			"....................",
			"11111111111111111111",
		}},

		{ID: "fortress", Name: "Fortress", Pattern: []string{
			"HHHHHHHHHHHHHHHHHHHH",
			"H..................H",
			"H.################.H",
			"H.################.H",
			"H..................H",
			"HHHHHHHHHHHHHHHHHHHH",
		}},

		{ID: "castle", Name: "Castle", Pattern: []string{
			"X..X....X..X....X..X",
			"XXXX....XXXX....XXXX",
			"....................",
			"HHHHHHHHHHHHHHHHHHHH",
			"####################",
			"####################",
		}},
	}
}

// Catalog returns the built-in levels followed by extra levels whose IDs
// are not taken yet.
func Catalog(extra []LevelSpec) []LevelSpec {
	levels := BuiltinLevels()
	for _, l := range extra {
		if indexOf(levels, l.ID) < 0 {
			levels = append(levels, l)
		}
	}
	return levels
}

func indexOf(levels []LevelSpec, id string) int {
	for i, l := range levels {
		if l.ID == id {
			return i
		}
	}
	return -1
}

// classicPalette is the classic level's random brick colors; red appears twice.
var classicPalette = []core.Color{
	core.ColorRed, core.ColorGreen, core.ColorBlue, core.ColorRed, core.ColorMagenta,
}

// rowPalette colors pattern levels by row.
var rowPalette = []core.Color{
	core.ColorRed, core.ColorOrange, core.ColorYellow, core.ColorGreen,
	core.ColorCyan, core.ColorBlue, core.ColorMagenta,
}

// GridSize returns the brick grid that fits a playfield: two brick widths of
// margin and one brick row per three playfield rows.
func GridSize(width, height, brickW int) (cols, rows int) {
	cols = width/brickW - 2
	if cols < 1 {
		cols = 1
	}
	rows = height / 3
	if rows < 1 {
		rows = 1
	}
	return cols, rows
}

// BuildWall lays out a level for a playfield of the given size.
// Patterns are stretched horizontally to the available columns and cut to
// the available rows; a pattern left without destructible bricks falls back
// to the classic grid.
func BuildWall(spec LevelSpec, width, height int, bricks config.BreakoutBricks, rng *rand.Rand) *Wall {
	cols, rows := GridSize(width, height, bricks.Width)
	x0 := (width - cols*bricks.Width) / 2

	if spec.Pattern == nil {
		return classicWall(cols, rows, x0, bricks, rng)
	}

	palette := rowPalette
	if len(spec.Colors) > 0 {
		palette = spec.Colors
	}

	prows := min(len(spec.Pattern), rows)
	w := NewWall(cols, prows, x0, bricks.TopRow, bricks.Width)
	for row := range prows {
		line := spec.Pattern[row]
		for col := range cols {
			ch := byte('.')
			if len(line) > 0 {
				ch = line[col*len(line)/cols]
			}
			w.Bricks[w.Index(col, row)] = parseBrick(ch, bricks.Points, palette[row%len(palette)])
		}
	}

	if w.Remaining() == 0 {
		return classicWall(cols, rows, x0, bricks, rng)
	}
	return w
}

func classicWall(cols, rows, x0 int, bricks config.BreakoutBricks, rng *rand.Rand) *Wall {
	w := NewWall(cols, rows, x0, bricks.TopRow, bricks.Width)
	for i := range w.Bricks {
		w.Bricks[i] = Brick{
			Kind:   BrickNormal,
			HP:     1,
			Points: bricks.Points,
			Color:  classicPalette[rng.IntN(len(classicPalette))],
			Alive:  true,
		}
	}
	return w
}

func parseBrick(ch byte, points int, color core.Color) Brick {
	switch {
	case ch == '#':
		return Brick{Kind: BrickNormal, HP: 1, Points: points, Color: color, Alive: true}
	case ch >= '1' && ch <= '9':
		return Brick{Kind: BrickNormal, HP: 1, Points: int(ch-'0') * 10, Color: color, Alive: true}
	case ch == 'H' || ch == 'h':
		return Brick{Kind: BrickHard, HP: 2, Points: points * 2, Color: color, Alive: true}
	case ch == 'X' || ch == 'x':
		return Brick{Kind: BrickSolid, Color: core.ColorGray, Alive: true}
	default:
		return Brick{Kind: BrickEmpty}
	}
}
