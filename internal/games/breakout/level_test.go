package breakout

import (
	"math/rand/v2"
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/config"
)

func TestBuildWallFitsPlayfield(t *testing.T) {
	bricks := config.DefaultBreakoutConfig().Bricks
	sizes := []struct{ w, h int }{{32, 20}, {104, 30}, {131, 41}, {250, 60}}

	for _, spec := range BuiltinLevels() {
		for _, sz := range sizes {
			rng := rand.New(rand.NewPCG(1, 2))
			w := BuildWall(spec, sz.w, sz.h, bricks, rng)

			if w.Remaining() == 0 {
				t.Errorf("%s at %dx%d has no destructible bricks", spec.ID, sz.w, sz.h)
			}

			paddleRow := sz.h - 3
			for i, b := range w.Bricks {
				if !b.Alive {
					continue
				}
				r := w.Rect(i)
				if r.X < 1 || r.Right() > sz.w-1 {
					t.Fatalf("%s at %dx%d: brick %d spans x %d..%d", spec.ID, sz.w, sz.h, i, r.X, r.Right())
				}
				if r.Y < 1 || r.Y >= paddleRow-1 {
					t.Fatalf("%s at %dx%d: brick %d on row %d", spec.ID, sz.w, sz.h, i, r.Y)
				}
			}
		}
	}
}

func TestParseBrick(t *testing.T) {
	tests := []struct {
		ch     byte
		kind   BrickKind
		hp     int
		points int
	}{
		{'#', BrickNormal, 1, 10},
		{'3', BrickNormal, 1, 30},
		{'H', BrickHard, 2, 20},
		{'X', BrickSolid, 0, 0},
		{'.', BrickEmpty, 0, 0},
	}

	for _, tc := range tests {
		b := parseBrick(tc.ch, 10, 0)
		if b.Kind != tc.kind || b.HP != tc.hp || b.Points != tc.points {
			t.Errorf("parseBrick(%q) = %+v", tc.ch, b)
		}
	}
}

func TestSolidBricksDoNotCount(t *testing.T) {
	levels := BuiltinLevels()
	i := indexOf(levels, "castle")
	if i < 0 {
		t.Fatal("castle level missing")
	}
	spec := levels[i]

	w := BuildWall(spec, 104, 30, config.DefaultBreakoutConfig().Bricks, rand.New(rand.NewPCG(1, 2)))
	solid := 0
	for _, b := range w.Bricks {
		if b.Kind == BrickSolid {
			solid++
		}
	}
	if solid == 0 {
		t.Fatal("castle should contain solid bricks")
	}
	for i := range w.Bricks {
		if w.Bricks[i].Kind != BrickSolid {
			w.Bricks[i].Alive = false
		}
	}
	if w.Remaining() != 0 {
		t.Errorf("Remaining() = %d with only solid bricks left", w.Remaining())
	}
}

func TestWallCellAt(t *testing.T) {
	w := NewWall(3, 2, 8, 3, 8)
	for i := range w.Bricks {
		w.Bricks[i] = Brick{Kind: BrickNormal, HP: 1, Alive: true}
	}

	tests := []struct {
		x, y  int
		index int
		ok    bool
	}{
		{8, 3, 0, true},
		{14, 3, 0, true},
		{15, 3, -1, false},
		{16, 3, 1, true},
		{30, 4, 5, true},
		{31, 4, -1, false},
		{7, 3, -1, false},
		{32, 3, -1, false},
		{10, 5, -1, false},
		{10, 2, -1, false},
	}

	for _, tc := range tests {
		i, ok := w.CellAt(tc.x, tc.y)
		if i != tc.index || ok != tc.ok {
			t.Errorf("CellAt(%d,%d) = %d,%v, expected %d,%v", tc.x, tc.y, i, ok, tc.index, tc.ok)
		}
	}

	w.Bricks[0].Alive = false
	if _, ok := w.CellAt(8, 3); ok {
		t.Error("dead bricks should not be hit")
	}
}

func TestSingleCellBricksHaveNoGap(t *testing.T) {
	w := NewWall(2, 1, 4, 2, 1)
	w.Bricks[0] = Brick{Kind: BrickNormal, HP: 1, Alive: true}
	w.Bricks[1] = Brick{Kind: BrickNormal, HP: 1, Alive: true}

	for x, want := range map[int]int{4: 0, 5: 1} {
		if i, ok := w.CellAt(x, 2); !ok || i != want {
			t.Errorf("CellAt(%d,2) = %d,%v, expected %d,true", x, i, ok, want)
		}
	}
}

func TestLevelLookup(t *testing.T) {
	levels := BuiltinLevels()
	if indexOf(levels, "classic") != 0 {
		t.Error("classic should be the first level")
	}
	if indexOf(levels, "nope") != -1 {
		t.Error("unknown level should return -1")
	}
	if indexOf(Catalog(nil), "pyramid") < 0 {
		t.Error("pyramid level missing")
	}
}
