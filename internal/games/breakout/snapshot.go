package breakout

import (
	"encoding/binary"
	"hash/fnv"
	"math"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Snapshot is a read-only copy of everything needed to draw or compare a
// game. It shares no memory with the live game.
type Snapshot struct {
	Width, Height int
	Mode          Mode
	Phase         core.Phase
	Tick          uint64

	Score      int
	Lives      int
	Level      int // 1-based, counts endless cycles
	LevelName  string
	LevelCount int
	ServeDelay int

	Ball      Ball
	Paddle    Paddle
	Wall      Wall
	Remaining int
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Width:  g.runtime.ScreenW,
		Height: g.runtime.ScreenH,
		Mode:   g.mode,
		Phase:  g.phase,
		Tick:   g.tick,

		Score:      g.score,
		Lives:      g.lives,
		Level:      g.levelNumber(),
		LevelName:  g.levels[g.levelIndex].Name,
		LevelCount: len(g.levels),
		ServeDelay: g.serveDelay,

		Ball:      g.ball,
		Paddle:    g.paddle,
		Wall:      *g.wall.Clone(),
		Remaining: g.wall.Remaining(),
	}
}

// Hash returns an FNV-1a digest of the snapshot for determinism testing.
func (s *Snapshot) Hash() uint64 {
	h := fnv.New64a()
	buf := make([]byte, 0, 64+len(s.Wall.Bricks)*32)

	putInt := func(v int) {
		buf = binary.LittleEndian.AppendUint64(buf, uint64(v)) //#nosec G115 -- hash computation
	}
	putFloat := func(v float64) {
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(v))
	}

	putInt(s.Width)
	putInt(s.Height)
	putInt(int(s.Mode))
	putInt(int(s.Phase))
	buf = binary.LittleEndian.AppendUint64(buf, s.Tick)
	putInt(s.Score)
	putInt(s.Lives)
	putInt(s.Level)
	putInt(s.ServeDelay)
	buf = append(buf, s.LevelName...)

	putFloat(s.Ball.X)
	putFloat(s.Ball.Y)
	putFloat(s.Ball.VX)
	putFloat(s.Ball.VY)
	putFloat(s.Paddle.X)
	putInt(s.Paddle.Y)
	putInt(s.Paddle.Width)

	putInt(s.Wall.Cols)
	putInt(s.Wall.Rows)
	putInt(s.Wall.X0)
	putInt(s.Wall.Y0)
	for _, b := range s.Wall.Bricks {
		putInt(int(b.Kind))
		putInt(b.HP)
		putInt(int(b.Color))
		if b.Alive {
			buf = append(buf, 1)
		} else {
			buf = append(buf, 0)
		}
	}

	_, _ = h.Write(buf)
	return h.Sum64()
}
