package breakout

import (
	"math"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Ball is the ball state in cell units. Velocity is in cells per tick and
// each component stays below one cell per tick, so the ball never skips a cell.
type Ball struct {
	X, Y   float64
	VX, VY float64
}

// CellX returns the column the ball is drawn in.
func (b *Ball) CellX() int {
	return core.RoundCell(b.X)
}

// CellY returns the row the ball is drawn in.
func (b *Ball) CellY() int {
	return core.RoundCell(b.Y)
}

// Speed returns the magnitude of the velocity.
func (b *Ball) Speed() float64 {
	return core.Vec{X: b.VX, Y: b.VY}.Len()
}

// Move updates ball position by velocity.
func (b *Ball) Move() {
	b.X += b.VX
	b.Y += b.VY
}

// Paddle represents the player's paddle.
type Paddle struct {
	X     float64 // Left edge
	Y     int     // Fixed row near the bottom
	Width int
}

// CellX returns paddle's left edge column.
func (p *Paddle) CellX() int {
	return core.RoundCell(p.X)
}

// CenterX returns the horizontal centre of the drawn paddle.
func (p *Paddle) CenterX() float64 {
	return float64(p.CellX()) + float64(p.Width-1)/2
}

// Bounds describes the ball's playable interior: x in [MinX, MaxX],
// y in [MinY, MaxY]. Anything below MaxY is a miss.
type Bounds struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// InteriorBounds returns the interior of a bordered playfield.
func InteriorBounds(width, height int) Bounds {
	return Bounds{MinX: 1, MaxX: float64(width - 2), MinY: 1, MaxY: float64(height - 2)}
}

// Contains reports whether the ball's position lies inside the bounds.
func (b Bounds) Contains(ball Ball) bool {
	return ball.X >= b.MinX && ball.X <= b.MaxX && ball.Y >= b.MinY && ball.Y <= b.MaxY
}

// CollisionSide indicates which wall was hit.
type CollisionSide int

const (
	CollisionNone CollisionSide = iota
	CollisionTop
	CollisionLeft
	CollisionRight
	CollisionCorner // Top and a side wall in the same tick
)

// CheckWallCollision reflects the ball off the left, right and top walls.
// Only the sign of the component normal to the wall changes, so speed is
// preserved. The bottom is open; a miss is reported separately.
func CheckWallCollision(ball *Ball, b Bounds) CollisionSide {
	side := CollisionNone

	switch {
	case ball.X < b.MinX:
		ball.X = b.MinX
		ball.VX = math.Abs(ball.VX)
		side = CollisionLeft
	case ball.X > b.MaxX:
		ball.X = b.MaxX
		ball.VX = -math.Abs(ball.VX)
		side = CollisionRight
	}

	if ball.Y < b.MinY {
		ball.Y = b.MinY
		ball.VY = math.Abs(ball.VY)
		if side != CollisionNone {
			return CollisionCorner
		}
		side = CollisionTop
	}

	return side
}

// Missed reports whether the ball has dropped below the playfield.
func Missed(ball *Ball, b Bounds) bool {
	return ball.Y > b.MaxY
}

// CheckPaddleCollision bounces a descending ball off the paddle.
// Off-centre hits add english to the horizontal velocity, capped at maxSpeed.
// Returns true if collision occurred.
func CheckPaddleCollision(ball *Ball, paddle *Paddle, english, maxSpeed float64) bool {
	if ball.VY <= 0 {
		return false
	}

	top := float64(paddle.Y - 1)
	if ball.Y < top || ball.Y >= float64(paddle.Y)+1 {
		return false
	}

	left := float64(paddle.CellX()) - 0.5
	right := left + float64(paddle.Width)
	if ball.X < left || ball.X > right {
		return false
	}

	// Range: -1.0 (left edge) to +1.0 (right edge)
	half := float64(paddle.Width) / 2
	offset := core.ClampF((ball.X-paddle.CenterX())/half, -1, 1)

	ball.Y = top
	ball.VY = -math.Abs(ball.VY)
	ball.VX = core.ClampF(ball.VX+english*offset, -maxSpeed, maxSpeed)

	return true
}

// BrickHit describes the brick the ball ran into.
type BrickHit struct {
	Index    int
	Vertical bool // Entered through the top or bottom face
}

// CheckBrickCollision looks up the brick under the ball. On a hit the ball is
// moved back to its previous position and the velocity component normal to
// the face it came through is reversed.
func CheckBrickCollision(ball *Ball, prevX, prevY float64, wall *Wall) (BrickHit, bool) {
	i, ok := wall.CellAt(ball.CellX(), ball.CellY())
	if !ok {
		return BrickHit{}, false
	}

	vertical := core.RoundCell(prevY) != ball.CellY()
	if vertical {
		ball.VY = -ball.VY
	} else {
		ball.VX = -ball.VX
	}
	ball.X, ball.Y = prevX, prevY

	return BrickHit{Index: i, Vertical: vertical}, true
}
