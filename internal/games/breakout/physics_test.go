package breakout

import "testing"

func TestCheckWallCollisionSides(t *testing.T) {
	b := InteriorBounds(40, 20)

	tests := []struct {
		name string
		ball Ball
		want CollisionSide
	}{
		{"inside", Ball{X: 20, Y: 10, VX: 0.3, VY: 0.3}, CollisionNone},
		{"left", Ball{X: 0.8, Y: 10, VX: -0.3}, CollisionLeft},
		{"right", Ball{X: 38.2, Y: 10, VX: 0.3}, CollisionRight},
		{"top", Ball{X: 20, Y: 0.9, VY: -0.3}, CollisionTop},
		{"corner", Ball{X: 0.5, Y: 0.5, VX: -0.3, VY: -0.3}, CollisionCorner},
		{"bottom is open", Ball{X: 20, Y: 19, VY: 0.3}, CollisionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ball := tc.ball
			if got := CheckWallCollision(&ball, b); got != tc.want {
				t.Errorf("CheckWallCollision() = %v, expected %v", got, tc.want)
			}
			if tc.want != CollisionNone && !b.Contains(ball) {
				t.Errorf("ball %+v left outside %+v", ball, b)
			}
		})
	}
}

func TestMissed(t *testing.T) {
	b := InteriorBounds(40, 20)
	if Missed(&Ball{Y: 18}, b) {
		t.Error("ball on the last interior row is still in play")
	}
	if !Missed(&Ball{Y: 18.1}, b) {
		t.Error("ball below the last interior row is a miss")
	}
}

func TestPaddleIgnoresRisingBall(t *testing.T) {
	p := &Paddle{X: 10, Y: 17, Width: 12}
	ball := &Ball{X: 15, Y: 16.5, VY: -0.3}
	if CheckPaddleCollision(ball, p, 0.4, 0.9) {
		t.Error("a rising ball should pass through the paddle row")
	}
}

func TestPaddleMissOutsideSpan(t *testing.T) {
	p := &Paddle{X: 10, Y: 17, Width: 12}
	for _, x := range []float64{9.4, 21.6} {
		ball := &Ball{X: x, Y: 16.2, VY: 0.3}
		if CheckPaddleCollision(ball, p, 0.4, 0.9) {
			t.Errorf("ball at x=%v should miss a paddle spanning 10..21", x)
		}
	}
}

func TestPaddleEnglishIsCapped(t *testing.T) {
	p := &Paddle{X: 10, Y: 17, Width: 12}
	ball := &Ball{X: 21.5, Y: 16.2, VX: 0.85, VY: 0.3}
	if !CheckPaddleCollision(ball, p, 0.4, 0.9) {
		t.Fatal("expected a hit on the right edge")
	}
	if ball.VX != 0.9 {
		t.Errorf("VX = %v, expected the 0.9 cap", ball.VX)
	}
}
