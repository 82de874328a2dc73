package core

import "testing"

func TestRectContains(t *testing.T) {
	brick := NewRect(8, 3, 7, 1)

	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"left edge", 8, 3, true},
		{"last glyph", 14, 3, true},
		{"gap after brick", 15, 3, false},
		{"before brick", 7, 3, false},
		{"row above", 10, 2, false},
		{"row below", 10, 4, false},
	}

	for _, tc := range tests {
		if got := brick.Contains(tc.x, tc.y); got != tc.want {
			t.Errorf("%s: Contains(%d, %d) = %v, expected %v", tc.name, tc.x, tc.y, got, tc.want)
		}
	}
}

func TestRectEdgesAndCenter(t *testing.T) {
	r := NewRect(2, 5, 8, 3)
	if r.Right() != 10 || r.Bottom() != 8 {
		t.Errorf("Right, Bottom = %d, %d; expected 10, 8", r.Right(), r.Bottom())
	}
	if x, y := r.Center(); x != 6 || y != 6 {
		t.Errorf("Center = (%d, %d), expected (6, 6)", x, y)
	}
}

func TestRoundCell(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{1.0, 1},
		{1.49, 1},
		{1.5, 2},
		{2.6, 3},
		{0.2, 0},
	}

	for _, tc := range tests {
		if got := RoundCell(tc.in); got != tc.want {
			t.Errorf("RoundCell(%v) = %d, expected %d", tc.in, got, tc.want)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, lo, hi, want float64
	}{
		{0.5, -1, 1, 0.5},
		{-3, -1, 1, -1},
		{2.5, -1, 1, 1},
	}

	for _, tc := range tests {
		if got := ClampF(tc.val, tc.lo, tc.hi); got != tc.want {
			t.Errorf("ClampF(%v, %v, %v) = %v, expected %v", tc.val, tc.lo, tc.hi, got, tc.want)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(3, -2) != -2 || Max(3, -2) != 3 {
		t.Error("Min/Max returned the wrong operand")
	}
}

func TestVecLen(t *testing.T) {
	if l := (Vec{X: 0.3, Y: 0.4}).Len(); l < 0.4999 || l > 0.5001 {
		t.Errorf("Len() = %v, expected 0.5", l)
	}
}
