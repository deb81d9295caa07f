package core

import (
	"math"
	"testing"
)

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{"overlapping", NewRect(0, 0, 10, 10), NewRect(5, 5, 10, 10), true},
		{"apart horizontally", NewRect(0, 0, 10, 10), NewRect(15, 0, 10, 10), false},
		{"apart vertically", NewRect(0, 0, 10, 10), NewRect(0, 15, 10, 10), false},
		{"touching edges", NewRect(0, 0, 10, 10), NewRect(10, 0, 10, 10), false},
		{"contained", NewRect(0, 0, 20, 20), NewRect(5, 5, 5, 5), true},
		{"fractional overlap", NewRect(0, 0, 10, 10), NewRect(9.5, 9.5, 10, 10), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     float64
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"right edge exclusive", 30, 15, false},
		{"bottom edge exclusive", 15, 25, false},
		{"outside", 5, 5, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%v, %v) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}

	if r.ContainsOpen(10, 15) {
		t.Error("ContainsOpen should exclude the left edge")
	}
}

func TestRectCenter(t *testing.T) {
	c := NewRect(10, 20, 30, 40).Center()
	if c.X != 25 || c.Y != 40 {
		t.Errorf("Center() = %+v, expected {25 40}", c)
	}
}

func TestVec2(t *testing.T) {
	v := Vec2{X: 3, Y: 4}
	if v.Len() != 5 {
		t.Errorf("Len() = %v, expected 5", v.Len())
	}
	if got := v.Scale(2).Sub(Vec2{X: 1, Y: 1}); got != (Vec2{X: 5, Y: 7}) {
		t.Errorf("Scale/Sub = %+v, expected {5 7}", got)
	}
	if got := v.Add(Vec2{X: -3, Y: -4}).Len(); math.Abs(got) > 1e-12 {
		t.Errorf("Add() length = %v, expected 0", got)
	}
}

func TestClamp(t *testing.T) {
	if Clamp(5, 0, 3) != 3 || Clamp(-1, 0, 3) != 0 || Clamp(2, 0, 3) != 2 {
		t.Error("Clamp returned a value outside the range")
	}
	if ClampF(7.5, 0, 7) != 7 || ClampF(-0.5, 0, 7) != 0 {
		t.Error("ClampF returned a value outside the range")
	}
	if Abs(-4) != 4 || Min(2, 3) != 2 || Max(2, 3) != 3 {
		t.Error("integer helpers returned wrong values")
	}
}
