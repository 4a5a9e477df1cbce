package common

import (
	"math"
	"testing"
)

func TestMoveToward(t *testing.T) {
	cases := []struct {
		name                  string
		current, target, step float64
		want                  float64
	}{
		{"up", 0, 10, 3, 3},
		{"up_clamped", 9, 10, 3, 10},
		{"down", 0, -10, 4, -4},
		{"down_clamped", -8, -10, 4, -10},
		{"at_target", 5, 5, 1, 5},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := MoveToward(c.current, c.target, c.step); got != c.want {
				t.Fatalf("MoveToward(%v, %v, %v) = %v, want %v", c.current, c.target, c.step, got, c.want)
			}
		})
	}
}

func TestRotate(t *testing.T) {
	x, y := Rotate(1, 0, math.Pi)
	if math.Abs(x+1) > 1e-9 || math.Abs(y) > 1e-9 {
		t.Fatalf("expected (-1, 0), got (%v, %v)", x, y)
	}
	x, y = Rotate(1, 0, math.Pi/2)
	if math.Abs(x) > 1e-9 || math.Abs(y-1) > 1e-9 {
		t.Fatalf("expected (0, 1), got (%v, %v)", x, y)
	}
}
