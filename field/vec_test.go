package field

import (
	"math"
	"testing"
)

func TestVecOps(t *testing.T) {
	v := Vec{X: 3, Y: -4}

	if got := v.Add(Vec{X: 1, Y: 2}); got != (Vec{X: 4, Y: -2}) {
		t.Errorf("Add = %v, want {4 -2}", got)
	}
	if got := v.Scale(-2); got != (Vec{X: -6, Y: 8}) {
		t.Errorf("Scale = %v, want {-6 8}", got)
	}
	if got := v.Length(); math.Abs(got-5) > 1e-12 {
		t.Errorf("Length = %v, want 5", got)
	}
}

func TestVecToPixel(t *testing.T) {
	tests := []struct {
		name   string
		v      Vec
		wantX  int
		wantY  int
		wantOK bool
	}{
		{"interior", Vec{X: 5.9, Y: 2.1}, 5, 2, true},
		{"origin excluded", Vec{X: 0, Y: 5}, 0, 0, false},
		{"at size excluded", Vec{X: 10, Y: 5}, 0, 0, false},
		{"negative x", Vec{X: -0.5, Y: 5}, 0, 0, false},
		{"negative y", Vec{X: 5, Y: -3}, 0, 0, false},
		{"beyond size", Vec{X: 5, Y: 10.5}, 0, 0, false},
		{"just inside", Vec{X: 9.999, Y: 0.001}, 9, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y, ok := tt.v.ToPixel(10)
			if x != tt.wantX || y != tt.wantY || ok != tt.wantOK {
				t.Errorf("ToPixel(%v, 10) = (%d, %d, %v), want (%d, %d, %v)",
					tt.v, x, y, ok, tt.wantX, tt.wantY, tt.wantOK)
			}
		})
	}
}
