// Package field holds the static inputs of a render: the seeded sampler,
// the force field, and the faucets streams are drawn from.
package field

import "math"

// Vec is a 2D vector, used both as a spatial coordinate (pixel space, not
// bounded to the canvas) and as a velocity.
type Vec struct {
	X, Y float64
}

// Add returns the elementwise sum.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns the vector multiplied by ratio.
func (v Vec) Scale(ratio float64) Vec {
	return Vec{X: v.X * ratio, Y: v.Y * ratio}
}

// Length returns the Euclidean magnitude.
func (v Vec) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// ToPixel converts the vector to a grid index. A coordinate addresses a
// pixel only when it lies strictly inside (0, size); anything else
// reports ok=false and no pixel is touched.
func (v Vec) ToPixel(size float64) (x, y int, ok bool) {
	if !(v.X > 0 && v.X < size && v.Y > 0 && v.Y < size) {
		return 0, 0, false
	}
	return int(v.X), int(v.Y), true
}
