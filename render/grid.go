// Package render runs the simulation pipeline: stream integration,
// trail rasterization into an accumulator grid, and tone mapping.
package render

import "github.com/pthm-cable/streamfield/field"

// Grid is the per-pixel color accumulator, indexed (x, y) over a
// size x size canvas. It is add-only during integration and read-only
// once tone mapping starts.
type Grid struct {
	size  int
	cells []field.ColorOffset // row-major on x: index x*size + y
}

// NewGrid returns a zeroed size x size grid.
func NewGrid(size int) *Grid {
	return &Grid{
		size:  size,
		cells: make([]field.ColorOffset, size*size),
	}
}

// Size returns the grid's side length in pixels.
func (g *Grid) Size() int {
	return g.size
}

// At returns the accumulated offset at (x, y).
func (g *Grid) At(x, y int) field.ColorOffset {
	return g.cells[x*g.size+y]
}

// Accumulate adds c to the cell at (x, y).
func (g *Grid) Accumulate(x, y int, c field.ColorOffset) {
	i := x*g.size + y
	g.cells[i] = g.cells[i].Add(c)
}

// Merge adds every cell of other into g. Other must be the same size.
func (g *Grid) Merge(other *Grid) {
	for i := range g.cells {
		g.cells[i] = g.cells[i].Add(other.cells[i])
	}
}
