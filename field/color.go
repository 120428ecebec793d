package field

import (
	"image/color"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ColorOffset is an unbounded additive color residual, not yet a
// displayable pixel. Addition and scaling are plain vector operations;
// the zero value is the neutral offset.
type ColorOffset struct {
	R, G, B float64
}

// Add returns the elementwise sum.
func (c ColorOffset) Add(o ColorOffset) ColorOffset {
	return ColorOffset{R: c.R + o.R, G: c.G + o.G, B: c.B + o.B}
}

// Scale returns the offset with all three channels multiplied by ratio.
func (c ColorOffset) Scale(ratio float64) ColorOffset {
	return ColorOffset{R: c.R * ratio, G: c.G * ratio, B: c.B * ratio}
}

// Length returns the Euclidean magnitude across the three channels.
func (c ColorOffset) Length() float64 {
	return math.Sqrt(c.R*c.R + c.G*c.G + c.B*c.B)
}

// saturate maps an unbounded channel into (0, 1) with smooth highlight
// roll-off instead of hard clipping. saturate(0) = 0.5.
func saturate(x float64) float64 {
	return 0.5*x/(1+math.Abs(x)) + 0.5
}

// ToRGB tone-maps the accumulated offset to a displayable color. The
// offset is first length-capped to colorCap (preserving direction, so an
// over-bright pixel keeps its hue), each channel is squashed into (0, 1),
// and the result is interpreted as CIELAB with L from the red channel and
// a/b from green/blue, then converted to sRGB.
func (c ColorOffset) ToRGB(colorCap float64) color.RGBA {
	ratio := 1.0
	if length := c.Length(); length > colorCap {
		ratio = colorCap / length
	}

	l := saturate(c.R*ratio) * 100
	a := saturate(c.G*ratio)*255 - 128
	b := saturate(c.B*ratio)*255 - 128

	// go-colorful's Lab axes are CIELAB divided by 100.
	rgb := colorful.Lab(l/100, a/100, b/100).Clamped()
	r8, g8, b8 := rgb.RGB255()
	return color.RGBA{R: r8, G: g8, B: b8, A: 255}
}
