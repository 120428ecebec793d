package field

import (
	"math"
	"testing"

	colorful "github.com/lucasb-eyer/go-colorful"
)

func TestColorOffsetOps(t *testing.T) {
	c := ColorOffset{R: 1, G: -2, B: 0.5}

	if got := c.Add(ColorOffset{R: 0.5, G: 2, B: -1}); got != (ColorOffset{R: 1.5, G: 0, B: -0.5}) {
		t.Errorf("Add = %v", got)
	}
	if got := c.Scale(2); got != (ColorOffset{R: 2, G: -4, B: 1}) {
		t.Errorf("Scale = %v", got)
	}
	if got := c.Length(); math.Abs(got-math.Sqrt(5.25)) > 1e-12 {
		t.Errorf("Length = %v", got)
	}
}

func TestSaturate(t *testing.T) {
	if got := saturate(0); got != 0.5 {
		t.Errorf("saturate(0) = %v, want 0.5", got)
	}

	// Monotonic, bounded in (0, 1), symmetric around 0.5.
	prev := saturate(-1e6)
	for _, x := range []float64{-100, -1, -0.1, 0, 0.1, 1, 100, 1e6} {
		got := saturate(x)
		if got <= 0 || got >= 1 {
			t.Errorf("saturate(%v) = %v, out of (0, 1)", x, got)
		}
		if got < prev {
			t.Errorf("saturate not monotonic at %v: %v < %v", x, got, prev)
		}
		if sum := got + saturate(-x); math.Abs(sum-1) > 1e-12 {
			t.Errorf("saturate(%v) + saturate(%v) = %v, want 1", x, -x, sum)
		}
		prev = got
	}
}

func TestToRGBNeutral(t *testing.T) {
	// The zero offset maps to L=50, a=b=-0.5 regardless of cap.
	wr, wg, wb := colorful.Lab(0.5, -0.5/100, -0.5/100).Clamped().RGB255()

	for _, cap := range []float64{0.1, 1, 2, 100} {
		got := ColorOffset{}.ToRGB(cap)
		if got.R != wr || got.G != wg || got.B != wb || got.A != 255 {
			t.Errorf("ToRGB(%v) of zero = %v, want {%d %d %d 255}", cap, got, wr, wg, wb)
		}
	}
}

func TestToRGBCapping(t *testing.T) {
	// An offset longer than the cap tone-maps like its length-capped,
	// direction-preserving version.
	c := ColorOffset{R: 30, G: -10, B: 5}
	cap := 2.0
	capped := c.Scale(cap / c.Length())

	got := c.ToRGB(cap)
	want := capped.ToRGB(cap)
	if absDiff(got.R, want.R) > 1 || absDiff(got.G, want.G) > 1 || absDiff(got.B, want.B) > 1 {
		t.Errorf("ToRGB capped mismatch: %v vs %v", got, want)
	}

	// Short offsets must pass through unscaled: doubling the cap
	// changes nothing.
	small := ColorOffset{R: 0.3, G: -0.2, B: 0.1}
	if small.ToRGB(2) != small.ToRGB(4) {
		t.Errorf("cap affected an offset shorter than the cap")
	}
}

func absDiff(a, b uint8) int {
	d := int(a) - int(b)
	if d < 0 {
		return -d
	}
	return d
}
