package field

import (
	"math"

	perlin "github.com/aquilax/go-perlin"
)

// Turbulence layers a coherent-noise directional push over the sampled
// point forces: the noise value at a position picks a direction, the
// configured strength sets the magnitude. A nil Turbulence applies
// nothing, which keeps the zero-strength default byte-identical to a
// plain force-field run.
type Turbulence struct {
	noise    *perlin.Perlin
	strength float64
	scale    float64
}

// NewTurbulence returns a seeded turbulence layer, or nil when strength
// is zero.
func NewTurbulence(strength, scale float64, octaves int, seed int64) *Turbulence {
	if strength == 0 {
		return nil
	}
	return &Turbulence{
		noise:    perlin.NewPerlin(2, 2, int32(octaves), seed),
		strength: strength,
		scale:    scale,
	}
}

// Apply returns the turbulence velocity delta at target.
func (t *Turbulence) Apply(target Vec) Vec {
	if t == nil {
		return Vec{}
	}
	angle := 2 * math.Pi * t.noise.Noise2D(target.X*t.scale, target.Y*t.scale)
	return Vec{X: math.Cos(angle), Y: math.Sin(angle)}.Scale(t.strength)
}
