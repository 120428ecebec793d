package render

import (
	"math"

	"github.com/pthm-cable/streamfield/field"
)

// Outcome says why a stream terminated.
type Outcome int

const (
	// AgedOut means the stream exhausted its decay budget.
	AgedOut Outcome = iota
	// Escaped means the stream left the [-size, 2*size] bound.
	Escaped
)

// StreamResult summarizes one stream's run.
type StreamResult struct {
	Outcome Outcome
	Steps   int // full integration steps taken
	Plotted int // in-bounds sub-pixels accumulated
}

// Integrator advances streams through the force field and rasterizes
// their decaying trails. It holds only read-only state and may be shared
// across workers; each call writes to the grid it is given.
type Integrator struct {
	forces      []field.Force
	turbulence  *field.Turbulence
	size        float64
	maxDecay    float64
	velocityCap float64
}

// NewIntegrator builds an integrator over a static force field.
func NewIntegrator(forces []field.Force, turbulence *field.Turbulence, size, maxDecay, velocityCap float64) *Integrator {
	return &Integrator{
		forces:      forces,
		turbulence:  turbulence,
		size:        size,
		maxDecay:    maxDecay,
		velocityCap: velocityCap,
	}
}

// inBounds reports whether the position is still worth simulating. The
// bound is looser than the canvas so partially off-screen trails keep
// contributing before they are culled.
func (it *Integrator) inBounds(p field.Vec) bool {
	return p.X >= -it.size && p.X <= 2*it.size &&
		p.Y >= -it.size && p.Y <= 2*it.size
}

// Run advances one stream to termination, accumulating its trail into g.
//
// Age counts pixels traveled. Each step walks the velocity segment in
// unit increments along the dominant axis, plotting
// color * exp(-decayRate*age) into every in-bounds cell, then advances
// the position by one full velocity, applies the force field to the
// velocity once, and caps the result. Age grows by at least 1 per step,
// so the decay budget maxDecay/decayRate is always reached eventually.
func (it *Integrator) Run(stream field.Stream, g *Grid) StreamResult {
	maxAge := uint64(it.maxDecay / stream.DecayRate)

	var res StreamResult
	var age uint64
	for age < maxAge && it.inBounds(stream.Position) {
		oldAge := age

		// Rasterize the segment from position along velocity.
		norm := math.Max(math.Abs(stream.Velocity.X), math.Abs(stream.Velocity.Y))
		baseOffset := stream.Velocity.Scale(1 / norm)
		numPixels := int(norm)
		for i := 1; i <= numPixels; i++ {
			current := stream.Position.Add(baseOffset.Scale(float64(i)))
			if x, y, ok := current.ToPixel(it.size); ok {
				intensity := math.Exp(-stream.DecayRate * float64(age))
				g.Accumulate(x, y, stream.Color.Scale(intensity))
				res.Plotted++
			}
			age++
		}

		stream.Position = stream.Position.Add(stream.Velocity)

		// Near-stationary streams still age, guaranteeing termination.
		if age == oldAge {
			age++
		}

		// Forces are cumulative accelerations applied once per step.
		for i := range it.forces {
			stream.Velocity = stream.Velocity.Add(it.forces[i].Apply(stream.Position))
		}
		stream.Velocity = stream.Velocity.Add(it.turbulence.Apply(stream.Position))
		stream.Velocity = capVelocity(stream.Velocity, it.velocityCap)

		res.Steps++
	}

	if age >= maxAge {
		res.Outcome = AgedOut
	} else {
		res.Outcome = Escaped
	}
	return res
}

// capVelocity rescales v down to cap, preserving direction. Prevents
// runaway acceleration from narrow forces near a stream's position.
func capVelocity(v field.Vec, cap float64) field.Vec {
	if length := v.Length(); length > cap {
		return v.Scale(cap / length)
	}
	return v
}
