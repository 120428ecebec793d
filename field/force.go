package field

import "math"

// ForceKind enumerates the closed set of force behaviors.
type ForceKind int

const (
	// Inward pulls streams toward the force center.
	Inward ForceKind = iota
	// Outward pushes streams away from the force center.
	Outward
	// Linear pushes streams along a fixed direction regardless of where
	// they sit relative to the center.
	Linear
)

// epsDistance guards the degenerate case of a stream sitting exactly on
// an Inward/Outward center; such a force contributes nothing there.
const epsDistance = 1e-9

// Force is a static point contributor to the velocity field. Immutable
// after generation and shared read-only by every stream at every step.
type Force struct {
	Kind     ForceKind
	Dir      Vec // unit direction, Linear kind only
	Strength float64
	Spread   float64
	Position Vec
}

// Apply returns the velocity delta this force imparts at target. The
// magnitude follows a Gaussian profile centered on the force and is
// scaled inversely by spread, so narrower forces push proportionally
// harder at their center.
func (f *Force) Apply(target Vec) Vec {
	offset := target.Add(f.Position.Scale(-1))
	distance := offset.Length()
	numDevs := distance / f.Spread
	push := f.Strength / f.Spread * math.Exp(-numDevs*numDevs/2)

	var dir Vec
	switch f.Kind {
	case Inward:
		if distance < epsDistance {
			return Vec{}
		}
		dir = offset.Scale(-1 / distance)
	case Outward:
		if distance < epsDistance {
			return Vec{}
		}
		dir = offset.Scale(1 / distance)
	case Linear:
		dir = f.Dir
	}
	return dir.Scale(push)
}
