package field

// Faucet holds the distribution parameters a stream's initial color,
// position and velocity are drawn from: centers plus per-channel or
// per-axis spreads. Parameters, not samples; immutable once generated.
type Faucet struct {
	ColorCenter     ColorOffset
	ColorSpreads    ColorOffset
	Position        Vec
	PositionSpreads Vec
	VelocitySpreads Vec
}

// Stream is a live simulation particle. Color and decay rate are fixed at
// sampling time; position and velocity mutate every integration step.
// Streams are discarded once terminated.
type Stream struct {
	Color     ColorOffset
	DecayRate float64
	Position  Vec
	Velocity  Vec
}
