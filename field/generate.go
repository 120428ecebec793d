package field

import "github.com/pthm-cable/streamfield/config"

// The generation order below is part of the determinism contract: every
// draw happens in a fixed sequence on the sampler's single source.
// Reordering any draw changes the image for a given seed.

// GenerateForces samples the static force field: per force, a uniform
// position, a kind (Inward/Outward/Linear with equal thirds, Linear with
// a sampled direction), then log-normal strength and spread.
func GenerateForces(s *Sampler, cfg *config.Config) []Force {
	strengthDist := s.LogNormal(cfg.Forces.Strength.Center, cfg.Forces.Strength.MultSpread)
	spreadDist := s.LogNormal(cfg.Forces.Spread.Center, cfg.Forces.Spread.MultSpread)

	forces := make([]Force, cfg.Forces.Count)
	for i := range forces {
		position := s.UniformPos(cfg.Derived.Size)
		kind, dir := sampleKind(s)
		forces[i] = Force{
			Kind:     kind,
			Dir:      dir,
			Strength: strengthDist.Rand(),
			Spread:   spreadDist.Rand(),
			Position: position,
		}
	}
	return forces
}

func sampleKind(s *Sampler) (ForceKind, Vec) {
	switch draw := s.Uniform01(); {
	case draw < 1.0/3.0:
		return Inward, Vec{}
	case draw < 2.0/3.0:
		return Outward, Vec{}
	default:
		return Linear, s.UnitDir()
	}
}

// GenerateFaucets samples the faucet collection: per faucet, a normal
// color center and exponential color spread per channel, a uniform
// position, then exponential position and velocity spreads per axis.
func GenerateFaucets(s *Sampler, cfg *config.Config) []Faucet {
	colorCenterDist := s.Normal(cfg.Faucets.ColorCenter.Mean, cfg.Faucets.ColorCenter.Std)
	colorSpreadDist := s.Exponential(cfg.Faucets.ColorSpread.Mean)
	positionSpreadDist := s.Exponential(cfg.Faucets.PositionSpread.Mean)
	velocitySpreadDist := s.Exponential(cfg.Faucets.VelocitySpread.Mean)

	faucets := make([]Faucet, cfg.Faucets.Count)
	for i := range faucets {
		colorCenter := ColorOffset{
			R: colorCenterDist.Rand(),
			G: colorCenterDist.Rand(),
			B: colorCenterDist.Rand(),
		}
		colorSpreads := ColorOffset{
			R: colorSpreadDist.Rand(),
			G: colorSpreadDist.Rand(),
			B: colorSpreadDist.Rand(),
		}
		position := s.UniformPos(cfg.Derived.Size)
		positionSpreads := Vec{
			X: positionSpreadDist.Rand(),
			Y: positionSpreadDist.Rand(),
		}
		velocitySpreads := Vec{
			X: velocitySpreadDist.Rand(),
			Y: velocitySpreadDist.Rand(),
		}
		faucets[i] = Faucet{
			ColorCenter:     colorCenter,
			ColorSpreads:    colorSpreads,
			Position:        position,
			PositionSpreads: positionSpreads,
			VelocitySpreads: velocitySpreads,
		}
	}
	return faucets
}

// GenerateStreams samples every stream: a uniformly chosen faucet, then
// color and position as center + spread * standard normal, a zero-mean
// velocity (faucets impart spread, not bias), and an independent decay
// rate from the global exponential distribution.
func GenerateStreams(s *Sampler, cfg *config.Config, faucets []Faucet) []Stream {
	decayDist := s.Exponential(cfg.Derived.DecayMean)

	streams := make([]Stream, cfg.Streams.Count)
	for i := range streams {
		faucet := &faucets[s.IntN(len(faucets))]
		color := ColorOffset{
			R: faucet.ColorCenter.R + faucet.ColorSpreads.R*s.StdNormal(),
			G: faucet.ColorCenter.G + faucet.ColorSpreads.G*s.StdNormal(),
			B: faucet.ColorCenter.B + faucet.ColorSpreads.B*s.StdNormal(),
		}
		position := Vec{
			X: faucet.Position.X + faucet.PositionSpreads.X*s.StdNormal(),
			Y: faucet.Position.Y + faucet.PositionSpreads.Y*s.StdNormal(),
		}
		velocity := Vec{
			X: faucet.VelocitySpreads.X * s.StdNormal(),
			Y: faucet.VelocitySpreads.Y * s.StdNormal(),
		}
		streams[i] = Stream{
			Color:     color,
			DecayRate: decayDist.Rand(),
			Position:  position,
			Velocity:  velocity,
		}
	}
	return streams
}
