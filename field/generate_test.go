package field

import (
	"math"
	"testing"

	"github.com/pthm-cable/streamfield/config"
)

func genConfig() *config.Config {
	cfg := &config.Config{
		Seed:  7,
		Image: config.ImageConfig{Size: 100},
		Forces: config.ForcesConfig{
			Count:    10,
			Strength: config.LogNormalShape{Center: 10, MultSpread: 2},
			Spread:   config.LogNormalShape{Center: 20, MultSpread: 2},
		},
		Faucets: config.FaucetsConfig{
			Count:          4,
			ColorCenter:    config.NormalShape{Mean: 0, Std: 0.03},
			ColorSpread:    config.ExponentialShape{Mean: 0.03},
			PositionSpread: config.ExponentialShape{Mean: 8},
			VelocitySpread: config.ExponentialShape{Mean: 1},
		},
		Streams: config.StreamsConfig{Count: 50},
		Render:  config.RenderConfig{MaxDecayFactor: 10, VelocityCap: 40, ColorCap: 2, Workers: 1},
	}
	cfg.Derived.Size = 100
	cfg.Derived.DecayMean = 1.0 / 100
	return cfg
}

func TestGenerateDeterminism(t *testing.T) {
	cfg := genConfig()

	sa := NewSampler(cfg.Seed)
	forcesA := GenerateForces(sa, cfg)
	faucetsA := GenerateFaucets(sa, cfg)
	streamsA := GenerateStreams(sa, cfg, faucetsA)

	sb := NewSampler(cfg.Seed)
	forcesB := GenerateForces(sb, cfg)
	faucetsB := GenerateFaucets(sb, cfg)
	streamsB := GenerateStreams(sb, cfg, faucetsB)

	for i := range forcesA {
		if forcesA[i] != forcesB[i] {
			t.Fatalf("force %d diverged: %+v != %+v", i, forcesA[i], forcesB[i])
		}
	}
	for i := range faucetsA {
		if faucetsA[i] != faucetsB[i] {
			t.Fatalf("faucet %d diverged", i)
		}
	}
	for i := range streamsA {
		if streamsA[i] != streamsB[i] {
			t.Fatalf("stream %d diverged", i)
		}
	}
}

func TestGenerateCounts(t *testing.T) {
	cfg := genConfig()
	s := NewSampler(cfg.Seed)

	forces := GenerateForces(s, cfg)
	faucets := GenerateFaucets(s, cfg)
	streams := GenerateStreams(s, cfg, faucets)

	if len(forces) != cfg.Forces.Count {
		t.Errorf("got %d forces, want %d", len(forces), cfg.Forces.Count)
	}
	if len(faucets) != cfg.Faucets.Count {
		t.Errorf("got %d faucets, want %d", len(faucets), cfg.Faucets.Count)
	}
	if len(streams) != cfg.Streams.Count {
		t.Errorf("got %d streams, want %d", len(streams), cfg.Streams.Count)
	}

	for i, f := range forces {
		if f.Strength <= 0 || f.Spread <= 0 {
			t.Errorf("force %d has non-positive shape: %+v", i, f)
		}
		if f.Kind == Linear && math.Abs(f.Dir.Length()-1) > 1e-12 {
			t.Errorf("force %d linear direction not unit: %v", i, f.Dir)
		}
	}
	for i, st := range streams {
		if st.DecayRate <= 0 {
			t.Errorf("stream %d decay rate not positive: %v", i, st.DecayRate)
		}
	}
}

func TestStreamsFromZeroSpreadFaucet(t *testing.T) {
	// A single faucet with zero spreads pins every stream to its center
	// with zero velocity.
	faucet := Faucet{
		ColorCenter: ColorOffset{R: 0.1, G: -0.2, B: 0.3},
		Position:    Vec{X: 5, Y: 5},
	}
	cfg := genConfig()
	cfg.Faucets.Count = 1
	cfg.Streams.Count = 20

	s := NewSampler(9)
	streams := GenerateStreams(s, cfg, []Faucet{faucet})

	for i, st := range streams {
		if st.Color != faucet.ColorCenter {
			t.Errorf("stream %d color = %v, want %v", i, st.Color, faucet.ColorCenter)
		}
		if st.Position != faucet.Position {
			t.Errorf("stream %d position = %v, want %v", i, st.Position, faucet.Position)
		}
		if st.Velocity != (Vec{}) {
			t.Errorf("stream %d velocity = %v, want zero", i, st.Velocity)
		}
	}
}
