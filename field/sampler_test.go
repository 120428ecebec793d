package field

import (
	"math"
	"sort"
	"testing"
)

func TestSamplerDeterminism(t *testing.T) {
	a := NewSampler(42)
	b := NewSampler(42)

	for i := 0; i < 100; i++ {
		if got, want := a.Uniform01(), b.Uniform01(); got != want {
			t.Fatalf("Uniform01 diverged at draw %d: %v != %v", i, got, want)
		}
		if got, want := a.StdNormal(), b.StdNormal(); got != want {
			t.Fatalf("StdNormal diverged at draw %d: %v != %v", i, got, want)
		}
		if got, want := a.IntN(40), b.IntN(40); got != want {
			t.Fatalf("IntN diverged at draw %d: %v != %v", i, got, want)
		}
	}

	// Distributions built on the same sampler share its source.
	expA := a.Exponential(0.5)
	expB := b.Exponential(0.5)
	for i := 0; i < 100; i++ {
		if got, want := expA.Rand(), expB.Rand(); got != want {
			t.Fatalf("Exponential diverged at draw %d: %v != %v", i, got, want)
		}
	}
}

func TestUnitDir(t *testing.T) {
	s := NewSampler(1)
	for i := 0; i < 100; i++ {
		d := s.UnitDir()
		if math.Abs(d.Length()-1) > 1e-12 {
			t.Fatalf("UnitDir length = %v, want 1", d.Length())
		}
	}
}

func TestUniformPos(t *testing.T) {
	s := NewSampler(1)
	for i := 0; i < 1000; i++ {
		p := s.UniformPos(100)
		if p.X < 0 || p.X >= 100 || p.Y < 0 || p.Y >= 100 {
			t.Fatalf("UniformPos out of bounds: %v", p)
		}
	}
}

func TestLogNormalReparameterization(t *testing.T) {
	// mult_spread 1 collapses the variance: every draw is the center.
	s := NewSampler(3)
	dist := s.LogNormal(10, 1)
	for i := 0; i < 50; i++ {
		if got := dist.Rand(); math.Abs(got-10) > 1e-9 {
			t.Fatalf("LogNormal(10, 1) draw = %v, want 10", got)
		}
	}

	// With spread, the sample median stays near the center.
	wide := s.LogNormal(10, 2)
	samples := make([]float64, 4001)
	for i := range samples {
		samples[i] = wide.Rand()
	}
	sort.Float64s(samples)
	median := samples[len(samples)/2]
	if math.Abs(median-10) > 1 {
		t.Errorf("LogNormal(10, 2) sample median = %v, want ~10", median)
	}
}

func TestExponentialMean(t *testing.T) {
	s := NewSampler(5)
	dist := s.Exponential(0.03)

	var sum float64
	const n = 20000
	for i := 0; i < n; i++ {
		v := dist.Rand()
		if v < 0 {
			t.Fatalf("Exponential draw negative: %v", v)
		}
		sum += v
	}
	mean := sum / n
	if math.Abs(mean-0.03) > 0.003 {
		t.Errorf("Exponential(0.03) sample mean = %v", mean)
	}
}
