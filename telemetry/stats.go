// Package telemetry collects run statistics and writes experiment output.
package telemetry

import "sort"

// RunStats holds aggregated statistics for one render.
type RunStats struct {
	Seed    uint64 `csv:"seed"`
	Size    int    `csv:"size"`
	Workers int    `csv:"workers"`

	// Generated collections
	Forces  int `csv:"forces"`
	Faucets int `csv:"faucets"`
	Streams int `csv:"streams"`

	// Stream outcomes
	AgedOut int `csv:"aged_out"` // terminated by decay budget
	Escaped int `csv:"escaped"`  // left the [-size, 2*size] bound

	// Work done
	Steps   int64 `csv:"steps"`          // integration steps across all streams
	Plotted int64 `csv:"plotted_pixels"` // sub-pixel accumulations

	// Per-stream step distribution
	StepsMean float64 `csv:"steps_mean"`
	StepsP10  float64 `csv:"steps_p10"`
	StepsP50  float64 `csv:"steps_p50"`
	StepsP90  float64 `csv:"steps_p90"`

	// Phase timing
	GenerateSec  float64 `csv:"generate_sec"`
	IntegrateSec float64 `csv:"integrate_sec"`
	ToneMapSec   float64 `csv:"tonemap_sec"`
	TotalSec     float64 `csv:"total_sec"`
}

// Percentile calculates the p-th percentile of a sorted slice.
// p should be in [0, 1]. Returns 0 if slice is empty.
func Percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if p <= 0 {
		return sorted[0]
	}
	if p >= 1 {
		return sorted[n-1]
	}

	// Linear interpolation
	idx := p * float64(n-1)
	lo := int(idx)
	hi := lo + 1
	if hi >= n {
		return sorted[n-1]
	}

	frac := idx - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

// Summarize calculates mean and percentiles from per-stream values.
func Summarize(values []float64) (mean, p10, p50, p90 float64) {
	n := len(values)
	if n == 0 {
		return 0, 0, 0, 0
	}

	var sum float64
	for _, v := range values {
		sum += v
	}
	mean = sum / float64(n)

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	p10 = Percentile(sorted, 0.10)
	p50 = Percentile(sorted, 0.50)
	p90 = Percentile(sorted, 0.90)

	return mean, p10, p50, p90
}
