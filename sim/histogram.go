package sim

import (
	"fmt"
	"math"
)

const (
	// DefaultBins is the bin count used for the NPV distribution plot.
	DefaultBins = 50
	// MaxBins bounds the bin count a caller may request.
	MaxBins = 1000
)

// ErrInvalidBins is returned for a bin count outside [1, MaxBins].
var ErrInvalidBins = fmt.Errorf("histogram bins must be between 1 and %d", MaxBins)

// Histogram is an equal-width, density-normalized binning of samples.
// Bin i covers [Edges[i], Edges[i+1]); the last bin is closed on the right.
type Histogram struct {
	Edges   []float64 `json:"edges"`
	Counts  []int     `json:"counts"`
	Density []float64 `json:"density"`
	Dropped int       `json:"dropped"` // NaN and Inf samples left out of binning
}

// NewHistogram bins the finite values of samples into bins equal-width bins
// spanning [min, max]. Density integrates to one over the binned range.
// When every finite sample is equal the range is widened to [v-0.5, v+0.5].
func NewHistogram(samples []float64, bins int) (*Histogram, error) {
	if bins < 1 || bins > MaxBins {
		return nil, ErrInvalidBins
	}

	lo, hi := math.Inf(1), math.Inf(-1)
	dropped := 0
	for _, v := range samples {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			dropped++
			continue
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	finite := len(samples) - dropped
	if finite == 0 {
		return nil, ErrEmptyInput
	}
	if lo == hi {
		lo, hi = lo-0.5, hi+0.5
	}

	h := &Histogram{
		Edges:   make([]float64, bins+1),
		Counts:  make([]int, bins),
		Density: make([]float64, bins),
		Dropped: dropped,
	}
	span := hi - lo
	for i := range h.Edges {
		h.Edges[i] = lo + span*float64(i)/float64(bins)
	}
	h.Edges[bins] = hi

	for _, v := range samples {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		idx := int((v - lo) / span * float64(bins))
		if idx >= bins {
			idx = bins - 1
		}
		if idx < 0 {
			idx = 0
		}
		h.Counts[idx]++
	}

	width := span / float64(bins)
	for i, c := range h.Counts {
		h.Density[i] = float64(c) / (float64(finite) * width)
	}
	return h, nil
}

// BinWidth returns the common width of every bin.
func (h *Histogram) BinWidth() float64 {
	return (h.Edges[len(h.Edges)-1] - h.Edges[0]) / float64(len(h.Counts))
}
