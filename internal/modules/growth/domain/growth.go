package domain

import (
	"math"
	"time"
)

const (
	// LeafGrowthSpan is the slice of the progress range one leaf needs to go
	// from nothing to full size.
	LeafGrowthSpan = 0.5
	MaxStartOffset = 1 - LeafGrowthSpan

	GrowthDuration = 500 * time.Millisecond
)

// Easing names the timing curve a renderer applies to a transition.
type Easing string

const EaseInOut Easing = "easeInEaseOut"

// Transition is the target a renderer animates one leaf towards.
type Transition struct {
	Index    int
	Scale    float64
	Duration time.Duration
	Easing   Easing
}

// StartOffset is the progress ratio at which leaf i of n begins to grow.
func StartOffset(i, n int) float64 {
	if n <= 1 {
		return 0
	}
	return MaxStartOffset * float64(i) / float64(n-1)
}

// LeafScale is the scale of leaf i of n at the given progress ratio.
func LeafScale(ratio float64, i, n int) float64 {
	elapsed := Clamp(ratio, 0, 1) - StartOffset(i, n)
	return Clamp(elapsed/LeafGrowthSpan, 0, 1)
}

// ComputeLeafScales maps a progress ratio onto per-leaf scales in index
// order. It is total: ratios outside [0,1] clamp and n <= 0 yields nothing.
func ComputeLeafScales(ratio float64, leafCount int) []float64 {
	if leafCount <= 0 {
		return []float64{}
	}
	scales := make([]float64, leafCount)
	for i := range scales {
		scales[i] = LeafScale(ratio, i, leafCount)
	}
	return scales
}

func Transitions(ratio float64, leafCount int) []Transition {
	scales := ComputeLeafScales(ratio, leafCount)
	out := make([]Transition, len(scales))
	for i, scale := range scales {
		out[i] = Transition{Index: i, Scale: scale, Duration: GrowthDuration, Easing: EaseInOut}
	}
	return out
}

// Clamp limits v to [lo, hi]; NaN maps to lo.
func Clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
