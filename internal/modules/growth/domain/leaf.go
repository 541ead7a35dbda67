package domain

import (
	"fmt"
	"math"
)

// Anchor is a leaf's attachment point in normalized plant coordinates.
type Anchor struct {
	X float64
	Y float64
}

func (a Anchor) Validate() error {
	for _, v := range []float64{a.X, a.Y} {
		if math.IsNaN(v) || v < 0 || v > 1 {
			return fmt.Errorf("anchor (%g, %g) must lie within [0,1]x[0,1]", a.X, a.Y)
		}
	}
	return nil
}

type Stage int

const (
	Dormant Stage = iota
	Growing
	FullyGrown
)

func (s Stage) String() string {
	switch s {
	case Dormant:
		return "dormant"
	case Growing:
		return "growing"
	case FullyGrown:
		return "fully_grown"
	default:
		return "unknown"
	}
}

// StageOf classifies a scale on the growth axis.
func StageOf(scale float64) Stage {
	switch {
	case scale <= 0:
		return Dormant
	case scale >= 1:
		return FullyGrown
	default:
		return Growing
	}
}

// Leaf is one element of the plant. Index fixes its place in the stagger.
type Leaf struct {
	Index        int
	Anchor       Anchor
	CurrentScale float64
	Sway         *SwayDescriptor
}

func (l Leaf) Stage() Stage {
	return StageOf(l.CurrentScale)
}
