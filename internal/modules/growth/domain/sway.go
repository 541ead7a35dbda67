package domain

import (
	"math"
	"strconv"
	"time"
)

const (
	MinSwayAngle    = 0.005
	MaxSwayAngle    = 0.015
	MinSwayDuration = 800 * time.Millisecond
	MaxSwayDuration = 1600 * time.Millisecond
)

// Repeat counts oscillation segments; RepeatForever never stops.
type Repeat int

const RepeatForever Repeat = -1

func (r Repeat) String() string {
	if r == RepeatForever {
		return "forever"
	}
	return strconv.Itoa(int(r))
}

// SwayDescriptor describes a perpetual rotation: 0 to +Angle, then back and
// forth between -Angle and +Angle, each segment taking Duration and eased.
// Generation identifies the StartSway call that produced it.
type SwayDescriptor struct {
	Index      int
	Angle      float64
	Duration   time.Duration
	Easing     Easing
	Repeat     Repeat
	Seed       uint64
	Generation uint64
}

// NewSwayDescriptor builds a descriptor from two uniform draws in [0,1).
func NewSwayDescriptor(index int, angleDraw, durationDraw float64, seed, generation uint64) SwayDescriptor {
	angleDraw = Clamp(angleDraw, 0, 1)
	durationDraw = Clamp(durationDraw, 0, 1)
	span := float64(MaxSwayDuration - MinSwayDuration)
	return SwayDescriptor{
		Index:      index,
		Angle:      MinSwayAngle + angleDraw*(MaxSwayAngle-MinSwayAngle),
		Duration:   MinSwayDuration + time.Duration(durationDraw*span),
		Easing:     EaseInOut,
		Repeat:     RepeatForever,
		Seed:       seed,
		Generation: generation,
	}
}

// AngleAt samples the rotation in radians at elapsed time t since the sway
// started.
func (d SwayDescriptor) AngleAt(t time.Duration) float64 {
	if t <= 0 || d.Duration <= 0 {
		return 0
	}
	segment := int64(t / d.Duration)
	if d.Repeat != RepeatForever && segment >= int64(d.Repeat) {
		return d.segmentEnd(int64(d.Repeat) - 1)
	}
	frac := float64(t%d.Duration) / float64(d.Duration)
	from := d.segmentStart(segment)
	to := d.segmentEnd(segment)
	return from + (to-from)*EaseInOutProgress(frac)
}

func (d SwayDescriptor) segmentStart(segment int64) float64 {
	if segment <= 0 {
		return 0
	}
	return d.segmentEnd(segment - 1)
}

func (d SwayDescriptor) segmentEnd(segment int64) float64 {
	if segment < 0 {
		return 0
	}
	if segment%2 == 0 {
		return d.Angle
	}
	return -d.Angle
}

// EaseInOutProgress maps linear progress in [0,1] onto a sinusoidal
// ease-in/ease-out curve.
func EaseInOutProgress(p float64) float64 {
	p = Clamp(p, 0, 1)
	return (1 - math.Cos(math.Pi*p)) / 2
}
