package domain

import (
	"fmt"
	"math"
	"strings"
)

// Reading is the hydration state as the stats view receives it.
type Reading struct {
	IntakeML    float64
	GoalML      float64
	GlassSizeML float64
	Unit        string
	IntakeValue float64
	GoalValue   float64
	IntakeText  string
	GoalText    string
}

type Summary struct {
	IntakeML         float64 `yaml:"intake_ml"`
	GoalML           float64 `yaml:"goal_ml"`
	Ratio            float64 `yaml:"ratio"`
	Percent          float64 `yaml:"percent"`
	RemainingML      float64 `yaml:"remaining_ml"`
	GlassesRemaining int     `yaml:"glasses_remaining"`
	Unit             string  `yaml:"unit"`
	IntakeValue      float64 `yaml:"intake_value"`
	GoalValue        float64 `yaml:"goal_value"`
	IntakeText       string  `yaml:"intake_text"`
	GoalText         string  `yaml:"goal_text"`
	GoalReached      bool    `yaml:"goal_reached"`
}

// Summarize derives the view from a reading. Percent is clamped to 0..100
// while Ratio is reported as is.
func Summarize(r Reading) (Summary, error) {
	if !(r.GoalML > 0) || math.IsInf(r.GoalML, 0) {
		return Summary{}, fmt.Errorf("goal must be positive to summarize")
	}
	ratio := r.IntakeML / r.GoalML
	remaining := math.Max(r.GoalML-r.IntakeML, 0)
	glasses := 0
	if remaining > 0 && r.GlassSizeML > 0 {
		glasses = int(math.Ceil(remaining / r.GlassSizeML))
	}
	return Summary{
		IntakeML:         r.IntakeML,
		GoalML:           r.GoalML,
		Ratio:            ratio,
		Percent:          math.Min(math.Max(ratio*100, 0), 100),
		RemainingML:      remaining,
		GlassesRemaining: glasses,
		Unit:             r.Unit,
		IntakeValue:      r.IntakeValue,
		GoalValue:        r.GoalValue,
		IntakeText:       r.IntakeText,
		GoalText:         r.GoalText,
		GoalReached:      r.IntakeML >= r.GoalML,
	}, nil
}

// Line is the one-line form shown under the progress bar.
func (s Summary) Line() string {
	return fmt.Sprintf("%.1f / %.1f %s", s.IntakeValue, s.GoalValue, s.Unit)
}

// Body renders the markdown body of the stats note.
func (s Summary) Body() string {
	b := strings.Builder{}
	b.WriteString("# Hydration Stats\n\n")
	fmt.Fprintf(&b, "**%s** (%.0f%%)\n\n", s.Line(), s.Percent)
	b.WriteString("| | |\n|---|---|\n")
	fmt.Fprintf(&b, "| Intake | %s |\n", s.IntakeText)
	fmt.Fprintf(&b, "| Goal | %s |\n", s.GoalText)
	if s.GoalReached {
		b.WriteString("| Remaining | goal reached |\n")
	} else {
		fmt.Fprintf(&b, "| Remaining | %.0f mL (%d glasses) |\n", s.RemainingML, s.GlassesRemaining)
	}
	return b.String()
}
