package domain

import (
	"fmt"
	"math"

	apperrors "plant/internal/platform/errors"
)

const (
	SchemaVersion = 1

	DefaultGoalML      = 2000.0
	DefaultGlassSizeML = 250.0

	// Headline goal rounding steps, per unit.
	HeadlineOunceStep = 8.0
	HeadlineLiterStep = 0.25
)

// State is the whole hydration record. Mutators return a new value so callers
// can persist it as a single replacement.
type State struct {
	IntakeML    float64
	GoalML      float64
	Unit        Unit
	GlassSizeML float64
}

func DefaultState() State {
	return State{
		IntakeML:    0,
		GoalML:      DefaultGoalML,
		Unit:        UnitOunces,
		GlassSizeML: DefaultGlassSizeML,
	}
}

func (s State) Validate() error {
	if !positiveFinite(s.GoalML) {
		return fmt.Errorf("%w: %v", apperrors.ErrInvalidGoal, s.GoalML)
	}
	if !positiveFinite(s.GlassSizeML) {
		return fmt.Errorf("%w: %v", apperrors.ErrInvalidGlassSize, s.GlassSizeML)
	}
	if s.IntakeML < 0 || math.IsNaN(s.IntakeML) || math.IsInf(s.IntakeML, 0) {
		return fmt.Errorf("%w: intake %v", apperrors.ErrInvalidInput, s.IntakeML)
	}
	return s.Unit.Validate()
}

// LogGlass adds one glass while intake is below the goal. At or above the
// goal it is a no-op; intake is never capped to the goal.
func (s State) LogGlass() (State, bool) {
	if s.IntakeML < s.GoalML {
		s.IntakeML += s.GlassSizeML
		return s, true
	}
	return s, false
}

func (s State) ResetIntake() State {
	s.IntakeML = 0
	return s
}

func (s State) WithGoal(goalML float64) (State, error) {
	if !positiveFinite(goalML) {
		return s, fmt.Errorf("%w: %v", apperrors.ErrInvalidGoal, goalML)
	}
	s.GoalML = goalML
	return s, nil
}

func (s State) WithGlassSize(sizeML float64) (State, error) {
	if !positiveFinite(sizeML) {
		return s, fmt.Errorf("%w: %v", apperrors.ErrInvalidGlassSize, sizeML)
	}
	s.GlassSizeML = sizeML
	return s, nil
}

func (s State) WithUnit(u Unit) (State, error) {
	if err := u.Validate(); err != nil {
		return s, err
	}
	s.Unit = u
	return s, nil
}

// ProgressRatio is intake/goal, not truncated at 1.
func (s State) ProgressRatio() float64 {
	if s.GoalML <= 0 {
		return 0
	}
	return s.IntakeML / s.GoalML
}

func (s State) Format(amountML float64) string {
	return s.Unit.Format(amountML)
}

func (s State) RoundForDisplay(amountML, ounceStep, literStep float64) float64 {
	return s.Unit.RoundForDisplay(amountML, ounceStep, literStep)
}

// Headline renders "<intake> / <rounded goal> <unit>" as shown under the plant.
func (s State) Headline() string {
	goal := s.RoundForDisplay(s.GoalML, HeadlineOunceStep, HeadlineLiterStep)
	return fmt.Sprintf("%s / %.1f %s", s.Format(s.IntakeML), goal, string(s.Unit))
}

func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}
