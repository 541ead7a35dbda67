package domain

import (
	"fmt"
	"math"
	"strings"

	apperrors "plant/internal/platform/errors"
)

const (
	MLPerOunce = 29.5735
	MLPerLiter = 1000.0
)

// Unit is the display preference. It never changes stored volumes, which are
// always milliliters.
type Unit string

const (
	UnitOunces Unit = "oz"
	UnitLiters Unit = "L"
)

func ParseUnit(raw string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "oz", "ounce", "ounces":
		return UnitOunces, nil
	case "l", "liter", "liters", "litre", "litres":
		return UnitLiters, nil
	default:
		return "", fmt.Errorf("%w: unknown unit %q", apperrors.ErrInvalidInput, raw)
	}
}

func (u Unit) Validate() error {
	switch u {
	case UnitOunces, UnitLiters:
		return nil
	default:
		return fmt.Errorf("%w: unknown unit %q", apperrors.ErrInvalidInput, string(u))
	}
}

// Value converts milliliters into the unit.
func (u Unit) Value(amountML float64) float64 {
	if u == UnitLiters {
		return amountML / MLPerLiter
	}
	return amountML / MLPerOunce
}

// Format renders an amount with one decimal for ounces and two for liters.
func (u Unit) Format(amountML float64) string {
	if u == UnitLiters {
		return fmt.Sprintf("%.2f L", u.Value(amountML))
	}
	return fmt.Sprintf("%.1f oz", u.Value(amountML))
}

// RoundForDisplay converts amountML and rounds it to the nearest multiple of
// the unit's step, halves away from zero. A step that is not a positive
// finite number leaves the converted value unrounded.
func (u Unit) RoundForDisplay(amountML, ounceStep, literStep float64) float64 {
	step := ounceStep
	if u == UnitLiters {
		step = literStep
	}
	value := u.Value(amountML)
	if !(step > 0) || math.IsInf(step, 0) {
		return value
	}
	return math.Round(value/step) * step
}

func (u Unit) Toggle() Unit {
	if u == UnitLiters {
		return UnitOunces
	}
	return UnitLiters
}
