package domain_test

import (
	"errors"
	"math"
	"testing"

	"plant/internal/modules/hydration/domain"
	apperrors "plant/internal/platform/errors"
)

func TestFormatMatchesDisplayContract(t *testing.T) {
	t.Parallel()
	cases := []struct {
		unit domain.Unit
		ml   float64
		want string
	}{
		{domain.UnitOunces, 2000, "67.6 oz"},
		{domain.UnitLiters, 2000, "2.00 L"},
		{domain.UnitOunces, 0, "0.0 oz"},
		{domain.UnitLiters, 250, "0.25 L"},
		{domain.UnitOunces, 250, "8.5 oz"},
		{domain.UnitLiters, 1234, "1.23 L"},
	}
	for _, tc := range cases {
		if got := tc.unit.Format(tc.ml); got != tc.want {
			t.Fatalf("%s.Format(%v) = %q, want %q", tc.unit, tc.ml, got, tc.want)
		}
	}
}

func TestRoundForDisplay(t *testing.T) {
	t.Parallel()
	if got := domain.UnitOunces.RoundForDisplay(2000, 8, 0.25); got != 64 {
		t.Fatalf("ounces: expected 64, got %v", got)
	}
	if got := domain.UnitLiters.RoundForDisplay(2000, 8, 0.25); got != 2 {
		t.Fatalf("liters: expected 2, got %v", got)
	}
	if got := domain.UnitLiters.RoundForDisplay(2130, 8, 0.25); got != 2.25 {
		t.Fatalf("liters: expected 2.25, got %v", got)
	}
	// 1.125 L sits exactly between 1.0 and 1.25 and rounds away from zero.
	if got := domain.UnitLiters.RoundForDisplay(1125, 8, 0.25); got != 1.25 {
		t.Fatalf("half step should round up, got %v", got)
	}
	if got := domain.UnitOunces.RoundForDisplay(2000, 0, 0.25); math.Abs(got-2000/domain.MLPerOunce) > 1e-12 {
		t.Fatalf("zero step should return converted value, got %v", got)
	}
}

func TestParseUnit(t *testing.T) {
	t.Parallel()
	for raw, want := range map[string]domain.Unit{"oz": domain.UnitOunces, "Ounces": domain.UnitOunces, "L": domain.UnitLiters, "litres": domain.UnitLiters} {
		got, err := domain.ParseUnit(raw)
		if err != nil || got != want {
			t.Fatalf("ParseUnit(%q) = %q, %v", raw, got, err)
		}
	}
	if _, err := domain.ParseUnit("cups"); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
	if domain.UnitOunces.Toggle() != domain.UnitLiters || domain.UnitLiters.Toggle() != domain.UnitOunces {
		t.Fatalf("toggle should flip units")
	}
}
