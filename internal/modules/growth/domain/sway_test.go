package domain_test

import (
	"math"
	"testing"
	"time"

	"plant/internal/modules/growth/domain"
)

func TestNewSwayDescriptorRanges(t *testing.T) {
	t.Parallel()
	lo := domain.NewSwayDescriptor(0, 0, 0, 1, 1)
	if lo.Angle != domain.MinSwayAngle || lo.Duration != domain.MinSwayDuration {
		t.Fatalf("zero draws should hit the minimums: %+v", lo)
	}
	hi := domain.NewSwayDescriptor(0, 0.999999, 0.999999, 1, 1)
	if hi.Angle > domain.MaxSwayAngle || hi.Duration > domain.MaxSwayDuration {
		t.Fatalf("draws must stay inside the ranges: %+v", hi)
	}
	if hi.Repeat != domain.RepeatForever || hi.Easing != domain.EaseInOut {
		t.Fatalf("sway must repeat forever with ease in/out: %+v", hi)
	}
}

func TestAngleAtOscillates(t *testing.T) {
	t.Parallel()
	d := domain.SwayDescriptor{Angle: 0.01, Duration: time.Second, Repeat: domain.RepeatForever}
	checks := []struct {
		at   time.Duration
		want float64
	}{
		{0, 0},
		{500 * time.Millisecond, 0.005},
		{time.Second, 0.01},
		{1500 * time.Millisecond, 0},
		{2 * time.Second, -0.01},
		{2500 * time.Millisecond, 0},
		{3 * time.Second, 0.01},
	}
	for _, c := range checks {
		if got := d.AngleAt(c.at); math.Abs(got-c.want) > 1e-12 {
			t.Fatalf("t=%s: expected %v, got %v", c.at, c.want, got)
		}
	}
	for ms := 0; ms < 10000; ms += 37 {
		if a := d.AngleAt(time.Duration(ms) * time.Millisecond); math.Abs(a) > d.Angle+1e-12 {
			t.Fatalf("angle %v exceeds amplitude at %dms", a, ms)
		}
	}
}

func TestAngleAtFiniteRepeatHolds(t *testing.T) {
	t.Parallel()
	d := domain.SwayDescriptor{Angle: 0.01, Duration: time.Second, Repeat: 2}
	if got := d.AngleAt(10 * time.Second); got != -0.01 {
		t.Fatalf("expected the last segment to hold at -angle, got %v", got)
	}
}

func TestEaseInOutProgress(t *testing.T) {
	t.Parallel()
	if domain.EaseInOutProgress(0) != 0 || math.Abs(domain.EaseInOutProgress(1)-1) > 1e-12 {
		t.Fatalf("easing must map endpoints onto themselves")
	}
	if math.Abs(domain.EaseInOutProgress(0.5)-0.5) > 1e-12 {
		t.Fatalf("easing must be symmetric about the midpoint")
	}
	if domain.EaseInOutProgress(0.1) >= 0.1 {
		t.Fatalf("easing should start slower than linear")
	}
}
