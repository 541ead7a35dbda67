package domain_test

import (
	"math"
	"testing"

	"plant/internal/modules/growth/domain"
)

func TestComputeLeafScalesEndpoints(t *testing.T) {
	t.Parallel()
	for n := 2; n <= 12; n++ {
		for _, s := range domain.ComputeLeafScales(0, n) {
			if s != 0 {
				t.Fatalf("n=%d ratio 0: expected all zero, got %v", n, domain.ComputeLeafScales(0, n))
			}
		}
		for _, s := range domain.ComputeLeafScales(1, n) {
			if s != 1 {
				t.Fatalf("n=%d ratio 1: expected all one, got %v", n, domain.ComputeLeafScales(1, n))
			}
		}
	}
}

func TestComputeLeafScalesStagger(t *testing.T) {
	t.Parallel()
	got := domain.ComputeLeafScales(0.5, 3)
	want := []float64{1, 0.5, 0}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Fatalf("leaf %d: expected %v, got %v", i, want[i], got[i])
		}
	}
	if domain.StartOffset(0, 5) != 0 || domain.StartOffset(4, 5) != domain.MaxStartOffset {
		t.Fatalf("first leaf must start at 0 and last at the max offset")
	}
}

func TestComputeLeafScalesMonotonicAndOrdered(t *testing.T) {
	t.Parallel()
	const n = 7
	prev := domain.ComputeLeafScales(0, n)
	for step := 1; step <= 200; step++ {
		ratio := float64(step) / 200
		cur := domain.ComputeLeafScales(ratio, n)
		for i := 0; i < n; i++ {
			if cur[i] < prev[i] {
				t.Fatalf("leaf %d shrank between ratios: %v -> %v", i, prev[i], cur[i])
			}
			if cur[i] < 0 || cur[i] > 1 {
				t.Fatalf("leaf %d scale out of range: %v", i, cur[i])
			}
			if i+1 < n && cur[i] < cur[i+1] {
				t.Fatalf("ratio %v: leaf %d (%v) behind leaf %d (%v)", ratio, i, cur[i], i+1, cur[i+1])
			}
		}
		prev = cur
	}
}

func TestComputeLeafScalesClampsRatio(t *testing.T) {
	t.Parallel()
	if !equal(domain.ComputeLeafScales(1.5, 4), domain.ComputeLeafScales(1, 4)) {
		t.Fatalf("ratio above 1 should match 1")
	}
	if !equal(domain.ComputeLeafScales(-0.2, 4), domain.ComputeLeafScales(0, 4)) {
		t.Fatalf("ratio below 0 should match 0")
	}
	if !equal(domain.ComputeLeafScales(math.NaN(), 4), domain.ComputeLeafScales(0, 4)) {
		t.Fatalf("NaN ratio should match 0")
	}
}

func TestComputeLeafScalesDegenerateCounts(t *testing.T) {
	t.Parallel()
	if got := domain.ComputeLeafScales(0.7, 0); len(got) != 0 {
		t.Fatalf("expected empty result for zero leaves, got %v", got)
	}
	if got := domain.ComputeLeafScales(0.7, -3); len(got) != 0 {
		t.Fatalf("expected empty result for negative count, got %v", got)
	}
	single := domain.ComputeLeafScales(0.25, 1)
	if len(single) != 1 || single[0] != 0.5 {
		t.Fatalf("single leaf should start at 0, got %v", single)
	}
}

func TestComputeLeafScalesIdempotent(t *testing.T) {
	t.Parallel()
	if !equal(domain.ComputeLeafScales(0.37, 9), domain.ComputeLeafScales(0.37, 9)) {
		t.Fatalf("same input must give same output")
	}
}

func TestTransitionsCarryDurationAndEasing(t *testing.T) {
	t.Parallel()
	transitions := domain.Transitions(0.6, 3)
	if len(transitions) != 3 {
		t.Fatalf("expected 3 transitions, got %d", len(transitions))
	}
	for i, tr := range transitions {
		if tr.Index != i || tr.Duration != domain.GrowthDuration || tr.Easing != domain.EaseInOut {
			t.Fatalf("unexpected transition %+v", tr)
		}
	}
}

func TestStageOf(t *testing.T) {
	t.Parallel()
	cases := map[float64]domain.Stage{0: domain.Dormant, 0.01: domain.Growing, 0.99: domain.Growing, 1: domain.FullyGrown}
	for scale, want := range cases {
		if got := domain.StageOf(scale); got != want {
			t.Fatalf("scale %v: expected %s, got %s", scale, want, got)
		}
	}
}

func TestAnchorValidate(t *testing.T) {
	t.Parallel()
	if err := (domain.Anchor{X: 0, Y: 1}).Validate(); err != nil {
		t.Fatalf("corner anchor should be valid: %v", err)
	}
	for _, a := range []domain.Anchor{{X: -0.1, Y: 0.5}, {X: 0.5, Y: 1.2}, {X: math.NaN(), Y: 0}} {
		if err := a.Validate(); err == nil {
			t.Fatalf("expected %+v to be rejected", a)
		}
	}
}

func equal(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
