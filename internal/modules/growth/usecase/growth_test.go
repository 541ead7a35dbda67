package usecase_test

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"plant/internal/modules/growth/domain"
	"plant/internal/modules/growth/dto"
	"plant/internal/modules/growth/service"
	"plant/internal/modules/growth/usecase"
	apperrors "plant/internal/platform/errors"
	"plant/internal/platform/logging"
)

type staticAnchors struct {
	anchors []domain.Anchor
	err     error
}

func (s staticAnchors) Load(context.Context) ([]domain.Anchor, error) {
	return s.anchors, s.err
}

// stepRandom cycles through fixed draws so tests can predict parameters.
type stepRandom struct {
	draws []float64
	next  int
	seed  uint64
}

func (r *stepRandom) Float64() float64 {
	v := r.draws[r.next%len(r.draws)]
	r.next++
	return v
}

func (r *stepRandom) Uint64() uint64 {
	r.seed++
	return r.seed
}

type swayRecorder struct {
	restarts int
	leaves   int
}

func (r *swayRecorder) IncGlassLogged()          {}
func (r *swayRecorder) IncGlassBlocked()         {}
func (r *swayRecorder) IncReset()                {}
func (r *swayRecorder) IncGoalUpdate()           {}
func (r *swayRecorder) SetProgressRatio(float64) {}
func (r *swayRecorder) IncPublish(string, bool)  {}
func (r *swayRecorder) IncSwayRestart(leaves int) {
	r.restarts++
	r.leaves = leaves
}

func threeLeaves() []domain.Anchor {
	return []domain.Anchor{{X: 0.5, Y: 0.9}, {X: 0.2, Y: 0.4}, {X: 0.8, Y: 0.4}}
}

func newInteractor(t *testing.T, anchors []domain.Anchor, rng *stepRandom, rec *swayRecorder) *usecase.Interactor {
	t.Helper()
	svc := service.NewGrowthService(staticAnchors{anchors: anchors}, rng, rec, logging.Discard())
	if err := svc.Load(context.Background()); err != nil {
		t.Fatalf("load plant: %v", err)
	}
	return usecase.NewInteractor(svc).(*usecase.Interactor)
}

func TestGrowSetsScalesAndRestartsSway(t *testing.T) {
	t.Parallel()
	rec := &swayRecorder{}
	uc := newInteractor(t, threeLeaves(), &stepRandom{draws: []float64{0.5}}, rec)
	ctx := context.Background()

	out, err := uc.Grow(ctx, dto.GrowInput{Ratio: 0.5})
	if err != nil {
		t.Fatalf("grow: %v", err)
	}
	wantScales := []float64{1, 0.5, 0}
	for i, tr := range out.Transitions {
		if tr.Scale != wantScales[i] || tr.DurationSeconds != 0.5 || tr.Easing != string(domain.EaseInOut) {
			t.Fatalf("unexpected transition %d: %+v", i, tr)
		}
	}
	if len(out.Sway) != 3 || rec.restarts != 1 || rec.leaves != 3 {
		t.Fatalf("expected sway for every leaf, got %d (restarts %d)", len(out.Sway), rec.restarts)
	}
	for _, s := range out.Sway {
		if math.Abs(s.Angle-0.01) > 1e-12 || math.Abs(s.DurationSeconds-1.2) > 1e-9 || s.Repeat != "forever" {
			t.Fatalf("unexpected sway %+v", s)
		}
	}

	plant, err := uc.Plant(ctx)
	if err != nil {
		t.Fatalf("plant: %v", err)
	}
	stages := []string{"fully_grown", "growing", "dormant"}
	for i, leaf := range plant.Leaves {
		if leaf.Scale != wantScales[i] || leaf.Stage != stages[i] || !leaf.Swaying {
			t.Fatalf("unexpected leaf %d: %+v", i, leaf)
		}
	}
	if plant.Ratio != 0.5 {
		t.Fatalf("expected stored ratio 0.5, got %v", plant.Ratio)
	}
}

func TestStartSwayReplacesPreviousParameters(t *testing.T) {
	t.Parallel()
	rng := &stepRandom{draws: []float64{0.1, 0.9, 0.3, 0.7}}
	uc := newInteractor(t, threeLeaves(), rng, &swayRecorder{})
	ctx := context.Background()

	first, _ := uc.StartSway(ctx)
	second, _ := uc.StartSway(ctx)
	if len(first) != len(second) {
		t.Fatalf("sway sets must cover the same leaves")
	}
	same := true
	for i := range first {
		if first[i].Angle != second[i].Angle || first[i].DurationSeconds != second[i].DurationSeconds {
			same = false
		}
		if second[i].Generation != first[i].Generation+1 {
			t.Fatalf("expected new generation, got %d after %d", second[i].Generation, first[i].Generation)
		}
	}
	if same {
		t.Fatalf("restarted sway should draw fresh parameters")
	}

	frame, _ := uc.Frame(ctx, 300*time.Millisecond)
	if frame.Generation != second[0].Generation {
		t.Fatalf("frame should sample the latest sway")
	}
	for _, leaf := range frame.Leaves {
		if leaf.Angle <= 0 || leaf.Angle > domain.MaxSwayAngle {
			t.Fatalf("leaf %d should be rotating towards +angle, got %v", leaf.Index, leaf.Angle)
		}
	}
}

func TestStopSwayClearsEveryLeaf(t *testing.T) {
	t.Parallel()
	uc := newInteractor(t, threeLeaves(), &stepRandom{draws: []float64{0.4}}, &swayRecorder{})
	ctx := context.Background()
	_, _ = uc.StartSway(ctx)
	if err := uc.StopSway(ctx); err != nil {
		t.Fatalf("stop sway: %v", err)
	}
	frame, _ := uc.Frame(ctx, time.Second)
	for _, leaf := range frame.Leaves {
		if leaf.Angle != 0 {
			t.Fatalf("leaf %d still swaying", leaf.Index)
		}
	}
}

func TestEmptyPlantIsNoOp(t *testing.T) {
	t.Parallel()
	rec := &swayRecorder{}
	uc := newInteractor(t, nil, &stepRandom{draws: []float64{0.5}}, rec)
	out, err := uc.Grow(context.Background(), dto.GrowInput{Ratio: 0.8})
	if err != nil {
		t.Fatalf("grow on empty plant: %v", err)
	}
	if len(out.Transitions) != 0 || len(out.Sway) != 0 {
		t.Fatalf("expected empty results, got %+v", out)
	}
}

func TestLoadRejectsAnchorOutsideUnitSquare(t *testing.T) {
	t.Parallel()
	svc := service.NewGrowthService(staticAnchors{anchors: []domain.Anchor{{X: 1.5, Y: 0}}}, &stepRandom{draws: []float64{0}}, nil, logging.Discard())
	if err := svc.Load(context.Background()); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestComputeScalesIgnoresLoadedPlant(t *testing.T) {
	t.Parallel()
	uc := newInteractor(t, threeLeaves(), &stepRandom{draws: []float64{0.5}}, &swayRecorder{})
	scales, err := uc.ComputeScales(context.Background(), dto.ScalesInput{Ratio: 1.5, LeafCount: 5})
	if err != nil {
		t.Fatalf("compute scales: %v", err)
	}
	if len(scales) != 5 {
		t.Fatalf("expected 5 scales, got %d", len(scales))
	}
	for _, s := range scales {
		if s != 1 {
			t.Fatalf("ratio above 1 should fully grow every leaf: %v", scales)
		}
	}
}
