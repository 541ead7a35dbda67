package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/charmbracelet/log"

	"plant/internal/modules/growth/domain"
	growthout "plant/internal/modules/growth/port/out"
	apperrors "plant/internal/platform/errors"
	"plant/internal/platform/metrics"
)

// GrowthService owns the plant's leaves. The TUI calls it from tea command
// goroutines, so the leaf set is guarded.
type GrowthService struct {
	anchors  growthout.AnchorSource
	rng      growthout.RandomSource
	recorder metrics.Recorder
	logger   *log.Logger

	mu         sync.Mutex
	leaves     []domain.Leaf
	ratio      float64
	generation uint64
}

func NewGrowthService(anchors growthout.AnchorSource, rng growthout.RandomSource, recorder metrics.Recorder, logger *log.Logger) *GrowthService {
	if recorder == nil {
		recorder = metrics.NoopRecorder{}
	}
	if logger == nil {
		logger = log.Default()
	}
	return &GrowthService{anchors: anchors, rng: rng, recorder: recorder, logger: logger}
}

// Load reads the anchors and resets every leaf to dormant. An empty layout is
// kept as a plant with no leaves.
func (s *GrowthService) Load(ctx context.Context) error {
	anchors, err := s.anchors.Load(ctx)
	if err != nil {
		return fmt.Errorf("load leaf anchors: %w", err)
	}
	leaves := make([]domain.Leaf, 0, len(anchors))
	for i, anchor := range anchors {
		if err := anchor.Validate(); err != nil {
			return fmt.Errorf("%w: leaf %d: %v", apperrors.ErrInvalidInput, i, err)
		}
		leaves = append(leaves, domain.Leaf{Index: i, Anchor: anchor})
	}
	if len(leaves) == 0 {
		s.logger.Warn("plant has no leaves; growth and sway are no-ops", "err", apperrors.ErrDegenerateLeafCount)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.leaves = leaves
	s.ratio = 0
	s.generation++
	return nil
}

func (s *GrowthService) Leaves() []domain.Leaf {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Leaf, len(s.leaves))
	copy(out, s.leaves)
	return out
}

func (s *GrowthService) Ratio() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ratio
}

func (s *GrowthService) Generation() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generation
}

// Grow re-evaluates every leaf for the ratio and returns what the renderer
// should animate.
func (s *GrowthService) Grow(ratio float64) []domain.Transition {
	s.mu.Lock()
	defer s.mu.Unlock()
	transitions := domain.Transitions(ratio, len(s.leaves))
	for _, tr := range transitions {
		s.leaves[tr.Index].CurrentScale = tr.Scale
	}
	s.ratio = domain.Clamp(ratio, 0, 1)
	s.logger.Debug("plant regrown", "ratio", s.ratio, "leaves", len(transitions))
	return transitions
}

// StartSway draws fresh parameters for every leaf, discarding whatever sway
// was running before.
func (s *GrowthService) StartSway() []domain.SwayDescriptor {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
	descriptors := make([]domain.SwayDescriptor, len(s.leaves))
	for i := range s.leaves {
		d := domain.NewSwayDescriptor(i, s.rng.Float64(), s.rng.Float64(), s.rng.Uint64(), s.generation)
		descriptors[i] = d
		s.leaves[i].Sway = &d
	}
	s.recorder.IncSwayRestart(len(descriptors))
	return descriptors
}

func (s *GrowthService) StopSway() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
	for i := range s.leaves {
		s.leaves[i].Sway = nil
	}
}
