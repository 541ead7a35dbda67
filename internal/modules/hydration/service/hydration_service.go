package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/charmbracelet/log"

	"plant/internal/modules/hydration/domain"
	hydrationout "plant/internal/modules/hydration/port/out"
	"plant/internal/platform/metrics"
)

// HydrationService serializes every read-modify-write of the stored state;
// TUI commands run on their own goroutines.
type HydrationService struct {
	mu        sync.Mutex
	store     hydrationout.StateStore
	publisher hydrationout.SurfacePublisher
	recorder  metrics.Recorder
	logger    *log.Logger
}

func NewHydrationService(store hydrationout.StateStore, publisher hydrationout.SurfacePublisher, recorder metrics.Recorder, logger *log.Logger) *HydrationService {
	if recorder == nil {
		recorder = metrics.NoopRecorder{}
	}
	if logger == nil {
		logger = log.Default()
	}
	return &HydrationService{store: store, publisher: publisher, recorder: recorder, logger: logger}
}

func (s *HydrationService) Current(ctx context.Context) (domain.State, error) {
	state, err := s.store.Load(ctx)
	if err != nil {
		return domain.State{}, err
	}
	return state, nil
}

// LogGlass adds one glass below the goal and publishes either way.
func (s *HydrationService) LogGlass(ctx context.Context) (domain.State, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, err := s.Current(ctx)
	if err != nil {
		return domain.State{}, false, err
	}
	next, logged := state.LogGlass()
	if logged {
		if err := s.store.Save(ctx, next); err != nil {
			return domain.State{}, false, err
		}
		s.recorder.IncGlassLogged()
		s.logger.Debug("glass logged", "intake_ml", next.IntakeML, "goal_ml", next.GoalML)
	} else {
		s.recorder.IncGlassBlocked()
		s.logger.Debug("goal already reached, glass not logged", "intake_ml", next.IntakeML, "goal_ml", next.GoalML)
	}
	s.recorder.SetProgressRatio(next.ProgressRatio())
	s.publish(ctx, next)
	return next, logged, nil
}

func (s *HydrationService) ResetIntake(ctx context.Context) (domain.State, error) {
	return s.mutate(ctx, true, func(state domain.State) (domain.State, error) {
		s.recorder.IncReset()
		return state.ResetIntake(), nil
	})
}

func (s *HydrationService) UpdateGoal(ctx context.Context, goalML float64) (domain.State, error) {
	return s.mutate(ctx, true, func(state domain.State) (domain.State, error) {
		next, err := state.WithGoal(goalML)
		if err != nil {
			return domain.State{}, err
		}
		s.recorder.IncGoalUpdate()
		return next, nil
	})
}

func (s *HydrationService) SetUnit(ctx context.Context, unit domain.Unit) (domain.State, error) {
	return s.mutate(ctx, false, func(state domain.State) (domain.State, error) {
		return state.WithUnit(unit)
	})
}

func (s *HydrationService) SetGlassSize(ctx context.Context, sizeML float64) (domain.State, error) {
	return s.mutate(ctx, false, func(state domain.State) (domain.State, error) {
		return state.WithGlassSize(sizeML)
	})
}

// mutate applies fn to the stored state and saves the result as one value.
// A failing fn leaves the stored state untouched.
func (s *HydrationService) mutate(ctx context.Context, publish bool, fn func(domain.State) (domain.State, error)) (domain.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, err := s.Current(ctx)
	if err != nil {
		return domain.State{}, err
	}
	next, err := fn(state)
	if err != nil {
		return domain.State{}, err
	}
	if err := next.Validate(); err != nil {
		return domain.State{}, fmt.Errorf("validate hydration state: %w", err)
	}
	if err := s.store.Save(ctx, next); err != nil {
		return domain.State{}, err
	}
	s.recorder.SetProgressRatio(next.ProgressRatio())
	if publish {
		s.publish(ctx, next)
	}
	return next, nil
}

func (s *HydrationService) publish(ctx context.Context, state domain.State) {
	if s.publisher == nil {
		return
	}
	s.publisher.Publish(ctx, state.IntakeML, state.GoalML)
}
