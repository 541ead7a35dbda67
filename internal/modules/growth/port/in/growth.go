package in

import (
	"context"
	"time"

	"plant/internal/modules/growth/dto"
)

type Usecase interface {
	Plant(ctx context.Context) (dto.PlantOutput, error)
	Grow(ctx context.Context, input dto.GrowInput) (dto.GrowOutput, error)
	ComputeScales(ctx context.Context, input dto.ScalesInput) ([]float64, error)
	Transitions(ctx context.Context, input dto.ScalesInput) ([]dto.TransitionOutput, error)
	StartSway(ctx context.Context) ([]dto.SwayOutput, error)
	StopSway(ctx context.Context) error
	Frame(ctx context.Context, elapsed time.Duration) (dto.FrameOutput, error)
}
