package in

import (
	"context"

	"plant/internal/modules/hydration/dto"
)

type Usecase interface {
	GetState(ctx context.Context) (dto.StateOutput, error)
	LogGlass(ctx context.Context) (dto.LogGlassOutput, error)
	ResetIntake(ctx context.Context) (dto.StateOutput, error)
	UpdateGoal(ctx context.Context, input dto.UpdateGoalInput) (dto.StateOutput, error)
	SetUnit(ctx context.Context, input dto.SetUnitInput) (dto.StateOutput, error)
	SetGlassSize(ctx context.Context, input dto.SetGlassSizeInput) (dto.StateOutput, error)
	Format(ctx context.Context, input dto.FormatInput) (string, error)
	RoundForDisplay(ctx context.Context, input dto.RoundInput) (float64, error)
}
