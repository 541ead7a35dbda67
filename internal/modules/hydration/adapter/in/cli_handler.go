package in

import (
	"context"

	"plant/internal/modules/hydration/dto"
	hydrationin "plant/internal/modules/hydration/port/in"
)

type CLIHandler struct {
	usecase hydrationin.Usecase
}

func NewCLIHandler(usecase hydrationin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Status(ctx context.Context) (dto.StateOutput, error) {
	return h.usecase.GetState(ctx)
}

func (h CLIHandler) LogGlass(ctx context.Context) (dto.LogGlassOutput, error) {
	return h.usecase.LogGlass(ctx)
}

func (h CLIHandler) Reset(ctx context.Context) (dto.StateOutput, error) {
	return h.usecase.ResetIntake(ctx)
}

func (h CLIHandler) SetGoal(ctx context.Context, goalML float64) (dto.StateOutput, error) {
	return h.usecase.UpdateGoal(ctx, dto.UpdateGoalInput{GoalML: goalML})
}

func (h CLIHandler) SetUnit(ctx context.Context, unit string) (dto.StateOutput, error) {
	return h.usecase.SetUnit(ctx, dto.SetUnitInput{Unit: unit})
}

func (h CLIHandler) SetGlassSize(ctx context.Context, sizeML float64) (dto.StateOutput, error) {
	return h.usecase.SetGlassSize(ctx, dto.SetGlassSizeInput{GlassSizeML: sizeML})
}

func (h CLIHandler) Format(ctx context.Context, amountML float64) (string, error) {
	return h.usecase.Format(ctx, dto.FormatInput{AmountML: amountML})
}

func (h CLIHandler) RoundForDisplay(ctx context.Context, amountML, ounceStep, literStep float64) (float64, error) {
	return h.usecase.RoundForDisplay(ctx, dto.RoundInput{AmountML: amountML, OunceStep: ounceStep, LiterStep: literStep})
}
