package in

import (
	"context"

	"plant/internal/modules/growth/dto"
	growthin "plant/internal/modules/growth/port/in"
)

type CLIHandler struct {
	usecase growthin.Usecase
}

func NewCLIHandler(usecase growthin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Plant(ctx context.Context) (dto.PlantOutput, error) {
	return h.usecase.Plant(ctx)
}

func (h CLIHandler) Grow(ctx context.Context, ratio float64) (dto.GrowOutput, error) {
	return h.usecase.Grow(ctx, dto.GrowInput{Ratio: ratio})
}

func (h CLIHandler) Scales(ctx context.Context, ratio float64, leafCount int) ([]float64, error) {
	return h.usecase.ComputeScales(ctx, dto.ScalesInput{Ratio: ratio, LeafCount: leafCount})
}

func (h CLIHandler) Transitions(ctx context.Context, ratio float64, leafCount int) ([]dto.TransitionOutput, error) {
	return h.usecase.Transitions(ctx, dto.ScalesInput{Ratio: ratio, LeafCount: leafCount})
}

func (h CLIHandler) Sway(ctx context.Context) ([]dto.SwayOutput, error) {
	return h.usecase.StartSway(ctx)
}
