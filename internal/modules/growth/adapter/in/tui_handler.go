package in

import (
	"context"
	"time"

	"plant/internal/modules/growth/dto"
	growthin "plant/internal/modules/growth/port/in"
)

type TUIHandler struct {
	usecase growthin.Usecase
}

func NewTUIHandler(usecase growthin.Usecase) TUIHandler {
	return TUIHandler{usecase: usecase}
}

func (h TUIHandler) Grow(ctx context.Context, ratio float64) (dto.GrowOutput, error) {
	return h.usecase.Grow(ctx, dto.GrowInput{Ratio: ratio})
}

func (h TUIHandler) Frame(ctx context.Context, elapsed time.Duration) (dto.FrameOutput, error) {
	return h.usecase.Frame(ctx, elapsed)
}

func (h TUIHandler) StopSway(ctx context.Context) error {
	return h.usecase.StopSway(ctx)
}
