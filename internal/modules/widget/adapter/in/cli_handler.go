package in

import (
	"context"

	"plant/internal/modules/widget/dto"
	widgetin "plant/internal/modules/widget/port/in"
)

type CLIHandler struct {
	usecase widgetin.Usecase
}

func NewCLIHandler(usecase widgetin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) List(ctx context.Context) ([]dto.WidgetInfo, error) {
	return h.usecase.List(ctx)
}

func (h CLIHandler) Doctor(ctx context.Context) ([]dto.DoctorResult, error) {
	return h.usecase.Doctor(ctx)
}

func (h CLIHandler) Show(ctx context.Context) (dto.SnapshotOutput, error) {
	return h.usecase.Latest(ctx)
}
