package in

import (
	"context"

	"plant/internal/modules/stats/dto"
	statsin "plant/internal/modules/stats/port/in"
)

type CLIHandler struct {
	usecase statsin.Usecase
}

func NewCLIHandler(usecase statsin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Summary(ctx context.Context) (dto.SummaryOutput, error) {
	return h.usecase.Summary(ctx)
}

func (h CLIHandler) Markdown(ctx context.Context) (string, error) {
	return h.usecase.Markdown(ctx)
}
