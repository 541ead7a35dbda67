package in

import (
	"context"

	"plant/internal/modules/stats/dto"
)

type Usecase interface {
	Summary(ctx context.Context) (dto.SummaryOutput, error)
	Markdown(ctx context.Context) (string, error)
}
