package in

import (
	"context"

	"plant/internal/modules/widget/dto"
)

type Usecase interface {
	Publish(ctx context.Context, input dto.PublishInput) (dto.PublishOutput, error)
	Latest(ctx context.Context) (dto.SnapshotOutput, error)
	List(ctx context.Context) ([]dto.WidgetInfo, error)
	Doctor(ctx context.Context) ([]dto.DoctorResult, error)
}
