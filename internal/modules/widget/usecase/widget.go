package usecase

import (
	"context"

	"plant/internal/modules/widget/dto"
	widgetin "plant/internal/modules/widget/port/in"
	"plant/internal/modules/widget/service"
)

type Interactor struct {
	svc *service.WidgetService
}

func NewInteractor(svc *service.WidgetService) widgetin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Publish(ctx context.Context, input dto.PublishInput) (dto.PublishOutput, error) {
	return i.svc.Publish(ctx, input.IntakeML, input.GoalML)
}

func (i *Interactor) Latest(ctx context.Context) (dto.SnapshotOutput, error) {
	snapshot, err := i.svc.Latest(ctx)
	if err != nil {
		return dto.SnapshotOutput{}, err
	}
	return dto.SnapshotOutput{
		ID:          snapshot.ID,
		IntakeML:    snapshot.IntakeML,
		GoalML:      snapshot.GoalML,
		PublishedAt: snapshot.PublishedAt,
	}, nil
}

func (i *Interactor) List(ctx context.Context) ([]dto.WidgetInfo, error) {
	manifests, err := i.svc.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.WidgetInfo, 0, len(manifests))
	for _, m := range manifests {
		out = append(out, dto.WidgetInfo{Name: m.Name, Version: m.Version, Enabled: m.Enabled, Binary: m.Binary})
	}
	return out, nil
}

func (i *Interactor) Doctor(ctx context.Context) ([]dto.DoctorResult, error) {
	return i.svc.Doctor(ctx)
}
