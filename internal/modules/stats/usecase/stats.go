package usecase

import (
	"context"

	"plant/internal/modules/stats/dto"
	statsin "plant/internal/modules/stats/port/in"
	"plant/internal/modules/stats/service"
)

type Interactor struct {
	svc *service.StatsService
}

func NewInteractor(svc *service.StatsService) statsin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Summary(ctx context.Context) (dto.SummaryOutput, error) {
	s, err := i.svc.Summary(ctx)
	if err != nil {
		return dto.SummaryOutput{}, err
	}
	return dto.SummaryOutput{
		IntakeML:         s.IntakeML,
		GoalML:           s.GoalML,
		Ratio:            s.Ratio,
		Percent:          s.Percent,
		RemainingML:      s.RemainingML,
		GlassesRemaining: s.GlassesRemaining,
		Unit:             s.Unit,
		IntakeText:       s.IntakeText,
		GoalText:         s.GoalText,
		Line:             s.Line(),
		GoalReached:      s.GoalReached,
	}, nil
}

func (i *Interactor) Markdown(ctx context.Context) (string, error) {
	return i.svc.Markdown(ctx)
}
