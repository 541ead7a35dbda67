package usecase

import (
	"context"

	"plant/internal/modules/hydration/domain"
	"plant/internal/modules/hydration/dto"
	hydrationin "plant/internal/modules/hydration/port/in"
	"plant/internal/modules/hydration/service"
)

type Interactor struct {
	svc *service.HydrationService
}

func NewInteractor(svc *service.HydrationService) hydrationin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) GetState(ctx context.Context) (dto.StateOutput, error) {
	state, err := i.svc.Current(ctx)
	if err != nil {
		return dto.StateOutput{}, err
	}
	return toOutput(state), nil
}

func (i *Interactor) LogGlass(ctx context.Context) (dto.LogGlassOutput, error) {
	state, logged, err := i.svc.LogGlass(ctx)
	if err != nil {
		return dto.LogGlassOutput{}, err
	}
	return dto.LogGlassOutput{State: toOutput(state), Logged: logged}, nil
}

func (i *Interactor) ResetIntake(ctx context.Context) (dto.StateOutput, error) {
	state, err := i.svc.ResetIntake(ctx)
	if err != nil {
		return dto.StateOutput{}, err
	}
	return toOutput(state), nil
}

func (i *Interactor) UpdateGoal(ctx context.Context, input dto.UpdateGoalInput) (dto.StateOutput, error) {
	state, err := i.svc.UpdateGoal(ctx, input.GoalML)
	if err != nil {
		return dto.StateOutput{}, err
	}
	return toOutput(state), nil
}

func (i *Interactor) SetUnit(ctx context.Context, input dto.SetUnitInput) (dto.StateOutput, error) {
	unit, err := domain.ParseUnit(input.Unit)
	if err != nil {
		return dto.StateOutput{}, err
	}
	state, err := i.svc.SetUnit(ctx, unit)
	if err != nil {
		return dto.StateOutput{}, err
	}
	return toOutput(state), nil
}

func (i *Interactor) SetGlassSize(ctx context.Context, input dto.SetGlassSizeInput) (dto.StateOutput, error) {
	state, err := i.svc.SetGlassSize(ctx, input.GlassSizeML)
	if err != nil {
		return dto.StateOutput{}, err
	}
	return toOutput(state), nil
}

func (i *Interactor) Format(ctx context.Context, input dto.FormatInput) (string, error) {
	state, err := i.svc.Current(ctx)
	if err != nil {
		return "", err
	}
	return state.Format(input.AmountML), nil
}

func (i *Interactor) RoundForDisplay(ctx context.Context, input dto.RoundInput) (float64, error) {
	state, err := i.svc.Current(ctx)
	if err != nil {
		return 0, err
	}
	return state.RoundForDisplay(input.AmountML, input.OunceStep, input.LiterStep), nil
}

func toOutput(state domain.State) dto.StateOutput {
	return dto.StateOutput{
		IntakeML:      state.IntakeML,
		GoalML:        state.GoalML,
		Unit:          string(state.Unit),
		GlassSizeML:   state.GlassSizeML,
		ProgressRatio: state.ProgressRatio(),
		IntakeText:    state.Format(state.IntakeML),
		GoalText:      state.Format(state.GoalML),
		GlassText:     state.Format(state.GlassSizeML),
		Headline:      state.Headline(),
	}
}
