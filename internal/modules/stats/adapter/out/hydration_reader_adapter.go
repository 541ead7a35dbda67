package out

import (
	"context"

	hydrationdto "plant/internal/modules/hydration/dto"
	hydrationin "plant/internal/modules/hydration/port/in"
	"plant/internal/modules/stats/domain"
	statsout "plant/internal/modules/stats/port/out"
)

type HydrationReaderAdapter struct {
	hydration hydrationin.Usecase
}

func NewHydrationReaderAdapter(hydration hydrationin.Usecase) statsout.HydrationReader {
	return &HydrationReaderAdapter{hydration: hydration}
}

func (a *HydrationReaderAdapter) Read(ctx context.Context) (domain.Reading, error) {
	state, err := a.hydration.GetState(ctx)
	if err != nil {
		return domain.Reading{}, err
	}
	intakeValue, err := a.value(ctx, state.IntakeML)
	if err != nil {
		return domain.Reading{}, err
	}
	goalValue, err := a.value(ctx, state.GoalML)
	if err != nil {
		return domain.Reading{}, err
	}
	return domain.Reading{
		IntakeML:    state.IntakeML,
		GoalML:      state.GoalML,
		GlassSizeML: state.GlassSizeML,
		Unit:        state.Unit,
		IntakeValue: intakeValue,
		GoalValue:   goalValue,
		IntakeText:  state.IntakeText,
		GoalText:    state.GoalText,
	}, nil
}

// value converts without rounding; a zero step disables it.
func (a *HydrationReaderAdapter) value(ctx context.Context, ml float64) (float64, error) {
	return a.hydration.RoundForDisplay(ctx, hydrationdto.RoundInput{AmountML: ml})
}
