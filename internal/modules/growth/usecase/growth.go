package usecase

import (
	"context"
	"time"

	"plant/internal/modules/growth/domain"
	"plant/internal/modules/growth/dto"
	growthin "plant/internal/modules/growth/port/in"
	"plant/internal/modules/growth/service"
)

type Interactor struct {
	svc *service.GrowthService
}

func NewInteractor(svc *service.GrowthService) growthin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Plant(_ context.Context) (dto.PlantOutput, error) {
	leaves := i.svc.Leaves()
	out := dto.PlantOutput{Ratio: i.svc.Ratio(), Generation: i.svc.Generation(), Leaves: make([]dto.LeafOutput, 0, len(leaves))}
	for _, leaf := range leaves {
		out.Leaves = append(out.Leaves, dto.LeafOutput{
			Index:   leaf.Index,
			X:       leaf.Anchor.X,
			Y:       leaf.Anchor.Y,
			Scale:   leaf.CurrentScale,
			Stage:   leaf.Stage().String(),
			Swaying: leaf.Sway != nil,
		})
	}
	return out, nil
}

// Grow applies a new ratio and then restarts the idle sway for every leaf.
func (i *Interactor) Grow(_ context.Context, input dto.GrowInput) (dto.GrowOutput, error) {
	transitions := i.svc.Grow(input.Ratio)
	sway := i.svc.StartSway()
	return dto.GrowOutput{Transitions: toTransitions(transitions), Sway: toSway(sway)}, nil
}

func (i *Interactor) ComputeScales(_ context.Context, input dto.ScalesInput) ([]float64, error) {
	return domain.ComputeLeafScales(input.Ratio, input.LeafCount), nil
}

func (i *Interactor) Transitions(_ context.Context, input dto.ScalesInput) ([]dto.TransitionOutput, error) {
	return toTransitions(domain.Transitions(input.Ratio, input.LeafCount)), nil
}

func (i *Interactor) StartSway(_ context.Context) ([]dto.SwayOutput, error) {
	return toSway(i.svc.StartSway()), nil
}

func (i *Interactor) StopSway(_ context.Context) error {
	i.svc.StopSway()
	return nil
}

// Frame samples every leaf at elapsed time since the current sway started.
func (i *Interactor) Frame(_ context.Context, elapsed time.Duration) (dto.FrameOutput, error) {
	leaves := i.svc.Leaves()
	out := dto.FrameOutput{Generation: i.svc.Generation(), Leaves: make([]dto.FrameLeaf, 0, len(leaves))}
	for _, leaf := range leaves {
		frame := dto.FrameLeaf{Index: leaf.Index, X: leaf.Anchor.X, Y: leaf.Anchor.Y, Scale: leaf.CurrentScale}
		if leaf.Sway != nil {
			frame.Angle = leaf.Sway.AngleAt(elapsed)
		}
		out.Leaves = append(out.Leaves, frame)
	}
	return out, nil
}

func toTransitions(in []domain.Transition) []dto.TransitionOutput {
	out := make([]dto.TransitionOutput, 0, len(in))
	for _, tr := range in {
		out = append(out, dto.TransitionOutput{
			Index:           tr.Index,
			Scale:           tr.Scale,
			DurationSeconds: tr.Duration.Seconds(),
			Easing:          string(tr.Easing),
		})
	}
	return out
}

func toSway(in []domain.SwayDescriptor) []dto.SwayOutput {
	out := make([]dto.SwayOutput, 0, len(in))
	for _, d := range in {
		out = append(out, dto.SwayOutput{
			Index:           d.Index,
			Angle:           d.Angle,
			DurationSeconds: d.Duration.Seconds(),
			Easing:          string(d.Easing),
			Repeat:          d.Repeat.String(),
			Seed:            d.Seed,
			Generation:      d.Generation,
		})
	}
	return out
}
