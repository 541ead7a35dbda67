package out

import (
	"context"

	"plant/internal/modules/hydration/domain"
)

// StateStore persists the whole hydration record; last write wins.
type StateStore interface {
	Load(ctx context.Context) (domain.State, error)
	Save(ctx context.Context, state domain.State) error
}

// SurfacePublisher hands (intake, goal) to the companion display surface.
// Publishing is fire-and-forget: implementations report nothing back.
type SurfacePublisher interface {
	Publish(ctx context.Context, intakeML, goalML float64)
}
