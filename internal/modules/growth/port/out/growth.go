package out

import (
	"context"

	"plant/internal/modules/growth/domain"
)

// AnchorSource supplies the static leaf layout once at load.
type AnchorSource interface {
	Load(ctx context.Context) ([]domain.Anchor, error)
}

// RandomSource draws uniform values for sway parameters.
type RandomSource interface {
	Float64() float64
	Uint64() uint64
}
