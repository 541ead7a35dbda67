package out

import (
	"context"

	"plant/internal/modules/stats/domain"
)

// HydrationReader supplies the current hydration reading.
type HydrationReader interface {
	Read(ctx context.Context) (domain.Reading, error)
}
