package out

import (
	"context"

	"plant/internal/modules/widget/domain"
)

// Sink receives every published snapshot.
type Sink interface {
	Name() string
	Put(ctx context.Context, snapshot domain.Snapshot) error
}

// SnapshotStore is the sink the surface reads back from.
type SnapshotStore interface {
	Sink
	Latest(ctx context.Context) (domain.Snapshot, error)
}

type ManifestStore interface {
	Load(ctx context.Context) ([]domain.Manifest, error)
}

type Host interface {
	CheckLifecycle(ctx context.Context, manifest domain.Manifest) error
	Reload(ctx context.Context, manifest domain.Manifest, snapshot domain.Snapshot) (domain.ReloadResult, error)
}
