package out_test

import (
	"context"
	"path/filepath"
	"testing"

	hydrationout "plant/internal/modules/hydration/adapter/out"
	"plant/internal/modules/hydration/domain"
)

func TestSQLiteStateStoreDefaultsAndRoundTrip(t *testing.T) {
	t.Parallel()
	dbPath := filepath.Join(t.TempDir(), "nested", "plant.db")
	store, err := hydrationout.NewSQLiteStateStore(dbPath)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	ctx := context.Background()

	loaded, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("load empty store: %v", err)
	}
	if loaded != domain.DefaultState() {
		t.Fatalf("expected defaults from empty store, got %+v", loaded)
	}

	want := domain.State{IntakeML: 750, GoalML: 2500, Unit: domain.UnitLiters, GlassSizeML: 330}
	if err := store.Save(ctx, want); err != nil {
		t.Fatalf("save: %v", err)
	}
	want.IntakeML = 1080
	if err := store.Save(ctx, want); err != nil {
		t.Fatalf("second save: %v", err)
	}

	reopened, err := hydrationout.NewSQLiteStateStore(dbPath)
	if err != nil {
		t.Fatalf("reopen store: %v", err)
	}
	got, err := reopened.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != want {
		t.Fatalf("last write should win: got %+v want %+v", got, want)
	}
}

func TestSQLiteStateStoreCloseReleasesDatabase(t *testing.T) {
	t.Parallel()
	store, err := hydrationout.NewSQLiteStateStore(filepath.Join(t.TempDir(), "plant.db"))
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if _, err := store.Load(context.Background()); err == nil {
		t.Fatalf("expected load on a closed store to fail")
	}
}

func TestSQLiteStateStoreRejectsDirectoryPath(t *testing.T) {
	t.Parallel()
	if _, err := hydrationout.NewSQLiteStateStore(t.TempDir()); err == nil {
		t.Fatalf("expected schema setup on a directory path to fail")
	}
}
