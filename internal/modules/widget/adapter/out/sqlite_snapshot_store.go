package out

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"plant/internal/modules/widget/domain"
	widgetout "plant/internal/modules/widget/port/out"
	apperrors "plant/internal/platform/errors"

	_ "modernc.org/sqlite"
)

var _ widgetout.SnapshotStore = (*SQLiteSnapshotStore)(nil)

// SQLiteSnapshotStore keeps the shared key/value pairs a widget reads.
type SQLiteSnapshotStore struct {
	db *sql.DB
}

func NewSQLiteSnapshotStore(dbPath string) (*SQLiteSnapshotStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	store := &SQLiteSnapshotStore{db: db}
	if err := store.ensureSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

func (s *SQLiteSnapshotStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteSnapshotStore) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS widget_data (
  key TEXT PRIMARY KEY,
  value REAL NOT NULL,
  snapshot_id TEXT NOT NULL,
  updated_at TEXT NOT NULL
);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create widget_data table: %w", err)
	}
	return nil
}

func (s *SQLiteSnapshotStore) Name() string { return "sqlite" }

func (s *SQLiteSnapshotStore) Put(ctx context.Context, snapshot domain.Snapshot) error {
	const stmt = `
INSERT INTO widget_data (key, value, snapshot_id, updated_at)
VALUES (?, ?, ?, ?)
ON CONFLICT(key) DO UPDATE SET
  value=excluded.value,
  snapshot_id=excluded.snapshot_id,
  updated_at=excluded.updated_at;
`
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin widget tx: %w", err)
	}
	at := snapshot.PublishedAt.UTC().Format(time.RFC3339Nano)
	for _, key := range []string{domain.KeyIntake, domain.KeyGoal} {
		if _, err := tx.ExecContext(ctx, stmt, key, snapshot.Pairs()[key], snapshot.ID, at); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("put widget key %s: %w", key, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit widget tx: %w", err)
	}
	return nil
}

func (s *SQLiteSnapshotStore) Latest(ctx context.Context) (domain.Snapshot, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT key, value, snapshot_id, updated_at FROM widget_data`)
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("query widget data: %w", err)
	}
	defer rows.Close()

	snapshot := domain.Snapshot{}
	found := map[string]bool{}
	for rows.Next() {
		var key, snapshotID, updatedAt string
		var value float64
		if err := rows.Scan(&key, &value, &snapshotID, &updatedAt); err != nil {
			return domain.Snapshot{}, fmt.Errorf("scan widget data: %w", err)
		}
		switch key {
		case domain.KeyIntake:
			snapshot.IntakeML = value
		case domain.KeyGoal:
			snapshot.GoalML = value
		default:
			continue
		}
		found[key] = true
		snapshot.ID = snapshotID
		if at, err := time.Parse(time.RFC3339Nano, updatedAt); err == nil && at.After(snapshot.PublishedAt) {
			snapshot.PublishedAt = at
		}
	}
	if err := rows.Err(); err != nil {
		return domain.Snapshot{}, fmt.Errorf("iterate widget data: %w", err)
	}
	if !found[domain.KeyIntake] || !found[domain.KeyGoal] {
		return domain.Snapshot{}, fmt.Errorf("%w: no widget snapshot published yet", apperrors.ErrNotFound)
	}
	return snapshot, nil
}
