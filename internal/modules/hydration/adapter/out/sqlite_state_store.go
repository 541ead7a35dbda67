package out

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"plant/internal/modules/hydration/domain"
	hydrationout "plant/internal/modules/hydration/port/out"

	_ "modernc.org/sqlite"
)

const stateRowID = 1

var _ hydrationout.StateStore = (*SQLiteStateStore)(nil)

type SQLiteStateStore struct {
	db *sql.DB
}

func NewSQLiteStateStore(dbPath string) (*SQLiteStateStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	store := &SQLiteStateStore{db: db}
	if err := store.ensureSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

func (s *SQLiteStateStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStateStore) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS hydration_state (
  id INTEGER PRIMARY KEY CHECK (id = 1),
  schema_version INTEGER NOT NULL,
  intake_ml REAL NOT NULL,
  goal_ml REAL NOT NULL,
  unit TEXT NOT NULL,
  glass_size_ml REAL NOT NULL,
  updated_at TEXT NOT NULL
);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create hydration_state table: %w", err)
	}
	return nil
}

func (s *SQLiteStateStore) Load(ctx context.Context) (domain.State, error) {
	const query = `SELECT intake_ml, goal_ml, unit, glass_size_ml FROM hydration_state WHERE id = ?`
	state := domain.State{}
	var unit string
	err := s.db.QueryRowContext(ctx, query, stateRowID).Scan(&state.IntakeML, &state.GoalML, &unit, &state.GlassSizeML)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.DefaultState(), nil
		}
		return domain.State{}, fmt.Errorf("load hydration state: %w", err)
	}
	state.Unit = domain.Unit(unit)
	if err := state.Validate(); err != nil {
		return domain.State{}, fmt.Errorf("stored hydration state: %w", err)
	}
	return state, nil
}

func (s *SQLiteStateStore) Save(ctx context.Context, state domain.State) error {
	const stmt = `
INSERT INTO hydration_state (id, schema_version, intake_ml, goal_ml, unit, glass_size_ml, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
  schema_version=excluded.schema_version,
  intake_ml=excluded.intake_ml,
  goal_ml=excluded.goal_ml,
  unit=excluded.unit,
  glass_size_ml=excluded.glass_size_ml,
  updated_at=excluded.updated_at;
`
	_, err := s.db.ExecContext(ctx, stmt,
		stateRowID,
		domain.SchemaVersion,
		state.IntakeML,
		state.GoalML,
		string(state.Unit),
		state.GlassSizeML,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("save hydration state: %w", err)
	}
	return nil
}
