// Package history persists calculator runs to a local SQLite database.
// Writes are fire-and-forget so a slow or broken disk never delays a
// calculation response.
package history

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/matergo/obstetric-api/interfaces"
	"github.com/matergo/obstetric-api/logging"
)

const schema = `
CREATE TABLE IF NOT EXISTS calculations (
	id TEXT PRIMARY KEY,
	calculator_type TEXT NOT NULL,
	input_json TEXT NOT NULL,
	result_json TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_calculations_type_created
	ON calculations (calculator_type, created_at DESC);
`

const saveTimeout = 5 * time.Second

// Store is the SQLite-backed implementation of interfaces.HistoryStore.
type Store struct {
	db *sqlx.DB
}

var _ interfaces.HistoryStore = (*Store)(nil)

// Open opens (or creates) the history database at path and ensures the
// schema exists. The parent directory is created if missing.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating history directory: %w", err)
		}
	}

	db, err := sqlx.Connect("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}

	// SQLite handles one writer at a time; serialize access through a
	// single connection to avoid SQLITE_BUSY under concurrent saves.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating history schema: %w", err)
	}

	return &Store{db: db}, nil
}

// SaveAsync persists a record in the background. A zero ID gets a fresh
// UUID and a zero CreatedAt gets the current time. Failures are logged
// and dropped.
func (s *Store) SaveAsync(rec interfaces.CalculationRecord) {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
		defer cancel()

		_, err := s.db.NamedExecContext(ctx,
			`INSERT INTO calculations (id, calculator_type, input_json, result_json, created_at)
			 VALUES (:id, :calculator_type, :input_json, :result_json, :created_at)`, rec)
		if err != nil {
			logging.Error("Failed to save calculation history",
				"calculatorType", rec.CalculatorType,
				"error", err)
		}
	}()
}

// Recent returns the newest records for a calculator type, newest first.
func (s *Store) Recent(ctx context.Context, calculatorType string, limit int) ([]interfaces.CalculationRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	records := make([]interfaces.CalculationRecord, 0, limit)
	err := s.db.SelectContext(ctx, &records,
		`SELECT id, calculator_type, input_json, result_json, created_at
		 FROM calculations
		 WHERE calculator_type = ?
		 ORDER BY created_at DESC
		 LIMIT ?`, calculatorType, limit)
	if err != nil {
		return nil, fmt.Errorf("querying calculation history: %w", err)
	}
	return records, nil
}

// Prune deletes records older than the retention window and returns how
// many were removed.
func (s *Store) Prune(ctx context.Context, retention time.Duration) (int64, error) {
	cutoff := time.Now().UTC().Add(-retention)

	result, err := s.db.ExecContext(ctx,
		`DELETE FROM calculations WHERE created_at < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("pruning calculation history: %w", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("counting pruned history rows: %w", err)
	}
	return deleted, nil
}

// Ping verifies the database handle is still usable.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
