// Package interfaces defines core abstractions for the obstetric API
// to improve testability, maintainability, and separation of concerns.
package interfaces

import (
	"context"
	"time"

	"github.com/matergo/obstetric-api/medications/entities"
)

// CalculationRecord is one persisted calculator run. Inputs and results are
// stored as opaque JSON blobs; the store never interprets them.
type CalculationRecord struct {
	ID             string    `db:"id" json:"id"`
	CalculatorType string    `db:"calculator_type" json:"calculatorType"`
	InputJSON      string    `db:"input_json" json:"input"`
	ResultJSON     string    `db:"result_json" json:"result"`
	CreatedAt      time.Time `db:"created_at" json:"createdAt"`
}

// HistoryStore defines the contract for calculation history persistence.
// Saving is fire-and-forget: failures are logged, never surfaced to the
// caller that produced the calculation.
type HistoryStore interface {
	// SaveAsync persists a record in the background. It returns immediately.
	SaveAsync(rec CalculationRecord)

	// Recent returns the newest records for a calculator type, newest first.
	Recent(ctx context.Context, calculatorType string, limit int) ([]CalculationRecord, error)

	// Prune deletes records older than the retention window and returns
	// how many were removed.
	Prune(ctx context.Context, retention time.Duration) (int64, error)

	// Close releases the underlying database handle.
	Close() error
}

// LookupService defines the contract for the drug lookup pipeline.
type LookupService interface {
	// Lookup resolves a free-text drug name. It never errors: unknown
	// drugs yield the notFound sentinel response.
	Lookup(ctx context.Context, query string) entities.LookupResponse
}

// InputValidator defines the contract for request input validation.
type InputValidator interface {
	// ValidateSearchTerm validates a single free-text drug name.
	ValidateSearchTerm(input string) error

	// ValidateMedicationList validates an interaction-analysis input list.
	ValidateMedicationList(medications []string) error

	// ValidateCategory parses and validates a pregnancy category letter.
	ValidateCategory(input string) (entities.Category, error)
}

// Scheduler defines the contract for background job scheduling.
type Scheduler interface {
	// Lifecycle management
	Start() error
	Stop()
}

// HealthChecker defines the contract for health check functionality.
type HealthChecker interface {
	// HealthCheck returns current system health status
	HealthCheck() (status string, details map[string]any, err error)
}
