// Package scheduler runs the nightly maintenance jobs for the obstetric API:
// pruning old calculation history and reporting lookup-table quality. Jobs
// are cron-based and coordinated through dependency injection.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/matergo/obstetric-api/interfaces"
	"github.com/matergo/obstetric-api/logging"
	"github.com/matergo/obstetric-api/medications/tables"
)

const pruneTimeout = 30 * time.Second

// Compile-time check to ensure Scheduler implements Scheduler interface
var _ interfaces.Scheduler = (*Scheduler)(nil)

// Scheduler handles nightly history pruning and table quality reporting
type Scheduler struct {
	history   interfaces.HistoryStore
	retention time.Duration
	scheduler *gocron.Scheduler
}

// NewScheduler creates a new scheduler instance with injected dependencies.
// history may be nil when persistence is disabled; the prune job is then
// skipped.
func NewScheduler(history interfaces.HistoryStore, retentionDays int) *Scheduler {
	return &Scheduler{
		history:   history,
		retention: time.Duration(retentionDays) * 24 * time.Hour,
		scheduler: gocron.NewScheduler(time.Local),
	}
}

// Start registers the maintenance jobs and starts the scheduler. The table
// quality report runs once immediately so misaligned tables show up in the
// logs at boot rather than at 03:00.
func (s *Scheduler) Start() error {
	s.reportTableQuality()

	if s.history != nil {
		if _, err := s.scheduler.Every(1).Days().At("03:00").Do(s.pruneHistory); err != nil {
			logging.Error("Failed to schedule history pruning", "error", err)
			return fmt.Errorf("failed to schedule history pruning: %w", err)
		}
	}

	if _, err := s.scheduler.Every(1).Days().At("03:30").Do(s.reportTableQuality); err != nil {
		logging.Error("Failed to schedule table quality report", "error", err)
		return fmt.Errorf("failed to schedule table quality report: %w", err)
	}

	s.scheduler.StartAsync()
	return nil
}

// Stop stops the scheduler
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

// pruneHistory deletes calculation records older than the retention window
func (s *Scheduler) pruneHistory() {
	ctx, cancel := context.WithTimeout(context.Background(), pruneTimeout)
	defer cancel()

	start := time.Now()
	deleted, err := s.history.Prune(ctx, s.retention)
	if err != nil {
		logging.Error("Failed to prune calculation history", "error", err)
		return
	}

	logging.Info("Calculation history pruned",
		"deleted", deleted,
		"retention", s.retention.String(),
		"duration", time.Since(start).String())
}

// reportTableQuality logs the cross-table consistency report
func (s *Scheduler) reportTableQuality() {
	report := tables.ReportQuality()

	logging.Info("Medication table quality report",
		"essential", report.EssentialCount,
		"comprehensive", report.ComprehensiveCount,
		"legacy", report.LegacyCount,
		"interactions", report.InteractionCount,
		"shared_keys", len(report.SharedKeys))

	// Category disagreements between tables are expected for a handful of
	// drugs (different sources grade them differently) but worth surfacing.
	if len(report.CategoryConflicts) > 0 {
		logging.Warn("Category conflicts between medication tables",
			"count", len(report.CategoryConflicts),
			"keys", report.CategoryConflicts)
	}
}
