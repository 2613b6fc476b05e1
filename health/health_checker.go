// Package health provides health checking functionality for the obstetric API.
package health

import (
	"context"
	"math"
	"time"

	"github.com/matergo/obstetric-api/interfaces"
	"github.com/matergo/obstetric-api/medications/tables"
)

// DatabasePinger is the slice of the history store the checker needs.
type DatabasePinger interface {
	Ping(ctx context.Context) error
}

// HealthCheckerImpl implements the interfaces.HealthChecker interface
type HealthCheckerImpl struct {
	historyDB           DatabasePinger
	labelsConfigured    bool
	knowledgeConfigured bool
	startTime           time.Time
}

var _ interfaces.HealthChecker = (*HealthCheckerImpl)(nil)

// NewHealthChecker creates a new health checker with injected dependencies.
// historyDB may be nil when history persistence is disabled.
func NewHealthChecker(historyDB DatabasePinger, labelsConfigured, knowledgeConfigured bool) *HealthCheckerImpl {
	return &HealthCheckerImpl{
		historyDB:           historyDB,
		labelsConfigured:    labelsConfigured,
		knowledgeConfigured: knowledgeConfigured,
		startTime:           time.Now(),
	}
}

// HealthCheck reports the state of the lookup tables, the history database
// and the configured external stages. The local tables are compiled in, so
// an empty table means a broken build rather than a runtime fault. A failing
// history database degrades but does not take the service down: persistence
// is fire-and-forget and lookups keep working without it.
func (h *HealthCheckerImpl) HealthCheck() (string, map[string]any, error) {
	quality := tables.ReportQuality()

	data := map[string]any{
		"uptime_hours":         math.Round(time.Since(h.startTime).Hours()*10) / 10,
		"essential_drugs":      quality.EssentialCount,
		"comprehensive_drugs":  quality.ComprehensiveCount,
		"legacy_medications":   quality.LegacyCount,
		"known_interactions":   quality.InteractionCount,
		"label_api_configured": h.labelsConfigured,
		"knowledge_api":        h.knowledgeConfigured,
	}

	if quality.EssentialCount == 0 || quality.InteractionCount == 0 {
		return "unhealthy", data, nil
	}

	status := "healthy"
	if h.historyDB != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		if err := h.historyDB.Ping(ctx); err != nil {
			status = "degraded"
			data["history_db"] = err.Error()
		} else {
			data["history_db"] = "ok"
		}
	} else {
		data["history_db"] = "disabled"
	}

	return status, data, nil
}
