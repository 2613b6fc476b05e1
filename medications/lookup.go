package medications

import (
	"context"

	"github.com/matergo/obstetric-api/logging"
	"github.com/matergo/obstetric-api/medications/entities"
	"github.com/matergo/obstetric-api/medications/tables"
	"github.com/matergo/obstetric-api/metrics"
)

// Placeholder text carried by the not-found sentinel. The sentinel is a
// normal successful response, callers never see an error for an unknown
// drug.
const (
	notFoundDescription     = "No se encontró información sobre este medicamento en las fuentes disponibles."
	notFoundRisks           = "Información no disponible. No se puede evaluar el riesgo durante el embarazo."
	notFoundRecommendations = "Consulte con su médico antes de tomar este medicamento durante el embarazo."
)

// KnowledgeClient queries a generative knowledge API for a drug record.
// found=false with nil error is a miss (the model answered the not-found
// sentinel); a non-nil error is a network or credential problem, logged by
// the orchestrator and treated as a miss.
type KnowledgeClient interface {
	Lookup(ctx context.Context, drugName string) (entities.DrugRecord, bool, error)
}

// LabelClient queries an official drug-label database.
type LabelClient interface {
	Search(ctx context.Context, drugName string) (entities.DrugRecord, bool, error)
}

// Lookup runs the multi-source pipeline for a single drug name. Stages run
// in fixed precedence and the first hit wins: the essential table, the
// official label database, the knowledge API, then the remaining local
// tables through name-variant expansion, and finally the not-found
// sentinel. Clients left nil (no credential configured) skip their stage.
// Nothing is cached between calls.
type Lookup struct {
	essential     *Resolver
	comprehensive *Resolver
	legacy        *Resolver
	labels        LabelClient
	knowledge     KnowledgeClient
}

// NewLookup wires a pipeline. Either client may be nil, its stage is then
// skipped.
func NewLookup(labels LabelClient, knowledge KnowledgeClient) *Lookup {
	return &Lookup{
		essential:     NewEssentialResolver(),
		comprehensive: NewComprehensiveResolver(),
		legacy:        NewLegacyResolver(),
		labels:        labels,
		knowledge:     knowledge,
	}
}

// Lookup resolves a free-text drug name into a response. It never returns
// an error: external failures degrade to the next stage and exhaustion
// yields the sentinel record.
func (l *Lookup) Lookup(ctx context.Context, query string) entities.LookupResponse {
	if key, ok := l.essential.Resolve(query); ok {
		if med, found := tables.LookupEssential(key); found {
			return l.respond(med.ToRecord())
		}
	}

	if l.labels != nil {
		rec, found, err := l.labels.Search(ctx, query)
		if err != nil {
			logging.Warn("official label search failed", "drug", query, "error", err.Error())
		} else if found {
			return l.respond(rec)
		}
	}

	if l.knowledge != nil {
		rec, found, err := l.knowledge.Lookup(ctx, query)
		if err != nil {
			logging.Warn("knowledge api lookup failed", "drug", query, "error", err.Error())
		} else if found {
			return l.respond(rec)
		}
	}

	if rec, found := l.localFallback(query); found {
		return l.respond(rec)
	}

	return l.respond(l.notFoundRecord(query))
}

func (l *Lookup) respond(rec entities.DrugRecord) entities.LookupResponse {
	metrics.LookupTotals.WithLabelValues(string(rec.Source)).Inc()
	return entities.NewLookupResponse(rec)
}

// localFallback retries the comprehensive and legacy tables with every
// name variant, so an english brand name entered by the user still lands
// on a spanish canonical key.
func (l *Lookup) localFallback(query string) (entities.DrugRecord, bool) {
	for _, variant := range tables.SearchVariants(query) {
		if key, ok := l.comprehensive.Resolve(variant); ok {
			if drug, found := tables.LookupComprehensive(key); found {
				return drug.ToRecord(), true
			}
		}
		if key, ok := l.legacy.Resolve(variant); ok {
			if med, found := tables.LookupLegacy(key); found {
				return med.ToRecord(), true
			}
		}
	}
	return entities.DrugRecord{}, false
}

func (l *Lookup) notFoundRecord(query string) entities.DrugRecord {
	return entities.DrugRecord{
		Name:            query,
		Category:        entities.CategoryNotAssigned,
		Description:     notFoundDescription,
		Risks:           notFoundRisks,
		Recommendations: notFoundRecommendations,
		Source:          entities.SourceNotFound,
	}
}
