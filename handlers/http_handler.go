// Package handlers provides HTTP request handlers for the obstetric API endpoints.
// This file implements the handler set with dependency injection.
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/matergo/obstetric-api/calculators"
	"github.com/matergo/obstetric-api/interfaces"
	"github.com/matergo/obstetric-api/logging"
	"github.com/matergo/obstetric-api/medications"
	"github.com/matergo/obstetric-api/medications/entities"
	"github.com/matergo/obstetric-api/medications/openfda"
	"github.com/matergo/obstetric-api/metrics"
)

const (
	defaultSearchLimit  = 10
	maxSearchLimit      = 50
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

// LabelSearcher is the slice of the label API client the handlers need
// beyond the lookup pipeline.
type LabelSearcher interface {
	SearchAll(ctx context.Context, term string, limit int) ([]openfda.LabelMatch, error)
	SearchByCategory(ctx context.Context, category entities.Category, limit int) ([]openfda.LabelMatch, error)
}

// HTTPHandlerImpl carries the injected dependencies for all endpoints
type HTTPHandlerImpl struct {
	lookup    interfaces.LookupService
	local     interfaces.LookupService
	labels    LabelSearcher
	validator interfaces.InputValidator
	history   interfaces.HistoryStore
	health    interfaces.HealthChecker
}

// NewHTTPHandler creates a new HTTP handler with injected dependencies.
// local is the tables-only pipeline backing the offline endpoint; labels
// and history may be nil when unconfigured.
func NewHTTPHandler(
	lookup interfaces.LookupService,
	local interfaces.LookupService,
	labels LabelSearcher,
	validator interfaces.InputValidator,
	history interfaces.HistoryStore,
	health interfaces.HealthChecker,
) *HTTPHandlerImpl {
	return &HTTPHandlerImpl{
		lookup:    lookup,
		local:     local,
		labels:    labels,
		validator: validator,
		history:   history,
		health:    health,
	}
}

type lookupRequest struct {
	Term string `json:"term"`
}

// LookupMedication runs the full lookup pipeline for one drug name.
// Unknown drugs are a 200 with the not-found sentinel, never an error.
func (h *HTTPHandlerImpl) LookupMedication(w http.ResponseWriter, r *http.Request) {
	var req lookupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondWithError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if err := h.validator.ValidateSearchTerm(req.Term); err != nil {
		RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	response := h.lookup.Lookup(r.Context(), strings.TrimSpace(req.Term))
	RespondWithJSON(w, http.StatusOK, response)
}

// LocalLookup resolves a drug name against the compiled-in tables only,
// skipping every network stage.
func (h *HTTPHandlerImpl) LocalLookup(w http.ResponseWriter, r *http.Request) {
	term := chi.URLParam(r, "term")
	if err := h.validator.ValidateSearchTerm(term); err != nil {
		RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	response := h.local.Lookup(r.Context(), strings.TrimSpace(term))
	RespondWithJSON(w, http.StatusOK, response)
}

type interactionsRequest struct {
	Medications []string `json:"medications"`
}

// AnalyzeInteractions runs the pairwise interaction analysis over a
// medication list.
func (h *HTTPHandlerImpl) AnalyzeInteractions(w http.ResponseWriter, r *http.Request) {
	var req interactionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondWithError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if err := h.validator.ValidateMedicationList(req.Medications); err != nil {
		RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	analysis := medications.Analyze(req.Medications)
	metrics.InteractionAnalyses.WithLabelValues(topSeverity(analysis.SeverityBreakdown)).Inc()
	RespondWithJSON(w, http.StatusOK, analysis)
}

func topSeverity(b entities.SeverityBreakdown) string {
	switch {
	case b.Contraindicated > 0:
		return string(entities.SeverityContraindicated)
	case b.Major > 0:
		return string(entities.SeverityMajor)
	case b.Moderate > 0:
		return string(entities.SeverityModerate)
	case b.Minor > 0:
		return string(entities.SeverityMinor)
	}
	return "none"
}

// FDASearch lists official label matches for a term.
func (h *HTTPHandlerImpl) FDASearch(w http.ResponseWriter, r *http.Request) {
	if h.labels == nil {
		RespondWithError(w, http.StatusServiceUnavailable, "Label search is not configured")
		return
	}

	term := chi.URLParam(r, "term")
	if err := h.validator.ValidateSearchTerm(term); err != nil {
		RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	limit := parseLimit(r, defaultSearchLimit, maxSearchLimit)
	matches, err := h.labels.SearchAll(r.Context(), strings.TrimSpace(term), limit)
	if err != nil {
		logging.Warn("Label search failed", "term", term, "error", err.Error())
		RespondWithError(w, http.StatusBadGateway, "Label database unavailable")
		return
	}

	RespondWithJSON(w, http.StatusOK, map[string]interface{}{"medications": matches})
}

// FDASearchByCategory lists labeled drugs carrying a pregnancy category.
func (h *HTTPHandlerImpl) FDASearchByCategory(w http.ResponseWriter, r *http.Request) {
	if h.labels == nil {
		RespondWithError(w, http.StatusServiceUnavailable, "Label search is not configured")
		return
	}

	category, err := h.validator.ValidateCategory(chi.URLParam(r, "category"))
	if err != nil {
		RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	limit := parseLimit(r, defaultSearchLimit, maxSearchLimit)
	matches, err := h.labels.SearchByCategory(r.Context(), category, limit)
	if err != nil {
		if errors.Is(err, openfda.ErrMissingCredential) {
			RespondWithError(w, http.StatusServiceUnavailable, "Category search requires an API key")
			return
		}
		logging.Warn("Category search failed", "category", string(category), "error", err.Error())
		RespondWithError(w, http.StatusBadGateway, "Label database unavailable")
		return
	}

	RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"category":    string(category),
		"medications": matches,
	})
}

// ComputeCalculator dispatches a calculator request by type and records
// the run in the history store without blocking the response.
func (h *HTTPHandlerImpl) ComputeCalculator(w http.ResponseWriter, r *http.Request) {
	calculatorType := chi.URLParam(r, "type")

	payload, err := io.ReadAll(r.Body)
	if err != nil {
		RespondWithError(w, http.StatusBadRequest, "Unreadable request body")
		return
	}

	result, err := calculators.Compute(calculatorType, payload)
	if err != nil {
		if errors.Is(err, calculators.ErrUnknownType) {
			RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	if h.history != nil {
		resultJSON, err := json.Marshal(result)
		if err != nil {
			logging.Error("Failed to encode calculator result for history", "type", calculatorType, "error", err)
		} else {
			h.history.SaveAsync(interfaces.CalculationRecord{
				CalculatorType: calculatorType,
				InputJSON:      string(payload),
				ResultJSON:     string(resultJSON),
			})
		}
	}

	RespondWithJSON(w, http.StatusOK, result)
}

// CalculationHistory returns the newest stored runs for a calculator type.
func (h *HTTPHandlerImpl) CalculationHistory(w http.ResponseWriter, r *http.Request) {
	if h.history == nil {
		RespondWithError(w, http.StatusServiceUnavailable, "History is not configured")
		return
	}

	calculatorType := chi.URLParam(r, "type")
	valid := false
	for _, t := range calculators.Types() {
		if t == calculatorType {
			valid = true
			break
		}
	}
	if !valid {
		RespondWithError(w, http.StatusNotFound, "unknown calculator type: "+calculatorType)
		return
	}

	limit := parseLimit(r, defaultHistoryLimit, maxHistoryLimit)
	records, err := h.history.Recent(r.Context(), calculatorType, limit)
	if err != nil {
		logging.Error("Failed to read calculation history", "type", calculatorType, "error", err)
		RespondWithError(w, http.StatusInternalServerError, "Could not read history")
		return
	}

	RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"type":    calculatorType,
		"records": records,
	})
}

// HealthCheck returns server health information
func (h *HTTPHandlerImpl) HealthCheck(w http.ResponseWriter, r *http.Request) {
	status, data, err := h.health.HealthCheck()
	if err != nil {
		RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	httpStatus := http.StatusOK
	if status == "unhealthy" {
		httpStatus = http.StatusServiceUnavailable
	}

	response := map[string]interface{}{
		"status": status,
		"data":   data,
	}
	RespondWithJSON(w, httpStatus, response)
}

// parseLimit reads the limit query parameter within [1, max].
func parseLimit(r *http.Request, fallback, max int) int {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return fallback
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 {
		return fallback
	}
	if limit > max {
		return max
	}
	return limit
}
