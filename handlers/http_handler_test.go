package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/matergo/obstetric-api/interfaces"
	"github.com/matergo/obstetric-api/medications"
	"github.com/matergo/obstetric-api/medications/entities"
	"github.com/matergo/obstetric-api/medications/openfda"
	"github.com/matergo/obstetric-api/validation"
)

// fakeLabelSearcher implements LabelSearcher for testing
type fakeLabelSearcher struct {
	matches   []openfda.LabelMatch
	err       error
	lastTerm  string
	lastLimit int
}

func (f *fakeLabelSearcher) SearchAll(ctx context.Context, term string, limit int) ([]openfda.LabelMatch, error) {
	f.lastTerm = term
	f.lastLimit = limit
	return f.matches, f.err
}

func (f *fakeLabelSearcher) SearchByCategory(ctx context.Context, category entities.Category, limit int) ([]openfda.LabelMatch, error) {
	f.lastTerm = string(category)
	f.lastLimit = limit
	return f.matches, f.err
}

// fakeHistoryStore implements interfaces.HistoryStore for testing
type fakeHistoryStore struct {
	mu      sync.Mutex
	saved   []interfaces.CalculationRecord
	records []interfaces.CalculationRecord
	err     error
}

func (f *fakeHistoryStore) SaveAsync(rec interfaces.CalculationRecord) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saved = append(f.saved, rec)
}

func (f *fakeHistoryStore) Recent(ctx context.Context, calculatorType string, limit int) ([]interfaces.CalculationRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.records, nil
}

func (f *fakeHistoryStore) Prune(ctx context.Context, retention time.Duration) (int64, error) {
	return 0, nil
}

func (f *fakeHistoryStore) Close() error { return nil }

// fakeHealthChecker implements interfaces.HealthChecker for testing
type fakeHealthChecker struct {
	status string
}

func (f *fakeHealthChecker) HealthCheck() (string, map[string]any, error) {
	return f.status, map[string]any{"essential_drugs": 35}, nil
}

func newTestHandler(labels LabelSearcher, history interfaces.HistoryStore) *HTTPHandlerImpl {
	local := medications.NewLookup(nil, nil)
	return NewHTTPHandler(
		local,
		local,
		labels,
		validation.NewInputValidator(),
		history,
		&fakeHealthChecker{status: "healthy"},
	)
}

func newTestRouter(h *HTTPHandlerImpl) *chi.Mux {
	r := chi.NewRouter()
	r.Post("/api/medications/lookup", h.LookupMedication)
	r.Post("/api/medications/interactions", h.AnalyzeInteractions)
	r.Get("/api/medications/fda-search/{term}", h.FDASearch)
	r.Get("/api/medications/fda-search/category/{category}", h.FDASearchByCategory)
	r.Get("/api/medications/local/{term}", h.LocalLookup)
	r.Post("/api/calculators/{type}", h.ComputeCalculator)
	r.Get("/api/history/{type}", h.CalculationHistory)
	r.Get("/health", h.HealthCheck)
	return r
}

func doRequest(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestLookupMedicationKnownDrug(t *testing.T) {
	router := newTestRouter(newTestHandler(nil, nil))

	w := doRequest(t, router, "POST", "/api/medications/lookup", `{"term":"paracetamol"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp entities.LookupResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Source != entities.SourceEssential {
		t.Errorf("Expected essential source, got %s", resp.Source)
	}
	if resp.Categoria != "B" {
		t.Errorf("Expected category B, got %s", resp.Categoria)
	}
	if resp.Sections.Categoria != resp.Categoria {
		t.Error("Expected sections to mirror flat fields")
	}
}

func TestLookupMedicationUnknownDrugIsNotAnError(t *testing.T) {
	router := newTestRouter(newTestHandler(nil, nil))

	w := doRequest(t, router, "POST", "/api/medications/lookup", `{"term":"zzfarmaco inexistente"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200 for unknown drug, got %d", w.Code)
	}

	var resp entities.LookupResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Source != entities.SourceNotFound {
		t.Errorf("Expected notFound source, got %s", resp.Source)
	}
}

func TestLookupMedicationValidation(t *testing.T) {
	router := newTestRouter(newTestHandler(nil, nil))

	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{not json`},
		{"empty term", `{"term":""}`},
		{"short term", `{"term":"a"}`},
		{"script injection", `{"term":"<script>alert(1)</script>"}`},
		{"sql injection", `{"term":"' or 1=1 --"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(t, router, "POST", "/api/medications/lookup", tt.body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("Expected 400, got %d", w.Code)
			}
		})
	}
}

func TestLocalLookup(t *testing.T) {
	router := newTestRouter(newTestHandler(nil, nil))

	w := doRequest(t, router, "GET", "/api/medications/local/ibuprofeno", "")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}

	var resp entities.LookupResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Source == entities.SourceNotFound {
		t.Error("Expected local tables to resolve ibuprofeno")
	}
}

func TestAnalyzeInteractions(t *testing.T) {
	router := newTestRouter(newTestHandler(nil, nil))

	w := doRequest(t, router, "POST", "/api/medications/interactions",
		`{"medications":["warfarina","aspirina"]}`)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var analysis entities.InteractionAnalysis
	if err := json.Unmarshal(w.Body.Bytes(), &analysis); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if analysis.TotalInteractions != 1 {
		t.Errorf("Expected 1 interaction, got %d", analysis.TotalInteractions)
	}
	if analysis.OverallRiskScore != 7 {
		t.Errorf("Expected risk score 7, got %d", analysis.OverallRiskScore)
	}
}

func TestAnalyzeInteractionsSingleMedication(t *testing.T) {
	router := newTestRouter(newTestHandler(nil, nil))

	// One valid medication passes validation; the analyzer answers with
	// the informational need-more response
	w := doRequest(t, router, "POST", "/api/medications/interactions",
		`{"medications":["warfarina"]}`)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}

	var analysis entities.InteractionAnalysis
	if err := json.Unmarshal(w.Body.Bytes(), &analysis); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if analysis.TotalInteractions != 0 {
		t.Errorf("Expected 0 interactions, got %d", analysis.TotalInteractions)
	}
}

func TestAnalyzeInteractionsValidation(t *testing.T) {
	router := newTestRouter(newTestHandler(nil, nil))

	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{not json`},
		{"empty list", `{"medications":[]}`},
		{"dangerous entry", `{"medications":["warfarina","<script>"]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(t, router, "POST", "/api/medications/interactions", tt.body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("Expected 400, got %d", w.Code)
			}
		})
	}
}

func TestFDASearch(t *testing.T) {
	labels := &fakeLabelSearcher{matches: []openfda.LabelMatch{
		{Record: entities.DrugRecord{Name: "Tylenol", Category: entities.CategoryB, Source: entities.SourceOfficialLabel}, Route: "ORAL"},
	}}
	router := newTestRouter(newTestHandler(labels, nil))

	w := doRequest(t, router, "GET", "/api/medications/fda-search/paracetamol?limit=5", "")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if labels.lastTerm != "paracetamol" {
		t.Errorf("Expected term paracetamol, got %s", labels.lastTerm)
	}
	if labels.lastLimit != 5 {
		t.Errorf("Expected limit 5, got %d", labels.lastLimit)
	}

	var resp struct {
		Medications []openfda.LabelMatch `json:"medications"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(resp.Medications) != 1 || resp.Medications[0].Record.Name != "Tylenol" {
		t.Errorf("Unexpected matches: %+v", resp.Medications)
	}
}

func TestFDASearchUnavailable(t *testing.T) {
	router := newTestRouter(newTestHandler(nil, nil))

	w := doRequest(t, router, "GET", "/api/medications/fda-search/paracetamol", "")
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("Expected 503 without label client, got %d", w.Code)
	}
}

func TestFDASearchUpstreamError(t *testing.T) {
	labels := &fakeLabelSearcher{err: fmt.Errorf("connection refused")}
	router := newTestRouter(newTestHandler(labels, nil))

	w := doRequest(t, router, "GET", "/api/medications/fda-search/paracetamol", "")
	if w.Code != http.StatusBadGateway {
		t.Errorf("Expected 502 on upstream failure, got %d", w.Code)
	}
}

func TestFDASearchByCategory(t *testing.T) {
	labels := &fakeLabelSearcher{matches: []openfda.LabelMatch{}}
	router := newTestRouter(newTestHandler(labels, nil))

	w := doRequest(t, router, "GET", "/api/medications/fda-search/category/x", "")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if labels.lastTerm != "X" {
		t.Errorf("Expected uppercased category X, got %s", labels.lastTerm)
	}
	if labels.lastLimit != defaultSearchLimit {
		t.Errorf("Expected default limit, got %d", labels.lastLimit)
	}
}

func TestFDASearchByCategoryInvalid(t *testing.T) {
	labels := &fakeLabelSearcher{}
	router := newTestRouter(newTestHandler(labels, nil))

	w := doRequest(t, router, "GET", "/api/medications/fda-search/category/z", "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for invalid category, got %d", w.Code)
	}
}

func TestFDASearchByCategoryMissingKey(t *testing.T) {
	labels := &fakeLabelSearcher{err: openfda.ErrMissingCredential}
	router := newTestRouter(newTestHandler(labels, nil))

	w := doRequest(t, router, "GET", "/api/medications/fda-search/category/x", "")
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("Expected 503 for missing key, got %d", w.Code)
	}
}

func TestComputeCalculatorSavesHistory(t *testing.T) {
	history := &fakeHistoryStore{}
	router := newTestRouter(newTestHandler(nil, history))

	w := doRequest(t, router, "POST", "/api/calculators/bmi", `{"weight":60,"height":1.65}`)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var result struct {
		BMI float64 `json:"bmi"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if result.BMI != 22.0 {
		t.Errorf("Expected BMI 22.0, got %.1f", result.BMI)
	}

	history.mu.Lock()
	defer history.mu.Unlock()
	if len(history.saved) != 1 {
		t.Fatalf("Expected 1 saved record, got %d", len(history.saved))
	}
	if history.saved[0].CalculatorType != "bmi" {
		t.Errorf("Expected bmi record, got %s", history.saved[0].CalculatorType)
	}
	if !strings.Contains(history.saved[0].ResultJSON, "22") {
		t.Errorf("Expected result JSON to carry the BMI, got %s", history.saved[0].ResultJSON)
	}
}

func TestComputeCalculatorUnknownType(t *testing.T) {
	router := newTestRouter(newTestHandler(nil, nil))

	w := doRequest(t, router, "POST", "/api/calculators/doppler", `{}`)
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404 for unknown calculator, got %d", w.Code)
	}
}

func TestComputeCalculatorBadInput(t *testing.T) {
	router := newTestRouter(newTestHandler(nil, nil))

	w := doRequest(t, router, "POST", "/api/calculators/bmi", `{"weight":-5,"height":1.65}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for invalid input, got %d", w.Code)
	}
}

func TestComputeCalculatorWorksWithoutHistory(t *testing.T) {
	router := newTestRouter(newTestHandler(nil, nil))

	w := doRequest(t, router, "POST", "/api/calculators/bishop",
		`{"dilation":2,"effacement":2,"consistency":1,"position":1,"station":1}`)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200 without history store, got %d", w.Code)
	}
}

func TestCalculationHistory(t *testing.T) {
	history := &fakeHistoryStore{records: []interfaces.CalculationRecord{
		{ID: "r1", CalculatorType: "bmi", InputJSON: "{}", ResultJSON: "{}"},
	}}
	router := newTestRouter(newTestHandler(nil, history))

	w := doRequest(t, router, "GET", "/api/history/bmi", "")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Type    string                         `json:"type"`
		Records []interfaces.CalculationRecord `json:"records"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Type != "bmi" || len(resp.Records) != 1 {
		t.Errorf("Unexpected history response: %+v", resp)
	}
}

func TestCalculationHistoryUnknownType(t *testing.T) {
	history := &fakeHistoryStore{}
	router := newTestRouter(newTestHandler(nil, history))

	w := doRequest(t, router, "GET", "/api/history/doppler", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404 for unknown type, got %d", w.Code)
	}
}

func TestCalculationHistoryUnavailable(t *testing.T) {
	router := newTestRouter(newTestHandler(nil, nil))

	w := doRequest(t, router, "GET", "/api/history/bmi", "")
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("Expected 503 without history store, got %d", w.Code)
	}
}

func TestHealthCheckEndpoint(t *testing.T) {
	router := newTestRouter(newTestHandler(nil, nil))

	w := doRequest(t, router, "GET", "/health", "")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}

	var resp struct {
		Status string         `json:"status"`
		Data   map[string]any `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Status != "healthy" {
		t.Errorf("Expected healthy, got %s", resp.Status)
	}
}

func TestParseLimit(t *testing.T) {
	tests := []struct {
		query    string
		expected int
	}{
		{"", defaultSearchLimit},
		{"limit=5", 5},
		{"limit=0", defaultSearchLimit},
		{"limit=-3", defaultSearchLimit},
		{"limit=abc", defaultSearchLimit},
		{"limit=999", maxSearchLimit},
	}

	for _, tt := range tests {
		req := httptest.NewRequest("GET", "/search?"+tt.query, nil)
		if got := parseLimit(req, defaultSearchLimit, maxSearchLimit); got != tt.expected {
			t.Errorf("parseLimit(%q) = %d, want %d", tt.query, got, tt.expected)
		}
	}
}
