package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/matergo/obstetric-api/config"
	"github.com/matergo/obstetric-api/handlers"
	"github.com/matergo/obstetric-api/health"
	"github.com/matergo/obstetric-api/history"
	"github.com/matergo/obstetric-api/logging"
	"github.com/matergo/obstetric-api/medications"
	"github.com/matergo/obstetric-api/server"
	"github.com/matergo/obstetric-api/validation"
)

// newIntegrationServer wires the full stack the way main does, minus the
// external API clients, and serves it over a test listener.
func newIntegrationServer(t *testing.T) (*httptest.Server, *history.Store) {
	t.Helper()

	logging.InitLogger(t.TempDir())

	store, err := history.Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("Failed to open history store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	local := medications.NewLookup(nil, nil)
	healthChecker := health.NewHealthChecker(store, false, false)
	httpHandler := handlers.NewHTTPHandler(
		local,
		local,
		nil,
		validation.NewInputValidator(),
		store,
		healthChecker,
	)

	cfg := &config.Config{
		Port:           "8080",
		Address:        "127.0.0.1",
		Env:            "test",
		LogLevel:       "info",
		MaxRequestBody: 1048576,
		MaxHeaderSize:  1048576,
	}

	srv := server.NewServer(cfg, httpHandler)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	return ts, store
}

func postJSON(t *testing.T, url string, payload any) *http.Response {
	t.Helper()

	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("Failed to marshal payload: %v", err)
	}

	resp, err := http.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer func() { _ = resp.Body.Close() }()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatalf("Failed to decode response body: %v", err)
	}
}

// TestIntegrationLookupPipeline exercises the lookup endpoint through the
// whole middleware chain against the built-in tables.
func TestIntegrationLookupPipeline(t *testing.T) {
	ts, _ := newIntegrationServer(t)

	resp := postJSON(t, ts.URL+"/api/medications/lookup", map[string]string{"term": "paracetamol"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}

	var result struct {
		Source         string `json:"source"`
		MedicationName string `json:"medicationName"`
		Categoria      string `json:"categoria"`
	}
	decodeBody(t, resp, &result)

	if result.Source != "essential" {
		t.Errorf("Expected essential source, got %q", result.Source)
	}
	if result.Categoria == "" {
		t.Error("Known drug should carry a category")
	}

	// Unknown drugs are still a 200 with the not-found sentinel
	resp = postJSON(t, ts.URL+"/api/medications/lookup", map[string]string{"term": "zzfarmaco inexistente"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200 for unknown drug, got %d", resp.StatusCode)
	}
	decodeBody(t, resp, &result)
	if result.Source != "notFound" {
		t.Errorf("Expected notFound source, got %q", result.Source)
	}
}

// TestIntegrationInteractionAnalysis checks the interaction endpoint end to end.
func TestIntegrationInteractionAnalysis(t *testing.T) {
	ts, _ := newIntegrationServer(t)

	resp := postJSON(t, ts.URL+"/api/medications/interactions", map[string][]string{
		"medications": {"warfarina", "aspirina"},
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}

	var analysis struct {
		TotalInteractions int `json:"total_interactions"`
		OverallRiskScore  int `json:"overall_risk_score"`
	}
	decodeBody(t, resp, &analysis)

	if analysis.TotalInteractions == 0 {
		t.Error("warfarina+aspirina should report at least one interaction")
	}
	if analysis.OverallRiskScore == 0 {
		t.Error("Interacting pair should carry a nonzero risk score")
	}
}

// TestIntegrationCalculatorHistoryRoundTrip computes a BMI through the API and
// waits for the asynchronous history write to land in SQLite.
func TestIntegrationCalculatorHistoryRoundTrip(t *testing.T) {
	ts, _ := newIntegrationServer(t)

	resp := postJSON(t, ts.URL+"/api/calculators/bmi", map[string]float64{
		"weight": 60,
		"height": 1.65,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}

	var result struct {
		BMI            float64 `json:"bmi"`
		Classification string  `json:"classification"`
	}
	decodeBody(t, resp, &result)

	if result.BMI != 22.0 {
		t.Errorf("Expected BMI 22.0, got %v", result.BMI)
	}
	if result.Classification != "Peso normal" {
		t.Errorf("Expected normal weight classification, got %q", result.Classification)
	}

	// The history write is fire and forget, poll until it shows up
	deadline := time.Now().Add(5 * time.Second)
	for {
		histResp, err := http.Get(ts.URL + "/api/history/bmi")
		if err != nil {
			t.Fatalf("History request failed: %v", err)
		}
		if histResp.StatusCode != http.StatusOK {
			t.Fatalf("Expected status 200 from history, got %d", histResp.StatusCode)
		}

		var page struct {
			Type    string `json:"type"`
			Records []struct {
				CalculatorType string `json:"calculatorType"`
				ResultJSON     string `json:"result"`
			} `json:"records"`
		}
		decodeBody(t, histResp, &page)

		if len(page.Records) > 0 {
			if page.Records[0].CalculatorType != "bmi" {
				t.Errorf("Expected bmi record, got %q", page.Records[0].CalculatorType)
			}
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("History record never appeared")
		}
		time.Sleep(10 * time.Millisecond)
	}
}

// TestIntegrationHealthAndMetrics verifies the operational endpoints respond.
func TestIntegrationHealthAndMetrics(t *testing.T) {
	ts, _ := newIntegrationServer(t)

	resp, err := http.Get(ts.URL + "/health")
	if err != nil {
		t.Fatalf("Health request failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected status 200 from health, got %d", resp.StatusCode)
	}

	var healthBody struct {
		Status string `json:"status"`
	}
	decodeBody(t, resp, &healthBody)
	if healthBody.Status == "" {
		t.Error("Health response should carry a status")
	}

	resp, err = http.Get(ts.URL + "/metrics")
	if err != nil {
		t.Fatalf("Metrics request failed: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected status 200 from metrics, got %d", resp.StatusCode)
	}

	if got := resp.Header.Get("X-RateLimit-Limit"); got == "" {
		t.Error("Rate limit headers should be present")
	}
}

// TestIntegrationRequestLimits checks the oversized-body rejection path.
func TestIntegrationRequestLimits(t *testing.T) {
	ts, _ := newIntegrationServer(t)

	// 2MB body against the 1MB default limit
	oversized := bytes.Repeat([]byte("a"), 2*1048576)
	resp, err := http.Post(ts.URL+"/api/medications/lookup", "application/json", bytes.NewReader(oversized))
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusRequestEntityTooLarge {
		t.Errorf("Expected status 413, got %d", resp.StatusCode)
	}
}
