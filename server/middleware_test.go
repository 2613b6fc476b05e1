package server

import (
	"net/http/httptest"
	"testing"
)

func TestGetTokenCost(t *testing.T) {
	tests := []struct {
		name         string
		path         string
		expectedCost int64
	}{
		// Operational endpoints stay cheap
		{"Root index", "/", 1},
		{"Health endpoint", "/health", 5},
		{"Metrics endpoint", "/metrics", 5},

		// Lookup pipeline may reach external APIs
		{"Medication lookup", "/api/medications/lookup", 100},
		{"Interaction analysis", "/api/medications/interactions", 50},

		// Label searches hit the external label API
		{"Label search", "/api/medications/fda-search/amoxicilina", 100},
		{"Label search by category", "/api/medications/fda-search/category/b", 100},

		// Local-only endpoints
		{"Local lookup", "/api/medications/local/paracetamol", 10},
		{"Calculator", "/api/calculators/bmi", 20},
		{"History", "/api/history/bmi", 10},

		// Default case
		{"Unknown endpoint", "/unknown", 5},
		{"Bare api prefix", "/api", 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tt.path, nil)
			cost := getTokenCost(req)

			if cost != tt.expectedCost {
				t.Errorf("Expected cost %d for path %s, got %d", tt.expectedCost, tt.path, cost)
			}
		})
	}
}

func TestRateLimiterGetBucketReuse(t *testing.T) {
	rl := NewRateLimiter()

	first := rl.getBucket("203.0.113.1")
	second := rl.getBucket("203.0.113.1")

	if first != second {
		t.Error("Same client should reuse the same bucket")
	}

	other := rl.getBucket("203.0.113.2")
	if other == first {
		t.Error("Different clients should get different buckets")
	}
}
