// Package gemini implements the generative knowledge client of the lookup
// pipeline. It asks the model for a strict four-line labeled answer and
// parses it by label prefix; anything else degrades to placeholder text.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/matergo/obstetric-api/medications/entities"
	"github.com/matergo/obstetric-api/metrics"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	defaultModel   = "gemini-1.5-flash"
	defaultTimeout = 30 * time.Second

	// Sentinel the prompt instructs the model to answer with when it does
	// not know the drug. Its appearance anywhere in the response is a miss.
	notFoundSentinel = "MEDICAMENTO_NO_ENCONTRADO"

	placeholderInfo    = "Información no disponible"
	placeholderConsult = "Consulte con su médico"
)

// ErrMissingCredential is returned when the client is constructed without
// an API key. Callers treat it as a configuration error, not a miss.
var ErrMissingCredential = errors.New("gemini: api key not configured")

// Client talks to the generative language API. One blocking call per
// lookup, fixed timeout, no retries.
type Client struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithBaseURL overrides the API endpoint, used by tests.
func WithBaseURL(u string) ClientOption {
	return func(c *Client) {
		c.baseURL = strings.TrimSuffix(u, "/")
	}
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(h *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = h
	}
}

// WithTimeout overrides the per-call timeout on the default HTTP client.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// NewClient builds a knowledge client. The key may be empty; Lookup then
// fails fast with ErrMissingCredential.
func NewClient(apiKey string, opts ...ClientOption) *Client {
	c := &Client{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		model:      defaultModel,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Lookup asks the model about a drug. found=false with nil error means the
// model answered the not-found sentinel; errors cover missing credentials
// and transport or upstream failures.
func (c *Client) Lookup(ctx context.Context, drugName string) (entities.DrugRecord, bool, error) {
	if c.apiKey == "" {
		return entities.DrugRecord{}, false, ErrMissingCredential
	}

	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: buildPrompt(drugName)}}}},
	})
	if err != nil {
		return entities.DrugRecord{}, false, fmt.Errorf("gemini: encoding request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return entities.DrugRecord{}, false, fmt.Errorf("gemini: creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.ExternalRequestDuration.WithLabelValues("gemini", "error").Observe(time.Since(start).Seconds())
		return entities.DrugRecord{}, false, fmt.Errorf("gemini: sending request: %w", err)
	}
	defer resp.Body.Close()
	metrics.ExternalRequestDuration.WithLabelValues("gemini", strconv.Itoa(resp.StatusCode)).Observe(time.Since(start).Seconds())

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return entities.DrugRecord{}, false, fmt.Errorf("gemini: reading response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return entities.DrugRecord{}, false, fmt.Errorf("gemini: unexpected status %d: %s", resp.StatusCode, respBody)
	}

	var parsed generateResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return entities.DrugRecord{}, false, fmt.Errorf("gemini: decoding response: %w", err)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return entities.DrugRecord{}, false, fmt.Errorf("gemini: empty response")
	}

	text := parsed.Candidates[0].Content.Parts[0].Text
	if strings.Contains(text, notFoundSentinel) {
		return entities.DrugRecord{}, false, nil
	}

	return parseAnswer(drugName, text), true, nil
}

// buildPrompt demands a fixed four-line labeled plain-text answer. The
// parser depends on these exact spanish labels.
func buildPrompt(drugName string) string {
	return fmt.Sprintf(`Eres un asistente de farmacología obstétrica. Responde sobre el medicamento "%s" y su seguridad durante el embarazo.

Responde EXACTAMENTE en este formato de cuatro líneas, sin texto adicional:
Categoría: [categoría FDA del embarazo: A, B, C, D o X]
Descripción: [qué es el medicamento y para qué se usa]
Riesgos: [riesgos conocidos durante el embarazo]
Recomendaciones: [recomendaciones para su uso durante el embarazo]

Si no conoces el medicamento, responde únicamente: %s`, drugName, notFoundSentinel)
}

// parseAnswer scans the response line by line for the four label
// prefixes. Label matching is exact after trimming; a missing label leaves
// its field at the fixed placeholder. Order of lines does not matter.
func parseAnswer(drugName, text string) entities.DrugRecord {
	rec := entities.DrugRecord{
		Name:            drugName,
		Category:        entities.CategoryNotAssigned,
		Description:     placeholderInfo,
		Risks:           placeholderInfo,
		Recommendations: placeholderConsult,
		Source:          entities.SourceKnowledgeAPI,
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "Categoría:"):
			rec.Category = entities.ParseCategory(strings.TrimSpace(strings.TrimPrefix(line, "Categoría:")))
		case strings.HasPrefix(line, "Descripción:"):
			if v := strings.TrimSpace(strings.TrimPrefix(line, "Descripción:")); v != "" {
				rec.Description = v
			}
		case strings.HasPrefix(line, "Riesgos:"):
			if v := strings.TrimSpace(strings.TrimPrefix(line, "Riesgos:")); v != "" {
				rec.Risks = v
			}
		case strings.HasPrefix(line, "Recomendaciones:"):
			if v := strings.TrimSpace(strings.TrimPrefix(line, "Recomendaciones:")); v != "" {
				rec.Recommendations = v
			}
		}
	}
	return rec
}
