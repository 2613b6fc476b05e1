// Package openfda implements the official drug-label client. The upstream
// database indexes english and brand names only, so every query fans out
// over the spanish term's translated variants and three field-search
// strategies, stopping at the first combination with results.
package openfda

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/matergo/obstetric-api/medications/entities"
	"github.com/matergo/obstetric-api/medications/tables"
	"github.com/matergo/obstetric-api/metrics"
)

const (
	defaultBaseURL = "https://api.fda.gov/drug/label.json"
	defaultTimeout = 10 * time.Second

	// Long label texts are cut at this budget with a literal marker. The
	// marker is part of the response contract.
	truncateLimit  = 800
	truncateMarker = " (truncated)"

	noCategory = "No disponible"
	noRoute    = "No especificada"
)

// ErrMissingCredential is returned by category search when the client has
// no API key configured.
var ErrMissingCredential = errors.New("openfda: api key not configured")

// Field-search strategies, tried in order per name variant.
var searchStrategies = []string{
	"openfda.generic_name",
	"openfda.brand_name",
	"openfda.substance_name",
}

// Client queries the label database. Individual attempts that fail (404 on
// no match, timeout, 5xx) are swallowed and the fan-out continues; only
// total exhaustion is a miss.
type Client struct {
	apiKey     string
	baseURL    string
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

// NewClient builds a label client. The key is optional for plain label
// search (the public endpoint allows keyless queries at a lower rate).
func NewClient(apiKey string, opts ...ClientOption) *Client {
	c := &Client{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type labelResponse struct {
	Results []labelResult `json:"results"`
}

type labelResult struct {
	OpenFDA struct {
		BrandName         []string `json:"brand_name"`
		GenericName       []string `json:"generic_name"`
		SubstanceName     []string `json:"substance_name"`
		Route             []string `json:"route"`
		PregnancyCategory []string `json:"pregnancy_category"`
	} `json:"openfda"`
	Pregnancy               []string `json:"pregnancy"`
	PregnancyOrBreastFeeding []string `json:"pregnancy_or_breast_feeding"`
	Warnings                []string `json:"warnings"`
	WarningsAndPrecautions  []string `json:"warnings_and_precautions"`
}

// Search looks a drug up by name. The spanish term is expanded into its
// english and brand-name variants and each variant is tried against the
// three field strategies, exact quoted match, first hit wins. found=false
// means every combination came back empty.
func (c *Client) Search(ctx context.Context, drugName string) (entities.DrugRecord, bool, error) {
	for _, variant := range tables.SearchVariants(drugName) {
		for _, strategy := range searchStrategies {
			query := fmt.Sprintf(`%s:"%s"`, strategy, variant)
			results, err := c.fetch(ctx, query, 1)
			if err != nil {
				// per-attempt failures never abort the fan-out
				continue
			}
			if len(results) > 0 {
				return normalizeResult(results[0]), true, nil
			}
		}
	}
	return entities.DrugRecord{}, false, nil
}

// LabelMatch is one entry of a multi-result label search.
type LabelMatch struct {
	Record entities.DrugRecord `json:"record"`
	Route  string              `json:"route"`
}

// SearchAll returns up to limit label matches for a term, combining brand,
// generic and substance name fields in a single query.
func (c *Client) SearchAll(ctx context.Context, term string, limit int) ([]LabelMatch, error) {
	var clauses []string
	for _, variant := range tables.SearchVariants(term) {
		for _, strategy := range searchStrategies {
			clauses = append(clauses, fmt.Sprintf(`%s:"%s"`, strategy, variant))
		}
	}
	results, err := c.fetch(ctx, strings.Join(clauses, " OR "), limit)
	if err != nil {
		return nil, err
	}
	matches := make([]LabelMatch, 0, len(results))
	for _, r := range results {
		matches = append(matches, LabelMatch{Record: normalizeResult(r), Route: extractRoute(r)})
	}
	return matches, nil
}

// SearchByCategory lists labeled drugs carrying the given pregnancy
// category. Requires a configured API key.
func (c *Client) SearchByCategory(ctx context.Context, category entities.Category, limit int) ([]LabelMatch, error) {
	if c.apiKey == "" {
		return nil, ErrMissingCredential
	}
	query := fmt.Sprintf(`openfda.pregnancy_category:"%s"`, string(category))
	results, err := c.fetch(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	matches := make([]LabelMatch, 0, len(results))
	for _, r := range results {
		matches = append(matches, LabelMatch{Record: normalizeResult(r), Route: extractRoute(r)})
	}
	return matches, nil
}

func (c *Client) fetch(ctx context.Context, query string, limit int) ([]labelResult, error) {
	if limit < 1 {
		limit = 1
	}
	params := url.Values{}
	params.Set("search", query)
	params.Set("limit", fmt.Sprintf("%d", limit))
	if c.apiKey != "" {
		params.Set("api_key", c.apiKey)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("openfda: creating request: %w", err)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.ExternalRequestDuration.WithLabelValues("openfda", "error").Observe(time.Since(start).Seconds())
		return nil, fmt.Errorf("openfda: sending request: %w", err)
	}
	defer resp.Body.Close()
	metrics.ExternalRequestDuration.WithLabelValues("openfda", strconv.Itoa(resp.StatusCode)).Observe(time.Since(start).Seconds())

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("openfda: reading response: %w", err)
	}
	// the upstream answers 404 for zero matches
	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("openfda: unexpected status %d: %s", resp.StatusCode, body)
	}

	var parsed labelResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("openfda: decoding response: %w", err)
	}
	return parsed.Results, nil
}

// normalizeResult maps one upstream label onto the internal record shape.
// Name preference: brand, then generic, then substance. Pregnancy text
// prefers the dedicated pregnancy field over the combined one; warnings
// prefer the plain warnings field. Category comes from the structured
// field when present, otherwise best-effort inference from the pregnancy
// text, otherwise NotAssigned.
func normalizeResult(r labelResult) entities.DrugRecord {
	name := "Desconocido"
	switch {
	case len(r.OpenFDA.BrandName) > 0:
		name = r.OpenFDA.BrandName[0]
	case len(r.OpenFDA.GenericName) > 0:
		name = r.OpenFDA.GenericName[0]
	case len(r.OpenFDA.SubstanceName) > 0:
		name = r.OpenFDA.SubstanceName[0]
	}

	pregnancyInfo := firstNonEmpty(r.Pregnancy, r.PregnancyOrBreastFeeding)
	warnings := firstNonEmpty(r.Warnings, r.WarningsAndPrecautions)

	category := entities.CategoryNotAssigned
	if len(r.OpenFDA.PregnancyCategory) > 0 {
		category = entities.ParseCategory(r.OpenFDA.PregnancyCategory[0])
	} else if inferred := inferCategory(pregnancyInfo); inferred != entities.CategoryNotAssigned {
		category = inferred
	}

	if pregnancyInfo == "" {
		pregnancyInfo = noCategory
	}
	if warnings == "" {
		warnings = noCategory
	}

	return entities.DrugRecord{
		Name:            name,
		Category:        category,
		Description:     Truncate(pregnancyInfo),
		Risks:           Truncate(warnings),
		Recommendations: Truncate(pregnancyInfo),
		Source:          entities.SourceOfficialLabel,
	}
}

func extractRoute(r labelResult) string {
	if len(r.OpenFDA.Route) > 0 {
		return r.OpenFDA.Route[0]
	}
	return noRoute
}

func firstNonEmpty(lists ...[]string) string {
	for _, l := range lists {
		if len(l) > 0 && strings.TrimSpace(l[0]) != "" {
			return l[0]
		}
	}
	return ""
}

// inferCategory scans pregnancy text for an explicit "Pregnancy Category X"
// phrase. Secondary heuristic only, the structured field always wins.
func inferCategory(text string) entities.Category {
	upper := strings.ToUpper(text)
	idx := strings.Index(upper, "PREGNANCY CATEGORY")
	if idx < 0 {
		return entities.CategoryNotAssigned
	}
	return entities.ParseCategory(upper[idx:])
}

// Truncate cuts text at the fixed character budget and appends the literal
// marker. Texts at or under the budget pass through untouched.
func Truncate(text string) string {
	if len(text) <= truncateLimit {
		return text
	}
	return text[:truncateLimit] + truncateMarker
}
