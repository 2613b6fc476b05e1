// Package entities defines the shared data types for the medication-safety
// pipeline: the normalized drug record, the FDA pregnancy-category taxonomy,
// and the interaction analysis types.
package entities

import "strings"

// Source identifies which pipeline stage produced a DrugRecord.
// It is informational only and never participates in severity scoring.
type Source string

const (
	SourceEssential     Source = "essential"
	SourceComprehensive Source = "comprehensive"
	SourceLegacy        Source = "legacy"
	SourceOfficialLabel Source = "officialLabel"
	SourceKnowledgeAPI  Source = "knowledgeApi"
	SourceNotFound      Source = "notFound"
)

// Category is an FDA pregnancy-risk class. Besides the five letter grades
// and NotAssigned, composite values like "C/D" are allowed and mean the
// category varies by trimester with the worst case being the last letter.
type Category string

const (
	CategoryA           Category = "A"
	CategoryB           Category = "B"
	CategoryC           Category = "C"
	CategoryD           Category = "D"
	CategoryX           Category = "X"
	CategoryNotAssigned Category = "No asignada"
)

var letterRanks = map[byte]int{'A': 1, 'B': 2, 'C': 3, 'D': 4, 'X': 5}

// SeverityRank maps a category onto the fixed severity ordering
// X > D > C > B > A > NotAssigned. Composite categories rank as their
// worst letter.
func (c Category) SeverityRank() int {
	rank := 0
	for i := 0; i < len(c); i++ {
		if r, ok := letterRanks[c[i]]; ok && isBareLetter(string(c), i) && r > rank {
			rank = r
		}
	}
	return rank
}

// Reduce collapses a composite category to its single worst letter.
// Non-composite categories are returned unchanged; anything without a
// recognized letter reduces to NotAssigned.
func (c Category) Reduce() Category {
	worst := CategoryNotAssigned
	rank := 0
	for i := 0; i < len(c); i++ {
		if r, ok := letterRanks[c[i]]; ok && isBareLetter(string(c), i) && r > rank {
			rank = r
			worst = Category(c[i : i+1])
		}
	}
	return worst
}

// isBareLetter reports whether position i holds a standalone category letter
// rather than the start of an ordinary word ("Antibiótico" must not read as A).
func isBareLetter(s string, i int) bool {
	if i > 0 && isAlpha(s[i-1]) {
		return false
	}
	if i+1 < len(s) && isAlpha(s[i+1]) {
		return false
	}
	return true
}

func isAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b >= 0x80
}

// ParseCategory extracts a Category from free text as found in the knowledge
// tables and upstream label data: "B", "C/D", "Categoría C - Evitar...",
// "No disponible". Text with no recognizable letter yields NotAssigned.
func ParseCategory(raw string) Category {
	s := strings.ToUpper(strings.TrimSpace(raw))
	for _, prefix := range []string{"CATEGORÍA", "CATEGORIA", "PREGNANCY CATEGORY", "CATEGORY"} {
		s = strings.TrimSpace(strings.TrimPrefix(s, prefix))
	}

	for i := 0; i < len(s); i++ {
		if _, ok := letterRanks[s[i]]; !ok || !isBareLetter(s, i) {
			continue
		}
		// composite shape "C/D": a second bare letter joined by a slash
		if i+2 < len(s) && s[i+1] == '/' {
			if _, ok := letterRanks[s[i+2]]; ok && isBareLetter(s, i+2) {
				return Category(s[i:i+1] + "/" + s[i+2:i+3])
			}
		}
		return Category(s[i : i+1])
	}
	return CategoryNotAssigned
}

// DrugRecord is the canonical normalized output of any lookup stage.
type DrugRecord struct {
	Name            string   `json:"name"`
	Category        Category `json:"category"`
	Description     string   `json:"description"`
	Risks           string   `json:"risks"`
	Recommendations string   `json:"recommendations"`
	Alternatives    []string `json:"alternatives,omitempty"`
	Source          Source   `json:"source"`
}

// LookupSections nests the four content fields of a lookup result.
type LookupSections struct {
	Categoria       string `json:"categoria"`
	Descripcion     string `json:"descripcion"`
	Riesgos         string `json:"riesgos"`
	Recomendaciones string `json:"recomendaciones"`
}

// LookupResponse is the wire shape returned to lookup callers. The four
// content fields appear both flat and duplicated under "sections"; clients
// depend on both shapes.
type LookupResponse struct {
	Source          Source         `json:"source"`
	MedicationName  string         `json:"medicationName"`
	Categoria       string         `json:"categoria"`
	Descripcion     string         `json:"descripcion"`
	Riesgos         string         `json:"riesgos"`
	Recomendaciones string         `json:"recomendaciones"`
	Sections        LookupSections `json:"sections"`
}

// NewLookupResponse builds the double-shape wire response from a record.
func NewLookupResponse(rec DrugRecord) LookupResponse {
	return LookupResponse{
		Source:          rec.Source,
		MedicationName:  rec.Name,
		Categoria:       string(rec.Category),
		Descripcion:     rec.Description,
		Riesgos:         rec.Risks,
		Recomendaciones: rec.Recommendations,
		Sections: LookupSections{
			Categoria:       string(rec.Category),
			Descripcion:     rec.Description,
			Riesgos:         rec.Risks,
			Recomendaciones: rec.Recommendations,
		},
	}
}

// Severity grades a known pairwise interaction.
type Severity string

const (
	SeverityMinor           Severity = "minor"
	SeverityModerate        Severity = "moderate"
	SeverityMajor           Severity = "major"
	SeverityContraindicated Severity = "contraindicated"
)

// Weight returns the fixed numeric value used in aggregate risk scoring.
// The weight is never exposed on individual records.
func (s Severity) Weight() int {
	switch s {
	case SeverityContraindicated:
		return 10
	case SeverityMajor:
		return 7
	case SeverityModerate:
		return 4
	case SeverityMinor:
		return 1
	}
	return 0
}

// Onset categorizes how quickly an interaction manifests.
type Onset string

const (
	OnsetRapid    Onset = "rapid"
	OnsetDelayed  Onset = "delayed"
	OnsetVariable Onset = "variable"
)

// Documentation is a quality-of-evidence tag, display-only.
type Documentation string

const (
	DocExcellent Documentation = "excellent"
	DocGood      Documentation = "good"
	DocFair      Documentation = "fair"
	DocPoor      Documentation = "poor"
)

// Interaction is a known pairwise drug interaction. Drug1 and Drug2 are
// matched by substring containment, not exact keys.
type Interaction struct {
	Drug1                 string        `json:"drug1"`
	Drug2                 string        `json:"drug2"`
	Severity              Severity      `json:"severity"`
	Mechanism             string        `json:"mechanism"`
	ClinicalEffect        string        `json:"clinical_effect"`
	PregnancySpecificRisk string        `json:"pregnancy_specific_risk"`
	Management            string        `json:"management"`
	Alternatives          []string      `json:"alternatives"`
	MonitoringParameters  []string      `json:"monitoring_parameters"`
	Onset                 Onset         `json:"onset"`
	Documentation         Documentation `json:"documentation"`
}

// SeverityBreakdown counts matched interactions per severity bucket.
type SeverityBreakdown struct {
	Contraindicated int `json:"contraindicated"`
	Major           int `json:"major"`
	Moderate        int `json:"moderate"`
	Minor           int `json:"minor"`
}

// InteractionAnalysis is the aggregate result for a medication list.
// It is built fresh per request and has no persisted identity.
type InteractionAnalysis struct {
	TotalInteractions         int               `json:"total_interactions"`
	SeverityBreakdown         SeverityBreakdown `json:"severity_breakdown"`
	HighRiskCombinations      []Interaction     `json:"high_risk_combinations"`
	PregnancySpecificWarnings []string          `json:"pregnancy_specific_warnings"`
	OverallRiskScore          int               `json:"overall_risk_score"`
	Recommendations           []string          `json:"recommendations"`
}
