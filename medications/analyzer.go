package medications

import (
	"strings"

	"github.com/matergo/obstetric-api/medications/entities"
	"github.com/matergo/obstetric-api/medications/tables"
)

// Recommendation strings emitted by the analyzer, highest priority first.
// All applicable ones are included, they are not mutually exclusive.
const (
	recContraindicated = "🚨 URGENTE: Tiene combinaciones contraindicadas. Contacte inmediatamente a su médico."
	recMajor           = "⚠️ ALTO RIESGO: Requiere supervisión médica estrecha."
	recModerate        = "📋 MONITOREO: Necesario seguimiento de parámetros específicos."
	recNone            = "✅ No se detectaron interacciones conocidas entre estos medicamentos."
	recNeedMore        = "Agregue más medicamentos para analizar interacciones"
)

// Analyze runs the pairwise interaction check over a medication list.
//
// Every unordered pair in the input is matched against the curated table
// using bidirectional substring containment, stopping at the first table
// record matching a pair. Input lists are not deduplicated first: a drug
// entered twice (brand and generic name) counts its interactions twice,
// which inflates the risk score accordingly. The risk score is the plain
// weighted sum over severity buckets, unbounded.
func Analyze(medicationNames []string) entities.InteractionAnalysis {
	if len(medicationNames) < 2 {
		return entities.InteractionAnalysis{
			HighRiskCombinations:      []entities.Interaction{},
			PregnancySpecificWarnings: []string{},
			Recommendations:           []string{recNeedMore},
		}
	}

	lowered := make([]string, len(medicationNames))
	for i, name := range medicationNames {
		lowered[i] = strings.ToLower(name)
	}

	var found []entities.Interaction
	for i := 0; i < len(lowered); i++ {
		for j := i + 1; j < len(lowered); j++ {
			if in, ok := matchPair(lowered[i], lowered[j]); ok {
				found = append(found, in)
			}
		}
	}

	analysis := entities.InteractionAnalysis{
		TotalInteractions:         len(found),
		HighRiskCombinations:      []entities.Interaction{},
		PregnancySpecificWarnings: []string{},
		Recommendations:           []string{},
	}

	for _, in := range found {
		switch in.Severity {
		case entities.SeverityContraindicated:
			analysis.SeverityBreakdown.Contraindicated++
		case entities.SeverityMajor:
			analysis.SeverityBreakdown.Major++
		case entities.SeverityModerate:
			analysis.SeverityBreakdown.Moderate++
		case entities.SeverityMinor:
			analysis.SeverityBreakdown.Minor++
		}
		if in.Severity == entities.SeverityContraindicated || in.Severity == entities.SeverityMajor {
			analysis.HighRiskCombinations = append(analysis.HighRiskCombinations, in)
		}
		analysis.PregnancySpecificWarnings = append(analysis.PregnancySpecificWarnings, in.PregnancySpecificRisk)
	}

	analysis.OverallRiskScore = analysis.SeverityBreakdown.Contraindicated*entities.SeverityContraindicated.Weight() +
		analysis.SeverityBreakdown.Major*entities.SeverityMajor.Weight() +
		analysis.SeverityBreakdown.Moderate*entities.SeverityModerate.Weight() +
		analysis.SeverityBreakdown.Minor*entities.SeverityMinor.Weight()

	if analysis.SeverityBreakdown.Contraindicated > 0 {
		analysis.Recommendations = append(analysis.Recommendations, recContraindicated)
	}
	if analysis.SeverityBreakdown.Major > 0 {
		analysis.Recommendations = append(analysis.Recommendations, recMajor)
	}
	if analysis.SeverityBreakdown.Moderate > 0 {
		analysis.Recommendations = append(analysis.Recommendations, recModerate)
	}
	if len(found) == 0 {
		analysis.Recommendations = append(analysis.Recommendations, recNone)
	}

	return analysis
}

// matchPair returns the first table record matching the pair in either
// order. Containment runs in both directions so partial names ("warfa")
// still hit, at the cost of possible false positives on short names.
func matchPair(med1, med2 string) (entities.Interaction, bool) {
	for _, in := range tables.AllInteractions() {
		d1 := strings.ToLower(in.Drug1)
		d2 := strings.ToLower(in.Drug2)
		if (strings.Contains(d1, med1) && strings.Contains(d2, med2)) ||
			(strings.Contains(d1, med2) && strings.Contains(d2, med1)) ||
			(strings.Contains(med1, d1) && strings.Contains(med2, d2)) ||
			(strings.Contains(med2, d1) && strings.Contains(med1, d2)) {
			return in, true
		}
	}
	return entities.Interaction{}, false
}
