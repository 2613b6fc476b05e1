// Package tables holds the hand-curated drug knowledge tables used by the
// medication-safety lookup pipeline: an essential short list, a comprehensive
// classified list and a legacy medications list, plus the synonym, name
// translation and pairwise interaction tables.
//
// The three record tables are maintained independently and deliberately not
// merged: the same drug may appear in more than one table with a different
// category value, and which table answers is decided by the lookup pipeline,
// not here. All tables are plain literals, immutable after process start.
package tables

import (
	"fmt"
	"strings"

	"github.com/matergo/obstetric-api/medications/entities"
)

// EssentialMedication is the record shape of the essential table.
type EssentialMedication struct {
	Name            string
	Categoria       string
	Descripcion     string
	Riesgos         string
	Recomendaciones string
}

// ToRecord normalizes an essential entry into the canonical record shape.
func (m EssentialMedication) ToRecord() entities.DrugRecord {
	return entities.DrugRecord{
		Name:            m.Name,
		Category:        entities.ParseCategory(m.Categoria),
		Description:     m.Descripcion,
		Risks:           m.Riesgos,
		Recommendations: m.Recomendaciones,
		Source:          entities.SourceEssential,
	}
}

// DrugClassification is the record shape of the comprehensive table. The
// Category field holds either a bare FDA letter or a therapeutic-class text;
// in the latter case the letter lives inside PregnancyRisks.
type DrugClassification struct {
	Name            string
	Aliases         []string
	Category        string
	Class           string
	Mechanism       string
	PregnancyRisks  string
	Recommendations string
	Monitoring      string
	Alternatives    []string
}

// ToRecord normalizes a comprehensive entry into the canonical record shape.
func (d DrugClassification) ToRecord() entities.DrugRecord {
	cat := entities.ParseCategory(d.Category)
	if cat == entities.CategoryNotAssigned {
		cat = entities.ParseCategory(d.PregnancyRisks)
	}
	return entities.DrugRecord{
		Name:            d.Name,
		Category:        cat,
		Description:     fmt.Sprintf("%s. %s", d.Class, d.Mechanism),
		Risks:           d.PregnancyRisks,
		Recommendations: d.Recommendations,
		Alternatives:    d.Alternatives,
		Source:          entities.SourceComprehensive,
	}
}

// TrimesterNotes carries per-trimester guidance where the legacy table has it.
type TrimesterNotes struct {
	First  string
	Second string
	Third  string
}

// MedicationData is the record shape of the legacy medications table.
type MedicationData struct {
	Name              string
	EnglishNames      []string
	Category          string
	Description       string
	Risks             string
	Recommendations   string
	CommonUses        []string
	TrimesterSpecific *TrimesterNotes
}

// ToRecord normalizes a legacy entry into the canonical record shape.
func (m MedicationData) ToRecord() entities.DrugRecord {
	return entities.DrugRecord{
		Name:            m.Name,
		Category:        entities.ParseCategory(m.Category),
		Description:     m.Description,
		Risks:           m.Risks,
		Recommendations: m.Recommendations,
		Source:          entities.SourceLegacy,
	}
}

// Per-table accessors. Lookup takes a canonical key; listing functions
// iterate in table declaration order.

// LookupEssential returns the essential entry for a canonical key.
func LookupEssential(key string) (EssentialMedication, bool) {
	m, ok := essentialMedications[key]
	return m, ok
}

// AllEssential lists every essential entry in declaration order.
func AllEssential() []EssentialMedication {
	out := make([]EssentialMedication, 0, len(essentialKeys))
	for _, k := range essentialKeys {
		out = append(out, essentialMedications[k])
	}
	return out
}

// EssentialByCategory lists essential entries whose category reduces to cat.
func EssentialByCategory(cat entities.Category) []EssentialMedication {
	var out []EssentialMedication
	for _, k := range essentialKeys {
		m := essentialMedications[k]
		if entities.ParseCategory(m.Categoria).Reduce() == cat.Reduce() {
			out = append(out, m)
		}
	}
	return out
}

// EssentialKeys returns the canonical keys of the essential table in order.
func EssentialKeys() []string { return essentialKeys }

// EssentialAliases returns the synonym strings that map to key, in the
// declaration order of the synonym table.
func EssentialAliases(key string) []string {
	var out []string
	for _, syn := range essentialSynonymOrder {
		if essentialSynonyms[syn] == key {
			out = append(out, syn)
		}
	}
	return out
}

// LookupComprehensive returns the comprehensive entry for a canonical key.
func LookupComprehensive(key string) (DrugClassification, bool) {
	d, ok := comprehensiveDrugs[key]
	return d, ok
}

// AllComprehensive lists every comprehensive entry in declaration order.
func AllComprehensive() []DrugClassification {
	out := make([]DrugClassification, 0, len(comprehensiveKeys))
	for _, k := range comprehensiveKeys {
		out = append(out, comprehensiveDrugs[k])
	}
	return out
}

// ComprehensiveByCategory lists comprehensive entries whose category
// reduces to cat.
func ComprehensiveByCategory(cat entities.Category) []DrugClassification {
	var out []DrugClassification
	for _, k := range comprehensiveKeys {
		d := comprehensiveDrugs[k]
		if d.ToRecord().Category.Reduce() == cat.Reduce() {
			out = append(out, d)
		}
	}
	return out
}

// ComprehensiveKeys returns the canonical keys of the comprehensive table.
func ComprehensiveKeys() []string { return comprehensiveKeys }

// ComprehensiveAliases returns the alias list of a comprehensive entry.
func ComprehensiveAliases(key string) []string {
	if d, ok := comprehensiveDrugs[key]; ok {
		return d.Aliases
	}
	return nil
}

// LookupLegacy returns the legacy entry for a canonical key.
func LookupLegacy(key string) (MedicationData, bool) {
	m, ok := legacyMedications[key]
	return m, ok
}

// AllLegacy lists every legacy entry in declaration order.
func AllLegacy() []MedicationData {
	out := make([]MedicationData, 0, len(legacyKeys))
	for _, k := range legacyKeys {
		out = append(out, legacyMedications[k])
	}
	return out
}

// LegacyByCategory lists legacy entries whose category reduces to cat.
func LegacyByCategory(cat entities.Category) []MedicationData {
	var out []MedicationData
	for _, k := range legacyKeys {
		m := legacyMedications[k]
		if entities.ParseCategory(m.Category).Reduce() == cat.Reduce() {
			out = append(out, m)
		}
	}
	return out
}

// LegacyKeys returns the canonical keys of the legacy table in order.
func LegacyKeys() []string { return legacyKeys }

// LegacyAliases returns the English/brand names of a legacy entry.
func LegacyAliases(key string) []string {
	if m, ok := legacyMedications[key]; ok {
		return m.EnglishNames
	}
	return nil
}

// QualityReport summarizes known data-quality issues across the tables.
// The overlaps and conflicts are inherent to the source data and are
// reported, never reconciled.
type QualityReport struct {
	EssentialCount     int
	ComprehensiveCount int
	LegacyCount        int
	InteractionCount   int
	SharedKeys         []string
	CategoryConflicts  []string
}

// ReportQuality computes the cross-table quality report.
func ReportQuality() QualityReport {
	rep := QualityReport{
		EssentialCount:     len(essentialKeys),
		ComprehensiveCount: len(comprehensiveKeys),
		LegacyCount:        len(legacyKeys),
		InteractionCount:   len(drugInteractions),
	}

	for _, key := range essentialKeys {
		categories := map[entities.Category]bool{
			essentialMedications[key].ToRecord().Category: true,
		}
		shared := false
		if d, ok := comprehensiveDrugs[key]; ok {
			shared = true
			categories[d.ToRecord().Category] = true
		}
		if m, ok := legacyMedications[key]; ok {
			shared = true
			categories[m.ToRecord().Category] = true
		}
		if shared {
			rep.SharedKeys = append(rep.SharedKeys, key)
		}
		if len(categories) > 1 {
			rep.CategoryConflicts = append(rep.CategoryConflicts,
				fmt.Sprintf("%s: %s", key, joinCategories(categories)))
		}
	}
	return rep
}

func joinCategories(set map[entities.Category]bool) string {
	var parts []string
	for _, c := range []entities.Category{
		entities.CategoryA, entities.CategoryB, entities.CategoryC,
		entities.CategoryD, entities.CategoryX, entities.CategoryNotAssigned,
	} {
		if set[c] {
			parts = append(parts, string(c))
		}
	}
	// composites sit outside the fixed order, append them last
	for c := range set {
		if c.SeverityRank() > 0 && strings.Contains(string(c), "/") {
			parts = append(parts, string(c))
		}
	}
	return strings.Join(parts, " vs ")
}
