package medications

import (
	"testing"

	"github.com/matergo/obstetric-api/medications/entities"
)

func TestAnalyzeNeedsTwoMedications(t *testing.T) {
	for _, meds := range [][]string{nil, {}, {"paracetamol"}} {
		got := Analyze(meds)
		if got.TotalInteractions != 0 || got.OverallRiskScore != 0 {
			t.Errorf("Analyze(%v) produced interactions on short input", meds)
		}
		if len(got.Recommendations) != 1 || got.Recommendations[0] != recNeedMore {
			t.Errorf("Analyze(%v) recommendations = %v", meds, got.Recommendations)
		}
	}
}

func TestAnalyzeMajorPair(t *testing.T) {
	got := Analyze([]string{"warfarina", "aspirina"})

	if got.TotalInteractions != 1 {
		t.Fatalf("total interactions = %d, want 1", got.TotalInteractions)
	}
	if got.SeverityBreakdown.Major != 1 {
		t.Errorf("major count = %d, want 1", got.SeverityBreakdown.Major)
	}
	if got.SeverityBreakdown.Contraindicated != 0 || got.SeverityBreakdown.Moderate != 0 || got.SeverityBreakdown.Minor != 0 {
		t.Errorf("unexpected non-major counts: %+v", got.SeverityBreakdown)
	}
	if got.OverallRiskScore != 7 {
		t.Errorf("risk score = %d, want 7", got.OverallRiskScore)
	}
	if len(got.HighRiskCombinations) != 1 {
		t.Errorf("high risk combinations = %d, want 1", len(got.HighRiskCombinations))
	}
	if len(got.Recommendations) != 1 || got.Recommendations[0] != recMajor {
		t.Errorf("recommendations = %v", got.Recommendations)
	}
}

func TestAnalyzeContraindicatedPair(t *testing.T) {
	got := Analyze([]string{"enalapril", "losartan"})

	if got.TotalInteractions != 1 {
		t.Fatalf("total interactions = %d, want 1", got.TotalInteractions)
	}
	if got.SeverityBreakdown.Contraindicated != 1 {
		t.Errorf("contraindicated count = %d, want 1", got.SeverityBreakdown.Contraindicated)
	}
	if got.OverallRiskScore != 10 {
		t.Errorf("risk score = %d, want 10", got.OverallRiskScore)
	}
	if len(got.Recommendations) != 1 || got.Recommendations[0] != recContraindicated {
		t.Errorf("recommendations = %v", got.Recommendations)
	}
}

func TestAnalyzeNoInteractions(t *testing.T) {
	got := Analyze([]string{"loratadina", "nistatina"})

	if got.TotalInteractions != 0 {
		t.Fatalf("total interactions = %d, want 0", got.TotalInteractions)
	}
	if got.OverallRiskScore != 0 {
		t.Errorf("risk score = %d, want 0", got.OverallRiskScore)
	}
	if len(got.Recommendations) != 1 || got.Recommendations[0] != recNone {
		t.Errorf("recommendations = %v", got.Recommendations)
	}
}

func TestAnalyzeSymmetry(t *testing.T) {
	forward := Analyze([]string{"warfarina", "aspirina"})
	reversed := Analyze([]string{"aspirina", "warfarina"})

	if forward.TotalInteractions != reversed.TotalInteractions {
		t.Errorf("pair order changed total: %d vs %d", forward.TotalInteractions, reversed.TotalInteractions)
	}
	if forward.OverallRiskScore != reversed.OverallRiskScore {
		t.Errorf("pair order changed score: %d vs %d", forward.OverallRiskScore, reversed.OverallRiskScore)
	}
}

func TestAnalyzeScoreAdditivity(t *testing.T) {
	// warfarina+aspirina is major (7), enalapril+losartan contraindicated (10),
	// ibuprofeno+enalapril major (7), fluconazol+warfarina major (7).
	got := Analyze([]string{"warfarina", "aspirina", "enalapril", "losartan", "ibuprofeno", "fluconazol"})

	want := 7 + 10 + 7 + 7
	if got.OverallRiskScore != want {
		t.Errorf("risk score = %d, want %d", got.OverallRiskScore, want)
	}

	// Adding a drug with no known interactions leaves the score unchanged.
	withExtra := Analyze([]string{"warfarina", "aspirina", "enalapril", "losartan", "ibuprofeno", "fluconazol", "loratadina"})
	if withExtra.OverallRiskScore != got.OverallRiskScore {
		t.Errorf("inert drug changed score: %d vs %d", withExtra.OverallRiskScore, got.OverallRiskScore)
	}
}

// A drug entered twice counts its interactions once per pair. Deduplicating
// the input would change published scores, so the doubling stays.
func TestAnalyzeNoDeduplication(t *testing.T) {
	got := Analyze([]string{"warfarina", "warfarin", "aspirina"})

	// Pairs: (warfarina, warfarin) no match, (warfarina, aspirina) major,
	// (warfarin, aspirina) major via substring.
	if got.TotalInteractions != 2 {
		t.Fatalf("total interactions = %d, want 2", got.TotalInteractions)
	}
	if got.OverallRiskScore != 14 {
		t.Errorf("risk score = %d, want 14", got.OverallRiskScore)
	}
}

func TestAnalyzeSubstringMatching(t *testing.T) {
	// Partial and decorated names still match by containment.
	got := Analyze([]string{"warfarina 5mg", "aspirina 100mg"})
	if got.TotalInteractions != 1 {
		t.Errorf("decorated names: total = %d, want 1", got.TotalInteractions)
	}

	got = Analyze([]string{"warfa", "aspi"})
	if got.TotalInteractions != 1 {
		t.Errorf("partial names: total = %d, want 1", got.TotalInteractions)
	}
}

func TestAnalyzeWarningsCollected(t *testing.T) {
	got := Analyze([]string{"levotiroxina", "omeprazol"})

	if got.TotalInteractions != 1 {
		t.Fatalf("total interactions = %d, want 1", got.TotalInteractions)
	}
	if got.SeverityBreakdown.Moderate != 1 {
		t.Errorf("moderate count = %d, want 1", got.SeverityBreakdown.Moderate)
	}
	if len(got.PregnancySpecificWarnings) != 1 || got.PregnancySpecificWarnings[0] == "" {
		t.Errorf("warnings = %v", got.PregnancySpecificWarnings)
	}
	if len(got.HighRiskCombinations) != 0 {
		t.Errorf("moderate pair listed as high risk")
	}
	var _ entities.SeverityBreakdown = got.SeverityBreakdown
}
