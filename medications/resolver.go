// Package medications implements the drug-safety lookup pipeline: alias
// resolution over the curated tables, the multi-source lookup orchestrator,
// and the pairwise interaction analyzer.
package medications

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/matergo/obstetric-api/medications/tables"
)

// resolverEntry pairs a canonical table key with its alias strings. Order
// matters: resolution iterates entries in table declaration order and stops
// at the first hit.
type resolverEntry struct {
	key     string
	aliases []string
}

// Resolver maps free-text queries to canonical table keys. Matching is
// intentionally permissive: after exact key and alias checks it falls back
// to substring containment in both directions, so short keys can shadow
// longer ones that appear later in the table. That shadowing is part of the
// matching contract and must not be reordered or tightened.
type Resolver struct {
	entries []resolverEntry
}

// NewEssentialResolver builds a resolver over the essential table and its
// synonym list.
func NewEssentialResolver() *Resolver {
	keys := tables.EssentialKeys()
	entries := make([]resolverEntry, 0, len(keys))
	for _, k := range keys {
		entries = append(entries, resolverEntry{key: k, aliases: tables.EssentialAliases(k)})
	}
	return &Resolver{entries: entries}
}

// NewComprehensiveResolver builds a resolver over the comprehensive table.
func NewComprehensiveResolver() *Resolver {
	keys := tables.ComprehensiveKeys()
	entries := make([]resolverEntry, 0, len(keys))
	for _, k := range keys {
		entries = append(entries, resolverEntry{key: k, aliases: tables.ComprehensiveAliases(k)})
	}
	return &Resolver{entries: entries}
}

// NewLegacyResolver builds a resolver over the legacy table, using its
// english brand names as aliases.
func NewLegacyResolver() *Resolver {
	keys := tables.LegacyKeys()
	entries := make([]resolverEntry, 0, len(keys))
	for _, k := range keys {
		entries = append(entries, resolverEntry{key: k, aliases: tables.LegacyAliases(k)})
	}
	return &Resolver{entries: entries}
}

// Resolve maps a free-text query to a canonical key. Matching order, first
// hit wins: exact key, exact alias, key substring containment in either
// direction, alias substring containment in either direction. Returns false
// when nothing matches.
func (r *Resolver) Resolve(query string) (string, bool) {
	q := NormalizeTerm(query)
	if q == "" {
		return "", false
	}

	for _, e := range r.entries {
		if NormalizeTerm(e.key) == q {
			return e.key, true
		}
	}
	for _, e := range r.entries {
		for _, a := range e.aliases {
			if NormalizeTerm(a) == q {
				return e.key, true
			}
		}
	}
	for _, e := range r.entries {
		k := NormalizeTerm(e.key)
		if strings.Contains(k, q) || strings.Contains(q, k) {
			return e.key, true
		}
	}
	for _, e := range r.entries {
		for _, a := range e.aliases {
			n := NormalizeTerm(a)
			if strings.Contains(n, q) || strings.Contains(q, n) {
				return e.key, true
			}
		}
	}
	return "", false
}

var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizeTerm lowercases, trims and strips diacritics so that accented
// and unaccented spellings of the same drug name compare equal
// ("ácido fólico" and "acido folico" both resolve).
func NormalizeTerm(s string) string {
	lowered := strings.ToLower(strings.TrimSpace(s))
	folded, _, err := transform.String(foldTransformer, lowered)
	if err != nil {
		return lowered
	}
	return folded
}
