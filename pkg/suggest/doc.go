// Package suggest provides "did you mean" candidate ranking over a fixed
// dictionary, using Levenshtein edit distance from the strview core.
//
// A Matcher holds a dictionary of candidate strings and answers queries with
// the candidates closest to the query, ranked by edit distance. The typical
// use is suggesting a correction for a mistyped identifier, command name,
// configuration key, or enum value.
//
// # Usage
//
//	import "github.com/dmitrymomot/strview/pkg/suggest"
//
//	m, err := suggest.New([]string{"commit", "checkout", "cherry-pick"},
//		suggest.WithLimit(1),
//	)
//	if err != nil {
//		// empty dictionary
//	}
//
//	matches := m.Suggest("comit")
//	// matches[0].Text == "commit", matches[0].Distance == 1
//
// # Ranking
//
// Results are ordered by distance ascending, with ties broken
// lexicographically, so the order is deterministic for a given dictionary
// and query. Candidates further away than the distance cutoff are omitted
// entirely; when nothing qualifies, Suggest returns nil.
//
// The default cutoff scales with the query: len(query)/3 + 1, never below 1.
// Short queries therefore only match near-exact candidates while longer
// queries tolerate proportionally more typos. WithMaxDistance replaces the
// heuristic with a fixed cutoff.
//
// # Caching
//
// Repeated queries are served from a small LRU cache keyed by the query
// string (enabled by default, sized with WithCacheSize, disabled with
// WithCacheSize(0)). The cache is mutex-guarded, so a Matcher is safe for
// concurrent use.
package suggest
