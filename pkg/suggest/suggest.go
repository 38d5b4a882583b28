package suggest

import (
	"slices"
	"strings"

	"github.com/dmitrymomot/strview"
)

// Match is a single ranked suggestion.
type Match struct {
	Text     string
	Distance int
}

// Matcher ranks dictionary candidates by edit distance to a query.
// It is safe for concurrent use.
type Matcher struct {
	candidates []string
	limit      int
	maxDist    int
	caseFold   bool
	cache      *resultCache
}

// New creates a matcher over the given candidate dictionary.
// The dictionary is copied, so later mutation of the slice does not affect
// the matcher. Returns ErrNoCandidates when the dictionary is empty.
func New(candidates []string, opts ...Option) (*Matcher, error) {
	if len(candidates) == 0 {
		return nil, ErrNoCandidates
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	m := &Matcher{
		candidates: slices.Clone(candidates),
		limit:      cfg.limit,
		maxDist:    cfg.maxDistance,
		caseFold:   cfg.caseFold,
	}
	if cfg.cacheSize > 0 {
		m.cache = newResultCache(cfg.cacheSize)
	}
	return m, nil
}

// Suggest returns the candidates closest to query, ordered by distance
// ascending with ties broken lexicographically. Candidates beyond the
// distance cutoff are omitted; when nothing qualifies the result is nil.
func (m *Matcher) Suggest(query string) []Match {
	if m.cache != nil {
		if cached, ok := m.cache.get(query); ok {
			return slices.Clone(cached)
		}
	}

	matches := m.rank(query)

	if m.cache != nil {
		m.cache.put(query, slices.Clone(matches))
	}
	return matches
}

// Best returns the single closest candidate, or ok == false when no
// candidate is within the distance cutoff.
func (m *Matcher) Best(query string) (Match, bool) {
	matches := m.Suggest(query)
	if len(matches) == 0 {
		return Match{}, false
	}
	return matches[0], true
}

func (m *Matcher) rank(query string) []Match {
	q := strview.New(query)
	cutoff := m.maxDist
	if cutoff < 0 {
		cutoff = len(query)/3 + 1
	}

	var matches []Match
	for _, cand := range m.candidates {
		var d int
		if m.caseFold {
			d = strview.EditDistanceFold(q, strview.New(cand))
		} else {
			d = strview.EditDistance(q, strview.New(cand))
		}
		if d <= cutoff {
			matches = append(matches, Match{Text: cand, Distance: d})
		}
	}

	slices.SortFunc(matches, func(a, b Match) int {
		if a.Distance != b.Distance {
			return a.Distance - b.Distance
		}
		return strings.Compare(a.Text, b.Text)
	})

	if m.limit > 0 && len(matches) > m.limit {
		matches = matches[:m.limit]
	}
	return matches
}
