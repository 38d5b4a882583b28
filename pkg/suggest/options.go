package suggest

// Option configures the matcher behavior.
type Option func(*config)

// config holds the configuration for candidate ranking.
type config struct {
	limit       int
	maxDistance int
	caseFold    bool
	cacheSize   int
}

// defaultConfig returns the default configuration.
func defaultConfig() *config {
	return &config{
		limit:       5,
		maxDistance: -1, // scale with query length
		caseFold:    false,
		cacheSize:   128,
	}
}

// WithLimit sets the maximum number of matches Suggest returns.
// A non-positive n removes the limit. Default is 5.
func WithLimit(n int) Option {
	return func(c *config) {
		c.limit = n
	}
}

// WithMaxDistance sets a fixed edit-distance cutoff; candidates further
// away are omitted. A negative d restores the default behavior of scaling
// the cutoff with the query length (len(query)/3 + 1, minimum 1).
func WithMaxDistance(d int) Option {
	return func(c *config) {
		c.maxDistance = d
	}
}

// WithCaseFold makes distance computation ignore ASCII letter case.
func WithCaseFold() Option {
	return func(c *config) {
		c.caseFold = true
	}
}

// WithCacheSize sets the capacity of the query-result cache.
// A non-positive n disables caching. Default is 128.
func WithCacheSize(n int) Option {
	return func(c *config) {
		c.cacheSize = n
	}
}
