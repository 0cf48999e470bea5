package tq

const (
	// defaultRecentRatio reserves a quarter of the cache for entries seen
	// only once.
	defaultRecentRatio = 0.25
	// defaultGhostRatio remembers up to half the cache size in recently
	// evicted keys.
	defaultGhostRatio = 0.5
)

type Option func(c *config)

type config struct {
	recentRatio float64
	ghostRatio  float64
}

func defaultConfig() config {
	return config{
		recentRatio: defaultRecentRatio,
		ghostRatio:  defaultGhostRatio,
	}
}

// WithRecentRatio sets the fraction of the cache reserved for entries seen
// only once. Needs to be between 0 and 1. The recent segment always gets at
// least one slot, so a small cache may exceed the requested fraction.
func WithRecentRatio(ratio float64) Option {
	return func(c *config) {
		c.recentRatio = ratio
	}
}

// WithGhostRatio sets the fraction of the cache size remembered as recently
// evicted keys. Needs to be between 0 and 1. Ghost entries hold bare keys,
// not values, so memory overhead is small.
func WithGhostRatio(ratio float64) Option {
	return func(c *config) {
		c.ghostRatio = ratio
	}
}
