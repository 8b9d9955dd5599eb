package array

type (
	config struct {
		maxCapacity int
		emptyMarker string
	}

	Option func(c *config)
)

// WithMaxCapacity bounds the capacity the array may grow to.
// Non-positive values leave the array unbounded.
func WithMaxCapacity(n int) Option {
	return func(c *config) {
		c.maxCapacity = n
	}
}

// WithEmptyMarker sets the text String renders for empty slots.
func WithEmptyMarker(marker string) Option {
	return func(c *config) {
		c.emptyMarker = marker
	}
}
