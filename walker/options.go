package walker

// Option configures a Walker.
type Option func(*Walker)

// WithMaxDepth sets the maximum nesting depth before the walk fails with a
// ResourceLimitError. If depth is not positive, it is silently ignored and
// DefaultMaxDepth is kept.
func WithMaxDepth(depth int) Option {
	return func(w *Walker) {
		if depth > 0 {
			w.maxDepth = depth
		}
	}
}
