package rewriter

// Option configures a Rewriter.
type Option func(*Rewriter)

// WithDepth sets how many directory levels the split entity files sit below
// the changed root. The default is 1. Negative values are ignored.
func WithDepth(depth int) Option {
	return func(r *Rewriter) {
		if depth >= 0 {
			r.depth = depth
		}
	}
}

// WithFileName sets how entity keys map to file names. It must agree with the
// names the splitter assigns, including collision suffixes.
func WithFileName(fn FileNameFunc) Option {
	return func(r *Rewriter) {
		if fn != nil {
			r.fileName = fn
		}
	}
}
