package splitter

import (
	"github.com/erraggy/swagsplit/parser"
	"github.com/erraggy/swagsplit/walker"
)

// Option configures a Splitter.
type Option func(*Splitter)

// WithLogger sets the logger used for collision warnings and per-file detail.
func WithLogger(l parser.Logger) Option {
	return func(s *Splitter) {
		s.logger = parser.LoggerOrNop(l)
	}
}

// WithNamer shares a Namer, typically one already used to plan reference
// rewriting. By default each Split uses a fresh Namer.
func WithNamer(n *Namer) Option {
	return func(s *Splitter) {
		s.namer = n
	}
}

// WithMaxDepth bounds how deep the document walk may go.
func WithMaxDepth(depth int) Option {
	return func(s *Splitter) {
		s.walkOpts = append(s.walkOpts, walker.WithMaxDepth(depth))
	}
}
