package walker

import (
	"fmt"

	"github.com/erraggy/swagsplit/oaserrors"
	"github.com/erraggy/swagsplit/parser"
	"go.yaml.in/yaml/v4"
)

// Action controls the walker's behavior after visiting a node.
type Action int

const (
	// Continue continues walking normally, visiting children and siblings.
	Continue Action = iota

	// SkipChildren skips all children of the current node but continues with siblings.
	SkipChildren

	// Stop stops the walk immediately. No more nodes will be visited.
	Stop
)

// IsValid returns true if the action is one of the defined constants.
func (a Action) IsValid() bool {
	return a >= Continue && a <= Stop
}

// String returns a string representation of the action.
func (a Action) String() string {
	switch a {
	case Continue:
		return "Continue"
	case SkipChildren:
		return "SkipChildren"
	case Stop:
		return "Stop"
	default:
		return fmt.Sprintf("Action(%d)", a)
	}
}

// Visitor is called for every object node, root included.
// It may mutate the node it receives; the node's children are read only
// after the visitor returns.
type Visitor func(node *yaml.Node) Action

// DefaultMaxDepth is the nesting depth at which a walk is aborted.
const DefaultMaxDepth = parser.MaxNestingDepth

// Walker traverses a document tree in pre-order.
type Walker struct {
	maxDepth int
	visited  int
}

// frame is one pending node on the explicit traversal stack.
type frame struct {
	node  *yaml.Node
	depth int
}

// New creates a Walker configured by opts.
func New(opts ...Option) *Walker {
	w := &Walker{maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Walk visits every object node under root in document order.
//
// Traversal uses an explicit stack rather than recursion: an object is visited,
// then its property values are walked in order; array elements are walked in
// order. Scalars are never passed to visit.
func (w *Walker) Walk(root *yaml.Node, visit Visitor) error {
	w.visited = 0
	root = parser.Unwrap(root)
	if root == nil {
		return nil
	}

	stack := []frame{{node: root}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.depth > w.maxDepth {
			return &oaserrors.ResourceLimitError{
				ResourceType: "nesting_depth",
				Limit:        int64(w.maxDepth),
				Actual:       int64(f.depth),
			}
		}

		n := f.node
		var children []*yaml.Node
		switch n.Kind {
		case yaml.MappingNode:
			w.visited++
			switch visit(n) {
			case Stop:
				return nil
			case SkipChildren:
				continue
			}
			for i := len(n.Content) - 1; i >= 1; i -= 2 {
				children = append(children, n.Content[i])
			}
		case yaml.SequenceNode:
			for i := len(n.Content) - 1; i >= 0; i-- {
				children = append(children, n.Content[i])
			}
		default:
			continue
		}

		// children are already reversed so the first one is popped next
		for _, child := range children {
			stack = append(stack, frame{node: child, depth: f.depth + 1})
		}
	}
	return nil
}

// Visited returns the number of object nodes visited by the last Walk.
func (w *Walker) Visited() int {
	return w.visited
}

// Walk is a convenience wrapper around New(opts...).Walk(root, visit).
func Walk(root *yaml.Node, visit Visitor, opts ...Option) error {
	return New(opts...).Walk(root, visit)
}
