package pipeline

import "fmt"

// State is a phase of the resolution loop.
type State int

const (
	// Splitting writes the split tree for the current exclusion table.
	Splitting State = iota
	// Bundling runs the bundler on the changed root.
	Bundling
	// Refining records the cycle reported by the bundler.
	Refining
	// Done means the bundler succeeded.
	Done
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Splitting:
		return "Splitting"
	case Bundling:
		return "Bundling"
	case Refining:
		return "Refining"
	case Done:
		return "Done"
	default:
		return fmt.Sprintf("State(%d)", s)
	}
}

// StateHandler is called on every state entry with the 1-based attempt number.
type StateHandler func(state State, attempt int)
