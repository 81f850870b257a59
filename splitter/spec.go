package splitter

import (
	"github.com/erraggy/swagsplit/internal/pathutil"
	"go.yaml.in/yaml/v4"
)

// ResolverFunc is called for every entry of a collection before the entry is
// written. It may mutate value in place.
type ResolverFunc func(key string, value *yaml.Node)

// SplitSpec describes one collection to split out of every object that holds it.
type SplitSpec struct {
	// Name is the collection key, also used as the output subdirectory.
	Name string
	// KeepOnly, when non-empty, removes every entry whose key is not listed.
	KeepOnly []string
	// Drop lists keys removed from the holding object after splitting.
	Drop []string
	// Resolver is invoked on every remaining entry before it is written.
	Resolver ResolverFunc
}

// keeps reports whether key survives the KeepOnly filter.
func (s SplitSpec) keeps(key string) bool {
	if len(s.KeepOnly) == 0 {
		return true
	}
	for _, k := range s.KeepOnly {
		if k == key {
			return true
		}
	}
	return false
}

// DefaultSpecs returns the ordered specs for one full split of an OAS 2.0
// document: paths restricted to keepPaths (all paths when empty), parameters,
// definitions pruned by resolve and then dropped from the root, and responses.
func DefaultSpecs(keepPaths []string, resolve ResolverFunc) []SplitSpec {
	return []SplitSpec{
		{Name: pathutil.CollectionPaths, KeepOnly: keepPaths},
		{Name: pathutil.CollectionParameters},
		{
			Name:     pathutil.CollectionDefinitions,
			Drop:     []string{pathutil.CollectionDefinitions},
			Resolver: resolve,
		},
		{Name: pathutil.CollectionResponses},
	}
}
