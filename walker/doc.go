// Package walker provides a generic depth-first traversal of JSON document trees.
//
// The walker visits every object node (yaml.MappingNode) in pre-order and
// document order, starting with the root. Arrays are descended into but not
// visited themselves; scalars are skipped.
//
// # Quick Start
//
//	err := walker.Walk(doc.Root, func(node *yaml.Node) walker.Action {
//		if parser.Get(node, "$ref") != nil {
//			refs++
//		}
//		return walker.Continue
//	})
//
// # Flow Control
//
// Visitors return an [Action]:
//   - [Continue]: descend into the node's property values
//   - [SkipChildren]: move on to the next sibling
//   - [Stop]: end the walk
//
// # Mutation
//
// A visitor may replace or delete properties of the node it receives. The
// node's children are collected after the visitor returns, so a replaced
// value is walked instead of the original and a deleted one is not walked at
// all. The splitter relies on this to avoid descending into content it has
// just written to a separate file.
//
// # Depth
//
// Traversal is stack-based, so deep documents cannot exhaust the goroutine
// stack. [WithMaxDepth] bounds the nesting depth; exceeding it returns an
// *oaserrors.ResourceLimitError.
package walker
