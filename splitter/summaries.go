package splitter

import (
	"github.com/erraggy/swagsplit/parser"
	"github.com/erraggy/swagsplit/walker"
	"go.yaml.in/yaml/v4"
)

// PrefixSummaries rewrites the summary of every object that has both a string
// "summary" and a string "operationId" to "<operationId> - <summary>".
// It returns the number of summaries changed.
func PrefixSummaries(root *yaml.Node) (int, error) {
	changed := 0
	err := walker.Walk(root, func(node *yaml.Node) walker.Action {
		summary, ok := parser.StringValue(parser.Get(node, "summary"))
		if !ok {
			return walker.Continue
		}
		opID, ok := parser.StringValue(parser.Get(node, "operationId"))
		if !ok {
			return walker.Continue
		}
		parser.Set(node, "summary", parser.NewString(opID+" - "+summary))
		changed++
		return walker.Continue
	})
	return changed, err
}
