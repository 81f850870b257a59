package circular

import (
	"github.com/erraggy/swagsplit/exclusion"
	"github.com/erraggy/swagsplit/parser"
	"go.yaml.in/yaml/v4"
)

// Resolver removes excluded properties from definition bodies.
type Resolver struct {
	table  *exclusion.Table
	logger parser.Logger
}

// NewResolver returns a Resolver reading exclusions from table.
// A nil logger discards output.
func NewResolver(table *exclusion.Table, logger parser.Logger) *Resolver {
	return &Resolver{table: table, logger: parser.LoggerOrNop(logger)}
}

// Resolve prunes every property excluded for name from body's "required"
// array and "properties" object. A "required" array left empty is removed.
// Missing targets are ignored. A target of the
// wrong shape is logged and left untouched. It returns the number of entries
// removed.
func (r *Resolver) Resolve(name string, body *yaml.Node) int {
	if r == nil || r.table == nil {
		return 0
	}
	props := r.table.Properties(name)
	if len(props) == 0 || !parser.IsMapping(body) {
		return 0
	}

	drop := make(map[string]bool, len(props))
	for _, p := range props {
		drop[p] = true
	}

	removed := 0
	if required := parser.Get(body, "required"); required != nil {
		if parser.IsSequence(required) {
			n := parser.RemoveStrings(required, drop)
			// Swagger requires at least one entry when the key is present.
			if n > 0 && len(required.Content) == 0 {
				parser.Delete(body, "required")
			}
			removed += n
		} else {
			r.logger.Warn("cannot prune required: not an array", "definition", name)
		}
	}
	if properties := parser.Get(body, "properties"); properties != nil {
		if parser.IsMapping(properties) {
			for _, p := range props {
				if parser.Delete(properties, p) {
					removed++
				}
			}
		} else {
			r.logger.Warn("cannot prune properties: not an object", "definition", name)
		}
	}

	if removed > 0 {
		r.logger.Debug("pruned circular properties", "definition", name, "removed", removed)
	}
	return removed
}
