package splitter

import (
	"fmt"
	"strings"

	"github.com/erraggy/swagsplit/internal/pathutil"
	"github.com/erraggy/swagsplit/parser"
	"go.yaml.in/yaml/v4"
)

// Namer assigns entity file names and remembers them per collection.
// The same key always maps to the same file. Names are compared
// case-insensitively so that the split tree is safe on case-insensitive
// filesystems.
type Namer struct {
	assigned map[string]map[string]string // collection -> key -> file
	taken    map[string]map[string]string // collection -> folded file -> key
}

// NewNamer returns an empty Namer.
func NewNamer() *Namer {
	return &Namer{
		assigned: make(map[string]map[string]string),
		taken:    make(map[string]map[string]string),
	}
}

// FileName returns the file name for key within collection, assigning one on
// first use.
func (n *Namer) FileName(collection, key string) string {
	name, _ := n.assign(collection, key)
	return name
}

// assign returns key's file name and whether it differs from the plain
// entity name because of a collision.
func (n *Namer) assign(collection, key string) (string, bool) {
	if n.assigned[collection] == nil {
		n.assigned[collection] = make(map[string]string)
		n.taken[collection] = make(map[string]string)
	}
	base := pathutil.EntityName(key)
	if name, ok := n.assigned[collection][key]; ok {
		return name, name != base+pathutil.EntityExt
	}

	name := base + pathutil.EntityExt
	for i := 2; ; i++ {
		if _, clash := n.taken[collection][strings.ToLower(name)]; !clash {
			break
		}
		name = fmt.Sprintf("%s-%d%s", base, i, pathutil.EntityExt)
	}
	n.assigned[collection][key] = name
	n.taken[collection][strings.ToLower(name)] = key
	return name, name != base+pathutil.EntityExt
}

// Plan assigns names to the entries of every collection held directly by
// root, in document order, honoring each spec's KeepOnly list. Planning before
// rewriting references keeps the rewriter and the splitter in agreement.
func (n *Namer) Plan(root *yaml.Node, specs []SplitSpec) {
	root = parser.Unwrap(root)
	for _, spec := range specs {
		for _, key := range parser.Keys(parser.Get(root, spec.Name)) {
			if spec.keeps(key) {
				n.assign(spec.Name, key)
			}
		}
	}
}

// Has reports whether key has been assigned a file in collection.
func (n *Namer) Has(collection, key string) bool {
	_, ok := n.assigned[collection][key]
	return ok
}

// KeyFor returns the key whose entity was written to fileName in collection.
func (n *Namer) KeyFor(collection, fileName string) (string, bool) {
	key, ok := n.taken[collection][strings.ToLower(fileName)]
	return key, ok
}
