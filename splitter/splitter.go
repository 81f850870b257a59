package splitter

import (
	"fmt"
	"path/filepath"

	"github.com/erraggy/swagsplit/internal/fileutil"
	"github.com/erraggy/swagsplit/internal/pathutil"
	"github.com/erraggy/swagsplit/parser"
	"github.com/erraggy/swagsplit/walker"
	"go.yaml.in/yaml/v4"
)

// Splitter writes collection entries to per-entity files.
type Splitter struct {
	outputDir string
	logger    parser.Logger
	namer     *Namer
	walkOpts  []walker.Option
}

// Result summarizes one Split.
type Result struct {
	// Files lists the written files per collection, relative to the output
	// directory and slash-separated, in write order.
	Files map[string][]string
	// Renamed counts entries whose file name got a collision suffix.
	Renamed int
}

// Count returns the total number of files written.
func (r *Result) Count() int {
	n := 0
	for _, files := range r.Files {
		n += len(files)
	}
	return n
}

// New returns a Splitter writing under outputDir.
func New(outputDir string, opts ...Option) *Splitter {
	s := &Splitter{outputDir: outputDir, logger: parser.NopLogger{}}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Split applies specs, in order, to every object node of root. root is
// mutated in place. The first write failure aborts the split; files written
// before it are left on disk.
func (s *Splitter) Split(root *yaml.Node, specs []SplitSpec) (*Result, error) {
	namer := s.namer
	if namer == nil {
		namer = NewNamer()
	}
	res := &Result{Files: make(map[string][]string)}

	var splitErr error
	err := walker.Walk(root, func(node *yaml.Node) walker.Action {
		for _, spec := range specs {
			if err := s.splitNode(node, spec, namer, res); err != nil {
				splitErr = err
				return walker.Stop
			}
		}
		return walker.Continue
	}, s.walkOpts...)
	if err != nil {
		return res, fmt.Errorf("splitter: %w", err)
	}
	if splitErr != nil {
		return res, splitErr
	}
	return res, nil
}

func (s *Splitter) splitNode(node *yaml.Node, spec SplitSpec, namer *Namer, res *Result) error {
	coll := parser.Get(node, spec.Name)
	if !parser.IsMapping(coll) {
		return nil
	}

	if len(spec.KeepOnly) > 0 {
		for _, key := range parser.Keys(coll) {
			if !spec.keeps(key) {
				parser.Delete(coll, key)
			}
		}
	}

	for _, e := range parser.Entries(coll) {
		if spec.Resolver != nil {
			spec.Resolver(e.Key, e.Value)
		}

		name, renamed := namer.assign(spec.Name, e.Key)
		if renamed {
			res.Renamed++
			s.logger.Warn("entity file name collision", "collection", spec.Name, "key", e.Key, "file", name)
		}

		data, err := parser.MarshalJSON(e.Value)
		if err != nil {
			return fmt.Errorf("splitter: encoding %s %q: %w", spec.Name, e.Key, err)
		}
		rel := pathutil.EntityRef(spec.Name, name)
		if err := fileutil.WriteFile(filepath.Join(s.outputDir, filepath.FromSlash(rel)), data); err != nil {
			return err
		}
		s.logger.Debug("wrote entity", "file", rel, "bytes", len(data))

		parser.Set(coll, e.Key, parser.NewRef(rel))
		res.Files[spec.Name] = append(res.Files[spec.Name], rel)
	}

	for _, key := range spec.Drop {
		parser.Delete(node, key)
	}
	return nil
}
