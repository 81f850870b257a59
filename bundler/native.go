package bundler

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/erraggy/swagsplit/circular"
	"github.com/erraggy/swagsplit/internal/pathutil"
	"github.com/erraggy/swagsplit/oaserrors"
	"github.com/erraggy/swagsplit/parser"
	"go.yaml.in/yaml/v4"
)

// MaxRefDepth is the maximum number of references expanded inside one another.
const MaxRefDepth = 100

// Native dereferences a split document tree in-process.
//
// References are resolved relative to the file that contains them. A
// reference whose target is already being expanded closes a cycle; it is
// reported as the diagnostic
//
//	Circular $ref pointer found at <file>#<pointer>
//
// where file and pointer locate the offending "$ref" object.
type Native struct {
	maxDepth int
	indent   string
	logger   parser.Logger
}

// NewNative returns an in-process bundler.
func NewNative(opts ...NativeOption) *Native {
	n := &Native{maxDepth: MaxRefDepth, indent: "  ", logger: parser.NopLogger{}}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// derefRun holds the state of one Bundle call.
type derefRun struct {
	ctx      context.Context
	maxDepth int
	logger   parser.Logger

	docs   map[string]*yaml.Node // absolute file -> parsed root
	done   map[string]*yaml.Node // target key -> fully expanded node
	active map[string]bool       // target keys currently being expanded
	depth  int
}

// Bundle loads rootPath and expands every reference reachable from it.
func (n *Native) Bundle(ctx context.Context, rootPath string) (Outcome, error) {
	abs, err := filepath.Abs(rootPath)
	if err != nil {
		return Outcome{}, fmt.Errorf("bundler: resolving %s: %w", rootPath, err)
	}

	expanded, files, err := n.resolve(ctx, abs)
	var refErr *oaserrors.ReferenceError
	if errors.Is(err, oaserrors.ErrCircularReference) && errors.As(err, &refErr) {
		n.logger.Debug("reference cycle", "ref", refErr.Ref, "location", refErr.Location)
		return Outcome{Diagnostic: circular.DiagnosticPrefix + refErr.Location}, nil
	}
	if err != nil {
		return Outcome{}, err
	}

	var data []byte
	if n.indent == "" {
		data, err = parser.MarshalJSON(expanded)
	} else {
		data, err = parser.MarshalJSONIndent(expanded, "", n.indent)
	}
	if err != nil {
		return Outcome{}, fmt.Errorf("bundler: encoding bundle: %w", err)
	}
	n.logger.Debug("bundled", "files", files, "bytes", len(data))
	return Outcome{Bundle: append(data, '\n')}, nil
}

// resolve expands the document at abs. A reference cycle is returned as a
// *oaserrors.ReferenceError with IsCircular set and Location pointing at the
// "$ref" object that closed it.
func (n *Native) resolve(ctx context.Context, abs string) (*yaml.Node, int, error) {
	r := &derefRun{
		ctx:      ctx,
		maxDepth: n.maxDepth,
		logger:   n.logger,
		docs:     make(map[string]*yaml.Node),
		done:     make(map[string]*yaml.Node),
		active:   map[string]bool{targetKey(abs, nil): true},
	}
	root, err := r.load(abs)
	if err != nil {
		return nil, 0, err
	}
	expanded, err := r.expand(root, abs, nil)
	return expanded, len(r.docs), err
}

func targetKey(file string, pointer []string) string {
	return file + "#" + pathutil.JoinPointer(pointer...)
}

func (r *derefRun) load(file string) (*yaml.Node, error) {
	if doc, ok := r.docs[file]; ok {
		return doc, nil
	}
	doc, err := parser.ParseFile(file)
	if err != nil {
		return nil, err
	}
	r.logger.Debug("loaded file", "file", file)
	r.docs[file] = doc.Root
	return doc.Root, nil
}

// expand returns a copy of node with all references replaced by their
// expanded targets. file and pointer locate node.
func (r *derefRun) expand(node *yaml.Node, file string, pointer []string) (*yaml.Node, error) {
	switch node.Kind {
	case yaml.MappingNode:
		if ref, ok := parser.StringValue(parser.Get(node, parser.RefKey)); ok {
			return r.follow(ref, file, pointer)
		}
		out := &yaml.Node{Kind: yaml.MappingNode, Tag: node.Tag}
		for i := 0; i+1 < len(node.Content); i += 2 {
			key := node.Content[i]
			val, err := r.expand(node.Content[i+1], file, append(pointer[:len(pointer):len(pointer)], key.Value))
			if err != nil {
				return nil, err
			}
			out.Content = append(out.Content, key, val)
		}
		return out, nil

	case yaml.SequenceNode:
		out := &yaml.Node{Kind: yaml.SequenceNode, Tag: node.Tag}
		for i, item := range node.Content {
			val, err := r.expand(item, file, append(pointer[:len(pointer):len(pointer)], strconv.Itoa(i)))
			if err != nil {
				return nil, err
			}
			out.Content = append(out.Content, val)
		}
		return out, nil

	default:
		return node, nil
	}
}

// follow expands the target of ref, found in file at pointer.
func (r *derefRun) follow(ref, file string, pointer []string) (*yaml.Node, error) {
	if err := r.ctx.Err(); err != nil {
		return nil, err
	}
	location := targetKey(file, pointer)

	targetFile, targetPtr, err := splitRef(ref, file)
	if err != nil {
		return nil, &oaserrors.ReferenceError{Ref: ref, Location: location, Message: err.Error()}
	}
	key := targetKey(targetFile, targetPtr)
	if r.active[key] {
		return nil, &oaserrors.ReferenceError{Ref: ref, Location: filepath.ToSlash(location), IsCircular: true}
	}
	if done, ok := r.done[key]; ok {
		return done, nil
	}
	if r.depth >= r.maxDepth {
		return nil, &oaserrors.ResourceLimitError{
			ResourceType: "ref_depth",
			Limit:        int64(r.maxDepth),
			Actual:       int64(r.depth + 1),
			Message:      "at " + location,
		}
	}

	doc, err := r.load(targetFile)
	if err != nil {
		return nil, &oaserrors.ReferenceError{Ref: ref, Location: location, Cause: err}
	}
	target, err := lookup(doc, targetPtr)
	if err != nil {
		return nil, &oaserrors.ReferenceError{Ref: ref, Location: location, Message: err.Error()}
	}

	r.active[key] = true
	r.depth++
	out, err := r.expand(target, targetFile, targetPtr)
	r.depth--
	delete(r.active, key)
	if err != nil {
		return nil, err
	}
	r.done[key] = out
	return out, nil
}

// splitRef resolves ref against the file that contains it.
func splitRef(ref, file string) (string, []string, error) {
	filePart, fragment, _ := strings.Cut(ref, "#")
	if strings.Contains(filePart, "://") {
		return "", nil, errors.New("remote references are not supported")
	}
	target := file
	if filePart != "" {
		decoded, err := url.PathUnescape(filePart)
		if err != nil {
			return "", nil, fmt.Errorf("invalid file reference: %w", err)
		}
		target = filepath.FromSlash(decoded)
		if !filepath.IsAbs(target) {
			target = filepath.Join(filepath.Dir(file), target)
		}
		target = filepath.Clean(target)
	}
	return target, pathutil.SplitPointer(fragment), nil
}

// lookup follows pointer tokens from root.
func lookup(root *yaml.Node, pointer []string) (*yaml.Node, error) {
	cur := parser.Unwrap(root)
	for i, tok := range pointer {
		switch {
		case parser.IsMapping(cur):
			next := parser.Get(cur, tok)
			if next == nil {
				return nil, fmt.Errorf("missing key %q at %s", tok, pathutil.JoinPointer(pointer[:i]...))
			}
			cur = next
		case parser.IsSequence(cur):
			idx, err := strconv.Atoi(tok)
			if err != nil || idx < 0 || idx >= len(cur.Content) {
				return nil, fmt.Errorf("invalid array index %q at %s", tok, pathutil.JoinPointer(pointer[:i]...))
			}
			cur = cur.Content[idx]
		default:
			return nil, fmt.Errorf("cannot traverse into scalar at %s", pathutil.JoinPointer(pointer[:i]...))
		}
	}
	return cur, nil
}

var _ Service = (*Native)(nil)
