package testutil

import (
	"context"
	"os"
	"sync"

	"github.com/erraggy/swagsplit/bundler"
)

// ScriptedBundler is a bundler.Service that replays diagnostics in order and
// then succeeds, returning the changed root document as the bundle.
type ScriptedBundler struct {
	mu          sync.Mutex
	diagnostics []string
	calls       []string
	err         error
}

// NewScriptedBundler returns a bundler that reports diagnostics, one per call,
// before succeeding.
func NewScriptedBundler(diagnostics ...string) *ScriptedBundler {
	return &ScriptedBundler{diagnostics: diagnostics}
}

// FailWith makes every later call return err.
func (s *ScriptedBundler) FailWith(err error) *ScriptedBundler {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
	return s
}

// Bundle implements bundler.Service.
func (s *ScriptedBundler) Bundle(_ context.Context, rootPath string) (bundler.Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	call := len(s.calls)
	s.calls = append(s.calls, rootPath)
	if s.err != nil {
		return bundler.Outcome{}, s.err
	}
	if call < len(s.diagnostics) {
		return bundler.Outcome{Diagnostic: s.diagnostics[call]}, nil
	}
	data, err := os.ReadFile(rootPath) //nolint:gosec // G304: test helper reads the pipeline's own output
	if err != nil {
		return bundler.Outcome{}, err
	}
	return bundler.Outcome{Bundle: data}, nil
}

// Calls returns the root paths passed to Bundle, in order.
func (s *ScriptedBundler) Calls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.calls...)
}

var _ bundler.Service = (*ScriptedBundler)(nil)
