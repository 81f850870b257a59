package bundler

import (
	"context"
	"strings"
)

// Outcome is the result of one bundler invocation.
type Outcome struct {
	// Bundle is the bundled document. It is empty when Diagnostic is set.
	Bundle []byte
	// Diagnostic is the bundler's cycle report. It is empty on success.
	Diagnostic string
}

// Succeeded reports whether the bundler produced a bundle without a diagnostic.
func (o Outcome) Succeeded() bool {
	return strings.TrimSpace(o.Diagnostic) == ""
}

// Service bundles the document rooted at rootPath.
type Service interface {
	Bundle(ctx context.Context, rootPath string) (Outcome, error)
}

// ServiceFunc adapts a function to the Service interface.
type ServiceFunc func(ctx context.Context, rootPath string) (Outcome, error)

// Bundle implements Service.
func (f ServiceFunc) Bundle(ctx context.Context, rootPath string) (Outcome, error) {
	return f(ctx, rootPath)
}
