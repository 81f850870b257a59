// Package oaserrors provides structured error types for swagsplit.
//
// Import path: github.com/erraggy/swagsplit/oaserrors
//
// Every fatal condition of a split-and-bundle run maps to one error type, so
// callers can tell them apart with [errors.Is] and [errors.As].
//
// # Error Types
//
//   - [ParseError]: malformed source documents and exclusion tables
//   - [ReferenceError]: $ref resolution failures and circular references
//   - [DiagnosticError]: bundler output outside the cycle diagnostic grammar
//   - [WriteError]: split files, changed root, bundle or table could not be written
//   - [BundlerError]: bundler failed without a diagnostic, or timed out
//   - [NoProgressError]: the bundler repeated a cycle that is already excluded
//   - [ResourceLimitError]: attempt or depth limits exceeded
//   - [ConfigError]: invalid configuration or input options
//
// # Sentinel Errors
//
// Each error type has a corresponding sentinel error for use with errors.Is():
//
//   - [ErrParse]: Matches any [ParseError]
//   - [ErrReference]: Matches any [ReferenceError]
//   - [ErrCircularReference]: Matches [ReferenceError] with IsCircular=true
//   - [ErrDiagnostic]: Matches any [DiagnosticError]
//   - [ErrWrite]: Matches any [WriteError]
//   - [ErrBundler]: Matches any [BundlerError]
//   - [ErrNoProgress]: Matches any [NoProgressError]
//   - [ErrResourceLimit]: Matches any [ResourceLimitError]
//   - [ErrConfig]: Matches any [ConfigError]
//
// # Usage
//
//	p, err := pipeline.New("swagger.json")
//	if err != nil {
//	    return err
//	}
//	if _, err := p.Run(ctx); err != nil {
//	    var diagErr *oaserrors.DiagnosticError
//	    if errors.As(err, &diagErr) {
//	        fmt.Println("bundler said:", diagErr.Diagnostic)
//	    }
//	}
package oaserrors
