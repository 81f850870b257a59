// Package bundler reassembles a split document into a single dereferenced
// bundle.
//
// A [Service] takes the path of the rewritten root document and returns an
// [Outcome]: either the bundle, or the diagnostic text of a reference cycle.
// Any other failure is returned as an error.
//
// Two services are provided. [CLI] runs an external tool:
//
//	swagger-cli bundle <root> -r
//
// and reads the bundle from standard output and the diagnostic from standard
// error. [Native] dereferences the split tree in-process and reports cycles
// with the same diagnostic text, which makes it usable where Node.js tooling
// is not installed.
package bundler
