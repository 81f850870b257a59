// Package pipeline runs the split-and-bundle loop that breaks reference
// cycles.
//
// Each attempt starts again from the source document:
//
//	Splitting  rewrite root-local references, split collections into files,
//	           prune excluded properties, write <source>-changed.json
//	Bundling   run the bundler on the changed root
//	Done       no diagnostic: save the bundle and the exclusion table
//	Refining   parse the diagnostic, add the cycle to the exclusion table,
//	           go back to Splitting
//
// The exclusion table is the only state carried between attempts. A
// diagnostic that does not parse, or that names a property which is already
// excluded, ends the run with an error since no further progress is possible.
package pipeline
