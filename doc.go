// Package swagsplit splits Swagger 2.0 JSON documents into per-entity files
// and resolves reference cycles so that the split tree can be bundled back
// into a single document.
//
// # Overview
//
// The work is spread over a handful of packages:
//
//   - parser: order-preserving JSON decoding into yaml.Node trees
//   - walker: iterative pre-order traversal of object nodes
//   - rewriter: text-level rewrite of root-local $ref pointers
//   - splitter: writes paths, parameters, definitions and responses to their own files
//   - circular: prunes excluded properties and parses bundler cycle diagnostics
//   - exclusion: the persisted definition to properties table
//   - bundler: external swagger-cli and in-process bundlers
//   - pipeline: the split, bundle and refine loop
//
// # Quick Start
//
//	p, err := pipeline.New("api/swagger.json")
//	if err != nil {
//		log.Fatal(err)
//	}
//	res, err := p.Run(ctx)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("bundled after %d attempts\n", res.Attempts)
//
// Each attempt starts again from the pristine source with the exclusions
// learned so far, so the source document is never modified.
//
// # Command Line
//
// The swagsplit command wraps the pipeline:
//
//	swagsplit run api/swagger.json
//	swagsplit split --keep-path /pets api/swagger.json
//	swagsplit exclusions diff old.json circular-references.json
//	swagsplit mcp
package swagsplit
